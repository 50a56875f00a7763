// Package ccode names the control codes, text box styles and icons of the
// game's message encoding.
//
// Control codes are untyped string constants so they concatenate directly
// into content and format strings:
//
//	"Hello" + ccode.Newline + "World" + ccode.End
//
// The *ArgC / *ArgW variants end with a %c or %w directive, letting the
// argument byte(s) of the code be supplied as formatter arguments.
package ccode

import "fmt"

// Text colors.
const (
	ColorDefault   = "\x00"
	ColorRed       = "\x01"
	ColorGreen     = "\x02"
	ColorBlue      = "\x03"
	ColorYellow    = "\x04"
	ColorLightBlue = "\x05"
	ColorPink      = "\x06"
	ColorSilver    = "\x07"
	ColorOrange    = "\x08"
)

// Layout and flow.
const (
	// TextSpeed acts as a null character; two in a row print nothing.
	TextSpeed       = "\x0a"
	HSBoatArchery   = "\x0b"
	StrayFairies    = "\x0c"
	Tokens          = "\x0d"
	PointsTens      = "\x0e"
	PointsThousands = "\x0f"
	BoxBreak        = "\x10"
	Newline         = "\x11"
	BoxBreak2       = "\x12"
	CarriageReturn  = "\x13"
	// Shift prints as many spaces as the value of the following byte.
	Shift               = "\x14"
	ShiftArgC           = "\x14%c"
	Continue            = "\x15"
	Name                = "\x16"
	QuickTextEnable     = "\x17"
	QuickTextDisable    = "\x18"
	Event               = "\x19"
	Persistent          = "\x1a"
	BoxBreakDelayed     = "\x1b"
	BoxBreakDelayedArgW = "\x1b%w"
	Fade                = "\x1c"
	FadeArgW            = "\x1c%w"
	FadeSkippable       = "\x1d"
	FadeSkippableArgW   = "\x1d%w"
	SFX                 = "\x1e"
	SFXArgW             = "\x1e%w"
	Delay               = "\x1f"
	DelayArgW           = "\x1f%w"
)

// Button glyphs.
const (
	BtnA        = "\xb0"
	BtnB        = "\xb1"
	BtnC        = "\xb2"
	BtnL        = "\xb3"
	BtnR        = "\xb4"
	BtnZ        = "\xb5"
	BtnCUp      = "\xb6"
	BtnCDown    = "\xb7"
	BtnCLeft    = "\xb8"
	BtnCRight   = "\xb9"
	ZTarget     = "\xba"
	ControlPad  = "\xbb"
	End         = "\xbf"
	Background  = "\xc1"
	TwoChoice   = "\xc2"
	ThreeChoice = "\xc3"
)

// Timers, counters and game-state printers.
const (
	TimerPostman               = "\xc4"
	TimerMinigame1             = "\xc5"
	Timer2                     = "\xc6"
	TimerMoonCrash             = "\xc7"
	TimerMinigame2             = "\xc8"
	TimerEnvHazard             = "\xc9"
	Time                       = "\xca"
	ChestFlags                 = "\xcb"
	InputBank                  = "\xcc"
	RupeesSelected             = "\xcd"
	RupeesTotal                = "\xce"
	TimeUntilMoonCrash         = "\xcf"
	InputDoggyRacetrackBet     = "\xd0"
	InputBomberCode            = "\xd1"
	PauseMenu                  = "\xd2"
	TimeSpeed                  = "\xd3"
	OwlWarp                    = "\xd4"
	InputLotteryCode           = "\xd5"
	SpiderHouseMaskCode        = "\xd6"
	StrayFairiesLeftWoodfall   = "\xd7"
	StrayFairiesLeftSnowhead   = "\xd8"
	StrayFairiesLeftGreatBay   = "\xd9"
	StrayFairiesLeftStoneTower = "\xda"
	PointsBoatArchery          = "\xdb"
	LotteryCode                = "\xdc"
	LotteryCodeGuess           = "\xdd"
	HeldItemPrice              = "\xde"
	BomberCode                 = "\xdf"
	Event2                     = "\xe0"
	SpiderHouseMaskCode1       = "\xe1"
	SpiderHouseMaskCode2       = "\xe2"
	SpiderHouseMaskCode3       = "\xe3"
	SpiderHouseMaskCode4       = "\xe4"
	SpiderHouseMaskCode5       = "\xe5"
	SpiderHouseMaskCode6       = "\xe6"
	HoursUntilMoonCrash        = "\xe7"
	TimeUntilNewDay            = "\xe8"
	HSPointsBankRupees         = "\xf0"
	HSPointsUnk1               = "\xf1"
	HSPointsFishing            = "\xf2"
	HSTimeBoatArchery          = "\xf3"
	HSTimeHorseBackBalloon     = "\xf4"
	HSTimeLotteryGuess         = "\xf5"
	HSTownShootingGallery      = "\xf6"
	HSUnk1                     = "\xf7"
	HSUnk3Lower                = "\xf8"
	HSHorseBackBalloon         = "\xf9"
	HSDekuPlaygroundDay1       = "\xfa"
	HSDekuPlaygroundDay2       = "\xfb"
	HSDekuPlaygroundDay3       = "\xfc"
	DekuPlaygroundNameDay1     = "\xfd"
	DekuPlaygroundNameDay2     = "\xfe"
	DekuPlaygroundNameDay3     = "\xff"
)

// TextBoxType selects the style of the text box.
type TextBoxType uint8

const (
	StandardTextBoxI       TextBoxType = 0x00
	WoodenSignBackground   TextBoxType = 0x01
	TranslucentBlueTextBox TextBoxType = 0x02
	OcarinaStaff           TextBoxType = 0x03
	InvisibleTextBoxI      TextBoxType = 0x04
	InvisibleTextBoxII     TextBoxType = 0x05
	StandardTextBoxII      TextBoxType = 0x06
	InvisibleTextBox       TextBoxType = 0x07
	BlueTextBox            TextBoxType = 0x08
	RedTextBoxI            TextBoxType = 0x09
	InvisibleTextBoxIII    TextBoxType = 0x0A
	InvisibleTextBoxIV     TextBoxType = 0x0B
	InvisibleTextBoxV      TextBoxType = 0x0C
	BombersNotebook        TextBoxType = 0x0D
	InvisibleTextBoxVI     TextBoxType = 0x0E
	RedTextBoxII           TextBoxType = 0x0F
)

var textBoxNames = [...]string{
	"standard_text_box_i",
	"wooden_sign_background",
	"translucent_blue_text_box",
	"ocarina_staff",
	"invisible_text_box_i",
	"invisible_text_box_ii",
	"standard_text_box_ii",
	"invisible_text_box",
	"blue_text_box",
	"red_text_box_i",
	"invisible_text_box_iii",
	"invisible_text_box_iv",
	"invisible_text_box_v",
	"bombers_notebook",
	"invisible_text_box_vi",
	"red_text_box_ii",
}

func (t TextBoxType) String() string {
	if int(t) < len(textBoxNames) {
		return textBoxNames[t]
	}
	return fmt.Sprintf("text_box_0x%02X", uint8(t))
}
