package msgbuf

import (
	"github.com/rawbytedev/eztr/internal/common"
	"github.com/rawbytedev/eztr/pkg/ccode"
)

// Header is a decoded copy of a buffer's header. The two padding bytes are
// not part of it.
type Header struct {
	TextBoxType      ccode.TextBoxType `json:"text_box_type" yaml:"text_box_type"`
	TextBoxYPos      uint8             `json:"text_box_y_pos" yaml:"text_box_y_pos"`
	DisplayIcon      ccode.Icon        `json:"display_icon" yaml:"display_icon"`
	NextMessageID    uint16            `json:"next_message_id" yaml:"next_message_id"`
	FirstItemRupees  uint16            `json:"first_item_rupees" yaml:"first_item_rupees"`
	SecondItemRupees uint16            `json:"second_item_rupees" yaml:"second_item_rupees"`
}

// DefaultHeader is the header written by Create: standard box at y 0, no
// icon, no next message and no prices.
func DefaultHeader() Header {
	return Header{
		TextBoxType:      ccode.StandardTextBoxI,
		DisplayIcon:      ccode.IconNoIcon,
		NextMessageID:    NoValue,
		FirstItemRupees:  NoValue,
		SecondItemRupees: NoValue,
	}
}

// Header decodes b's header.
func (b *Buffer) Header() Header {
	return Header{
		TextBoxType:      b.TextBoxType(),
		TextBoxYPos:      b.TextBoxYPos(),
		DisplayIcon:      b.DisplayIcon(),
		NextMessageID:    b.NextMessageID(),
		FirstItemRupees:  b.FirstItemRupees(),
		SecondItemRupees: b.SecondItemRupees(),
	}
}

// WriteHeader writes every header field except the padding.
func (b *Buffer) WriteHeader(h Header) {
	b.SetTextBoxType(h.TextBoxType)
	b.SetTextBoxYPos(h.TextBoxYPos)
	b.SetDisplayIcon(h.DisplayIcon)
	b.SetNextMessageID(h.NextMessageID)
	b.SetFirstItemRupees(h.FirstItemRupees)
	b.SetSecondItemRupees(h.SecondItemRupees)
}

// WriteDefaultHeader writes DefaultHeader. Content is untouched.
func (b *Buffer) WriteDefaultHeader() { b.WriteHeader(DefaultHeader()) }

func (b *Buffer) TextBoxType() ccode.TextBoxType {
	return ccode.TextBoxType(b.raw[common.OffTextBoxType])
}

func (b *Buffer) SetTextBoxType(t ccode.TextBoxType) {
	b.raw[common.OffTextBoxType] = byte(t)
}

func (b *Buffer) TextBoxYPos() uint8 { return b.raw[common.OffTextBoxYPos] }

func (b *Buffer) SetTextBoxYPos(y uint8) { b.raw[common.OffTextBoxYPos] = y }

func (b *Buffer) DisplayIcon() ccode.Icon {
	return ccode.Icon(b.raw[common.OffDisplayIcon])
}

func (b *Buffer) SetDisplayIcon(i ccode.Icon) {
	b.raw[common.OffDisplayIcon] = byte(i)
}

func (b *Buffer) NextMessageID() uint16 {
	return common.U16(b.raw[:], common.OffNextMessageID)
}

func (b *Buffer) SetNextMessageID(id uint16) {
	common.PutU16(b.raw[:], common.OffNextMessageID, id)
}

func (b *Buffer) FirstItemRupees() uint16 {
	return common.U16(b.raw[:], common.OffFirstItemRupees)
}

func (b *Buffer) SetFirstItemRupees(v uint16) {
	common.PutU16(b.raw[:], common.OffFirstItemRupees, v)
}

func (b *Buffer) SecondItemRupees() uint16 {
	return common.U16(b.raw[:], common.OffSecondItemRupees)
}

func (b *Buffer) SetSecondItemRupees(v uint16) {
	common.PutU16(b.raw[:], common.OffSecondItemRupees, v)
}
