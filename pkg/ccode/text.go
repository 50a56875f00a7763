package ccode

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	namesOnce     sync.Once
	textBoxByName map[string]TextBoxType
	iconByName    map[string]Icon
)

func buildNameIndex() {
	textBoxByName = make(map[string]TextBoxType, len(textBoxNames))
	for i, n := range textBoxNames {
		textBoxByName[n] = TextBoxType(i)
	}
	iconByName = make(map[string]Icon, len(iconNames))
	for i, n := range iconNames {
		iconByName[n] = i
	}
}

// parseByte accepts a decimal or 0x-prefixed number, optionally behind one of
// the fallback name prefixes produced by String.
func parseByte(s string, prefixes ...string) (uint8, error) {
	for _, p := range prefixes {
		s = strings.TrimPrefix(s, p)
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// MarshalText encodes the text box type by name.
func (t TextBoxType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts a name as returned by String or a number.
func (t *TextBoxType) UnmarshalText(b []byte) error {
	namesOnce.Do(buildNameIndex)
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if v, ok := textBoxByName[s]; ok {
		*t = v
		return nil
	}
	v, err := parseByte(s, "text_box_")
	if err != nil {
		return fmt.Errorf("ccode: unknown text box type %q", b)
	}
	*t = TextBoxType(v)
	return nil
}

// MarshalText encodes the icon by name.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText accepts a name as returned by String or a number.
func (i *Icon) UnmarshalText(b []byte) error {
	namesOnce.Do(buildNameIndex)
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if v, ok := iconByName[s]; ok {
		*i = v
		return nil
	}
	v, err := parseByte(s, "nothing_")
	if err != nil {
		return fmt.Errorf("ccode: unknown icon %q", b)
	}
	*i = Icon(v)
	return nil
}
