package msgbuf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/rawbytedev/eztr/internal/common"
	"github.com/rawbytedev/eztr/pkg/ccode"
	"github.com/rawbytedev/eztr/pkg/msgfmt"
)

// Print writes the labeled header fields and the pipe-escaped content up to
// its End byte.
func (b *Buffer) Print(w io.Writer) error {
	return b.print(w, b.Content()[:b.ContentLen()])
}

// PrintFull is Print over the entire content region.
func (b *Buffer) PrintFull(w io.Writer) error {
	return b.print(w, b.Content())
}

// PrintCCode writes b as Go source for a ReplaceText registration of
// textID. The content literal always ends with the End byte.
func (b *Buffer) PrintCCode(w io.Writer, textID uint16) error {
	content := b.Content()[:b.ContentLen()]
	return b.printCCode(w, textID, append(content[:len(content):len(content)], common.End))
}

// PrintFullCCode is PrintCCode over the entire content region.
func (b *Buffer) PrintFullCCode(w io.Writer, textID uint16) error {
	return b.printCCode(w, textID, b.Content())
}

func (b *Buffer) print(w io.Writer, content []byte) error {
	h := b.Header()
	var out bytes.Buffer
	fmt.Fprintf(&out, "text_box_type:      0x%02X (%s)\n", uint8(h.TextBoxType), h.TextBoxType)
	fmt.Fprintf(&out, "text_box_y_pos:     %d\n", h.TextBoxYPos)
	fmt.Fprintf(&out, "display_icon:       0x%02X (%s)\n", uint8(h.DisplayIcon), h.DisplayIcon)
	fmt.Fprintf(&out, "next_message_id:    0x%04X\n", h.NextMessageID)
	fmt.Fprintf(&out, "first_item_rupees:  0x%04X\n", h.FirstItemRupees)
	fmt.Fprintf(&out, "second_item_rupees: 0x%04X\n", h.SecondItemRupees)
	fmt.Fprintf(&out, "content:            %q\n", msgfmt.Escape(content))
	_, err := w.Write(out.Bytes())
	return err
}

func (b *Buffer) printCCode(w io.Writer, textID uint16, content []byte) error {
	h := b.Header()
	var out bytes.Buffer
	fmt.Fprintf(&out, "reg.ReplaceText(\n\t0x%04X,\n\tmsgbuf.Header{\n", textID)
	fmt.Fprintf(&out, "\t\tTextBoxType:      0x%02X, // %s\n", uint8(h.TextBoxType), h.TextBoxType)
	fmt.Fprintf(&out, "\t\tTextBoxYPos:      %d,\n", h.TextBoxYPos)
	fmt.Fprintf(&out, "\t\tDisplayIcon:      0x%02X, // %s\n", uint8(h.DisplayIcon), h.DisplayIcon)
	fmt.Fprintf(&out, "\t\tNextMessageID:    0x%04X,\n", h.NextMessageID)
	fmt.Fprintf(&out, "\t\tFirstItemRupees:  0x%04X,\n", h.FirstItemRupees)
	fmt.Fprintf(&out, "\t\tSecondItemRupees: 0x%04X,\n", h.SecondItemRupees)
	out.WriteString("\t},\n\tfalse,\n")
	writeLiteral(&out, content)
	out.WriteString("\tnil,\n)\n")
	_, err := w.Write(out.Bytes())
	return err
}

// writeLiteral renders content as a Go string literal that reproduces it
// when passed through the NoPipe formatter: '%' is doubled and the literal
// is split after every Newline control code.
func writeLiteral(out *bytes.Buffer, content []byte) {
	out.WriteString("\t\"")
	for i, c := range content {
		switch {
		case c == '%':
			out.WriteString("%%")
		case c == '"' || c == '\\':
			out.WriteByte('\\')
			out.WriteByte(c)
		case c >= 0x20 && c < 0x7F:
			out.WriteByte(c)
		default:
			out.WriteString(`\x`)
			hex := strconv.FormatUint(uint64(c), 16)
			if len(hex) == 1 {
				out.WriteByte('0')
			}
			out.WriteString(hex)
		}
		if c == ccode.Newline[0] && i < len(content)-1 {
			out.WriteString("\" +\n\t\t\"")
		}
	}
	out.WriteString("\",\n")
}
