package msgbuf

import (
	json "github.com/goccy/go-json"

	"github.com/rawbytedev/eztr/pkg/msgfmt"
	"github.com/rawbytedev/eztr/pkg/scontent"
)

// View is the JSON form of a buffer. Content is pipe-escaped and excludes
// the End byte.
type View struct {
	Header  Header `json:"header"`
	Content string `json:"content"`
}

// View returns b's JSON form.
func (b *Buffer) View() View {
	return View{
		Header:  b.Header(),
		Content: msgfmt.Escape(b.Content()[:b.ContentLen()]),
	}
}

// Apply writes v's header and content into b.
func (v View) Apply(b *Buffer) {
	b.WriteHeader(v.Header)
	cont := b.Content()
	scontent.SetEmpty(cont)
	scontent.Cat(cont, msgfmt.Unescape(v.Content))
}

func (b *Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.View())
}

func (b *Buffer) UnmarshalJSON(data []byte) error {
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	v.Apply(b)
	return nil
}
