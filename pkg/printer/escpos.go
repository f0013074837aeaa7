package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontWide   = 0x10 // Double width only
	FontTall   = 0x01 // Double height only
)

// Character widths for common thermal paper sizes
const (
	Width58mm = 32
	Width80mm = 48
)

// Receipt builds an ESC/POS byte stream for thermal counter printers.
type Receipt struct {
	buf   bytes.Buffer
	width int // print width in characters
}

// NewReceipt creates a new ESC/POS receipt with the given character width.
// Use Width58mm or Width80mm for standard paper sizes.
func NewReceipt(charWidth int) *Receipt {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	r := &Receipt{width: charWidth}
	r.Init()
	return r
}

// Init sends the ESC @ (initialize printer) command.
func (r *Receipt) Init() *Receipt {
	r.buf.Write([]byte{ESC, '@'})
	return r
}

// LineFeed sends a line feed.
func (r *Receipt) LineFeed() *Receipt {
	r.buf.WriteByte(LF)
	return r
}

// FeedLines sends n line feeds.
func (r *Receipt) FeedLines(n int) *Receipt {
	for i := 0; i < n; i++ {
		r.buf.WriteByte(LF)
	}
	return r
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (r *Receipt) SetAlign(align int) *Receipt {
	r.buf.Write([]byte{ESC, 'a', byte(align)})
	return r
}

// SetBold enables or disables bold text.
func (r *Receipt) SetBold(on bool) *Receipt {
	b := byte(0)
	if on {
		b = 1
	}
	r.buf.Write([]byte{ESC, 'E', b})
	return r
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide, or FontTall.
func (r *Receipt) SetFontSize(size byte) *Receipt {
	r.buf.Write([]byte{GS, '!', size})
	return r
}

// Text writes a line of text followed by a line feed.
func (r *Receipt) Text(s string) *Receipt {
	r.buf.WriteString(s)
	r.buf.WriteByte(LF)
	return r
}

// TextF writes a formatted line of text followed by a line feed.
func (r *Receipt) TextF(format string, args ...interface{}) *Receipt {
	r.buf.WriteString(fmt.Sprintf(format, args...))
	r.buf.WriteByte(LF)
	return r
}

// Separator prints a full-width separator line (e.g. "--------------------------------").
func (r *Receipt) Separator(char byte) *Receipt {
	r.buf.WriteString(strings.Repeat(string(char), r.width))
	r.buf.WriteByte(LF)
	return r
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Balance Due            KES 230.00"
// Widths are measured in runes so multi-byte text stays aligned.
func (r *Receipt) KeyValue(key, value string) *Receipt {
	spaces := r.width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if spaces < 1 {
		spaces = 1
	}
	r.buf.WriteString(key)
	r.buf.WriteString(strings.Repeat(" ", spaces))
	r.buf.WriteString(value)
	r.buf.WriteByte(LF)
	return r
}

// FeeLine prints a fee item line: qty x description, then right-aligned amount.
// Example: "1x Term 2 Tuition       1,500.00"
// Descriptions longer than the available width are truncated on a rune
// boundary so multi-byte characters are never split.
func (r *Receipt) FeeLine(qty int, description, amount string) *Receipt {
	prefix := fmt.Sprintf("%dx %s", qty, description)
	runes := []rune(prefix)
	maxPrefix := r.width - utf8.RuneCountInString(amount) - 1
	if maxPrefix > 0 && len(runes) > maxPrefix {
		runes = runes[:maxPrefix]
		prefix = string(runes)
	}
	spaces := r.width - len(runes) - utf8.RuneCountInString(amount)
	if spaces < 1 {
		spaces = 1
	}
	r.buf.WriteString(prefix)
	r.buf.WriteString(strings.Repeat(" ", spaces))
	r.buf.WriteString(amount)
	r.buf.WriteByte(LF)
	return r
}

// Cut sends the paper cut command (full cut).
func (r *Receipt) Cut() *Receipt {
	r.buf.Write([]byte{GS, 'V', 0x00})
	return r
}

// Bytes returns the accumulated ESC/POS byte stream.
func (r *Receipt) Bytes() []byte {
	return r.buf.Bytes()
}

// Width returns the configured character width.
func (r *Receipt) Width() int {
	return r.width
}
