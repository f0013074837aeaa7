package printer

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewReceiptStartsWithInit(t *testing.T) {
	r := NewReceipt(Width58mm)
	if !bytes.HasPrefix(r.Bytes(), []byte{ESC, '@'}) {
		t.Error("receipt does not start with ESC @ initialize command")
	}
}

func TestKeyValueAlignment(t *testing.T) {
	r := NewReceipt(Width58mm)
	r.LineFeed().KeyValue("Total:", "1730.00")

	line := lastLine(t, r)
	if len(line) != Width58mm {
		t.Errorf("line width = %d, want %d", len(line), Width58mm)
	}
	if !strings.HasPrefix(line, "Total:") {
		t.Errorf("line = %q, key not left-aligned", line)
	}
	if !strings.HasSuffix(line, "1730.00") {
		t.Errorf("line = %q, value not right-aligned", line)
	}
}

func TestFeeLineTruncatesLongDescriptions(t *testing.T) {
	r := NewReceipt(Width58mm)
	r.LineFeed().FeeLine(1, strings.Repeat("Very Long Activity Fee ", 4), "200.00")

	line := lastLine(t, r)
	if len(line) > Width58mm {
		t.Errorf("line width = %d, exceeds %d", len(line), Width58mm)
	}
	if !strings.HasSuffix(line, "200.00") {
		t.Errorf("line = %q, amount lost after truncation", line)
	}
}

func TestKeyValueAlignsMultiByteText(t *testing.T) {
	r := NewReceipt(Width58mm)
	r.LineFeed().KeyValue("Élève:", "Amé Müller")

	line := lastLine(t, r)
	if got := utf8.RuneCountInString(line); got != Width58mm {
		t.Errorf("line width = %d runes, want %d", got, Width58mm)
	}
	if !strings.HasSuffix(line, "Amé Müller") {
		t.Errorf("line = %q, value not right-aligned", line)
	}
}

func TestFeeLineTruncatesOnRuneBoundary(t *testing.T) {
	r := NewReceipt(Width58mm)
	r.LineFeed().FeeLine(1, strings.Repeat("Frais de Scolarité Élémentaire ", 3), "1500.00")

	line := lastLine(t, r)
	if !utf8.ValidString(line) {
		t.Fatalf("line %q contains a split multi-byte character", line)
	}
	if got := utf8.RuneCountInString(line); got > Width58mm {
		t.Errorf("line width = %d runes, exceeds %d", got, Width58mm)
	}
	if !strings.HasSuffix(line, "1500.00") {
		t.Errorf("line = %q, amount lost after truncation", line)
	}
}

func TestSeparatorFillsWidth(t *testing.T) {
	r := NewReceipt(Width80mm)
	r.LineFeed().Separator('-')

	line := lastLine(t, r)
	if line != strings.Repeat("-", Width80mm) {
		t.Errorf("separator = %q", line)
	}
}

func TestZeroWidthFallsBackTo58mm(t *testing.T) {
	r := NewReceipt(0)
	if r.Width() != Width58mm {
		t.Errorf("width = %d, want %d", r.Width(), Width58mm)
	}
}

// lastLine returns the text of the last completed line in the buffer,
// ignoring control sequences before it.
func lastLine(t *testing.T, r *Receipt) string {
	t.Helper()
	data := r.Bytes()
	if len(data) == 0 || data[len(data)-1] != LF {
		t.Fatal("buffer does not end with a line feed")
	}
	trimmed := data[:len(data)-1]
	idx := bytes.LastIndexByte(trimmed, LF)
	start := 0
	if idx >= 0 {
		start = idx + 1
	}
	return string(trimmed[start:])
}
