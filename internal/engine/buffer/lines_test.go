package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lens  []int
	}{
		{"empty", "", []int{0}},
		{"single", "hello", []int{5}},
		{"multi", "hello\nhi\nworld!", []int{5, 2, 6}},
		{"trailing newline", "abc\n", []int{3, 0}},
		{"crlf", "ab\r\ncd", []int{2, 2}},
		{"multibyte", "héllo\n日本", []int{5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.input)
			if b.LineCount() != len(tt.lens) {
				t.Fatalf("LineCount() = %d, want %d", b.LineCount(), len(tt.lens))
			}
			for i, want := range tt.lens {
				if got := b.LineLen(i); got != want {
					t.Errorf("LineLen(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	b, err := FromReader(strings.NewReader("one\ntwo"))
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if got := b.Text(); got != "one\ntwo" {
		t.Errorf("Text() = %q, want %q", got, "one\ntwo")
	}
}

func TestNew(t *testing.T) {
	b := New()
	if b.LineCount() != 1 || b.LineLen(0) != 0 {
		t.Errorf("New() = %d lines, first len %d; want 1, 0", b.LineCount(), b.LineLen(0))
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestLineStart(t *testing.T) {
	b := FromString("hello\nhi\nworld!")
	tests := []struct {
		line int
		want int
	}{
		{0, 0},
		{1, 6},
		{2, 9},
		{3, 16},
	}
	for _, tt := range tests {
		if got := b.LineStart(tt.line); got != tt.want {
			t.Errorf("LineStart(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
	if got := Offset(b, 2, 3); got != 12 {
		t.Errorf("Offset(2, 3) = %d, want 12", got)
	}
}

func TestCharAt(t *testing.T) {
	b := FromString("ab\ncd")
	tests := []struct {
		line, col int
		want      rune
		ok        bool
	}{
		{0, 0, 'a', true},
		{1, 1, 'd', true},
		{0, 2, 0, false},
		{2, 0, 0, false},
		{-1, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := b.CharAt(tt.line, tt.col)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CharAt(%d, %d) = %q, %v; want %q, %v", tt.line, tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInsertChar(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		r      rune
		want   string
	}{
		{"start", "abc", 0, 'x', "xabc"},
		{"middle", "abc", 1, 'x', "axbc"},
		{"end of line", "abc\ndef", 3, 'x', "abcx\ndef"},
		{"second line", "abc\ndef", 4, 'x', "abc\nxdef"},
		{"split", "abcdef", 3, '\n', "abc\ndef"},
		{"split at end", "abc", 3, '\n', "abc\n"},
		{"split at start", "abc", 0, '\n', "\nabc"},
		{"empty", "", 0, 'q', "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.input)
			if err := b.InsertChar(tt.offset, tt.r); err != nil {
				t.Fatalf("InsertChar() error = %v", err)
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertCharOutOfRange(t *testing.T) {
	b := FromString("abc")
	for _, off := range []int{-1, 4, 100} {
		if err := b.InsertChar(off, 'x'); !errors.Is(err, ErrOffsetOutOfRange) {
			t.Errorf("InsertChar(%d) error = %v, want ErrOffsetOutOfRange", off, err)
		}
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{"single char", "abc", 1, 2, "ac"},
		{"empty range", "abc", 1, 1, "abc"},
		{"whole line", "abc", 0, 3, ""},
		{"join lines", "abc\ndef", 3, 4, "abcdef"},
		{"span lines", "abc\ndef\nghi", 2, 9, "abhi"},
		{"last char", "abc\nd", 4, 5, "abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.input)
			if err := b.DeleteRange(tt.start, tt.end); err != nil {
				t.Fatalf("DeleteRange() error = %v", err)
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteRangeErrors(t *testing.T) {
	b := FromString("abc")
	if err := b.DeleteRange(2, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("DeleteRange(2, 1) error = %v, want ErrRangeInvalid", err)
	}
	if err := b.DeleteRange(0, 9); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("DeleteRange(0, 9) error = %v, want ErrOffsetOutOfRange", err)
	}
}

func TestPlaceholder(t *testing.T) {
	var p Placeholder
	if p.LineCount() != 1 || p.LineLen(0) != 0 || p.Text() != "" {
		t.Errorf("Placeholder shape = %d lines, len %d, %q", p.LineCount(), p.LineLen(0), p.Text())
	}
	if err := p.InsertChar(0, 'a'); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertChar() error = %v, want ErrReadOnly", err)
	}
	if err := p.DeleteRange(0, 0); !errors.Is(err, ErrReadOnly) {
		t.Errorf("DeleteRange() error = %v, want ErrReadOnly", err)
	}
}
