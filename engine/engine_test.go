package engine

import (
	"errors"
	"testing"
)

func TestParseKeyHexAndDecimal(t *testing.T) {
	cases := map[string]uint32{
		"0x12345678": 0x12345678,
		"0X00000001": 1,
		"305419896":  0x12345678,
		"0":          0,
	}
	for text, want := range cases {
		got, err := ParseKey(text)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", text, err)
		}
		if got != want {
			t.Fatalf("ParseKey(%q) = 0x%x, want 0x%x", text, got, want)
		}
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, text := range []string{"", "not-a-number", "0xZZZZ", "4294967296"} {
		if _, err := ParseKey(text); !errors.Is(err, ErrKeyParseFailure) {
			t.Fatalf("ParseKey(%q): got %v, want ErrKeyParseFailure", text, err)
		}
	}
}
