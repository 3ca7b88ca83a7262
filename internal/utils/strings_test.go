package utils

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("  "); got != "NA" {
		t.Errorf("blank = %q", got)
	}
	if got := SafeFilenamePart("Li Lei/2024"); got != "Li_Lei_2024" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Han \t Meimei \n"); got != "Han Meimei" {
		t.Errorf("got %q", got)
	}
}
