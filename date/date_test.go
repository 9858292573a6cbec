package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2024-12-31", want: New(2024, time.December, 31)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "31/12/2024", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("Parse(%q) error = %v, want error %v", tt.in, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	// Day overflow rolls into the next month.
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	if got, want := New(2024, time.March, 5).String(), "2024-03-05"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
