package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{12 * time.Minute, "12m"},
		{3 * time.Hour, "3h"},
		{50 * time.Hour, "2d"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		max  int
		want string
	}{
		{"empty", nil, 3, ""},
		{"under_limit", []int{1, 2}, 3, "1,2"},
		{"at_limit", []int{1, 2, 3}, 3, "1,2,3"},
		{"over_limit", []int{1, 2, 3, 4, 5}, 3, "1,2,3 (+2 more)"},
		{"no_limit", []int{1, 2, 3, 4, 5}, 0, "1,2,3,4,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatIDs(tt.ids, tt.max); got != tt.want {
				t.Errorf("FormatIDs() = %q, want %q", got, tt.want)
			}
		})
	}
}
