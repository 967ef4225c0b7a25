package cmd

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		input          string
		wantStart      int
		wantMaxResults int
	}{
		{"0-9", 0, 10},
		{"5-10", 5, 6},
		{"10-10", 10, 1},
		{" 3 - 7 ", 3, 5},
		{"", 0, 10},
		{"abc", 0, 10},
		{"5", 0, 10},
		{"9-5", 0, 10},
		{"-3-7", 0, 10},
		{"a-b", 0, 10},
	}
	for _, tt := range tests {
		start, max := parseRange(tt.input)
		if start != tt.wantStart || max != tt.wantMaxResults {
			t.Errorf("parseRange(%q) = (%d, %d), want (%d, %d)",
				tt.input, start, max, tt.wantStart, tt.wantMaxResults)
		}
	}
}
