package numberutils

import "testing"

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		input    string
		fallback int
		want     int
	}{
		{"5", 0, 5},
		{"-3", 0, -3},
		{"", 7, 7},
		{"abc", 7, 7},
		{"1.5", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToIntWithDefault(tt.input, tt.fallback); got != tt.want {
				t.Errorf("ToIntWithDefault(%q, %d) = %d, want %d", tt.input, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name        string
		num, lo, hi int
		want        int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -1, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"lower bound", 0, 0, 10, 0},
		{"upper bound", 10, 0, 10, 10},
		{"inverted range", 5, 10, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt(tt.num, tt.lo, tt.hi); got != tt.want {
				t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.num, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
