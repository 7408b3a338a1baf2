package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s    string
		def  int
		want int
	}{
		// absent query param -> default
		{"", 1, 1},
		{"", 20, 20},
		// valid values, including the leading-zero form browsers send
		{"3", 1, 3},
		{"0042", 1, 42},
		{"-2", 1, -2}, // clamping happens at the caller
		// garbage -> default; no trimming on purpose
		{"abc", 20, 20},
		{" 7", 20, 20},
		// overflow -> default
		{"999999999999999999999999", 20, 20},
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
		}
	}
}
