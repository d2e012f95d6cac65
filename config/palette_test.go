package config

import "testing"

func TestColorIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"black", 0},
		{"Red", 1},
		{" green ", 2},
		{"white", 7},
		{"#008000", 2},
		{"#000080", 4},
		{"#C0C0C0", 7},
		{"#ff0000", 1},
		{"#010101", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ColorIndex(tt.in)
			if err != nil {
				t.Fatalf("ColorIndex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ColorIndex(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorIndexRejects(t *testing.T) {
	for _, in := range []string{"", "orange", "#12", "#gggggg"} {
		if _, err := ColorIndex(in); err == nil {
			t.Errorf("ColorIndex(%q) should fail", in)
		}
	}
}
