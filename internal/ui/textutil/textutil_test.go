package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"laptop", 10, "laptop"},
		{"laptop", 6, "laptop"},
		{"laptop", 4, "lap…"},
		{"laptop", 1, "…"},
		{"laptop", 0, ""},
		{"日本語ピア", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := Width(Truncate(tt.in, tt.width)); w > tt.width {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, w)
		}
	}
}
