package util

import "testing"

func TestFormatName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Solid State", "Solid_State"},
		{"solid state!", "Solid_State"},
		{"p-Block Elements", "Pblock_Elements"},
		{"  laws   of motion  ", "Laws_Of_Motion"},
		{"Physics", "Physics"},
		{"123", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatName(c.in); got != c.want {
			t.Errorf("FormatName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
