package api

import "testing"

func TestSafeNextPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/builder/3", "/builder/3"},
		{" /builder/3 ", "/builder/3"},
		{"", ""},
		{"builder/3", ""},
		{"//evil.example.com", ""},
		{"https://evil.example.com", ""},
	}
	for _, tc := range cases {
		if got := safeNextPath(tc.in); got != tc.want {
			t.Errorf("safeNextPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
