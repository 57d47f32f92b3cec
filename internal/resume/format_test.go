package resume

import "testing"

func TestFormatMonth(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020-01", "Jan 2020"},
		{"2023-11", "Nov 2023"},
		{"", ""},
		{"   ", ""},
		{"not-a-date", "not-a-date"},
	}
	for _, c := range cases {
		if got := FormatMonth(c.in); got != c.want {
			t.Errorf("FormatMonth(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateRangeCurrentWinsOverEndDate(t *testing.T) {
	// Current must force "Present" even with a stored end date.
	got := FormatDateRange("2020-01", "2022-06", true)
	if got != "Jan 2020 – Present" {
		t.Errorf("range = %q, want \"Jan 2020 – Present\"", got)
	}
}

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2020-01", "2022-06", false, "Jan 2020 – Jun 2022"},
		{"2020-01", "", true, "Jan 2020 – Present"},
		{"2020-01", "", false, "Jan 2020 – "},
		{"", "", false, ""},
	}
	for _, c := range cases {
		if got := FormatDateRange(c.start, c.end, c.current); got != c.want {
			t.Errorf("FormatDateRange(%q, %q, %v) = %q, want %q", c.start, c.end, c.current, got, c.want)
		}
	}
}

func TestEnsureHref(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"linkedin.com/in/jane", "https://linkedin.com/in/jane"},
		{"", ""},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := EnsureHref(c.in); got != c.want {
			t.Errorf("EnsureHref(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Content{
		Experience: []Experience{{ID: "e1", Company: "Acme", Highlights: []string{"Shipped X"}}},
		Skills:     []SkillCategory{{ID: "s1", Category: "Backend", Items: []string{"Go"}}},
	}

	copied := orig.Clone()
	copied.Experience[0].Highlights[0] = "changed"
	copied.Skills[0].Items[0] = "changed"

	if orig.Experience[0].Highlights[0] != "Shipped X" {
		t.Error("clone shares experience highlights with original")
	}
	if orig.Skills[0].Items[0] != "Go" {
		t.Error("clone shares skill items with original")
	}
}

func TestEqual(t *testing.T) {
	a := Content{Experience: []Experience{{ID: "e1", Position: "Engineer"}}}
	b := a.Clone()
	if !a.Equal(b) {
		t.Error("clone should compare equal")
	}
	b.Experience[0].Position = "Manager"
	if a.Equal(b) {
		t.Error("differing payloads should not compare equal")
	}
}

func TestEnsureIDs(t *testing.T) {
	c := Content{
		Experience: []Experience{{Company: "Acme"}},
		Skills:     []SkillCategory{{Category: "Backend"}},
	}
	c.EnsureIDs()
	if c.Experience[0].ID == "" || c.Skills[0].ID == "" {
		t.Error("EnsureIDs left entries without identity")
	}
}
