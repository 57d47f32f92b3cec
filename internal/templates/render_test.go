package templates

import (
	"bytes"
	"strings"
	"testing"

	"cvlab/internal/fonts"
	"cvlab/internal/resume"
)

func testFont() fonts.Font {
	f, _ := fonts.Resolve("inter")
	return f
}

func fullContent() resume.Content {
	return resume.Content{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Website:  "example.com",
			Summary:  "Backend engineer.",
		},
		Experience: []resume.Experience{{
			ID:         "e1",
			Position:   "Engineer",
			Company:    "Acme",
			StartDate:  "2020-01",
			EndDate:    "",
			Current:    true,
			Highlights: []string{"Shipped X"},
		}},
		Education: []resume.Education{{
			ID: "ed1", Institution: "State University", Degree: "BSc", Field: "CS",
			StartDate: "2014-09", EndDate: "2018-06",
		}},
		Skills:   []resume.SkillCategory{{ID: "s1", Category: "Backend", Items: []string{"Go", "Postgres"}}},
		Projects: []resume.Project{{ID: "p1", Name: "cvlab", Technologies: []string{"Go"}, Highlights: []string{"Built it"}}},
	}
}

func renderAll(t *testing.T, k Kind, in Input) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderScreen(&buf, k, in); err != nil {
		t.Fatalf("render %s: %v", k.ID(), err)
	}
	return buf.String()
}

func TestCurrentRendersPresentInEveryKind(t *testing.T) {
	in := Input{Title: "Test", Content: fullContent(), Font: testFont()}
	// Current entries carry a stale end date on purpose; it must not surface.
	in.Content.Experience[0].EndDate = "2022-06"

	for _, k := range Kinds() {
		out := renderAll(t, k, in)
		if !strings.Contains(out, "Present") {
			t.Errorf("%s: current entry does not render Present", k.ID())
		}
		if strings.Contains(out, "Jun 2022") {
			t.Errorf("%s: stored end date leaked past Current", k.ID())
		}
		if got := strings.Count(out, "Shipped X"); got != 1 {
			t.Errorf("%s: highlight rendered %d times, want 1", k.ID(), got)
		}
	}
}

func TestEmptySectionsOmitHeaders(t *testing.T) {
	in := Input{
		Title:   "Empty",
		Content: resume.Content{PersonalInfo: resume.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"}},
		Font:    testFont(),
	}
	headers := []string{"Experience", "Projects", "Education", "Skills", "Technical"}
	for _, k := range Kinds() {
		out := renderAll(t, k, in)
		for _, h := range headers {
			if strings.Contains(out, ">"+h+"<") {
				t.Errorf("%s: empty section still renders %q header", k.ID(), h)
			}
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	in := Input{Title: "Det", Content: fullContent(), Font: testFont()}
	for _, k := range Kinds() {
		first := renderAll(t, k, in)
		second := renderAll(t, k, in)
		if first != second {
			t.Errorf("%s: repeated render differs", k.ID())
		}
	}
}

func TestLinksAreNormalized(t *testing.T) {
	in := Input{Title: "Links", Content: fullContent(), Font: testFont()}
	for _, k := range Kinds() {
		out := renderAll(t, k, in)
		if !strings.Contains(out, `href="https://example.com"`) {
			t.Errorf("%s: bare website domain not normalized to absolute URL", k.ID())
		}
	}
}

func TestEntriesKeepStoredOrder(t *testing.T) {
	in := Input{Title: "Order", Content: fullContent(), Font: testFont()}
	in.Content.Experience = append(in.Content.Experience, resume.Experience{
		ID: "e2", Position: "Intern", Company: "Beta Corp", StartDate: "2018-01", EndDate: "2019-12",
	})

	for _, k := range Kinds() {
		out := renderAll(t, k, in)
		if strings.Index(out, "Acme") > strings.Index(out, "Beta Corp") {
			t.Errorf("%s: entries reordered; array order must win", k.ID())
		}
	}
}

func TestParseKindFallsBack(t *testing.T) {
	k, ok := ParseKind("no-such-template")
	if ok {
		t.Error("unknown id reported as recognized")
	}
	if k != Default {
		t.Errorf("fallback kind = %s, want %s", k.ID(), Default.ID())
	}

	k, ok = ParseKind("mono-stack")
	if !ok || k != MonoStack {
		t.Errorf("ParseKind(mono-stack) = %v, %v", k, ok)
	}
}

func TestPrintTargetCarriesPageGeometry(t *testing.T) {
	in := Input{Title: "Print", Content: fullContent(), Font: testFont()}
	var buf bytes.Buffer
	if err := RenderPrint(&buf, LabProtocol, in); err != nil {
		t.Fatalf("render print: %v", err)
	}
	if !strings.Contains(buf.String(), "@page") {
		t.Error("print target missing @page rule")
	}

	buf.Reset()
	if err := RenderScreen(&buf, LabProtocol, in); err != nil {
		t.Fatalf("render screen: %v", err)
	}
	if strings.Contains(buf.String(), "@page") {
		t.Error("screen target should not carry @page rule")
	}
}

func TestUserContentIsEscaped(t *testing.T) {
	in := Input{Title: "XSS", Content: fullContent(), Font: testFont()}
	in.Content.PersonalInfo.Summary = `<script>alert("x")</script>`
	for _, k := range Kinds() {
		out := renderAll(t, k, in)
		if strings.Contains(out, "<script>alert") {
			t.Errorf("%s: user content not escaped", k.ID())
		}
	}
}
