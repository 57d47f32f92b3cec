package fonts

import "testing"

func TestResolveKnown(t *testing.T) {
	f, ok := Resolve("inter")
	if !ok {
		t.Fatal("inter should resolve")
	}
	if f.Name != "Inter" {
		t.Errorf("name = %q, want Inter", f.Name)
	}
	if f.StylesheetURL == "" || f.Stack == "" {
		t.Error("resolved font missing stylesheet or stack")
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	for _, id := range []string{"", "comic-sans", "  "} {
		f, ok := Resolve(id)
		if ok {
			t.Errorf("Resolve(%q) reported ok", id)
		}
		if f.ID != FallbackID {
			t.Errorf("Resolve(%q) = %q, want fallback %q", id, f.ID, FallbackID)
		}
	}
}

func TestListStable(t *testing.T) {
	a := List()
	a[0].Name = "mutated"
	b := List()
	if b[0].Name == "mutated" {
		t.Error("List must return a copy")
	}
}
