package fonts

import "strings"

// Font is a concrete embeddable font resource. StylesheetURL points at the
// Google Fonts CSS both render targets load; Stack is the CSS font-family
// value including system fallbacks.
type Font struct {
	ID            string
	Name          string
	GoogleFamily  string
	Stack         string
	StylesheetURL string
}

// FallbackID is the guaranteed always-available font. Unknown or empty
// requests resolve to it instead of failing the render.
const FallbackID = "archivo"

var registry = []Font{
	font("inter", "Inter", "Inter", "sans-serif"),
	font("archivo", "Archivo", "Archivo", "sans-serif"),
	font("roboto", "Roboto", "Roboto", "sans-serif"),
	font("source-sans", "Source Sans 3", "Source Sans 3", "sans-serif"),
	font("lora", "Lora", "Lora", "serif"),
	font("merriweather", "Merriweather", "Merriweather", "serif"),
	font("playfair-display", "Playfair Display", "Playfair Display", "serif"),
	font("jetbrains-mono", "JetBrains Mono", "JetBrains Mono", "monospace"),
}

var byID = func() map[string]Font {
	m := make(map[string]Font, len(registry))
	for _, f := range registry {
		m[f.ID] = f
	}
	return m
}()

// Resolve maps a requested font id to a registered font, falling back to
// Archivo when the id is unknown.
func Resolve(id string) (Font, bool) {
	if f, ok := byID[strings.TrimSpace(id)]; ok {
		return f, true
	}
	return byID[FallbackID], false
}

// List returns the selectable fonts in display order.
func List() []Font {
	out := make([]Font, len(registry))
	copy(out, registry)
	return out
}

func font(id, name, family, generic string) Font {
	return Font{
		ID:            id,
		Name:          name,
		GoogleFamily:  family,
		Stack:         "'" + name + "', " + generic,
		StylesheetURL: "https://fonts.googleapis.com/css2?family=" + strings.ReplaceAll(family, " ", "+") + ":wght@400;700;900&display=swap",
	}
}
