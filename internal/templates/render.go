package templates

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"cvlab/internal/fonts"
	"cvlab/internal/resume"
)

// Input is everything a layout needs: the content payload, the resolved
// font, and the document title for the page <title>. Rendering is a pure
// function of Input, so identical input yields identical markup.
type Input struct {
	Title   string
	Content resume.Content
	Font    fonts.Font
}

type renderData struct {
	Title string
	C     resume.Content
	Font  fonts.Font
	Print bool
}

var funcs = template.FuncMap{
	"month":     resume.FormatMonth,
	"dateRange": resume.FormatDateRange,
	"href":      resume.EnsureHref,
	"join":      strings.Join,
}

// Every layout body is parsed into a clone of this shell. The body template
// owns its own <style> block and markup; the shell owns the document frame,
// the font stylesheet, and the print page geometry.
const shellHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.Font.StylesheetURL}}">
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: {{.Font.Stack}}; color: #000; background: #fff; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
a { color: inherit; }
{{if .Print}}@page { size: A4; margin: 0; }
html, body { width: 210mm; }
.sheet { width: 210mm; min-height: 297mm; }{{else}}.sheet { width: 210mm; min-height: 297mm; margin: 0 auto; box-shadow: 0 2px 12px rgba(0,0,0,.15); }{{end}}
</style>
</head>
<body>
<div class="sheet">{{template "body" .}}</div>
</body>
</html>
`

var layouts = map[Kind]*template.Template{}

func register(k Kind, body string) {
	t := template.Must(template.New("shell").Funcs(funcs).Parse(shellHTML))
	template.Must(t.Parse(body))
	layouts[k] = t
}

// RenderScreen writes the on-screen preview markup for the given layout.
func RenderScreen(w io.Writer, k Kind, in Input) error {
	return render(w, k, in, false)
}

// RenderPrint writes the paginated A4 markup consumed by the PDF generator.
func RenderPrint(w io.Writer, k Kind, in Input) error {
	return render(w, k, in, true)
}

func render(w io.Writer, k Kind, in Input, print bool) error {
	t, ok := layouts[k]
	if !ok {
		t = layouts[Default]
	}
	data := renderData{
		Title: in.Title,
		C:     in.Content,
		Font:  in.Font,
		Print: print,
	}
	if err := t.Execute(w, data); err != nil {
		return fmt.Errorf("render template %s: %w", k.ID(), err)
	}
	return nil
}
