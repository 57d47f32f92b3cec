package templates

func init() { register(MonoStack, monoStackHTML) }

// Mono Stack: compact two-column layout, wide main column for experience and
// projects, narrow rail for skills and education. Arrow bullets.
const monoStackHTML = `{{define "body"}}
<style>
.ms { padding: 11mm; font-size: 9pt; }
.ms-name { font-size: 20pt; font-weight: 900; letter-spacing: -0.5pt; margin-bottom: 1.5mm; }
.ms-contact { display: flex; flex-wrap: wrap; font-size: 8pt; color: #666; margin-bottom: 3mm; }
.ms-contact > * { margin-right: 4mm; }
.ms-contact a { color: #666; text-decoration: none; }
.ms-summary { font-size: 9pt; line-height: 1.45; color: #444; margin-bottom: 6mm; }
.ms-cols { display: flex; gap: 8mm; }
.ms-left { flex: 1; }
.ms-right { width: 52mm; }
.ms h2 { font-size: 8pt; font-weight: 700; text-transform: uppercase; letter-spacing: 2pt; border-bottom: .5pt solid #000; padding-bottom: 1mm; margin-bottom: 3mm; }
.ms-entry { margin-bottom: 5mm; }
.ms-row { display: flex; justify-content: space-between; align-items: baseline; }
.ms-pos { font-size: 10.5pt; font-weight: 700; }
.ms-co { font-size: 8pt; color: #666; margin-bottom: 1mm; }
.ms-date { font-size: 7pt; color: #999; white-space: nowrap; margin-left: 3mm; }
.ms-desc { font-size: 8pt; line-height: 1.45; color: #444; margin-bottom: 1.5mm; }
.ms-b { display: flex; padding-left: 2mm; margin-bottom: .8mm; }
.ms-b span:first-child { width: 4mm; color: #999; }
.ms-b span:last-child { flex: 1; font-size: 8pt; line-height: 1.45; color: #444; }
.ms-skill { margin-bottom: 3mm; }
.ms-skill b { display: block; font-size: 8pt; text-transform: uppercase; letter-spacing: 1pt; margin-bottom: .5mm; }
.ms-skill div { font-size: 8pt; color: #444; line-height: 1.45; }
.ms-edu { margin-bottom: 3mm; }
.ms-edu b { font-size: 9pt; }
.ms-edu div { font-size: 7pt; color: #666; }
.ms-proj { font-size: 10pt; font-weight: 700; margin-bottom: .8mm; }
.ms-tech { font-size: 7pt; color: #999; margin-bottom: 1.2mm; }
</style>
<div class="ms">
  <header>
    <div class="ms-name">{{if .C.PersonalInfo.FullName}}{{.C.PersonalInfo.FullName}}{{else}}YOUR NAME{{end}}</div>
    <div class="ms-contact">
      {{with .C.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Location}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Website}}<a href="{{href .}}">Portfolio</a>{{end}}
      {{with .C.PersonalInfo.LinkedIn}}<a href="{{href .}}">LinkedIn</a>{{end}}
      {{with .C.PersonalInfo.GitHub}}<a href="{{href .}}">GitHub</a>{{end}}
    </div>
    {{with .C.PersonalInfo.Summary}}<p class="ms-summary">{{.}}</p>{{end}}
  </header>
  <div class="ms-cols">
    <div class="ms-left">
      {{if .C.Experience}}
      <section class="ms-entry">
        <h2>Experience</h2>
        {{range .C.Experience}}
        <div class="ms-entry">
          <div class="ms-row">
            <span class="ms-pos">{{.Position}}</span>
            <span class="ms-date">{{dateRange .StartDate .EndDate .Current}}</span>
          </div>
          <div class="ms-co">{{.Company}}{{with .Location}} &middot; {{.}}{{end}}</div>
          {{with .Description}}<p class="ms-desc">{{.}}</p>{{end}}
          {{range .Highlights}}<div class="ms-b"><span>&rarr;</span><span>{{.}}</span></div>{{end}}
        </div>
        {{end}}
      </section>
      {{end}}
      {{if .C.Projects}}
      <section>
        <h2>Projects</h2>
        {{range .C.Projects}}
        <div class="ms-entry">
          <div class="ms-proj">{{.Name}}</div>
          {{if .Technologies}}<div class="ms-tech">{{join .Technologies " / "}}</div>{{end}}
          {{with .Description}}<p class="ms-desc">{{.}}</p>{{end}}
          {{range .Highlights}}<div class="ms-b"><span>&rarr;</span><span>{{.}}</span></div>{{end}}
        </div>
        {{end}}
      </section>
      {{end}}
    </div>
    <div class="ms-right">
      {{if .C.Skills}}
      <section class="ms-entry">
        <h2>Skills</h2>
        {{range .C.Skills}}
        <div class="ms-skill"><b>{{.Category}}</b><div>{{join .Items ", "}}</div></div>
        {{end}}
      </section>
      {{end}}
      {{if .C.Education}}
      <section>
        <h2>Education</h2>
        {{range .C.Education}}
        <div class="ms-edu">
          <b>{{.Degree}}</b>
          <div>{{.Field}}</div>
          <div>{{.Institution}}</div>
          <div>{{dateRange .StartDate .EndDate .Current}}</div>
          {{with .GPA}}<div>GPA {{.}}</div>{{end}}
        </div>
        {{end}}
      </section>
      {{end}}
    </div>
  </div>
</div>
{{end}}`
