package templates

func init() { register(Executive, executiveHTML) }

// The Executive: centered serif header, thin double rules, one measured
// column. Skills render inline under a small-caps heading.
const executiveHTML = `{{define "body"}}
<style>
.ex { padding: 14mm 16mm; }
.ex-head { text-align: center; border-bottom: 2pt double #000; padding-bottom: 5mm; margin-bottom: 7mm; }
.ex-name { font-size: 24pt; font-weight: 700; letter-spacing: 1pt; }
.ex-contact { font-size: 8.5pt; color: #333; margin-top: 2mm; }
.ex-contact span + span::before { content: "  \00B7  "; }
.ex-contact a { text-decoration: none; }
.ex h2 { font-size: 10pt; font-weight: 700; letter-spacing: 3pt; text-transform: uppercase; text-align: center; margin: 7mm 0 3.5mm; }
.ex h2::after { content: ""; display: block; width: 24mm; border-top: 1px solid #000; margin: 1.5mm auto 0; }
.ex-summary { font-size: 9.5pt; line-height: 1.6; text-align: center; font-style: italic; color: #222; }
.ex-entry { margin-bottom: 5mm; }
.ex-row { display: flex; justify-content: space-between; align-items: baseline; }
.ex-role { font-size: 10.5pt; font-weight: 700; }
.ex-org { font-size: 9.5pt; font-style: italic; }
.ex-date { font-size: 8.5pt; color: #555; white-space: nowrap; margin-left: 4mm; }
.ex-loc { font-size: 8.5pt; color: #555; }
.ex-desc { font-size: 9pt; line-height: 1.55; margin-top: 1mm; }
.ex ul { margin: 1mm 0 0 5mm; }
.ex li { font-size: 9pt; line-height: 1.55; }
.ex-skill-line { font-size: 9pt; line-height: 1.7; text-align: center; }
.ex-skill-line b { font-variant: small-caps; }
.ex-tech { font-size: 8.5pt; color: #555; margin-top: .5mm; }
</style>
<div class="ex">
  <header class="ex-head">
    <div class="ex-name">{{if .C.PersonalInfo.FullName}}{{.C.PersonalInfo.FullName}}{{else}}Your Name{{end}}</div>
    <div class="ex-contact">
      {{with .C.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Location}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Website}}<span><a href="{{href .}}">Portfolio</a></span>{{end}}
      {{with .C.PersonalInfo.LinkedIn}}<span><a href="{{href .}}">LinkedIn</a></span>{{end}}
      {{with .C.PersonalInfo.GitHub}}<span><a href="{{href .}}">GitHub</a></span>{{end}}
    </div>
  </header>
  {{with .C.PersonalInfo.Summary}}<p class="ex-summary">{{.}}</p>{{end}}
  {{if .C.Experience}}
  <section>
    <h2>Experience</h2>
    {{range .C.Experience}}
    <div class="ex-entry">
      <div class="ex-row">
        <span class="ex-role">{{.Position}}</span>
        <span class="ex-date">{{dateRange .StartDate .EndDate .Current}}</span>
      </div>
      <div class="ex-row">
        <span class="ex-org">{{.Company}}</span>
        {{with .Location}}<span class="ex-loc">{{.}}</span>{{end}}
      </div>
      {{with .Description}}<p class="ex-desc">{{.}}</p>{{end}}
      {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .C.Education}}
  <section>
    <h2>Education</h2>
    {{range .C.Education}}
    <div class="ex-entry">
      <div class="ex-row">
        <span class="ex-role">{{.Degree}}{{with .Field}}, {{.}}{{end}}</span>
        <span class="ex-date">{{dateRange .StartDate .EndDate .Current}}</span>
      </div>
      <div class="ex-row">
        <span class="ex-org">{{.Institution}}</span>
        {{with .GPA}}<span class="ex-loc">GPA {{.}}</span>{{end}}
      </div>
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .C.Skills}}
  <section>
    <h2>Skills</h2>
    {{range .C.Skills}}<p class="ex-skill-line"><b>{{.Category}}:</b> {{join .Items ", "}}</p>{{end}}
  </section>
  {{end}}
  {{if .C.Projects}}
  <section>
    <h2>Projects</h2>
    {{range .C.Projects}}
    <div class="ex-entry">
      <div class="ex-role">{{.Name}}</div>
      {{if .Technologies}}<div class="ex-tech">{{join .Technologies ", "}}</div>{{end}}
      {{with .Description}}<p class="ex-desc">{{.}}</p>{{end}}
      {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
</div>
{{end}}`
