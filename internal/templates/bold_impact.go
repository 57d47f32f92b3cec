package templates

func init() { register(BoldImpact, boldImpactHTML) }

// Bold Impact: oversized name, full-bleed black section bars, square
// bullets, two-column skills grid.
const boldImpactHTML = `{{define "body"}}
<style>
.bi { padding: 10mm 12mm; }
.bi-name { font-size: 30pt; font-weight: 900; line-height: .95; letter-spacing: -1pt; text-transform: uppercase; margin-bottom: 2mm; }
.bi-contact { font-size: 8.5pt; font-weight: 700; margin-bottom: 6mm; }
.bi-contact span + span::before { content: "  \2022  "; }
.bi-contact a { text-decoration: none; }
.bi-bar { background: #000; color: #fff; font-size: 9.5pt; font-weight: 900; text-transform: uppercase; letter-spacing: 2pt; padding: 1.6mm 3mm; margin: 6mm 0 3mm; }
.bi-summary { font-size: 10pt; font-weight: 500; line-height: 1.5; }
.bi-entry { margin-bottom: 5mm; }
.bi-head { display: flex; justify-content: space-between; align-items: baseline; }
.bi-pos { font-size: 11.5pt; font-weight: 900; }
.bi-co { font-size: 9.5pt; font-weight: 700; }
.bi-date { font-size: 8.5pt; font-weight: 700; white-space: nowrap; margin-left: 4mm; }
.bi-loc { font-size: 8.5pt; color: #444; }
.bi-desc { font-size: 9pt; line-height: 1.5; margin-top: 1mm; }
.bi ul { list-style: none; margin-top: 1mm; }
.bi li { display: flex; font-size: 9pt; line-height: 1.5; }
.bi li::before { content: "\25A0"; font-size: 6pt; margin: 1mm 2mm 0 0; }
.bi-skills { display: flex; flex-wrap: wrap; }
.bi-skill { width: 50%; margin-bottom: 2.5mm; padding-right: 4mm; box-sizing: border-box; }
.bi-skill b { display: block; font-size: 9pt; font-weight: 900; text-transform: uppercase; }
.bi-skill span { font-size: 8.5pt; color: #333; }
.bi-tech { font-size: 8.5pt; font-weight: 700; color: #444; margin-top: .5mm; }
</style>
<div class="bi">
  <header>
    <h1 class="bi-name">{{if .C.PersonalInfo.FullName}}{{.C.PersonalInfo.FullName}}{{else}}Your Name{{end}}</h1>
    <div class="bi-contact">
      {{with .C.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Location}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Website}}<span><a href="{{href .}}">Portfolio</a></span>{{end}}
      {{with .C.PersonalInfo.LinkedIn}}<span><a href="{{href .}}">LinkedIn</a></span>{{end}}
      {{with .C.PersonalInfo.GitHub}}<span><a href="{{href .}}">GitHub</a></span>{{end}}
    </div>
  </header>
  {{with .C.PersonalInfo.Summary}}
  <div class="bi-bar">About</div>
  <p class="bi-summary">{{.}}</p>
  {{end}}
  {{if .C.Experience}}
  <div class="bi-bar">Experience</div>
  {{range .C.Experience}}
  <div class="bi-entry">
    <div class="bi-head">
      <span class="bi-pos">{{.Position}}</span>
      <span class="bi-date">{{dateRange .StartDate .EndDate .Current}}</span>
    </div>
    <div class="bi-co">{{.Company}}</div>
    {{with .Location}}<div class="bi-loc">{{.}}</div>{{end}}
    {{with .Description}}<p class="bi-desc">{{.}}</p>{{end}}
    {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
  {{end}}
  {{if .C.Skills}}
  <div class="bi-bar">Skills</div>
  <div class="bi-skills">
    {{range .C.Skills}}<div class="bi-skill"><b>{{.Category}}</b><span>{{join .Items ", "}}</span></div>{{end}}
  </div>
  {{end}}
  {{if .C.Projects}}
  <div class="bi-bar">Projects</div>
  {{range .C.Projects}}
  <div class="bi-entry">
    <div class="bi-pos">{{.Name}}</div>
    {{if .Technologies}}<div class="bi-tech">{{join .Technologies " / "}}</div>{{end}}
    {{with .Description}}<p class="bi-desc">{{.}}</p>{{end}}
    {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
  {{end}}
  {{if .C.Education}}
  <div class="bi-bar">Education</div>
  {{range .C.Education}}
  <div class="bi-entry">
    <div class="bi-head">
      <span class="bi-pos">{{.Degree}}{{with .Field}} &middot; {{.}}{{end}}</span>
      <span class="bi-date">{{dateRange .StartDate .EndDate .Current}}</span>
    </div>
    <div class="bi-co">{{.Institution}}{{with .GPA}} &middot; GPA {{.}}{{end}}</div>
  </div>
  {{end}}
  {{end}}
</div>
{{end}}`
