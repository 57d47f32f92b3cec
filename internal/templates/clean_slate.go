package templates

func init() { register(CleanSlate, cleanSlateHTML) }

// Clean Slate: airy single column, muted gray section labels, en-dash
// bullets, no rules or boxes.
const cleanSlateHTML = `{{define "body"}}
<style>
.cs { padding: 16mm 18mm; font-size: 9.5pt; line-height: 1.55; }
.cs-name { font-size: 21pt; font-weight: 700; margin-bottom: 1mm; }
.cs-contact { font-size: 8.5pt; color: #777; margin-bottom: 8mm; }
.cs-contact span + span::before { content: "   /   "; white-space: pre; }
.cs-contact a { color: #777; text-decoration: none; }
.cs h2 { font-size: 8.5pt; font-weight: 600; text-transform: uppercase; letter-spacing: 2.5pt; color: #999; margin: 8mm 0 3mm; }
.cs-summary { color: #333; max-width: 150mm; }
.cs-entry { margin-bottom: 5.5mm; }
.cs-head { display: flex; justify-content: space-between; align-items: baseline; }
.cs-title { font-weight: 600; font-size: 10.5pt; }
.cs-sub { color: #555; font-size: 9pt; }
.cs-date { color: #aaa; font-size: 8.5pt; white-space: nowrap; margin-left: 4mm; }
.cs-desc { color: #444; font-size: 9pt; margin-top: 1mm; }
.cs ul { list-style: none; margin-top: 1mm; }
.cs li { color: #444; font-size: 9pt; }
.cs li::before { content: "\2013  "; color: #bbb; }
.cs-tech { color: #999; font-size: 8.5pt; margin-top: .5mm; }
.cs-skill { margin-bottom: 1.5mm; font-size: 9pt; }
.cs-skill b { font-weight: 600; }
.cs-skill span { color: #555; }
</style>
<div class="cs">
  <header>
    <div class="cs-name">{{if .C.PersonalInfo.FullName}}{{.C.PersonalInfo.FullName}}{{else}}Your Name{{end}}</div>
    <div class="cs-contact">
      {{with .C.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Location}}<span>{{.}}</span>{{end}}
      {{with .C.PersonalInfo.Website}}<span><a href="{{href .}}">Portfolio</a></span>{{end}}
      {{with .C.PersonalInfo.LinkedIn}}<span><a href="{{href .}}">LinkedIn</a></span>{{end}}
      {{with .C.PersonalInfo.GitHub}}<span><a href="{{href .}}">GitHub</a></span>{{end}}
    </div>
  </header>
  {{with .C.PersonalInfo.Summary}}<p class="cs-summary">{{.}}</p>{{end}}
  {{if .C.Experience}}
  <section>
    <h2>Experience</h2>
    {{range .C.Experience}}
    <div class="cs-entry">
      <div class="cs-head">
        <span class="cs-title">{{.Position}}</span>
        <span class="cs-date">{{dateRange .StartDate .EndDate .Current}}</span>
      </div>
      <div class="cs-sub">{{.Company}}{{with .Location}}, {{.}}{{end}}</div>
      {{with .Description}}<p class="cs-desc">{{.}}</p>{{end}}
      {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .C.Projects}}
  <section>
    <h2>Projects</h2>
    {{range .C.Projects}}
    <div class="cs-entry">
      <div class="cs-title">{{.Name}}</div>
      {{if .Technologies}}<div class="cs-tech">{{join .Technologies ", "}}</div>{{end}}
      {{with .Description}}<p class="cs-desc">{{.}}</p>{{end}}
      {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .C.Skills}}
  <section>
    <h2>Skills</h2>
    {{range .C.Skills}}<div class="cs-skill"><b>{{.Category}}</b> &mdash; <span>{{join .Items ", "}}</span></div>{{end}}
  </section>
  {{end}}
  {{if .C.Education}}
  <section>
    <h2>Education</h2>
    {{range .C.Education}}
    <div class="cs-entry">
      <div class="cs-head">
        <span class="cs-title">{{.Degree}}{{with .Field}}, {{.}}{{end}}</span>
        <span class="cs-date">{{dateRange .StartDate .EndDate .Current}}</span>
      </div>
      <div class="cs-sub">{{.Institution}}{{with .GPA}} &middot; GPA {{.}}{{end}}</div>
    </div>
    {{end}}
  </section>
  {{end}}
</div>
{{end}}`
