package templates

func init() { register(CompactPro, compactProHTML) }

// Compact Pro: dense single-page layout, small type, tight margins, dot
// bullets, skills as one semicolon-joined block per category.
const compactProHTML = `{{define "body"}}
<style>
.cp { padding: 8mm 10mm; font-size: 8.5pt; line-height: 1.35; }
.cp-top { display: flex; justify-content: space-between; align-items: flex-end; border-bottom: 1.5pt solid #000; padding-bottom: 2mm; margin-bottom: 3mm; }
.cp-name { font-size: 16pt; font-weight: 700; }
.cp-contact { text-align: right; font-size: 7.5pt; color: #333; }
.cp-contact a { color: #333; text-decoration: none; }
.cp h2 { font-size: 8pt; font-weight: 700; text-transform: uppercase; letter-spacing: 1.5pt; background: #eee; padding: .8mm 1.5mm; margin: 3mm 0 1.5mm; }
.cp-summary { color: #222; }
.cp-entry { margin-bottom: 2.5mm; }
.cp-head { display: flex; justify-content: space-between; align-items: baseline; }
.cp-t { font-weight: 700; font-size: 9pt; }
.cp-sub { font-size: 8pt; color: #444; }
.cp-date { font-size: 7.5pt; color: #666; white-space: nowrap; margin-left: 3mm; }
.cp-desc { color: #333; font-size: 8pt; }
.cp ul { list-style: none; margin-left: 2mm; }
.cp li { font-size: 8pt; color: #333; }
.cp li::before { content: "\2022 "; color: #888; }
.cp-skill { font-size: 8pt; margin-bottom: .8mm; }
.cp-skill b { font-weight: 700; }
.cp-tech { font-size: 7.5pt; color: #666; }
</style>
<div class="cp">
  <div class="cp-top">
    <div class="cp-name">{{if .C.PersonalInfo.FullName}}{{.C.PersonalInfo.FullName}}{{else}}Your Name{{end}}</div>
    <div class="cp-contact">
      {{with .C.PersonalInfo.Email}}<div>{{.}}</div>{{end}}
      <div>
        {{with .C.PersonalInfo.Phone}}{{.}}{{end}}
        {{with .C.PersonalInfo.Location}} &middot; {{.}}{{end}}
      </div>
      <div>
        {{with .C.PersonalInfo.Website}}<a href="{{href .}}">Portfolio</a>{{end}}
        {{with .C.PersonalInfo.LinkedIn}} <a href="{{href .}}">LinkedIn</a>{{end}}
        {{with .C.PersonalInfo.GitHub}} <a href="{{href .}}">GitHub</a>{{end}}
      </div>
    </div>
  </div>
  {{with .C.PersonalInfo.Summary}}<p class="cp-summary">{{.}}</p>{{end}}
  {{if .C.Experience}}
  <h2>Experience</h2>
  {{range .C.Experience}}
  <div class="cp-entry">
    <div class="cp-head">
      <span><span class="cp-t">{{.Position}}</span> <span class="cp-sub">&mdash; {{.Company}}{{with .Location}}, {{.}}{{end}}</span></span>
      <span class="cp-date">{{dateRange .StartDate .EndDate .Current}}</span>
    </div>
    {{with .Description}}<p class="cp-desc">{{.}}</p>{{end}}
    {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
  {{end}}
  {{if .C.Skills}}
  <h2>Skills</h2>
  {{range .C.Skills}}<div class="cp-skill"><b>{{.Category}}:</b> {{join .Items "; "}}</div>{{end}}
  {{end}}
  {{if .C.Projects}}
  <h2>Projects</h2>
  {{range .C.Projects}}
  <div class="cp-entry">
    <div class="cp-head">
      <span class="cp-t">{{.Name}}</span>
      {{if .Technologies}}<span class="cp-tech">{{join .Technologies ", "}}</span>{{end}}
    </div>
    {{with .Description}}<p class="cp-desc">{{.}}</p>{{end}}
    {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
  {{end}}
  {{if .C.Education}}
  <h2>Education</h2>
  {{range .C.Education}}
  <div class="cp-entry">
    <div class="cp-head">
      <span><span class="cp-t">{{.Degree}}{{with .Field}}, {{.}}{{end}}</span> <span class="cp-sub">&mdash; {{.Institution}}{{with .GPA}}, GPA {{.}}{{end}}</span></span>
      <span class="cp-date">{{dateRange .StartDate .EndDate .Current}}</span>
    </div>
  </div>
  {{end}}
  {{end}}
</div>
{{end}}`
