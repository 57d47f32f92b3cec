package templates

func init() { register(LabProtocol, labProtocolHTML) }

// Lab Protocol: black sidebar (contact, links, skills, education) with a
// white main column (profile, experience, projects). Mono uppercase labels.
const labProtocolHTML = `{{define "body"}}
<style>
.lp { display: flex; min-height: 297mm; }
.lp-side { width: 63mm; background: #000; color: #fff; padding: 10mm 7mm; }
.lp-main { flex: 1; padding: 10mm 9mm; }
.lp-name { font-size: 22pt; font-weight: 900; letter-spacing: -0.5pt; line-height: 1.05; word-break: break-word; }
.lp-rule { width: 12mm; border-top: 1px solid #fff; margin: 3mm 0 8mm; }
.lp-label { font-family: 'JetBrains Mono', monospace; font-size: 7pt; text-transform: uppercase; letter-spacing: 2pt; opacity: .6; margin-bottom: 2.5mm; }
.lp-main .lp-label { opacity: 1; border-bottom: 1px solid #000; padding-bottom: 1mm; margin-bottom: 3mm; }
.lp-side section { margin-bottom: 8mm; }
.lp-side .item { font-size: 8pt; margin-bottom: 1.5mm; word-break: break-word; }
.lp-side a { display: block; font-size: 8pt; text-decoration: none; margin-bottom: 1.5mm; }
.lp-side a span { opacity: .6; }
.lp-skill-cat { font-weight: 700; font-size: 8.5pt; margin-bottom: .5mm; }
.lp-skill-items { font-size: 7.5pt; line-height: 1.5; opacity: .9; margin-bottom: 2.5mm; }
.lp-edu { font-size: 8pt; margin-bottom: 3.5mm; }
.lp-edu .degree { font-weight: 700; }
.lp-edu .meta { opacity: .7; font-size: 7.5pt; }
.lp-main section { margin-bottom: 8mm; }
.lp-summary { font-size: 9.5pt; line-height: 1.55; }
.lp-entry { margin-bottom: 5.5mm; }
.lp-entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.lp-position { font-weight: 700; font-size: 11pt; line-height: 1.2; }
.lp-company { font-size: 9.5pt; }
.lp-date { font-family: 'JetBrains Mono', monospace; font-size: 7.5pt; opacity: .6; margin-left: 4mm; white-space: nowrap; }
.lp-loc { font-size: 8pt; opacity: .6; margin-bottom: 1mm; }
.lp-desc { font-size: 8.5pt; line-height: 1.5; margin-bottom: 1.5mm; }
.lp-bullets { list-style: none; }
.lp-bullets li { display: flex; font-size: 8.5pt; line-height: 1.5; }
.lp-bullets li::before { content: "\25AA"; margin-right: 2mm; }
.lp-tech { font-family: 'JetBrains Mono', monospace; font-size: 7.5pt; opacity: .6; margin-bottom: 1.5mm; }
</style>
<div class="lp">
  <aside class="lp-side">
    <h1 class="lp-name">{{if .C.PersonalInfo.FullName}}{{.C.PersonalInfo.FullName}}{{else}}YOUR NAME{{end}}</h1>
    <div class="lp-rule"></div>
    <section>
      <div class="lp-label">Contact</div>
      {{with .C.PersonalInfo.Email}}<div class="item">{{.}}</div>{{end}}
      {{with .C.PersonalInfo.Phone}}<div class="item">{{.}}</div>{{end}}
      {{with .C.PersonalInfo.Location}}<div class="item">{{.}}</div>{{end}}
    </section>
    {{if or .C.PersonalInfo.Website .C.PersonalInfo.LinkedIn .C.PersonalInfo.GitHub}}
    <section>
      <div class="lp-label">Links</div>
      {{with .C.PersonalInfo.Website}}<a href="{{href .}}"><span>WEB//</span> Portfolio</a>{{end}}
      {{with .C.PersonalInfo.LinkedIn}}<a href="{{href .}}"><span>IN//</span> LinkedIn</a>{{end}}
      {{with .C.PersonalInfo.GitHub}}<a href="{{href .}}"><span>GH//</span> GitHub</a>{{end}}
    </section>
    {{end}}
    {{if .C.Skills}}
    <section>
      <div class="lp-label">Technical</div>
      {{range .C.Skills}}
      <div class="lp-skill-cat">{{.Category}}</div>
      <div class="lp-skill-items">{{join .Items " • "}}</div>
      {{end}}
    </section>
    {{end}}
    {{if .C.Education}}
    <section>
      <div class="lp-label">Education</div>
      {{range .C.Education}}
      <div class="lp-edu">
        <div class="degree">{{.Degree}}</div>
        <div>{{.Field}}</div>
        <div class="meta">{{.Institution}}</div>
        <div class="meta">{{dateRange .StartDate .EndDate .Current}}</div>
        {{with .GPA}}<div class="meta">GPA {{.}}</div>{{end}}
      </div>
      {{end}}
    </section>
    {{end}}
  </aside>
  <main class="lp-main">
    {{with .C.PersonalInfo.Summary}}
    <section>
      <div class="lp-label">Profile</div>
      <p class="lp-summary">{{.}}</p>
    </section>
    {{end}}
    {{if .C.Experience}}
    <section>
      <div class="lp-label">Experience</div>
      {{range .C.Experience}}
      <div class="lp-entry">
        <div class="lp-entry-head">
          <div>
            <div class="lp-position">{{.Position}}</div>
            <div class="lp-company">{{.Company}}</div>
          </div>
          <div class="lp-date">{{dateRange .StartDate .EndDate .Current}}</div>
        </div>
        {{with .Location}}<div class="lp-loc">{{.}}</div>{{end}}
        {{with .Description}}<p class="lp-desc">{{.}}</p>{{end}}
        {{if .Highlights}}<ul class="lp-bullets">{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
      </div>
      {{end}}
    </section>
    {{end}}
    {{if .C.Projects}}
    <section>
      <div class="lp-label">Projects</div>
      {{range .C.Projects}}
      <div class="lp-entry">
        <div class="lp-position">{{.Name}}</div>
        {{with .Description}}<p class="lp-desc">{{.}}</p>{{end}}
        {{if .Technologies}}<div class="lp-tech">{{join .Technologies " • "}}</div>{{end}}
        {{if .Highlights}}<ul class="lp-bullets">{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
      </div>
      {{end}}
    </section>
    {{end}}
  </main>
</div>
{{end}}`
