package main

import (
	"html/template"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatDate(d time.Time) string {
	return d.Format("January 02, 2006")
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 02, 2006")
}

const defaultCTAText = "Want ready-to-use scripts and templates?"

const metaDescMaxLen = 155

type sectionParam struct {
	Heading string
	Copy    template.HTML
}

type postTemplateParam struct {
	SiteTitle string
	Author    string
	Title     string
	MetaDesc  string
	Date      string
	Summary   string
	Sections  []sectionParam
	CTAText   string
}

type indexTemplateParam struct {
	SiteTitle       string
	SiteDescription string
	Posts           []indexEntry
}

type renderer interface {
	render(in []byte) string
}

type templateEngine struct {
	toHtml renderer
	// Sampled once per post render; injectable so tests can pin the
	// publish date.
	now func() time.Time

	postTmpl  *template.Template
	indexTmpl *template.Template
}

func newTemplateEngine(r renderer, now func() time.Time) *templateEngine {
	return &templateEngine{
		toHtml:    r,
		now:       now,
		postTmpl:  template.Must(template.New("post").Parse(postTemplate)),
		indexTmpl: template.Must(template.New("index").Parse(indexTemplate)),
	}
}

func (te *templateEngine) renderPost(conf *SiteConf, t *topic, w io.Writer) error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = titleFromSlug(t.Slug)
	}

	metaDesc := t.Summary
	if metaDesc == "" {
		metaDesc = title
	}
	metaDesc = strings.ReplaceAll(truncate(metaDesc, metaDescMaxLen), `"`, "")

	ctaText := t.CTAText
	if ctaText == "" {
		ctaText = defaultCTAText
	}

	sections := make([]sectionParam, 0, len(t.Sections))
	for _, h := range t.Sections {
		sections = append(sections, sectionParam{
			Heading: h,
			Copy:    template.HTML(te.toHtml.render([]byte(sectionText(t.Slug, h)))),
		})
	}

	p := postTemplateParam{
		SiteTitle: conf.SiteTitle,
		Author:    conf.Author,
		Title:     title,
		MetaDesc:  metaDesc,
		Date:      formatDate(te.now()),
		Summary:   t.Summary,
		Sections:  sections,
		CTAText:   ctaText,
	}
	return te.postTmpl.Execute(w, p)
}

func (te *templateEngine) renderIndex(conf *SiteConf, entries []indexEntry, w io.Writer) error {
	p := indexTemplateParam{
		SiteTitle:       conf.SiteTitle,
		SiteDescription: conf.SiteDescription,
		Posts:           entries,
	}
	return te.indexTmpl.Execute(w, p)
}

// titleFromSlug turns "inbox-zero-classifier" into "Inbox Zero Classifier".
func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

const postTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <meta name="description" content="{{.MetaDesc}}" />
  <style>
    :root { --ink:#111; --muted:#555; --brand:#2563eb; --bg:#f7f7f8; }
    body { font-family: system-ui, -apple-system, Arial, sans-serif; color:var(--ink); line-height:1.65; margin: 40px auto; max-width: 820px }
    h1 { font-size:32px; margin:.2rem 0 1rem }  h2 { font-size:22px; margin:1.6rem 0 .6rem }
    p { margin:.6rem 0 }  ul { margin:.4rem 0 .8rem 1.2rem }
    pre { background:#f4f4f4; padding:12px; border-radius:8px; overflow:auto }
    a { color:var(--brand); text-decoration:none }  a:hover { text-decoration:underline }
    .muted { color:var(--muted); font-size:.9rem } .card { background:var(--bg); padding:14px 16px; border-radius:10px }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p class="muted"><em>Published: {{.Date}} · Author: {{.Author}}</em></p>

{{if .Summary}}  <p class="card">{{.Summary}}</p>
{{end}}{{range .Sections}}  <h2>{{.Heading}}</h2>
  {{.Copy}}
{{end}}
  <h2>Next Steps</h2>
  <p>{{.CTAText}} — <a href="https://itautomator.gumroad.com/l/google-workspace-automation-starter" target="_blank">Starter Pack</a>
  or <a href="https://itautomator.gumroad.com/l/google-workspace-automation-pro" target="_blank">Pro Pack</a>.</p>

  <p><a href="/blog/">← Back to Blog</a></p>
</body>
</html>
`

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Blog | {{.SiteTitle}}</title>
  <meta name="description" content="{{.SiteDescription}}">
  <style>
    body{font-family:system-ui,-apple-system,Arial,sans-serif;line-height:1.65;margin:40px auto;max-width:820px;color:#111}
    h1{font-size:28px;margin-bottom:16px}
    ul{padding-left:20px} li{margin-bottom:14px}
    a{color:#2563eb;text-decoration:none} a:hover{text-decoration:underline}
    .muted{color:#555;font-size:.9rem}
  </style>
</head>
<body>
  <h1>{{.SiteTitle}} Blog</h1>
  <ul>
{{range .Posts}}    <li>
      <a href="/blog/{{.Name}}">{{.Title}}</a>
      <div class="muted">{{.FormatDateShort}} — {{.ShortSnippet}}</div>
    </li>
{{end}}  </ul>
  <p><a href="/index.html">← Back to Home</a></p>
</body>
</html>
`
