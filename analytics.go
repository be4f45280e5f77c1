package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const gaSnippetFmt = `<!-- Google tag (gtag.js) -->
<script async src="https://www.googletagmanager.com/gtag/js?id=%s"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());
  gtag('config', '%s');
</script>`

func gaSnippet(measurementID string) string {
	return fmt.Sprintf(gaSnippetFmt, measurementID, measurementID)
}

func hasGASnippet(html, measurementID string) bool {
	return strings.Contains(html, measurementID) ||
		strings.Contains(html, "googletagmanager.com/gtag/js?id=")
}

// injectGASnippet inserts the gtag snippet just before </head>. Files
// that already carry a snippet, or have no head element, come back
// unchanged.
func injectGASnippet(html, measurementID string) string {
	if hasGASnippet(html, measurementID) {
		return html
	}
	idx := strings.Index(strings.ToLower(html), "</head>")
	if idx == -1 {
		return html
	}
	return html[:idx] + gaSnippet(measurementID) + "\n" + html[idx:]
}

// injectGA walks the HTML files in the site root and the blog dir and
// injects the analytics snippet where it is missing. Returns the number
// of files changed.
func (s *site) injectGA() (int, error) {
	if s.conf.GAMeasurementID == "" {
		return 0, fmt.Errorf("no gaMeasurementId configured")
	}

	var files []string
	for _, dir := range []string{s.conf.SiteDir, s.conf.BlogDir} {
		matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
		if err != nil {
			return 0, err
		}
		files = append(files, matches...)
	}

	changed := 0
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return changed, fmt.Errorf("reading %v: %w", f, err)
		}
		html := string(raw)
		if !strings.Contains(strings.ToLower(html), "</head>") {
			continue
		}
		injected := injectGASnippet(html, s.conf.GAMeasurementID)
		if injected == html {
			continue
		}
		if err := os.WriteFile(f, []byte(injected), 0664); err != nil {
			return changed, fmt.Errorf("writing %v: %w", f, err)
		}
		changed++
		log.Printf("Injected GA into: %v", f)
	}

	return changed, nil
}
