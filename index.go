package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const indexFileName = "index.html"

const snippetMaxLen = 140

var (
	titleRe = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	paraRe  = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)
)

// An indexEntry is one post on the blog index page, extracted from a
// generated HTML file.
type indexEntry struct {
	Name    string // file name within the blog dir
	Title   string
	Snippet string
	ModTime time.Time
}

// Called from templates
func (e indexEntry) FormatDateShort() string {
	return formatDateShort(e.ModTime)
}

// Called from templates
func (e indexEntry) ShortSnippet() string {
	return truncate(e.Snippet, snippetMaxLen)
}

// collectIndexEntries scans the blog dir for generated posts, skipping
// the index page itself. Titles come from the first <h1>, falling back
// to the title-cased file name; snippets from the first <p>. Entries
// with a duplicate title (case-insensitive) are dropped, first file in
// name order wins, and the survivors are ordered newest first by file
// modification time.
func collectIndexEntries(blogDir string) ([]indexEntry, error) {
	dirEntries, err := os.ReadDir(blogDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %v: %w", blogDir, err)
	}

	entries := make([]indexEntry, 0, len(dirEntries))
	seenTitles := make(map[string]bool)

	// os.ReadDir returns entries sorted by name, which makes the
	// de-duplication winner stable across runs and platforms.
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".html") {
			continue
		}
		if strings.EqualFold(name, indexFileName) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(blogDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading post %v: %w", name, err)
		}

		title := extractFirst(titleRe, string(content))
		if title == "" {
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			title = titleFromSlug(stem)
		}
		if seenTitles[strings.ToLower(title)] {
			continue
		}
		seenTitles[strings.ToLower(title)] = true

		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("stat post %v: %w", name, err)
		}

		entries = append(entries, indexEntry{
			Name:    name,
			Title:   title,
			Snippet: extractFirst(paraRe, string(content)),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})

	return entries, nil
}

// extractFirst returns the inner text of the first match of re, with
// nested tags stripped.
func extractFirst(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
}

func (s *site) buildIndex(entries []indexEntry) error {
	outFile, err := os.Create(filepath.Join(s.conf.BlogDir, indexFileName))
	if err != nil {
		return err
	}
	defer outFile.Close()

	return s.engine.renderIndex(s.conf, entries, outFile)
}
