package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// A topic is one row of topics.csv: the recipe for a single post. Rows
// are never mutated or removed from the source file; whether a topic has
// been published is tracked solely by its output file existing.
type topic struct {
	Slug     string // canonical, never empty
	Title    string
	Summary  string
	Sections []string
	CTAText  string
}

// readTopics loads every usable topic row from the CSV file at path, in
// source order. Rows without a slug are skipped. Missing optional
// columns are tolerated; only the header row is required.
func readTopics(path string) ([]*topic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading topics: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading topics header in %v: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var topics []*topic
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading topics row in %v: %w", path, err)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		slug := canonicalSlug(field("slug"))
		if slug == "" {
			continue
		}

		topics = append(topics, &topic{
			Slug:     slug,
			Title:    field("title"),
			Summary:  field("summary"),
			Sections: splitSections(field("sections")),
			CTAText:  field("cta_text"),
		})
	}

	return topics, nil
}

// splitSections splits the pipe-delimited sections column, dropping
// empty entries so stray separators don't produce blank headings.
func splitSections(s string) []string {
	var sections []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			sections = append(sections, part)
		}
	}
	return sections
}
