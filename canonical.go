package main

import (
	"regexp"
	"strings"
)

// Raw slug and heading spellings vary across topics.csv edits; these
// tables fold the known variants onto the keys used by the copy library
// and the output filenames.

var slugAliases = map[string]string{
	"google-workspace-onboarding-automation":  "onboarding",
	"google-workspace-offboarding-automation": "offboarding",
	"inboxzero":                               "inbox-zero-classifier",
	"inbox_zero_classifier":                   "inbox-zero-classifier",
}

var headingAliases = map[string]string{
	// onboarding
	"the problem with manual onboarding": "The problem with manual onboarding",
	"why apps script admin sdk":          "Why Apps Script + Admin SDK",
	"why apps script":                    "Why Apps Script + Admin SDK",
	"what this automation does":          "What this automation does",
	"script outline":                     "Script outline",
	"common pitfalls":                    "Common pitfalls",
	"results":                            "Results",
	// inbox zero
	"introduction":             "Introduction",
	"why automate inbox zero":  "Why automate Inbox Zero",
	"how the classifier works": "How the classifier works",
	"starter rules labels":     "Starter rules & labels",
	"scheduling maintenance":   "Scheduling & maintenance",
	"results pitfalls":         "Results & pitfalls",
	// offboarding
	"risks of manual offboarding": "Risks of manual offboarding",
	"suspend secure":              "Suspend & secure",
	"drive transfer":              "Drive transfer",
	"groups aliases cleanup":      "Groups & aliases cleanup",
	"archive retention policy":    "Archive & retention policy",
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normHeading lowercases a heading and collapses every run of
// non-alphanumeric characters to a single space, so variant punctuation
// and spacing land on the same lookup key.
func normHeading(h string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(h), " "))
}

// canonicalSlug maps a raw slug to its canonical form. Unknown slugs are
// treated as already canonical after lowercasing and trimming, so the
// function is idempotent.
func canonicalSlug(slug string) string {
	s := strings.ToLower(strings.TrimSpace(slug))
	if c, ok := slugAliases[s]; ok {
		return c
	}
	return s
}

// canonicalHeading resolves a heading against the alias table. A miss
// returns the heading unmodified, preserving its original casing for
// display.
func canonicalHeading(h string) string {
	if c, ok := headingAliases[normHeading(h)]; ok {
		return c
	}
	return h
}
