package main

import "testing"

func TestCanonicalSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		slug string
		want string
	}{
		{
			name: "alias with underscores",
			slug: "inbox_zero_classifier",
			want: "inbox-zero-classifier",
		},
		{
			name: "alias without separators",
			slug: "inboxzero",
			want: "inbox-zero-classifier",
		},
		{
			name: "long-form onboarding alias",
			slug: "google-workspace-onboarding-automation",
			want: "onboarding",
		},
		{
			name: "unknown slug is lowercased and trimmed",
			slug: "  My-New-Topic ",
			want: "my-new-topic",
		},
		{
			name: "empty stays empty",
			slug: "",
			want: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := canonicalSlug(tt.slug)
			if got != tt.want {
				t.Errorf("canonicalSlug(%q) = %q, want %q", tt.slug, got, tt.want)
			}
			// Canonicalizing a canonical value must return it unchanged.
			if again := canonicalSlug(got); again != got {
				t.Errorf("canonicalSlug not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCanonicalHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{
			name:    "exact curated heading",
			heading: "Introduction",
			want:    "Introduction",
		},
		{
			name:    "variant casing and punctuation",
			heading: "Results & Pitfalls",
			want:    "Results & pitfalls",
		},
		{
			name:    "extra spacing around the ampersand",
			heading: "starter rules  &  labels",
			want:    "Starter rules & labels",
		},
		{
			name:    "shortened onboarding alias",
			heading: "Why Apps Script",
			want:    "Why Apps Script + Admin SDK",
		},
		{
			name:    "unknown heading keeps original casing",
			heading: "A Brand-New Heading",
			want:    "A Brand-New Heading",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := canonicalHeading(tt.heading)
			if got != tt.want {
				t.Errorf("canonicalHeading(%q) = %q, want %q", tt.heading, got, tt.want)
			}
			if again := canonicalHeading(got); again != got {
				t.Errorf("canonicalHeading not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Results & Pitfalls", "results pitfalls"},
		{"  Scheduling   &   Maintenance  ", "scheduling maintenance"},
		{"Why Apps Script + Admin SDK", "why apps script admin sdk"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := normHeading(tt.in); got != tt.want {
			t.Errorf("normHeading(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
