package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUpdateSitemapCreatesBoilerplate(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	if err := s.updateSitemap("inbox-zero-classifier"); err != nil {
		t.Fatal(err)
	}

	urlSet, err := readSitemap(s.conf.Sitemap, s.conf.SiteURL)
	if err != nil {
		t.Fatal(err)
	}
	if len(urlSet.URLs) != 3 {
		t.Fatalf("got %d sitemap entries, want 3", len(urlSet.URLs))
	}
	if urlSet.URLs[0].Loc != "https://example.com/" || urlSet.URLs[0].Priority != "1.0" {
		t.Errorf("unexpected root entry: %+v", urlSet.URLs[0])
	}
	if urlSet.URLs[1].Loc != "https://example.com/blog/" || urlSet.URLs[1].Priority != "0.6" {
		t.Errorf("unexpected blog index entry: %+v", urlSet.URLs[1])
	}
	if urlSet.URLs[2].Loc != "https://example.com/blog/inbox-zero-classifier.html" || urlSet.URLs[2].Priority != "0.8" {
		t.Errorf("unexpected post entry: %+v", urlSet.URLs[2])
	}
}

func TestUpdateSitemapIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	for i := 0; i < 3; i++ {
		if err := s.updateSitemap("onboarding"); err != nil {
			t.Fatal(err)
		}
	}

	raw, err := os.ReadFile(s.conf.Sitemap)
	if err != nil {
		t.Fatal(err)
	}
	url := "https://example.com/blog/onboarding.html"
	if got := strings.Count(string(raw), url); got != 1 {
		t.Errorf("got %d entries for %v, want exactly 1", got, url)
	}
}

func TestUpdateSitemapAppendsDistinctSlugs(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	for _, slug := range []string{"onboarding", "offboarding"} {
		if err := s.updateSitemap(slug); err != nil {
			t.Fatal(err)
		}
	}

	urlSet, err := readSitemap(s.conf.Sitemap, s.conf.SiteURL)
	if err != nil {
		t.Fatal(err)
	}
	if len(urlSet.URLs) != 4 {
		t.Errorf("got %d sitemap entries, want 4", len(urlSet.URLs))
	}
}

func TestUpdateSitemapSurvivesReformatting(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	if err := s.updateSitemap("onboarding"); err != nil {
		t.Fatal(err)
	}

	// Rewrite the file with different whitespace, as a hand edit would.
	raw, err := os.ReadFile(s.conf.Sitemap)
	if err != nil {
		t.Fatal(err)
	}
	squashed := strings.ReplaceAll(strings.ReplaceAll(string(raw), "\n", ""), "  ", "")
	if err := os.WriteFile(s.conf.Sitemap, []byte(squashed), 0664); err != nil {
		t.Fatal(err)
	}

	if err := s.updateSitemap("offboarding"); err != nil {
		t.Fatal(err)
	}
	urlSet, err := readSitemap(s.conf.Sitemap, s.conf.SiteURL)
	if err != nil {
		t.Fatal(err)
	}
	if len(urlSet.URLs) != 4 {
		t.Errorf("got %d sitemap entries after reformat, want 4", len(urlSet.URLs))
	}
}

func TestUpdateSitemapRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	if err := os.WriteFile(s.conf.Sitemap, []byte("<urlset><url><loc>broken"), 0664); err != nil {
		t.Fatal(err)
	}
	if err := s.updateSitemap("onboarding"); err == nil {
		t.Error("expected an error for a corrupt sitemap")
	}
}

func TestReadSitemapMissingFileSeedsBoilerplate(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	urlSet, err := readSitemap(filepath.Join(s.conf.SiteDir, "sitemap.xml"), s.conf.SiteURL)
	if err != nil {
		t.Fatal(err)
	}
	if len(urlSet.URLs) != 2 {
		t.Errorf("boilerplate has %d entries, want 2", len(urlSet.URLs))
	}
}
