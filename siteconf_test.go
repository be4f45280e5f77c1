package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	conf := readConf(filepath.Join(dir, "sitegen.yaml"))

	if conf.SiteURL != "https://gwsautomate.com" {
		t.Errorf("SiteURL = %q", conf.SiteURL)
	}
	if conf.SiteTitle != "GWS Automate" {
		t.Errorf("SiteTitle = %q", conf.SiteTitle)
	}
	if conf.AuthorURI != conf.SiteURL {
		t.Errorf("AuthorURI = %q, want the site URL", conf.AuthorURI)
	}
	if want := filepath.Join(dir, "blog"); conf.BlogDir != want {
		t.Errorf("BlogDir = %q, want %q", conf.BlogDir, want)
	}
	if want := filepath.Join(dir, "content", "topics.csv"); conf.TopicsCSV != want {
		t.Errorf("TopicsCSV = %q, want %q", conf.TopicsCSV, want)
	}
	if want := filepath.Join(dir, "sitemap.xml"); conf.Sitemap != want {
		t.Errorf("Sitemap = %q, want %q", conf.Sitemap, want)
	}
}

func TestReadConfFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yaml := `siteUrl: https://blog.test
siteTitle: Test Blog
author: Tester
gaMeasurementId: G-ABC123
siteDir: site
blogDir: posts
`
	confPath := filepath.Join(dir, "sitegen.yaml")
	if err := os.WriteFile(confPath, []byte(yaml), 0664); err != nil {
		t.Fatal(err)
	}

	conf := readConf(confPath)

	if conf.SiteURL != "https://blog.test" || conf.SiteTitle != "Test Blog" {
		t.Errorf("conf = %+v", conf)
	}
	if conf.GAMeasurementID != "G-ABC123" {
		t.Errorf("GAMeasurementID = %q", conf.GAMeasurementID)
	}
	// Relative paths resolve against the site dir, which resolves
	// against the config file's directory.
	if want := filepath.Join(dir, "site"); conf.SiteDir != want {
		t.Errorf("SiteDir = %q, want %q", conf.SiteDir, want)
	}
	if want := filepath.Join(dir, "site", "posts"); conf.BlogDir != want {
		t.Errorf("BlogDir = %q, want %q", conf.BlogDir, want)
	}
	// AuthorURI falls back to the configured site URL.
	if conf.AuthorURI != "https://blog.test" {
		t.Errorf("AuthorURI = %q", conf.AuthorURI)
	}
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	if got := normalizePath("/abs/path", "/base"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := normalizePath("rel", "/base"); got != filepath.Join("/base", "rel") {
		t.Errorf("relative path = %q", got)
	}
}
