package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type SiteConf struct {
	SiteURL         string `yaml:"siteUrl"`
	SiteTitle       string `yaml:"siteTitle"`
	SiteDescription string `yaml:"siteDescription"`
	Author          string `yaml:"author"`
	AuthorURI       string `yaml:"authorUri"`

	GAMeasurementID string `yaml:"gaMeasurementId"`

	SiteDir    string `yaml:"siteDir"`
	ContentDir string `yaml:"contentDir"`
	TopicsCSV  string `yaml:"topicsCsv"`
	BlogDir    string `yaml:"blogDir"`
	StaticDir  string `yaml:"staticDir"`
	Sitemap    string `yaml:"sitemap"`
}

func readConf(fileName string) *SiteConf {
	conf := SiteConf{}

	rawConf, err := os.ReadFile(fileName)
	if os.IsNotExist(err) {
		log.Println("No config file at " + fileName + ", using defaults")
	} else if err != nil {
		log.Fatal(err)
	} else if err = yaml.Unmarshal(rawConf, &conf); err != nil {
		log.Fatal(err)
	}

	// Populate with defaults
	if len(conf.SiteURL) == 0 {
		conf.SiteURL = "https://gwsautomate.com"
	}
	if len(conf.SiteTitle) == 0 {
		conf.SiteTitle = "GWS Automate"
	}
	if len(conf.SiteDescription) == 0 {
		conf.SiteDescription = "Guides and tutorials for automating Google Workspace (Apps Script, Admin SDK, Gmail)."
	}
	if len(conf.Author) == 0 {
		conf.Author = "GWS Automate"
	}
	if len(conf.AuthorURI) == 0 {
		conf.AuthorURI = conf.SiteURL
	}
	if len(conf.SiteDir) == 0 {
		conf.SiteDir = "."
	}
	if len(conf.ContentDir) == 0 {
		conf.ContentDir = "content"
	}
	if len(conf.TopicsCSV) == 0 {
		conf.TopicsCSV = filepath.Join(conf.ContentDir, "topics.csv")
	}
	if len(conf.BlogDir) == 0 {
		conf.BlogDir = "blog"
	}
	if len(conf.StaticDir) == 0 {
		conf.StaticDir = filepath.Join(conf.ContentDir, "static")
	}
	if len(conf.Sitemap) == 0 {
		conf.Sitemap = "sitemap.xml"
	}

	// Normalize relative paths because the executable can be called from anywhere
	baseDir := filepath.Dir(fileName)
	conf.SiteDir = normalizePath(conf.SiteDir, baseDir)
	conf.ContentDir = normalizePath(conf.ContentDir, conf.SiteDir)
	conf.TopicsCSV = normalizePath(conf.TopicsCSV, conf.SiteDir)
	conf.BlogDir = normalizePath(conf.BlogDir, conf.SiteDir)
	conf.StaticDir = normalizePath(conf.StaticDir, conf.SiteDir)
	conf.Sitemap = normalizePath(conf.Sitemap, conf.SiteDir)

	return &conf
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}
