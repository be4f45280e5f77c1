package main

import (
	"encoding/xml"
	"fmt"
	"os"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// updateSitemap ensures the sitemap lists the post with the given slug.
// A missing sitemap file is seeded with the site root and the blog
// index; a URL that is already listed is left alone, so the update is
// idempotent. The file is parsed and re-marshalled as XML rather than
// spliced as text, so a hand-edited or reformatted sitemap still works
// and a corrupt one surfaces as an error.
func (s *site) updateSitemap(slug string) error {
	urlSet, err := readSitemap(s.conf.Sitemap, s.conf.SiteURL)
	if err != nil {
		return err
	}

	loc := s.conf.SiteURL + "/blog/" + slug + ".html"
	for _, u := range urlSet.URLs {
		if u.Loc == loc {
			return nil
		}
	}
	urlSet.URLs = append(urlSet.URLs, sitemapURL{Loc: loc, Priority: "0.8"})

	return writeSitemap(s.conf.Sitemap, urlSet)
}

func readSitemap(path, siteURL string) (*sitemapURLSet, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &sitemapURLSet{
			XMLNS: sitemapXMLNS,
			URLs: []sitemapURL{
				{Loc: siteURL + "/", Priority: "1.0"},
				{Loc: siteURL + "/blog/", Priority: "0.6"},
			},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sitemap: %w", err)
	}

	urlSet := sitemapURLSet{}
	if err := xml.Unmarshal(raw, &urlSet); err != nil {
		return nil, fmt.Errorf("parsing sitemap %v: %w", path, err)
	}
	if urlSet.XMLNS == "" {
		urlSet.XMLNS = sitemapXMLNS
	}
	return &urlSet, nil
}

func writeSitemap(path string, urlSet *sitemapURLSet) error {
	out, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling sitemap: %w", err)
	}
	return os.WriteFile(path, []byte(xml.Header+string(out)+"\n"), 0664)
}
