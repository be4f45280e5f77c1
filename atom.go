package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

// writeFeed regenerates the Atom feed next to the blog index, from the
// same entries the index lists. A blog with no posts yet has no feed.
func (s *site) writeFeed(entries []indexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	atomXml, err := s.renderFeed(entries)
	if err != nil {
		return err
	}

	filePath := filepath.Join(s.conf.BlogDir, "index.xml")
	return os.WriteFile(filePath, atomXml, os.FileMode(0664))
}

func (s *site) renderFeed(entries []indexEntry) ([]byte, error) {
	feed := atom.Feed{
		Title:   s.conf.SiteTitle,
		Link:    s.conf.SiteURL + "/blog/",
		PubDate: time.Now(),
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.AuthorURI,
	})

	for _, e := range entries {
		feed.AddEntry(&atom.Entry{
			Title:       e.Title,
			Description: e.Snippet,
			Link:        s.conf.SiteURL + "/blog/" + e.Name,
			PubDate:     e.ModTime,
		})
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		log.Println("Atom feed is not valid!")
		for _, e := range errs {
			log.Println(e.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}
