package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// copyStaticFiles copies the static assets directory into the site
// root. A site without static assets is fine; the copy is skipped.
func (s *site) copyStaticFiles() error {
	srcDir := s.conf.StaticDir
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return nil
	}

	dest := filepath.Join(s.conf.SiteDir, filepath.Base(srcDir))
	log.Println("Recursively copying", srcDir, "to", dest)
	return copy.Copy(srcDir, dest)
}
