// Command sitegen is a small static blog generator driven by a topics
// CSV. Each run publishes the first topic that has no post yet, keeps
// the sitemap and Atom feed up to date, and regenerates the blog index
// from the posts on disk. It can also inject the Google Analytics
// snippet into the site's HTML files.
package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/spf13/pflag"
)

var confPath = pflag.String("conf", "sitegen.yaml", "Path to the site configuration file")
var serve = pflag.Bool("serve", false, "Start a localhost:9999 server for the site")
var watch = pflag.Bool("watch", false, "Keep running and re-run the pipeline on changes to the content directory.")
var injectGAOnly = pflag.Bool("inject-ga", false, "Inject the Google Analytics snippet into the site's HTML files and exit.")

// site ties the configuration to the template engine; every pipeline
// step hangs off it.
type site struct {
	conf   *SiteConf
	engine *templateEngine
}

func newSite(conf *SiteConf) *site {
	return &site{
		conf:   conf,
		engine: newTemplateEngine(newMarkdownRenderer(), time.Now),
	}
}

func main() {
	pflag.Parse()

	s := newSite(readConf(*confPath))

	if *injectGAOnly {
		changed, err := s.injectGA()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Done. Files updated: %d", changed)
		return
	}

	runPipeline(s)

	if *watch && *serve {
		// Run watcher in background while serving
		go rerunOnChange(s)
	}

	if *serve {
		serveSite(s.conf.SiteDir)
	} else if *watch {
		// Watch mode without serve: block on the watcher
		rerunOnChange(s)
	}
}

func runPipeline(s *site) {
	if err := s.generate(); err != nil {
		log.Fatal(err)
	}
}

// generate runs one pipeline cycle: publish the next unpublished topic
// if there is one, then rebuild the derived files. The filesystem is
// the only state; re-running without new topics or content changes is a
// no-op beyond rewriting the derived index and feed.
func (s *site) generate() error {
	if err := os.MkdirAll(s.conf.BlogDir, 0775); err != nil {
		return err
	}
	if err := os.MkdirAll(s.conf.ContentDir, 0775); err != nil {
		return err
	}

	topics, err := readTopics(s.conf.TopicsCSV)
	if err != nil {
		return err
	}

	if t, outPath := s.chooseNext(topics); t == nil {
		log.Println("No new topics to post — add rows to " + s.conf.TopicsCSV)
	} else {
		if err := s.renderPostFile(t, outPath); err != nil {
			return err
		}
		if err := s.updateSitemap(t.Slug); err != nil {
			return err
		}
		log.Printf("Generated: blog/%v.html", t.Slug)
	}

	entries, err := collectIndexEntries(s.conf.BlogDir)
	if err != nil {
		return err
	}
	if err := s.buildIndex(entries); err != nil {
		return err
	}
	if err := s.writeFeed(entries); err != nil {
		return err
	}

	return s.copyStaticFiles()
}

// chooseNext picks the first topic, in source order, whose output file
// does not exist yet. The existence check is what makes generation
// at-most-once per slug.
func (s *site) chooseNext(topics []*topic) (*topic, string) {
	for _, t := range topics {
		outPath := filepath.Join(s.conf.BlogDir, t.Slug+".html")
		if _, err := os.Stat(outPath); os.IsNotExist(err) {
			return t, outPath
		}
	}
	return nil, ""
}

func (s *site) renderPostFile(t *topic, outPath string) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	return s.engine.renderPost(s.conf, t, outFile)
}

func serveSite(dir string) {
	port := ":9999"

	http.Handle("/", http.FileServer(http.Dir(dir)))
	log.Printf("Serving %v on %v.", dir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

func rerunOnChange(s *site) {
	log.Println("Watching " + s.conf.ContentDir + " for changes...")

	watcher := watcher.New()
	watcher.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-watcher.Event:
				runPipeline(s)
			case err := <-watcher.Error:
				log.Println(err)
			case <-watcher.Closed:
				return
			}
		}
	}()

	if err := watcher.AddRecursive(s.conf.ContentDir); err != nil {
		log.Fatalln(err)
	}

	if err := watcher.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}
