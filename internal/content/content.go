// Package content loads the page's copy and sample data.
//
// Defaults are compiled into the binary. A content directory may override
// dataset.yaml and any legal/*.md document; anything it leaves out falls back
// to the defaults.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/bookedai/site/internal/disclosure"
	"github.com/bookedai/site/internal/overlay"
)

//go:embed defaults
var defaultsFS embed.FS

const datasetFile = "dataset.yaml"

// WatchPatterns are the content-relative paths whose changes affect output.
var WatchPatterns = []string{datasetFile, "legal/**/*.md"}

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Site is loaded, validated and rendered content.
type Site struct {
	Dataset

	// Answers holds the rendered FAQ answers keyed by entry id.
	Answers map[string]template.HTML
	Legal   map[overlay.Selection]Document
}

// Load reads content, preferring files under dir. An empty dir uses only the
// compiled-in defaults.
func Load(dir string) (*Site, error) {
	defaults, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("opening default content: %w", err)
	}
	sources := []fs.FS{defaults}
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("content dir %s is not a directory", dir)
		}
		sources = append(sources, os.DirFS(dir))
	}

	var raw []byte
	for _, src := range sources {
		b, err := fs.ReadFile(src, datasetFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", datasetFile, err)
		}
		raw = b
	}
	ds, err := ParseDataset(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(ds); err != nil {
		return nil, err
	}

	md := newMarkdown()
	site := &Site{
		Dataset: ds,
		Answers: make(map[string]template.HTML, len(ds.FAQ)),
		Legal:   make(map[overlay.Selection]Document),
	}
	for _, e := range ds.FAQ {
		html, err := md.render(e.Answer)
		if err != nil {
			return nil, fmt.Errorf("rendering answer %q: %w", e.ID, err)
		}
		site.Answers[e.ID] = html
	}

	for _, src := range sources {
		matches, err := doublestar.Glob(src, "legal/**/*.md")
		if err != nil {
			return nil, fmt.Errorf("listing legal documents: %w", err)
		}
		sort.Strings(matches)
		for _, rel := range matches {
			doc, err := loadDocument(src, rel, md)
			if err != nil {
				return nil, err
			}
			site.Legal[doc.Kind] = doc
		}
	}
	for _, kind := range overlay.Kinds() {
		if _, ok := site.Legal[kind]; !ok {
			return nil, fmt.Errorf("missing legal document %s.md", kind)
		}
	}
	return site, nil
}

// ParseDataset decodes dataset.yaml. Unknown keys are rejected.
func ParseDataset(raw []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("parsing %s: %w", datasetFile, err)
	}
	return ds, nil
}

func loadDocument(src fs.FS, rel string, md *markdown) (Document, error) {
	name := strings.TrimSuffix(path.Base(rel), ".md")
	kind, err := overlay.Parse(name)
	if err != nil || kind == overlay.None {
		return Document{}, fmt.Errorf("legal document %s: %w", rel, overlay.ErrUnknownKind)
	}
	b, err := fs.ReadFile(src, rel)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", rel, err)
	}
	title, body := splitTitle(string(b), name)
	html, err := md.render(body)
	if err != nil {
		return Document{}, fmt.Errorf("rendering %s: %w", rel, err)
	}
	return Document{Kind: kind, Title: title, Body: html}, nil
}

// splitTitle takes the first H1 as the document title and returns the
// remaining markdown. The dialog header shows the title, so it is not
// repeated in the body.
func splitTitle(src, fallback string) (string, string) {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			rest := append(lines[:i:i], lines[i+1:]...)
			return strings.TrimPrefix(trimmed, "# "), strings.Join(rest, "\n")
		}
	}
	return fallback, src
}

// Validate reports authoring defects: negative chart values, unknown job
// statuses and malformed FAQ entries.
func Validate(ds Dataset) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, b := range ds.Bookings {
		if b.Label == "" {
			add("bookings[%d]: missing label", i)
		}
		if b.Value < 0 {
			add("bookings[%d] %q: negative value %g", i, b.Label, b.Value)
		}
	}
	for i, s := range ds.Statuses {
		if s.Value < 0 {
			add("statuses[%d] %q: negative value %g", i, s.Label, s.Value)
		}
		if s.Color == "" {
			add("statuses[%d] %q: missing color", i, s.Label)
		}
	}
	for i, j := range ds.Jobs {
		if !j.Status.Valid() {
			add("jobs[%d] %s: unknown status %q", i, j.ID, j.Status)
		}
	}
	seen := make(map[string]bool, len(ds.FAQ))
	for i, e := range ds.FAQ {
		switch {
		case !idPattern.MatchString(e.ID):
			add("faq[%d]: id %q must be lowercase words joined by dashes", i, e.ID)
		case seen[e.ID]:
			add("faq[%d]: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
		if e.Question == "" {
			add("faq[%d] %s: missing question", i, e.ID)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Catalog binds each legal document to its overlay kind.
func (s *Site) Catalog() overlay.Catalog {
	c := make(overlay.Catalog, len(s.Legal))
	for kind, doc := range s.Legal {
		c[kind] = overlay.Content{Title: doc.Title, Body: doc.Body}
	}
	return c
}

// FAQItems returns the FAQ as collapsed disclosure items, in page order.
func (s *Site) FAQItems() []disclosure.Item {
	items := make([]disclosure.Item, len(s.FAQ))
	for i, e := range s.FAQ {
		items[i] = disclosure.Item{
			ID:       e.ID,
			Question: e.Question,
			Answer:   s.Answers[e.ID],
		}
	}
	return items
}

// Watched reports whether a content-relative path is one Load reads.
func Watched(rel string) bool {
	rel = strings.TrimPrefix(path.Clean(strings.ReplaceAll(rel, "\\", "/")), "./")
	for _, p := range WatchPatterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
