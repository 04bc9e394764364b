package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookedai/site/internal/overlay"
	"github.com/bookedai/site/internal/page"
)

// manifestFile records what a build produced.
const manifestFile = "build.json"

// SiteGenerator prerenders the page into a directory that any static file
// host can serve. Every overlay state gets its own HTML file.
type SiteGenerator struct {
	Root      *page.Root
	OutputDir string
	// OnFile, when set, is called after each file is written.
	OnFile func(rel string)
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(root *page.Root, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Root:      root,
		OutputDir: outputDir,
	}
}

// NewBuildID returns a short random id for cache-busting asset URLs.
func NewBuildID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// Manifest is written to build.json.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Files       []string  `json:"files"`
}

type output struct {
	rel    string
	render func() ([]byte, error)
}

// Plan lists the files Generate writes, in write order.
func (g *SiteGenerator) Plan() []string {
	outs := g.outputs()
	paths := make([]string, 0, len(outs)+1)
	for _, o := range outs {
		paths = append(paths, o.rel)
	}
	return append(paths, manifestFile)
}

func (g *SiteGenerator) outputs() []output {
	var outs []output
	for _, sel := range append([]overlay.Selection{overlay.None}, overlay.Kinds()...) {
		outs = append(outs, output{
			rel: page.StaticFile(sel),
			render: func() ([]byte, error) {
				s := g.Root.NewState()
				s.Open(sel)
				var buf bytes.Buffer
				if err := g.Root.Render(&buf, s, page.Static); err != nil {
					return nil, err
				}
				return buf.Bytes(), nil
			},
		})
	}
	outs = append(outs,
		staticOutput("assets/style.css", page.StyleCSS),
		staticOutput("assets/app.js", page.AppJS),
		staticOutput("charts/bookings.svg", g.Root.BookingsSVG()),
		staticOutput("charts/status.svg", g.Root.StatusSVG()),
	)
	return outs
}

func staticOutput(rel, body string) output {
	return output{rel: rel, render: func() ([]byte, error) { return []byte(body), nil }}
}

// Generate writes the site. Returns the number of files written.
func (g *SiteGenerator) Generate() (int, error) {
	if g.Root == nil {
		return 0, fmt.Errorf("no page to generate")
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	manifest := Manifest{
		BuildID:     g.Root.Options().BuildID,
		GeneratedAt: time.Now().UTC(),
	}
	written := 0
	for _, o := range g.outputs() {
		body, err := o.render()
		if err != nil {
			return written, fmt.Errorf("rendering %s: %w", o.rel, err)
		}
		if err := g.write(o.rel, body); err != nil {
			return written, err
		}
		manifest.Files = append(manifest.Files, o.rel)
		written++
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return written, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := g.write(manifestFile, data); err != nil {
		return written, err
	}
	return written + 1, nil
}

func (g *SiteGenerator) write(rel string, body []byte) error {
	dst := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if g.OnFile != nil {
		g.OnFile(rel)
	}
	return nil
}
