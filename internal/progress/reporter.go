// Package progress reports file-by-file progress of a site build.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Step per written file.
type Reporter interface {
	Start(total int)
	Step(rel string)
	Finish()
}

// NewReporter returns a LineReporter when running under CI and a
// BarReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: os.Stderr}
	}
	return &BarReporter{}
}

// BarReporter draws a progress bar on the terminal.
type BarReporter struct {
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Building site"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Step(rel string) {
	if r.bar != nil {
		r.bar.Describe(rel)
		_ = r.bar.Add(1)
	}
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per file, suitable for CI logs.
type LineReporter struct {
	Out     io.Writer
	total   int
	current int
}

func (r *LineReporter) Start(total int) {
	r.total = total
	r.current = 0
	fmt.Fprintf(r.Out, "Building %d files\n", total)
}

func (r *LineReporter) Step(rel string) {
	r.current++
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", r.current, r.total, rel)
}

func (r *LineReporter) Finish() {
	fmt.Fprintln(r.Out, "Build complete")
}
