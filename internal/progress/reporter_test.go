package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}

	r.Start(2)
	r.Step("index.html")
	r.Step("assets/app.js")
	r.Finish()

	want := []string{
		"Building 2 files",
		"[1/2] index.html",
		"[2/2] assets/app.js",
		"Build complete",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewReporterUnderCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*LineReporter); !ok {
		t.Error("expected a LineReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*BarReporter); !ok {
		t.Error("expected a BarReporter outside CI")
	}
}

func TestBarReporterBeforeStart(t *testing.T) {
	// Step and Finish without Start must not panic.
	r := &BarReporter{}
	r.Step("index.html")
	r.Finish()
}
