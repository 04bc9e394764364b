package embed

import (
	"strings"
	"testing"
)

func TestFirstMountInjects(t *testing.T) {
	doc := &Document{}
	NewLoader("").Mount(doc)

	if doc.Injected() != 1 {
		t.Fatalf("injected = %d, want 1", doc.Injected())
	}
	if !doc.HasScript(ScriptID) {
		t.Error("script id not recorded")
	}
	html := string(doc.HTML())
	if !strings.Contains(html, DefaultScriptURL) {
		t.Errorf("script src missing: %s", html)
	}
	if !strings.Contains(html, "Tally.loadEmbeds()") {
		t.Errorf("onload rescan missing: %s", html)
	}
}

func TestRepeatMountRescansWithoutReinjecting(t *testing.T) {
	doc := &Document{}
	l := NewLoader("https://example.test/embed.js")
	l.Mount(doc)
	l.Mount(doc)
	l.Mount(doc)

	if doc.Injected() != 1 {
		t.Errorf("injected = %d, want exactly 1", doc.Injected())
	}
	html := string(doc.HTML())
	if n := strings.Count(html, "example.test/embed.js"); n != 1 {
		t.Errorf("script tag count = %d, want 1", n)
	}
	// Two repeat mounts each ask for a rescan, plus the onload handler.
	if n := strings.Count(html, "Tally.loadEmbeds()"); n != 3 {
		t.Errorf("rescan count = %d, want 3", n)
	}
}

type fakeHost struct {
	present  bool
	injected int
	ran      []string
}

func (f *fakeHost) HasScript(string) bool { return f.present }
func (f *fakeHost) InjectScript(string, string, string) {
	f.injected++
	f.present = true
}
func (f *fakeHost) Run(code string) { f.ran = append(f.ran, code) }

func TestInFlightLoadIsNotRepeated(t *testing.T) {
	// The host already carries the tag, e.g. a load started by an earlier
	// mount that has not finished yet.
	h := &fakeHost{present: true}
	NewLoader("").Mount(h)

	if h.injected != 0 {
		t.Errorf("injected %d times while a load was in flight", h.injected)
	}
	if len(h.ran) != 1 || h.ran[0] != Rescan {
		t.Errorf("ran = %v, want a single rescan", h.ran)
	}
}

func TestFormURL(t *testing.T) {
	got := FormURL("ZjaXJ5")
	if !strings.HasPrefix(got, "https://tally.so/embed/ZjaXJ5?") {
		t.Errorf("FormURL = %q", got)
	}
	for _, p := range []string{"alignLeft=1", "hideTitle=1", "transparentBackground=1", "dynamicHeight=1"} {
		if !strings.Contains(got, p) {
			t.Errorf("FormURL missing %s: %q", p, got)
		}
	}
}
