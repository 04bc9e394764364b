// Package embed loads the third-party lead-capture widget. The widget's
// script is injected into a document at most once; every later mount asks
// the already loaded library to scan for new embed points instead.
package embed

import (
	"html/template"
	"net/url"
	"strings"
)

const (
	// DefaultScriptURL is the widget library.
	DefaultScriptURL = "https://tally.so/widgets/embed.js"
	// ScriptID marks the injected script element.
	ScriptID = "tally-js"
	// Rescan asks a loaded library to render pending embed points. It is a
	// no-op while the library is missing, so a failed load stays silent.
	Rescan = "if (typeof Tally !== 'undefined') Tally.loadEmbeds();"
)

// Host is the document the widget is mounted into.
type Host interface {
	// HasScript reports whether a script with id was already injected,
	// whether or not it has finished loading.
	HasScript(id string) bool
	// InjectScript appends an external script that runs onload when ready.
	InjectScript(id, src, onload string)
	// Run executes inline code.
	Run(code string)
}

// Loader mounts the widget into hosts.
type Loader struct {
	scriptURL string
}

// NewLoader returns a loader for the given library URL.
func NewLoader(scriptURL string) *Loader {
	if scriptURL == "" {
		scriptURL = DefaultScriptURL
	}
	return &Loader{scriptURL: scriptURL}
}

// ScriptURL returns the library URL.
func (l *Loader) ScriptURL() string { return l.scriptURL }

// Mount makes the widget render its embed points in h.
func (l *Loader) Mount(h Host) {
	if !h.HasScript(ScriptID) {
		h.InjectScript(ScriptID, l.scriptURL, Rescan)
		return
	}
	h.Run(Rescan)
}

// FormURL builds the iframe source for a form key.
func FormURL(key string) string {
	q := url.Values{}
	q.Set("alignLeft", "1")
	q.Set("hideTitle", "1")
	q.Set("transparentBackground", "1")
	q.Set("dynamicHeight", "1")
	return "https://tally.so/embed/" + url.PathEscape(key) + "?" + q.Encode()
}

type script struct {
	id     string
	src    string
	onload string
	inline string
}

// Document collects the script elements a rendered page needs. It
// implements Host for server-side rendering.
type Document struct {
	scripts []script
}

// HasScript implements Host.
func (d *Document) HasScript(id string) bool {
	for _, s := range d.scripts {
		if s.id == id {
			return true
		}
	}
	return false
}

// InjectScript implements Host.
func (d *Document) InjectScript(id, src, onload string) {
	d.scripts = append(d.scripts, script{id: id, src: src, onload: onload})
}

// Run implements Host.
func (d *Document) Run(code string) {
	d.scripts = append(d.scripts, script{inline: code})
}

// Injected returns how many external scripts were added.
func (d *Document) Injected() int {
	n := 0
	for _, s := range d.scripts {
		if s.src != "" {
			n++
		}
	}
	return n
}

// HTML renders the collected elements in order. Inline code waits for the
// document to finish parsing so it runs after the external script's onload.
func (d *Document) HTML() template.HTML {
	var sb strings.Builder
	for _, s := range d.scripts {
		if s.src != "" {
			sb.WriteString(`<script id="` + template.HTMLEscapeString(s.id) + `" src="` +
				template.HTMLEscapeString(s.src) + `" async onload="` + template.HTMLEscapeString(s.onload) + `"></script>`)
			continue
		}
		sb.WriteString(`<script>document.addEventListener("DOMContentLoaded", function () { ` + s.inline + ` });</script>`)
	}
	return template.HTML(sb.String())
}
