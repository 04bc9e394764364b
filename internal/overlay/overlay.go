// Package overlay models the page's full-viewport dialogs. A single
// Selection value decides which dialog, if any, is open, so two dialogs can
// never be open at once.
package overlay

import (
	"errors"
	"fmt"
	"html/template"
)

// Selection identifies the active overlay.
type Selection int

const (
	None Selection = iota
	TermsOfService
	PrivacyPolicy
)

// ErrUnknownKind is returned by Parse for names that match no overlay.
var ErrUnknownKind = errors.New("unknown overlay kind")

var names = map[Selection]string{
	None:           "none",
	TermsOfService: "terms-of-service",
	PrivacyPolicy:  "privacy-policy",
}

// String returns the stable wire name used in URLs and file names.
func (s Selection) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// Parse maps a wire name back to a Selection. The empty string is None.
func Parse(name string) (Selection, error) {
	if name == "" {
		return None, nil
	}
	for s, n := range names {
		if n == name {
			return s, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds lists every selection that opens a dialog, in footer order.
func Kinds() []Selection {
	return []Selection{TermsOfService, PrivacyPolicy}
}

// State is the overlay selection owned by the page root. The zero value is
// closed.
type State struct {
	sel Selection
}

// Selection returns the current value.
func (s State) Selection() Selection { return s.sel }

// IsOpen reports whether kind is the open dialog.
func (s State) IsOpen(kind Selection) bool { return kind != None && s.sel == kind }

// Open makes kind the only open dialog, replacing any other. Opening None is
// the same as Close.
func (s *State) Open(kind Selection) {
	s.sel = kind
}

// Close returns to the closed state.
func (s *State) Close() {
	s.sel = None
}

// Content is what a dialog shows while open.
type Content struct {
	Title string
	Body  template.HTML
}

// View is the render input for the overlay slot. A zero View renders
// nothing.
type View struct {
	Open  bool
	Kind  Selection
	Title string
	Body  template.HTML
}

// Catalog binds content to each kind.
type Catalog map[Selection]Content

// View resolves the state to render input. A kind with no bound content
// renders closed.
func (c Catalog) View(s State) View {
	if s.sel == None {
		return View{}
	}
	content, ok := c[s.sel]
	if !ok {
		return View{}
	}
	return View{
		Open:  true,
		Kind:  s.sel,
		Title: content.Title,
		Body:  content.Body,
	}
}
