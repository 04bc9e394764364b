package page

import (
	"net/url"
	"sort"
	"strings"

	"github.com/bookedai/site/internal/disclosure"
	"github.com/bookedai/site/internal/overlay"
)

// Query keys carrying page state.
const (
	overlayParam = "overlay"
	faqParam     = "faq"
)

// State is everything a visitor can change on the page: which overlay is
// open and which FAQ answers are expanded.
type State struct {
	Overlay overlay.State
	FAQ     *disclosure.Group
}

// Clone returns a copy that can be changed without touching s.
func (s State) Clone() State {
	c := State{Overlay: s.Overlay}
	if s.FAQ != nil {
		c.FAQ = s.FAQ.Clone()
	}
	return c
}

// Open makes kind the only open overlay.
func (s *State) Open(kind overlay.Selection) { s.Overlay.Open(kind) }

// Close closes whatever overlay is open.
func (s *State) Close() { s.Overlay.Close() }

// Toggle flips one FAQ item. Unknown ids are ignored.
func (s *State) Toggle(id string) bool {
	if s.FAQ == nil {
		return false
	}
	return s.FAQ.Toggle(id)
}

// Query encodes the state. The closed, all-collapsed state encodes to an
// empty set of values.
func (s State) Query() url.Values {
	q := url.Values{}
	if sel := s.Overlay.Selection(); sel != overlay.None {
		q.Set(overlayParam, sel.String())
	}
	if s.FAQ != nil {
		if ids := s.FAQ.Expanded(); len(ids) > 0 {
			q.Set(faqParam, strings.Join(ids, ","))
		}
	}
	return q
}

// decodeState applies q to a fresh copy of base. Unknown overlay kinds and
// FAQ ids are dropped.
func decodeState(base State, q url.Values) State {
	s := base.Clone()
	if sel, err := overlay.Parse(q.Get(overlayParam)); err == nil {
		s.Open(sel)
	}
	seen := map[string]bool{}
	for _, raw := range q[faqParam] {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			s.Toggle(id)
		}
	}
	return s
}

// Mode selects how state transitions are linked.
type Mode int

const (
	// Live links carry state in the URL query and use htmx fragments.
	Live Mode = iota
	// Static links point at prerendered files, one per overlay state.
	Static
)

// href returns the page URL for s in mode m.
func (m Mode) href(s State) string {
	if m == Static {
		return StaticFile(s.Overlay.Selection())
	}
	q := s.Query()
	if len(q) == 0 {
		return "/"
	}
	return "/?" + encodeQuery(q)
}

// StaticFile names the prerendered file for an overlay selection.
func StaticFile(sel overlay.Selection) string {
	if sel == overlay.None {
		return "index.html"
	}
	return sel.String() + ".html"
}

// encodeQuery is url.Values.Encode without escaping the commas of the faq
// list, so the links stay readable.
func encodeQuery(q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		for _, v := range q[k] {
			parts = append(parts, url.QueryEscape(k)+"="+strings.ReplaceAll(url.QueryEscape(v), "%2C", ","))
		}
	}
	return strings.Join(parts, "&")
}
