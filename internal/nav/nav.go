// Package nav resolves in-page navigation targets.
package nav

// Section is an addressable part of the page.
type Section struct {
	ID    string
	Label string
}

// Target is where a resolved scroll lands: the section's top edge, pushed
// down by Offset so the fixed top bar does not cover it.
type Target struct {
	ID     string `json:"id"`
	Offset int    `json:"offset"`
}

// Scroller performs the actual smooth scroll on whatever surface shows the
// page.
type Scroller interface {
	SmoothScroll(t Target)
}

// Navigator maps section ids to scroll targets.
type Navigator struct {
	offset   int
	sections []Section
	byID     map[string]Section
}

// New registers sections in page order. offset is the height of the
// persistent top bar.
func New(offset int, sections ...Section) *Navigator {
	n := &Navigator{
		offset:   offset,
		sections: sections,
		byID:     make(map[string]Section, len(sections)),
	}
	for _, s := range sections {
		n.byID[s.ID] = s
	}
	return n
}

// Sections returns the registered sections in page order.
func (n *Navigator) Sections() []Section {
	return n.sections
}

// Offset returns the scroll offset applied to every target.
func (n *Navigator) Offset() int { return n.offset }

// Resolve looks up a section id.
func (n *Navigator) Resolve(id string) (Target, bool) {
	if _, ok := n.byID[id]; !ok {
		return Target{}, false
	}
	return Target{ID: id, Offset: n.offset}, true
}

// ScrollTo asks s to scroll to the section. An id that resolves to nothing
// is a no-op; the return value only reports whether a scroll was issued.
func (n *Navigator) ScrollTo(id string, s Scroller) bool {
	t, ok := n.Resolve(id)
	if !ok || s == nil {
		return false
	}
	s.SmoothScroll(t)
	return true
}

// Href returns the fragment link for a section, or "" when it does not
// exist.
func (n *Navigator) Href(id string) string {
	if _, ok := n.byID[id]; !ok {
		return ""
	}
	return "#" + id
}
