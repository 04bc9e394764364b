package disclosure

import (
	"reflect"
	"testing"
)

func sample() *Group {
	return NewGroup([]Item{
		{ID: "pricing", Question: "How does the AI know my pricing?", Answer: "<p>Onboarding.</p>"},
		{ID: "number", Question: "Do I need to change my number?", Answer: "<p>No.</p>"},
		{ID: "calendar", Question: "How does it integrate with my calendar?", Answer: "<p>Google Calendar.</p>"},
	})
}

func TestItemDefaultsCollapsed(t *testing.T) {
	var it Item
	if it.Expanded() {
		t.Error("zero item should be collapsed")
	}
	for _, it := range sample().Items() {
		if it.Expanded() {
			t.Errorf("%s should start collapsed", it.ID)
		}
	}
}

func TestToggleParityLaw(t *testing.T) {
	for n := 0; n <= 9; n++ {
		var it Item
		for i := 0; i < n; i++ {
			it.Toggle()
		}
		wantOpen := n%2 == 1
		if it.Expanded() != wantOpen {
			t.Errorf("after %d toggles expanded = %v, want %v", n, it.Expanded(), wantOpen)
		}
	}
}

func TestItemsIndependent(t *testing.T) {
	g := sample()
	g.Toggle("pricing")
	g.Toggle("calendar")

	if got, want := g.Expanded(), []string{"pricing", "calendar"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expanded = %v, want %v", got, want)
	}

	g.Toggle("pricing")
	if got, want := g.Expanded(), []string{"calendar"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expanded = %v, want %v", got, want)
	}
}

func TestToggleUnknownIgnored(t *testing.T) {
	g := sample()
	if g.Toggle("missing") {
		t.Error("toggling an unknown id should report false")
	}
	if len(g.Expanded()) != 0 {
		t.Error("unknown toggle changed state")
	}
}

func TestNewGroupResetsState(t *testing.T) {
	g := NewGroup([]Item{{ID: "a", State: Expanded}})
	if it, _ := g.Get("a"); it.Expanded() {
		t.Error("NewGroup should start every item collapsed")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := sample()
	c := g.Clone()
	c.Toggle("number")

	if len(g.Expanded()) != 0 {
		t.Error("toggling the clone changed the original")
	}
	if it, _ := c.Get("number"); !it.Expanded() {
		t.Error("clone toggle lost")
	}
}

func TestStateString(t *testing.T) {
	if Collapsed.String() != "collapsed" || Expanded.String() != "expanded" {
		t.Errorf("unexpected strings %q %q", Collapsed, Expanded)
	}
}
