// Package disclosure implements collapsible question/answer items. Each item
// owns its own open flag; opening one never closes another.
package disclosure

import "html/template"

// State is Collapsed or Expanded.
type State bool

const (
	Collapsed State = false
	Expanded  State = true
)

func (s State) String() string {
	if s {
		return "expanded"
	}
	return "collapsed"
}

// Item is a single question with its fixed answer.
type Item struct {
	ID       string
	Question string
	Answer   template.HTML
	State    State
}

// Toggle flips the item between Collapsed and Expanded.
func (i *Item) Toggle() {
	i.State = !i.State
}

// Expanded reports whether the answer is shown.
func (i Item) Expanded() bool { return i.State == Expanded }

// Group is an ordered set of independent items.
type Group struct {
	items []Item
	index map[string]int
}

// NewGroup builds a group with every item collapsed.
func NewGroup(items []Item) *Group {
	g := &Group{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, it := range items {
		it.State = Collapsed
		g.items[i] = it
		g.index[it.ID] = i
	}
	return g
}

// Items returns the items in order. The slice is a copy.
func (g *Group) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Get returns the item with the given id.
func (g *Group) Get(id string) (Item, bool) {
	i, ok := g.index[id]
	if !ok {
		return Item{}, false
	}
	return g.items[i], true
}

// Toggle flips one item. Unknown ids are ignored and reported as false.
func (g *Group) Toggle(id string) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}
	g.items[i].Toggle()
	return true
}

// Expanded returns the ids of open items, in order.
func (g *Group) Expanded() []string {
	var ids []string
	for _, it := range g.items {
		if it.Expanded() {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Clone returns an independent copy of the group.
func (g *Group) Clone() *Group {
	c := &Group{
		items: g.Items(),
		index: g.index,
	}
	return c
}
