// Package page composes the landing page. Root owns the overlay selection
// and renders every section, in a fixed order, as a pure function of the
// page state and the loaded content.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/bookedai/site/internal/chart"
	"github.com/bookedai/site/internal/content"
	"github.com/bookedai/site/internal/disclosure"
	"github.com/bookedai/site/internal/embed"
	"github.com/bookedai/site/internal/nav"
	"github.com/bookedai/site/internal/overlay"
)

// Section ids, in page order. "top" is the page start used by the logo.
const (
	SectionTop        = "top"
	SectionDashboard  = "dashboard"
	SectionHowItWorks = "how-it-works"
	SectionOnboarding = "onboarding"
	SectionPricing    = "pricing"
	SectionFAQ        = "faq"
)

// Options configures a Root.
type Options struct {
	Brand          string
	CheckoutURL    string
	EmbedKey       string
	EmbedScriptURL string
	NavOffset      int
	// LiveReload adds the reload socket client; only meaningful in Live mode.
	LiveReload bool
	// BuildID is appended to asset URLs.
	BuildID string
}

// Root renders the page.
type Root struct {
	opts    Options
	site    *content.Site
	catalog overlay.Catalog
	faq     *disclosure.Group
	nav     *nav.Navigator
	loader  *embed.Loader
	tmpl    *template.Template

	barLayout   chart.BarLayout
	ringLayout  chart.RingLayout
	bookingsSVG string
	statusSVG   string
}

// New builds a Root from loaded content.
func New(site *content.Site, opts Options) (*Root, error) {
	if site == nil {
		return nil, fmt.Errorf("page: nil content")
	}
	if opts.Brand == "" {
		opts.Brand = "BookedAI"
	}
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	p := &Root{
		opts:    opts,
		site:    site,
		catalog: site.Catalog(),
		faq:     disclosure.NewGroup(site.FAQItems()),
		nav: nav.New(opts.NavOffset,
			nav.Section{ID: SectionTop, Label: opts.Brand},
			nav.Section{ID: SectionDashboard, Label: "The Dashboard"},
			nav.Section{ID: SectionHowItWorks, Label: "How it works"},
			nav.Section{ID: SectionOnboarding, Label: "Book a call"},
			nav.Section{ID: SectionPricing, Label: "Pricing"},
			nav.Section{ID: SectionFAQ, Label: "FAQ"},
		),
		loader:     embed.NewLoader(opts.EmbedScriptURL),
		tmpl:       tmpl,
		barLayout:  chart.DefaultBarLayout(),
		ringLayout: chart.DefaultRingLayout(),
	}
	p.bookingsSVG = chart.BarSVG(chart.Bars(site.Bookings, p.barLayout), p.barLayout, chart.DefaultBarStyle())
	p.statusSVG = chart.RingSVG(chart.Ring(site.Statuses, p.ringLayout), p.ringLayout)
	return p, nil
}

// Options returns the options the root was built with.
func (p *Root) Options() Options { return p.opts }

// Navigator returns the section resolver.
func (p *Root) Navigator() *nav.Navigator { return p.nav }

// BookingsSVG is the daily bookings bar chart.
func (p *Root) BookingsSVG() string { return p.bookingsSVG }

// StatusSVG is the job status ring chart.
func (p *Root) StatusSVG() string { return p.statusSVG }

// NewState returns the initial state: no overlay, every answer collapsed.
func (p *Root) NewState() State {
	return State{FAQ: p.faq.Clone()}
}

// Decode reads page state from a URL query. Unknown overlay kinds and FAQ
// ids are ignored.
func (p *Root) Decode(q url.Values) State {
	return decodeState(p.NewState(), q)
}

// FAQItem returns a FAQ item in its default state.
func (p *Root) FAQItem(id string) (disclosure.Item, bool) {
	return p.faq.Get(id)
}

// Render writes the full page for s.
func (p *Root) Render(w io.Writer, s State, mode Mode) error {
	data := p.pageData(s, mode)
	if err := p.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// RenderOverlay writes only the overlay slot contents for s. A closed
// overlay writes nothing.
func (p *Root) RenderOverlay(w io.Writer, s State, mode Mode) error {
	if err := p.tmpl.ExecuteTemplate(w, "overlay", p.overlayData(s, mode)); err != nil {
		return fmt.Errorf("rendering overlay: %w", err)
	}
	return nil
}

// RenderFAQItem writes a single FAQ item. s supplies the rest of the state
// for the item's no-script link.
func (p *Root) RenderFAQItem(w io.Writer, s State, item disclosure.Item, mode Mode) error {
	if err := p.tmpl.ExecuteTemplate(w, "faq-item", p.faqView(s, item, mode)); err != nil {
		return fmt.Errorf("rendering faq item %s: %w", item.ID, err)
	}
	return nil
}

// RenderString renders the full page into a string.
func (p *Root) RenderString(s State, mode Mode) (string, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf, s, mode); err != nil {
		return "", err
	}
	return buf.String(), nil
}
