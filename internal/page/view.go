package page

import (
	"html/template"
	"strconv"

	"github.com/bookedai/site/internal/content"
	"github.com/bookedai/site/internal/disclosure"
	"github.com/bookedai/site/internal/embed"
	"github.com/bookedai/site/internal/overlay"
)

// link is an action control. Href works without script; Fragment, when
// set, is fetched by htmx instead.
type link struct {
	Label    string
	Href     string
	Fragment string
}

type overlayData struct {
	overlay.View
	Live          bool
	CloseHref     string
	CloseFragment string
}

type faqData struct {
	ID             string
	Question       string
	Answer         template.HTML
	Expanded       bool
	Static         bool
	ToggleHref     string
	ToggleFragment string
}

type jobView struct {
	content.JobRow
	Badge string
}

type legendEntry struct {
	Label string
	Color string
	Value string
}

type pageData struct {
	Brand       string
	CheckoutURL string
	FormURL     string
	Live        bool
	LiveReload  bool
	AssetBase   string
	BuildID     string
	NavOffset   int

	Top           link
	NavLinks      []link
	BookCall      link
	SeeDashboard  link
	FooterProduct []link
	Contact       link
	Legal         []link

	Stats       []content.Stat
	Sync        content.SyncCard
	BookingsSVG template.HTML
	StatusSVG   template.HTML
	Legend      []legendEntry
	Jobs        []jobView
	Steps       []content.Step
	Pricing     content.Pricing
	FAQ         []faqData
	Overlay     overlayData
	Scripts     template.HTML
}

func (p *Root) pageData(s State, mode Mode) pageData {
	live := mode == Live
	d := pageData{
		Brand:       p.opts.Brand,
		CheckoutURL: p.opts.CheckoutURL,
		Live:        live,
		LiveReload:  live && p.opts.LiveReload,
		AssetBase:   "assets/",
		BuildID:     p.opts.BuildID,
		NavOffset:   p.nav.Offset(),

		Top:          p.navLink(SectionTop, p.opts.Brand, live),
		BookCall:     p.navLink(SectionOnboarding, "Book a call", live),
		SeeDashboard: p.navLink(SectionDashboard, "See the Dashboard", live),
		Contact:      link{Label: "Contact Form", Href: p.nav.Href(SectionOnboarding)},
		NavLinks: []link{
			p.navLink(SectionHowItWorks, "How it works", live),
			p.navLink(SectionDashboard, "The Dashboard", live),
			p.navLink(SectionPricing, "Pricing", live),
		},
		FooterProduct: []link{
			p.navLink(SectionHowItWorks, "How it works", live),
			p.navLink(SectionDashboard, "Dashboard", live),
			p.navLink(SectionPricing, "Pricing", live),
		},

		Stats:       p.site.Stats,
		Sync:        p.site.Sync,
		BookingsSVG: template.HTML(p.bookingsSVG),
		StatusSVG:   template.HTML(p.statusSVG),
		Steps:       p.site.Steps,
		Pricing:     p.site.Pricing,
		Overlay:     p.overlayData(s, mode),
	}
	if live {
		d.AssetBase = "/assets/"
	}
	if p.opts.EmbedKey != "" {
		d.FormURL = embed.FormURL(p.opts.EmbedKey)
	}

	for _, kind := range overlay.Kinds() {
		next := s.Clone()
		next.Open(kind)
		l := link{Label: p.catalog[kind].Title, Href: mode.href(next)}
		if live {
			l.Fragment = "/fragments/overlay/" + kind.String()
		}
		d.Legal = append(d.Legal, l)
	}

	for _, r := range p.site.Statuses {
		d.Legend = append(d.Legend, legendEntry{
			Label: r.Label,
			Color: r.Color,
			Value: strconv.FormatFloat(r.Value, 'f', -1, 64),
		})
	}
	for _, j := range p.site.Jobs {
		d.Jobs = append(d.Jobs, jobView{JobRow: j, Badge: j.Status.Badge()})
	}

	var items []disclosure.Item
	if s.FAQ != nil {
		items = s.FAQ.Items()
	}
	for _, it := range items {
		d.FAQ = append(d.FAQ, p.faqView(s, it, mode))
	}

	// One document, one mount: the widget script appears once per page.
	if d.FormURL != "" {
		doc := &embed.Document{}
		p.loader.Mount(doc)
		d.Scripts = doc.HTML()
	}
	return d
}

func (p *Root) navLink(id, label string, live bool) link {
	l := link{Label: label, Href: p.nav.Href(id)}
	if live && l.Href != "" {
		l.Fragment = "/fragments/nav/" + id
	}
	return l
}

func (p *Root) overlayData(s State, mode Mode) overlayData {
	d := overlayData{
		View: p.catalog.View(s.Overlay),
		Live: mode == Live,
	}
	if !d.Open {
		return d
	}
	next := s.Clone()
	next.Close()
	d.CloseHref = mode.href(next)
	if d.Live {
		d.CloseFragment = "/fragments/overlay/" + overlay.None.String()
	}
	return d
}

func (p *Root) faqView(s State, item disclosure.Item, mode Mode) faqData {
	d := faqData{
		ID:       item.ID,
		Question: item.Question,
		Answer:   item.Answer,
		Expanded: item.Expanded(),
		Static:   mode == Static,
	}
	if mode == Live {
		next := s.Clone()
		if next.FAQ == nil {
			next.FAQ = p.faq.Clone()
		}
		// Make the link reflect this item's rendered state, then flip it.
		if cur, ok := next.FAQ.Get(item.ID); ok && cur.State != item.State {
			next.Toggle(item.ID)
		}
		next.Toggle(item.ID)
		d.ToggleHref = mode.href(next) + "#faq-" + item.ID
		d.ToggleFragment = "/fragments/faq/" + item.ID + "?open=" + strconv.FormatBool(d.Expanded)
	}
	return d
}
