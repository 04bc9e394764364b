package page

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/bookedai/site/internal/disclosure"
	"github.com/bookedai/site/internal/logging"
	"github.com/bookedai/site/internal/metrics"
	"github.com/bookedai/site/internal/nav"
	"github.com/bookedai/site/internal/overlay"
)

// Handler serves the page and its fragments. The Root can be replaced while
// serving; each request renders against the Root current when it started.
type Handler struct {
	root    atomic.Pointer[Root]
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewHandler creates a Handler serving root.
func NewHandler(root *Root, m *metrics.SiteMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	h := &Handler{metrics: m, logger: logger}
	h.root.Store(root)
	return h
}

// Root returns the Root currently served.
func (h *Handler) Root() *Root { return h.root.Load() }

// Swap replaces the served Root.
func (h *Handler) Swap(root *Root) { h.root.Store(root) }

// RegisterRoutes mounts the page, fragment, chart and asset routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/fragments/overlay/{kind}", h.handleOverlay)
	r.Get("/fragments/faq/{id}", h.handleFAQ)
	r.Get("/fragments/nav/{section}", h.handleNav)
	r.Get("/charts/bookings.svg", h.handleChart(func(p *Root) string { return p.BookingsSVG() }))
	r.Get("/charts/status.svg", h.handleChart(func(p *Root) string { return p.StatusSVG() }))
	r.Get("/assets/style.css", serveAsset("text/css; charset=utf-8", StyleCSS))
	r.Get("/assets/app.js", serveAsset("application/javascript; charset=utf-8", AppJS))
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	root := h.Root()
	s := root.Decode(r.URL.Query())

	var buf bytes.Buffer
	if err := root.Render(&buf, s, Live); err != nil {
		h.logger.Error("page render failed", "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	h.metrics.ObservePage(s.Overlay.Selection().String())
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *Handler) handleOverlay(w http.ResponseWriter, r *http.Request) {
	sel, err := overlay.Parse(chi.URLParam(r, "kind"))
	if err != nil {
		h.metrics.ObserveFragment("overlay", http.StatusNotFound)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	root := h.Root()
	s := h.currentState(root, r)
	s.Open(sel)

	var buf bytes.Buffer
	if err := root.RenderOverlay(&buf, s, Live); err != nil {
		h.fragmentError(w, "overlay", err)
		return
	}
	h.metrics.ObserveFragment("overlay", http.StatusOK)
	pushURL(w, r, s)
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *Handler) handleFAQ(w http.ResponseWriter, r *http.Request) {
	root := h.Root()
	item, ok := root.FAQItem(chi.URLParam(r, "id"))
	if !ok {
		h.metrics.ObserveFragment("faq", http.StatusNotFound)
		http.NotFound(w, r)
		return
	}

	open := false
	if raw := r.URL.Query().Get("open"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.metrics.ObserveFragment("faq", http.StatusBadRequest)
			http.Error(w, "open must be a boolean", http.StatusBadRequest)
			return
		}
		open = v
	}
	item.State = disclosure.State(open)
	item.Toggle()

	s := h.currentState(root, r)
	if cur, ok := s.FAQ.Get(item.ID); ok && cur.State != item.State {
		s.Toggle(item.ID)
	}

	var buf bytes.Buffer
	if err := root.RenderFAQItem(&buf, s, item, Live); err != nil {
		h.fragmentError(w, "faq", err)
		return
	}
	h.metrics.ObserveFragment("faq", http.StatusOK)
	pushURL(w, r, s)
	writeHTML(w, http.StatusOK, buf.Bytes())
}

// handleNav answers with an HX-Trigger scroll event for known sections and
// with an empty 204 for anything else.
func (h *Handler) handleNav(w http.ResponseWriter, r *http.Request) {
	sc := &triggerScroller{}
	if !h.Root().Navigator().ScrollTo(chi.URLParam(r, "section"), sc) {
		h.metrics.ObserveNavMiss()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	trigger, err := json.Marshal(map[string]nav.Target{"scroll-to": sc.target})
	if err != nil {
		h.fragmentError(w, "nav", err)
		return
	}
	h.metrics.ObserveFragment("nav", http.StatusOK)
	w.Header().Set("HX-Trigger", string(trigger))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleChart(svg func(*Root) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte(svg(h.Root())))
	}
}

// currentState reads state from the page URL htmx reports, falling back to
// the request's own query.
func (h *Handler) currentState(root *Root, r *http.Request) State {
	if cur := r.Header.Get("HX-Current-URL"); cur != "" {
		if u, err := url.Parse(cur); err == nil {
			return root.Decode(u.Query())
		}
	}
	return root.NewState()
}

func (h *Handler) fragmentError(w http.ResponseWriter, widget string, err error) {
	h.logger.Error("fragment render failed", "widget", widget, "error", err)
	h.metrics.ObserveFragment(widget, http.StatusInternalServerError)
	http.Error(w, "fragment unavailable", http.StatusInternalServerError)
}

// triggerScroller records the scroll a navigation resolved to so it can be
// sent to the browser as an event.
type triggerScroller struct {
	target nav.Target
}

func (t *triggerScroller) SmoothScroll(target nav.Target) { t.target = target }

func pushURL(w http.ResponseWriter, r *http.Request, s State) {
	if r.Header.Get("HX-Request") != "true" {
		return
	}
	w.Header().Set("HX-Push-Url", Live.href(s))
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}
