// Package metrics exposes Prometheus counters for the site server.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SiteMetrics counts page and fragment traffic.
type SiteMetrics struct {
	gatherer prometheus.Gatherer

	pageRenders    *prometheus.CounterVec
	fragments      *prometheus.CounterVec
	navMisses      prometheus.Counter
	contentReloads *prometheus.CounterVec
}

// New registers the site metrics on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *SiteMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &SiteMetrics{
		gatherer: reg,
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookedai",
			Subsystem: "site",
			Name:      "page_renders_total",
			Help:      "Full page renders by initial overlay state",
		}, []string{"overlay"}),
		fragments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookedai",
			Subsystem: "site",
			Name:      "fragment_requests_total",
			Help:      "Fragment requests by widget and response status",
		}, []string{"widget", "status"}),
		navMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bookedai",
			Subsystem: "site",
			Name:      "nav_misses_total",
			Help:      "Navigation requests for sections that do not exist",
		}),
		contentReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookedai",
			Subsystem: "site",
			Name:      "content_reloads_total",
			Help:      "Content reloads in watch mode by result",
		}, []string{"result"}),
	}
	reg.MustRegister(m.pageRenders, m.fragments, m.navMisses, m.contentReloads)
	return m
}

// ObservePage counts a full page render for the given overlay state.
func (m *SiteMetrics) ObservePage(overlay string) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(overlay).Inc()
}

// ObserveFragment counts a fragment response by widget and status code.
func (m *SiteMetrics) ObserveFragment(widget string, status int) {
	if m == nil {
		return
	}
	m.fragments.WithLabelValues(widget, strconv.Itoa(status)).Inc()
}

// ObserveNavMiss counts a navigation to an unknown section.
func (m *SiteMetrics) ObserveNavMiss() {
	if m == nil {
		return
	}
	m.navMisses.Inc()
}

// ObserveReload counts a content reload, failed when err is non-nil.
func (m *SiteMetrics) ObserveReload(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.contentReloads.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *SiteMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
