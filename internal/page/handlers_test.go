package page

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookedai/site/internal/logging"
	"github.com/bookedai/site/internal/metrics"
)

func setupRouter(t *testing.T) (chi.Router, *Handler) {
	t.Helper()
	root := setupRoot(t, Options{NavOffset: 80, EmbedKey: "ZjaXJ5"})
	h := NewHandler(root, metrics.New(prometheus.NewRegistry()), logging.Discard())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, h
}

func get(r http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/?overlay=privacy-policy", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), `data-kind="privacy-policy"`) {
		t.Error("privacy overlay should be open")
	}
}

func TestIndexIgnoresUnknownOverlay(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/?overlay=refunds", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `role="dialog"`) {
		t.Error("unknown overlay should leave the page closed")
	}
}

func TestOverlayFragment(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/overlay/terms-of-service", map[string]string{
		"HX-Request":     "true",
		"HX-Current-URL": "http://localhost:8080/?faq=calendar",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-kind="terms-of-service"`) {
		t.Error("fragment should contain the terms dialog")
	}
	if strings.Contains(body, "<html") {
		t.Error("fragment should not be a full page")
	}
	if got := w.Header().Get("HX-Push-Url"); got != "/?faq=calendar&overlay=terms-of-service" {
		t.Errorf("HX-Push-Url = %q", got)
	}
}

func TestOverlayFragmentReplacesOpenDialog(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/overlay/privacy-policy", map[string]string{
		"HX-Request":     "true",
		"HX-Current-URL": "http://localhost:8080/?overlay=terms-of-service",
	})
	body := w.Body.String()
	if strings.Count(body, `role="dialog"`) != 1 || !strings.Contains(body, `data-kind="privacy-policy"`) {
		t.Errorf("expected only the privacy dialog, got %s", body)
	}
	if got := w.Header().Get("HX-Push-Url"); got != "/?overlay=privacy-policy" {
		t.Errorf("HX-Push-Url = %q", got)
	}
}

func TestOverlayFragmentClose(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/overlay/none", map[string]string{
		"HX-Request":     "true",
		"HX-Current-URL": "http://localhost:8080/?overlay=terms-of-service",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "" {
		t.Errorf("closed overlay should render nothing, got %q", w.Body.String())
	}
	if got := w.Header().Get("HX-Push-Url"); got != "/" {
		t.Errorf("HX-Push-Url = %q, want /", got)
	}
}

func TestOverlayFragmentUnknownKind(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/overlay/refunds", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestFAQFragmentToggles(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/faq/calendar?open=false", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-state="expanded"`) || !strings.Contains(body, `class="faq-answer"`) {
		t.Errorf("collapsed item should expand, got %s", body)
	}
	if !strings.Contains(body, `hx-get="/fragments/faq/calendar?open=true"`) {
		t.Error("next toggle should start from open")
	}

	w = get(r, "/fragments/faq/calendar?open=true", nil)
	body = w.Body.String()
	if !strings.Contains(body, `data-state="collapsed"`) || strings.Contains(body, `class="faq-answer"`) {
		t.Errorf("expanded item should collapse, got %s", body)
	}
}

func TestFAQFragmentLeavesSiblingsAlone(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/faq/calendar?open=false", map[string]string{
		"HX-Request":     "true",
		"HX-Current-URL": "http://localhost:8080/?faq=phone-number",
	})
	if got := w.Header().Get("HX-Push-Url"); got != "/?faq=phone-number,calendar" {
		t.Errorf("HX-Push-Url = %q", got)
	}
}

func TestFAQFragmentErrors(t *testing.T) {
	r, _ := setupRouter(t)

	if w := get(r, "/fragments/faq/unknown", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", w.Code)
	}
	if w := get(r, "/fragments/faq/calendar?open=maybe", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad open: expected 400, got %d", w.Code)
	}
}

func TestNavFragment(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/nav/pricing", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var trigger map[string]struct {
		ID     string `json:"id"`
		Offset int    `json:"offset"`
	}
	if err := json.Unmarshal([]byte(w.Header().Get("HX-Trigger")), &trigger); err != nil {
		t.Fatalf("HX-Trigger is not JSON: %v", err)
	}
	got := trigger["scroll-to"]
	if got.ID != "pricing" || got.Offset != 80 {
		t.Errorf("scroll-to = %+v, want pricing at 80", got)
	}
}

func TestNavFragmentMissingSection(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/fragments/nav/careers", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("HX-Trigger") != "" {
		t.Error("missing section should not trigger a scroll")
	}
}

func TestChartEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	for path, marker := range map[string]string{
		"/charts/bookings.svg": `class="bar"`,
		"/charts/status.svg":   `class="arc"`,
	} {
		w := get(r, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("%s: content type %q", path, ct)
		}
		if !strings.Contains(w.Body.String(), marker) {
			t.Errorf("%s: missing %s", path, marker)
		}
	}
}

func TestAssets(t *testing.T) {
	r, _ := setupRouter(t)

	css := get(r, "/assets/style.css", nil)
	if !strings.HasPrefix(css.Header().Get("Content-Type"), "text/css") {
		t.Errorf("css content type = %q", css.Header().Get("Content-Type"))
	}
	if !strings.Contains(css.Body.String(), "position: fixed; inset: 0; z-index: 100;") {
		t.Error("overlay should cover the viewport above the nav bar")
	}
	js := get(r, "/assets/app.js", nil)
	if !strings.Contains(js.Body.String(), `addEventListener("scroll-to"`) {
		t.Error("app.js should handle scroll-to events")
	}
	if strings.Contains(js.Body.String(), "Tally.loadEmbeds()") {
		t.Error("app.js should leave the widget to the page's own mount")
	}
}

// The form widget lives only in the full page; fragments never carry an
// embed point or the widget script, so nothing swapped in needs a rescan.
func TestFragmentsCarryNoEmbed(t *testing.T) {
	r, _ := setupRouter(t)

	for _, target := range []string{
		"/fragments/overlay/terms-of-service",
		"/fragments/overlay/privacy-policy",
		"/fragments/overlay/none",
		"/fragments/faq/calendar?open=false",
		"/fragments/faq/pricing-and-policies?open=true",
	} {
		w := get(r, target, map[string]string{"HX-Request": "true"})
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, w.Code)
		}
		body := w.Body.String()
		if strings.Contains(body, "data-tally-src") || strings.Contains(body, `id="tally-js"`) {
			t.Errorf("%s: fragment should not contain the form widget, got %s", target, body)
		}
	}

	page := get(r, "/", nil).Body.String()
	if n := strings.Count(page, `id="tally-js"`); n != 1 {
		t.Errorf("full page should inject the widget script once, got %d", n)
	}
}

func TestSwapRoot(t *testing.T) {
	r, h := setupRouter(t)
	h.Swap(setupRoot(t, Options{Brand: "SwappedBrand"}))

	w := get(r, "/", nil)
	if !strings.Contains(w.Body.String(), "SwappedBrand") {
		t.Error("requests should render against the swapped root")
	}
}
