package page

// StyleCSS is served at /assets/style.css.
const StyleCSS = `/* ============ Base ============ */
:root {
  --ink: #0f172a;
  --muted: #64748b;
  --faint: #94a3b8;
  --line: #f1f5f9;
  --blue: #2563eb;
  --nav-height: 80px;
}
* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  color: var(--ink);
  -webkit-font-smoothing: antialiased;
}
a { color: inherit; text-decoration: none; }
.container { max-width: 80rem; margin: 0 auto; padding: 0 1rem; }
.container.narrow { max-width: 56rem; }
.center { text-align: center; }
.muted { color: var(--muted); }
.strong { font-weight: 700; }
.small { font-size: 0.75rem; }
.mono { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
.fineprint { font-size: 0.75rem; color: var(--faint); font-style: italic; }
.eyebrow { font-size: 0.625rem; font-weight: 700; letter-spacing: 0.25em; text-transform: uppercase; }
.eyebrow.accent { color: var(--blue); }
.eyebrow.muted { color: var(--faint); }
.grid-bg {
  background-image: linear-gradient(#f1f5f9 1px, transparent 1px), linear-gradient(90deg, #f1f5f9 1px, transparent 1px);
  background-size: 40px 40px;
}
.card { background: #fff; border: 1px solid var(--line); border-radius: 1rem; box-shadow: 0 1px 2px rgba(0,0,0,0.04); }
section { padding: 6rem 0; }
.section-head { margin-bottom: 3rem; }
h2 { font-size: 1.875rem; margin: 0 0 1rem; }

/* ============ Buttons ============ */
.btn { display: inline-flex; align-items: center; gap: 0.5rem; padding: 0.5rem 1.25rem; border-radius: 9999px; font-size: 0.875rem; font-weight: 600; cursor: pointer; }
.btn-dark { background: #000; color: #fff; }
.btn-dark:hover { background: #1e293b; }
.btn-outline { border: 1px solid #e2e8f0; }
.btn-light { background: #fff; border: 1px solid #e2e8f0; }
.btn-lg { padding: 1.25rem 2.5rem; border-radius: 1rem; font-size: 1.125rem; font-weight: 700; }
.btn-sm { padding: 0.5rem 1.5rem; border-radius: 0.5rem; font-size: 0.75rem; }

/* ============ Navbar ============ */
.navbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 50;
  height: var(--nav-height);
  background: rgba(255,255,255,0.8); backdrop-filter: blur(12px);
  border-bottom: 1px solid var(--line);
}
.navbar-inner { height: 100%; display: flex; align-items: center; justify-content: space-between; }
.brand { display: flex; align-items: center; gap: 0.5rem; cursor: pointer; }
.brand-mark { width: 2rem; height: 2rem; border-radius: 0.5rem; background: #000; color: #fff; display: flex; align-items: center; justify-content: center; font-weight: 700; }
.brand-mark.light { background: #fff; color: #000; }
.brand-name { font-size: 1.25rem; font-weight: 700; letter-spacing: -0.025em; }
.nav-links { display: flex; gap: 2rem; font-size: 0.875rem; font-weight: 500; color: #475569; }
.nav-links a:hover { color: #000; }
.nav-actions { display: flex; gap: 0.75rem; }
@media (max-width: 768px) { .nav-links, .nav-actions .btn-outline { display: none; } }

/* ============ Hero ============ */
.hero { padding: 10rem 1rem 6rem; }
.pill { display: inline-block; margin-bottom: 3rem; padding: 0.375rem 1rem; border-radius: 9999px; background: #eff6ff; color: var(--blue); font-size: 0.625rem; font-weight: 900; letter-spacing: 0.2em; text-transform: uppercase; }
.hero h1 { font-size: clamp(3.5rem, 8vw, 6rem); font-weight: 900; letter-spacing: -0.05em; line-height: 0.9; margin: 0 0 2rem; }
.underline { border-bottom: 4px solid rgba(37,99,235,0.3); }
.lead { max-width: 36rem; margin: 0 auto 3rem; font-size: 1.25rem; color: var(--muted); line-height: 1.6; }
.lead.left { margin: 1rem 0 4rem; }
.hero-actions { display: flex; justify-content: center; gap: 1rem; flex-wrap: wrap; margin-bottom: 3rem; }
.live-note { font-size: 0.75rem; font-weight: 700; color: var(--faint); }
.dot { display: inline-block; width: 6px; height: 6px; border-radius: 50%; background: #22c55e; }

/* ============ Integrations ============ */
.integrations { padding: 3rem 0; border-bottom: 1px solid #f8fafc; }
.logos { display: flex; flex-wrap: wrap; justify-content: center; align-items: center; gap: 3rem; margin-top: 2rem; }
.logos img { height: 2rem; }
.logos img.small { height: 1.5rem; }
.phone-logo { font-weight: 600; color: var(--muted); }

/* ============ Dashboard ============ */
.dashboard { background: #f8fafc; }
.stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 1.5rem; margin-bottom: 2rem; }
.stat { padding: 1.5rem; }
.stat-label { font-size: 0.75rem; font-weight: 700; letter-spacing: 0.05em; color: var(--faint); }
.stat-value { font-size: 1.5rem; font-weight: 700; margin: 1rem 0 0.25rem; }
.stat-sub { font-size: 0.75rem; color: var(--faint); }
.charts { display: grid; grid-template-columns: 2fr 1fr; gap: 1.5rem; margin-bottom: 2rem; }
.chart-card { padding: 1.5rem; }
.card-title { font-size: 0.875rem; color: var(--faint); margin: 0 0 1.5rem; }
.chart.ring { max-width: 12rem; margin: 0 auto; }
.legend { display: flex; justify-content: space-between; margin-top: 1rem; font-size: 0.625rem; font-weight: 700; letter-spacing: 0.05em; text-transform: uppercase; }
.legend-entry { display: flex; flex-direction: column; align-items: center; }
.legend-entry strong { color: var(--ink); font-size: 0.875rem; margin-top: 0.25rem; }
.sync-card { max-width: 24rem; margin: 0 0 2rem auto; padding: 1.5rem; border-radius: 1rem; background: var(--blue); color: #fff; }
.sync-card h4 { margin: 1rem 0 0.25rem; }
.sync-card p { margin: 0; opacity: 0.8; }
.table-card { overflow-x: auto; }
.jobs { width: 100%; border-collapse: collapse; font-size: 0.875rem; text-align: left; }
.jobs th { padding: 1rem 1.5rem; font-size: 0.625rem; letter-spacing: 0.05em; text-transform: uppercase; color: var(--faint); background: rgba(248,250,252,0.5); }
.jobs td { padding: 1rem 1.5rem; border-top: 1px solid #f8fafc; }
.jobs .intent { color: var(--blue); font-weight: 600; }
.badge { display: inline-block; padding: 0.25rem 0.75rem; border-radius: 9999px; font-size: 0.625rem; font-weight: 700; letter-spacing: 0.05em; text-transform: uppercase; }
.badge-green { background: #dcfce7; color: #15803d; }
.badge-amber { background: #fef3c7; color: #b45309; }
.badge-rose { background: #ffe4e6; color: #be123c; }
@media (max-width: 1024px) { .stats, .charts { grid-template-columns: 1fr; } }

/* ============ Automation ============ */
.two-col { display: grid; grid-template-columns: 1fr 1fr; gap: 2rem; }
.message { margin-top: 1rem; padding: 2rem; border-radius: 2rem; box-shadow: 0 25px 50px -12px rgba(0,0,0,0.25); }
.message.dark { background: #1a1a1a; color: #cbd5e1; }
.message.dark h4 { color: #fff; }
.message.light { border: 2px solid var(--blue); }
.message-head { margin: -2rem -2rem 1.5rem; padding: 2rem; background: var(--blue); color: #fff; border-radius: 1.8rem 1.8rem 0 0; }
.message-links { display: flex; gap: 1.5rem; color: #60a5fa; }
.details { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; font-size: 0.75rem; }
.details dt { color: var(--faint); font-weight: 700; text-transform: uppercase; }
.details dd { margin: 0.25rem 0 0; font-weight: 700; }
.details .span-2 { grid-column: span 2; }
.slot { display: flex; justify-content: space-between; align-items: center; padding: 1rem; border-radius: 0.75rem; background: #f8fafc; }
.slot.empty { margin-top: 0.5rem; background: none; border: 1px dashed #e2e8f0; }
@media (max-width: 768px) { .two-col { grid-template-columns: 1fr; } }

/* ============ Onboarding ============ */
.onboarding { background: #f8fafc; }
.steps { display: grid; grid-template-columns: repeat(4, 1fr); gap: 1.5rem; }
.step { padding: 2rem; }
.step-icon { width: 3rem; height: 3rem; border-radius: 0.75rem; }
.tone-black.step-icon { background: #000; }
.tone-blue.step-icon { background: var(--blue); }
.tone-green.step-icon { background: #16a34a; }
.tone-pink.step-icon { background: #db2777; }
.form-card { margin-top: 6rem; overflow: hidden; }
.form-card h3 { padding: 3rem; margin: 0; text-align: center; color: #334155; border-bottom: 1px solid var(--line); }
.form-embed { min-height: 350px; padding: 1rem; }
.form-embed iframe { border: none; margin: 0; }
@media (max-width: 1024px) { .steps { grid-template-columns: 1fr 1fr; } }

/* ============ Pricing ============ */
.pricing-box { display: flex; border-radius: 3rem; overflow: hidden; background: #0f172a; }
.pricing-main { flex: 1; padding: 4rem; background: #000; color: #fff; }
.pricing-main h2 { font-size: 2.25rem; }
.price { display: flex; align-items: baseline; gap: 0.5rem; margin-top: 3rem; }
.amount { font-size: 3.75rem; font-weight: 900; }
.per { color: var(--muted); font-weight: 700; text-transform: uppercase; letter-spacing: 0.1em; }
.setup { color: #3b82f6; font-size: 0.875rem; font-weight: 700; letter-spacing: 0.2em; margin-bottom: 3rem; }
.features { list-style: none; padding: 0; color: #cbd5e1; font-size: 0.875rem; }
.features li { margin-bottom: 1rem; padding-left: 1.75rem; position: relative; }
.features li::before { content: "\2713"; position: absolute; left: 0; color: #3b82f6; }
.pricing-side { flex: 1; padding: 4rem; background: #fff; display: flex; flex-direction: column; gap: 3rem; }
.value h4 { font-size: 1.125rem; margin: 0 0 0.25rem; }
@media (max-width: 1024px) { .pricing-box { flex-direction: column; } }

/* ============ FAQ ============ */
.faq { background: #f8fafc; }
.faq-list { margin-top: 3rem; }
.faq-item { margin-bottom: 1rem; background: #fff; border: 1px solid var(--line); border-radius: 1rem; overflow: hidden; }
.faq-question { display: flex; justify-content: space-between; align-items: center; width: 100%; padding: 1.5rem 2rem; font-weight: 700; color: #334155; cursor: pointer; list-style: none; }
.faq-question:hover { background: #f8fafc; }
.chevron::after { content: "\25BE"; color: var(--faint); }
.faq-item[data-state="expanded"] .chevron::after, details[open] .chevron::after { content: "\25B4"; }
.faq-answer { padding: 0 2rem 2rem; color: var(--muted); font-size: 0.875rem; line-height: 1.6; }

/* ============ Footer ============ */
.footer { padding: 6rem 0; background: #000; color: #fff; }
.footer-grid { display: grid; grid-template-columns: 2fr 1fr 1fr; gap: 3rem; }
.footer-brand h3 { font-size: 1.875rem; max-width: 24rem; }
.footer-brand em { color: #3b82f6; }
.footer ul { list-style: none; padding: 0; color: var(--faint); font-size: 0.875rem; }
.footer li { margin-bottom: 1rem; }
.footer a:hover { color: #fff; }
.footer-bottom { display: flex; justify-content: space-between; margin-top: 6rem; padding-top: 3rem; border-top: 1px solid rgba(255,255,255,0.05); font-size: 0.625rem; font-weight: 700; letter-spacing: 0.2em; text-transform: uppercase; color: #475569; }
.legal-links { display: flex; gap: 2rem; }

/* ============ Overlay ============ */
.overlay {
  position: fixed; inset: 0; z-index: 100;
  display: flex; align-items: center; justify-content: center;
  padding: 1rem; background: rgba(0,0,0,0.6); backdrop-filter: blur(4px);
}
.overlay-panel { width: 100%; max-width: 42rem; max-height: 80vh; display: flex; flex-direction: column; overflow: hidden; background: #fff; border-radius: 1.5rem; }
.overlay-head { display: flex; justify-content: space-between; align-items: center; padding: 1.5rem; border-bottom: 1px solid var(--line); }
.overlay-head h2 { font-size: 1.25rem; margin: 0; }
.overlay-close { font-size: 1.5rem; line-height: 1; padding: 0.5rem; border-radius: 9999px; }
.overlay-close:hover { background: var(--line); }
.overlay-body { padding: 2rem; overflow-y: auto; color: #475569; font-size: 0.875rem; line-height: 1.6; }
.overlay-body h3 { color: var(--ink); }
`

// AppJS is served at /assets/app.js. It handles scroll events sent by the
// nav fragment endpoint, re-scans embeds after htmx swaps and, when the page
// asks for it, reloads on content changes.
const AppJS = `(function () {
  "use strict";

  document.addEventListener("scroll-to", function (evt) {
    var d = evt.detail || {};
    var el = d.id && document.getElementById(d.id);
    if (!el) return;
    var top = el.getBoundingClientRect().top + window.pageYOffset - (d.offset || 0);
    window.scrollTo({ top: Math.max(top, 0), behavior: "smooth" });
  });

  var lr = document.querySelector("meta[name=livereload]");
  if (lr && "WebSocket" in window) {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + lr.getAttribute("content"));
    ws.onmessage = function (msg) {
      if (msg.data === "reload") location.reload();
    };
  }
})();
`
