package page

// pageTemplate is the whole landing page plus the "overlay" and "faq-item"
// fragments that the live server also renders on their own.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" style="scroll-padding-top: {{.NavOffset}}px">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Brand}} | 24/7 AI Receptionist for Small Business</title>
  <link rel="stylesheet" href="{{.AssetBase}}style.css?v={{.BuildID}}">
  {{- if .LiveReload}}
  <meta name="livereload" content="/livereload">
  {{- end}}
  {{- if .Live}}
  <script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
  {{- end}}
</head>
<body>
<div id="top"></div>
<nav class="navbar">
  <div class="container navbar-inner">
    <a class="brand" href="{{.Top.Href}}"{{if .Top.Fragment}} hx-get="{{.Top.Fragment}}" hx-swap="none"{{end}}>
      <span class="brand-mark">B</span><span class="brand-name">{{.Brand}}</span>
    </a>
    <div class="nav-links">
      {{- range .NavLinks}}
      <a href="{{.Href}}"{{if .Fragment}} hx-get="{{.Fragment}}" hx-swap="none"{{end}}>{{.Label}}</a>
      {{- end}}
    </div>
    <div class="nav-actions">
      <a class="btn btn-outline" href="{{.BookCall.Href}}"{{if .BookCall.Fragment}} hx-get="{{.BookCall.Fragment}}" hx-swap="none"{{end}}>{{.BookCall.Label}}</a>
      <a class="btn btn-dark" href="{{.CheckoutURL}}" target="_blank" rel="noopener noreferrer">Buy Now</a>
    </div>
  </div>
</nav>

<main>
<header class="hero grid-bg">
  <div class="container center">
    <span class="pill">24/7 AI Receptionist for Small Business</span>
    <h1>Never miss a customer lead <br><span class="underline">again.</span></h1>
    <p class="lead">Boost revenue with a virtual pro that handles your scheduling, answers questions, and confirms jobs, while you're on site or off the clock.</p>
    <div class="hero-actions">
      <a class="btn btn-dark btn-lg" href="{{.CheckoutURL}}" target="_blank" rel="noopener noreferrer">Buy Now</a>
      <a class="btn btn-light btn-lg" href="{{.SeeDashboard.Href}}"{{if .SeeDashboard.Fragment}} hx-get="{{.SeeDashboard.Fragment}}" hx-swap="none"{{end}}>{{.SeeDashboard.Label}}</a>
    </div>
    <p class="live-note"><span class="dot"></span> Go live within a few days, with no coding required.</p>
  </div>
</header>

<section class="integrations">
  <div class="container center">
    <p class="eyebrow muted">Seamlessly integrates with your stack</p>
    <div class="logos">
      <img src="https://www.gstatic.com/images/branding/product/2x/calendar_2020q4_48dp.png" alt="Google Calendar">
      <img src="https://www.gstatic.com/images/branding/product/2x/sheets_2020q4_48dp.png" alt="Google Sheets">
      <img src="https://www.gstatic.com/images/branding/product/2x/gmail_2020q4_48dp.png" alt="Gmail" class="small">
      <span class="phone-logo">Your Phone Number</span>
    </div>
  </div>
</section>

<section id="dashboard" class="dashboard">
  <div class="container">
    <div class="center section-head">
      <h2>A clean interface for a busy trade.</h2>
      <p class="muted">Everything you need to know about your jobs, organized and automated.</p>
      <p class="fineprint">For illustrative purposes</p>
    </div>

    <div class="stats">
      {{- range .Stats}}
      <div class="card stat tone-{{.Tone}}">
        <span class="stat-label">{{.Label}}</span>
        <div class="stat-value">{{.Value}}</div>
        <div class="stat-sub">{{.Sub}}</div>
      </div>
      {{- end}}
    </div>

    <div class="charts">
      <div class="card chart-card wide">
        <h3 class="card-title">Daily Bookings Trend</h3>
        <div class="chart">{{.BookingsSVG}}</div>
      </div>
      <div class="card chart-card">
        <h3 class="card-title">Job Status Distribution</h3>
        <div class="chart ring">{{.StatusSVG}}</div>
        <div class="legend">
          {{- range .Legend}}
          <div class="legend-entry"><span style="color: {{.Color}}">{{.Label}}</span><strong>{{.Value}}</strong></div>
          {{- end}}
        </div>
      </div>
    </div>

    <div class="sync-card">
      <div class="eyebrow">Google Calendar Sync</div>
      <h4>{{.Sync.Title}}</h4>
      <p>{{.Sync.Time}}</p>
      <p class="small">{{.Sync.Location}}</p>
    </div>

    <div class="card table-card">
      <table class="jobs">
        <thead>
          <tr><th>Job ID</th><th>Created At</th><th>Customer</th><th>Intent</th><th>Service Type</th><th>Status</th></tr>
        </thead>
        <tbody>
          {{- range .Jobs}}
          <tr>
            <td class="muted">{{.ID}}</td>
            <td class="muted">{{.CreatedAt}}</td>
            <td><div class="strong">{{.CustomerName}}</div><div class="small muted">{{.CustomerPhone}}</div></td>
            <td class="intent">{{.Intent}}</td>
            <td>{{.ServiceType}}</td>
            <td><span class="badge badge-{{.Badge}}">{{.Status}}</span></td>
          </tr>
          {{- end}}
        </tbody>
      </table>
    </div>
  </div>
</section>

<section class="automation grid-bg">
  <div class="container">
    <div class="center section-head">
      <span class="eyebrow accent">Automation</span>
      <p class="muted">{{.Brand}} sends beautiful, clear confirmations to your customers and instant booking requests to you.</p>
    </div>
    <div class="two-col">
      <div>
        <div class="eyebrow muted">Customer View</div>
        <div class="message dark">
          <h4>Confirmed: Leaky faucet on Wed, Feb 4, 2026 at 9:00 AM</h4>
          <p class="strong">Hi Bill Jones,</p>
          <p>You're all set, your appointment is confirmed.</p>
          <ul>
            <li><b>Service:</b> Leaky faucet</li>
            <li><b>Date/Time:</b> Wed, Feb 4, 2026 at 9:00 AM</li>
            <li><b>Address:</b> 1234 Harper Landing, Fairview, Texas</li>
          </ul>
          <p class="small">Need to reschedule or cancel? Use the links below:</p>
          <p class="message-links"><span>Reschedule Appointment</span><span>Cancel Appointment</span></p>
        </div>
      </div>
      <div>
        <div class="eyebrow muted">Business View (You)</div>
        <div class="message light">
          <h4 class="message-head">New booking request: Bill Jones (Leaky faucet)</h4>
          <span class="badge badge-amber">Pending Confirmation</span>
          <dl class="details">
            <div><dt>Job ID</dt><dd class="mono">JOB-F1EE5C8A</dd></div>
            <div><dt>Customer</dt><dd>Bill Jones</dd></div>
            <div><dt>Phone</dt><dd>432-123-1234</dd></div>
            <div><dt>Email</dt><dd>email@email.com</dd></div>
            <div class="span-2"><dt>Address</dt><dd>1234 Harper Landing, Fairview, Texas</dd></div>
          </dl>
          <p class="strong">WOULD YOU LIKE TO CONFIRM?</p>
          <div class="slot"><div><span class="eyebrow muted">Slot 1 (Preferred)</span><div class="strong">Wed, Feb 4 at 9:00 AM</div></div><span class="btn btn-dark btn-sm">Confirm Slot 1</span></div>
          <div class="slot empty"><span class="eyebrow muted">Slot 2: (none)</span></div>
        </div>
      </div>
    </div>
  </div>
</section>

<div id="how-it-works">
<section id="onboarding" class="onboarding">
  <div class="container">
    <span class="eyebrow accent">Onboarding</span>
    <p class="lead left">We built {{.Brand}} for the trades. No coding, no complex manuals, just simple setup and better results.</p>
    <div class="steps">
      {{- range .Steps}}
      <div class="card step">
        <div class="step-icon tone-{{.Tone}}"></div>
        <h4>{{.Title}}</h4>
        <p class="muted">{{.Description}}</p>
      </div>
      {{- end}}
    </div>
    <div class="card form-card">
      <h3>Have questions? We've got you. Fill out the details below for a free consultation.</h3>
      {{- if .FormURL}}
      <div class="form-embed">
        <iframe data-tally-src="{{.FormURL}}" loading="lazy" width="100%" height="350" title="{{.Brand}} Contact Form"></iframe>
      </div>
      {{- end}}
    </div>
  </div>
</section>
</div>

<section id="pricing" class="pricing">
  <div class="container">
    <div class="pricing-box">
      <div class="pricing-main">
        <h2>Simple, Fixed Monthly Rate</h2>
        <p class="muted">Everything you need to automate your front office and capture every single lead.</p>
        <div class="price"><span class="amount">{{.Pricing.Monthly}}</span><span class="per">/month</span></div>
        <p class="setup">{{.Pricing.Setup}}</p>
        <ul class="features">
          {{- range .Pricing.Features}}
          <li>{{.}}</li>
          {{- end}}
        </ul>
      </div>
      <div class="pricing-side">
        <div class="value"><h4>Easy Setup</h4><p class="muted">We simply forward your missed leads to the AI. You don't have to change a thing.</p></div>
        <div class="value"><h4>Flexible</h4><p class="muted">Seasonal slow down? No problem. Pause or cancel your subscription whenever you want.</p></div>
        <div class="value"><h4>Quick Deployment</h4><p class="muted">As soon as we have received payment, we will have you live and setup within 1-5 business days or your money back</p></div>
        <a class="btn btn-dark btn-lg" href="{{.CheckoutURL}}" target="_blank" rel="noopener noreferrer">Buy Now</a>
      </div>
    </div>
  </div>
</section>

<section id="faq" class="faq">
  <div class="container narrow">
    <h2 class="center">Frequently Asked Questions</h2>
    <div class="faq-list">
      {{- range .FAQ}}
      {{template "faq-item" .}}
      {{- end}}
    </div>
  </div>
</section>
</main>

<footer class="footer">
  <div class="container">
    <div class="footer-grid">
      <div class="footer-brand">
        <div class="brand"><span class="brand-mark light">B</span><span class="brand-name">{{.Brand}}</span></div>
        <h3>The AI virtual receptionist for <em>modern trades.</em></h3>
      </div>
      <div>
        <h4 class="eyebrow">Product</h4>
        <ul>
          {{- range .FooterProduct}}
          <li><a href="{{.Href}}"{{if .Fragment}} hx-get="{{.Fragment}}" hx-swap="none"{{end}}>{{.Label}}</a></li>
          {{- end}}
        </ul>
      </div>
      <div>
        <h4 class="eyebrow">Support</h4>
        <ul><li><a href="{{.Contact.Href}}">{{.Contact.Label}}</a></li></ul>
      </div>
    </div>
    <div class="footer-bottom">
      <div>&copy; 2024 {{.Brand}}. All rights reserved.</div>
      <div class="legal-links">
        {{- range .Legal}}
        <a href="{{.Href}}"{{if .Fragment}} hx-get="{{.Fragment}}" hx-target="#overlay-slot"{{end}}>{{.Label}}</a>
        {{- end}}
      </div>
    </div>
  </div>
</footer>

<div id="overlay-slot">{{template "overlay" .Overlay}}</div>
{{.Scripts}}
<script src="{{.AssetBase}}app.js?v={{.BuildID}}"></script>
</body>
</html>
{{define "overlay"}}{{if .Open}}
<div class="overlay" role="dialog" aria-modal="true" aria-labelledby="overlay-title" data-kind="{{.Kind}}">
  <div class="overlay-panel">
    <div class="overlay-head">
      <h2 id="overlay-title">{{.Title}}</h2>
      <a class="overlay-close" href="{{.CloseHref}}"{{if .CloseFragment}} hx-get="{{.CloseFragment}}" hx-target="#overlay-slot"{{end}} aria-label="Close">&times;</a>
    </div>
    <div class="overlay-body">{{.Body}}</div>
  </div>
</div>
{{end}}{{end}}
{{define "faq-item"}}{{if .Static}}
<details class="faq-item" id="faq-{{.ID}}"{{if .Expanded}} open{{end}}>
  <summary class="faq-question">{{.Question}}</summary>
  <div class="faq-answer">{{.Answer}}</div>
</details>
{{else}}
<div class="faq-item" id="faq-{{.ID}}" data-state="{{if .Expanded}}expanded{{else}}collapsed{{end}}">
  <a class="faq-question" href="{{.ToggleHref}}" hx-get="{{.ToggleFragment}}" hx-target="#faq-{{.ID}}" hx-swap="outerHTML" aria-expanded="{{.Expanded}}">
    <span>{{.Question}}</span><span class="chevron" aria-hidden="true"></span>
  </a>
  {{- if .Expanded}}
  <div class="faq-answer">{{.Answer}}</div>
  {{- end}}
</div>
{{end}}{{end}}`
