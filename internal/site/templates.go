package site

// pageTemplates holds every page of the site as named html/templates.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
  <link rel="stylesheet" href="{{.URLs.Asset "style.css"}}">
</head>
<body{{if .LiveReload}} data-live-reload="true"{{end}}>
  <header class="top-bar">
    <a class="brand" href="{{.URLs.Home}}">{{.SiteTitle}}</a>
    <nav class="main-nav">
      {{range .Nav}}{{if .Disabled}}<span class="nav-link disabled">{{.Label}}</span>{{else}}<a class="nav-link" href="{{.URL}}">{{.Label}}</a>{{end}}
      {{end}}
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">&#9681;</button>
  </header>
  <main class="content">
{{end}}

{{define "foot"}}
  </main>
  <footer class="site-footer">
    <div class="footer-columns">
      {{range .Footer}}
      <div class="footer-column">
        <h4>{{.Title}}</h4>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
        {{if .Social}}<div class="social-links">{{range .Social}}{{if .Disabled}}<span class="social-link disabled" title="{{.Label}}">{{.Label}}</span>{{else}}<a class="social-link" href="{{.URL}}" title="{{.Label}}">{{.Label}}</a>{{end}} {{end}}</div>{{end}}
        {{if .Links}}<ul>{{range .Links}}<li>{{if .Disabled}}<span class="disabled">{{.Label}}</span>{{else}}<a href="{{.URL}}">{{.Label}}</a>{{end}}</li>{{end}}</ul>{{end}}
      </div>
      {{end}}
    </div>
    {{if .Copyright}}<div class="copyright">{{.Copyright}}</div>{{end}}
  </footer>
  <script src="{{.URLs.Asset "script.js"}}"></script>
</body>
</html>
{{end}}

{{define "index"}}{{template "head" .}}
{{with .Index}}
  {{with .Hero}}
  <section class="hero" id="home">
    <h1>{{.Title}}</h1>
    <p class="hero-subtitle">{{.Subtitle}}</p>
    <div class="hero-buttons">
      {{with .Primary}}{{if .Disabled}}<span class="btn btn-primary disabled">{{.Label}} (Coming Soon)</span>{{else}}<a class="btn btn-primary" href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
      {{with .Secondary}}{{if .Disabled}}<span class="btn btn-secondary disabled">{{.Label}} (Coming Soon)</span>{{else}}<a class="btn btn-secondary" href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
      {{with .Support}}{{if .Disabled}}<span class="btn btn-patreon btn-disabled">{{.Label}}</span>{{else}}<a class="btn btn-patreon" href="{{.URL}}">{{.Label}}</a>{{end}}{{end}}
    </div>
  </section>
  {{end}}

  <section class="library-teaser">
    {{if .CatalogError}}<p class="error-state">Template library unavailable: {{.CatalogError}}</p>
    {{else}}<p>{{.TemplateCount}} ready-made filter graphs in the <a href="{{$.URLs.Gallery "" 1 0}}">Graph Library</a>.</p>{{end}}
  </section>

  {{if .FeaturesAvailable}}
  <section class="features" id="features">
    <h2 class="section-title">Features</h2>
    <div class="feature-grid">
      {{range .Highlighted}}<div class="feature-card" data-category="{{.Category}}"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}
    </div>
    {{if .OtherFeatures}}
    <details class="more-features">
      <summary>Show all features</summary>
      <div class="feature-grid">
        {{range .OtherFeatures}}<div class="feature-card" data-category="{{.Category}}"><h3>{{.Title}}</h3><p>{{.Description}}</p></div>{{end}}
      </div>
    </details>
    {{end}}
  </section>
  {{end}}

  {{if not .TutorialsMissing}}
  <section class="tutorials" id="tutorials">
    <h2 class="section-title">Tutorials</h2>
    <form class="tutorial-controls" method="get" action="{{$.URLs.Home}}">
      <input type="text" name="tq" id="tutorial-search" class="search-input" placeholder="Search tutorials..." value="{{.TutorialQuery}}">
      <div class="filter-buttons">
        {{$cat := .Category}}
        {{range .Categories}}<button type="submit" name="category" value="{{.}}" class="filter-btn{{if eq . $cat}} active{{end}}" data-category="{{.}}">{{.}}</button>{{end}}
      </div>
    </form>
    <div class="tutorial-grid" id="tutorial-grid">
      {{range .Tutorials}}
      <a class="tutorial-card" href="{{.URL}}" data-category="{{.Category}}" data-search="{{.Title}} {{.Description}} {{range .Tags}}{{.}} {{end}}">
        <span class="tutorial-category">{{.Category}}</span>
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <div class="tutorial-meta">{{.ReadTime}} &middot; {{.Date}}</div>
        <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
      </a>
      {{else}}
      <p class="empty-state">No tutorials found.</p>
      {{end}}
    </div>
  </section>
  {{end}}

  {{with .Downloads}}
  <section class="downloads" id="download">
    <h2 class="section-title">Download</h2>
    {{if .Version}}<p class="release">Version {{.Version}}{{if .ReleaseDate}} &middot; released {{.ReleaseDate}}{{end}}</p>{{end}}
    <div class="platform-grid">
      {{range .Platforms}}
      <div class="platform-card{{if not .Available}} unavailable{{end}}">
        <h3>{{.Name}}</h3>
        <p>{{.Description}}</p>
        {{if .Available}}
        <div class="download-links">{{range .Links}}<a class="btn btn-small" href="{{.URL}}">.{{.Ext}}</a> {{end}}</div>
        {{else}}
        <span class="coming-soon">Coming Soon</span>
        {{end}}
      </div>
      {{end}}
    </div>
  </section>
  {{end}}
{{end}}
{{template "foot" .}}{{end}}

{{define "gallery"}}{{template "head" .}}
{{with .Gallery}}
  <section class="graph-library" id="graph-library"
           data-catalog="{{$.URLs.Asset "catalog.json"}}"
           data-page-size="{{$.PageSize}}"
           data-tool="{{$.ToolName}}">
    <h1 class="section-title">Graph Library</h1>
    <form class="search-bar" method="get" id="template-search-form">
      <input type="text" name="q" id="template-search" class="search-input" placeholder="Search templates..." value="{{.Query}}" autocomplete="off">
      <button type="button" class="clear-search" id="clear-search" aria-label="Clear search">&times;</button>
      <select name="size" id="page-size">
        {{range .Sizes}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}} per page</option>{{end}}
      </select>
    </form>
    {{if .Err}}
    <p class="error-state" id="results-count">Failed to load templates: {{.Err}}</p>
    {{else}}
    <p class="results-count" id="results-count">{{.Summary}}</p>
    <div class="template-grid" id="template-grid">
      {{range .Cards}}
      <article class="template-card" data-id="{{.ID}}">
        {{if .Image}}<img class="template-image" src="{{.Image}}" alt="{{.Title}}" loading="lazy">{{end}}
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
        <div class="template-actions">
          <select class="version-select" aria-label="Version">
            {{range .Versions}}<option value="{{.Value}}" data-payload="{{.Payload}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
          </select>
          <button type="button" class="copy-btn">Copy</button>
          <span class="payload-size">{{.Size}}</span>
        </div>
        <pre class="payload"><code>{{.Payload}}</code></pre>
      </article>
      {{end}}
    </div>
    <nav class="pagination" id="pagination">
      {{with .First}}{{if .Disabled}}<span class="page-btn disabled">&laquo;</span>{{else}}<a class="page-btn" href="{{.URL}}" title="{{.Label}}">&laquo;</a>{{end}}{{end}}
      {{with .Prev}}{{if .Disabled}}<span class="page-btn disabled">&lsaquo;</span>{{else}}<a class="page-btn" href="{{.URL}}" title="{{.Label}}">&lsaquo;</a>{{end}}{{end}}
      {{if .Leading}}<span class="ellipsis">&hellip;</span>{{end}}
      {{range .Pages}}{{if .Current}}<span class="page-btn current">{{.Number}}</span>{{else}}<a class="page-btn" href="{{.URL}}">{{.Number}}</a>{{end}}{{end}}
      {{if .Trailing}}<span class="ellipsis">&hellip;</span>{{end}}
      {{with .Next}}{{if .Disabled}}<span class="page-btn disabled">&rsaquo;</span>{{else}}<a class="page-btn" href="{{.URL}}" title="{{.Label}}">&rsaquo;</a>{{end}}{{end}}
      {{with .Last}}{{if .Disabled}}<span class="page-btn disabled">&raquo;</span>{{else}}<a class="page-btn" href="{{.URL}}" title="{{.Label}}">&raquo;</a>{{end}}{{end}}
    </nav>
    {{end}}
  </section>
{{end}}
{{template "foot" .}}{{end}}

{{define "tutorial"}}{{template "head" .}}
{{with .Tutorial}}
  <article class="tutorial-reader">
    <header class="tutorial-header">
      <span class="tutorial-category">{{.Category}}</span>
      <h1>{{.Title}}</h1>
      <div class="tutorial-meta">{{.ReadTime}} &middot; {{.Date}}</div>
      <p class="tutorial-description">{{.Description}}</p>
      <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
    </header>
    {{if .TOC}}
    <div class="tutorial-toc">
      <h3>Table of Contents</h3>
      <ul class="toc-list">{{range .TOC}}<li><a class="toc-link" href="#{{.Anchor}}">{{.Title}}</a></li>{{end}}</ul>
    </div>
    {{end}}
    {{if .Intro}}<div class="tutorial-intro"><h2>Introduction</h2>{{.IntroHTML}}</div>{{end}}
    {{range .Body}}
    <div class="tutorial-section" id="{{.Anchor}}">
      <h3>{{.Title}}</h3>
      {{.Body}}
      {{if .Image}}<div class="tutorial-section-image"><img src="assets/images/{{.Image}}" alt="{{.Title}}"><div class="image-caption">{{.Title}}</div></div>{{end}}
      {{if .VideoURL}}<div class="video-container"><iframe src="{{.VideoURL}}" title="{{.Title}}" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>{{end}}
    </div>
    {{end}}
    {{if .Conclusion}}<div class="tutorial-conclusion"><h3>Conclusion</h3>{{.Conclusion}}</div>{{end}}
    <nav class="tutorial-nav">
      {{with .Prev}}<a class="btn btn-secondary" href="{{$.URLs.Tutorial .ID}}">&larr; {{.Title}}</a>{{else}}<span class="btn btn-secondary disabled">&larr; Previous</span>{{end}}
      {{with .Next}}<a class="btn btn-secondary" href="{{$.URLs.Tutorial .ID}}">{{.Title}} &rarr;</a>{{else}}<span class="btn btn-secondary disabled">Next &rarr;</span>{{end}}
    </nav>
  </article>
{{end}}
{{template "foot" .}}{{end}}

{{define "error"}}{{template "head" .}}
  <section class="error-page"><h1>Something went wrong</h1><p class="error-state">{{.Error}}</p><a href="{{.URLs.Home}}">Back home</a></section>
{{template "foot" .}}{{end}}
`

// cssContent is the full CSS for the site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --success: #2f9e44;
  --error: #e03131;
  --content-max-width: 1200px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --accent-light: #1a1b2e;
  --code-bg: #1f2030;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
html { font-size: 16px; scroll-behavior: smooth; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}
a { color: var(--accent); text-decoration: none; }
a:hover { color: var(--accent-hover); text-decoration: underline; }
.disabled { opacity: 0.5; cursor: not-allowed; }

/* ============ Layout ============ */
.top-bar {
  display: flex; align-items: center; gap: 1.5rem;
  padding: 0.75rem 2rem; border-bottom: 1px solid var(--border);
  position: sticky; top: 0; background: var(--bg); z-index: 10;
}
.brand { font-weight: 700; font-size: 1.2rem; color: var(--text); }
.main-nav { display: flex; gap: 1rem; flex: 1; }
.nav-link { color: var(--text-secondary); }
.theme-toggle { background: none; border: 1px solid var(--border); border-radius: 6px; padding: 0.25rem 0.6rem; color: var(--text); cursor: pointer; }
.content { max-width: var(--content-max-width); margin: 0 auto; padding: 2rem; }
.section-title { margin: 2.5rem 0 1rem; }

/* ============ Buttons ============ */
.btn { display: inline-block; padding: 0.6rem 1.2rem; border-radius: 6px; font-weight: 600; border: 1px solid var(--accent); }
.btn-primary { background: var(--accent); color: #fff; }
.btn-secondary { color: var(--accent); }
.btn-patreon { background: #f96854; border-color: #f96854; color: #fff; }
.btn-disabled { opacity: 0.5; cursor: not-allowed; }
.btn-small { padding: 0.25rem 0.6rem; font-size: 0.85rem; }

/* ============ Hero ============ */
.hero { text-align: center; padding: 4rem 1rem 2rem; }
.hero h1 { font-size: 2.5rem; }
.hero-subtitle { color: var(--text-secondary); margin: 1rem 0 2rem; }
.hero-buttons { display: flex; gap: 1rem; justify-content: center; }

/* ============ Cards ============ */
.feature-grid, .tutorial-grid, .platform-grid, .template-grid {
  display: grid; gap: 1rem; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
}
.feature-card, .tutorial-card, .platform-card, .template-card {
  border: 1px solid var(--border); border-radius: 8px; padding: 1.25rem;
  background: var(--bg-secondary); box-shadow: var(--shadow); color: var(--text);
}
.tutorial-card:hover, .template-card:hover { box-shadow: var(--shadow-lg); text-decoration: none; }
.more-features { margin-top: 1rem; }
.tags { display: flex; flex-wrap: wrap; gap: 0.35rem; margin-top: 0.5rem; }
.tag { background: var(--accent-light); color: var(--accent); border-radius: 4px; padding: 0.1rem 0.45rem; font-size: 0.8rem; }
.tutorial-category { text-transform: uppercase; font-size: 0.75rem; color: var(--text-muted); }
.tutorial-meta { color: var(--text-muted); font-size: 0.85rem; }
.platform-card.unavailable { opacity: 0.6; }
.coming-soon { color: var(--text-muted); font-style: italic; }
.release { color: var(--text-secondary); margin-bottom: 1rem; }

/* ============ Search & Filters ============ */
.search-bar, .tutorial-controls { display: flex; gap: 0.5rem; align-items: center; margin-bottom: 1rem; flex-wrap: wrap; }
.search-input { flex: 1; min-width: 200px; padding: 0.6rem 0.8rem; border: 1px solid var(--border); border-radius: 6px; background: var(--bg); color: var(--text); }
.clear-search { background: none; border: none; font-size: 1.4rem; cursor: pointer; color: var(--text-muted); }
.filter-buttons { display: flex; gap: 0.4rem; flex-wrap: wrap; }
.filter-btn { padding: 0.3rem 0.8rem; border-radius: 999px; border: 1px solid var(--border); background: var(--bg); color: var(--text); cursor: pointer; }
.filter-btn.active { background: var(--accent); color: #fff; border-color: var(--accent); }
.results-count { color: var(--text-muted); margin-bottom: 1rem; }
.error-state { color: var(--error); padding: 1rem; border: 1px solid var(--error); border-radius: 6px; }
.empty-state { color: var(--text-muted); }

/* ============ Templates ============ */
.template-image { width: 100%; border-radius: 6px; margin-bottom: 0.75rem; }
.template-actions { display: flex; gap: 0.5rem; align-items: center; margin: 0.75rem 0; }
.version-select, #page-size { padding: 0.3rem; border-radius: 4px; border: 1px solid var(--border); background: var(--bg); color: var(--text); }
.copy-btn { padding: 0.3rem 0.8rem; border-radius: 4px; border: 1px solid var(--accent); background: var(--bg); color: var(--accent); cursor: pointer; }
.copy-btn.copied { background: var(--success); border-color: var(--success); color: #fff; }
.payload-size { color: var(--text-muted); font-size: 0.8rem; }
.payload { max-height: 160px; overflow: auto; background: var(--code-bg); border-radius: 6px; padding: 0.6rem; font-size: 0.75rem; white-space: pre-wrap; word-break: break-all; }

/* ============ Pagination ============ */
.pagination { display: flex; gap: 0.3rem; justify-content: center; margin: 2rem 0; align-items: center; }
.page-btn { min-width: 2.2rem; text-align: center; padding: 0.35rem 0.6rem; border: 1px solid var(--border); border-radius: 4px; color: var(--text); }
.page-btn.current { background: var(--accent); color: #fff; border-color: var(--accent); }
.ellipsis { color: var(--text-muted); }

/* ============ Tutorial reader ============ */
.tutorial-reader { max-width: 860px; margin: 0 auto; }
.tutorial-header { margin-bottom: 2rem; }
.tutorial-toc { background: var(--bg-secondary); border-radius: 8px; padding: 1rem 1.5rem; margin-bottom: 2rem; }
.toc-list { list-style: none; }
.tutorial-section, .tutorial-intro, .tutorial-conclusion { margin-bottom: 2rem; }
.tutorial-section pre { background: var(--code-bg); padding: 0.8rem; border-radius: 6px; overflow-x: auto; }
.tutorial-section-image img { max-width: 100%; border-radius: 6px; }
.image-caption { color: var(--text-muted); font-size: 0.85rem; text-align: center; }
.video-container { position: relative; padding-bottom: 56.25%; height: 0; margin: 1rem 0; }
.video-container iframe { position: absolute; top: 0; left: 0; width: 100%; height: 100%; border: 0; }
.tutorial-nav { display: flex; justify-content: space-between; margin-top: 3rem; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--border); padding: 2rem; margin-top: 4rem; background: var(--bg-secondary); }
.footer-columns { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 2rem; max-width: var(--content-max-width); margin: 0 auto; }
.footer-column ul { list-style: none; }
.social-links { display: flex; gap: 0.6rem; }
.copyright { text-align: center; color: var(--text-muted); margin-top: 2rem; font-size: 0.85rem; }
`

// jsContent enhances the rendered pages: client-side search and paging
// over catalog.json, version switching, copy with confirmation, tutorial
// filtering and live reload.
const jsContent = `(function() {
  "use strict";

  var SEARCH_DELAY = 300;
  var CONFIRM_DELAY = 2000;
  var MAX_BUTTONS = 5;
  var html = document.documentElement;

  // ===== Theme toggle =====
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("ffsite-theme", theme); } catch (e) {}
  }
  try {
    var stored = localStorage.getItem("ffsite-theme");
    if (stored) setTheme(stored);
    else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) setTheme("dark");
  } catch (e) {}
  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  function escapeHTML(s) {
    return String(s).replace(/[&<>"']/g, function(c) {
      return { "&": "&amp;", "<": "&lt;", ">": "&gt;", '"': "&quot;", "'": "&#39;" }[c];
    });
  }

  // ===== Clipboard =====
  function fallbackCopy(text) {
    var area = document.createElement("textarea");
    area.value = text;
    area.setAttribute("readonly", "");
    area.style.position = "fixed";
    area.style.opacity = "0";
    document.body.appendChild(area);
    area.select();
    var ok = false;
    try { ok = document.execCommand("copy"); } catch (e) { ok = false; }
    document.body.removeChild(area);
    return ok ? Promise.resolve() : Promise.reject(new Error("copy command failed"));
  }

  function copyText(text) {
    if (navigator.clipboard && navigator.clipboard.writeText) {
      return navigator.clipboard.writeText(text).catch(function() { return fallbackCopy(text); });
    }
    return fallbackCopy(text);
  }

  function confirmCopied(button) {
    if (button._revert) clearTimeout(button._revert);
    button.classList.add("copied");
    button.textContent = "Copied!";
    button._revert = setTimeout(function() {
      button.classList.remove("copied");
      button.textContent = "Copy";
      button._revert = null;
    }, CONFIRM_DELAY);
  }

  document.addEventListener("click", function(e) {
    var button = e.target.closest && e.target.closest(".copy-btn");
    if (!button) return;
    var card = button.closest(".template-card");
    var code = card && card.querySelector(".payload code");
    if (!code) return;
    copyText(code.textContent).then(function() { confirmCopied(button); }, function(err) {
      console.error("copy failed", err);
    });
  });

  document.addEventListener("change", function(e) {
    if (!e.target.classList || !e.target.classList.contains("version-select")) return;
    var option = e.target.options[e.target.selectedIndex];
    var card = e.target.closest(".template-card");
    var code = card && card.querySelector(".payload code");
    if (code && option) code.textContent = option.getAttribute("data-payload") || "";
  });

  // ===== Graph library =====
  var library = document.getElementById("graph-library");
  if (library) initLibrary(library);

  function initLibrary(root) {
    var tool = root.getAttribute("data-tool") || "";
    var params = new URLSearchParams(window.location.search);
    var state = {
      entries: null,
      query: params.get("q") || "",
      page: parseInt(params.get("page"), 10) || 1,
      size: parseInt(params.get("size"), 10) || parseInt(root.getAttribute("data-page-size"), 10) || 12,
      selected: {}
    };
    var input = document.getElementById("template-search");
    var clear = document.getElementById("clear-search");
    var sizeSelect = document.getElementById("page-size");
    var form = document.getElementById("template-search-form");
    var timer = null;

    fetch(root.getAttribute("data-catalog"))
      .then(function(r) {
        if (!r.ok) throw new Error("HTTP error " + r.status);
        return r.json();
      })
      .then(function(data) { state.entries = data; render(); })
      .catch(function(err) { console.warn("catalog unavailable, keeping server-rendered page", err); });

    if (form) form.addEventListener("submit", function(e) {
      if (state.entries) { e.preventDefault(); applyQuery(input.value); }
    });
    if (input) input.addEventListener("input", function() {
      if (!state.entries) return;
      if (timer) clearTimeout(timer);
      var value = input.value;
      timer = setTimeout(function() { timer = null; applyQuery(value); }, SEARCH_DELAY);
    });
    if (clear) clear.addEventListener("click", function() {
      if (timer) { clearTimeout(timer); timer = null; }
      input.value = "";
      if (state.entries) applyQuery("");
      else window.location.href = window.location.pathname;
    });
    if (sizeSelect) sizeSelect.addEventListener("change", function() {
      state.size = parseInt(sizeSelect.value, 10) || 12;
      state.page = 1;
      if (state.entries) render(); else form.submit();
    });
    root.addEventListener("click", function(e) {
      var a = e.target.closest && e.target.closest("a.page-btn");
      if (!a || !state.entries || !a.hasAttribute("data-page")) return;
      e.preventDefault();
      state.page = parseInt(a.getAttribute("data-page"), 10);
      render();
    });
    root.addEventListener("change", function(e) {
      if (e.target.classList.contains("version-select")) {
        var card = e.target.closest(".template-card");
        if (card) state.selected[card.getAttribute("data-id")] = e.target.value;
      }
    });

    function applyQuery(q) {
      state.query = q;
      state.page = 1;
      render();
    }

    function matches(entry, q) {
      if (entry.title.toLowerCase().indexOf(q) !== -1) return true;
      if (entry.description.toLowerCase().indexOf(q) !== -1) return true;
      var tags = entry.tags || [];
      for (var i = 0; i < tags.length; i++) {
        if (tags[i].toLowerCase().indexOf(q) !== -1) return true;
      }
      var payloads = entry.versions.map(function(v) { return v.graphData; });
      return JSON.stringify(payloads).toLowerCase().indexOf(q) !== -1;
    }

    function render() {
      var q = state.query.trim().toLowerCase();
      var filtered = q ? state.entries.filter(function(e) { return matches(e, q); }) : state.entries;
      var total = Math.ceil(filtered.length / state.size);
      state.page = Math.min(Math.max(state.page, 1), Math.max(total, 1));
      var start = (state.page - 1) * state.size;
      var items = filtered.slice(start, start + state.size);

      var count = document.getElementById("results-count");
      if (count) {
        count.textContent = filtered.length === 0 ? "No templates found" :
          "Showing " + (start + 1) + "-" + (start + items.length) + " of " + filtered.length +
          (filtered.length === 1 ? " template" : " templates");
      }
      var grid = document.getElementById("template-grid");
      if (grid) grid.innerHTML = items.map(card).join("");
      var nav = document.getElementById("pagination");
      if (nav) nav.innerHTML = pager(state.page, total);

      var url = new URL(window.location.href);
      url.search = "";
      if (state.query) url.searchParams.set("q", state.query);
      if (state.page > 1) url.searchParams.set("page", state.page);
      url.searchParams.set("size", state.size);
      window.history.replaceState(null, "", url);
    }

    function card(entry) {
      var sel = state.selected[entry.id];
      var current = entry.versions[0];
      entry.versions.forEach(function(v) { if (v.version === sel) current = v; });
      var options = entry.versions.map(function(v) {
        return '<option value="' + escapeHTML(v.version) + '" data-payload="' + escapeHTML(v.graphData) + '"' +
          (v === current ? " selected" : "") + ">" + escapeHTML(tool ? tool + " " + v.version : v.version) + "</option>";
      }).join("");
      var tags = (entry.tags || []).map(function(t) { return '<span class="tag">' + escapeHTML(t) + "</span>"; }).join("");
      return '<article class="template-card" data-id="' + escapeHTML(entry.id) + '">' +
        (entry.image ? '<img class="template-image" src="' + escapeHTML(entry.image) + '" alt="' + escapeHTML(entry.title) + '" loading="lazy">' : "") +
        "<h3>" + escapeHTML(entry.title) + "</h3><p>" + escapeHTML(entry.description) + "</p>" +
        '<div class="tags">' + tags + "</div>" +
        '<div class="template-actions"><select class="version-select" aria-label="Version">' + options + "</select>" +
        '<button type="button" class="copy-btn">Copy</button></div>' +
        '<pre class="payload"><code>' + escapeHTML(current ? current.graphData : "") + "</code></pre></article>";
    }

    function pageLink(label, page, enabled, current) {
      if (current) return '<span class="page-btn current">' + label + "</span>";
      if (!enabled) return '<span class="page-btn disabled">' + label + "</span>";
      return '<a class="page-btn" href="#" data-page="' + page + '">' + label + "</a>";
    }

    function pager(current, total) {
      var out = [];
      out.push(pageLink("&laquo;", 1, current > 1));
      out.push(pageLink("&lsaquo;", current - 1, current > 1));
      if (total > 0) {
        var start = Math.max(1, current - 2);
        var end = Math.min(total, current + 2);
        if (current <= 3) end = Math.min(MAX_BUTTONS, total);
        else if (current >= total - 2) start = Math.max(1, total - MAX_BUTTONS + 1);
        if (start > 1) out.push('<span class="ellipsis">&hellip;</span>');
        for (var p = start; p <= end; p++) out.push(pageLink(String(p), p, true, p === current));
        if (end < total) out.push('<span class="ellipsis">&hellip;</span>');
      }
      out.push(pageLink("&rsaquo;", current + 1, current < total));
      out.push(pageLink("&raquo;", total, current < total));
      return out.join("");
    }
  }

  // ===== Tutorials =====
  var tutorialGrid = document.getElementById("tutorial-grid");
  if (tutorialGrid) {
    var activeCategory = "All Tutorials";
    var tutorialSearch = document.getElementById("tutorial-search");
    var active = document.querySelector(".filter-btn.active");
    if (active) activeCategory = active.getAttribute("data-category");

    function filterTutorials() {
      var q = tutorialSearch ? tutorialSearch.value.trim().toLowerCase() : "";
      tutorialGrid.querySelectorAll(".tutorial-card").forEach(function(el) {
        var cat = el.getAttribute("data-category");
        var text = (el.getAttribute("data-search") || "").toLowerCase();
        var show = (activeCategory === "All Tutorials" || cat === activeCategory) && (!q || text.indexOf(q) !== -1);
        el.style.display = show ? "" : "none";
      });
    }
    document.querySelectorAll(".filter-btn").forEach(function(btn) {
      btn.addEventListener("click", function(e) {
        e.preventDefault();
        document.querySelectorAll(".filter-btn").forEach(function(b) { b.classList.remove("active"); });
        btn.classList.add("active");
        activeCategory = btn.getAttribute("data-category");
        filterTutorials();
      });
    });
    if (tutorialSearch) tutorialSearch.addEventListener("input", filterTutorials);
  }

  // ===== Live reload =====
  if (document.body.getAttribute("data-live-reload") === "true" && window.WebSocket) {
    var proto = window.location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + window.location.host + "/ws/reload");
    ws.onmessage = function() { window.location.reload(); };
  }
})();
`
