package page

// pageTemplate is the html/template for the portfolio page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en"{{if .RootClass}} class="{{.RootClass}}"{{end}} data-mode="{{.Mode}}" data-theme="{{.Theme}}" data-theme-source="{{.ThemeSource}}"{{if .LiveSync}} data-live="true"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="color-scheme" content="light dark">
  <title>{{.Profile.Name}} | {{.Profile.Title}}</title>
  <link rel="stylesheet" href="{{.StaticPath}}style.css">
  {{- if .Static}}
  <script>{{.Bootstrap}}</script>
  {{- else}}
  <script src="{{.StaticPath}}bootstrap.js"></script>
  {{- end}}
</head>
<body{{if .ScrollTarget}} data-scroll-target="{{.ScrollTarget}}"{{end}}>
  <div class="layout">
    <aside class="sidebar">
      <div>
        <div class="eyebrow">Profile</div>
        <div class="profile">
          <div class="avatar-wrap">
            <img class="avatar" src="{{asset .Profile.Photo}}" alt="Profile" data-fallback="{{.ProfileFallback}}">
          </div>
          <h1 class="profile-name">{{.Profile.Name}}</h1>
          <p class="profile-title">{{.Profile.Title}}</p>
        </div>

        <div class="contact">
          {{- if .Profile.Email}}
          <a class="contact-row" href="mailto:{{.Profile.Email}}">
            <span class="contact-icon">{{icon "mail"}}</span>
            <span class="truncate">{{.Profile.Email}}</span>
          </a>
          {{- end}}
          {{- if .Profile.Phone}}
          <div class="contact-row">
            <span class="contact-icon">{{icon "phone"}}</span>
            <span>{{.Profile.Phone}}</span>
          </div>
          {{- end}}
          {{- range .Profile.Social}}
          <a class="contact-row" href="{{.URL}}" target="_blank" rel="noopener noreferrer">
            <span class="contact-icon">{{icon .Icon}}</span>
            <span>{{.Label}}</span>
          </a>
          {{- end}}
        </div>
      </div>

      <div>
        <nav>
          <h3 class="eyebrow">Navigate</h3>
          <div class="nav-links">
            {{- range .Sections}}
            <a class="nav-link" href="#{{.ID}}" data-nav="{{.ID}}">
              <span>{{.Label}}</span>
              <span class="nav-arrow">&rarr;</span>
            </a>
            {{- end}}
          </div>
        </nav>
        <button class="theme-toggle" id="theme-toggle" type="button" aria-label="Toggle theme">
          <span class="sun-icon">{{icon "sun"}}</span>
          <span class="moon-icon">{{icon "moon"}}</span>
        </button>
        <div class="copyright">&copy; {{.Year}} All rights reserved.</div>
      </div>
    </aside>

    <main class="content">
      <div class="content-inner">
        {{- range .Sections}}
        <section id="{{.ID}}" class="section">
          <div class="section-heading">
            <h2>{{.Label}}</h2>
            <div class="rule"></div>
          </div>
          {{- if eq .Kind "about"}}
          <div class="about">{{$.About}}</div>
          {{- else if eq .Kind "projects"}}
          <div class="cards">
            {{- range $.Projects}}
            <div class="card">
              <div class="card-head">
                <h3>{{.Title}}</h3>
                {{- if .Badge}}
                <span class="badge badge-{{.BadgeColor}}">{{.Badge}}</span>
                {{- end}}
              </div>
              <p class="card-text">{{.Description}}</p>
              {{- if .LiveURL}}
              <div class="card-action">
                <a class="button" href="{{.LiveURL}}" target="_blank" rel="noopener noreferrer">{{icon "external"}} View Live Project</a>
              </div>
              {{- end}}
              {{- if .Tags}}
              <div class="tags">
                {{- range .Tags}}
                <span class="tag">{{.}}</span>
                {{- end}}
              </div>
              {{- end}}
            </div>
            {{- end}}
          </div>
          {{- else if eq .Kind "certificates"}}
          <div class="cards">
            {{- range $.Certificates}}
            <div class="card card-flush cert">
              <div class="cert-media">
                <img src="{{asset .Image}}" alt="{{.Title}}" data-fallback="{{.Fallback}}">
                <div class="cert-tint"></div>
              </div>
              <div class="cert-body">
                <h3 class="accent-{{.Color}}">{{.Title}}</h3>
                <p class="cert-issuer">Issued By: {{.Issuer}}</p>
                {{- if .CredentialURL}}
                <a class="cert-link" href="{{.CredentialURL}}" target="_blank" rel="noopener noreferrer">VIEW CREDENTIAL {{icon "external"}}</a>
                {{- else}}
                <button class="cert-link" type="button">VIEW CREDENTIAL {{icon "external"}}</button>
                {{- end}}
              </div>
            </div>
            {{- end}}
          </div>
          {{- end}}
        </section>
        {{- end}}
      </div>
    </main>
  </div>
  <script src="{{.StaticPath}}script.js"></script>
</body>
</html>`

// Bootstrap applies the theme before first paint. A stored choice the server
// already resolved is left alone. Otherwise static builds check localStorage,
// then both modes ask prefers-color-scheme, falling back to what the server
// rendered.
const Bootstrap = `(function() {
  var root = document.documentElement;
  if (root.getAttribute("data-theme-source") === "persisted") return;
  var stored = null;
  if (root.getAttribute("data-mode") === "static") {
    try { stored = localStorage.getItem("theme"); } catch (e) {}
  }
  var dark = root.classList.contains("dark");
  var source = root.getAttribute("data-theme-source");
  if (stored === "dark" || stored === "light") {
    dark = stored === "dark";
    source = "persisted";
  } else {
    try {
      var mq = window.matchMedia("(prefers-color-scheme: dark)");
      dark = mq.matches;
      source = dark ? "environment" : "default";
    } catch (e) {}
  }
  root.classList.toggle("dark", dark);
  root.setAttribute("data-theme", dark ? "dark" : "light");
  root.setAttribute("data-theme-source", source);
})();
`

// icons are inline SVGs keyed by name.
var icons = map[string]string{
	"mail":     `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="2" y="4" width="20" height="16" rx="2"/><path d="m22 7-10 6L2 7"/></svg>`,
	"phone":    `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6A19.79 19.79 0 0 1 2.12 4.18 2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/></svg>`,
	"facebook": `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"/></svg>`,
	"github":   `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M9 19c-5 1.5-5-2.5-7-3m14 6v-3.87a3.37 3.37 0 0 0-.94-2.61c3.14-.35 6.44-1.54 6.44-7A5.44 5.44 0 0 0 20 4.77 5.07 5.07 0 0 0 19.91 1S18.73.65 16 2.48a13.38 13.38 0 0 0-7 0C6.27.65 5.09 1 5.09 1A5.07 5.07 0 0 0 5 4.77a5.44 5.44 0 0 0-1.5 3.78c0 5.42 3.3 6.61 6.44 7A3.37 3.37 0 0 0 9 18.13V22"/></svg>`,
	"linkedin": `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z"/><rect x="2" y="9" width="4" height="12"/><circle cx="4" cy="4" r="2"/></svg>`,
	"external": `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/><path d="M15 3h6v6"/><path d="M10 14 21 3"/></svg>`,
	"sun":      `<svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/></svg>`,
	"moon":     `<svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/></svg>`,
	"link":     `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"/><path d="M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"/></svg>`,
}

// CSS is the stylesheet for the page. The dark palette applies when the
// document root carries the "dark" class.
const CSS = `:root {
  --bg: #f1f5f9;
  --bg-sidebar: rgba(248, 250, 252, 0.9);
  --bg-card: #ffffff;
  --bg-chip: #f1f5f9;
  --text: #1e293b;
  --text-secondary: #475569;
  --text-muted: #94a3b8;
  --border: #e2e8f0;
  --border-card: #f1f5f9;
  --accent: #6366f1;
  --accent-strong: #4f46e5;
  --shadow-lg: 0 20px 25px -5px rgba(0,0,0,0.1), 0 8px 10px -6px rgba(0,0,0,0.1);
  --indigo: #4f46e5; --indigo-bg: #eef2ff;
  --emerald: #059669; --emerald-bg: #ecfdf5;
  --rose: #f43f5e; --blue: #3b82f6; --amber: #f59e0b; --slate: #64748b;
}

html.dark {
  --bg: #020617;
  --bg-sidebar: rgba(15, 23, 42, 0.5);
  --bg-card: #1e293b;
  --bg-chip: rgba(51, 65, 85, 0.5);
  --text: #ffffff;
  --text-secondary: #cbd5e1;
  --text-muted: #94a3b8;
  --border: rgba(30, 41, 59, 0.5);
  --border-card: #334155;
  --accent: #818cf8;
  --accent-strong: #6366f1;
  --shadow-lg: 0 20px 25px -5px rgba(99,102,241,0.1);
  --indigo: #a5b4fc; --indigo-bg: rgba(49, 46, 129, 0.3);
  --emerald: #6ee7b7; --emerald-bg: rgba(6, 78, 59, 0.3);
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  min-height: 100vh;
  background: var(--bg);
  color: var(--text);
  font-family: ui-sans-serif, system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  transition: background-color 0.5s ease-in-out, color 0.5s ease-in-out;
}
::selection { background: #6366f1; color: #fff; }
a { color: inherit; text-decoration: none; }

.layout { max-width: 80rem; margin: 0 auto; min-height: 100vh; }
@media (min-width: 768px) { .layout { display: flex; } }

.sidebar {
  padding: 1.5rem;
  background: var(--bg-sidebar);
  backdrop-filter: blur(24px);
  border-right: 1px solid var(--border);
  display: flex; flex-direction: column; justify-content: space-between;
  z-index: 20;
}
@media (min-width: 768px) {
  .sidebar { width: 18rem; height: 100vh; position: sticky; top: 0; }
}

.eyebrow {
  font-size: 10px; font-weight: 700; color: var(--text-muted);
  text-transform: uppercase; letter-spacing: 0.1em; margin: 0 0 0.75rem;
}
.profile { text-align: center; }
.avatar-wrap { display: inline-block; position: relative; }
.avatar {
  width: 10.5rem; height: 10.5rem; border-radius: 9999px; object-fit: cover;
  border: 4px solid var(--bg-card); box-shadow: 0 4px 6px rgba(0,0,0,0.1);
}
.profile-name { font-size: 1.5rem; font-weight: 900; letter-spacing: -0.025em; margin: 0.5rem 0 0; }
.profile-title {
  font-size: 0.75rem; font-weight: 600; color: var(--accent);
  text-transform: uppercase; letter-spacing: 0.05em; margin: 0.25rem 0 1rem;
}

.contact {
  margin-bottom: 1.5rem; padding: 0.75rem; background: var(--bg-card);
  border: 1px solid var(--border-card); border-radius: 0.75rem; font-size: 0.75rem;
}
.contact-row { display: flex; align-items: center; gap: 0.75rem; color: var(--text-secondary); padding: 0.25rem 0; }
a.contact-row:hover { color: var(--accent); }
.contact-icon { display: inline-flex; padding: 0.375rem; background: var(--bg-chip); border-radius: 0.375rem; }
.truncate { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }

.nav-links { display: flex; flex-direction: column; gap: 0.25rem; }
.nav-link {
  display: flex; justify-content: space-between; align-items: center;
  padding: 0.625rem; border-radius: 0.5rem; font-size: 0.875rem; font-weight: 500;
  color: var(--text-secondary); transition: all 0.3s;
}
.nav-link:hover { background: var(--bg-card); color: var(--accent); transform: translateX(0.5rem); box-shadow: 0 4px 6px rgba(0,0,0,0.08); }
.nav-arrow { opacity: 0; color: var(--accent); transform: translateX(-10px); transition: all 0.3s; }
.nav-link:hover .nav-arrow { opacity: 1; transform: translateX(0); }

.theme-toggle {
  margin-top: 1rem; width: 100%; padding: 0.5rem; cursor: pointer;
  border: 1px solid var(--border-card); border-radius: 0.5rem;
  background: var(--bg-card); color: var(--text-secondary);
}
html.dark .sun-icon { display: inline; }
html.dark .moon-icon { display: none; }
html:not(.dark) .sun-icon { display: none; }
html:not(.dark) .moon-icon { display: inline; }

.copyright { margin-top: 1.5rem; font-size: 10px; color: var(--text-muted); text-align: center; }

.content { flex: 1; padding: 1.5rem; }
@media (min-width: 640px) { .content { padding: 3rem; } }
@media (min-width: 1024px) { .content { padding: 4rem; } }
.content-inner { max-width: 48rem; margin: 0 auto; display: flex; flex-direction: column; gap: 5rem; }

.section { scroll-margin-top: 6rem; }
.section-heading { display: flex; align-items: center; gap: 1rem; margin-bottom: 2rem; }
.section-heading h2 { font-size: 1.875rem; font-weight: 900; margin: 0; }
.rule { height: 1px; flex: 1; background: var(--border); }

.about { font-size: 1.125rem; line-height: 2; color: var(--text-secondary); }
.about strong {
  color: var(--indigo); text-decoration: underline; text-decoration-thickness: 2px;
  text-underline-offset: 4px;
}

.cards { display: grid; gap: 2rem; }
.card {
  padding: 1.5rem; border-radius: 1rem; border: 1px solid var(--border-card);
  background: var(--bg-card); transition: all 0.3s ease-out;
}
.card:hover { transform: translateY(-0.25rem); box-shadow: var(--shadow-lg); }
.card-flush { padding: 0; overflow: hidden; }
.card-head { display: flex; flex-wrap: wrap; justify-content: space-between; align-items: flex-start; gap: 0.5rem; margin-bottom: 1rem; }
.card-head h3 { font-size: 1.25rem; font-weight: 700; margin: 0; }
.card-text { color: var(--text-secondary); line-height: 1.625; margin: 0 0 1.5rem; }
.card-action { margin-bottom: 1.5rem; }

.badge {
  padding: 0.25rem 0.75rem; font-size: 0.75rem; font-weight: 700; letter-spacing: 0.025em;
  border-radius: 9999px; color: var(--indigo); background: var(--indigo-bg);
}
.badge-emerald { color: var(--emerald); background: var(--emerald-bg); }

.button {
  display: inline-flex; align-items: center; gap: 0.5rem; padding: 0.5rem 1rem;
  font-size: 0.875rem; font-weight: 700; color: #fff; background: #4f46e5; border-radius: 0.5rem;
}
.button:hover { background: #4338ca; }

.tags { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.tag {
  font-size: 0.75rem; font-weight: 600; color: var(--slate); background: var(--bg-chip);
  padding: 0.25rem 0.625rem; border-radius: 0.375rem;
}

.cert { display: flex; flex-direction: column; }
@media (min-width: 768px) { .cert { flex-direction: row; } }
.cert-media { position: relative; overflow: hidden; height: 12rem; background: var(--bg-chip); }
@media (min-width: 768px) { .cert-media { width: 40%; height: auto; } }
.cert-media img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.7s; }
.cert:hover .cert-media img { transform: scale(1.1); }
.cert-tint { position: absolute; inset: 0; background: rgba(49, 46, 129, 0.1); transition: background 0.3s; }
.cert:hover .cert-tint { background: transparent; }
.cert-body { flex: 1; padding: 1.5rem; display: flex; flex-direction: column; justify-content: center; }
@media (min-width: 768px) { .cert-body { padding: 2rem; } }
.cert-body h3 { font-size: 1.25rem; font-weight: 700; margin: 0 0 0.5rem; }
.cert-issuer {
  font-size: 0.875rem; font-weight: 700; color: var(--text-muted);
  text-transform: uppercase; letter-spacing: 0.1em; margin: 0 0 1rem;
}
.cert-link {
  align-self: flex-start; display: inline-flex; align-items: center; gap: 0.25rem;
  font-size: 0.75rem; font-weight: 700; color: var(--slate);
  background: none; border: none; padding: 0; cursor: pointer;
}
.cert-link:hover { color: var(--text); }

.accent-indigo { color: var(--indigo); }
.accent-emerald { color: var(--emerald); }
.accent-rose { color: var(--rose); }
.accent-blue { color: var(--blue); }
.accent-amber { color: var(--amber); }
.accent-slate { color: var(--slate); }
html.dark .cert-body h3 { color: #fff; }
`

// Script handles theme toggling, section navigation, image fallbacks and
// live theme updates.
const Script = `(function() {
  "use strict";

  var root = document.documentElement;
  var isStatic = root.getAttribute("data-mode") === "static";

  // ===== Theme =====
  function applyTheme(theme, source) {
    root.classList.toggle("dark", theme === "dark");
    root.setAttribute("data-theme", theme);
    root.setAttribute("data-theme-source", source);
  }

  function followEnvironment() {
    var dark = false;
    try { dark = window.matchMedia("(prefers-color-scheme: dark)").matches; } catch (e) {}
    applyTheme(dark ? "dark" : "light", dark ? "environment" : "default");
  }

  function setPreference(theme) {
    applyTheme(theme, "persisted");
    if (isStatic) {
      try { localStorage.setItem("theme", theme); } catch (e) {}
      return;
    }
    fetch("/api/theme", {
      method: "PUT",
      headers: { "Content-Type": "application/json" },
      credentials: "same-origin",
      body: JSON.stringify({ theme: theme })
    }).catch(function() {});
  }

  var toggle = document.getElementById("theme-toggle");
  if (toggle) {
    toggle.addEventListener("click", function() {
      setPreference(root.classList.contains("dark") ? "light" : "dark");
    });
  }

  // ===== Section navigation =====
  function scrollToSection(id) {
    var el = document.getElementById(id);
    if (el) {
      el.scrollIntoView({ behavior: "smooth", block: "start" });
    }
  }

  document.querySelectorAll("a[data-nav]").forEach(function(link) {
    link.addEventListener("click", function(e) {
      e.preventDefault();
      scrollToSection(link.getAttribute("data-nav"));
    });
  });

  var initial = document.body.getAttribute("data-scroll-target");
  if (initial) {
    window.requestAnimationFrame(function() { scrollToSection(initial); });
  }

  // ===== Image fallbacks =====
  document.querySelectorAll("img[data-fallback]").forEach(function(img) {
    function fallback() {
      var src = img.getAttribute("data-fallback");
      img.removeAttribute("data-fallback");
      if (src) img.src = src;
    }
    if (img.complete && img.naturalWidth === 0) {
      fallback();
    } else {
      img.addEventListener("error", fallback, { once: true });
    }
  });

  // ===== Live theme sync =====
  if (root.getAttribute("data-live") === "true" && "WebSocket" in window) {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var connect = function(delay) {
      var ws = new WebSocket(proto + location.host + "/ws/theme");
      ws.onmessage = function(ev) {
        try {
          var msg = JSON.parse(ev.data);
          if (msg.type === "theme" && msg.source === "persisted" &&
              (msg.theme === "dark" || msg.theme === "light")) {
            applyTheme(msg.theme, "persisted");
          } else if (msg.type === "clear") {
            followEnvironment();
          }
        } catch (e) {}
      };
      ws.onclose = function() {
        setTimeout(function() { connect(Math.min(delay * 2, 30000)); }, delay);
      };
    };
    connect(1000);
  }
})();
`
