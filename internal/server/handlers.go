package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/angeloflores/folio/internal/nav"
	"github.com/angeloflores/folio/internal/page"
	"github.com/angeloflores/folio/internal/theme"
)

// maxThemeBody bounds PUT /api/theme request bodies.
const maxThemeBody = 1 << 10

// themeState is the JSON shape of the theme API.
type themeState struct {
	Theme  theme.Preference `json:"theme"`
	Source theme.Source     `json:"source"`
	Ready  bool             `json:"ready"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// themeController builds and initializes the controller for one request,
// with storage and environment bound to that request.
func (s *Server) themeController(w http.ResponseWriter, r *http.Request) *theme.Controller {
	ctrl := theme.NewController(s.storageFor(w, r), theme.NewClientHint(r), theme.WithLogger(s.logger))
	ctrl.Initialize()
	themeResolutions.WithLabelValues(string(ctrl.Effective()), string(ctrl.Source())).Inc()
	return ctrl
}

func (s *Server) storageFor(w http.ResponseWriter, r *http.Request) theme.Storage {
	if s.prefs != nil {
		visitor := VisitorID(r.Context())
		if err := s.prefs.Touch(r.Context(), visitor); err != nil {
			s.logger.Debug("recording visitor", zap.Error(err))
		}
		return s.prefs.Storage(r.Context(), visitor)
	}
	store := theme.NewCookieStore(w, r, s.cfg.CookieMaxAge)
	if s.cfg.SecureCookies {
		store.ForceSecure()
	}
	return store
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, nav.SectionID(r.URL.Query().Get("section")))
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, nav.SectionID(chi.URLParam(r, "id")))
}

// sectionClick is the navigation event of a section request. Its default
// action is a redirect to the bare fragment URL, which jumps without
// animation.
type sectionClick struct {
	prevented bool
}

func (c *sectionClick) PreventDefault() { c.prevented = true }

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, target nav.SectionID) {
	ctrl := s.themeController(w, r)

	vp := &page.Viewport{}
	if target != "" {
		click := &sectionClick{}
		nav.New(page.NewDocument(s.content), vp).HandleClick(click, target)
		if !click.prevented {
			http.Redirect(w, r, "/#"+string(target), http.StatusFound)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	err := s.renderer.Render(w, page.View{
		Theme:      ctrl,
		Content:    s.content,
		Viewport:   vp,
		Mode:       page.ModeServer,
		StaticPath: "/static/",
		AssetPath:  "/assets/",
		LiveSync:   s.cfg.LiveSync,
	})
	if err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	ctrl := s.themeController(w, r)
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, stateOf(ctrl))
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxThemeBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p, err := theme.ParsePreference(req.Theme)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctrl := s.themeController(w, r)
	if err := ctrl.SetPreference(p); err != nil {
		if errors.Is(err, theme.ErrInvalidPreference) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("saving theme preference", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save theme preference")
		return
	}
	themeChanges.WithLabelValues(string(p)).Inc()
	s.recordStoredPreferences(r.Context())

	visitor := VisitorID(r.Context())
	n := s.hub.Broadcast(visitor, ThemeMessage{Type: "theme", Theme: string(p), Source: string(ctrl.Source())})
	s.logger.Debug("theme changed",
		zap.String("theme", string(p)),
		zap.String("visitor", visitor),
		zap.Int("subscribers", n),
	)

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, stateOf(ctrl))
}

// handleDeleteTheme forgets the visitor's stored preference, so later page
// loads follow the environment again.
func (s *Server) handleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	ctrl := s.themeController(w, r)
	if err := ctrl.ClearPreference(); err != nil {
		s.logger.Error("clearing theme preference", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to clear theme preference")
		return
	}
	s.recordStoredPreferences(r.Context())

	visitor := VisitorID(r.Context())
	s.hub.Broadcast(visitor, ThemeMessage{Type: "clear"})

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, stateOf(ctrl))
}

// recordStoredPreferences refreshes the stored preference gauge from SQLite.
// Cookie-backed preferences are not visible to the server.
func (s *Server) recordStoredPreferences(ctx context.Context) {
	if s.prefs == nil {
		return
	}
	for _, p := range []theme.Preference{theme.PreferenceLight, theme.PreferenceDark} {
		n, err := s.prefs.Count(ctx, theme.StorageKey, string(p))
		if err != nil {
			s.logger.Warn("counting stored preferences", zap.Error(err))
			return
		}
		storedPreferences.WithLabelValues(string(p)).Set(float64(n))
	}
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.content)
}

func (s *Server) handleThemeSocket(w http.ResponseWriter, r *http.Request) {
	visitor := VisitorID(r.Context())
	ctrl := s.themeController(w, r)

	// Upgrade writes its own response, so cookies set by middleware must be
	// passed along explicitly.
	var header http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		header = http.Header{"Set-Cookie": cookies}
	}
	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		s.logger.Debug("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	s.hub.Add(visitor, conn)
	defer s.hub.Remove(visitor, conn)

	// A stored choice is sent first so a reconnecting page catches up. Other
	// resolutions stay with the page, which resolved its own environment.
	if ctrl.Source() == theme.SourcePersisted {
		if err := s.hub.Send(visitor, conn, ThemeMessage{
			Type:   "theme",
			Theme:  string(ctrl.Effective()),
			Source: string(ctrl.Source()),
		}); err != nil {
			return
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}
	}
}

func stateOf(ctrl *theme.Controller) themeState {
	return themeState{
		Theme:  ctrl.Effective(),
		Source: ctrl.Source(),
		Ready:  ctrl.IsReady(),
	}
}

func serveConst(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		io.WriteString(w, body)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
