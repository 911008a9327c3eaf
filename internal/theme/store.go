package theme

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
)

// MemoryStore is a map-backed Storage.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// CookieMaxAge is how long the theme cookie lives.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStore persists values as cookies on a single request/response pair.
// The cookie is not HttpOnly so the client-side bootstrap can read it.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	maxAge time.Duration
	secure bool

	// written holds values set during this request, which the request's own
	// cookies do not reflect yet. An empty value marks a deleted cookie.
	written map[string]string
}

// NewCookieStore binds a store to one request. maxAge <= 0 uses CookieMaxAge.
func NewCookieStore(w http.ResponseWriter, r *http.Request, maxAge time.Duration) *CookieStore {
	if maxAge <= 0 {
		maxAge = CookieMaxAge
	}
	return &CookieStore{
		r:       r,
		w:       w,
		maxAge:  maxAge,
		secure:  r != nil && r.TLS != nil,
		written: make(map[string]string),
	}
}

// ForceSecure marks written cookies Secure even on plain-HTTP requests, for
// deployments behind a TLS-terminating proxy.
func (s *CookieStore) ForceSecure() *CookieStore {
	s.secure = true
	return s
}

func (s *CookieStore) Get(key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		return v, v != "", nil
	}
	if s.r == nil {
		return "", false, nil
	}
	c, err := s.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if c.Value == "" {
		return "", false, nil
	}
	return c.Value, true, nil
}

func (s *CookieStore) Set(key, value string) error {
	if s.w == nil {
		return errors.New("cookie store has no response writer")
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
		HttpOnly: false,
	})
	s.written[key] = value
	return nil
}

// Delete expires the cookie on the client.
func (s *CookieStore) Delete(key string) error {
	if s.w == nil {
		return errors.New("cookie store has no response writer")
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	})
	s.written[key] = ""
	return nil
}

// ClientHintHeader is the user-agent client hint carrying the color scheme.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// ErrNoHint is returned when the request carries no usable color-scheme hint.
var ErrNoHint = errors.New("no color scheme hint")

// ClientHint reads the color-scheme client hint from a request.
type ClientHint struct {
	r *http.Request
}

// NewClientHint binds the hint reader to a request.
func NewClientHint(r *http.Request) ClientHint { return ClientHint{r: r} }

func (h ClientHint) PrefersDark() (bool, error) {
	if h.r == nil {
		return false, ErrNoHint
	}
	v := strings.Trim(strings.TrimSpace(h.r.Header.Get(ClientHintHeader)), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return true, nil
	case "light":
		return false, nil
	default:
		return false, ErrNoHint
	}
}
