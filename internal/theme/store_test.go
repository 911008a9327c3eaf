package theme

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if _, ok, err := s.Get(StorageKey); ok || err != nil {
		t.Fatalf("empty store Get = (_, %v, %v)", ok, err)
	}
	if err := s.Set(StorageKey, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(StorageKey)
	if err != nil || !ok || v != "dark" {
		t.Errorf("Get = (%q, %v, %v), want (dark, true, nil)", v, ok, err)
	}
}

func TestCookieStoreRoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/theme", nil)
	w := httptest.NewRecorder()

	s := NewCookieStore(w, req, 0)
	if _, ok, _ := s.Get(StorageKey); ok {
		t.Fatal("expected no cookie on a fresh request")
	}
	if err := s.Set(StorageKey, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := s.Get(StorageKey); !ok || v != "dark" {
		t.Errorf("Get after Set = (%q, %v), want (dark, true)", v, ok)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != StorageKey || c.Value != "dark" {
		t.Errorf("cookie = %s=%s, want theme=dark", c.Name, c.Value)
	}
	if c.HttpOnly {
		t.Error("theme cookie must be readable by the client bootstrap")
	}
	if c.MaxAge != int(CookieMaxAge.Seconds()) {
		t.Errorf("MaxAge = %d, want %d", c.MaxAge, int(CookieMaxAge.Seconds()))
	}

	// The next request carries the cookie back.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(c)
	ctrl := NewController(NewCookieStore(httptest.NewRecorder(), next, 0), StaticEnvironment(false))
	ctrl.Initialize()
	if !ctrl.Root().Dark() {
		t.Error("cookie preference was not applied on the next request")
	}
}

func TestCookieStoreDelete(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/theme", nil)
	req.AddCookie(&http.Cookie{Name: StorageKey, Value: "dark"})
	w := httptest.NewRecorder()

	s := NewCookieStore(w, req, 0)
	if err := s.Delete(StorageKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(StorageKey); ok {
		t.Error("deleted value should not be visible for the rest of the request")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != StorageKey || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expired theme cookie, got %+v", cookies)
	}
}

func TestCookieStoreNoWriter(t *testing.T) {
	s := NewCookieStore(nil, nil, 0)
	if _, ok, err := s.Get(StorageKey); ok || err != nil {
		t.Errorf("Get with nil request = (_, %v, %v)", ok, err)
	}
	if err := s.Set(StorageKey, "dark"); err == nil {
		t.Error("expected error without a response writer")
	}
}

func TestClientHint(t *testing.T) {
	tests := []struct {
		header   string
		wantDark bool
		wantErr  error
	}{
		{"dark", true, nil},
		{`"dark"`, true, nil},
		{"light", false, nil},
		{"", false, ErrNoHint},
		{"no-preference", false, ErrNoHint},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set(ClientHintHeader, tt.header)
		}
		dark, err := NewClientHint(req).PrefersDark()
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("hint %q: err = %v, want %v", tt.header, err, tt.wantErr)
		}
		if dark != tt.wantDark {
			t.Errorf("hint %q: dark = %v, want %v", tt.header, dark, tt.wantDark)
		}
	}
}
