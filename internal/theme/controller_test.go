package theme

import (
	"errors"
	"testing"
)

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (failingStore) Set(string, string) error { return errors.New("storage unavailable") }

// panickingStore panics on read, like a collaborator that throws.
type panickingStore struct{}

func (panickingStore) Get(string) (string, bool, error) { panic("no storage in this runtime") }
func (panickingStore) Set(string, string) error         { panic("no storage in this runtime") }

func storeWith(value string) *MemoryStore {
	s := NewMemoryStore()
	if value != "" {
		s.Set(StorageKey, value)
	}
	return s
}

func envErr() Environment {
	return EnvironmentFunc(func() (bool, error) { return false, errors.New("matchMedia unavailable") })
}

func TestInitializeResolution(t *testing.T) {
	tests := []struct {
		name       string
		persisted  string
		env        Environment
		wantDark   bool
		wantSource Source
	}{
		{"persisted dark, env light", "dark", StaticEnvironment(false), true, SourcePersisted},
		{"persisted dark, env dark", "dark", StaticEnvironment(true), true, SourcePersisted},
		{"persisted dark, env error", "dark", envErr(), true, SourcePersisted},
		{"persisted light beats env dark", "light", StaticEnvironment(true), false, SourcePersisted},
		{"absent, env dark", "", StaticEnvironment(true), true, SourceEnvironment},
		{"absent, env light", "", StaticEnvironment(false), false, SourceDefault},
		{"absent, env error", "", envErr(), false, SourceDefault},
		{"absent, no env", "", nil, false, SourceDefault},
		{"garbage stored, env dark", "blue", StaticEnvironment(true), true, SourceEnvironment},
		{"garbage stored, env light", "blue", StaticEnvironment(false), false, SourceDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(storeWith(tt.persisted), tt.env)
			c.Initialize()

			if got := c.Root().Dark(); got != tt.wantDark {
				t.Errorf("Dark() = %v, want %v", got, tt.wantDark)
			}
			if got := c.Source(); got != tt.wantSource {
				t.Errorf("Source() = %q, want %q", got, tt.wantSource)
			}
		})
	}
}

func TestReadyFlag(t *testing.T) {
	c := NewController(NewMemoryStore(), StaticEnvironment(false))
	if c.IsReady() {
		t.Fatal("controller should not be ready before Initialize")
	}

	c.Initialize()
	if !c.IsReady() {
		t.Fatal("controller should be ready after Initialize")
	}

	c.Initialize()
	if err := c.SetPreference(PreferenceDark); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	if !c.IsReady() {
		t.Error("ready flag must never revert")
	}
}

func TestInitializeIdempotent(t *testing.T) {
	c := NewController(storeWith("dark"), nil)
	c.Initialize()
	first := c.Root().Class()
	c.Initialize()
	if got := c.Root().Class(); got != first {
		t.Errorf("second Initialize changed marker: %q -> %q", first, got)
	}
}

func TestSetPreferenceRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	c := NewController(store, StaticEnvironment(false))
	c.Initialize()
	if c.Root().Dark() {
		t.Fatal("expected light before SetPreference")
	}

	if err := c.SetPreference(PreferenceDark); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	if !c.Root().Dark() {
		t.Error("SetPreference should apply the marker immediately")
	}

	// A fresh load reads the persisted value back.
	fresh := NewController(store, StaticEnvironment(false))
	fresh.Initialize()
	if !fresh.Root().Dark() {
		t.Error("persisted dark preference was not applied on fresh load")
	}
	if fresh.Source() != SourcePersisted {
		t.Errorf("Source() = %q, want %q", fresh.Source(), SourcePersisted)
	}

	// Re-initializing the same controller also sees it.
	c.Initialize()
	if !c.Root().Dark() {
		t.Error("re-initialize lost the persisted preference")
	}
}

func TestSetPreferenceInvalid(t *testing.T) {
	store := NewMemoryStore()
	c := NewController(store, nil)
	c.Initialize()

	err := c.SetPreference(Preference("sepia"))
	if !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
	if _, ok, _ := store.Get(StorageKey); ok {
		t.Error("invalid preference must not be persisted")
	}
	if c.Root().Dark() {
		t.Error("invalid preference must not change the marker")
	}
}

func TestSetPreferenceWriteFailureKeepsMarker(t *testing.T) {
	c := NewController(failingStore{}, nil)
	c.Initialize()

	if err := c.SetPreference(PreferenceDark); err == nil {
		t.Fatal("expected write error")
	}
	if !c.Root().Dark() {
		t.Error("marker should stay applied when persisting fails")
	}
}

func TestSetPreferenceWithoutStorage(t *testing.T) {
	c := NewController(nil, nil)
	if err := c.SetPreference(PreferenceDark); err != nil {
		t.Fatalf("SetPreference with nil storage: %v", err)
	}
	if c.Effective() != PreferenceDark {
		t.Errorf("Effective() = %q, want dark", c.Effective())
	}
}

func TestClearPreference(t *testing.T) {
	store := storeWith("light")
	c := NewController(store, StaticEnvironment(true))
	c.Initialize()
	if c.Root().Dark() || c.Source() != SourcePersisted {
		t.Fatalf("before clear: dark=%v source=%q", c.Root().Dark(), c.Source())
	}

	if err := c.ClearPreference(); err != nil {
		t.Fatalf("ClearPreference: %v", err)
	}
	if _, ok, _ := store.Get(StorageKey); ok {
		t.Error("preference should be removed from storage")
	}
	if !c.Root().Dark() || c.Source() != SourceEnvironment {
		t.Errorf("after clear: dark=%v source=%q, want environment dark", c.Root().Dark(), c.Source())
	}
	if !c.IsReady() {
		t.Error("controller should stay ready")
	}
}

func TestClearPreferenceUnsupportedStorage(t *testing.T) {
	c := NewController(failingStore{}, nil)
	c.Initialize()
	if err := c.ClearPreference(); !errors.Is(err, ErrNotClearable) {
		t.Errorf("expected ErrNotClearable, got %v", err)
	}

	bare := NewController(nil, StaticEnvironment(true))
	if err := bare.ClearPreference(); err != nil {
		t.Fatalf("ClearPreference with nil storage: %v", err)
	}
	if !bare.Root().Dark() {
		t.Error("nil storage should resolve from the environment")
	}
}

func TestInitializeCollaboratorsFailing(t *testing.T) {
	envPanics := EnvironmentFunc(func() (bool, error) { panic("matchMedia is not a function") })

	tests := []struct {
		name    string
		storage Storage
		env     Environment
	}{
		{"absent storage, env throws", NewMemoryStore(), envPanics},
		{"storage errors, env errors", failingStore{}, envErr()},
		{"storage panics, env panics", panickingStore{}, envPanics},
		{"nil collaborators", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.storage, tt.env)
			c.Initialize()

			if !c.IsReady() {
				t.Error("Initialize must complete despite collaborator failures")
			}
			if c.Root().Dark() {
				t.Error("expected light theme on collaborator failure")
			}
			if c.Effective() != PreferenceLight {
				t.Errorf("Effective() = %q, want light", c.Effective())
			}
		})
	}
}

func TestStoragePanicFallsBackToEnvironment(t *testing.T) {
	c := NewController(panickingStore{}, StaticEnvironment(true))
	c.Initialize()
	if !c.Root().Dark() {
		t.Error("expected environment preference after storage panic")
	}
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		input   string
		want    Preference
		wantErr bool
	}{
		{"light", PreferenceLight, false},
		{"dark", PreferenceDark, false},
		{" DARK ", PreferenceDark, false},
		{"", "", true},
		{"system", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreference(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreference(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreference(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRootClass(t *testing.T) {
	var nilRoot *Root
	if nilRoot.Dark() || nilRoot.Class() != "" {
		t.Error("nil root should read as light")
	}

	r := &Root{}
	r.apply(PreferenceDark)
	if r.Class() != "dark" || r.Preference() != PreferenceDark {
		t.Errorf("dark root: class %q, preference %q", r.Class(), r.Preference())
	}
	r.apply(PreferenceLight)
	if r.Class() != "" || r.Preference() != PreferenceLight {
		t.Errorf("light root: class %q, preference %q", r.Class(), r.Preference())
	}
}
