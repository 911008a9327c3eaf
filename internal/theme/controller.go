package theme

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Storage is the key-value persistence collaborator.
type Storage interface {
	// Get returns the stored value and whether one exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Clearer is implemented by storage that can remove a value.
type Clearer interface {
	Delete(key string) error
}

// ErrNotClearable is returned by ClearPreference when the storage cannot
// remove values.
var ErrNotClearable = errors.New("theme storage cannot clear values")

// Environment reports the hosting environment's color-scheme preference.
type Environment interface {
	PrefersDark() (bool, error)
}

// EnvironmentFunc adapts a function to Environment.
type EnvironmentFunc func() (bool, error)

func (f EnvironmentFunc) PrefersDark() (bool, error) { return f() }

// StaticEnvironment always reports the same preference.
type StaticEnvironment bool

func (s StaticEnvironment) PrefersDark() (bool, error) { return bool(s), nil }

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used to record swallowed collaborator failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller resolves the theme once per page load and applies it to Root.
// A Controller belongs to a single page load and is not safe for concurrent
// use.
type Controller struct {
	storage Storage
	env     Environment
	logger  *zap.Logger

	root      Root
	effective Preference
	source    Source
	ready     bool
}

// NewController creates a controller. Either collaborator may be nil, which
// is treated as "no preference".
func NewController(storage Storage, env Environment, opts ...Option) *Controller {
	c := &Controller{
		storage:   storage,
		env:       env,
		logger:    zap.NewNop(),
		effective: PreferenceLight,
		source:    SourceDefault,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resolves the effective theme, applies the root marker and marks
// the controller ready. It never fails.
func (c *Controller) Initialize() {
	p, src := c.resolve()
	c.effective = p
	c.source = src
	c.root.apply(p)
	c.ready = true
}

// IsReady reports whether Initialize has completed at least once.
func (c *Controller) IsReady() bool { return c.ready }

// SetPreference applies p immediately and persists it. The marker stays
// applied even when the write fails.
func (c *Controller) SetPreference(p Preference) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, string(p))
	}
	c.effective = p
	c.source = SourcePersisted
	c.root.apply(p)

	if c.storage == nil {
		return nil
	}
	if err := c.storage.Set(StorageKey, string(p)); err != nil {
		return fmt.Errorf("persisting theme preference: %w", err)
	}
	return nil
}

// ClearPreference removes the persisted preference and resolves the theme
// again from the environment. The marker follows the new resolution.
func (c *Controller) ClearPreference() error {
	if c.storage != nil {
		cl, ok := c.storage.(Clearer)
		if !ok {
			return ErrNotClearable
		}
		if err := cl.Delete(StorageKey); err != nil {
			return fmt.Errorf("clearing theme preference: %w", err)
		}
	}
	c.Initialize()
	return nil
}

// Root returns the presentation marker owned by this controller.
func (c *Controller) Root() *Root { return &c.root }

// Effective returns the currently applied preference.
func (c *Controller) Effective() Preference { return c.effective }

// Source returns which priority level produced the current preference.
func (c *Controller) Source() Source { return c.source }

func (c *Controller) resolve() (Preference, Source) {
	if p, ok := c.persisted(); ok {
		return p, SourcePersisted
	}
	if c.environmentPrefersDark() {
		return PreferenceDark, SourceEnvironment
	}
	return PreferenceLight, SourceDefault
}

func (c *Controller) persisted() (p Preference, ok bool) {
	if c.storage == nil {
		return "", false
	}
	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Debug("theme storage panicked", zap.Any("panic", rec))
			p, ok = "", false
		}
	}()

	raw, found, err := c.storage.Get(StorageKey)
	if err != nil {
		c.logger.Debug("theme storage read failed", zap.Error(err))
		return "", false
	}
	if !found {
		return "", false
	}
	parsed, err := ParsePreference(raw)
	if err != nil {
		c.logger.Debug("ignoring stored theme", zap.String("value", raw))
		return "", false
	}
	return parsed, true
}

func (c *Controller) environmentPrefersDark() (dark bool) {
	if c.env == nil {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Debug("environment preference query panicked", zap.Any("panic", rec))
			dark = false
		}
	}()

	dark, err := c.env.PrefersDark()
	if err != nil {
		c.logger.Debug("environment preference unavailable", zap.Error(err))
		return false
	}
	return dark
}
