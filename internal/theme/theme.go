// Package theme resolves the light/dark presentation mode for a page load.
//
// The effective theme comes from, in order: a persisted preference stored
// under StorageKey, the environment's reported color-scheme preference, and
// finally PreferenceLight. Collaborator failures never surface; they are
// treated as "no preference".
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// StorageKey is the key under which the preference is persisted.
const StorageKey = "theme"

// Preference is a user-visible theme choice.
type Preference string

const (
	PreferenceLight Preference = "light"
	PreferenceDark  Preference = "dark"
)

// Source identifies which priority level produced the effective theme.
type Source string

const (
	SourcePersisted   Source = "persisted"
	SourceEnvironment Source = "environment"
	SourceDefault     Source = "default"
)

// ErrInvalidPreference is returned for values outside {light, dark}.
var ErrInvalidPreference = errors.New("invalid theme preference")

// Valid reports whether p is one of the known preferences.
func (p Preference) Valid() bool {
	return p == PreferenceLight || p == PreferenceDark
}

func (p Preference) String() string { return string(p) }

// ParsePreference parses a stored or user-supplied value. Surrounding
// whitespace and case are ignored.
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
	}
	return p, nil
}

// Root is the document-root presentation marker. It is owned by a single
// controller and handed to whatever renders the page.
type Root struct {
	dark bool
}

// Dark reports whether the dark marker is applied.
func (r *Root) Dark() bool { return r != nil && r.dark }

// Class returns the class attribute value for the document root.
func (r *Root) Class() string {
	if r.Dark() {
		return "dark"
	}
	return ""
}

// Preference returns the preference the marker currently represents.
func (r *Root) Preference() Preference {
	if r.Dark() {
		return PreferenceDark
	}
	return PreferenceLight
}

func (r *Root) apply(p Preference) {
	r.dark = p == PreferenceDark
}
