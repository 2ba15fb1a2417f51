// Package profile defines the registry profiles a user can switch between.
package profile

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile is returned by Parse for anything but "home" or "work".
var ErrUnknownProfile = errors.New("unknown profile")

// Profile selects which registry npm should use.
type Profile string

const (
	Home Profile = "home" // Public npm registry
	Work Profile = "work" // Private registry supplied by the user
)

// All returns every profile in display order.
func All() []Profile {
	return []Profile{Home, Work}
}

// Valid returns true if the profile is one of the known values.
func (p Profile) Valid() bool {
	switch p {
	case Home, Work:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (p Profile) String() string {
	return string(p)
}

// Parse converts s into a Profile. Matching is exact and case-sensitive;
// callers trim surrounding whitespace first.
func Parse(s string) (Profile, error) {
	p := Profile(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
	return p, nil
}
