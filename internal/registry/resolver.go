// Package registry maps a profile to the npm registry URL it stands for.
package registry

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/devtools/npm-registry/internal/cli"
	rerrors "github.com/devtools/npm-registry/internal/errors"
	"github.com/devtools/npm-registry/internal/profile"
)

// DefaultHome is the public npm registry used by the home profile.
const DefaultHome = "https://registry.npmjs.org/"

// RegistryPrompt is shown when the work registry has to be typed in.
const RegistryPrompt = "Please type your registry: "

// Resolver turns a profile into a registry URL, remembering the work
// registry across runs.
type Resolver struct {
	// HomeDir locates the user's home directory. Defaults to os.UserHomeDir.
	HomeDir  func() (string, error)
	Prompter cli.Prompter
	Logger   *slog.Logger
}

// NewResolver creates a Resolver using the real home directory.
func NewResolver(prompter cli.Prompter, logger *slog.Logger) *Resolver {
	return &Resolver{
		HomeDir:  os.UserHomeDir,
		Prompter: prompter,
		Logger:   logger,
	}
}

// Resolve returns the registry URL for p. For the work profile the saved
// URL is returned when present; otherwise the user is prompted and the
// answer is saved when a home directory is available.
func (r *Resolver) Resolve(p profile.Profile) (string, error) {
	switch p {
	case profile.Home:
		return DefaultHome, nil
	case profile.Work:
		return r.resolveWork()
	default:
		return "", fmt.Errorf("%w: %q", profile.ErrUnknownProfile, string(p))
	}
}

func (r *Resolver) resolveWork() (string, error) {
	store, ok := r.WorkStore()
	if !ok {
		r.logger().Warn("home directory unavailable, work registry will not be saved")
		return r.promptRegistry()
	}

	url, found, err := store.Load()
	if err != nil {
		return "", err
	}
	if found {
		r.logger().Debug("using saved work registry", "path", store.Path())
		return url, nil
	}

	url, err = r.promptRegistry()
	if err != nil {
		return "", err
	}

	if err := store.Save(url); err != nil {
		return "", err
	}
	r.logger().Debug("saved work registry", "path", store.Path())

	return url, nil
}

// Peek resolves p without prompting. found is false for the work profile
// when nothing has been saved yet.
func (r *Resolver) Peek(p profile.Profile) (url string, found bool, err error) {
	switch p {
	case profile.Home:
		return DefaultHome, true, nil
	case profile.Work:
		store, ok := r.WorkStore()
		if !ok {
			return "", false, nil
		}
		return store.Load()
	default:
		return "", false, fmt.Errorf("%w: %q", profile.ErrUnknownProfile, string(p))
	}
}

// WorkStore returns the store for the work registry file. ok is false when
// the home directory cannot be determined.
func (r *Resolver) WorkStore() (*WorkStore, bool) {
	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}

	home, err := homeDir()
	if err != nil || home == "" {
		return nil, false
	}
	return NewWorkStore(home), true
}

func (r *Resolver) promptRegistry() (string, error) {
	url, err := r.Prompter.Prompt(RegistryPrompt)
	if err != nil {
		return "", rerrors.InputRead("registry", err)
	}
	return url, nil
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
