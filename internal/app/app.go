// Package app implements the make and fix use cases of jcdb.
package app

import (
	"path/filepath"

	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports"
	"go.trai.ch/jcdb/internal/engine/normalizer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.DatabaseStore
	lister       ports.DirectoryLister
	logger       ports.Logger
	tracer       ports.Tracer
	normalizer   *normalizer.Normalizer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.DatabaseStore,
	lister ports.DirectoryLister,
	log ports.Logger,
	tracer ports.Tracer,
	norm *normalizer.Normalizer,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		lister:       lister,
		logger:       log,
		tracer:       tracer,
		normalizer:   norm,
	}
}

// verboser is implemented by tracers that can report their spans.
type verboser interface {
	SetVerbose(enabled bool)
}

// SetTracing turns span reporting on or off when the tracer supports it.
func (a *App) SetTracing(enabled bool) {
	if v, ok := a.tracer.(verboser); ok {
		v.SetVerbose(enabled)
	}
}

// loadProfile reads the profile for cwd.
func (a *App) loadProfile(cwd string) (*domain.Profile, error) {
	profile, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return profile, nil
}

// resolvePath anchors a relative path at cwd.
func resolvePath(cwd, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

// resolvePretty lets an explicit choice win over the profile.
func resolvePretty(explicit *bool, profile *domain.Profile) bool {
	if explicit != nil {
		return *explicit
	}
	return profile.Pretty
}

// merge returns base followed by extra.
func merge(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
