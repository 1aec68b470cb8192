package app

import (
	"context"
	"io"
	"strconv"

	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/engine/normalizer"
	"go.trai.ch/zerr"
)

// MakeRequest holds the inputs of a make run. Zero values fall back to the profile.
type MakeRequest struct {
	// Cwd anchors relative paths and is the default entry directory.
	Cwd     string
	Command string
	Sources []string
	// Directory is recorded in every entry.
	Directory string
	// ResourceDir skips the lookup under the profile's resource root.
	ResourceDir     string
	NoSystemHeaders bool
	Raw             bool
	// Strip names flag families; when empty the profile's families apply.
	Strip   []string
	Add     []string
	Discard []string
	// Pretty overrides the profile when set.
	Pretty *bool
	// Output is the database path; empty writes to the provided writer.
	Output string
}

// Make generates one compilation database entry per source file.
func (a *App) Make(ctx context.Context, req MakeRequest, stdout io.Writer) (err error) {
	ctx, span := a.tracer.Start(ctx, "app.make")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	profile, err := a.loadProfile(req.Cwd)
	if err != nil {
		return err
	}

	opts, err := a.makeOptions(req, profile)
	if err != nil {
		return err
	}

	directory := req.Directory
	if directory == "" {
		directory = req.Cwd
	}
	directory = resolvePath(req.Cwd, directory)

	entries, err := a.normalizer.BuildEntries(ctx, req.Command, req.Sources, directory, opts)
	if err != nil {
		return err
	}
	span.SetAttribute("entries", len(entries))

	pretty := resolvePretty(req.Pretty, profile)
	if req.Output == "" {
		return a.store.Write(stdout, entries, pretty)
	}

	path := resolvePath(req.Cwd, req.Output)
	if _, err := a.store.Save(path, entries, pretty); err != nil {
		return err
	}
	a.logger.Info("wrote " + strconv.Itoa(len(entries)) + " entries to " + req.Output)
	return nil
}

func (a *App) makeOptions(req MakeRequest, profile *domain.Profile) (normalizer.Options, error) {
	if req.Raw {
		return normalizer.Options{Raw: true}, nil
	}

	names := req.Strip
	if len(names) == 0 {
		names = profile.Families
	}
	families, err := domain.ParseFamilies(names)
	if err != nil {
		return normalizer.Options{}, err
	}

	resourceDir, err := a.resourceDir(req, profile)
	if err != nil {
		return normalizer.Options{}, err
	}

	return normalizer.Options{
		Families:    families,
		Discard:     merge(profile.Discard, req.Discard),
		Add:         merge(profile.Add, req.Add),
		ResourceDir: resourceDir,
	}, nil
}

// resourceDir picks the directory whose include path is injected. An explicit
// directory wins; otherwise the newest version under the profile root is used.
func (a *App) resourceDir(req MakeRequest, profile *domain.Profile) (string, error) {
	if req.ResourceDir != "" {
		return resolvePath(req.Cwd, req.ResourceDir), nil
	}
	if req.NoSystemHeaders || profile.ResourceRoot == "" {
		return "", nil
	}

	root := resolvePath(req.Cwd, profile.ResourceRoot)
	names, err := a.lister.List(root)
	if err != nil {
		return "", zerr.Wrap(err, "cannot look up system headers")
	}
	return normalizer.ResolveResourceDir(root, names)
}
