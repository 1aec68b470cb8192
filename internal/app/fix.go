package app

import (
	"context"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/engine/normalizer"
	"go.trai.ch/zerr"
)

// FixRequest holds the inputs of a fix run.
type FixRequest struct {
	Cwd string
	// File is the database to rewrite; empty means the profile's database.
	File string
	// Flags are added to every command, or discarded when Remove is set.
	Flags  []string
	Remove bool
	Strip  []string
	// Stdout writes the result to the provided writer instead of the file.
	Stdout bool
	// Pretty overrides the profile when set.
	Pretty *bool
}

// Fix rewrites the command of every entry in an existing database.
func (a *App) Fix(ctx context.Context, req FixRequest, stdout io.Writer) (err error) {
	_, span := a.tracer.Start(ctx, "app.fix")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	flags := normalizer.Flags(req.Flags)
	if len(flags) == 0 && len(req.Strip) == 0 {
		return domain.ErrNoFlags
	}

	profile, err := a.loadProfile(req.Cwd)
	if err != nil {
		return err
	}

	families, err := domain.ParseFamilies(req.Strip)
	if err != nil {
		return err
	}
	opts := normalizer.Options{Families: families}
	if req.Remove {
		opts.Discard = flags
	} else {
		opts.Add = flags
	}

	name := req.File
	if name == "" {
		name = profile.Database
	}
	path := resolvePath(req.Cwd, name)

	db, err := a.store.Load(path)
	if err != nil {
		return err
	}
	for i := range db {
		if strings.TrimSpace(db[i].Command) == "" {
			err := zerr.Wrap(domain.ErrEntryWithoutCommand, "cannot fix entry")
			return zerr.With(zerr.With(err, "index", i), "file", db[i].File)
		}
	}
	for i := range db {
		db[i].Command = a.normalizer.Normalize(db[i].Command, opts)
	}
	span.SetAttribute("entries", len(db))

	pretty := resolvePretty(req.Pretty, profile)
	if req.Stdout {
		return a.store.Write(stdout, db, pretty)
	}

	changed, err := a.store.Save(path, db, pretty)
	if err != nil {
		return err
	}
	if !changed {
		a.logger.Info(name + " is already up to date")
		return nil
	}
	a.logger.Info("updated " + strconv.Itoa(len(db)) + " entries in " + name)
	return nil
}
