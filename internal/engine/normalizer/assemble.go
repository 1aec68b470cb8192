package normalizer

import (
	"context"
	"runtime"

	"go.trai.ch/jcdb/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Assemble produces one entry per file, in file order. Each entry's command is the base
// command followed by a single space and the file; an empty base yields the file alone.
func Assemble(ctx context.Context, command string, files []string, directory string) ([]domain.CompilationEntry, error) {
	entries := make([]domain.CompilationEntry, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmd := file
			if command != "" {
				cmd = command + " " + file
			}
			entries[i] = domain.CompilationEntry{
				Directory: directory,
				Command:   cmd,
				File:      file,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
