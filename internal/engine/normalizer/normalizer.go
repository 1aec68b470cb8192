// Package normalizer rewrites raw compiler invocations into canonical commands for a
// clang-compatible indexer and assembles compilation database entries from them.
package normalizer

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize bounds the number of memoised Normalize results.
const DefaultCacheSize = 1024

// Options selects the rewrites applied by Normalize and BuildEntries.
type Options struct {
	// Raw bypasses every rewrite; the command is used verbatim.
	Raw bool
	// Families are stripped one pass each, in order.
	Families []domain.FlagFamily
	// Discard is applied before Add.
	Discard []string
	Add     []string
	// ResourceDir, when set, injects -I<ResourceDir>/include.
	ResourceDir string
}

// cacheKey identifies a command under a set of options. Every field is
// length-prefixed so distinct inputs never share a key.
func (o Options) cacheKey(command string) string {
	var b strings.Builder
	field := func(s string) {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}
	list := func(items []string) {
		b.WriteString(strconv.Itoa(len(items)))
		b.WriteByte('#')
		for _, s := range items {
			field(s)
		}
	}

	field(command)
	b.WriteString(strconv.FormatBool(o.Raw))
	names := make([]string, len(o.Families))
	for i, f := range o.Families {
		names[i] = f.Name
	}
	list(names)
	list(o.Discard)
	list(o.Add)
	field(o.ResourceDir)
	return b.String()
}

// Normalizer runs the normalization pipeline and memoises its results.
type Normalizer struct {
	logger ports.Logger
	tracer ports.Tracer
	cache  *lru.Cache[string, string]
}

// New creates a Normalizer whose cache holds up to size results.
func New(logger ports.Logger, tracer ports.Tracer, size int) (*Normalizer, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create normalization cache")
	}
	return &Normalizer{
		logger: logger,
		tracer: tracer,
		cache:  cache,
	}, nil
}

// Normalize rewrites a single command:
//
//  1. tokenize, and append -I<ResourceDir>/include when a resource dir is set
//  2. drop repeated tokens
//  3. strip each enabled flag family in its own pass
//  4. discard, then add, the caller's flags
//
// In raw mode the command is returned unchanged.
func (n *Normalizer) Normalize(command string, opts Options) string {
	if opts.Raw {
		return command
	}

	key := opts.cacheKey(command)
	if cached, ok := n.cache.Get(key); ok {
		return cached
	}

	tokens := domain.Tokenize(command)
	if opts.ResourceDir != "" {
		tokens = append(tokens, "-I"+filepath.Join(opts.ResourceDir, "include"))
	}

	tokens = Dedupe(tokens)
	for _, family := range opts.Families {
		var dangling []string
		tokens, dangling = Strip(tokens, family)
		for _, flag := range dangling {
			n.logger.Warn(domain.ErrMalformedCommand.Error() + ": " + flag + " (" + family.Name + ")")
		}
	}
	tokens = Discard(tokens, opts.Discard)
	tokens = Add(tokens, opts.Add)

	result := tokens.String()
	n.cache.Add(key, result)
	return result
}

// BuildEntries normalizes command once and assembles one entry per file.
func (n *Normalizer) BuildEntries(
	ctx context.Context,
	command string,
	files []string,
	directory string,
	opts Options,
) ([]domain.CompilationEntry, error) {
	ctx, span := n.tracer.Start(ctx, "normalizer.build_entries")
	defer span.End()

	if strings.TrimSpace(command) == "" {
		span.RecordError(domain.ErrEmptyCommand)
		return nil, domain.ErrEmptyCommand
	}
	if len(files) == 0 {
		span.RecordError(domain.ErrNoSources)
		return nil, domain.ErrNoSources
	}

	base := n.Normalize(command, opts)
	span.SetAttribute("raw", opts.Raw)
	span.SetAttribute("files", len(files))

	entries, err := Assemble(ctx, base, files, directory)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to assemble entries")
	}
	return entries, nil
}
