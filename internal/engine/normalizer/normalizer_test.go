package normalizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jcdb/internal/adapters/telemetry"
	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports/mocks"
	"go.trai.ch/jcdb/internal/engine/normalizer"
	"go.uber.org/mock/gomock"
)

func newNormalizer(t *testing.T) (*normalizer.Normalizer, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	n, err := normalizer.New(log, telemetry.NewNoOpTracer(), 16)
	require.NoError(t, err)
	return n, log
}

func TestNew_InvalidCacheSize(t *testing.T) {
	_, err := normalizer.New(nil, telemetry.NewNoOpTracer(), 0)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	all := domain.BuiltinFamilies()

	tests := []struct {
		name    string
		command string
		opts    normalizer.Options
		want    string
	}{
		{
			name:    "whitespace and duplicates only",
			command: "  cc  -c -Wall   -Wall -I. ",
			want:    "cc -c -Wall -I.",
		},
		{
			name:    "discard then add",
			command: "-c -Wall",
			opts:    normalizer.Options{Discard: []string{"Wall"}, Add: []string{"Wextra"}},
			want:    "-c -Wextra",
		},
		{
			name:    "legacy gcc command",
			command: "gcc -c -O2 -g -MD -MF a.d -Wall -Wall -I/usr/include -Wno-maybe-uninitialized",
			opts: normalizer.Options{
				Families:    all,
				Discard:     []string{"I/usr/include", "Wno-maybe-uninitialized"},
				Add:         []string{"Wextra"},
				ResourceDir: "/usr/lib/clang/10.0.0",
			},
			want: "gcc -c -Wall -I/usr/lib/clang/10.0.0/include -Wextra",
		},
		{
			name:    "injected include folds into an existing one",
			command: "clang -I/usr/lib/clang/10.0.0/include -c",
			opts:    normalizer.Options{ResourceDir: "/usr/lib/clang/10.0.0"},
			want:    "clang -I/usr/lib/clang/10.0.0/include -c",
		},
		{
			name:    "added flag survives even when present",
			command: "cc -c -Wall",
			opts:    normalizer.Options{Add: []string{"Wall"}},
			want:    "cc -c -Wall -Wall",
		},
		{
			name:    "raw mode is verbatim",
			command: "gcc  -O2 -O2\t-MF",
			opts:    normalizer.Options{Raw: true, Families: all, Add: []string{"x"}},
			want:    "gcc  -O2 -O2\t-MF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := newNormalizer(t)
			assert.Equal(t, tt.want, n.Normalize(tt.command, tt.opts))
		})
	}
}

func TestNormalize_DanglingArgumentWarnsOnce(t *testing.T) {
	n, log := newNormalizer(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	opts := normalizer.Options{Families: []domain.FlagFamily{domain.DependencyGeneration}}
	assert.Equal(t, "cc -c a.c", n.Normalize("cc -c a.c -MT", opts))
	// Served from the cache, so the warning is not repeated.
	assert.Equal(t, "cc -c a.c", n.Normalize("cc -c a.c -MT", opts))
}

func TestNormalize_CacheKeyIncludesOptions(t *testing.T) {
	n, _ := newNormalizer(t)

	assert.Equal(t, "cc -O2", n.Normalize("cc -O2", normalizer.Options{}))
	assert.Equal(t, "cc", n.Normalize("cc -O2", normalizer.Options{
		Families: []domain.FlagFamily{domain.OptimizationLevel},
	}))
	assert.Equal(t, "cc -O2 -g", n.Normalize("cc -O2", normalizer.Options{Add: []string{"g"}}))
	assert.Equal(t, "cc -O2", n.Normalize("cc -O2", normalizer.Options{}))
}

func TestCacheKey_FieldBoundaries(t *testing.T) {
	tests := []struct {
		name string
		a, b normalizer.Options
	}{
		{
			name: "joined discard flags",
			a:    normalizer.Options{Discard: []string{"a", "b"}},
			b:    normalizer.Options{Discard: []string{"a\x00b"}},
		},
		{
			name: "discard versus add",
			a:    normalizer.Options{Discard: []string{"Wall"}},
			b:    normalizer.Options{Add: []string{"Wall"}},
		},
		{
			name: "empty flag",
			a:    normalizer.Options{Add: []string{""}},
			b:    normalizer.Options{},
		},
		{
			name: "resource dir",
			a:    normalizer.Options{ResourceDir: "/opt/clang/10.0.0"},
			b:    normalizer.Options{Add: []string{"/opt/clang/10.0.0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, normalizer.CacheKey("cc -c", tt.a), normalizer.CacheKey("cc -c", tt.b))
		})
	}

	assert.NotEqual(t,
		normalizer.CacheKey("cc 1:x", normalizer.Options{}),
		normalizer.CacheKey("cc", normalizer.Options{Add: []string{"x"}}),
	)
}

func TestBuildEntries(t *testing.T) {
	n, _ := newNormalizer(t)

	entries, err := n.BuildEntries(context.Background(), "-c -Wall", []string{"a.c", "b.c"}, "/proj", normalizer.Options{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.CompilationEntry{Directory: "/proj", Command: "-c -Wall a.c", File: "a.c"}, entries[0])
	assert.Equal(t, domain.CompilationEntry{Directory: "/proj", Command: "-c -Wall b.c", File: "b.c"}, entries[1])
}

func TestBuildEntries_Raw(t *testing.T) {
	n, _ := newNormalizer(t)

	entries, err := n.BuildEntries(context.Background(), "gcc  -O2 -O2", []string{"a.c"}, "/p", normalizer.Options{
		Raw:      true,
		Families: domain.BuiltinFamilies(),
	})
	require.NoError(t, err)
	assert.Equal(t, "gcc  -O2 -O2 a.c", entries[0].Command)
}

func TestBuildEntries_Sanitized(t *testing.T) {
	n, _ := newNormalizer(t)

	entries, err := n.BuildEntries(context.Background(), "gcc -c -O2 -MD -MF x.d", []string{"x.c"}, "/p", normalizer.Options{
		Families: domain.BuiltinFamilies(),
	})
	require.NoError(t, err)
	assert.Equal(t, "gcc -c x.c", entries[0].Command)
	assert.Equal(t, "x.c", entries[0].File)
}

func TestBuildEntries_Errors(t *testing.T) {
	n, _ := newNormalizer(t)

	_, err := n.BuildEntries(context.Background(), "  ", []string{"a.c"}, "/p", normalizer.Options{})
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)

	_, err = n.BuildEntries(context.Background(), "cc", nil, "/p", normalizer.Options{})
	assert.ErrorIs(t, err, domain.ErrNoSources)
}
