package normalizer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/engine/normalizer"
)

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{name: "numeric not lexicographic", names: []string{"9.0.0", "10.0.0", "3.8.1"}, want: "10.0.0"},
		{name: "minor and patch", names: []string{"3.9.1", "3.10.0", "3.9.12"}, want: "3.10.0"},
		{name: "non-versions ignored", names: []string{"latest", "include", "14.0.6", "v15"}, want: "14.0.6"},
		{name: "prefix match", names: []string{"17.0.1-rc1", "16.0.0"}, want: "17.0.1-rc1"},
		{name: "leading zeros", names: []string{"09.0.0", "8.0.0"}, want: "09.0.0"},
		{name: "same version ties on name", names: []string{"10.0.0-custom", "10.0.0"}, want: "10.0.0-custom"},
		{name: "single", names: []string{"1.2.3"}, want: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizer.ResolveVersion(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveVersion_OrderIndependent(t *testing.T) {
	a, err := normalizer.ResolveVersion([]string{"10.0.0", "10.0.0-custom", "2.0.0"})
	require.NoError(t, err)
	b, err := normalizer.ResolveVersion([]string{"2.0.0", "10.0.0-custom", "10.0.0"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolveVersion_NotFound(t *testing.T) {
	for _, names := range [][]string{nil, {}, {"latest", "1.2", "x1.2.3"}} {
		_, err := normalizer.ResolveVersion(names)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrVersionDirectoryNotFound))
	}
}

func TestResolveResourceDir(t *testing.T) {
	dir, err := normalizer.ResolveResourceDir("/usr/lib/clang", []string{"9.0.0", "10.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/clang/10.0.0", dir)

	_, err = normalizer.ResolveResourceDir("/usr/lib/clang", []string{"README"})
	assert.ErrorIs(t, err, domain.ErrVersionDirectoryNotFound)
}
