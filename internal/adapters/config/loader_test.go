package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jcdb/internal/adapters/config"
	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newLoader(t *testing.T) (*config.FileConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader, _ := newLoader(t)

	profile, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), profile)
}

func TestLoad_Profile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.Filename, `
version: "1"
resourceRoot: /opt/llvm/lib/clang
families: [deps, opt]
discard: [Werror]
add: [Wall]
pretty: true
database: build/compile_commands.json
`)
	loader, _ := newLoader(t)

	profile, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &domain.Profile{
		ResourceRoot: "/opt/llvm/lib/clang",
		Families:     []string{"deps", "opt"},
		Discard:      []string{"Werror"},
		Add:          []string{"Wall"},
		Pretty:       true,
		Database:     "build/compile_commands.json",
	}, profile)
}

func TestLoad_OmittedKeysKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.Filename, "pretty: true\n")
	loader, _ := newLoader(t)

	profile, err := loader.Load(dir)
	require.NoError(t, err)

	want := domain.DefaultProfile()
	want.Pretty = true
	assert.Equal(t, want, profile)
}

func TestLoad_ExplicitEmptyValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.Filename, "resourceRoot: \"\"\ndiscard: []\n")
	loader, _ := newLoader(t)

	profile, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, profile.ResourceRoot)
	assert.NotNil(t, profile.Discard)
	assert.Empty(t, profile.Discard)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.Filename, "resourceRoot: /usr/lib/clang\n")
	writeFile(t, dir, config.EnvFile, "JCDB_RESOURCE_ROOT=/opt/clang\nJCDB_DATABASE=out.json\nJCDB_COLOUR=1\nOTHER=1\n")
	loader, log := newLoader(t)
	log.EXPECT().Warn("ignoring unknown JCDB_COLOUR in .env")

	profile, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/clang", profile.ResourceRoot)
	assert.Equal(t, "out.json", profile.Database)
	_, set := os.LookupEnv(config.EnvResourceRoot)
	assert.False(t, set, "process environment must not change")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			content: "families: [deps\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			wantErr: "unsupported profile version",
		},
		{
			name:    "unknown family",
			content: "families: [warnings]\n",
			wantErr: "invalid --strip value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, config.Filename, tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(dir)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
