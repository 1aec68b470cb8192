// Package config loads the jcdb profile from .jcdb.yaml and .env.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/jcdb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader on top of the working directory.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load builds the profile for cwd: defaults, then .jcdb.yaml, then .env.
func (l *FileConfigLoader) Load(cwd string) (*domain.Profile, error) {
	profile := domain.DefaultProfile()

	path := filepath.Join(cwd, Filename)
	dto, err := readProfile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		dto.apply(profile)
	}

	envPath := filepath.Join(cwd, EnvFile)
	env, err := godotenv.Read(envPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", envPath)
	default:
		l.applyEnv(profile, env)
	}

	return profile, nil
}

func readProfile(path string) (*ProfileDTO, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var dto ProfileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if dto.Version != "" && dto.Version != supportedVersion {
		err := zerr.Wrap(domain.ErrConfigParseFailed, "unsupported profile version")
		return nil, zerr.With(zerr.With(err, "path", path), "version", dto.Version)
	}

	if _, err := domain.ParseFamilies(dto.Families); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &dto, nil
}

func (dto *ProfileDTO) apply(p *domain.Profile) {
	if dto.ResourceRoot != nil {
		p.ResourceRoot = *dto.ResourceRoot
	}
	if dto.Families != nil {
		p.Families = dto.Families
	}
	if dto.Discard != nil {
		p.Discard = dto.Discard
	}
	if dto.Add != nil {
		p.Add = dto.Add
	}
	if dto.Pretty != nil {
		p.Pretty = *dto.Pretty
	}
	if dto.Database != nil {
		p.Database = *dto.Database
	}
}

func (l *FileConfigLoader) applyEnv(p *domain.Profile, env map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(env)) {
		v := env[key]
		switch key {
		case EnvResourceRoot:
			p.ResourceRoot = v
		case EnvDatabase:
			if v != "" {
				p.Database = v
			}
		default:
			if strings.HasPrefix(key, envPrefix) && l.logger != nil {
				l.logger.Warn("ignoring unknown " + key + " in " + EnvFile)
			}
		}
	}
}
