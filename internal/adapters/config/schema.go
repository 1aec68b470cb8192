package config

// Profile file and environment names.
const (
	Filename = ".jcdb.yaml"
	EnvFile  = ".env"

	envPrefix       = "JCDB_"
	EnvResourceRoot = envPrefix + "RESOURCE_ROOT"
	EnvDatabase     = envPrefix + "DATABASE"
)

// supportedVersion is the only profile schema version understood.
const supportedVersion = "1"

// ProfileDTO is the on-disk shape of .jcdb.yaml. Pointer and nil slice fields
// distinguish an omitted key, which keeps the default, from an explicit value.
type ProfileDTO struct {
	Version      string   `yaml:"version"`
	ResourceRoot *string  `yaml:"resourceRoot"`
	Families     []string `yaml:"families"`
	Discard      []string `yaml:"discard"`
	Add          []string `yaml:"add"`
	Pretty       *bool    `yaml:"pretty"`
	Database     *string  `yaml:"database"`
}
