package domain

const (
	// DefaultResourceRoot is where clang installs its versioned resource directories.
	DefaultResourceRoot = "/usr/lib/clang"
	// DefaultDatabase is the conventional compilation database file name.
	DefaultDatabase = "compile_commands.json"
)

// Profile holds the defaults applied to every make and fix run.
// Command-line values are merged on top of it.
type Profile struct {
	// ResourceRoot holds MAJOR.MINOR.PATCH directories; the newest one's include
	// directory is injected into generated commands. Empty disables the lookup.
	ResourceRoot string
	// Families lists the flag families stripped when the caller names none.
	Families []string
	// Discard and Add are applied before the caller's own lists.
	Discard []string
	Add     []string
	Pretty  bool
	// Database is the default path for fix, relative to the working directory.
	Database string
}

// DefaultProfile returns the profile used when no config file exists. It drops the
// GCC-only flags that a clang front-end rejects or warns about.
func DefaultProfile() *Profile {
	return &Profile{
		ResourceRoot: DefaultResourceRoot,
		Discard:      []string{"I/usr/include", "Wno-maybe-uninitialized"},
		Database:     DefaultDatabase,
	}
}
