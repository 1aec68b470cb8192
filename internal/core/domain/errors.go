package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionDirectoryNotFound is returned when no candidate directory name starts with a
	// MAJOR.MINOR.PATCH version, so no system header directory can be injected.
	ErrVersionDirectoryNotFound = zerr.New("no versioned directory found")

	// ErrMalformedCommand reports an argument-taking flag that ends the command without its
	// argument. It is logged as a warning; the flag is still stripped.
	ErrMalformedCommand = zerr.New("flag is missing its argument")

	// ErrUnknownFlagFamily is returned when a flag family name is not one of the built-ins.
	ErrUnknownFlagFamily = zerr.New("unknown flag family")

	// ErrNoSources is returned when entries are requested for an empty list of source files.
	ErrNoSources = zerr.New("no source files specified")

	// ErrEmptyCommand is returned when the compilation command is blank.
	ErrEmptyCommand = zerr.New("compilation command is empty")

	// ErrNoFlags is returned when fix is asked to add or remove nothing.
	ErrNoFlags = zerr.New("no flags specified")

	// ErrEntryWithoutCommand is returned when a database entry has no command string to
	// rewrite, e.g. one that only carries an arguments array.
	ErrEntryWithoutCommand = zerr.New("entry has no command")

	// ErrDatabaseReadFailed is returned when the compilation database cannot be read.
	ErrDatabaseReadFailed = zerr.New("failed to read compilation database")

	// ErrDatabaseParseFailed is returned when the compilation database is not valid JSON.
	ErrDatabaseParseFailed = zerr.New("failed to parse compilation database")

	// ErrDatabaseWriteFailed is returned when the compilation database cannot be written.
	ErrDatabaseWriteFailed = zerr.New("failed to write compilation database")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrListDirectoryFailed is returned when a resource root cannot be listed.
	ErrListDirectoryFailed = zerr.New("failed to list directory")
)
