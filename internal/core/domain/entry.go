package domain

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// CompilationEntry is a single record of a compilation database.
type CompilationEntry struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`

	// Extra holds keys jcdb does not rewrite, such as "output" or "arguments",
	// so they survive a load and save.
	Extra map[string]json.RawMessage `json:"-"`
}

// Database is an ordered compilation database.
type Database []CompilationEntry

// UnmarshalJSON decodes the known keys and keeps every other key verbatim.
func (e *CompilationEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*e = CompilationEntry{}
	for key, raw := range fields {
		var target *string
		switch key {
		case "directory":
			target = &e.Directory
		case "command":
			target = &e.Command
		case "file":
			target = &e.File
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]json.RawMessage)
			}
			e.Extra[key] = raw
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON writes directory, command and file first, then the extra keys
// in sorted order. HTML characters are not escaped.
func (e CompilationEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	write := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(key); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := enc.Encode(value); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	if err := write("directory", e.Directory); err != nil {
		return nil, err
	}
	if err := write("command", e.Command); err != nil {
		return nil, err
	}
	if err := write("file", e.File); err != nil {
		return nil, err
	}
	for _, key := range slices.Sorted(maps.Keys(e.Extra)) {
		if key == "directory" || key == "command" || key == "file" {
			continue
		}
		if err := write(key, e.Extra[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
