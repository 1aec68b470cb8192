package domain

import "strings"

// Command is an ordered sequence of whitespace-delimited tokens.
// Tokens compare by exact string equality, so "-O2" and "-O 2" are different commands.
type Command []string

// Tokenize splits s on runs of whitespace, discarding empty tokens.
// Quotes and escapes are not interpreted.
func Tokenize(s string) Command {
	return Command(strings.Fields(s))
}

// String renders the command with a single space between tokens.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Clone returns a copy that shares no backing array with c.
func (c Command) Clone() Command {
	if c == nil {
		return nil
	}
	out := make(Command, len(c))
	copy(out, c)
	return out
}
