package normalizer

import (
	"strings"

	"go.trai.ch/jcdb/internal/core/domain"
)

// dashed prefixes flag with a single dash unless it already starts with one.
// Blank flags yield false.
func dashed(flag string) (string, bool) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		return "", false
	}
	if strings.HasPrefix(flag, "-") {
		return flag, true
	}
	return "-" + flag, true
}

// Flags returns the dash-prefixed form of every non-blank flag.
func Flags(flags []string) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if d, ok := dashed(f); ok {
			out = append(out, d)
		}
	}
	return out
}

// Discard removes every token exactly equal to one of flags. Flags are dash-prefixed
// first, so "Wall" and "-Wall" both remove "-Wall". Absent and blank flags are ignored.
func Discard(tokens domain.Command, flags []string) domain.Command {
	if len(flags) == 0 {
		return tokens.Clone()
	}
	drop := make(map[string]struct{}, len(flags))
	for _, f := range Flags(flags) {
		drop[f] = struct{}{}
	}
	out := make(domain.Command, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := drop[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Add appends the dash-prefixed flags in order, even when a token is already present.
// Blank flags are skipped.
// Run it after Dedupe; a later dedupe pass would drop an added flag that already
// occurred earlier in the command.
func Add(tokens domain.Command, flags []string) domain.Command {
	out := make(domain.Command, 0, len(tokens)+len(flags))
	out = append(out, tokens...)
	return append(out, Flags(flags)...)
}
