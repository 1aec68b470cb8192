package normalizer

import "go.trai.ch/jcdb/internal/core/domain"

// Dedupe keeps the first occurrence of every token and drops later repeats.
// Survivors keep their relative order.
func Dedupe(tokens domain.Command) domain.Command {
	seen := make(map[string]struct{}, len(tokens))
	out := make(domain.Command, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
