package normalizer

import "go.trai.ch/jcdb/internal/core/domain"

// Strip removes every token matched by the family. A matched flag whose rule consumes
// an argument also removes the token right after it.
//
// An argument-taking flag in last position is removed on its own and reported in
// dangling; the stripped command is still returned.
func Strip(tokens domain.Command, family domain.FlagFamily) (out domain.Command, dangling []string) {
	out = make(domain.Command, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		rule, ok := family.Match(tokens[i])
		if !ok {
			out = append(out, tokens[i])
			continue
		}
		if !rule.ConsumesArgument {
			continue
		}
		if i+1 == len(tokens) {
			dangling = append(dangling, tokens[i])
			continue
		}
		i++ // skip the argument
	}
	return out, dangling
}
