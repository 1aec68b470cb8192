package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// FlagRule matches a single token. A rule that consumes an argument also claims the
// token that immediately follows the match.
type FlagRule struct {
	Pattern          *regexp.Regexp
	ConsumesArgument bool
}

// Matches reports whether the token satisfies the rule's pattern.
// Built-in patterns are anchored at both ends, so only whole tokens match.
func (r FlagRule) Matches(token string) bool {
	return r.Pattern.MatchString(token)
}

// FlagFamily is a named class of related compiler flags stripped together.
type FlagFamily struct {
	Name  string
	Rules []FlagRule
}

// Match returns the first rule of the family that matches token.
func (f FlagFamily) Match(token string) (FlagRule, bool) {
	for _, r := range f.Rules {
		if r.Matches(token) {
			return r, true
		}
	}
	return FlagRule{}, false
}

const (
	// FamilyDependencyGeneration names the -M* preprocessor dependency flags.
	FamilyDependencyGeneration = "dependency-generation"
	// FamilyOptimizationLevel names the -O* optimization flags.
	FamilyOptimizationLevel = "optimization-level"
	// FamilyDebugLevel names the -g* debug information flags.
	FamilyDebugLevel = "debug-level"
)

var (
	// DependencyGeneration strips -M, -MM, -MD, -MMD, -MG, -MP and the argument-taking
	// -MF, -MQ, -MT.
	DependencyGeneration = FlagFamily{
		Name: FamilyDependencyGeneration,
		Rules: []FlagRule{
			{Pattern: regexp.MustCompile(`^-(?:M|MM|MD|MMD|MG|MP)$`)},
			{Pattern: regexp.MustCompile(`^-(?:MF|MQ|MT)$`), ConsumesArgument: true},
		},
	}

	// OptimizationLevel strips -O, -O0 through -O3, -Os, -Og and -Ofast.
	OptimizationLevel = FlagFamily{
		Name: FamilyOptimizationLevel,
		Rules: []FlagRule{
			{Pattern: regexp.MustCompile(`^-O(?:0|1|2|3|s|g|fast)?$`)},
		},
	}

	// DebugLevel strips -g, -g0 through -g3 and -ggdb.
	DebugLevel = FlagFamily{
		Name: FamilyDebugLevel,
		Rules: []FlagRule{
			{Pattern: regexp.MustCompile(`^-g(?:0|1|2|3|gdb)?$`)},
		},
	}
)

var familyAliases = map[string]FlagFamily{
	FamilyDependencyGeneration: DependencyGeneration,
	"deps":                     DependencyGeneration,
	FamilyOptimizationLevel:    OptimizationLevel,
	"opt":                      OptimizationLevel,
	FamilyDebugLevel:           DebugLevel,
	"debug":                    DebugLevel,
}

// BuiltinFamilies returns the built-in families in their canonical application order.
func BuiltinFamilies() []FlagFamily {
	return []FlagFamily{DependencyGeneration, OptimizationLevel, DebugLevel}
}

// ParseFamily looks up a built-in family by name or short alias.
func ParseFamily(name string) (FlagFamily, error) {
	f, ok := familyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FlagFamily{}, zerr.With(zerr.Wrap(ErrUnknownFlagFamily, "invalid --strip value"), "family", name)
	}
	return f, nil
}

// ParseFamilies resolves names into families, dropping repeats while keeping the
// order of first appearance.
func ParseFamilies(names []string) ([]FlagFamily, error) {
	seen := make(map[string]bool, len(names))
	families := make([]FlagFamily, 0, len(names))
	for _, name := range names {
		f, err := ParseFamily(name)
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		families = append(families, f)
	}
	return families, nil
}
