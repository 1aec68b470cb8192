package normalizer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"go.trai.ch/jcdb/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

var versionPrefix = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// canonicalVersion turns the leading MAJOR.MINOR.PATCH of name into a semver string
// such as "v10.0.0". Leading zeros are dropped so "09.1.0" orders as 9.1.0.
func canonicalVersion(name string) (string, bool) {
	m := versionPrefix.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	parts := make([]uint64, 3)
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return "", false
		}
		parts[i] = n
	}
	v := fmt.Sprintf("v%d.%d.%d", parts[0], parts[1], parts[2])
	return v, semver.IsValid(v)
}

// ResolveVersion returns the name whose leading MAJOR.MINOR.PATCH is greatest under
// numeric component-wise ordering. Names without a version prefix are ignored.
// Two names with the same version (e.g. "10.0.0" and "10.0.0-custom") are ordered by
// name so the result does not depend on input order.
func ResolveVersion(names []string) (string, error) {
	var best, bestVersion string
	for _, name := range names {
		v, ok := canonicalVersion(name)
		if !ok {
			continue
		}
		if best == "" {
			best, bestVersion = name, v
			continue
		}
		switch c := semver.Compare(v, bestVersion); {
		case c > 0, c == 0 && name > best:
			best, bestVersion = name, v
		}
	}
	if best == "" {
		return "", zerr.With(
			zerr.Wrap(domain.ErrVersionDirectoryNotFound, "cannot pick a system header directory"),
			"candidates", len(names),
		)
	}
	return best, nil
}

// ResolveResourceDir picks the newest versioned directory among names and joins it
// onto root.
func ResolveResourceDir(root string, names []string) (string, error) {
	name, err := ResolveVersion(names)
	if err != nil {
		return "", zerr.With(err, "root", root)
	}
	return filepath.Join(root, name), nil
}
