package manifest

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// CheckConstraints validates every version range in the set as semver
// constraint syntax. Violations are returned in deterministic (sorted)
// order so callers can surface them as warnings; merging itself never
// rejects a range.
func CheckConstraints(set DependencySet) []error {
	var errs []error
	errs = append(errs, checkSection(DependenciesSection, set.Dependencies)...)
	errs = append(errs, checkSection(DevDependenciesSection, set.DevDependencies)...)
	return errs
}

func checkSection(name string, entries map[string]string) []error {
	pkgs := make([]string, 0, len(entries))
	for pkg := range entries {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	var errs []error
	for _, pkg := range pkgs {
		if _, err := semver.NewConstraint(entries[pkg]); err != nil {
			errs = append(errs, fmt.Errorf("invalid version constraint %q for %s in %s: %w", entries[pkg], pkg, name, err))
		}
	}
	return errs
}
