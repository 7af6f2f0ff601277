package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// packageNameRegex is the npm package name rule: an optional @scope/
// followed by a lowercase name that does not start with a dot or underscore.
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z0-9\-*~][a-z0-9\-*._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	leadingDotOrUS = regexp.MustCompile(`^[._]`)
	invalidCharRun = regexp.MustCompile(`[^a-z0-9\-~]+`)
)

// IsValidPackageName reports whether name can be used as a manifest name.
func IsValidPackageName(name string) bool {
	return packageNameRegex.MatchString(name)
}

// ValidatePackageName returns an error when name is not a valid manifest name.
func ValidatePackageName(name string) error {
	if !IsValidPackageName(name) {
		return fmt.Errorf("invalid package.json name %q", name)
	}
	return nil
}

// ToValidPackageName derives a package name from a project name: trimmed,
// lowercased, whitespace runs become "-", one leading "." or "_" is dropped
// and every other run of disallowed characters becomes a single "-".
// Applying it twice yields the same result as applying it once.
func ToValidPackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespaceRun.ReplaceAllString(name, "-")
	name = leadingDotOrUS.ReplaceAllString(name, "")
	return invalidCharRun.ReplaceAllString(name, "-")
}
