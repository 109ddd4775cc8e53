// Package version pulls semantic versions out of tool banners such as
// "git version 2.43.0" or `openjdk version "21.0.2" 2024-01-16`.
package version

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// shellErrorRegex matches the location prefix a shell puts on its own
// errors, e.g. "sh: 1: " or "/bin/sh: line 1: ".
var shellErrorRegex = regexp.MustCompile(`^\S*sh: (?:line )?\d+: `)

// Extract finds and parses the first version number in a string.
// Missing minor or patch components are treated as zero. The line number
// of a shell error prefix is not a version.
func Extract(s string) (*semver.Version, error) {
	match := versionRegex.FindString(shellErrorRegex.ReplaceAllString(s, ""))
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", s)
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", match, err)
	}
	return v, nil
}

// ExtractString returns the normalized version found in s, or "" if none.
func ExtractString(s string) string {
	v, err := Extract(s)
	if err != nil {
		return ""
	}
	return v.String()
}
