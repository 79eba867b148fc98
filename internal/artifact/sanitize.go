// Package artifact derives deterministic on-disk names and folders for
// generated launchers.
package artifact

import "regexp"

// disallowedChars matches anything not in [A-Za-z0-9._-].
var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Sanitize strips every character outside [A-Za-z0-9._-], preserving the
// relative order of the survivors. The result is safe to embed in a path
// segment. Empty input yields empty output; callers treat that as invalid
// separately.
//
// Example: "Acme Inc!" → "AcmeInc"
func Sanitize(s string) string {
	return disallowedChars.ReplaceAllString(s, "")
}
