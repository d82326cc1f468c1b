package domain

import "strings"

// VersionTokenLen is the number of leading characters of the release
// version marker that identify a release.
const VersionTokenLen = 8

// ParseVersionToken extracts the short release token from the raw contents
// of a version marker file: surrounding whitespace is trimmed and the first
// eight characters are kept. Shorter markers are returned as-is.
func ParseVersionToken(raw string) string {
	token := strings.TrimSpace(raw)
	if len(token) > VersionTokenLen {
		token = token[:VersionTokenLen]
	}
	return token
}
