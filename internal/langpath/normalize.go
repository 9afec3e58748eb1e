package langpath

import (
	"errors"
	"strings"
)

// DefaultSourceRoots are the marker directories searched for inside an input
// path, ordered most specific first. The first marker found wins, so a path
// under app/src/ is never re-matched by the broader src/ marker.
var DefaultSourceRoots = []string{"app/src", "src"}

// ErrNoSourceRoot indicates that none of the configured source-root markers
// appear in the input path.
var ErrNoSourceRoot = errors.New("no source root marker in path")

// Normalize derives the logical path of a translation file: the slash-separated
// path relative to the first matching source-root marker. It accepts absolute
// or relative paths using either separator convention.
func Normalize(path string, roots []string) (string, error) {
	if len(roots) == 0 {
		roots = DefaultSourceRoots
	}
	clean := strings.ReplaceAll(path, `\`, "/")

	for _, root := range roots {
		marker := "/" + strings.Trim(root, "/") + "/"
		// Leading slash makes a path that starts at the marker match too.
		idx := strings.Index("/"+clean, marker)
		if idx < 0 {
			continue
		}
		logical := ("/" + clean)[idx+len(marker):]
		if logical == "" {
			continue
		}
		return logical, nil
	}
	return "", ErrNoSourceRoot
}
