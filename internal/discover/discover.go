package discover

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is appended to directory candidates.
const DefaultFilename = "lang.json"

// Artifact is one discovered translation file: its filesystem path and raw
// content, in discovery order.
type Artifact struct {
	Path string
	Data []byte
}

// Resolve expands the candidate list into the ordered artifact sequence fed
// to the merge pipeline. A candidate naming a directory has DefaultFilename
// appended; a candidate naming a file is used as-is. Missing candidates are
// tolerated and skipped, as are zero-byte files. Any other filesystem failure
// is fatal for the whole run.
func Resolve(candidates []string) ([]Artifact, error) {
	var artifacts []Artifact
	for _, cand := range candidates {
		path := cand
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // empty match is allowed
			}
			return nil, fmt.Errorf("resolving candidate %s: %w", cand, err)
		}
		if info.IsDir() {
			path = filepath.Join(path, DefaultFilename)
			if info, err = os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("resolving candidate %s: %w", cand, err)
			}
		}
		if info.Size() == 0 {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		artifacts = append(artifacts, Artifact{Path: path, Data: data})
	}
	return artifacts, nil
}

// LoadManifest reads a candidate list from a manifest file: one candidate per
// line, blank lines and #-comments ignored.
func LoadManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	var candidates []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return candidates, nil
}
