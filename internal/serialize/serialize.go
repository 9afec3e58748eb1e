package serialize

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/langmerge/internal/merge"
)

// Render produces the canonical textual form of a merged dictionary: keys
// sorted lexicographically ascending, JSON with 4-space indentation, HTML
// escaping left off, one trailing newline. Identical mappings always render
// to byte-identical output regardless of insertion order.
func Render(m merge.Mapping) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders m to w in the canonical form.
func Write(w io.Writer, m merge.Mapping) error {
	enc := newEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	return nil
}

// WriteFile renders m into the file at path, creating parent directories as
// needed. The file is written once, complete; there is no partial output.
func WriteFile(path string, m merge.Mapping) error {
	data, err := Render(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}
	return nil
}
