package serialize

import (
	"encoding/json"
	"io"
)

// newEncoder returns the one JSON encoder configuration the tool ever uses:
// 4-space indentation and no HTML escaping, so translation strings containing
// <, >, or & survive verbatim. json.Encoder sorts map keys lexicographically
// and terminates the document with a newline, which together give the
// stable-output guarantee.
func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc
}
