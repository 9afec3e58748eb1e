package parse

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Properties parses one translation artifact's raw content into a flat
// key/value map. The format is chosen by the path's extension: .json, .yaml,
// .yml, or .toml. Nested documents are flattened with dot-joined key paths.
//
// Duplicate keys within one document follow decoder semantics: the last
// occurrence wins silently.
func Properties(p string, data []byte) (map[string]string, error) {
	var doc map[string]any

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported translation format: %s", ext)
	}

	out := make(map[string]string, len(doc))
	if err := flatten("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, doc map[string]any, out map[string]string) error {
	for key, val := range doc {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		default:
			s, err := stringify(full, val)
			if err != nil {
				return err
			}
			out[full] = s
		}
	}
	return nil
}

// stringify renders a scalar leaf as a string. Arrays and other non-scalar
// leaves are rejected: a translation value is always a single string.
func stringify(key string, val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64: // encoding/json numbers
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int: // yaml.v3 integers
		return strconv.Itoa(v), nil
	case int64: // go-toml integers
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("key %q: unsupported value type %T", key, val)
	}
}
