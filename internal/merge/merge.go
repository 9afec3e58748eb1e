package merge

// Mapping is the accumulated dictionary covering all input artifacts, keyed by
// prefixed translation key.
type Mapping map[string]string

// Collision records one key that was overwritten during accumulation. The
// overwrite itself is deliberate (later artifacts override earlier ones), but
// callers may surface collisions as diagnostics or treat them as failures.
type Collision struct {
	Key      string
	Previous string
	Value    string
}

// New returns an empty Mapping ready for accumulation.
func New() Mapping {
	return make(Mapping)
}

// AddProperties writes every source entry into target under prefix+key,
// silently overwriting existing entries. It returns a record of each
// overwrite whose value actually changed; rewriting a key with an identical
// value is not a collision.
func AddProperties(target Mapping, source map[string]string, prefix string) []Collision {
	var collisions []Collision
	for key, val := range source {
		full := prefix + key
		if prev, ok := target[full]; ok && prev != val {
			collisions = append(collisions, Collision{Key: full, Previous: prev, Value: val})
		}
		target[full] = val
	}
	return collisions
}
