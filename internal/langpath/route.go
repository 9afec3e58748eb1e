package langpath

import (
	"path"
	"strings"

	"golang.org/x/text/language"
)

// Rule identifies which routing rule produced a prefix.
type Rule string

const (
	// RuleCore matches paths directly under core/.
	RuleCore Rule = "core"
	// RuleCoreFeature matches paths under core/features/<name>/.
	RuleCoreFeature Rule = "core-feature"
	// RuleAddon matches paths under addons/.
	RuleAddon Rule = "addon"
	// RuleAssets matches paths under assets/, where the filename itself names
	// the namespace (typically a locale code).
	RuleAssets Rule = "assets"
	// RuleDefault is the generic two-level fallback for any other path.
	RuleDefault Rule = "default"
)

// Route is the result of applying the routing rules to one logical path.
type Route struct {
	Rule   Rule
	Prefix string
}

// Derive maps a logical path to its namespace prefix. It is a pure function of
// the path's segments; the returned prefix always ends in a single dot.
//
// The final path segment is the filename and never contributes to the prefix,
// except under the assets rule where its extension-stripped form is the
// entire namespace.
func Derive(logical string) Route {
	segs := strings.Split(logical, "/")
	last := len(segs) - 1

	switch segs[0] {
	case "core":
		if len(segs) > 3 && segs[1] == "features" {
			return Route{Rule: RuleCoreFeature, Prefix: "core." + segs[2] + "."}
		}
		return Route{Rule: RuleCore, Prefix: "core."}
	case "addons":
		mid := segs[1:last]
		if len(mid) == 0 {
			return Route{Rule: RuleAddon, Prefix: "addon."}
		}
		return Route{Rule: RuleAddon, Prefix: "addon." + strings.Join(mid, "_") + "."}
	case "assets":
		stem := strings.TrimSuffix(segs[last], path.Ext(segs[last]))
		return Route{Rule: RuleAssets, Prefix: "assets." + stem + "."}
	default:
		if last < 2 {
			return Route{Rule: RuleDefault, Prefix: segs[0] + "."}
		}
		return Route{Rule: RuleDefault, Prefix: segs[0] + "." + segs[1] + "."}
	}
}

// LocaleTag parses an assets filename stem as a BCP 47 language tag. Callers
// treat a parse failure as a diagnostic, not an error: assets files are
// usually named for a locale but nothing enforces it.
func LocaleTag(stem string) (language.Tag, error) {
	return language.Parse(stem)
}
