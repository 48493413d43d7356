package outline

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// classifyVisibility maps a declaration's visibility modifier to a
// Visibility tag. Declarations without a modifier are private; impl blocks
// never carry one and therefore classify as private.
func classifyVisibility(node *sitter.Node, source []byte) Visibility {
	modifier := findChildByKind(node, "visibility_modifier")
	if modifier == nil {
		return VisibilityPrivate
	}

	text := nodeText(modifier, source)
	switch {
	case strings.Contains(text, "pub(crate)"):
		return VisibilityPublicCrate
	case strings.Contains(text, "pub(super)"):
		return VisibilityPublicSuper
	case strings.Contains(text, "pub(in"):
		// Keep the full qualifying path, e.g. "pub(in crate::detail)".
		return Visibility(strings.TrimSpace(text))
	case strings.Contains(text, "pub"):
		return VisibilityPublic
	default:
		return VisibilityPrivate
	}
}

// included reports whether an item with the given visibility passes the
// inclusion policy.
func included(vis Visibility, includePrivate bool) bool {
	return includePrivate || vis != VisibilityPrivate
}
