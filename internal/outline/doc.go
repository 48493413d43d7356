package outline

import (
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

var docAttributePattern = regexp.MustCompile(`^#\s*\[\s*doc\s*=\s*"((?s:.*))"\s*\]$`)

// resolveDocComment collects the documentation attached to a declaration:
// the contiguous run of `///` line comments directly above it, plus any
// preceding `#[doc = "..."]` attributes. Comments and attributes are sibling
// nodes in the tree, so blank lines between them are tolerated while any
// other node ends the scan. Returns "" when nothing was found.
func resolveDocComment(node *sitter.Node, source []byte) string {
	var lines []string
	var attrs []string

scan:
	for prev := node.PrevNamedSibling(); prev != nil; prev = prev.PrevNamedSibling() {
		switch prev.Kind() {
		case "line_comment":
			text := nodeText(prev, source)
			if !strings.HasPrefix(text, "///") {
				break scan
			}
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(text, "///")))
		case "attribute_item":
			if content, ok := docAttributeContent(nodeText(prev, source)); ok {
				attrs = append(attrs, content)
			}
			// Non-doc attributes (#[derive(...)] etc.) belong to the same
			// declaration and sit between it and its doc comments.
		default:
			break scan
		}
	}

	reverse(lines)
	reverse(attrs)
	parts := append(lines, attrs...)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n")
}

// docAttributeContent extracts the quoted text of a `#[doc = "..."]`
// attribute.
func docAttributeContent(text string) (string, bool) {
	m := docAttributePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
