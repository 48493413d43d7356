package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node kinds that appear among a scope's named children but are not
// declarations: comments and attributes are consumed by the doc resolver,
// ERROR regions surface as diagnostics.
var nonItemKinds = map[string]bool{
	"line_comment":         true,
	"block_comment":        true,
	"attribute_item":       true,
	"inner_attribute_item": true,
	"shebang":              true,
	"ERROR":                true,
}

// assembleScope walks the ordered sibling declarations of one scope (the
// file root or an inline module body) and accumulates two parallel lists:
// classified items and module references. pathPrefix is the accumulated
// module nesting path used for reference path candidates ("" at file root,
// "outer/inner/" two modules deep).
func assembleScope(scope *sitter.Node, source []byte, includePrivate bool, pathPrefix string) ([]ItemInfo, []ModuleReference) {
	items := []ItemInfo{}
	refs := []ModuleReference{}

	for _, node := range namedChildren(scope) {
		if nonItemKinds[node.Kind()] {
			continue
		}

		if node.Kind() == "mod_item" {
			if item, ref := assembleModule(node, source, includePrivate, pathPrefix); item != nil {
				items = append(items, *item)
			} else if ref != nil {
				refs = append(refs, *ref)
			}
			continue
		}

		if !included(classifyVisibility(node, source), includePrivate) {
			continue
		}
		if item := classifyItem(node, source); item != nil {
			items = append(items, *item)
		}
	}

	return items, refs
}

// assembleModule handles one module declaration. A module with an inline
// body recurses into a new scope and becomes a Module item; a bodyless
// declaration becomes a ModuleReference with its candidate file paths. An
// excluded module is omitted entirely, returning (nil, nil). A module item
// is always exactly one of the two, never both.
func assembleModule(node *sitter.Node, source []byte, includePrivate bool, pathPrefix string) (*ItemInfo, *ModuleReference) {
	if !included(classifyVisibility(node, source), includePrivate) {
		return nil, nil
	}

	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil, nil
	}
	name := nodeText(nameNode, source)

	body := node.ChildByFieldName("body")
	if body == nil {
		return nil, &ModuleReference{
			Name:       name,
			Visibility: classifyVisibility(node, source),
			ExpectedPaths: []string{
				pathPrefix + name + ".rs",
				pathPrefix + name + "/mod.rs",
			},
			Span: nodeSpan(node),
		}
	}

	nested, nestedRefs := assembleScope(body, source, includePrivate, pathPrefix+name+"/")
	return &ItemInfo{
		Name:       name,
		RawText:    nodeText(node, source),
		DocComment: resolveDocComment(node, source),
		Visibility: classifyVisibility(node, source),
		Span:       nodeSpan(node),
		Details: ItemDetails{Module: &ModuleDetails{
			Items:            nested,
			ModuleReferences: nestedRefs,
		}},
	}, nil
}
