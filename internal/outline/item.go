package outline

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// classifyItem dispatches one declaration node into a tagged ItemInfo.
// Module declarations are owned by the scope assembler and never reach this
// function. Nodes lacking a required name yield nil and are silently
// dropped. Visibility filtering is the caller's job; classification itself
// is a pure mapping.
func classifyItem(node *sitter.Node, source []byte) *ItemInfo {
	switch node.Kind() {
	case "function_item", "function_signature_item":
		return functionInfo(node, source)
	case "struct_item":
		return adtInfo(node, source, AdtStruct)
	case "enum_item":
		return adtInfo(node, source, AdtEnum)
	case "union_item":
		return adtInfo(node, source, AdtUnion)
	case "trait_item":
		return traitInfo(node, source)
	case "mod_item":
		return nil
	default:
		return otherInfo(node, source)
	}
}

// functionInfo extracts a function declaration. The signature is the
// declaration text truncated where the body block begins; declared-only
// functions keep their full text.
func functionInfo(node *sitter.Node, source []byte) *ItemInfo {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	raw := nodeText(node, source)
	signature := raw
	if body := node.ChildByFieldName("body"); body != nil {
		cut := body.StartByte() - node.StartByte()
		signature = strings.TrimRight(raw[:cut], " \t\r\n")
	}

	return &ItemInfo{
		Name:       nodeText(nameNode, source),
		RawText:    raw,
		DocComment: resolveDocComment(node, source),
		Visibility: classifyVisibility(node, source),
		Span:       nodeSpan(node),
		Details:    ItemDetails{Function: &FunctionDetails{Signature: signature}},
	}
}

// adtInfo extracts a struct, enum, or union declaration. The methods list
// starts empty; the impl association pass fills it in.
func adtInfo(node *sitter.Node, source []byte, kind AdtKind) *ItemInfo {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &ItemInfo{
		Name:       nodeText(nameNode, source),
		RawText:    nodeText(node, source),
		DocComment: resolveDocComment(node, source),
		Visibility: classifyVisibility(node, source),
		Span:       nodeSpan(node),
		Details: ItemDetails{Adt: &AdtDetails{
			Kind:    kind,
			Methods: []ItemInfo{},
		}},
	}
}

// traitInfo extracts a trait declaration together with the methods declared
// in its own body. Trait method signatures live physically in the trait, so
// they are collected here rather than by the impl association pass.
func traitInfo(node *sitter.Node, source []byte) *ItemInfo {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	methods := []TraitMethodInfo{}
	if body := node.ChildByFieldName("body"); body != nil {
		for _, child := range namedChildren(body) {
			kind := child.Kind()
			if kind != "function_item" && kind != "function_signature_item" {
				continue
			}
			methodName := child.ChildByFieldName("name")
			if methodName == nil {
				continue
			}

			raw := nodeText(child, source)
			signature := raw
			if methodBody := child.ChildByFieldName("body"); methodBody != nil {
				cut := methodBody.StartByte() - child.StartByte()
				signature = strings.TrimRight(raw[:cut], " \t\r\n")
			}

			methods = append(methods, TraitMethodInfo{
				Name:       nodeText(methodName, source),
				Signature:  signature,
				DocComment: resolveDocComment(child, source),
				Span:       nodeSpan(child),
			})
		}
	}

	return &ItemInfo{
		Name:       nodeText(nameNode, source),
		RawText:    nodeText(node, source),
		DocComment: resolveDocComment(node, source),
		Visibility: classifyVisibility(node, source),
		Span:       nodeSpan(node),
		Details:    ItemDetails{Trait: &TraitDetails{Methods: methods}},
	}
}

// otherInfo extracts the residual declaration kinds: imports, constants,
// statics, type aliases, and impl blocks surfaced as standalone items.
func otherInfo(node *sitter.Node, source []byte) *ItemInfo {
	var name, itemKind string

	switch node.Kind() {
	case "use_declaration":
		arg := node.ChildByFieldName("argument")
		if arg == nil {
			return nil
		}
		name = nodeText(arg, source)
		itemKind = "use"
	case "const_item":
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return nil
		}
		name = nodeText(nameNode, source)
		itemKind = "const"
	case "static_item":
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return nil
		}
		name = nodeText(nameNode, source)
		itemKind = "static"
	case "type_item":
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return nil
		}
		name = nodeText(nameNode, source)
		itemKind = "type_alias"
	case "impl_item":
		typeNode := node.ChildByFieldName("type")
		if typeNode == nil {
			return nil
		}
		name = nodeText(typeNode, source)
		if traitNode := node.ChildByFieldName("trait"); traitNode != nil {
			name = nodeText(traitNode, source) + " for " + name
		}
		itemKind = "impl"
	default:
		name = "unknown"
		itemKind = "unknown"
	}

	return &ItemInfo{
		Name:       name,
		RawText:    nodeText(node, source),
		DocComment: resolveDocComment(node, source),
		Visibility: classifyVisibility(node, source),
		Span:       nodeSpan(node),
		Details:    ItemDetails{Other: &OtherDetails{ItemKind: itemKind}},
	}
}
