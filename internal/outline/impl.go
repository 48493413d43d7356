package outline

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// implBlock is one impl block found anywhere in the file, with its included
// functions already classified in declaration order.
type implBlock struct {
	typeText string
	methods  []ItemInfo
}

// collectImplBlocks gathers every impl block in the file in source order.
// The traversal is independent of module scope: an impl block nested inside
// a module can supply methods to a type declared elsewhere.
func collectImplBlocks(root *sitter.Node, source []byte, includePrivate bool) []implBlock {
	var blocks []implBlock

	walkTree(root, func(node *sitter.Node) bool {
		if node.Kind() != "impl_item" {
			return true
		}

		typeNode := node.ChildByFieldName("type")
		if typeNode == nil {
			return false
		}

		block := implBlock{typeText: nodeText(typeNode, source)}
		if body := node.ChildByFieldName("body"); body != nil {
			for _, child := range namedChildren(body) {
				kind := child.Kind()
				if kind != "function_item" && kind != "function_signature_item" {
					continue
				}
				if !included(classifyVisibility(child, source), includePrivate) {
					continue
				}
				if info := functionInfo(child, source); info != nil {
					block.methods = append(block.methods, *info)
				}
			}
		}

		blocks = append(blocks, block)
		return false
	})

	return blocks
}

// attachImplMethods walks the assembled item tree and appends each impl
// block's methods to every ADT whose name occurs in the block's rendered
// type text. The substring match is a deliberate best-effort policy: it
// tolerates generic and qualified types (impl Foo<T>, impl path::Foo) at the
// cost of occasional false positives; no name resolution happens here.
func attachImplMethods(items []ItemInfo, blocks []implBlock) {
	for i := range items {
		switch {
		case items[i].Details.Adt != nil:
			for _, block := range blocks {
				if strings.Contains(block.typeText, items[i].Name) {
					items[i].Details.Adt.Methods = append(items[i].Details.Adt.Methods, block.methods...)
				}
			}
		case items[i].Details.Module != nil:
			attachImplMethods(items[i].Details.Module.Items, blocks)
		}
	}
}
