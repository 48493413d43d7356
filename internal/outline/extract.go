package outline

import (
	"context"
	"fmt"
	"strings"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// Extractor turns Rust source text into a symbol outline. It holds only the
// grammar and is safe for concurrent use; every extraction works on its own
// parser and immutable source snapshot.
type Extractor struct {
	language *sitter.Language
}

// New creates an Extractor backed by the Rust grammar.
func New() *Extractor {
	return &Extractor{
		language: sitter.NewLanguage(rust.Language()),
	}
}

// Extract parses the source and assembles the outline. Parsing is
// error-tolerant: syntax problems become diagnostics and extraction proceeds
// on the best-effort tree. The result is a pure function of the source and
// options, apart from the measured parse time.
func (e *Extractor) Extract(ctx context.Context, source []byte, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(e.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse source%s", pathSuffix(opts.FilePath))
	}
	defer tree.Close()

	root := tree.RootNode()
	diagnostics := collectDiagnostics(root, source)

	items, refs := assembleScope(root, source, opts.IncludePrivate, "")
	attachImplMethods(items, collectImplBlocks(root, source, opts.IncludePrivate))

	return &Result{
		Success:     len(diagnostics) == 0,
		ParseTimeMs: time.Since(start).Milliseconds(),
		Diagnostics: diagnostics,
		FileInfo: FileInfo{
			Items:            items,
			ModuleReferences: refs,
		},
	}, nil
}

// collectDiagnostics reports ERROR regions and missing nodes from the
// error-tolerant tree, spans included. Children of an ERROR region are not
// descended into; one diagnostic covers the region.
func collectDiagnostics(root *sitter.Node, source []byte) []Diagnostic {
	diagnostics := []Diagnostic{}

	walkTree(root, func(node *sitter.Node) bool {
		switch {
		case node.IsError():
			span := nodeSpan(node)
			diagnostics = append(diagnostics, Diagnostic{
				Message:  fmt.Sprintf("syntax error near %q", errorSnippet(node, source)),
				Severity: "error",
				Span:     &span,
			})
			return false
		case node.IsMissing():
			span := nodeSpan(node)
			diagnostics = append(diagnostics, Diagnostic{
				Message:  fmt.Sprintf("missing %s", node.Kind()),
				Severity: "error",
				Span:     &span,
			})
		}
		return true
	})

	return diagnostics
}

const snippetLimit = 40

// errorSnippet renders a short one-line excerpt of an error region.
func errorSnippet(node *sitter.Node, source []byte) string {
	text := strings.Join(strings.Fields(nodeText(node, source)), " ")
	if len(text) > snippetLimit {
		text = text[:snippetLimit] + "..."
	}
	return text
}

func pathSuffix(filePath string) string {
	if filePath == "" {
		return ""
	}
	return " " + filePath
}
