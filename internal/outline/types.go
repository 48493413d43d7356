package outline

// Span identifies a contiguous byte range in the source text, together with
// 1-based line/column positions for display.
type Span struct {
	Start       int `json:"start"`
	End         int `json:"end"`
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// Visibility is the rendered visibility of a declaration. The pub(in ...)
// form keeps its full modifier text (e.g. "pub(in crate::detail)") rather
// than a placeholder.
type Visibility string

const (
	VisibilityPrivate     Visibility = "private"
	VisibilityPublic      Visibility = "pub"
	VisibilityPublicCrate Visibility = "pub(crate)"
	VisibilityPublicSuper Visibility = "pub(super)"
)

// AdtKind distinguishes the three algebraic data type declarations.
type AdtKind string

const (
	AdtStruct AdtKind = "struct"
	AdtEnum   AdtKind = "enum"
	AdtUnion  AdtKind = "union"
)

// ItemInfo is one extracted declaration.
type ItemInfo struct {
	Name       string      `json:"name"`
	RawText    string      `json:"rawText"`
	DocComment string      `json:"docComment,omitempty"`
	Visibility Visibility  `json:"visibility"`
	Span       Span        `json:"span"`
	Details    ItemDetails `json:"details"`
}

// ItemDetails is a closed tagged union: exactly one field is non-nil,
// matching the syntactic kind that produced the item.
type ItemDetails struct {
	Function *FunctionDetails `json:"function,omitempty"`
	Adt      *AdtDetails      `json:"adt,omitempty"`
	Trait    *TraitDetails    `json:"trait,omitempty"`
	Module   *ModuleDetails   `json:"module,omitempty"`
	Other    *OtherDetails    `json:"other,omitempty"`
}

// FunctionDetails carries the declaration text up to the body block.
type FunctionDetails struct {
	Signature string `json:"signature"`
}

// AdtDetails describes a struct, enum, or union. Methods are attached by the
// impl association pass, never during classification.
type AdtDetails struct {
	Kind    AdtKind    `json:"kind"`
	Methods []ItemInfo `json:"methods"`
}

// TraitDetails lists the methods declared in the trait body itself.
type TraitDetails struct {
	Methods []TraitMethodInfo `json:"methods"`
}

// TraitMethodInfo is a method declared inside a trait body.
type TraitMethodInfo struct {
	Name       string `json:"name"`
	Signature  string `json:"signature"`
	DocComment string `json:"docComment,omitempty"`
	Span       Span   `json:"span"`
}

// ModuleDetails is the body of an inline module.
type ModuleDetails struct {
	Items            []ItemInfo        `json:"items"`
	ModuleReferences []ModuleReference `json:"moduleReferences"`
}

// OtherDetails covers imports, constants, statics, type aliases, and impl
// blocks surfaced as standalone items.
type OtherDetails struct {
	ItemKind string `json:"itemKind"`
}

// ModuleReference records a module declared without an inline body
// (`mod foo;`). The referenced file is never opened; ExpectedPaths holds the
// candidate locations implied by module nesting.
type ModuleReference struct {
	Name          string     `json:"name"`
	Visibility    Visibility `json:"visibility"`
	ExpectedPaths []string   `json:"expectedPaths"`
	Span          Span       `json:"span"`
}

// FileInfo is the assembled outline of one source file.
type FileInfo struct {
	Items            []ItemInfo        `json:"items"`
	ModuleReferences []ModuleReference `json:"moduleReferences"`
}

// Diagnostic is a recoverable syntax issue reported by the parser.
// Extraction always proceeds on the best-effort tree.
type Diagnostic struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Span     *Span  `json:"span,omitempty"`
}

// Result is the top-level extraction result. Two invocations over the same
// input produce identical results except for ParseTimeMs.
type Result struct {
	Success     bool         `json:"success"`
	ParseTimeMs int64        `json:"parseTimeMs"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	FileInfo    FileInfo     `json:"fileInfo"`
}

// Options control a single extraction.
type Options struct {
	// IncludePrivate includes declarations without a pub modifier.
	IncludePrivate bool
	// FilePath is an optional hint for context. It is accepted but not
	// consulted by the extraction logic.
	FilePath string
}
