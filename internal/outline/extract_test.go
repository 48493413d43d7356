package outline

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for extraction:
// - Output is deterministic aside from the measured parse time
// - Every span stays within the source bounds
// - Private items appear only with includePrivate
// - Function signatures exclude the body, trailing whitespace trimmed
// - Bodyless functions keep their full text as signature
// - Malformed input yields success=false, diagnostics with spans, and a
//   best-effort outline for the valid remainder
// - The testdata fixture parses cleanly end to end

const sampleSource = `use std::collections::HashMap;

/// A user of the system.
pub struct User {
    id: u64,
    name: String,
}

impl User {
    pub fn new(id: u64, name: String) -> Self {
        User { id, name }
    }

    fn internal_id(&self) -> u64 {
        self.id
    }
}

fn helper() -> u32 {
    42
}

pub fn add(a: u32, b: u32) -> u32 {
    a + b
}
`

func TestExtractDeterminism(t *testing.T) {
	t.Parallel()

	first := extractSource(t, sampleSource, true)
	second := extractSource(t, sampleSource, true)

	first.ParseTimeMs = 0
	second.ParseTimeMs = 0

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestExtractSpanValidity(t *testing.T) {
	t.Parallel()

	result := extractSource(t, sampleSource, true)

	var checkItems func(items []ItemInfo)
	checkItems = func(items []ItemInfo) {
		for _, item := range items {
			assert.GreaterOrEqual(t, item.Span.Start, 0)
			assert.LessOrEqual(t, item.Span.Start, item.Span.End)
			assert.LessOrEqual(t, item.Span.End, len(sampleSource))
			assert.GreaterOrEqual(t, item.Span.StartLine, 1)

			switch {
			case item.Details.Adt != nil:
				checkItems(item.Details.Adt.Methods)
			case item.Details.Module != nil:
				checkItems(item.Details.Module.Items)
			}
		}
	}
	checkItems(result.FileInfo.Items)
}

func TestExtractVisibilityFiltering(t *testing.T) {
	t.Parallel()

	source := "pub fn f() {}\nfn g() {}\n"

	publicOnly := extractSource(t, source, false)
	f := findItem(publicOnly, "f")
	require.NotNil(t, f, "pub fn f should be included")
	assert.Equal(t, VisibilityPublic, f.Visibility)
	assert.Nil(t, findItem(publicOnly, "g"), "private fn g should be excluded")

	withPrivate := extractSource(t, source, true)
	g := findItem(withPrivate, "g")
	require.NotNil(t, g, "fn g should appear with includePrivate")
	assert.Equal(t, VisibilityPrivate, g.Visibility)
}

func TestExtractSignatureSplitting(t *testing.T) {
	t.Parallel()

	source := "pub fn add(a: u32, b: u32) -> u32 { a + b }\n"
	result := extractSource(t, source, false)

	item := findItem(result, "add")
	require.NotNil(t, item)
	require.NotNil(t, item.Details.Function)
	assert.Equal(t, "pub fn add(a: u32, b: u32) -> u32", item.Details.Function.Signature)
	assert.Equal(t, "pub fn add(a: u32, b: u32) -> u32 { a + b }", item.RawText)
}

func TestExtractSuccessFlag(t *testing.T) {
	t.Parallel()

	clean := extractSource(t, "pub fn ok() {}\n", false)
	assert.True(t, clean.Success)
	assert.Empty(t, clean.Diagnostics)

	broken := extractSource(t, "pub fn ok() {}\npub fn broken( {\n", true)
	assert.False(t, broken.Success)
	require.NotEmpty(t, broken.Diagnostics)
	for _, diag := range broken.Diagnostics {
		assert.Equal(t, "error", diag.Severity)
		assert.NotEmpty(t, diag.Message)
	}

	// Best-effort outline still contains the valid remainder.
	assert.NotNil(t, findItem(broken, "ok"))
}

func TestExtractDiagnosticSpans(t *testing.T) {
	t.Parallel()

	source := "pub fn broken( {\n"
	result := extractSource(t, source, true)

	require.NotEmpty(t, result.Diagnostics)
	found := false
	for _, diag := range result.Diagnostics {
		if diag.Span == nil {
			continue
		}
		found = true
		assert.GreaterOrEqual(t, diag.Span.Start, 0)
		assert.LessOrEqual(t, diag.Span.Start, diag.Span.End)
		assert.LessOrEqual(t, diag.Span.End, len(source))
	}
	assert.True(t, found, "at least one diagnostic should carry a span")
}

func TestExtractBodylessFunctionSignature(t *testing.T) {
	t.Parallel()

	source := `extern "C" {
    pub fn strlen(s: *const u8) -> usize;
}

pub trait Greeter {
    fn greet(&self) -> String;
}
`
	result := extractSource(t, source, true)

	trait := findItem(result, "Greeter")
	require.NotNil(t, trait)
	require.NotNil(t, trait.Details.Trait)
	require.Len(t, trait.Details.Trait.Methods, 1)
	assert.Equal(t, "fn greet(&self) -> String;", trait.Details.Trait.Methods[0].Signature)
}

func TestExtractTestdataFixture(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile("../../testdata/rust/simple.rs")
	require.NoError(t, err)

	result, err := New().Extract(context.Background(), source, Options{IncludePrivate: true})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.FileInfo.Items)
	assert.NotEmpty(t, result.FileInfo.ModuleReferences)
}
