package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for doc comment resolution:
// - Contiguous /// lines join with newlines, markers stripped
// - Blank lines between doc lines are tolerated
// - Unrelated code or a plain // comment ends the scan
// - #[doc = "..."] attribute content is appended
// - Attributes like #[derive] between docs and item do not break the run

func TestDocCommentJoined(t *testing.T) {
	t.Parallel()

	source := `/// Doc line 1
/// Doc line 2
pub struct S;
`
	result := extractSource(t, source, false)

	item := findItem(result, "S")
	require.NotNil(t, item)
	assert.Equal(t, "Doc line 1\nDoc line 2", item.DocComment)
}

func TestDocCommentToleratesBlankLines(t *testing.T) {
	t.Parallel()

	source := `/// First paragraph.

/// Second paragraph.
pub fn documented() {}
`
	result := extractSource(t, source, false)

	item := findItem(result, "documented")
	require.NotNil(t, item)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", item.DocComment)
}

func TestDocCommentStopsAtPlainComment(t *testing.T) {
	t.Parallel()

	source := `/// Stale docs for nothing.
// implementation note
pub fn bare() {}
`
	result := extractSource(t, source, false)

	item := findItem(result, "bare")
	require.NotNil(t, item)
	assert.Empty(t, item.DocComment)
}

func TestDocCommentStopsAtCode(t *testing.T) {
	t.Parallel()

	source := `/// Docs for first.
pub fn first() {}

pub fn second() {}
`
	result := extractSource(t, source, false)

	first := findItem(result, "first")
	require.NotNil(t, first)
	assert.Equal(t, "Docs for first.", first.DocComment)

	second := findItem(result, "second")
	require.NotNil(t, second)
	assert.Empty(t, second.DocComment)
}

func TestDocAttributeAppended(t *testing.T) {
	t.Parallel()

	source := `/// From a comment.
#[doc = "From an attribute."]
pub struct Mixed;
`
	result := extractSource(t, source, false)

	item := findItem(result, "Mixed")
	require.NotNil(t, item)
	assert.Equal(t, "From a comment.\nFrom an attribute.", item.DocComment)
}

func TestDocCommentSurvivesDerive(t *testing.T) {
	t.Parallel()

	source := `/// A point in space.
#[derive(Debug, Clone)]
pub struct Point {
    x: f64,
    y: f64,
}
`
	result := extractSource(t, source, false)

	item := findItem(result, "Point")
	require.NotNil(t, item)
	assert.Equal(t, "A point in space.", item.DocComment)
}
