package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for module assembly:
// - mod foo; becomes a reference with both path candidates, never an item
// - mod foo { ... } becomes a nested Module item, never a reference
// - Reference paths accumulate the full module nesting prefix
// - Excluded modules are omitted entirely, inline or referenced
// - Items and references preserve declaration order per scope

func TestModuleReference(t *testing.T) {
	t.Parallel()

	result := extractSource(t, "pub mod foo;\n", false)

	require.Len(t, result.FileInfo.ModuleReferences, 1)
	ref := result.FileInfo.ModuleReferences[0]
	assert.Equal(t, "foo", ref.Name)
	assert.Equal(t, VisibilityPublic, ref.Visibility)
	assert.Equal(t, []string{"foo.rs", "foo/mod.rs"}, ref.ExpectedPaths)

	assert.Nil(t, findItem(result, "foo"), "a module reference is never an item")
}

func TestInlineModule(t *testing.T) {
	t.Parallel()

	source := `pub mod foo {
    pub fn bar() {}
}
`
	result := extractSource(t, source, false)

	assert.Empty(t, result.FileInfo.ModuleReferences)

	item := findItem(result, "foo")
	require.NotNil(t, item)
	require.NotNil(t, item.Details.Module)
	require.Len(t, item.Details.Module.Items, 1)

	nested := item.Details.Module.Items[0]
	assert.Equal(t, "bar", nested.Name)
	assert.NotNil(t, nested.Details.Function)
}

func TestNestedModuleReferencePaths(t *testing.T) {
	t.Parallel()

	source := `pub mod outer {
    pub mod inner {
        pub mod leaf;
    }
    pub mod direct;
}
`
	result := extractSource(t, source, false)

	outer := findItem(result, "outer")
	require.NotNil(t, outer)
	require.NotNil(t, outer.Details.Module)

	require.Len(t, outer.Details.Module.ModuleReferences, 1)
	direct := outer.Details.Module.ModuleReferences[0]
	assert.Equal(t, []string{"outer/direct.rs", "outer/direct/mod.rs"}, direct.ExpectedPaths)

	require.Len(t, outer.Details.Module.Items, 1)
	inner := outer.Details.Module.Items[0]
	require.NotNil(t, inner.Details.Module)
	require.Len(t, inner.Details.Module.ModuleReferences, 1)
	leaf := inner.Details.Module.ModuleReferences[0]
	assert.Equal(t, []string{"outer/inner/leaf.rs", "outer/inner/leaf/mod.rs"}, leaf.ExpectedPaths)
}

func TestExcludedModuleOmitted(t *testing.T) {
	t.Parallel()

	source := `mod hidden {
    pub fn inside() {}
}
mod hidden_ref;
`
	result := extractSource(t, source, false)

	assert.Nil(t, findItem(result, "hidden"))
	assert.Empty(t, result.FileInfo.ModuleReferences)

	// With includePrivate both forms come back.
	withPrivate := extractSource(t, source, true)
	assert.NotNil(t, findItem(withPrivate, "hidden"))
	require.Len(t, withPrivate.FileInfo.ModuleReferences, 1)
	assert.Equal(t, "hidden_ref", withPrivate.FileInfo.ModuleReferences[0].Name)
	assert.Equal(t, VisibilityPrivate, withPrivate.FileInfo.ModuleReferences[0].Visibility)
}

func TestScopeOrderPreserved(t *testing.T) {
	t.Parallel()

	source := `pub fn alpha() {}
pub struct Beta;
pub fn gamma() {}
`
	result := extractSource(t, source, false)

	var names []string
	for _, item := range result.FileInfo.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"alpha", "Beta", "gamma"}, names)
}
