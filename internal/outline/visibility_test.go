package outline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for visibility classification:
// - Each modifier form maps to its tag, checked through a full extraction
// - pub(in path) keeps the full qualifying path text
// - Missing modifier defaults to private
// - Inclusion policy admits everything when includePrivate is set

func TestVisibilityClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		modifier string
		want     Visibility
	}{
		{"", VisibilityPrivate},
		{"pub", VisibilityPublic},
		{"pub(crate)", VisibilityPublicCrate},
		{"pub(super)", VisibilityPublicSuper},
		{"pub(in crate::detail)", Visibility("pub(in crate::detail)")},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			t.Parallel()

			source := fmt.Sprintf("%s fn target() {}", tt.modifier)
			result := extractSource(t, source, true)

			item := findItem(result, "target")
			require.NotNil(t, item, "function target should be extracted")
			assert.Equal(t, tt.want, item.Visibility)
		})
	}
}

func TestIncluded(t *testing.T) {
	t.Parallel()

	assert.True(t, included(VisibilityPublic, false))
	assert.True(t, included(VisibilityPublicCrate, false))
	assert.True(t, included(VisibilityPublicSuper, false))
	assert.True(t, included(Visibility("pub(in crate::a)"), false))
	assert.False(t, included(VisibilityPrivate, false))
	assert.True(t, included(VisibilityPrivate, true))
}
