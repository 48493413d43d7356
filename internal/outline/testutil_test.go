package outline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// extractSource runs a full extraction over inline Rust source.
func extractSource(t *testing.T, source string, includePrivate bool) *Result {
	t.Helper()

	result, err := New().Extract(context.Background(), []byte(source), Options{
		IncludePrivate: includePrivate,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

// findItem returns the first top-level item with the given name, or nil.
func findItem(result *Result, name string) *ItemInfo {
	for i := range result.FileInfo.Items {
		if result.FileInfo.Items[i].Name == name {
			return &result.FileInfo.Items[i]
		}
	}
	return nil
}
