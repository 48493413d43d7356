package outline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/maypok86/otter"
)

// Cache memoizes extraction results keyed by source content and inclusion
// policy. Extraction is a pure function of (source, includePrivate), so a
// cached result is always valid; callers must treat cached results as
// read-only since they are shared.
type Cache struct {
	extractor *Extractor
	results   otter.Cache[string, *Result]
}

// NewCache creates a result cache holding up to capacity entries.
func NewCache(extractor *Extractor, capacity int) (*Cache, error) {
	results, err := otter.MustBuilder[string, *Result](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build result cache: %w", err)
	}

	return &Cache{
		extractor: extractor,
		results:   results,
	}, nil
}

// Extract returns the cached result for the source if present, extracting
// and storing it otherwise.
func (c *Cache) Extract(ctx context.Context, source []byte, opts Options) (*Result, error) {
	key := cacheKey(source, opts.IncludePrivate)
	if result, ok := c.results.Get(key); ok {
		return result, nil
	}

	result, err := c.extractor.Extract(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	c.results.Set(key, result)
	return result, nil
}

// Close releases the cache's resources.
func (c *Cache) Close() {
	c.results.Close()
}

// cacheKey hashes the source content and inclusion policy. SourceHash is
// also what the scan store uses to detect unchanged files.
func cacheKey(source []byte, includePrivate bool) string {
	h := SourceHash(source)
	if includePrivate {
		return h + ":private"
	}
	return h + ":public"
}

// SourceHash returns the hex-encoded content hash of a source snapshot.
func SourceHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
