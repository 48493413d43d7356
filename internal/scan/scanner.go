package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"rustmap/internal/outline"
	"rustmap/internal/storage"
)

// Progress receives scan lifecycle notifications. Implementations must
// tolerate concurrent OnFile calls.
type Progress interface {
	OnStart(totalFiles int)
	OnFile(path string, err error)
	OnComplete(summary Summary)
}

// Summary totals one scan run.
type Summary struct {
	Scanned  int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// Scanner extracts outlines for many files in parallel and persists them.
type Scanner struct {
	extractor      *outline.Extractor
	store          *storage.Store
	includePrivate bool
	workers        int
}

// NewScanner creates a scanner writing into store. workers <= 0 selects one
// worker per CPU.
func NewScanner(extractor *outline.Extractor, store *storage.Store, includePrivate bool, workers int) *Scanner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scanner{
		extractor:      extractor,
		store:          store,
		includePrivate: includePrivate,
		workers:        workers,
	}
}

// ScanFiles extracts every file (paths relative to rootDir) and upserts the
// results. Files whose content hash matches the cached outline are skipped.
// Each file is an independent extraction over its own snapshot, so workers
// need no coordination beyond the store.
func (s *Scanner) ScanFiles(ctx context.Context, rootDir string, files []string, progress Progress) (Summary, error) {
	start := time.Now()
	if progress != nil {
		progress.OnStart(len(files))
	}

	var mu sync.Mutex
	summary := Summary{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			skipped, err := s.scanOne(ctx, rootDir, file)

			mu.Lock()
			switch {
			case err != nil:
				summary.Failed++
			case skipped:
				summary.Skipped++
			default:
				summary.Scanned++
			}
			mu.Unlock()

			if progress != nil {
				progress.OnFile(file, err)
			}
			// A single unreadable or unstorable file should not abort the
			// scan; it is counted and reported through Progress.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	summary.Duration = time.Since(start)
	if progress != nil {
		progress.OnComplete(summary)
	}
	return summary, nil
}

// scanOne reads, hashes, extracts, and stores a single file. Returns
// skipped=true when the cached outline is already current.
func (s *Scanner) scanOne(ctx context.Context, rootDir, file string) (bool, error) {
	source, err := os.ReadFile(filepath.Join(rootDir, file))
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", file, err)
	}

	hash := outline.SourceHash(source)
	current, err := s.store.HasCurrent(file, hash)
	if err != nil {
		return false, err
	}
	if current {
		return true, nil
	}

	result, err := s.extractor.Extract(ctx, source, outline.Options{
		IncludePrivate: s.includePrivate,
		FilePath:       file,
	})
	if err != nil {
		return false, err
	}

	return false, s.store.Upsert(file, hash, result)
}
