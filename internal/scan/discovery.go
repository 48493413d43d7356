// Package scan walks a directory tree and extracts the outline of every
// Rust source file it discovers, caching results keyed by content hash.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds the pattern string, its compiled glob, and - for
// patterns starting with **/ - a simplified variant so "**/*.rs" also
// matches root-level files like "main.rs".
type compiledPattern struct {
	pattern    string
	glob       glob.Glob
	simplified glob.Glob
}

func compilePattern(pattern string) (compiledPattern, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return compiledPattern{}, err
	}

	cp := compiledPattern{pattern: pattern, glob: g}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if simplified, err := glob.Compile(rest, '/'); err == nil {
			cp.simplified = simplified
		}
	}
	return cp, nil
}

func (cp compiledPattern) match(rel string) bool {
	if cp.glob.Match(rel) {
		return true
	}
	return cp.simplified != nil && !strings.Contains(rel, "/") && cp.simplified.Match(rel)
}

// Discovery finds Rust source files under a root directory using glob
// patterns with ignore rules.
type Discovery struct {
	rootDir        string
	codePatterns   []compiledPattern
	ignorePatterns []compiledPattern
}

// NewDiscovery compiles the code and ignore patterns for a root directory.
func NewDiscovery(rootDir string, codePatterns, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{rootDir: rootDir}

	for _, pattern := range codePatterns {
		cp, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		d.codePatterns = append(d.codePatterns, cp)
	}

	for _, pattern := range ignorePatterns {
		cp, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		d.ignorePatterns = append(d.ignorePatterns, cp)
	}

	return d, nil
}

// Discover walks the tree and returns matching files as sorted paths
// relative to the root.
func (d *Discovery) Discover() ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(d.rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(d.rootDir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel != "." && d.ignored(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if d.ignored(rel) {
			return nil
		}
		if d.matchesCode(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (d *Discovery) matchesCode(rel string) bool {
	for _, p := range d.codePatterns {
		if p.match(rel) {
			return true
		}
	}
	return false
}

// ignored reports whether a relative path (directories carry a trailing
// slash) matches an ignore pattern. Directories are also tested with a /**
// suffix so "target/**" prunes the target directory itself.
func (d *Discovery) ignored(rel string) bool {
	trimmed := strings.TrimSuffix(rel, "/")
	for _, p := range d.ignorePatterns {
		if p.match(trimmed) || p.glob.Match(trimmed+"/**") {
			return true
		}
	}
	return false
}
