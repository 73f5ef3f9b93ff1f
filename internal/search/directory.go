package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude limits directory search to markdown documents.
const DefaultInclude = "**/*.md"

// FileResult groups the matches found in one file.
type FileResult struct {
	FilePath string  `json:"filePath"`
	Matches  []Match `json:"matches"`
}

// SearchDirectory walks dir recursively and searches every file whose path
// matches the include glob (doublestar syntax; DefaultInclude when empty).
// Hidden files and directories are skipped, as are files that cannot be
// read. Results are ordered by walk order, which is lexical per directory.
func SearchDirectory(query, dir string, opts Options, include string) ([]FileResult, error) {
	if query == "" {
		return nil, nil
	}
	if include == "" {
		include = DefaultInclude
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("search directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search directory: %s is not a directory", dir)
	}

	// Validate the pattern up front so a bad glob fails loudly instead of
	// silently matching nothing.
	if !doublestar.ValidatePattern(include) {
		return nil, fmt.Errorf("invalid include pattern %q", include)
	}

	var results []FileResult
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if ok, _ := doublestar.Match(include, filepath.ToSlash(rel)); !ok {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			// Unreadable files are skipped rather than failing the walk.
			return nil
		}

		matches, err := Search(query, string(content), opts)
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			results = append(results, FileResult{FilePath: path, Matches: matches})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
