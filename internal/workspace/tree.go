// Package workspace provides the file tree operations behind the editor's
// sidebar: listing, creating, renaming, and deleting files and folders.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one node of the file tree. Children is non-nil (but empty) for
// directories: the UI expands them on demand rather than walking the whole
// tree up front.
type Entry struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	IsDir    bool    `json:"is_dir"`
	Children []Entry `json:"children,omitempty"`
}

// ReadDirectory lists the immediate entries of a directory, skipping hidden
// entries, with directories first and case-insensitive name order within
// each group.
func ReadDirectory(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("read directory: %s is not a directory", path)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entry := Entry{
			Name:  name,
			Path:  filepath.Join(path, name),
			IsDir: de.IsDir(),
		}
		if entry.IsDir {
			entry.Children = []Entry{}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

// CreateFile creates an empty file. The parent directory must exist and the
// file must not.
func CreateFile(path string) error {
	if parent := filepath.Dir(path); parent != "" {
		if _, err := os.Stat(parent); err != nil {
			return fmt.Errorf("parent directory: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

// CreateFolder creates a single directory. The parent must exist and the
// folder must not.
func CreateFolder(path string) error {
	if parent := filepath.Dir(path); parent != "" {
		if _, err := os.Stat(parent); err != nil {
			return fmt.Errorf("parent directory: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("folder already exists: %s", path)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	return nil
}

// DeleteFile removes a file. Deleting a directory through this function is
// refused; use DeleteFolder.
func DeleteFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("delete file: %s is a directory", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// DeleteFolder removes a directory and everything beneath it.
func DeleteFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("delete folder: %s is not a directory", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

// CountContents counts the visible files and subfolders directly inside a
// directory, for delete-confirmation prompts.
func CountContents(path string) (files, folders int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("count contents: %w", err)
	}
	if !info.IsDir() {
		return 0, 0, fmt.Errorf("count contents: %s is not a directory", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, 0, fmt.Errorf("count contents: %w", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if entry.IsDir() {
			folders++
		} else {
			files++
		}
	}
	return files, folders, nil
}

// Rename gives a file or folder a new name within its current parent and
// returns the new path. The target name must not already exist.
func Rename(oldPath, newName string) (string, error) {
	if _, err := os.Stat(oldPath); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}

	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if _, err := os.Stat(newPath); err == nil {
		return "", fmt.Errorf("rename: %s already exists", newPath)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return newPath, nil
}
