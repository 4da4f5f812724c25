// Package fileutils wraps the file system operations used by the command
// line, the batch converter and the public builder.
package fileutils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/bank-statement/internal/parsererror"
)

// FileExists reports whether filePath exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists reports whether dirPath exists and is a directory.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates dirPath and its parents when missing.
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ReadText reads a whole statement file as text. Failures are returned as
// *parsererror.ReadContentError.
func ReadText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", &parsererror.ReadContentError{Path: filePath, Err: err}
	}
	return string(data), nil
}

// CreateFile creates or truncates filePath, creating parent directories.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// ListFiles returns the regular files directly inside dirPath, sorted by
// name. With extensions given (".qfx", ".csv"), only files carrying one of
// them are listed, ignoring case.
func ListFiles(dirPath string, extensions ...string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		if len(extensions) > 0 && !hasExtension(entry.Name(), extensions) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ReplaceExtension swaps the extension of the base name of path for ext.
func ReplaceExtension(path, ext string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
