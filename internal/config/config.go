// Package config loads ignore files and application configuration for treepick.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/treepick/internal/utils"
)

// DefaultIgnorePatterns returns the built-in exclusion rules used when no
// configuration overrides them. The exact contents are configuration, not
// semantics: version-control directories, bytecode caches, virtual
// environments, and log files.
func DefaultIgnorePatterns() []string {
	return []string{
		".git/",
		"__pycache__/",
		"venv/",
		"node_modules/",
		"*.pyc",
		"*.log",
	}
}

// IgnoreConfiguration describes how an ignore set is assembled for one
// invocation. All fields are immutable once constructed; nothing in the
// loader mutates process-wide state.
type IgnoreConfiguration struct {
	// DefaultPatterns seed the ignore set before any file is read.
	DefaultPatterns []string
	// ExtraPatterns are caller-supplied patterns appended after the defaults.
	ExtraPatterns []string
	// IgnoreFileNames are consulted under the root directory, in order.
	// Missing files are silently skipped.
	IgnoreFileNames []string
}

// LoadIgnorePatterns assembles the ordered ignore set for rootDirectory:
// defaults, then extras, then surviving lines of each ignore file present.
// Blank lines and lines starting with '#' are skipped. Duplicates are
// harmless but removed for tidier reporting.
func LoadIgnorePatterns(rootDirectory string, configuration IgnoreConfiguration) ([]string, error) {
	var combinedPatterns []string
	combinedPatterns = append(combinedPatterns, configuration.DefaultPatterns...)

	for _, extraPattern := range configuration.ExtraPatterns {
		trimmedPattern := strings.TrimSpace(extraPattern)
		if trimmedPattern == "" {
			continue
		}
		combinedPatterns = append(combinedPatterns, trimmedPattern)
	}

	for _, ignoreFileName := range configuration.IgnoreFileNames {
		ignoreFilePath := filepath.Join(rootDirectory, ignoreFileName)
		filePatterns, loadError := loadIgnoreFilePatterns(ignoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", ignoreFileName, rootDirectory, loadError)
		}
		combinedPatterns = append(combinedPatterns, filePatterns...)
	}

	return utils.DeduplicatePatterns(combinedPatterns), nil
}

// loadIgnoreFilePatterns reads one ignore file and returns its patterns.
// A missing file yields no patterns and no error.
//
// #nosec G304
func loadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if utils.IsCommentOrBlankLine(trimmedLine) {
			continue
		}
		patterns = append(patterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return patterns, nil
}
