// Package utils contains general helper functions used across the treepick tool.
package utils

import (
	"path/filepath"
	"strings"
)

// Ignore file constants used across the project.
const (
	// TreeIgnoreFileName is the ignore file consulted by the tree command.
	TreeIgnoreFileName = ".treeignore"
	// GitIgnoreFileName is the Git ignore file consulted by the pick command.
	GitIgnoreFileName = ".gitignore"
	// SelectIgnoreFileName is the picker-specific ignore file.
	SelectIgnoreFileName = ".selectignore"
)

const (
	pathSegmentSeparator = "/"
	directoryPatternMark = "/"
	commentLinePrefix    = "#"
)

// MatchMode selects how a Matcher interprets the candidate path.
type MatchMode int

const (
	// MatchEntryName evaluates patterns against a single entry name only.
	// Used by the tree command, which filters one directory level at a time.
	MatchEntryName MatchMode = iota
	// MatchPathSegments evaluates directory patterns against every segment of
	// a root-relative path. Used by the pick command, where matching any
	// ancestor segment excludes the whole path.
	MatchPathSegments
)

// Matcher decides whether paths are excluded by a fixed pattern list.
// Patterns ending in a separator are directory patterns compared by segment
// equality after the separator is stripped; all other patterns are globs
// matched against the base name only. Every pattern carries equal weight and
// the first match excludes.
type Matcher struct {
	patterns     []string
	serviceFiles map[string]struct{}
	mode         MatchMode
}

// NewMatcher builds a Matcher for the provided patterns and mode. The
// serviceFileNames are the configured ignore-file names, which are always
// excluded regardless of pattern content.
func NewMatcher(patterns []string, serviceFileNames []string, mode MatchMode) *Matcher {
	serviceFiles := make(map[string]struct{}, len(serviceFileNames))
	for _, serviceFileName := range serviceFileNames {
		serviceFiles[serviceFileName] = struct{}{}
	}
	return &Matcher{
		patterns:     append([]string(nil), patterns...),
		serviceFiles: serviceFiles,
		mode:         mode,
	}
}

// Matches reports whether the candidate path is excluded. The candidate is an
// entry name in MatchEntryName mode and a root-relative path in
// MatchPathSegments mode.
func (matcher *Matcher) Matches(candidatePath string) bool {
	normalizedPath := filepath.ToSlash(candidatePath)
	pathSegments := strings.Split(normalizedPath, pathSegmentSeparator)
	baseName := pathSegments[len(pathSegments)-1]

	if _, isServiceFile := matcher.serviceFiles[baseName]; isServiceFile {
		return true
	}

	for _, patternValue := range matcher.patterns {
		if strings.HasSuffix(patternValue, directoryPatternMark) {
			patternDirectory := strings.TrimSuffix(patternValue, directoryPatternMark)
			if matcher.directoryPatternMatches(patternDirectory, pathSegments) {
				return true
			}
			continue
		}
		isMatched, matchError := filepath.Match(patternValue, baseName)
		if matchError == nil && isMatched {
			return true
		}
	}
	return false
}

// directoryPatternMatches evaluates a directory-exact pattern against the
// candidate segments according to the matcher mode.
func (matcher *Matcher) directoryPatternMatches(patternDirectory string, pathSegments []string) bool {
	if matcher.mode == MatchPathSegments {
		return ContainsString(pathSegments, patternDirectory)
	}
	return pathSegments[len(pathSegments)-1] == patternDirectory
}

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// IsCommentOrBlankLine reports whether an ignore-file line carries no pattern.
func IsCommentOrBlankLine(line string) bool {
	trimmedLine := strings.TrimSpace(line)
	return trimmedLine == "" || strings.HasPrefix(trimmedLine, commentLinePrefix)
}

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, absoluteError := filepath.Abs(root)
	if absoluteError != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relativeError := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relativeError != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}
