package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/treepick/internal/utils"
)

// TestLoadIgnorePatternsOrderAndFiltering verifies defaults, extras, and file
// lines are combined in order with comments and blank lines skipped.
func TestLoadIgnorePatternsOrderAndFiltering(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFileContent := "# build artifacts\n\nbuild/\n  dist/  \n\n# logs\n*.tmp\n"
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.TreeIgnoreFileName), ignoreFileContent)

	patterns, loadError := LoadIgnorePatterns(rootDirectory, IgnoreConfiguration{
		DefaultPatterns: []string{".git/", "*.log"},
		ExtraPatterns:   []string{"*.bak", "  ", "cache/"},
		IgnoreFileNames: []string{utils.TreeIgnoreFileName},
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnorePatterns returned error: %v", loadError)
	}

	expected := []string{".git/", "*.log", "*.bak", "cache/", "build/", "dist/", "*.tmp"}
	if !reflect.DeepEqual(patterns, expected) {
		testingHandle.Fatalf("patterns = %v, want %v", patterns, expected)
	}
}

// TestLoadIgnorePatternsMissingFiles verifies absent ignore files are skipped silently.
func TestLoadIgnorePatternsMissingFiles(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	patterns, loadError := LoadIgnorePatterns(rootDirectory, IgnoreConfiguration{
		DefaultPatterns: DefaultIgnorePatterns(),
		IgnoreFileNames: []string{utils.GitIgnoreFileName, utils.SelectIgnoreFileName},
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnorePatterns returned error: %v", loadError)
	}
	if !reflect.DeepEqual(patterns, DefaultIgnorePatterns()) {
		testingHandle.Fatalf("patterns = %v, want built-in defaults", patterns)
	}
}

// TestLoadIgnorePatternsMultipleFilesInOrder verifies later files append after earlier ones.
func TestLoadIgnorePatternsMultipleFilesInOrder(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), "first/\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.SelectIgnoreFileName), "second/\n")

	patterns, loadError := LoadIgnorePatterns(rootDirectory, IgnoreConfiguration{
		IgnoreFileNames: []string{utils.GitIgnoreFileName, utils.SelectIgnoreFileName},
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnorePatterns returned error: %v", loadError)
	}
	expected := []string{"first/", "second/"}
	if !reflect.DeepEqual(patterns, expected) {
		testingHandle.Fatalf("patterns = %v, want %v", patterns, expected)
	}
}

// TestLoadIgnorePatternsDeduplicates verifies repeated patterns collapse to the
// first occurrence without reordering.
func TestLoadIgnorePatternsDeduplicates(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.TreeIgnoreFileName), ".git/\n*.log\nvendor/\n")

	patterns, loadError := LoadIgnorePatterns(rootDirectory, IgnoreConfiguration{
		DefaultPatterns: []string{".git/", "*.log"},
		IgnoreFileNames: []string{utils.TreeIgnoreFileName},
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnorePatterns returned error: %v", loadError)
	}
	expected := []string{".git/", "*.log", "vendor/"}
	if !reflect.DeepEqual(patterns, expected) {
		testingHandle.Fatalf("patterns = %v, want %v", patterns, expected)
	}
}

func writeTestFile(testingHandle *testing.T, filePath, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}
