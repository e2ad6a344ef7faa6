package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/treepick/internal/services/clipboard"
	"github.com/temirov/treepick/internal/types"
	"github.com/temirov/treepick/internal/utils"
)

const (
	// fileHeaderFormat introduces each block of the artifact with its source path.
	fileHeaderFormat = "# %s\n%s\n"

	// warningTreeSnapshotMissingFormat is used when no tree snapshot is found.
	warningTreeSnapshotMissingFormat = "Warning: %s does not exist and will not be included"
	// warningFileVanishedFormat is used when a selected file disappeared before reading.
	warningFileVanishedFormat = "Warning: could not find file %s, skipping"
	// warningFileUndecodableFormat is used when a selected file is not text.
	warningFileUndecodableFormat = "Warning: could not decode file %s as text, skipping"
	// warningFileReadFormat is used for any other read error on a selected file.
	warningFileReadFormat = "Warning: could not read file %s: %v, skipping"
	// warningClipboardFormat is used when the clipboard copy fails.
	warningClipboardFormat = "Warning: failed to copy to clipboard: %v"

	// errorCreateOutputFormat is used when the artifact file cannot be created.
	errorCreateOutputFormat = "creating output file %s: %w"
	// errorWriteOutputFormat is used when writing to the artifact file fails.
	errorWriteOutputFormat = "writing output file %s: %w"
)

// Concatenator assembles the combined artifact from a selection over the flat
// file list. The artifact is written incrementally to the output file so
// partial output is observable on failure, and the full text is mirrored to
// the clipboard as one string when a Copier is configured.
type Concatenator struct {
	RootDirectory  string
	OutputFileName string
	TreeFileName   string
	Clipboard      clipboard.Copier
	Warn           func(string)
}

// Concatenate writes the artifact for the selected indexes, ordered by
// ascending original index, and returns the artifact text and its path.
// Individual unreadable files are reported and skipped, never fatal.
func (concatenator *Concatenator) Concatenate(selectedIndexes []int, files []types.FileEntry) (string, string, error) {
	orderedIndexes := append([]int(nil), selectedIndexes...)
	sort.Ints(orderedIndexes)

	outputPath := filepath.Join(concatenator.RootDirectory, concatenator.OutputFileName)
	outputFile, createError := os.Create(outputPath)
	if createError != nil {
		return "", "", fmt.Errorf(errorCreateOutputFormat, outputPath, createError)
	}
	defer outputFile.Close()

	var artifactBuilder strings.Builder

	appendBlock := func(sourcePath string, content string) error {
		block := fmt.Sprintf(fileHeaderFormat, sourcePath, content)
		artifactBuilder.WriteString(block)
		if _, writeError := outputFile.WriteString(block); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, outputPath, writeError)
		}
		return nil
	}

	treeSnapshotPath := filepath.Join(concatenator.RootDirectory, concatenator.TreeFileName)
	treeSnapshotData, treeReadError := os.ReadFile(treeSnapshotPath)
	if treeReadError != nil {
		concatenator.warn(fmt.Sprintf(warningTreeSnapshotMissingFormat, treeSnapshotPath))
	} else {
		if appendError := appendBlock(treeSnapshotPath, string(treeSnapshotData)); appendError != nil {
			return "", "", appendError
		}
	}

	for _, selectedIndex := range orderedIndexes {
		if selectedIndex < 0 || selectedIndex >= len(files) {
			continue
		}
		filePath := files[selectedIndex].AbsolutePath
		fileData, fileReadError := os.ReadFile(filePath)
		if fileReadError != nil {
			if os.IsNotExist(fileReadError) {
				concatenator.warn(fmt.Sprintf(warningFileVanishedFormat, filePath))
			} else {
				concatenator.warn(fmt.Sprintf(warningFileReadFormat, filePath, fileReadError))
			}
			continue
		}
		if utils.IsBinary(fileData) {
			concatenator.warn(fmt.Sprintf(warningFileUndecodableFormat, filePath))
			continue
		}
		if appendError := appendBlock(filePath, string(fileData)); appendError != nil {
			return "", "", appendError
		}
	}

	artifactText := artifactBuilder.String()

	if concatenator.Clipboard != nil {
		if copyError := concatenator.Clipboard.Copy(artifactText); copyError != nil {
			concatenator.warn(fmt.Sprintf(warningClipboardFormat, copyError))
		}
	}

	return artifactText, outputPath, nil
}

func (concatenator *Concatenator) warn(message string) {
	if concatenator.Warn != nil {
		concatenator.Warn(message)
	}
}
