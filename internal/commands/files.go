package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/temirov/treepick/internal/types"
	"github.com/temirov/treepick/internal/utils"
)

const (
	// warningSkipEntryFormat is used when a walked entry cannot be inspected.
	warningSkipEntryFormat = "Warning: skipping %s due to error: %v"

	// errorWalkRootFormat is used when the walk cannot start at the root.
	errorWalkRootFormat = "walking %s: %w"
)

// FileLister produces the flat file list for the pick command. Directories
// matched by the Matcher are pruned before descent, so their descendants are
// never visited; matched files are dropped from the result. Symbolic links
// are not followed into directories.
type FileLister struct {
	Matcher *utils.Matcher
	Warn    func(string)
}

// ListFiles walks rootDirectoryPath depth-first and returns the surviving
// files. The result order is filepath.WalkDir's lexical order, which makes
// the listing, and therefore key assignment, deterministic across runs.
func (fileLister *FileLister) ListFiles(rootDirectoryPath string) ([]types.FileEntry, error) {
	absoluteRootDirPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}

	var entries []types.FileEntry

	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			if currentPath == absoluteRootDirPath {
				return walkError
			}
			fileLister.warn(fmt.Sprintf(warningSkipEntryFormat, currentPath, walkError))
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath := utils.RelativePathOrSelf(currentPath, absoluteRootDirPath)
		if relativePath == "." {
			return nil
		}

		if fileLister.Matcher.Matches(relativePath) {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !directoryEntry.IsDir() {
			entries = append(entries, types.FileEntry{
				AbsolutePath: currentPath,
				RelativePath: relativePath,
			})
		}
		return nil
	}

	if walkError := filepath.WalkDir(absoluteRootDirPath, walkFunction); walkError != nil {
		return nil, fmt.Errorf(errorWalkRootFormat, rootDirectoryPath, walkError)
	}

	return entries, nil
}

func (fileLister *FileLister) warn(message string) {
	if fileLister.Warn != nil {
		fileLister.Warn(message)
	}
}
