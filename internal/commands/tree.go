// Package commands contains the core traversal and concatenation logic for each command.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/treepick/internal/types"
	"github.com/temirov/treepick/internal/utils"
)

const (
	// warningSkipSubdirFormat is used when a subdirectory cannot be read.
	warningSkipSubdirFormat = "Warning: skipping subdirectory %s due to error: %v"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// errorBuildTreeFormat is used when building the tree fails.
	errorBuildTreeFormat = "building tree for %s: %w"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// TreeBuilder produces the render tree for the tree command.
// Entries matched by the Matcher are excluded; matched directories are never
// descended into, so their descendants cannot appear.
type TreeBuilder struct {
	Matcher *utils.Matcher
	Warn    func(string)
}

// GetTreeData generates the render tree for rootDirectoryPath, returning the
// root node named after the directory's base name. Directories and files
// interleave in one lexicographic order per level.
func (treeBuilder *TreeBuilder) GetTreeData(rootDirectoryPath string) (*types.TreeNode, error) {
	absoluteRootDirPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}

	rootNode := &types.TreeNode{
		Path: absoluteRootDirPath,
		Name: filepath.Base(absoluteRootDirPath),
		Type: types.NodeTypeDirectory,
	}

	children, buildError := treeBuilder.buildTreeNodes(absoluteRootDirPath)
	if buildError != nil {
		return nil, fmt.Errorf(errorBuildTreeFormat, rootDirectoryPath, buildError)
	}
	rootNode.Children = children

	return rootNode, nil
}

// buildTreeNodes recursively builds child nodes for one directory level.
// os.ReadDir returns entries sorted by name, which fixes the sibling order.
func (treeBuilder *TreeBuilder) buildTreeNodes(currentDirectoryPath string) ([]*types.TreeNode, error) {
	var nodes []*types.TreeNode

	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	for _, directoryEntry := range directoryEntries {
		if treeBuilder.Matcher.Matches(directoryEntry.Name()) {
			continue
		}

		childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		node := &types.TreeNode{
			Path: childPath,
			Name: directoryEntry.Name(),
		}

		if directoryEntry.IsDir() {
			node.Type = types.NodeTypeDirectory
			childNodes, buildError := treeBuilder.buildTreeNodes(childPath)
			if buildError != nil {
				treeBuilder.warn(fmt.Sprintf(warningSkipSubdirFormat, childPath, buildError))
				node.Children = nil
			} else {
				node.Children = childNodes
			}
		} else {
			node.Type = types.NodeTypeFile
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (treeBuilder *TreeBuilder) warn(message string) {
	if treeBuilder.Warn != nil {
		treeBuilder.Warn(message)
	}
}
