// Package types defines every cross-package data structure used by the treepick CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// TreeNode represents one included filesystem entry of a render tree.
// The tree is built once per invocation and read-only afterward.
type TreeNode struct {
	Path     string
	Name     string
	Type     string
	Children []*TreeNode
}

// IsDirectory reports whether the node represents a directory.
func (node *TreeNode) IsDirectory() bool {
	return node != nil && node.Type == NodeTypeDirectory
}

// FileEntry is one file discovered by the flat walk, identified by its
// absolute path and its path relative to the scanned root.
type FileEntry struct {
	AbsolutePath string
	RelativePath string
}
