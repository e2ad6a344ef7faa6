// Package output renders collected results into their textual form.
package output

import (
	"strings"

	"github.com/temirov/treepick/internal/types"
)

const (
	middleConnector     = "├── "
	lastConnector       = "└── "
	middleContinuation  = "│   "
	lastContinuation    = "    "
	directorySuffix     = "/"
	renderedLineBreak   = "\n"
	emptyRenderedOutput = ""
)

// RenderTreeText produces the conventional box-drawing text form of a render
// tree: the root base name suffixed with a separator, one line per entry,
// connector glyphs marking non-last versus last siblings, and a trailing
// newline. The output is byte-identical across runs on an unchanged tree.
func RenderTreeText(rootNode *types.TreeNode) string {
	if rootNode == nil {
		return emptyRenderedOutput
	}

	var textBuilder strings.Builder
	textBuilder.WriteString(rootNode.Name + directorySuffix + renderedLineBreak)
	writeTreeChildren(&textBuilder, rootNode, "")
	return textBuilder.String()
}

// writeTreeChildren appends the rendered lines for a node's children,
// threading the continuation prefix accumulated from ancestor levels.
func writeTreeChildren(textBuilder *strings.Builder, treeNode *types.TreeNode, prefix string) {
	numberOfChildren := len(treeNode.Children)
	for childIndex, childNode := range treeNode.Children {
		isLastChild := childIndex == numberOfChildren-1
		connector := middleConnector
		childPrefix := prefix + middleContinuation
		if isLastChild {
			connector = lastConnector
			childPrefix = prefix + lastContinuation
		}

		renderedName := childNode.Name
		if childNode.IsDirectory() {
			renderedName += directorySuffix
		}
		textBuilder.WriteString(prefix + connector + renderedName + renderedLineBreak)

		if childNode.IsDirectory() {
			writeTreeChildren(textBuilder, childNode, childPrefix)
		}
	}
}
