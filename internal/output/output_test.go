package output

import (
	"testing"

	"github.com/temirov/treepick/internal/types"
)

// TestRenderTreeTextGlyphs verifies connector and continuation glyphs for a
// nested tree with non-last and last siblings at multiple depths.
func TestRenderTreeTextGlyphs(testingHandle *testing.T) {
	rootNode := &types.TreeNode{
		Name: "project",
		Type: types.NodeTypeDirectory,
		Children: []*types.TreeNode{
			{
				Name: "src",
				Type: types.NodeTypeDirectory,
				Children: []*types.TreeNode{
					{Name: "main.go", Type: types.NodeTypeFile},
					{Name: "util.go", Type: types.NodeTypeFile},
				},
			},
			{
				Name: "docs",
				Type: types.NodeTypeDirectory,
				Children: []*types.TreeNode{
					{Name: "guide.md", Type: types.NodeTypeFile},
				},
			},
			{Name: "README.md", Type: types.NodeTypeFile},
		},
	}

	expected := "project/\n" +
		"├── src/\n" +
		"│   ├── main.go\n" +
		"│   └── util.go\n" +
		"├── docs/\n" +
		"│   └── guide.md\n" +
		"└── README.md\n"

	if rendered := RenderTreeText(rootNode); rendered != expected {
		testingHandle.Fatalf("rendered tree:\n%q\nwant:\n%q", rendered, expected)
	}
}

// TestRenderTreeTextEmptyDirectory verifies a childless root renders as one
// line with the directory suffix and trailing newline.
func TestRenderTreeTextEmptyDirectory(testingHandle *testing.T) {
	rootNode := &types.TreeNode{Name: "empty", Type: types.NodeTypeDirectory}
	if rendered := RenderTreeText(rootNode); rendered != "empty/\n" {
		testingHandle.Fatalf("rendered tree = %q, want %q", rendered, "empty/\n")
	}
}

// TestRenderTreeTextNilRoot verifies a nil root renders as nothing.
func TestRenderTreeTextNilRoot(testingHandle *testing.T) {
	if rendered := RenderTreeText(nil); rendered != "" {
		testingHandle.Fatalf("rendered tree = %q, want empty", rendered)
	}
}

// TestRenderTreeTextEmptyDirectorySuffix verifies nested empty directories
// still carry the directory suffix.
func TestRenderTreeTextEmptyDirectorySuffix(testingHandle *testing.T) {
	rootNode := &types.TreeNode{
		Name: "root",
		Type: types.NodeTypeDirectory,
		Children: []*types.TreeNode{
			{Name: "hollow", Type: types.NodeTypeDirectory},
		},
	}
	expected := "root/\n└── hollow/\n"
	if rendered := RenderTreeText(rootNode); rendered != expected {
		testingHandle.Fatalf("rendered tree = %q, want %q", rendered, expected)
	}
}
