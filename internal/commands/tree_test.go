package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/treepick/internal/config"
	"github.com/temirov/treepick/internal/output"
	"github.com/temirov/treepick/internal/utils"
)

func createTestDirectory(testingHandle *testing.T, directoryPath string) {
	testingHandle.Helper()
	if mkdirError := os.MkdirAll(directoryPath, 0o755); mkdirError != nil {
		testingHandle.Fatalf("failed to create directory %s: %v", directoryPath, mkdirError)
	}
}

func createTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to create file %s: %v", filePath, writeError)
	}
}

// TestGetTreeDataDefaultExclusions verifies the default patterns and the
// ignore file itself disappear from the render tree while regular entries
// survive with their descendants.
func TestGetTreeDataDefaultExclusions(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	createTestDirectory(testingHandle, filepath.Join(rootDirectory, "src"))
	createTestFile(testingHandle, filepath.Join(rootDirectory, "src", "main.py"), "print('hi')\n")
	createTestDirectory(testingHandle, filepath.Join(rootDirectory, "src", "__pycache__"))
	createTestFile(testingHandle, filepath.Join(rootDirectory, "src", "__pycache__", "main.pyc"), "\x00")
	createTestDirectory(testingHandle, filepath.Join(rootDirectory, ".git"))
	createTestFile(testingHandle, filepath.Join(rootDirectory, ".git", "config"), "[core]\n")
	createTestFile(testingHandle, filepath.Join(rootDirectory, utils.TreeIgnoreFileName), "")

	matcher := utils.NewMatcher(config.DefaultIgnorePatterns(), []string{utils.TreeIgnoreFileName}, utils.MatchEntryName)
	treeBuilder := &TreeBuilder{Matcher: matcher}

	rootNode, buildError := treeBuilder.GetTreeData(rootDirectory)
	if buildError != nil {
		testingHandle.Fatalf("GetTreeData returned error: %v", buildError)
	}

	if len(rootNode.Children) != 1 || rootNode.Children[0].Name != "src" {
		testingHandle.Fatalf("expected only src under root, got %d children", len(rootNode.Children))
	}
	sourceNode := rootNode.Children[0]
	if len(sourceNode.Children) != 1 || sourceNode.Children[0].Name != "main.py" {
		testingHandle.Fatalf("expected only main.py under src, got %d children", len(sourceNode.Children))
	}
	if !sourceNode.IsDirectory() {
		testingHandle.Errorf("src should be a directory node")
	}
	if sourceNode.Children[0].IsDirectory() {
		testingHandle.Errorf("main.py should be a file node")
	}
}

// TestGetTreeDataExcludedDirectoryNotDescended verifies an excluded directory
// hides its entire subtree even when descendants would not match.
func TestGetTreeDataExcludedDirectoryNotDescended(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	createTestDirectory(testingHandle, filepath.Join(rootDirectory, "node_modules", "lib"))
	createTestFile(testingHandle, filepath.Join(rootDirectory, "node_modules", "lib", "index.js"), "")
	createTestFile(testingHandle, filepath.Join(rootDirectory, "keep.txt"), "")

	matcher := utils.NewMatcher([]string{"node_modules/"}, nil, utils.MatchEntryName)
	treeBuilder := &TreeBuilder{Matcher: matcher}

	rootNode, buildError := treeBuilder.GetTreeData(rootDirectory)
	if buildError != nil {
		testingHandle.Fatalf("GetTreeData returned error: %v", buildError)
	}
	if len(rootNode.Children) != 1 || rootNode.Children[0].Name != "keep.txt" {
		testingHandle.Fatalf("expected only keep.txt, got %v", rootNode.Children)
	}
}

// TestGetTreeDataRenderIdempotent verifies two runs over an unchanged
// directory render byte-identical output.
func TestGetTreeDataRenderIdempotent(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	createTestDirectory(testingHandle, filepath.Join(rootDirectory, "docs"))
	createTestFile(testingHandle, filepath.Join(rootDirectory, "docs", "guide.md"), "# guide\n")
	createTestFile(testingHandle, filepath.Join(rootDirectory, "README.md"), "")

	matcher := utils.NewMatcher(config.DefaultIgnorePatterns(), nil, utils.MatchEntryName)
	treeBuilder := &TreeBuilder{Matcher: matcher}

	firstTree, firstError := treeBuilder.GetTreeData(rootDirectory)
	if firstError != nil {
		testingHandle.Fatalf("first GetTreeData returned error: %v", firstError)
	}
	secondTree, secondError := treeBuilder.GetTreeData(rootDirectory)
	if secondError != nil {
		testingHandle.Fatalf("second GetTreeData returned error: %v", secondError)
	}

	firstRender := output.RenderTreeText(firstTree)
	secondRender := output.RenderTreeText(secondTree)
	if firstRender != secondRender {
		testingHandle.Fatalf("renders differ:\n%s\n---\n%s", firstRender, secondRender)
	}
}

// TestGetTreeDataMissingRoot verifies a nonexistent root is a fatal error.
func TestGetTreeDataMissingRoot(testingHandle *testing.T) {
	missingPath := filepath.Join(testingHandle.TempDir(), "does-not-exist")
	matcher := utils.NewMatcher(nil, nil, utils.MatchEntryName)
	treeBuilder := &TreeBuilder{Matcher: matcher}

	if _, buildError := treeBuilder.GetTreeData(missingPath); buildError == nil {
		testingHandle.Fatalf("expected error for missing root directory")
	}
}
