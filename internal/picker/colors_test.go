package picker

import (
	"testing"

	"github.com/temirov/treepick/internal/types"
)

// TestAssignFolderColorsStablePerFolder verifies files sharing a folder share
// a color and distinct folders receive colors in discovery order.
func TestAssignFolderColorsStablePerFolder(testingHandle *testing.T) {
	entries := []types.FileEntry{
		{AbsolutePath: "/project/src/main.go", RelativePath: "src/main.go"},
		{AbsolutePath: "/project/src/util.go", RelativePath: "src/util.go"},
		{AbsolutePath: "/project/docs/guide.md", RelativePath: "docs/guide.md"},
	}

	folderColors := assignFolderColors(entries)
	if len(folderColors) != 2 {
		testingHandle.Fatalf("assigned %d folder colors, want 2", len(folderColors))
	}
	if folderColors["/project/src"] != folderPalette[0] {
		testingHandle.Errorf("first discovered folder should take the first palette color")
	}
	if folderColors["/project/docs"] != folderPalette[1] {
		testingHandle.Errorf("second discovered folder should take the second palette color")
	}
}

// TestExtensionShadeStable verifies repeated calls for one extension agree and
// the shade stays inside the readable grey ramp.
func TestExtensionShadeStable(testingHandle *testing.T) {
	firstShade := extensionShade(".go")
	secondShade := extensionShade(".go")
	if firstShade != secondShade {
		testingHandle.Fatalf("shade for .go not stable: %v vs %v", firstShade, secondShade)
	}

	shade := string(extensionShade(".md"))
	if len(shade) != 7 || shade[0] != '#' {
		testingHandle.Fatalf("shade %q is not a hex color", shade)
	}
}
