package picker

import (
	"fmt"
	"hash/fnv"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/treepick/internal/types"
)

// folderPalette holds distinct colors readable on a dark background,
// assigned to folders in discovery order.
var folderPalette = []lipgloss.Color{
	lipgloss.Color("9"),   // bright red
	lipgloss.Color("10"),  // bright green
	lipgloss.Color("11"),  // bright yellow
	lipgloss.Color("12"),  // bright blue
	lipgloss.Color("13"),  // bright magenta
	lipgloss.Color("14"),  // bright cyan
	lipgloss.Color("15"),  // bright white
	lipgloss.Color("214"), // orange
	lipgloss.Color("39"),  // deep sky blue
	lipgloss.Color("48"),  // spring green
	lipgloss.Color("220"), // gold
	lipgloss.Color("198"), // deep pink
	lipgloss.Color("37"),  // light sea green
	lipgloss.Color("129"), // purple
	lipgloss.Color("228"), // khaki
	lipgloss.Color("162"), // medium violet red
}

// assignFolderColors maps each folder appearing in the file list to a palette
// color. Folders are keyed by their containing-directory path; the mapping is
// stable for a given listing because the list order is deterministic.
func assignFolderColors(entries []types.FileEntry) map[string]lipgloss.Color {
	folderColors := make(map[string]lipgloss.Color)
	for _, entry := range entries {
		folderPath := filepath.Dir(entry.AbsolutePath)
		if _, assigned := folderColors[folderPath]; assigned {
			continue
		}
		folderColors[folderPath] = folderPalette[len(folderColors)%len(folderPalette)]
	}
	return folderColors
}

// extensionShade derives a stable grey shade for a file extension. The
// mapping is presentation only; any stable, visually distinct choice is
// acceptable, so an FNV-1a hash folded into a readable grey ramp is used.
func extensionShade(extension string) lipgloss.Color {
	hasher := fnv.New32a()
	hasher.Write([]byte(extension))
	greyLevel := 100 + int(hasher.Sum32()%120)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", greyLevel, greyLevel, greyLevel))
}
