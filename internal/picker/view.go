package picker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	selectedMark   = "✔"
	unselectedMark = " "

	headerSelection = "S"
	headerKey       = "Key"
	headerFilename  = "Filename"
	headerFolder    = "Folder"
	headerExtension = "Ext"

	overflowNotice = "Too many files: entries beyond the key alphabet have no key this session."
	helpFooter     = "press a key to toggle, enter to confirm, esc to abort"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	folderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	footerStyle   = lipgloss.NewStyle().Faint(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the full file table with current selection marks. It is
// redrawn by the bubbletea runtime after every handled event.
func (session Session) View() string {
	if session.state != StateBrowsing {
		return ""
	}

	folderColors := assignFolderColors(session.entries)
	filenameWidth, folderWidth := session.columnWidths()

	var viewBuilder strings.Builder
	viewBuilder.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-2s %-3s %-*s %-*s %s",
		headerSelection, headerKey, filenameWidth, headerFilename, folderWidth, headerFolder, headerExtension,
	)))
	viewBuilder.WriteString("\n")

	for entryIndex, entry := range session.entries {
		assignedKey := "?"
		if keyRune, hasKey := session.indexToKey[entryIndex]; hasKey {
			assignedKey = string(keyRune)
		}

		mark := unselectedMark
		if session.IsSelected(entryIndex) {
			mark = selectedStyle.Render(selectedMark)
		}

		fileName := filepath.Base(entry.AbsolutePath)
		extension := filepath.Ext(fileName)
		baseName := strings.TrimSuffix(fileName, extension)
		folderPath := filepath.Dir(entry.AbsolutePath)
		folderName := filepath.Base(folderPath)

		nameStyle := lipgloss.NewStyle().Foreground(folderColors[folderPath])
		extensionStyle := lipgloss.NewStyle().Foreground(extensionShade(extension))

		viewBuilder.WriteString(fmt.Sprintf(
			"%-2s %-3s %s %s %s\n",
			mark,
			keyStyle.Render(assignedKey),
			nameStyle.Render(padRight(baseName, filenameWidth)),
			folderStyle.Render(padRight(folderName, folderWidth)),
			extensionStyle.Render(extension),
		))
	}

	if session.overflow {
		viewBuilder.WriteString(noticeStyle.Render(overflowNotice))
		viewBuilder.WriteString("\n")
	}
	viewBuilder.WriteString(footerStyle.Render(helpFooter))
	viewBuilder.WriteString("\n")
	return viewBuilder.String()
}

// columnWidths sizes the filename and folder columns to their widest values.
func (session Session) columnWidths() (int, int) {
	filenameWidth := len(headerFilename)
	folderWidth := len(headerFolder)
	for _, entry := range session.entries {
		fileName := filepath.Base(entry.AbsolutePath)
		baseName := strings.TrimSuffix(fileName, filepath.Ext(fileName))
		if len(baseName) > filenameWidth {
			filenameWidth = len(baseName)
		}
		folderName := filepath.Base(filepath.Dir(entry.AbsolutePath))
		if len(folderName) > folderWidth {
			folderWidth = len(folderName)
		}
	}
	return filenameWidth, folderWidth
}

// padRight pads value with spaces to the requested width before styling,
// keeping ANSI sequences out of the width calculation.
func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
