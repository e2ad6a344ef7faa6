package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/temirov/treepick/internal/types"
)

// SessionState identifies the selection session's lifecycle position.
type SessionState int

const (
	// StateBrowsing is the initial state: toggles are accepted.
	StateBrowsing SessionState = iota
	// StateCommitted is terminal: the commit key ended the session.
	StateCommitted
	// StateAborted is terminal: the session ended without a commit.
	StateAborted
)

const (
	commitKey     = "enter"
	abortKeyCtrlC = "ctrl+c"
	abortKeyEsc   = "esc"
)

// Session is the interactive selection state machine, driven as a bubbletea
// model so it can be exercised by feeding scripted key events to Update.
// The selection set is mutated only by toggle events while browsing.
type Session struct {
	entries    []types.FileEntry
	indexToKey map[int]rune
	keyToIndex map[rune]int
	selected   map[int]struct{}
	overflow   bool
	state      SessionState
}

// NewSession constructs a browsing session over the labeled file list.
func NewSession(entries []types.FileEntry, indexToKey map[int]rune, overflow bool) Session {
	return Session{
		entries:    entries,
		indexToKey: indexToKey,
		keyToIndex: InvertKeyMap(indexToKey),
		selected:   make(map[int]struct{}),
		overflow:   overflow,
		state:      StateBrowsing,
	}
}

// Init implements tea.Model.
func (session Session) Init() tea.Cmd {
	return nil
}

// Update consumes one event. While browsing, a recognized toggle key flips
// membership of the corresponding index; the commit key transitions to
// Committed and quits; unrecognized keys are no-ops.
func (session Session) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if session.state != StateBrowsing {
		return session, tea.Quit
	}

	keyMessage, isKeyMessage := message.(tea.KeyMsg)
	if !isKeyMessage {
		return session, nil
	}

	switch keyMessage.String() {
	case commitKey:
		session.state = StateCommitted
		return session, tea.Quit
	case abortKeyCtrlC, abortKeyEsc:
		session.state = StateAborted
		return session, tea.Quit
	}

	if len(keyMessage.Runes) == 1 {
		if entryIndex, isAssigned := session.keyToIndex[keyMessage.Runes[0]]; isAssigned {
			session.toggle(entryIndex)
		}
	}
	return session, nil
}

// toggle flips membership of entryIndex in the selection set.
func (session Session) toggle(entryIndex int) {
	if _, isSelected := session.selected[entryIndex]; isSelected {
		delete(session.selected, entryIndex)
		return
	}
	session.selected[entryIndex] = struct{}{}
}

// State returns the session's current lifecycle state.
func (session Session) State() SessionState {
	return session.state
}

// SelectedIndexes returns the currently selected list indexes, unordered.
// Callers that need a stable order sort by original index.
func (session Session) SelectedIndexes() []int {
	indexes := make([]int, 0, len(session.selected))
	for entryIndex := range session.selected {
		indexes = append(indexes, entryIndex)
	}
	return indexes
}

// IsSelected reports whether entryIndex is currently selected.
func (session Session) IsSelected(entryIndex int) bool {
	_, isSelected := session.selected[entryIndex]
	return isSelected
}

// RunResult carries the outcome of an interactive session.
type RunResult struct {
	SelectedIndexes []int
	Committed       bool
}

// Run drives the session against a real terminal until commit or abort.
// The session blocks on one input read at a time; there is no timeout.
func Run(entries []types.FileEntry, indexToKey map[int]rune, overflow bool) (RunResult, error) {
	program := tea.NewProgram(NewSession(entries, indexToKey, overflow), tea.WithAltScreen())
	finalModel, runError := program.Run()
	if runError != nil {
		return RunResult{}, fmt.Errorf("running selection session: %w", runError)
	}
	finalSession, isSession := finalModel.(Session)
	if !isSession {
		return RunResult{}, fmt.Errorf("unexpected final model type %T", finalModel)
	}
	return RunResult{
		SelectedIndexes: finalSession.SelectedIndexes(),
		Committed:       finalSession.State() == StateCommitted,
	}, nil
}
