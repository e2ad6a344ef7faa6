// Package picker implements key assignment and the interactive selection session.
package picker

// DefaultKeyAlphabet is the fixed ordered alphabet used to label files:
// interleaved lower/upper letters, then digits, then shifted symbols.
const DefaultKeyAlphabet = "aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStT1234567890!@#$%^&*()"

// AssignKeys maps list indexes to unique single-character keys drawn from
// alphabet in order. When fileCount exceeds the alphabet length only the
// first len(alphabet) indexes receive keys and overflow is reported true;
// the excess entries stay unreachable for the session.
func AssignKeys(fileCount int, alphabet []rune) (map[int]rune, bool) {
	assignedCount := fileCount
	overflow := false
	if fileCount > len(alphabet) {
		assignedCount = len(alphabet)
		overflow = true
	}

	indexToKey := make(map[int]rune, assignedCount)
	for entryIndex := 0; entryIndex < assignedCount; entryIndex++ {
		indexToKey[entryIndex] = alphabet[entryIndex]
	}
	return indexToKey, overflow
}

// InvertKeyMap builds the key-to-index mapping used for event dispatch.
func InvertKeyMap(indexToKey map[int]rune) map[rune]int {
	keyToIndex := make(map[rune]int, len(indexToKey))
	for entryIndex, keyRune := range indexToKey {
		keyToIndex[keyRune] = entryIndex
	}
	return keyToIndex
}
