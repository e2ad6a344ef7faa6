package picker

import "testing"

// TestAssignKeysBijective verifies every index up to the alphabet length
// receives a distinct key in alphabet order.
func TestAssignKeysBijective(testingHandle *testing.T) {
	alphabet := []rune(DefaultKeyAlphabet)
	indexToKey, overflow := AssignKeys(len(alphabet), alphabet)

	if overflow {
		testingHandle.Fatalf("overflow reported at exactly the alphabet length")
	}
	if len(indexToKey) != len(alphabet) {
		testingHandle.Fatalf("assigned %d keys, want %d", len(indexToKey), len(alphabet))
	}

	seenKeys := make(map[rune]int, len(indexToKey))
	for entryIndex, keyRune := range indexToKey {
		if previousIndex, seen := seenKeys[keyRune]; seen {
			testingHandle.Fatalf("key %q assigned to both %d and %d", keyRune, previousIndex, entryIndex)
		}
		seenKeys[keyRune] = entryIndex
		if alphabet[entryIndex] != keyRune {
			testingHandle.Errorf("index %d assigned %q, want %q", entryIndex, keyRune, alphabet[entryIndex])
		}
	}
}

// TestAssignKeysOverflow verifies one file past the alphabet length triggers
// overflow and leaves the excess index without a key.
func TestAssignKeysOverflow(testingHandle *testing.T) {
	alphabet := []rune(DefaultKeyAlphabet)
	indexToKey, overflow := AssignKeys(len(alphabet)+1, alphabet)

	if !overflow {
		testingHandle.Fatalf("expected overflow past the alphabet length")
	}
	if len(indexToKey) != len(alphabet) {
		testingHandle.Fatalf("assigned %d keys, want %d", len(indexToKey), len(alphabet))
	}
	if _, assigned := indexToKey[len(alphabet)]; assigned {
		testingHandle.Errorf("excess index should stay unassigned")
	}
}

// TestAssignKeysShortList verifies a list shorter than the alphabet uses a
// prefix of the alphabet.
func TestAssignKeysShortList(testingHandle *testing.T) {
	alphabet := []rune(DefaultKeyAlphabet)
	indexToKey, overflow := AssignKeys(3, alphabet)

	if overflow {
		testingHandle.Fatalf("unexpected overflow for short list")
	}
	expected := map[int]rune{0: 'a', 1: 'A', 2: 'b'}
	for entryIndex, expectedKey := range expected {
		if indexToKey[entryIndex] != expectedKey {
			testingHandle.Errorf("index %d assigned %q, want %q", entryIndex, indexToKey[entryIndex], expectedKey)
		}
	}
}

// TestInvertKeyMap verifies the inverted map round-trips every assignment.
func TestInvertKeyMap(testingHandle *testing.T) {
	indexToKey, _ := AssignKeys(10, []rune(DefaultKeyAlphabet))
	keyToIndex := InvertKeyMap(indexToKey)

	if len(keyToIndex) != len(indexToKey) {
		testingHandle.Fatalf("inverted map has %d entries, want %d", len(keyToIndex), len(indexToKey))
	}
	for entryIndex, keyRune := range indexToKey {
		if keyToIndex[keyRune] != entryIndex {
			testingHandle.Errorf("key %q maps to %d, want %d", keyRune, keyToIndex[keyRune], entryIndex)
		}
	}
}
