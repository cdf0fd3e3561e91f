package match

import (
	"unicode"

	"github.com/bastiangx/wordfind/internal/utils"
)

// LetterBag is a multiset of available letters.
type LetterBag map[rune]int

// NewLetterBag counts the letters of s, ignoring case and whitespace.
func NewLetterBag(s string) LetterBag {
	bag := make(LetterBag)
	for _, r := range utils.NormalizeWord(s) {
		if unicode.IsSpace(r) {
			continue
		}
		bag[r]++
	}
	return bag
}

// Has reports whether at least one r is available.
func (b LetterBag) Has(r rune) bool {
	return b[r] > 0
}

// Size is the total number of letters, counting repeats.
func (b LetterBag) Size() int {
	n := 0
	for _, c := range b {
		n += c
	}
	return n
}

// SpellFunc decides whether word can be made from bag.
type SpellFunc func(bag LetterBag, word string, noRepeats bool) bool

// CanSpell checks that every letter of word is present in bag. Counts are not
// consumed: a bag with one "e" still spells "eel". With noRepeats, words that
// use any letter twice are rejected regardless of the bag.
func CanSpell(bag LetterBag, word string, noRepeats bool) bool {
	if noRepeats && utils.HasRepeatedLetters(word) {
		return false
	}
	for _, r := range word {
		if !bag.Has(r) {
			return false
		}
	}
	return true
}

// CanSpellStrict is CanSpell with counts: word may use each letter at most as
// many times as bag holds it.
func CanSpellStrict(bag LetterBag, word string, noRepeats bool) bool {
	if noRepeats && utils.HasRepeatedLetters(word) {
		return false
	}
	used := make(map[rune]int, len(word))
	for _, r := range word {
		used[r]++
		if used[r] > bag[r] {
			return false
		}
	}
	return true
}
