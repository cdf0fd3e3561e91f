package utils

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// RuneLen is the length of a word as the engine counts it.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Signature returns the letters of word in sorted order ("skate" -> "aekst").
// Two words are anagrams when their signatures are equal.
func Signature(word string) string {
	runes := []rune(word)
	slices.Sort(runes)
	return string(runes)
}

// HasRepeatedLetters checks if any rune occurs more than once in word.
func HasRepeatedLetters(word string) bool {
	if len(word) <= 1 {
		return false
	}
	seen := make(map[rune]struct{}, len(word))
	for _, r := range word {
		if _, ok := seen[r]; ok {
			return true
		}
		seen[r] = struct{}{}
	}
	return false
}

// IsLetters checks if s consists entirely of letters
func IsLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
