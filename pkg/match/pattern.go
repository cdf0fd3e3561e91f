// Package match decides whether a single word satisfies a query: a wildcard
// pattern with ignore/require letters, or a bag of letters it must be
// spelled from. It knows nothing about the corpus.
package match

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/bastiangx/wordfind/internal/utils"
)

// DefaultWildcards are the placeholder characters for an unknown letter,
// so "s?l_d" and "s.l-d" both describe "salad".
const DefaultWildcards = "?-_."

// ErrMalformedPattern is returned for a pattern character that is neither a
// letter nor a wildcard.
var ErrMalformedPattern = errors.New("malformed pattern")

// Pattern is a parsed partial word. Position i is either a lowercase letter
// or a wildcard.
type Pattern struct {
	letters []rune
	wild    []bool
}

// ParsePattern lowercases s and checks every character. An empty wildcards
// string selects DefaultWildcards.
func ParsePattern(s, wildcards string) (Pattern, error) {
	if wildcards == "" {
		wildcards = DefaultWildcards
	}
	s = utils.NormalizeWord(s)

	var p Pattern
	for i, r := range []rune(s) {
		switch {
		case strings.ContainsRune(wildcards, r):
			p.letters = append(p.letters, r)
			p.wild = append(p.wild, true)
		case unicode.IsLetter(r):
			p.letters = append(p.letters, r)
			p.wild = append(p.wild, false)
		default:
			return Pattern{}, fmt.Errorf("%w: %q at position %d of %q is neither a letter nor one of %q",
				ErrMalformedPattern, r, i, s, wildcards)
		}
	}
	return p, nil
}

// MustParsePattern is ParsePattern with the default wildcards that panics on error.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s, "")
	if err != nil {
		panic(err)
	}
	return p
}

// Len is the number of positions, and so the length of every match.
func (p Pattern) Len() int {
	return len(p.letters)
}

// IsWildcard reports whether position i accepts any letter.
func (p Pattern) IsWildcard(i int) bool {
	return p.wild[i]
}

// Known counts the non-wildcard positions.
func (p Pattern) Known() int {
	n := 0
	for _, w := range p.wild {
		if !w {
			n++
		}
	}
	return n
}

func (p Pattern) String() string {
	return string(p.letters)
}

// LetterSet is a set of lowercase letters, e.g. the ignore or require list.
type LetterSet map[rune]struct{}

// NewLetterSet builds a set from the letters of s, ignoring case and spaces.
func NewLetterSet(s string) LetterSet {
	set := make(LetterSet)
	for _, r := range utils.NormalizeWord(s) {
		if unicode.IsSpace(r) {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Matches checks word against the pattern:
//  1. word must contain every required letter, at any position
//  2. word and pattern must have the same length
//  3. a word letter found in ignore fails the match
//  4. wildcard positions accept anything else
//  5. every other position must equal the pattern letter
//
// word is expected lowercase, as stored in the corpus.
func Matches(p Pattern, word string, ignore, require LetterSet) bool {
	for r := range require {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}

	i := 0
	for _, r := range word {
		if i >= len(p.letters) {
			return false
		}
		if ignore.Has(r) {
			return false
		}
		if !p.wild[i] && p.letters[i] != r {
			return false
		}
		i++
	}
	return i == len(p.letters)
}

// IsPotentialMatch parses its string arguments and calls Matches.
//
//	IsPotentialMatch("??ttl-", "battle", "x", "b")  // true
//	IsPotentialMatch("??ttl-", "battle", "xe", "b") // false
func IsPotentialMatch(pattern, word, ignore, require string) (bool, error) {
	p, err := ParsePattern(pattern, "")
	if err != nil {
		return false, err
	}
	return Matches(p, utils.NormalizeWord(word), NewLetterSet(ignore), NewLetterSet(require)), nil
}
