package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer lowercases and NFC-composes words so that "Café" typed in
// decomposed form still compares equal to the dictionary entry.
// A Normalizer is stateful and must not be shared between goroutines.
type Normalizer struct {
	lower cases.Caser
}

// NewNormalizer returns a Normalizer using language-neutral case folding.
func NewNormalizer() *Normalizer {
	return &Normalizer{lower: cases.Lower(language.Und)}
}

// Normalize trims surrounding whitespace, composes and lowercases s.
func (n *Normalizer) Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if isLowerASCII(s) {
		return s
	}
	return n.lower.String(norm.NFC.String(s))
}

// NormalizeWord is the one-shot form of Normalizer.Normalize.
func NormalizeWord(s string) string {
	return NewNormalizer().Normalize(s)
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
