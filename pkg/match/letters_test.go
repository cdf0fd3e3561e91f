package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanSpell(t *testing.T) {
	testCases := []struct {
		name      string
		letters   string
		word      string
		noRepeats bool
		expected  bool
	}{
		{"repeats allowed", "adls", "salad", false, true},
		{"repeats rejected", "adls", "salad", true, false},
		{"distinct letters", "adls", "lads", true, true},
		{"missing letter", "adls", "sale", false, false},
		{"presence only", "el", "eel", false, true},
		{"empty word", "abc", "", true, true},
		{"empty bag", "", "a", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanSpell(NewLetterBag(tc.letters), tc.word, tc.noRepeats))
		})
	}
}

func TestCanSpellStrict(t *testing.T) {
	testCases := []struct {
		name      string
		letters   string
		word      string
		noRepeats bool
		expected  bool
	}{
		{"one a is not enough", "adls", "salad", false, false},
		{"enough of each", "aadlls", "salad", false, true},
		{"noRepeats still applies", "aadlls", "salad", true, false},
		{"subset", "gnirtsxq", "string", false, true},
		{"eel needs two e", "el", "eel", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanSpellStrict(NewLetterBag(tc.letters), tc.word, tc.noRepeats))
		})
	}
}

func TestLetterBag(t *testing.T) {
	bag := NewLetterBag("Salad s")
	assert.Equal(t, 6, bag.Size())
	assert.Equal(t, 2, bag['a'])
	assert.Equal(t, 2, bag['s'])
	assert.True(t, bag.Has('d'))
	assert.False(t, bag.Has('x'))
}
