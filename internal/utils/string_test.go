package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"battle", "battle"},
		{"  Battle\r\n", "battle"},
		{"CAFÉ", "café"},
		{"café", "café"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeWord(tc.input))
		})
	}
}

func TestNormalizerReuse(t *testing.T) {
	n := NewNormalizer()
	assert.Equal(t, "kettle", n.Normalize("KETTLE"))
	assert.Equal(t, "rattle", n.Normalize("Rattle"))
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "aekst", Signature("skate"))
	assert.Equal(t, Signature("steak"), Signature("takes"))
	assert.NotEqual(t, Signature("skate"), Signature("skates"))
	assert.Equal(t, "", Signature(""))
}

func TestHasRepeatedLetters(t *testing.T) {
	testCases := map[string]bool{
		"":      false,
		"a":     false,
		"lads":  false,
		"salad": true,
		"café":  false,
		"éé":    true,
	}
	for word, expected := range testCases {
		assert.Equal(t, expected, HasRepeatedLetters(word), word)
	}
}

func TestIsLetters(t *testing.T) {
	assert.True(t, IsLetters("abc"))
	assert.True(t, IsLetters("é"))
	assert.False(t, IsLetters(""))
	assert.False(t, IsLetters("a1"))
	assert.False(t, IsLetters("a b"))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 4, RuneLen("café"))
	assert.Equal(t, 0, RuneLen(""))
}

func TestWordFilter(t *testing.T) {
	f := NewWordFilter("banned")

	assert.True(t, f.ShouldInclude("battle"))
	assert.False(t, f.ShouldInclude("battle"))
	assert.False(t, f.ShouldInclude("banned"))
	assert.True(t, f.ShouldInclude("kettle"))
	assert.Equal(t, 3, f.Len())
}
