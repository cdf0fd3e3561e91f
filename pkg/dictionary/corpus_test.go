package dictionary

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = []string{
	"rattle", "Battle", "kettle", "a", "cattle", "salad", "sale",
	"tea", "eat", "ate", "skate", "steak", "takes", "dichlorodiphenyltrichloroethane",
	"be", "bet", "beet", "beetle", "beetles",
}

func loadSample(t *testing.T) *Corpus {
	t.Helper()
	c, err := LoadWords(sampleWords)
	require.NoError(t, err)
	return c
}

func TestLoadSortsByLengthThenAlphabetically(t *testing.T) {
	c := loadSample(t)
	words := c.Words()

	require.Len(t, words, len(sampleWords))
	assert.True(t, slices.IsSortedFunc(words, compareWords), "index not sorted: %v", words)
	assert.Equal(t, []string{"a", "be", "ate", "bet", "eat", "tea"}, words[:6])
}

func TestLoadNormalizesAndDropsDuplicates(t *testing.T) {
	c, err := LoadWords([]string{"  Battle\n", "battle", "", "   ", "BATTLE\r", "Café"})
	require.NoError(t, err)

	assert.Equal(t, []string{"café", "battle"}, c.Words())
	assert.Equal(t, 2, c.WordCount())
}

func TestLoadEmptySource(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
	}{
		{"nil", nil},
		{"blank lines", []string{"", "  ", "\t"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := LoadWords(tc.lines)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrCorpusLoad)
		})
	}
}

// the longest word is the first one seen in load order, not the
// alphabetically first of the longest bucket
func TestLargestWordFirstSeen(t *testing.T) {
	c, err := LoadWords([]string{"ab", "zzzz", "aaaa", "c", "mmmm"})
	require.NoError(t, err)

	assert.Equal(t, "zzzz", c.LargestWord())
	assert.Equal(t, 4, c.MaxLength())
	assert.Equal(t, "dichlorodiphenyltrichloroethane", loadSample(t).LargestWord())
}

func TestWordsOfLength(t *testing.T) {
	c := loadSample(t)

	testCases := []struct {
		n        int
		expected []string
	}{
		{-1, nil},
		{0, nil},
		{1, []string{"a"}},
		{3, []string{"ate", "bet", "eat", "tea"}},
		{6, []string{"battle", "beetle", "cattle", "kettle", "rattle"}},
		{20, nil},
		{31, []string{"dichlorodiphenyltrichloroethane"}},
		{99, nil},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("len_%d", tc.n), func(t *testing.T) {
			got := c.WordsOfLength(tc.n)
			if tc.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWordsOfLengthCoversEveryBucket(t *testing.T) {
	c := loadSample(t)
	seen := 0
	for n := 0; n <= c.MaxLength(); n++ {
		for _, w := range c.WordsOfLength(n) {
			assert.Len(t, []rune(w), n)
			seen++
		}
	}
	assert.Equal(t, c.WordCount(), seen)
}

func TestOfLengthIsRestartable(t *testing.T) {
	c := loadSample(t)
	seq := c.OfLength(5)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"salad", "skate", "steak", "takes"}, first)

	// stopping early must not leak into the next iteration
	for w := range seq {
		assert.Equal(t, "salad", w)
		break
	}
	assert.Equal(t, first, slices.Collect(seq))
}

func TestFromLength(t *testing.T) {
	c := loadSample(t)

	got := slices.Collect(c.FromLength(7, 0))
	assert.Equal(t, []string{"beetles", "dichlorodiphenyltrichloroethane"}, got)

	got = slices.Collect(c.FromLength(2, 2))
	assert.Equal(t, []string{"be"}, got)
}

func TestContainsAndPrefix(t *testing.T) {
	c := loadSample(t)

	assert.True(t, c.Contains("beetle"))
	assert.False(t, c.Contains("beetl"))
	assert.False(t, c.Contains(""))

	assert.Equal(t, []string{"be", "bet", "beet", "beetle", "beetles"}, c.WithPrefix("be"))
	assert.Empty(t, c.WithPrefix("xyz"))
}
