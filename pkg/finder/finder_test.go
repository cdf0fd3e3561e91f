package finder

import (
	"slices"
	"testing"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFinder(t *testing.T, opts Options, words ...string) *Finder {
	t.Helper()
	corpus, err := dictionary.LoadWords(words)
	require.NoError(t, err)
	return New(corpus, opts)
}

func TestPotentialWords(t *testing.T) {
	f := newFinder(t, Options{}, "battle", "rattle", "cattle", "kettle", "bottle", "bat")

	testCases := []struct {
		name     string
		pattern  string
		ignore   string
		require  string
		expected []string
	}{
		{"ignore and require", "??ttle", "k", "b", []string{"battle", "bottle"}},
		{"fixed vowel", "?attle", "k", "b", []string{"battle"}},
		{"ignore only", "??ttle", "k", "", []string{"battle", "bottle", "cattle", "rattle"}},
		{"no bucket", "??????????", "", "", nil},
		{"short pattern", "b??", "", "", []string{"bat"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.PotentialWords(tc.pattern, tc.ignore, tc.require)
			require.NoError(t, err)
			if tc.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPotentialWordsScenario(t *testing.T) {
	f := newFinder(t, Options{}, "battle", "rattle", "cattle", "kettle")

	got, err := f.PotentialWords("??ttle", "k", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"battle"}, got)
}

func TestPotentialWordsProperties(t *testing.T) {
	f := newFinder(t, Options{}, "battle", "rattle", "cattle", "kettle", "bottle", "settle", "little")
	pattern := "?e??le"

	got, err := f.PotentialWords(pattern, "", "t")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, w := range got {
		assert.Len(t, []rune(w), len(pattern))
		assert.Contains(t, w, "t")
		assert.Equal(t, byte('e'), w[1])
		assert.Equal(t, "le", w[4:])
	}
}

func TestPotentialWordsMalformed(t *testing.T) {
	f := newFinder(t, Options{}, "battle")

	_, err := f.PotentialWords("b4ttle", "", "")
	assert.ErrorIs(t, err, match.ErrMalformedPattern)
}

func TestPotentialWordsCustomWildcards(t *testing.T) {
	f := newFinder(t, Options{Wildcards: "*"}, "battle", "kettle")

	got, err := f.PotentialWords("**ttle", "k", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"battle"}, got)
}

func TestWordsFromLettersSalad(t *testing.T) {
	f := newFinder(t, Options{}, "salad", "lads", "sad", "dal", "salsa", "a")

	got, err := f.WordsFromLetters("adls", Between(3, 6), true)
	require.NoError(t, err)
	assert.NotContains(t, got, "salad")
	assert.Equal(t, []string{"dal", "sad", "lads"}, got)

	got, err = f.WordsFromLetters("adls", Between(3, 6), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"dal", "sad", "lads", "salad", "salsa"}, got)
}

func TestWordsFromLettersStrictCounts(t *testing.T) {
	f := newFinder(t, Options{StrictCounts: true}, "salad", "lads", "sad")

	got, err := f.WordsFromLetters("adls", Range{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"sad", "lads"}, got)

	got, err = f.WordsFromLetters("aadlls", Range{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"sad", "lads", "salad"}, got)
}

func TestWordsFromLettersProperties(t *testing.T) {
	f := newFinder(t, Options{}, "a", "at", "tea", "eat", "seat", "teas", "state", "tease", "estates")

	got, err := f.WordsFromLetters("aste", Between(2, 5), true)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	bag := match.NewLetterBag("aste")
	for _, w := range got {
		n := utils.RuneLen(w)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)
		assert.False(t, utils.HasRepeatedLetters(w), w)
		for _, r := range w {
			assert.True(t, bag.Has(r), w)
		}
	}
	assert.True(t, slices.IsSortedFunc(got, func(a, b string) int {
		return utils.RuneLen(a) - utils.RuneLen(b)
	}))
}

func TestWordsFromLettersUnboundedMax(t *testing.T) {
	f := newFinder(t, Options{}, "a", "at", "estates")

	got, err := f.WordsFromLetters("aste", AtLeast(0), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "at", "estates"}, got)
}

func TestWordsFromLettersInvalidRange(t *testing.T) {
	f := newFinder(t, Options{}, "salad")

	for _, r := range []Range{Between(5, 3), {Max: -1}, {Min: 2, Max: -4}} {
		t.Run(r.String(), func(t *testing.T) {
			_, err := f.WordsFromLetters("adls", r, false)
			assert.ErrorIs(t, err, ErrInvalidLength)
		})
	}
}

func TestWordsOfLengthNegative(t *testing.T) {
	f := newFinder(t, Options{}, "battle")
	assert.Empty(t, f.WordsOfLength(-1))
	assert.Equal(t, []string{"battle"}, f.WordsOfLength(6))
}

func TestQueriesAreIdempotent(t *testing.T) {
	f := newFinder(t, Options{}, "battle", "rattle", "cattle", "kettle", "salad", "lads", "skate", "steak")

	first, err := f.PotentialWords("??ttle", "", "")
	require.NoError(t, err)
	second, err := f.PotentialWords("??ttle", "", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	seq, err := f.WordsFromLettersSeq("adlskte", AtLeast(4), false)
	require.NoError(t, err)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))

	assert.Equal(t, f.Anagrams("skate"), f.Anagrams("skate"))
}

func TestAnagrams(t *testing.T) {
	words := []string{"skate", "steak", "takes", "stake", "skates", "state"}

	f := newFinder(t, Options{}, words...)
	assert.Equal(t, []string{"stake", "steak", "takes"}, f.Anagrams("skate"))
	assert.Equal(t, []string{"skate", "stake", "takes"}, f.Anagrams("Steak"))
	assert.Empty(t, f.Anagrams("zebra"))

	f = newFinder(t, Options{IncludeSelf: true}, words...)
	got := f.Anagrams("skate")
	assert.Contains(t, got, "skate")
	for _, w := range got {
		assert.Equal(t, utils.Signature("skate"), utils.Signature(w))
	}
}

func TestCompletions(t *testing.T) {
	f := newFinder(t, Options{}, "be", "bet", "beet", "beetle", "beetles", "bat")

	assert.Equal(t, []string{"bet", "beet", "beetle", "beetles"}, f.Completions("be", 0))
	assert.Equal(t, []string{"bet", "beet"}, f.Completions("BE", 2))
	assert.Empty(t, f.Completions("", 10))
	assert.Empty(t, f.Completions("beetles", 10))
}
