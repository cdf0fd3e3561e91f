// Package dictionary loads a flat word list into an immutable, length-bucketed
// index. Words are kept sorted by length first and alphabetically second, so
// every "words of length n" or "words between n and m letters" query is a
// contiguous range of the index.
package dictionary

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrCorpusLoad is returned when the word source is missing, empty or unreadable.
var ErrCorpusLoad = errors.New("corpus load failed")

// Corpus is the sorted, read-only word index. It is safe for concurrent
// reads once constructed; nothing mutates it afterwards.
type Corpus struct {
	words   []string // sorted by (rune length, lexicographic)
	lengths []int    // lengths[i] == utils.RuneLen(words[i])
	largest string
	trie    *patricia.Trie
}

// Load normalizes every line (trim, lowercase), drops blanks and duplicates
// and builds the sorted index. The longest word is recorded during the same
// pass over the unsorted input, so ties go to the first one seen.
func Load(lines iter.Seq[string]) (*Corpus, error) {
	normalizer := utils.NewNormalizer()
	filter := utils.NewWordFilter()

	var words []string
	largest, largestLen := "", 0
	for line := range lines {
		word := normalizer.Normalize(line)
		if word == "" || !filter.ShouldInclude(word) {
			continue
		}
		if n := utils.RuneLen(word); n > largestLen {
			largest, largestLen = word, n
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: source contains no words", ErrCorpusLoad)
	}

	slices.SortFunc(words, compareWords)
	return newCorpus(words, largest), nil
}

// LoadWords is Load over an in-memory slice.
func LoadWords(words []string) (*Corpus, error) {
	return Load(slices.Values(words))
}

// newCorpus builds the index over words, which must already be sorted.
func newCorpus(words []string, largest string) *Corpus {
	c := &Corpus{
		words:   words,
		lengths: make([]int, len(words)),
		largest: largest,
		trie:    patricia.NewTrie(),
	}
	for i, w := range words {
		c.lengths[i] = utils.RuneLen(w)
		c.trie.Insert(patricia.Prefix(w), i)
	}
	return c
}

// compareWords orders by rune length, then lexicographically.
func compareWords(a, b string) int {
	if c := cmp.Compare(utils.RuneLen(a), utils.RuneLen(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// WordCount returns the number of distinct words.
func (c *Corpus) WordCount() int {
	return len(c.words)
}

// LargestWord returns the first word of maximal length in load order.
func (c *Corpus) LargestWord() string {
	return c.largest
}

// MaxLength is the length of the longest word.
func (c *Corpus) MaxLength() int {
	return c.lengths[len(c.lengths)-1]
}

// Words returns a copy of the sorted index.
func (c *Corpus) Words() []string {
	return slices.Clone(c.words)
}

// All iterates the whole index in sorted order.
func (c *Corpus) All() iter.Seq[string] {
	return slices.Values(c.words)
}

// Contains reports whether word is in the corpus. The lookup is exact;
// callers normalize first.
func (c *Corpus) Contains(word string) bool {
	return c.trie.Get(patricia.Prefix(word)) != nil
}

// firstOfLength returns the index of the first word with length >= n.
func (c *Corpus) firstOfLength(n int) int {
	return sort.SearchInts(c.lengths, n)
}

// OfLength iterates all words of exactly n letters. The scan starts at the
// first word of length n and stops at the first longer word, never touching
// the rest of the index. Negative n yields nothing.
func (c *Corpus) OfLength(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n < 0 {
			return
		}
		for i := c.firstOfLength(n); i < len(c.words) && c.lengths[i] == n; i++ {
			if !yield(c.words[i]) {
				return
			}
		}
	}
}

// WordsOfLength collects OfLength(n).
func (c *Corpus) WordsOfLength(n int) []string {
	return slices.Collect(c.OfLength(n))
}

// FromLength iterates words with minLen <= length <= maxLen in index order.
// maxLen <= 0 means no upper bound, so the scan runs to the end of the index.
func (c *Corpus) FromLength(minLen, maxLen int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := c.firstOfLength(minLen); i < len(c.words); i++ {
			if maxLen > 0 && c.lengths[i] > maxLen {
				return
			}
			if !yield(c.words[i]) {
				return
			}
		}
	}
}

// WithPrefix returns the words starting with prefix, in index order.
func (c *Corpus) WithPrefix(prefix string) []string {
	var idx []int
	// VisitSubtree only fails when the visitor does.
	_ = c.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		idx = append(idx, item.(int))
		return nil
	})
	slices.Sort(idx)

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = c.words[j]
	}
	return out
}
