// Package finder answers word queries over a loaded dictionary: words of a
// given length, words fitting a partial pattern, words that can be spelled
// from a set of letters, anagrams and prefix completions.
//
// A Finder holds no mutable state. Every query re-reads the immutable corpus,
// so calling it twice with the same arguments returns the same ordered result.
package finder

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/match"
	"github.com/charmbracelet/log"
)

// ErrInvalidLength is returned for a malformed length range such as min > max.
var ErrInvalidLength = errors.New("invalid length range")

// Options tune query behaviour.
type Options struct {
	// Wildcards are the pattern placeholder characters; empty means match.DefaultWildcards.
	Wildcards string
	// StrictCounts makes WordsFromLetters consume letters from the bag
	// instead of only checking presence.
	StrictCounts bool
	// IncludeSelf keeps the queried word in Anagrams results.
	IncludeSelf bool
	// Logger defaults to a "finder" prefixed charm logger.
	Logger *log.Logger
}

// Finder runs queries against a Corpus.
type Finder struct {
	corpus *dictionary.Corpus
	opts   Options
	spell  match.SpellFunc
	log    *log.Logger
}

// New creates a Finder over corpus.
func New(corpus *dictionary.Corpus, opts Options) *Finder {
	if opts.Wildcards == "" {
		opts.Wildcards = match.DefaultWildcards
	}
	l := opts.Logger
	if l == nil {
		l = logger.New("finder")
	}
	spell := match.CanSpell
	if opts.StrictCounts {
		spell = match.CanSpellStrict
	}
	return &Finder{corpus: corpus, opts: opts, spell: spell, log: l}
}

// Corpus returns the underlying dictionary.
func (f *Finder) Corpus() *dictionary.Corpus {
	return f.corpus
}

// Options returns the options the Finder was created with.
func (f *Finder) Options() Options {
	return f.opts
}

// WordsOfLength returns every word of exactly n letters; n < 0 gives nothing.
func (f *Finder) WordsOfLength(n int) []string {
	return f.corpus.WordsOfLength(n)
}

// PotentialWordsSeq lazily yields the words of len(pattern) letters that fit
// the pattern, contain every letter of require and none of ignore at any
// compared position.
func (f *Finder) PotentialWordsSeq(pattern, ignore, require string) (iter.Seq[string], error) {
	p, err := match.ParsePattern(pattern, f.opts.Wildcards)
	if err != nil {
		return nil, err
	}
	ignoreSet, requireSet := match.NewLetterSet(ignore), match.NewLetterSet(require)
	f.log.Debug("potential words", "pattern", p, "ignore", ignore, "require", require)

	return func(yield func(string) bool) {
		for word := range f.corpus.OfLength(p.Len()) {
			if match.Matches(p, word, ignoreSet, requireSet) && !yield(word) {
				return
			}
		}
	}, nil
}

// PotentialWords collects PotentialWordsSeq.
func (f *Finder) PotentialWords(pattern, ignore, require string) ([]string, error) {
	seq, err := f.PotentialWordsSeq(pattern, ignore, require)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Range bounds word length. Min 0 means 1; Max 0 means no upper bound.
type Range struct {
	Min int
	Max int
}

// Between is shorthand for Range{Min: min, Max: max}.
func Between(minLen, maxLen int) Range {
	return Range{Min: minLen, Max: maxLen}
}

// AtLeast is an open ended Range.
func AtLeast(minLen int) Range {
	return Range{Min: minLen}
}

// Exactly is a one-length Range.
func Exactly(n int) Range {
	return Range{Min: n, Max: n}
}

func (r Range) normalize() (Range, error) {
	if r.Max < 0 {
		return r, fmt.Errorf("%w: max length %d is negative", ErrInvalidLength, r.Max)
	}
	if r.Min <= 0 {
		r.Min = 1
	}
	if r.Max > 0 && r.Min > r.Max {
		return r, fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidLength, r.Min, r.Max)
	}
	return r, nil
}

func (r Range) String() string {
	if r.Max <= 0 {
		return fmt.Sprintf("%d+", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// WordsFromLettersSeq lazily yields words within the length range that can be
// spelled from letters, in corpus order. noRepeats drops words using any
// letter twice. Letter counts are honoured only with Options.StrictCounts.
func (f *Finder) WordsFromLettersSeq(letters string, r Range, noRepeats bool) (iter.Seq[string], error) {
	return f.SpellableSeq(letters, r, noRepeats, f.spell)
}

// SpellableSeq is WordsFromLettersSeq with an explicit spelling rule, for
// callers whose semantics must not depend on Options.StrictCounts.
// A nil spell falls back to the Finder's own rule.
func (f *Finder) SpellableSeq(letters string, r Range, noRepeats bool, spell match.SpellFunc) (iter.Seq[string], error) {
	r, err := r.normalize()
	if err != nil {
		return nil, err
	}
	if spell == nil {
		spell = f.spell
	}
	bag := match.NewLetterBag(letters)
	f.log.Debug("words from letters", "letters", letters, "range", r, "noRepeats", noRepeats)

	return func(yield func(string) bool) {
		for word := range f.corpus.FromLength(r.Min, r.Max) {
			if spell(bag, word, noRepeats) && !yield(word) {
				return
			}
		}
	}, nil
}

// Spellable collects SpellableSeq.
func (f *Finder) Spellable(letters string, r Range, noRepeats bool, spell match.SpellFunc) ([]string, error) {
	seq, err := f.SpellableSeq(letters, r, noRepeats, spell)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// WordsFromLetters collects WordsFromLettersSeq.
func (f *Finder) WordsFromLetters(letters string, r Range, noRepeats bool) ([]string, error) {
	seq, err := f.WordsFromLettersSeq(letters, r, noRepeats)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Anagrams returns the corpus words made of exactly the letters of word.
// word itself is left out unless Options.IncludeSelf is set.
func (f *Finder) Anagrams(word string) []string {
	word = utils.NormalizeWord(word)
	signature := utils.Signature(word)

	var out []string
	for candidate := range f.corpus.OfLength(utils.RuneLen(word)) {
		if candidate == word && !f.opts.IncludeSelf {
			continue
		}
		if utils.Signature(candidate) == signature {
			out = append(out, candidate)
		}
	}
	return out
}

// Completions returns up to limit words that start with prefix, shortest
// first. The prefix itself is not a completion. limit <= 0 returns all.
func (f *Finder) Completions(prefix string, limit int) []string {
	prefix = utils.NormalizeWord(prefix)
	if prefix == "" {
		return nil
	}
	words := slices.DeleteFunc(f.corpus.WithPrefix(prefix), func(w string) bool {
		return w == prefix
	})
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
