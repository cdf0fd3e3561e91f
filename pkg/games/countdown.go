package games

import (
	"slices"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/bastiangx/wordfind/pkg/match"
	"github.com/samber/lo"
)

// CountdownResult groups the playable words by length.
type CountdownResult struct {
	Letters string
	// ByLength has a key for every length in the rule range, possibly empty.
	ByLength map[int][]string
}

// Countdown lists the words that can be formed from the letters, using each
// letter at most as often as it was drawn, bucketed by length.
func (s *Solver) Countdown(letters string) (*CountdownResult, error) {
	r := finder.Between(s.rules.CountdownMinLen, s.rules.CountdownMaxLen)
	words, err := s.finder.Spellable(letters, r, false, match.CanSpellStrict)
	if err != nil {
		return nil, err
	}

	res := &CountdownResult{
		Letters:  letters,
		ByLength: make(map[int][]string),
	}
	for n := r.Min; n <= r.Max; n++ {
		res.ByLength[n] = []string{}
	}
	for _, w := range words {
		n := utils.RuneLen(w)
		res.ByLength[n] = append(res.ByLength[n], w)
	}
	return res, nil
}

// Lengths returns the bucket lengths in ascending order.
func (r *CountdownResult) Lengths() []int {
	keys := lo.Keys(r.ByLength)
	slices.Sort(keys)
	return keys
}

// Best returns the longest words found, or nil when nothing was.
func (r *CountdownResult) Best() []string {
	lengths := r.Lengths()
	for i := len(lengths) - 1; i >= 0; i-- {
		if words := r.ByLength[lengths[i]]; len(words) > 0 {
			return words
		}
	}
	return nil
}

// Count is the total number of words over all lengths.
func (r *CountdownResult) Count() int {
	return lo.SumBy(lo.Values(r.ByLength), func(words []string) int {
		return len(words)
	})
}
