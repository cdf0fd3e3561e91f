// Package games solves word puzzles on top of the finder package: Wordle,
// Spelling Bee, Polygon, Countdown and Cash Square. The solvers add rule
// specific filtering and combinatorics; all dictionary work is delegated.
package games

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/bastiangx/wordfind/pkg/match"
	"github.com/samber/lo"
)

// ErrInvalidPuzzle is returned for puzzle input that breaks the game's rules.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

// Rules are the length limits of each game.
type Rules struct {
	SpellingBeeMinLen int
	PolygonMinLen     int
	PolygonMaxLen     int
	CountdownMinLen   int
	CountdownMaxLen   int
	// CashSquareMaxCombinations bounds the Cash Square search; 0 disables the bound.
	CashSquareMaxCombinations int64
}

// DefaultRules are the published rules of each game.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultConfig().Games)
}

// RulesFromConfig converts the [games] config section.
func RulesFromConfig(c config.GamesConfig) Rules {
	return withCountdownBounds(Rules{
		SpellingBeeMinLen:         c.SpellingBeeMinLen,
		PolygonMinLen:             c.PolygonMinLen,
		PolygonMaxLen:             c.PolygonMaxLen,
		CountdownMinLen:           c.CountdownMinLen,
		CountdownMaxLen:           c.CountdownMaxLen,
		CashSquareMaxCombinations: int64(c.CashSquareMaxCombinations),
	})
}

// withCountdownBounds replaces a non-positive countdown range limit with the
// default. Countdown reports a bucket per length, so its range must be closed.
func withCountdownBounds(r Rules) Rules {
	def := config.DefaultConfig().Games
	if r.CountdownMinLen <= 0 {
		r.CountdownMinLen = def.CountdownMinLen
	}
	if r.CountdownMaxLen <= 0 {
		r.CountdownMaxLen = def.CountdownMaxLen
	}
	return r
}

// Solver runs the games against one Finder.
type Solver struct {
	finder *finder.Finder
	rules  Rules
}

// NewSolver creates a Solver. A countdown limit of zero or less falls back to
// the default.
func NewSolver(f *finder.Finder, rules Rules) *Solver {
	return &Solver{finder: f, rules: withCountdownBounds(rules)}
}

// Rules returns the solver's rules.
func (s *Solver) Rules() Rules {
	return s.rules
}

// Wordle lists the words fitting a Wordle board: pattern holds the green
// letters with wildcards elsewhere, ignore the grey letters and include the
// yellow ones.
// https://www.nytimes.com/games/wordle/index.html
func (s *Solver) Wordle(pattern, ignore, include string) ([]string, error) {
	return s.finder.PotentialWords(pattern, ignore, include)
}

// SpellingBee lists words of at least SpellingBeeMinLen letters made from the
// seven letters, each using the center letter. Letters may repeat.
// https://spellingbeegame.org
func (s *Solver) SpellingBee(center, outer string) ([]string, error) {
	return s.centerLetterGame(center, outer, finder.AtLeast(s.rules.SpellingBeeMinLen))
}

// Polygon is The Times' variant of SpellingBee with a maximum length.
func (s *Solver) Polygon(center, outer string) ([]string, error) {
	return s.centerLetterGame(center, outer, finder.Between(s.rules.PolygonMinLen, s.rules.PolygonMaxLen))
}

func (s *Solver) centerLetterGame(center, outer string, r finder.Range) ([]string, error) {
	center = utils.NormalizeWord(center)
	if utf8.RuneCountInString(center) != 1 || !utils.IsLetters(center) {
		return nil, fmt.Errorf("%w: center must be a single letter, got %q", ErrInvalidPuzzle, center)
	}
	words, err := s.finder.Spellable(outer+center, r, false, match.CanSpell)
	if err != nil {
		return nil, err
	}
	return lo.Filter(words, func(w string, _ int) bool {
		return strings.Contains(w, center)
	}), nil
}
