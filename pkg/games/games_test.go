package games

import (
	"testing"

	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver(t *testing.T, rules Rules, words ...string) *Solver {
	t.Helper()
	corpus, err := dictionary.LoadWords(words)
	require.NoError(t, err)
	return NewSolver(finder.New(corpus, finder.Options{}), rules)
}

var beeWords = []string{"able", "tabled", "blade", "bleed", "cat", "dabble", "dead", "tattletale", "lab"}

func TestWordle(t *testing.T) {
	s := newSolver(t, DefaultRules(), "crane", "crate", "trace", "grace", "caret")

	got, err := s.Wordle("cra??", "n", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"crate"}, got)
}

func TestSpellingBee(t *testing.T) {
	s := newSolver(t, DefaultRules(), beeWords...)

	got, err := s.SpellingBee("a", "bdelt")
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "dead", "blade", "dabble", "tabled", "tattletale"}, got)
}

func TestPolygon(t *testing.T) {
	s := newSolver(t, DefaultRules(), beeWords...)

	got, err := s.Polygon("A", "BDELT")
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "dead", "blade", "dabble", "tabled"}, got)
}

func TestCenterLetterValidation(t *testing.T) {
	s := newSolver(t, DefaultRules(), beeWords...)

	for _, center := range []string{"", "ab", "1"} {
		t.Run(center, func(t *testing.T) {
			_, err := s.SpellingBee(center, "bdelt")
			assert.ErrorIs(t, err, ErrInvalidPuzzle)
			_, err = s.Polygon(center, "bdelt")
			assert.ErrorIs(t, err, ErrInvalidPuzzle)
		})
	}
}

func TestRulesFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Games
	cfg.PolygonMaxLen = 7
	cfg.CashSquareMaxCombinations = 10

	rules := RulesFromConfig(cfg)
	assert.Equal(t, 7, rules.PolygonMaxLen)
	assert.Equal(t, int64(10), rules.CashSquareMaxCombinations)
	assert.Equal(t, 4, DefaultRules().SpellingBeeMinLen)
	assert.Equal(t, 9, DefaultRules().CountdownMaxLen)
}

func TestPolygonRespectsRules(t *testing.T) {
	rules := DefaultRules()
	rules.PolygonMaxLen = 5
	s := newSolver(t, rules, beeWords...)

	got, err := s.Polygon("a", "bdelt")
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "dead", "blade"}, got)
}
