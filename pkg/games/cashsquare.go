package games

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/bastiangx/wordfind/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// CashSquareSize is the width of a Cash Square grid and the number of rows in
// a solution.
const CashSquareSize = 4

// ctxCheckInterval is how many combinations are tried between cancellation checks.
const ctxCheckInterval = 1 << 12

var (
	// ErrInvalidGrid is returned for a grid that isn't N >= 4 words of 4 letters.
	ErrInvalidGrid = errors.New("invalid cash square grid")
	// ErrSearchTooLarge is returned when the candidate product exceeds the configured bound.
	ErrSearchTooLarge = errors.New("cash square search too large")
)

// CashSquare is a prepared puzzle: the given row words and, per column, the
// dictionary words that could fill that column.
//
// Given
//
//	a v e r
//	f l a p
//	g e n t
//	l i m e
//	n e w t
//
// a solution arranges four of the rows so that every column is a word too:
//
//	f l a p
//	l i m e
//	a v e r
//	g e n t
//
// and "newt" is left over. (From Take a Break magazine.)
type CashSquare struct {
	Rows       []string
	Columns    [CashSquareSize]string
	Candidates [CashSquareSize][]string

	rowSet map[string]struct{}
	max    int64
}

// CashSquareSolution is one arrangement of rows.
type CashSquareSolution struct {
	Rows     [CashSquareSize]string
	Leftover []string
}

// NewCashSquare validates the grid and computes the column candidates: the
// 4-letter words whose letters all appear in that column.
func (s *Solver) NewCashSquare(rows []string) (*CashSquare, error) {
	if len(rows) < CashSquareSize {
		return nil, fmt.Errorf("%w: need at least %d rows, got %d", ErrInvalidGrid, CashSquareSize, len(rows))
	}

	cs := &CashSquare{
		Rows:   make([]string, len(rows)),
		rowSet: make(map[string]struct{}, len(rows)),
		max:    s.rules.CashSquareMaxCombinations,
	}
	var columns [CashSquareSize][]rune
	for i, row := range rows {
		row = utils.NormalizeWord(row)
		runes := []rune(row)
		if len(runes) != CashSquareSize {
			return nil, fmt.Errorf("%w: row %d %q has %d letters, want %d", ErrInvalidGrid, i, row, len(runes), CashSquareSize)
		}
		cs.Rows[i] = row
		cs.rowSet[row] = struct{}{}
		for col, r := range runes {
			columns[col] = append(columns[col], r)
		}
	}

	for col := range columns {
		cs.Columns[col] = string(columns[col])
		words, err := s.finder.Spellable(cs.Columns[col], finder.Exactly(CashSquareSize), false, match.CanSpell)
		if err != nil {
			return nil, err
		}
		cs.Candidates[col] = words
	}
	log.Debug("cash square prepared", "columns", cs.Columns, "combinations", cs.Combinations())
	return cs, nil
}

// Combinations is the size of the search space, saturating at MaxInt64.
func (cs *CashSquare) Combinations() int64 {
	total := int64(1)
	for _, c := range cs.Candidates {
		n := int64(len(c))
		if n == 0 {
			return 0
		}
		if total > math.MaxInt64/n {
			return math.MaxInt64
		}
		total *= n
	}
	return total
}

// Solve tries every combination of column candidates and keeps those whose
// four reconstructed rows are distinct given rows. progress, if non-nil, is
// called once per first-column candidate.
func (cs *CashSquare) Solve(ctx context.Context, progress func()) ([]CashSquareSolution, error) {
	if combos := cs.Combinations(); cs.max > 0 && combos > cs.max {
		return nil, fmt.Errorf("%w: %d combinations exceed the limit of %d", ErrSearchTooLarge, combos, cs.max)
	}

	var cols [CashSquareSize][][CashSquareSize]rune
	for i, words := range cs.Candidates {
		cols[i] = lo.Map(words, func(w string, _ int) [CashSquareSize]rune {
			return [CashSquareSize]rune([]rune(w))
		})
	}

	var (
		solutions []CashSquareSolution
		tried     int
	)
	for _, a := range cols[0] {
		for _, b := range cols[1] {
			for _, c := range cols[2] {
				for _, d := range cols[3] {
					if tried++; tried%ctxCheckInterval == 0 {
						if err := ctx.Err(); err != nil {
							return solutions, err
						}
					}
					if sol, ok := cs.accept(a, b, c, d); ok {
						solutions = append(solutions, sol)
					}
				}
			}
		}
		if progress != nil {
			progress()
		}
	}
	return solutions, ctx.Err()
}

// accept rebuilds the rows from four column words.
func (cs *CashSquare) accept(a, b, c, d [CashSquareSize]rune) (CashSquareSolution, bool) {
	var sol CashSquareSolution
	for i := range CashSquareSize {
		row := string([]rune{a[i], b[i], c[i], d[i]})
		if _, ok := cs.rowSet[row]; !ok {
			return sol, false
		}
		for _, prev := range sol.Rows[:i] {
			if prev == row {
				return sol, false
			}
		}
		sol.Rows[i] = row
	}
	sol.Leftover = lo.Filter(cs.Rows, func(row string, _ int) bool {
		return !lo.Contains(sol.Rows[:], row)
	})
	return sol, true
}

// CashSquare prepares and solves a grid in one call.
func (s *Solver) CashSquare(ctx context.Context, rows []string) ([]CashSquareSolution, error) {
	cs, err := s.NewCashSquare(rows)
	if err != nil {
		return nil, err
	}
	return cs.Solve(ctx, nil)
}
