package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/bastiangx/wordfind/pkg/games"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (*InputHandler, *bytes.Buffer) {
	t.Helper()
	corpus, err := dictionary.LoadWords([]string{
		"battle", "rattle", "cattle", "kettle", "salad", "lads", "sad",
		"skate", "steak", "takes", "be", "bet", "beet",
		"flag", "live", "amen", "pert", "aver", "flap", "gent", "lime", "newt",
	})
	require.NoError(t, err)
	f := finder.New(corpus, finder.Options{})
	out := &bytes.Buffer{}
	return NewInputHandler(f, games.NewSolver(f, games.DefaultRules()), NewPrinter(out, true), 10), out
}

func TestExec(t *testing.T) {
	testCases := []struct {
		line     string
		expected string
	}{
		{"count", "22\n"},
		{"largest", "battle\n"},
		{"length 5", "salad\nskate\nsteak\ntakes\n"},
		{"match ??ttle k b", "battle\n"},
		{"MATCH ??ttle - t", "battle\ncattle\nkettle\nrattle\n"},
		{"wordle ?ettle", "kettle\n"},
		{"letters adls 3 6 norepeat", "sad\nlads\n"},
		{"letters adls 3 - ", "sad\nlads\nsalad\n"},
		{"anagrams skate", "steak\ntakes\n"},
		{"complete be", "bet\nbeet\n"},
		{"cashsquare aver flap gent lime newt", "flap\nlime\naver\ngent\nunused: newt\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			h, out := newHandler(t)
			require.NoError(t, h.Exec(context.Background(), tc.line))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestExecErrors(t *testing.T) {
	h, _ := newHandler(t)
	ctx := context.Background()

	assert.ErrorContains(t, h.Exec(ctx, "frobnicate"), "unknown command")
	assert.ErrorIs(t, h.Exec(ctx, "match"), errUsage)
	assert.ErrorIs(t, h.Exec(ctx, "length five"), errUsage)
	assert.ErrorIs(t, h.Exec(ctx, "letters adls 6 3"), finder.ErrInvalidLength)
	assert.ErrorIs(t, h.Exec(ctx, "bee ab cdefg"), games.ErrInvalidPuzzle)
	assert.ErrorIs(t, h.Exec(ctx, "quit"), errQuit)
}

func TestStart(t *testing.T) {
	h, out := newHandler(t)

	in := strings.NewReader("count\n\nbogus\nlength 2\nquit\nlength 3\n")
	require.NoError(t, h.Start(context.Background(), in))
	assert.Equal(t, "22\nbe\n", out.String())
	assert.Equal(t, 2, h.requestCount)

	// end of input also ends the loop
	h, out = newHandler(t)
	require.NoError(t, h.Start(context.Background(), strings.NewReader("largest")))
	assert.Equal(t, "battle\n", out.String())
}
