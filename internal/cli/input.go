// Package cli runs the interactive query shell and prints query results.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/bastiangx/wordfind/pkg/games"
	"github.com/charmbracelet/log"
)

// errQuit ends the shell loop without an error.
var errQuit = errors.New("quit")

// errUsage is returned when a shell command gets the wrong arguments.
var errUsage = errors.New("usage")

type shellCommand struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

// InputHandler reads one query per line and prints the results. Bad input is
// reported and the loop goes on; only a read error or "quit" ends it.
type InputHandler struct {
	finder          *finder.Finder
	solver          *games.Solver
	printer         *Printer
	completionLimit int
	requestCount    int
	commands        map[string]shellCommand
}

// NewInputHandler creates a shell over the given engine.
func NewInputHandler(f *finder.Finder, s *games.Solver, p *Printer, completionLimit int) *InputHandler {
	h := &InputHandler{
		finder:          f,
		solver:          s,
		printer:         p,
		completionLimit: completionLimit,
	}
	h.commands = map[string]shellCommand{
		"count":      {"count", 0, h.count},
		"largest":    {"largest", 0, h.largest},
		"length":     {"length <n>", 1, h.length},
		"match":      {"match <pattern> [ignore] [require]", 1, h.match},
		"wordle":     {"wordle <pattern> [grey] [yellow]", 1, h.match},
		"letters":    {"letters <letters> [min] [max] [norepeat]", 1, h.letters},
		"anagrams":   {"anagrams <word>", 1, h.anagrams},
		"complete":   {"complete <prefix>", 1, h.complete},
		"bee":        {"bee <center> <outer>", 2, h.bee},
		"polygon":    {"polygon <center> <outer>", 2, h.polygon},
		"countdown":  {"countdown <letters>", 1, h.countdown},
		"cashsquare": {"cashsquare <row> <row> <row> <row> [row...]", games.CashSquareSize, h.cashSquare},
	}
	return h
}

// Start runs the loop until in is exhausted or the user quits.
func (h *InputHandler) Start(ctx context.Context, in io.Reader) error {
	log.Print("WordFind shell")
	log.Print("type a query and press Enter, 'help' lists the commands (Ctrl+C or 'quit' to exit):")
	scanner := bufio.NewScanner(in)

	for {
		log.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := h.Exec(ctx, line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			log.Error(err)
		}
	}
}

// Exec runs a single shell line.
func (h *InputHandler) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		h.help()
		return nil
	}

	cmd, ok := h.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: %s", errUsage, cmd.usage)
	}

	h.requestCount++
	start := time.Now()
	err := cmd.run(ctx, args)
	log.Debugf("Request #%d %q took [ %v ]", h.requestCount, line, time.Since(start))
	return err
}

func (h *InputHandler) help() {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		log.Print("  " + h.commands[name].usage)
	}
	log.Print("  quit")
}

// arg returns args[i] or "" when absent; "-" also stands for empty so that
// later positional arguments can be given without the earlier ones.
func arg(args []string, i int) string {
	if i >= len(args) || args[i] == "-" {
		return ""
	}
	return args[i]
}

func intArg(args []string, i int) (int, error) {
	s := arg(args, i)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errUsage, s)
	}
	return n, nil
}

func (h *InputHandler) count(context.Context, []string) error {
	h.printer.Value("words", h.finder.Corpus().WordCount())
	return nil
}

func (h *InputHandler) largest(context.Context, []string) error {
	h.printer.Value("largest word", h.finder.Corpus().LargestWord())
	return nil
}

func (h *InputHandler) length(_ context.Context, args []string) error {
	n, err := intArg(args, 0)
	if err != nil {
		return err
	}
	h.printer.Words(fmt.Sprintf("length %d", n), h.finder.WordsOfLength(n))
	return nil
}

func (h *InputHandler) match(_ context.Context, args []string) error {
	words, err := h.solver.Wordle(args[0], arg(args, 1), arg(args, 2))
	if err != nil {
		return err
	}
	h.printer.Words(fmt.Sprintf("pattern '%s'", args[0]), words)
	return nil
}

func (h *InputHandler) letters(_ context.Context, args []string) error {
	minLen, err := intArg(args, 1)
	if err != nil {
		return err
	}
	maxLen, err := intArg(args, 2)
	if err != nil {
		return err
	}
	noRepeats := strings.EqualFold(arg(args, 3), "norepeat")
	r := finder.Between(minLen, maxLen)
	words, err := h.finder.WordsFromLetters(args[0], r, noRepeats)
	if err != nil {
		return err
	}
	h.printer.Words(fmt.Sprintf("letters '%s' (%s)", args[0], r), words)
	return nil
}

func (h *InputHandler) anagrams(_ context.Context, args []string) error {
	h.printer.Words(fmt.Sprintf("anagrams of '%s'", args[0]), h.finder.Anagrams(args[0]))
	return nil
}

func (h *InputHandler) complete(_ context.Context, args []string) error {
	h.printer.Words(fmt.Sprintf("prefix '%s'", args[0]), h.finder.Completions(args[0], h.completionLimit))
	return nil
}

func (h *InputHandler) bee(_ context.Context, args []string) error {
	words, err := h.solver.SpellingBee(args[0], args[1])
	if err != nil {
		return err
	}
	h.printer.Words(fmt.Sprintf("spelling bee '%s' + '%s'", args[0], args[1]), words)
	return nil
}

func (h *InputHandler) polygon(_ context.Context, args []string) error {
	words, err := h.solver.Polygon(args[0], args[1])
	if err != nil {
		return err
	}
	h.printer.Words(fmt.Sprintf("polygon '%s' + '%s'", args[0], args[1]), words)
	return nil
}

func (h *InputHandler) countdown(_ context.Context, args []string) error {
	res, err := h.solver.Countdown(strings.Join(args, ""))
	if err != nil {
		return err
	}
	h.printer.Countdown(res)
	return nil
}

func (h *InputHandler) cashSquare(ctx context.Context, args []string) error {
	solutions, err := h.solver.CashSquare(ctx, args)
	if err != nil {
		return err
	}
	h.printer.CashSquare(solutions)
	return nil
}
