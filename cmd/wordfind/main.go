// Copyright 2025 The WordFind Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfind command line tool.

WordFind answers word puzzle queries against a plain English word list:
words of a given length, words fitting a partial pattern, words that can be
spelled from a set of letters, anagrams, and solvers for Wordle, Spelling Bee,
Polygon, Countdown and Cash Square.

# Usage

Find six letter words ending in "ttle" that contain a "b" and no "k":

	wordfind match ??ttle -x k -r b

Words spelled from "adls", three to six letters long, no letter used twice:

	wordfind letters adls --min 3 --max 6 --no-repeats

Solve a Cash Square grid with a progress bar:

	wordfind cashsquare -p aver flap gent lime newt

Start an interactive shell that keeps the dictionary loaded:

	wordfind shell

Add --plain to any query to print bare words, one per line.

# Dictionary

The word list is a text file with one word per line. Without --dict the tool
looks for en_words.txt or words.txt next to the working directory, the
executable and the config dir. With --cache (or [dict] use_cache) a sorted
msgpack index is kept next to the config and reused while it is newer than the
list; "wordfind index" writes one explicitly.

# Configuration

A TOML config is created with defaults at ~/.config/wordfind/config.toml:

	[dict]
	path = ""
	cache_path = ""
	use_cache = false

	[query]
	wildcards = "?-_."
	strict_counts = false
	include_self = false
	completion_limit = 24

	[games]
	spelling_bee_min_len = 4
	polygon_min_len = 4
	polygon_max_len = 9
	countdown_min_len = 3
	countdown_max_len = 9
	cash_square_max_combinations = 50000000

	[log]
	level = "warn"
	timestamps = false
	formatter = "text"

Sections that fail to parse fall back to their defaults; the rest of the file
still applies.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	shell "github.com/bastiangx/wordfind/internal/cli"
	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/finder"
	"github.com/bastiangx/wordfind/pkg/games"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

const (
	Version = "0.1.0"
	AppName = "wordfind"
	gh      = "https://github.com/bastiangx/wordfind"
)

// sigHandler cancels the running command on the first signal and exits if it
// hasn't returned shortly after, e.g. while the shell waits on stdin.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		select {
		case <-c:
		case <-time.After(time.Second):
		}
		os.Exit(1)
	}()
}

// app carries the global flags and, once loaded, the query engine shared by
// all commands.
type app struct {
	configPath string
	dictPath   string
	cachePath  string
	debug      bool
	plain      bool
	strict     bool

	cfg        *config.Config
	usedConfig string
	resolver   *utils.PathResolver
	wordList   string
	corpus     *dictionary.Corpus
	finder     *finder.Finder
	solver     *games.Solver
	printer    *shell.Printer
}

// setup loads the config and the logger. It runs before every command.
func (a *app) setup(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if a.debug {
		log.SetLevel(log.DebugLevel)
	}
	cfg, used, err := config.LoadConfigWithPriority(a.configPath)
	if err != nil {
		return ctx, err
	}

	level, timestamps := cfg.Log.Level, cfg.Log.Timestamps
	if a.debug {
		level, timestamps = "debug", true
	}
	if err := logger.Setup(level, timestamps, cfg.Log.Formatter); err != nil {
		log.Warnf("Ignoring [log] config: %v", err)
		_ = logger.Setup("warn", false, "text")
	}

	if a.dictPath != "" {
		cfg.Dict.Path = a.dictPath
	}
	if a.cachePath != "" {
		cfg.Dict.CachePath = a.cachePath
		cfg.Dict.UseCache = true
	}
	if a.strict {
		cfg.Query.StrictCounts = true
	}
	a.cfg, a.usedConfig = cfg, used
	a.printer = shell.NewPrinter(os.Stdout, a.plain)
	log.Debug("Config loaded", "path", used, "dict", cfg.Dict.Path, "cache", cfg.Dict.UseCache)
	return ctx, nil
}

// load opens the dictionary and builds the engine.
func (a *app) load() error {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Print("Either env is not set or system is not supported")
		return fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	a.resolver = pr

	path, ok := pr.ResolveWordList(a.cfg.Dict.Path)
	if !ok {
		return cli.Exit(fmt.Sprintf("word list not found at %s, pass --dict or set [dict] path in the config", path), 1)
	}
	a.wordList = path

	start := time.Now()
	var corpus *dictionary.Corpus
	if a.cfg.Dict.UseCache {
		corpus, err = dictionary.OpenCached(path, a.indexPath())
	} else {
		corpus, err = dictionary.Open(path)
	}
	if err != nil {
		return err
	}
	log.Debugf("Dictionary ready: %d words in [ %v ]", corpus.WordCount(), time.Since(start))

	a.corpus = corpus
	a.finder = finder.New(corpus, finder.Options{
		Wildcards:    a.cfg.Query.Wildcards,
		StrictCounts: a.cfg.Query.StrictCounts,
		IncludeSelf:  a.cfg.Query.IncludeSelf,
		Logger:       logger.New("finder"),
	})
	a.solver = games.NewSolver(a.finder, games.RulesFromConfig(a.cfg.Games))
	return nil
}

// indexPath is where the sorted cache of the current word list lives.
func (a *app) indexPath() string {
	if a.cfg.Dict.CachePath != "" {
		return a.cfg.Dict.CachePath
	}
	return filepath.Join(a.resolver.ConfigDir(), "cache", dictionary.CacheName(a.wordList))
}

// run wraps a command action so that it gets a loaded engine.
func (a *app) run(fn cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := a.load(); err != nil {
			return err
		}
		return fn(ctx, cmd)
	}
}

func requireArgs(cmd *cli.Command, n int) error {
	if cmd.NArg() < n {
		return cli.Exit(fmt.Sprintf("%s needs %d argument(s): %s", cmd.Name, n, cmd.ArgsUsage), 2)
	}
	return nil
}

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "count",
			Usage: "number of words in the dictionary",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				a.printer.Value("words", a.corpus.WordCount())
				return nil
			}),
		},
		{
			Name:  "largest",
			Usage: "the longest word in the dictionary",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				a.printer.Value("largest word", a.corpus.LargestWord())
				return nil
			}),
		},
		{
			Name:      "length",
			Usage:     "all words of exactly n letters",
			ArgsUsage: "<n>",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				n, err := strconv.Atoi(cmd.Args().First())
				if err != nil {
					return cli.Exit(fmt.Sprintf("length must be a number, got %q", cmd.Args().First()), 2)
				}
				a.printer.Words(fmt.Sprintf("length %d", n), a.finder.WordsOfLength(n))
				return nil
			}),
		},
		{
			Name:      "match",
			Usage:     "words fitting a pattern, ? - _ . stand for any letter",
			ArgsUsage: "<pattern>",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "ignore", Aliases: []string{"x"}, Usage: "letters the word must not contain"},
				&cli.StringFlag{Name: "require", Aliases: []string{"r"}, Usage: "letters the word must contain somewhere"},
			},
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				pattern := cmd.Args().First()
				words, err := a.finder.PotentialWords(pattern, cmd.String("ignore"), cmd.String("require"))
				if err != nil {
					return err
				}
				a.printer.Words(fmt.Sprintf("pattern '%s'", pattern), words)
				return nil
			}),
		},
		{
			Name: "wordle",
			Usage: `candidates for a Wordle board, green letters in the pattern
			https://www.nytimes.com/games/wordle/index.html`,
			ArgsUsage: "<pattern>",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "grey", Aliases: []string{"g"}, Usage: "letters known not to be in the word"},
				&cli.StringFlag{Name: "yellow", Aliases: []string{"y"}, Usage: "letters in the word at an unknown position"},
			},
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				pattern := cmd.Args().First()
				words, err := a.solver.Wordle(pattern, cmd.String("grey"), cmd.String("yellow"))
				if err != nil {
					return err
				}
				a.printer.Words(fmt.Sprintf("wordle '%s'", pattern), words)
				return nil
			}),
		},
		{
			Name:      "letters",
			Usage:     "words that can be spelled from the given letters",
			ArgsUsage: "<letters>",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "min", Usage: "minimum word length"},
				&cli.IntFlag{Name: "max", Usage: "maximum word length, 0 for no limit"},
				&cli.BoolFlag{Name: "no-repeats", Aliases: []string{"n"}, Usage: "skip words that use a letter twice"},
			},
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				letters := cmd.Args().First()
				r := finder.Between(cmd.Int("min"), cmd.Int("max"))
				words, err := a.finder.WordsFromLetters(letters, r, cmd.Bool("no-repeats"))
				if err != nil {
					return err
				}
				a.printer.Words(fmt.Sprintf("letters '%s' (%s)", letters, r), words)
				return nil
			}),
		},
		{
			Name:      "anagrams",
			Usage:     "words made of exactly the same letters",
			ArgsUsage: "<word>",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				word := cmd.Args().First()
				a.printer.Words(fmt.Sprintf("anagrams of '%s'", word), a.finder.Anagrams(word))
				return nil
			}),
		},
		{
			Name:      "complete",
			Usage:     "words starting with a prefix, shortest first",
			ArgsUsage: "<prefix>",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: -1, Usage: "number of completions, 0 for all (default from config)"},
			},
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				limit := cmd.Int("limit")
				if limit < 0 {
					limit = a.cfg.Query.CompletionLimit
				}
				prefix := cmd.Args().First()
				a.printer.Words(fmt.Sprintf("prefix '%s'", prefix), a.finder.Completions(prefix, limit))
				return nil
			}),
		},
		{
			Name: "bee",
			Usage: `Spelling Bee: words using the center letter and any of the outer ones
			https://spellingbeegame.org`,
			ArgsUsage: "<center> <outer>",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 2); err != nil {
					return err
				}
				center, outer := cmd.Args().Get(0), cmd.Args().Get(1)
				words, err := a.solver.SpellingBee(center, outer)
				if err != nil {
					return err
				}
				a.printer.Words(fmt.Sprintf("spelling bee '%s' + '%s'", center, outer), words)
				return nil
			}),
		},
		{
			Name:      "polygon",
			Usage:     "The Times Polygon: Spelling Bee with a maximum word length",
			ArgsUsage: "<center> <outer>",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 2); err != nil {
					return err
				}
				center, outer := cmd.Args().Get(0), cmd.Args().Get(1)
				words, err := a.solver.Polygon(center, outer)
				if err != nil {
					return err
				}
				a.printer.Words(fmt.Sprintf("polygon '%s' + '%s'", center, outer), words)
				return nil
			}),
		},
		{
			Name:      "countdown",
			Usage:     "Countdown letters round: words by length, each letter used at most as drawn",
			ArgsUsage: "<letters>",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, 1); err != nil {
					return err
				}
				res, err := a.solver.Countdown(strings.Join(cmd.Args().Slice(), ""))
				if err != nil {
					return err
				}
				a.printer.Countdown(res)
				return nil
			}),
		},
		{
			Name: "cashsquare",
			Usage: `Cash Square: pick four rows so that every column is a word too
			wordfind cashsquare aver flap gent lime newt`,
			ArgsUsage: "<row> <row> <row> <row> [row...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show progress bar"},
			},
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				if err := requireArgs(cmd, games.CashSquareSize); err != nil {
					return err
				}
				cs, err := a.solver.NewCashSquare(cmd.Args().Slice())
				if err != nil {
					return err
				}
				log.Debug("Cash square", "columns", cs.Columns, "combinations", cs.Combinations())

				steps := int64(len(cs.Candidates[0]))
				var bar *progressbar.ProgressBar
				if cmd.Bool("progress") {
					bar = progressbar.Default(steps, "searching")
				} else {
					bar = progressbar.DefaultSilent(steps)
				}
				solutions, err := cs.Solve(ctx, func() { _ = bar.Add(1) })
				_ = bar.Finish()
				if err != nil {
					return err
				}
				a.printer.CashSquare(solutions)
				return nil
			}),
		},
		{
			Name:      "index",
			Usage:     "write the sorted msgpack index of the word list",
			ArgsUsage: "[output]",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				out := cmd.Args().First()
				if out == "" {
					out = a.indexPath()
				}
				if err := a.corpus.SaveSorted(out); err != nil {
					return err
				}
				a.printer.Value("index", out)
				return nil
			}),
		},
		{
			Name:  "info",
			Usage: "show the dictionary and config in use",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				format, err := dictionary.DetectFileFormat(a.wordList)
				if err != nil {
					return err
				}
				a.printer.Value("word list", utils.GetAbsolutePath(a.wordList))
				a.printer.Value("format", format)
				a.printer.Value("words", a.corpus.WordCount())
				a.printer.Value("longest", fmt.Sprintf("%s (%d letters)", a.corpus.LargestWord(), a.corpus.MaxLength()))
				if a.cfg.Dict.UseCache {
					a.printer.Value("index", a.indexPath())
				}
				a.printer.Value("config", utils.GetAbsolutePath(a.usedConfig))
				return nil
			}),
		},
		{
			Name:  "shell",
			Usage: "interactive query shell, keeps the dictionary loaded",
			Action: a.run(func(ctx context.Context, cmd *cli.Command) error {
				log.SetReportTimestamp(false)
				h := shell.NewInputHandler(a.finder, a.solver, a.printer, a.cfg.Query.CompletionLimit)
				return h.Start(ctx, os.Stdin)
			}),
		},
		{
			Name:  "config",
			Usage: "print the config path, --reset rewrites it with defaults",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "reset", Usage: "overwrite the default config file with built-in defaults"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Bool("reset") {
					path, err := config.RebuildConfigFile()
					if err != nil {
						return fmt.Errorf("failed to rebuild config: %w", err)
					}
					a.printer.Value("config", path)
					return nil
				}
				a.printer.Value("config", utils.GetAbsolutePath(a.usedConfig))
				return nil
			},
		},
		{
			Name:  "version",
			Usage: "show current version",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				showVersion()
				return nil
			},
		},
	}
}

// showVersion prints a short styled banner to stderr.
func showVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordFind ] Finds words for puzzles and games")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available commands")
	l.Print("Github Repo", "gh", gh)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	a := &app{}
	cmd := &cli.Command{
		Name:    AppName,
		Usage:   "find words for puzzles and word games",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config.toml",
				Destination: &a.configPath,
			},
			&cli.StringFlag{
				Name:        "dict",
				Usage:       "word list, one word per line, or a sorted index",
				Destination: &a.dictPath,
			},
			&cli.StringFlag{
				Name:        "cache",
				Usage:       "path of the sorted index cache, enables caching",
				Destination: &a.cachePath,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "letters queries use each letter at most as often as given",
				Destination: &a.strict,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print bare words, one per line",
				Destination: &a.plain,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Aliases:     []string{"d"},
				Usage:       "toggle debug mode",
				Destination: &a.debug,
			},
		},
		Before:   a.setup,
		Commands: a.commands(),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
