//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package main is a command line tool that evaluates inputs against parser-combinator grammars.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/apstndb/seuss/enums"
	"github.com/apstndb/seuss/internal/batch"
	"github.com/apstndb/seuss/parser"
)

type globalOptions struct {
	Seuss seussOptions `group:"seuss"`
}

// We can't use `default` because seuss uses multiple flags.NewParser() to process config files and flags.
type seussOptions struct {
	Grammar     string   `long:"grammar" short:"g" description:"Grammar to evaluate inputs with. See --list." default-mask:"isodate"`
	Execute     []string `long:"execute" short:"e" description:"Evaluate the given input and quit. Can be repeated."`
	File        string   `long:"file" short:"f" description:"Evaluate each line of the file and quit."`
	All         bool     `long:"all" short:"a" description:"Report every result including partial and ambiguous ones."`
	Limit       int      `long:"limit" description:"Maximum number of results per input with --all." default-mask:"100"`
	Display     string   `long:"display" short:"d" description:"Output format (TABLE|VERTICAL|JSON|YAML|DEBUG)." default-mask:"TABLE"`
	Parallel    int      `long:"parallel" description:"Number of inputs evaluated concurrently in batch mode." default-mask:"1"`
	Progress    bool     `long:"progress" description:"Show a progress bar on stderr in batch mode."`
	Grammars    string   `long:"grammars" description:"YAML or JSON catalog of additional grammars."`
	List        bool     `long:"list" description:"List available grammars and quit."`
	Prompt      *string  `long:"prompt" description:"Set the prompt to the specified format" default-mask:"seuss:%g> "`
	HistoryFile *string  `long:"history" description:"Set the history file to the specified path" default-mask:"/tmp/seuss_readline.tmp"`
	NoHighlight bool     `long:"no-highlight" description:"Disable input highlighting in interactive mode."`
	Trace       bool     `long:"trace" description:"Log every grammar invocation and result to stderr."`
	LogLevel    string   `long:"log-level" description:"Log level (DEBUG|INFO|WARN|ERROR)." default-mask:"WARN"`
	Help        bool     `long:"help" short:"h" hidden:"true"`
}

const (
	defaultGrammar     = "isodate"
	defaultPrompt      = "seuss:%g> "
	defaultHistoryFile = "/tmp/seuss_readline.tmp"
)

func main() {
	var gopts globalOptions

	// process config files at first
	configFileParser := flags.NewParser(&gopts, flags.Default)
	if err := readConfigFile(configFileParser); err != nil {
		exitf("Invalid config file format: %v\n", err)
	}

	// then, process command line options with higher precedence than configuration files
	flagParser := flags.NewParser(&gopts, flags.PrintErrors|flags.PassDoubleDash)

	// TODO: Workaround to avoid to display config value as default
	parserForHelp := flags.NewParser(&globalOptions{}, flags.Default)

	if _, err := flagParser.Parse(); flags.WroteHelp(err) {
		return
	} else if err != nil {
		parserForHelp.WriteHelp(os.Stderr)
		exitf("Invalid options\n")
	} else if gopts.Seuss.Help {
		parserForHelp.WriteHelp(os.Stderr)
		return
	}

	opts := gopts.Seuss

	logLevel, err := parseLogLevel(lo.CoalesceOrEmpty(opts.LogLevel, "WARN"))
	if err != nil {
		exitf("%v\n", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	fs := afero.NewOsFs()

	cli, err := newCliFromOptions(opts, fs)
	if err != nil {
		exitf("%v\n", err)
	}
	defer func() {
		if cli.Tracer != nil {
			_ = cli.Tracer.Sync()
		}
	}()

	if opts.List {
		if err := printGrammars(os.Stdout, cli.Registry); err != nil {
			exitf("%v\n", err)
		}
		return
	}

	inputs, err := collectInputs(opts, fs)
	if err != nil {
		exitf("%v\n", err)
	}

	ctx := context.Background()
	interactive := inputs == nil
	if interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		exitf("cannot run in interactive mode: stdin is not a terminal\n")
	}

	err = lo.TernaryF(interactive,
		func() error { return cli.RunInteractive(ctx) },
		func() error { return cli.RunBatch(ctx, inputs) })

	os.Exit(GetExitCode(err))
}

// newCliFromOptions builds the registry, loads the catalog and resolves the options.
func newCliFromOptions(opts seussOptions, fs afero.Fs) (*Cli, error) {
	registry := NewRegistry()
	if opts.Grammars != "" {
		catalog, err := LoadCatalog(fs, opts.Grammars)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(registry); err != nil {
			return nil, err
		}
	}

	grammar, err := registry.Lookup(lo.CoalesceOrEmpty(opts.Grammar, defaultGrammar))
	if err != nil {
		return nil, err
	}

	display := enums.DisplayModeTable
	if opts.Display != "" {
		display, err = enums.DisplayModeString(opts.Display)
		if err != nil {
			return nil, err
		}
	}

	if opts.Limit < 0 || opts.Parallel < 0 {
		return nil, fmt.Errorf("invalid parameters: --limit and --parallel must not be negative")
	}

	var tracer *zap.Logger
	if opts.Trace {
		zapDevelopmentConfig := zap.NewDevelopmentConfig()
		zapDevelopmentConfig.DisableCaller = true
		zapDevelopmentConfig.DisableStacktrace = true
		tracer, err = zapDevelopmentConfig.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build trace logger: %w", err)
		}
	}

	return &Cli{
		Registry:    registry,
		Grammar:     grammar,
		Display:     display,
		Mode:        lo.Ternary(opts.All, enums.ResultModeAll, enums.ResultModeStrict),
		Parallelism: max(opts.Parallel, 1),
		Progress:    opts.Progress,
		Limit:       lo.CoalesceOrEmpty(opts.Limit, batch.DefaultLimit),
		Prompt:      lo.FromPtrOr(opts.Prompt, defaultPrompt),
		HistoryFile: lo.FromPtrOr(opts.HistoryFile, defaultHistoryFile),
		Highlight:   !opts.NoHighlight,
		Tracer:      tracer,
		InStream:    os.Stdin,
		OutStream:   os.Stdout,
		ErrStream:   os.Stderr,
		Fs:          fs,
	}, nil
}

var logLevels = parser.Enum(map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
})

func parseLogLevel(s string) (slog.Level, error) {
	level, err := parser.ParseStrict(logLevels, s)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q, must be one of %v", s, logLevels.Words())
	}
	return level, nil
}

// collectInputs returns the batch inputs from --execute, --file or stdin, in that order of precedence.
// It returns nil when there is no batch input, meaning interactive mode.
func collectInputs(opts seussOptions, fs afero.Fs) ([]string, error) {
	switch {
	case len(opts.Execute) > 0 && opts.File != "":
		return nil, fmt.Errorf("invalid combination: --execute and --file are mutually exclusive")
	case len(opts.Execute) > 0:
		return opts.Execute, nil
	case opts.File != "":
		var b []byte
		var err error
		if opts.File == "-" {
			b, err = io.ReadAll(os.Stdin)
		} else {
			b, err = afero.ReadFile(fs, opts.File)
		}
		if err != nil {
			return nil, fmt.Errorf("read from file %v failed: %w", opts.File, err)
		}
		return splitInputs(string(b)), nil
	}

	stdin, err := readStdin()
	if err != nil {
		return nil, fmt.Errorf("read from stdin failed: %w", err)
	}
	if stdin == "" {
		return nil, nil
	}
	return splitInputs(stdin), nil
}

// splitInputs returns the non-blank lines of s. A trailing carriage return is removed from each line.
func splitInputs(s string) []string {
	lines := lo.Map(strings.Split(s, "\n"), func(line string, _ int) string {
		return strings.TrimSuffix(line, "\r")
	})
	return lo.Filter(lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
}

func exitf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}

const cnfFileName = ".seuss.cnf"

func readConfigFile(parser *flags.Parser) error {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	cwdCnfFile := filepath.Join(cwd, cnfFileName)
	cnfFiles = append(cnfFiles, cwdCnfFile)

	iniParser := flags.NewIniParser(parser)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		if _, err := os.Stat(cnfFile); err != nil {
			continue
		}
		if err := iniParser.ParseFile(cnfFile); err != nil {
			return err
		}
	}

	return nil
}

func readStdin() (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	} else {
		return "", nil
	}
}
