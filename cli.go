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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/apstndb/seuss/enums"
	"github.com/apstndb/seuss/internal/batch"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// Cli evaluates inputs against the current grammar, either in batch or interactively.
type Cli struct {
	Registry *Registry
	Grammar  Grammar
	Display  enums.DisplayMode
	Mode     enums.ResultMode

	// Parallelism and Limit are passed to batch evaluation.
	Parallelism int
	Limit       int

	// Progress shows a progress bar on ErrStream during batch evaluation.
	Progress bool

	Prompt      string
	HistoryFile string
	Highlight   bool

	// Evaluated counts the inputs evaluated in interactive mode.
	Evaluated int

	// Tracer, if set, logs every invocation of the grammar parser.
	Tracer *zap.Logger

	InStream  io.ReadCloser
	OutStream io.Writer
	ErrStream io.Writer
	Fs        afero.Fs
}

func (c *Cli) batchOptions() batch.Options {
	return batch.Options{
		Parallelism: c.Parallelism,
		All:         c.Mode == enums.ResultModeAll,
		Limit:       c.Limit,
	}
}

func (c *Cli) grammar() Grammar {
	return c.Grammar.traced(c.Tracer)
}

// Use switches the current grammar.
func (c *Cli) Use(name string) error {
	g, err := c.Registry.Lookup(name)
	if err != nil {
		return err
	}
	c.Grammar = g
	return nil
}

// RunBatch evaluates every input and prints the outcomes.
// The returned error carries exitCodeError if any input was rejected.
func (c *Cli) RunBatch(ctx context.Context, inputs []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go handleInterrupt(ctx, cancel)

	slog.Debug("evaluating batch", "grammar", c.Grammar.Name, "inputs", len(inputs), "mode", c.Mode)
	opts := c.batchOptions()
	var teardown func(aborted bool)
	if c.Progress && len(inputs) > 0 {
		opts.Done, teardown = c.startProgress(ctx, len(inputs))
	}

	outcomes, err := batch.Run(ctx, c.grammar().Parser, inputs, opts)
	if teardown != nil {
		teardown(err != nil)
	}
	if err != nil {
		c.PrintBatchError(err)
		return NewExitCodeError(exitCodeError)
	}

	if err := c.PrintOutcomes(c.OutStream, outcomes); err != nil {
		c.PrintBatchError(err)
		return NewExitCodeError(exitCodeError)
	}

	failed := batch.Failed(outcomes)
	if len(failed) > 0 {
		slog.Debug("inputs rejected", "count", len(failed))
		return NewExitCodeError(exitCodeError)
	}
	return nil
}

func (c *Cli) startProgress(ctx context.Context, total int) (increment func(), teardown func(aborted bool)) {
	p := mpb.NewWithContext(ctx, mpb.WithOutput(c.ErrStream))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Spinner(nil, decor.WCSyncSpaceR),
			decor.Name(c.Grammar.Name, decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncSpace)),
		mpb.AppendDecorators(decor.Percentage(decor.WCSyncSpace)),
		mpb.BarRemoveOnComplete(),
	)
	return bar.Increment, func(aborted bool) {
		if aborted {
			bar.Abort(true)
		}
		p.Wait()
	}
}

// RunInteractive reads inputs line by line until EOF or \quit.
func (c *Cli) RunInteractive(ctx context.Context) error {
	ed, history, err := initializeLineEditor(c)
	if err != nil {
		return NewExitCodeError(c.ExitOnError(err))
	}

	fmt.Fprintf(c.OutStream, "Using grammar %s. Type \\help for commands.\n", c.Grammar.Name)

	for {
		setLineEditor(ed, c)

		line, err := ed.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.OutStream, "Bye")
			return nil
		case isInterrupted(err):
			continue
		case err != nil:
			c.PrintInteractiveError(err)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		history.Add(line)

		if IsMetaCommand(line) {
			cmd, err := ParseMetaCommand(line)
			if err != nil {
				c.PrintInteractiveError(err)
				continue
			}
			exit, err := cmd.Execute(c)
			if err != nil {
				c.PrintInteractiveError(err)
				continue
			}
			if exit {
				fmt.Fprintln(c.OutStream, "Bye")
				return nil
			}
			continue
		}

		c.evaluateInteractive(line)
	}
}

func (c *Cli) evaluateInteractive(input string) {
	c.Evaluated++
	outcome := batch.Evaluate(c.grammar().Parser, input, c.batchOptions())
	if err := c.PrintOutcomes(c.OutStream, sliceOf(outcome)); err != nil {
		c.PrintInteractiveError(err)
		return
	}
	fmt.Fprintf(c.OutStream, "%s\n\n", verdict(outcome, c.Mode))
}

// PrintOutcomes writes outcomes in the current display mode.
func (c *Cli) PrintOutcomes(w io.Writer, outcomes []batch.Outcome[any]) error {
	format, err := NewFormatter(c.Display)
	if err != nil {
		return err
	}
	return format(w, outcomes, c.Mode)
}

func (c *Cli) ExitOnError(err error) int {
	printError(c.ErrStream, err)
	return exitCodeError
}

func (c *Cli) PrintInteractiveError(err error) {
	printError(c.OutStream, err)
}

func (c *Cli) PrintBatchError(err error) {
	printError(c.ErrStream, err)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR: %s\n", err)
}

var promptRe = regexp.MustCompile(`%.`)

// getInterpolatedPrompt expands %g (grammar), %m (result mode), %d (display mode),
// %c (inputs evaluated so far), %n and %%.
func (c *Cli) getInterpolatedPrompt(prompt string) string {
	return promptRe.ReplaceAllStringFunc(prompt, func(s string) string {
		switch s {
		case "%%":
			return "%"
		case "%n":
			return "\n"
		case "%g":
			return c.Grammar.Name
		case "%c":
			return strconv.Itoa(c.Evaluated)
		case "%m":
			return strings.ToLower(c.Mode.String())
		case "%d":
			return strings.ToLower(lo.Ternary(c.Display == enums.DisplayModeUnspecified, enums.DisplayModeTable, c.Display).String())
		default:
			return s
		}
	})
}

func handleInterrupt(ctx context.Context, cancel context.CancelFunc) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	defer signal.Stop(ch)

	select {
	case <-ch:
		cancel()
	case <-ctx.Done():
	}
}
