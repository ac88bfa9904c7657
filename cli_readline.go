package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/nyaosorg/go-readline-ny"
	"github.com/nyaosorg/go-readline-ny/simplehistory"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/apstndb/seuss/parser"
)

// This file contains readline related code

type History interface {
	readline.IHistory
	Add(string)
}

type persistentHistory struct {
	filename string
	history  *simplehistory.Container
	fs       afero.Fs
}

func (p *persistentHistory) Len() int {
	return p.history.Len()
}

func (p *persistentHistory) At(i int) string {
	return p.history.At(i)
}

func (p *persistentHistory) Add(s string) {
	p.history.Add(s)
	file, err := p.fs.OpenFile(p.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		slog.Error("failed to open history file", "file", p.filename, "err", err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close history file", "file", p.filename, "err", err)
		}
	}()
	if _, err := fmt.Fprintf(file, "%q\n", s); err != nil {
		slog.Error("failed to write to history file", "file", p.filename, "err", err)
	}
}

// newPersistentHistory loads the quoted lines of filename into h.
// A missing file is an empty history.
func newPersistentHistory(filename string, h *simplehistory.Container, fs afero.Fs) (History, error) {
	b, err := afero.ReadFile(fs, filename)
	if errors.Is(err, os.ErrNotExist) {
		return &persistentHistory{filename: filename, history: h, fs: fs}, nil
	}
	if err != nil {
		return nil, err
	}
	for _, s := range strings.Split(string(b), "\n") {
		if s == "" {
			continue
		}
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("history file format error, maybe you should remove %v, err: %w", filename, err)
		}
		h.Add(unquoted)
	}
	return &persistentHistory{filename: filename, history: h, fs: fs}, nil
}

func initializeLineEditor(c *Cli) (*readline.Editor, History, error) {
	history, err := newPersistentHistory(c.HistoryFile, simplehistory.New(), c.Fs)
	if err != nil {
		return nil, nil, err
	}

	ed := &readline.Editor{
		Writer:         c.OutStream,
		History:        history,
		HistoryCycling: true,
		PromptWriter: func(w io.Writer) (int, error) {
			return io.WriteString(w, c.getInterpolatedPrompt(c.Prompt))
		},
	}
	return ed, history, nil
}

type highlighter interface {
	FindAllStringIndex(string, int) [][]int
}

var _ highlighter = highlighterFunc(nil)

type highlighterFunc func(string, int) [][]int

func (f highlighterFunc) FindAllStringIndex(s string, i int) [][]int {
	return f(s, i)
}

// highlightResults bounds the results inspected per keystroke.
const highlightResults = 16

// consumedLength returns the length of the longest prefix of s that some result of p consumes,
// or -1 if p fails.
func consumedLength(p parser.Parser[any], s string) int {
	results := parser.Take(p, s, highlightResults)
	if len(results) == 0 {
		return -1
	}
	return len(s) - lo.Min(lo.Map(results, func(r parser.Result[any], _ int) int { return len(r.Rest) }))
}

// consumedHighlighter marks the whole line once the current grammar accepts all of it.
func consumedHighlighter(c *Cli) highlighterFunc {
	return func(s string, _ int) [][]int {
		if s == "" || IsMetaCommand(s) || consumedLength(c.Grammar.Parser, s) != len(s) {
			return nil
		}
		return sliceOf(sliceOf(0, len(s)))
	}
}

// remainderHighlighter marks the text that no result of the current grammar reaches.
func remainderHighlighter(c *Cli) highlighterFunc {
	return func(s string, _ int) [][]int {
		if s == "" || IsMetaCommand(s) {
			return nil
		}
		n := max(consumedLength(c.Grammar.Parser, s), 0)
		if n == len(s) {
			return nil
		}
		return sliceOf(sliceOf(n, len(s)))
	}
}

func colorToSequence(attr ...color.Attribute) string {
	var sb strings.Builder
	color.New(attr...).SetWriter(&sb)
	return sb.String()
}

func setLineEditor(ed *readline.Editor, c *Cli) {
	if color.NoColor || !c.Highlight {
		ed.Highlight = nil
		ed.DefaultColor = ""
		ed.ResetColor = ""
		return
	}

	ed.Highlight = []readline.Highlight{
		{Pattern: consumedHighlighter(c), Sequence: colorToSequence(color.FgGreen, color.Bold)},
		{Pattern: remainderHighlighter(c), Sequence: colorToSequence(color.FgRed, color.Underline)},
	}
	ed.ResetColor = colorToSequence(color.Reset)
	ed.DefaultColor = colorToSequence(color.Reset)
}

func isInterrupted(err error) bool {
	return errors.Is(err, readline.CtrlC)
}
