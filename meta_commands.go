package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/kballard/go-shellquote"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/apstndb/seuss/enums"
	"github.com/apstndb/seuss/parser"
)

// MetaCommand is a REPL command starting with a backslash.
type MetaCommand interface {
	// Execute applies the command to c. exit reports whether the REPL should end.
	Execute(c *Cli) (exit bool, err error)
}

type UseMetaCommand struct {
	Grammar string
}

func (m *UseMetaCommand) Execute(c *Cli) (bool, error) {
	if err := c.Use(m.Grammar); err != nil {
		return false, err
	}
	fmt.Fprintf(c.OutStream, "Using grammar %s.\n", c.Grammar.Name)
	return false, nil
}

type ResultModeMetaCommand struct {
	Mode enums.ResultMode
}

func (m *ResultModeMetaCommand) Execute(c *Cli) (bool, error) {
	c.Mode = m.Mode
	return false, nil
}

type DisplayMetaCommand struct {
	Display enums.DisplayMode
}

func (m *DisplayMetaCommand) Execute(c *Cli) (bool, error) {
	c.Display = m.Display
	return false, nil
}

type GrammarsMetaCommand struct{}

func (m *GrammarsMetaCommand) Execute(c *Cli) (bool, error) {
	return false, printGrammars(c.OutStream, c.Registry)
}

type HelpMetaCommand struct{}

var metaCommandHelp = heredoc.Doc(`
	\use NAME        switch to the grammar NAME
	\all             report every result, including partial and ambiguous ones
	\strict          report only the single complete result (default)
	\display MODE    TABLE, VERTICAL, JSON, YAML or DEBUG
	\grammars        list the available grammars
	\help            show this help
	\quit, \q        leave
`)

func (m *HelpMetaCommand) Execute(c *Cli) (bool, error) {
	_, err := io.WriteString(c.OutStream, metaCommandHelp)
	return false, err
}

type QuitMetaCommand struct{}

func (m *QuitMetaCommand) Execute(*Cli) (bool, error) {
	return true, nil
}

var metaCommandName = parser.EnumStrings("use", "all", "strict", "display", "grammars", "help", "quit", "q").CaseSensitive()

// ParseMetaCommand parses a line such as `\use isodate`. Arguments follow shell quoting rules.
func ParseMetaCommand(input string) (MetaCommand, error) {
	trimmed, ok := strings.CutPrefix(strings.TrimSpace(input), `\`)
	if !ok {
		return nil, errors.New("invalid meta command format")
	}

	words, err := shellquote.Split(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid meta command arguments: %w", err)
	}
	if len(words) == 0 {
		return nil, errors.New("invalid meta command format")
	}

	name, args := words[0], words[1:]
	command, err := parser.ParseStrict(metaCommandName, name)
	if err != nil {
		return nil, fmt.Errorf("unsupported meta command: \\%s", name)
	}

	wantArgs := 0
	if command == "use" || command == "display" {
		wantArgs = 1
	}
	if len(args) != wantArgs {
		return nil, fmt.Errorf("\\%s takes %d argument(s), got %d", command, wantArgs, len(args))
	}

	switch command {
	case "use":
		return &UseMetaCommand{Grammar: args[0]}, nil
	case "all":
		return &ResultModeMetaCommand{Mode: enums.ResultModeAll}, nil
	case "strict":
		return &ResultModeMetaCommand{Mode: enums.ResultModeStrict}, nil
	case "display":
		mode, err := enums.DisplayModeString(args[0])
		if err != nil {
			return nil, err
		}
		return &DisplayMetaCommand{Display: mode}, nil
	case "grammars":
		return &GrammarsMetaCommand{}, nil
	case "help":
		return &HelpMetaCommand{}, nil
	default:
		return &QuitMetaCommand{}, nil
	}
}

// IsMetaCommand checks if a line starts with a backslash (meta command)
func IsMetaCommand(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "\\")
}

func printGrammars(w io.Writer, r *Registry) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})
	table.Header(sliceOf("Name", "Description"))
	for _, g := range r.Grammars() {
		if err := table.Append(sliceOf(g.Name, g.Description)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return table.Render()
}
