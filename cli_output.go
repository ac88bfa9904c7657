package main

// This file renders evaluation outcomes in the supported display modes.
// All formatters return write errors instead of logging them.

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/apstndb/lox"
	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-runewidth"
	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/apstndb/seuss/enums"
	"github.com/apstndb/seuss/internal/batch"
	"github.com/apstndb/seuss/parser"
)

// resultRow is one line of output: the strict result of an input, one of its results in
// ALL mode, or its failure.
type resultRow struct {
	Input string `json:"input" yaml:"input"`

	// Result is the 1-based position of the result in ALL mode.
	Result int     `json:"result,omitzero" yaml:"result,omitempty"`
	Value  any     `json:"value" yaml:"value"`
	Rest   *string `json:"rest,omitempty" yaml:"rest,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func toRows(outcomes []batch.Outcome[any], mode enums.ResultMode) []resultRow {
	var rows []resultRow
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			rows = append(rows, resultRow{Input: o.Input, Error: o.Err.Error()})
		case mode == enums.ResultModeAll:
			for i, r := range o.Results {
				rows = append(rows, resultRow{Input: o.Input, Result: i + 1, Value: r.Value, Rest: lo.ToPtr(r.Rest)})
			}
		default:
			rows = append(rows, resultRow{Input: o.Input, Value: o.Value})
		}
	}
	return rows
}

func columnNames(mode enums.ResultMode) []string {
	if mode == enums.ResultModeAll {
		return sliceOf("Input", "#", "Value", "Rest", "Error")
	}
	return sliceOf("Input", "Value", "Error")
}

func (r resultRow) cells(mode enums.ResultMode) []string {
	value := lox.IfOrEmpty(r.Error == "", formatValue(r.Value))
	if mode == enums.ResultModeAll {
		return sliceOf(r.Input,
			lox.IfOrEmpty(r.Result > 0, strconv.Itoa(r.Result)),
			value,
			quoteRest(r.Rest),
			r.Error)
	}
	return sliceOf(r.Input, value, r.Error)
}

func quoteRest(rest *string) string {
	if rest == nil {
		return ""
	}
	return strconv.Quote(*rest)
}

// formatValue renders a grammar value for the text display modes.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func sliceOf[V any](vs ...V) []V {
	return vs
}

// writeBuffered writes to a temporary buffer first, and only writes to out if no error occurs.
func writeBuffered(out io.Writer, buildFunc func(out io.Writer) error) error {
	var buf strings.Builder
	if err := buildFunc(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(out, buf.String())
	return err
}

// FormatFunc writes evaluation outcomes to out.
type FormatFunc func(out io.Writer, outcomes []batch.Outcome[any], mode enums.ResultMode) error

// NewFormatter returns the formatter of the display mode.
func NewFormatter(mode enums.DisplayMode) (FormatFunc, error) {
	switch mode {
	case enums.DisplayModeTable, enums.DisplayModeUnspecified:
		return formatTable, nil
	case enums.DisplayModeVertical:
		return formatVertical, nil
	case enums.DisplayModeJSON:
		return formatJSON, nil
	case enums.DisplayModeYAML:
		return formatYAML, nil
	case enums.DisplayModeDebug:
		return formatDebug, nil
	default:
		return nil, fmt.Errorf("unsupported display mode: %v", mode)
	}
}

// formatTable formats output as an ASCII table.
func formatTable(out io.Writer, outcomes []batch.Outcome[any], mode enums.ResultMode) error {
	rows := toRows(outcomes, mode)
	if len(rows) == 0 {
		return nil
	}

	return writeBuffered(out, func(w io.Writer) error {
		table := tablewriter.NewTable(w,
			tablewriter.WithRenderer(
				renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
			tablewriter.WithHeaderAlignment(tw.AlignLeft),
			tablewriter.WithTrimSpace(tw.Off),
			tablewriter.WithHeaderAutoFormat(tw.Off),
		).Configure(func(config *tablewriter.Config) {
			config.Row.Formatting.AutoWrap = tw.WrapNone
		})

		table.Header(columnNames(mode))
		for _, row := range rows {
			if err := table.Append(row.cells(mode)); err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		return nil
	})
}

// formatVertical prints every row as a block of name: value lines.
func formatVertical(out io.Writer, outcomes []batch.Outcome[any], mode enums.ResultMode) error {
	names := columnNames(mode)
	width := lo.Max(lo.Map(names, func(name string, _ int) int { return runewidth.StringWidth(name) }))

	for i, row := range toRows(outcomes, mode) {
		if _, err := fmt.Fprintf(out, "*************************** %d. row ***************************\n", i+1); err != nil {
			return err
		}
		for name, value := range hiter.Pairs(slices.Values(names), slices.Values(row.cells(mode))) {
			if _, err := fmt.Fprintf(out, "%s:%s\n", runewidth.FillLeft(name, width), lox.IfOrEmpty(value != "", " "+value)); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatJSON(out io.Writer, outcomes []batch.Outcome[any], mode enums.ResultMode) error {
	rows := toRows(outcomes, mode)
	if rows == nil {
		rows = []resultRow{}
	}
	return json.MarshalEncode(jsontext.NewEncoder(out, jsontext.WithIndent("  ")), rows)
}

func formatYAML(out io.Writer, outcomes []batch.Outcome[any], mode enums.ResultMode) error {
	return yaml.NewEncoder(out, yaml.UseJSONMarshaler()).Encode(toRows(outcomes, mode))
}

// formatDebug dumps the outcomes as they are, including the raw parser results.
func formatDebug(out io.Writer, outcomes []batch.Outcome[any], _ enums.ResultMode) error {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	_, err := printer.Fprintln(out, outcomes)
	return err
}

var (
	verdictOK        = color.New(color.FgGreen, color.Bold)
	verdictAmbiguous = color.New(color.FgYellow, color.Bold)
	verdictFailed    = color.New(color.FgRed, color.Bold)
)

// verdict summarizes an outcome in one line for interactive mode.
func verdict(o batch.Outcome[any], mode enums.ResultMode) string {
	switch {
	case o.OK() && mode == enums.ResultModeAll:
		complete := lo.CountBy(o.Results, func(r parser.Result[any]) bool { return r.Rest == "" })
		return verdictOK.Sprintf("%d results, %d complete", len(o.Results), complete)
	case o.OK():
		return verdictOK.Sprint("accepted")
	case batch.IsAmbiguous(o.Err):
		return verdictAmbiguous.Sprint("ambiguous")
	default:
		return verdictFailed.Sprint("rejected")
	}
}
