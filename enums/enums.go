package enums

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/apstndb/seuss/parser"
)

// DisplayMode represents different output display formats
type DisplayMode int

const (
	DisplayModeUnspecified DisplayMode = iota
	DisplayModeTable
	DisplayModeVertical
	DisplayModeJSON
	DisplayModeYAML
	DisplayModeDebug
)

var displayModeNames = map[DisplayMode]string{
	DisplayModeUnspecified: "UNSPECIFIED",
	DisplayModeTable:       "TABLE",
	DisplayModeVertical:    "VERTICAL",
	DisplayModeJSON:        "JSON",
	DisplayModeYAML:        "YAML",
	DisplayModeDebug:       "DEBUG",
}

var displayModeParser = parser.Enum(lo.Invert(lo.OmitByKeys(displayModeNames, []DisplayMode{DisplayModeUnspecified})))

func (i DisplayMode) String() string {
	if name, ok := displayModeNames[i]; ok {
		return name
	}
	return fmt.Sprintf("DisplayMode(%d)", int(i))
}

// DisplayModeString parses a display mode name case-insensitively.
func DisplayModeString(s string) (DisplayMode, error) {
	mode, err := parser.ParseStrict(displayModeParser, strings.TrimSpace(s))
	if err != nil {
		return DisplayModeUnspecified, fmt.Errorf("%s does not belong to DisplayMode values", s)
	}
	return mode, nil
}

// DisplayModeStrings returns the names accepted by DisplayModeString.
func DisplayModeStrings() []string {
	return displayModeParser.Words()
}

// ResultMode selects how many results are reported per input.
type ResultMode int

const (
	// ResultModeStrict reports the single result that consumes the whole input.
	ResultModeStrict ResultMode = iota
	// ResultModeAll reports every result, including partial and ambiguous ones.
	ResultModeAll
)

func (i ResultMode) String() string {
	return lo.Ternary(i == ResultModeAll, "ALL", "STRICT")
}
