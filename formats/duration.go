package formats

import (
	"time"

	"github.com/apstndb/seuss/parser"
)

var durationUnit = parser.EnumStrings("ns", "us", "µs", "μs", "ms", "s", "m", "h").CaseSensitive()

// DurationText matches an optionally signed sequence of decimal numbers with unit
// suffixes and returns it unchanged.
var DurationText = joined(
	optionalText(sign),
	parser.Map(parser.Many1(joined(
		digitRun,
		optionalText(joined(parser.String("."), digitRun)),
		durationUnit,
	)), concat))

// Duration parses a sequence of decimal numbers with unit suffixes, such as
// "300ms", "-1.5h" or "2h45m". The value is computed by time.ParseDuration,
// so overflow is an error. A bare "0" needs a unit.
var Duration = parser.WithTransform(DurationText, time.ParseDuration)
