package formats

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/apstndb/seuss/parser"
)

var (
	sign     = parser.Characters("+-")
	digitRun = parser.Map(parser.Many1(parser.Digit), concat)
)

func concat(parts []string) string {
	return strings.Join(parts, "")
}

// optionalText matches p if it can, and the empty string only if it cannot.
func optionalText(p parser.Parser[string]) parser.Parser[string] {
	return parser.OrElse(p, parser.Pure(""))
}

// joined runs the parsers in order and concatenates the matched text.
func joined(ps ...parser.Parser[string]) parser.Parser[string] {
	return parser.Map(parser.Sequence(ps...), concat)
}

// IntegerText matches an optionally signed run of decimal digits and returns it unchanged.
var IntegerText = joined(optionalText(sign), digitRun)

// DecimalText matches a numeric literal with an optional sign, fraction and exponent,
// such as "42", "-3.14" or "6.02e23", and returns it unchanged.
var DecimalText = joined(
	optionalText(sign),
	digitRun,
	optionalText(joined(parser.String("."), digitRun)),
	optionalText(joined(parser.Characters("eE"), optionalText(sign), digitRun)),
)

// Integer parses an optionally signed decimal integer that fits in T.
func Integer[T constraints.Signed]() parser.Parser[T] {
	return parser.WithTransform(IntegerText, func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if int64(T(v)) != v {
			return 0, strconv.ErrRange
		}
		return T(v), nil
	})
}

// Natural parses an unsigned decimal integer that fits in T.
func Natural[T constraints.Unsigned]() parser.Parser[T] {
	return parser.WithTransform(digitRun, func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if uint64(T(v)) != v {
			return 0, strconv.ErrRange
		}
		return T(v), nil
	})
}

// Decimal parses a numeric literal as matched by DecimalText into a float64.
var Decimal = parser.WithTransform(DecimalText, func(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
})
