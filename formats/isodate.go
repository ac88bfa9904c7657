package formats

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/apstndb/seuss/parser"
)

// Digits parses exactly n decimal digits as a non-negative integer.
func Digits(n int) parser.Parser[int] {
	return parser.Map(parser.Replicate(n, parser.Digit), digitsValue)
}

func digitsValue(ds []string) int {
	return lo.Reduce(ds, func(acc int, d string, _ int) int {
		return acc*10 + int(d[0]-'0')
	}, 0)
}

type calendarDate struct {
	year, month, day int
}

func (d calendarDate) toTime() (time.Time, error) {
	t := time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
	if t.Year() != d.year || int(t.Month()) != d.month || t.Day() != d.day {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", d.year, d.month, d.day)
	}
	return t, nil
}

var dateSeparator = parser.String("-")

// ISODate parses a calendar date in the extended ISO 8601 form YYYY-MM-DD.
// The value is midnight UTC of that day. Dates that do not exist, such as
// 2023-02-29, are rejected.
var ISODate = parser.WithTransform(
	parser.AndThen(Digits(4), func(year int) parser.Parser[calendarDate] {
		return parser.AndThen(parser.Then(dateSeparator, Digits(2)), func(month int) parser.Parser[calendarDate] {
			return parser.Map(parser.Then(dateSeparator, Digits(2)), func(day int) calendarDate {
				return calendarDate{year: year, month: month, day: day}
			})
		})
	}),
	calendarDate.toTime)
