package formats

import (
	"strconv"

	"github.com/apstndb/seuss/parser"
)

var (
	quote         = parser.String(`"`)
	escapedChar   = joined(parser.String(`\`), parser.IsCharacter(func(rune) bool { return true }))
	unescapedChar = parser.IsCharacter(func(r rune) bool { return r != '"' && r != '\\' && r != '\n' })
	quotedBody    = parser.Map(parser.Many(parser.OrElse(escapedChar, unescapedChar)), concat)
)

// QuotedString parses a double-quoted string with Go escape sequences and returns its unquoted value.
// Malformed escapes such as "\q" are rejected.
var QuotedString = parser.WithTransform(joined(quote, quotedBody, quote), strconv.Unquote)
