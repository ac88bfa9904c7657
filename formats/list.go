package formats

import "github.com/apstndb/seuss/parser"

var spaces = parser.Many(parser.Whitespace)

// Lexeme runs p and then skips any whitespace after it.
func Lexeme[T any](p parser.Parser[T]) parser.Parser[T] {
	return parser.Passthrough(p, spaces)
}

// Symbol matches s as a lexeme.
func Symbol(s string) parser.Parser[string] {
	return Lexeme(parser.String(s))
}

// List parses a bracketed, comma separated list of elements, such as "[1, 2, 3]".
// Whitespace is allowed around brackets, commas and elements.
func List[T any](elem parser.Parser[T]) parser.Parser[[]T] {
	return parser.Then(parser.Then(spaces, Symbol("[")),
		parser.Passthrough(
			parser.SepBy(Lexeme(elem), Symbol(",")),
			Symbol("]")))
}
