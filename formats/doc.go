// Package formats provides ready-made grammars for small structured formats
// built on package parser: ISO 8601 calendar dates, integer and decimal
// literals, booleans, Go-style durations and bracketed lists.
//
// Every grammar is an ordinary parser.Parser value, so it can be used on its
// own with parser.ParseStrict or embedded in a larger grammar.
package formats
