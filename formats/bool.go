package formats

import "github.com/apstndb/seuss/parser"

// Bool parses the spellings accepted by strconv.ParseBool, case-insensitively:
// 1, t, true, 0, f, false.
var Bool parser.Parser[bool] = parser.Enum(map[string]bool{
	"1": true, "t": true, "true": true,
	"0": false, "f": false, "false": false,
})
