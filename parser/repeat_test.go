package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/seuss/parser"
)

func TestReplicate(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		p     parser.Parser[string]
		input string
		want  []result[[]string]
	}{
		{"four digits", 4, parser.Digit, "1989", []result[[]string]{{Value: []string{"1", "9", "8", "9"}, Rest: ""}}},
		{"leaves the rest", 2, parser.Digit, "1989", []result[[]string]{{Value: []string{"1", "9"}, Rest: "89"}}},
		{"too few", 4, parser.Digit, "198", nil},
		{"zero on matching input", 0, parser.Digit, "1989", []result[[]string]{{Value: []string{}, Rest: "1989"}}},
		{"zero on failing input", 0, parser.Digit, "abc", []result[[]string]{{Value: []string{}, Rest: "abc"}}},
		{"zero on zero parser", 0, parser.Zero[string](), "", []result[[]string]{{Value: []string{}, Rest: ""}}},
		{
			"ambiguity compounds",
			2, parser.OneOf(parser.String("a"), parser.String("aa")), "aaa",
			[]result[[]string]{
				{Value: []string{"a", "a"}, Rest: "a"},
				{Value: []string{"a", "aa"}, Rest: ""},
				{Value: []string{"aa", "a"}, Rest: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ParseAll(parser.Replicate(tt.n, tt.p), tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Replicate(%d).Parse(%q) mismatch (-want +got):\n%s", tt.n, tt.input, diff)
			}
		})
	}

	t.Run("zero never runs the parser", func(t *testing.T) {
		got := parser.ParseAll(parser.Replicate(0, mustNotRun[string](t)), "abc")
		assert.Len(t, got, 1)
	})

	t.Run("negative count panics at construction", func(t *testing.T) {
		assert.Panics(t, func() { parser.Replicate(-1, parser.Digit) })
	})

	t.Run("reuse does not share results", func(t *testing.T) {
		p := parser.Replicate(2, parser.Digit)
		first := parser.ParseAll(p, "12")
		second := parser.ParseAll(p, "34")
		first[0].Value[0] = "x"
		assert.Equal(t, []string{"3", "4"}, second[0].Value)
		assert.Equal(t, []string{"1", "2"}, parser.ParseAll(p, "12")[0].Value)
	})
}

func TestMany(t *testing.T) {
	tests := []struct {
		name  string
		p     parser.Parser[string]
		input string
		want  []result[[]string]
	}{
		{"non-matching input", parser.Digit, "a", []result[[]string]{{Value: []string{}, Rest: "a"}}},
		{"empty input", parser.Digit, "", []result[[]string]{{Value: []string{}, Rest: ""}}},
		{"greedy", parser.Digit, "12a", []result[[]string]{{Value: []string{"1", "2"}, Rest: "a"}}},
		{"zero-width parser", parser.Pure("x"), "abc", []result[[]string]{{Value: []string{}, Rest: "abc"}}},
		{
			"zero-width alternative is ignored",
			parser.OneOf(parser.String(""), parser.String("a")), "aab",
			[]result[[]string]{{Value: []string{"a", "a"}, Rest: "b"}},
		},
		{
			"ambiguous inner parser",
			parser.OneOf(parser.String("a"), parser.String("aa")), "aa",
			[]result[[]string]{
				{Value: []string{"a", "a"}, Rest: ""},
				{Value: []string{"aa"}, Rest: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ParseAll(parser.Many(tt.p), tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Many.Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}

	t.Run("full consumption", func(t *testing.T) {
		got, err := parser.ParseStrict(parser.Many(parser.Digit), "1989")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "9", "8", "9"}, got)
	})

	t.Run("long input", func(t *testing.T) {
		got, err := parser.ParseStrict(parser.Many(parser.Digit), strings.Repeat("7", 500))
		require.NoError(t, err)
		assert.Len(t, got, 500)
	})
}

func TestMany1(t *testing.T) {
	assert.Empty(t, parser.ParseAll(parser.Many1(parser.Digit), "a"))

	got := parser.ParseAll(parser.Many1(parser.Digit), "42a")
	if diff := cmp.Diff([]result[[]string]{{Value: []string{"4", "2"}, Rest: "a"}}, got); diff != "" {
		t.Errorf("Many1 mismatch (-want +got):\n%s", diff)
	}
}

func TestSepBy(t *testing.T) {
	comma := parser.String(",")
	tests := []struct {
		name  string
		p     parser.Parser[[]string]
		input string
		want  []result[[]string]
	}{
		{"several", parser.SepBy(parser.Digit, comma), "1,2,3", []result[[]string]{{Value: []string{"1", "2", "3"}, Rest: ""}}},
		{"single", parser.SepBy(parser.Digit, comma), "1x", []result[[]string]{{Value: []string{"1"}, Rest: "x"}}},
		{"trailing separator is left", parser.SepBy(parser.Digit, comma), "1,", []result[[]string]{{Value: []string{"1"}, Rest: ","}}},
		{"none", parser.SepBy(parser.Digit, comma), "x", []result[[]string]{{Value: []string{}, Rest: "x"}}},
		{"sep by 1 none", parser.SepBy1(parser.Digit, comma), "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parser.ParseAll(tt.p, tt.input)); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	one := "1"
	got := parser.ParseAll(parser.Optional(parser.Digit), "1a")
	want := []result[*string]{
		{Value: &one, Rest: "a"},
		{Value: nil, Rest: "1a"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Optional mismatch (-want +got):\n%s", diff)
	}

	got = parser.ParseAll(parser.Optional(parser.Digit), "a")
	if diff := cmp.Diff([]result[*string]{{Value: nil, Rest: "a"}}, got); diff != "" {
		t.Errorf("Optional on non-matching input mismatch (-want +got):\n%s", diff)
	}
}
