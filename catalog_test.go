package main

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/seuss/parser"
)

var testCatalog = heredoc.Doc(`
	grammars:
	  - name: weekday
	    description: short weekday names
	    kind: keyword
	    words: [mon, tue, wed, thu, fri]
	  - name: weekdays
	    kind: list
	    element: weekday
	  - name: color
	    kind: keyword
	    case_sensitive: true
	    values:
	      red: "#ff0000"
	      green: "#00ff00"
	  - name: percent
	    kind: integer
	    min: 0
	    max: 100
`)

func TestCatalogRegister(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "grammars.yaml", []byte(testCatalog), 0o644))

	c, err := LoadCatalog(fs, "grammars.yaml")
	require.NoError(t, err)
	require.Len(t, c.Grammars, 4)

	r := NewRegistry()
	require.NoError(t, c.Register(r))

	tests := []struct {
		grammar string
		input   string
		want    any
		wantErr bool
	}{
		{"weekday", "MON", "mon", false},
		{"weekday", "sun", nil, true},
		{"weekdays", "[mon, fri]", []any{"mon", "fri"}, false},
		{"color", "red", "#ff0000", false},
		{"color", "RED", nil, true},
		{"percent", "100", int64(100), false},
		{"percent", "101", nil, true},
		{"percent", "-1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.grammar+"/"+tt.input, func(t *testing.T) {
			g, err := r.Lookup(tt.grammar)
			require.NoError(t, err)

			got, err := parser.ParseStrict(g.Parser, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, parser.ErrNoParse)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseStrict() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "grammars:\n  - name: x\n    kind: keyword\n    words: [a]\n    colour: red\n"},
		{"unknown kind", "grammars:\n  - name: x\n    kind: regex\n"},
		{"keyword without words", "grammars:\n  - name: x\n    kind: keyword\n"},
		{"words and values", "grammars:\n  - name: x\n    kind: keyword\n    words: [a]\n    values: {b: 1}\n"},
		{"empty word", "grammars:\n  - name: x\n    kind: keyword\n    words: ['']\n"},
		{"unknown element", "grammars:\n  - name: x\n    kind: list\n    element: nope\n"},
		{"inverted range", "grammars:\n  - name: x\n    kind: integer\n    min: 10\n    max: 1\n"},
		{"duplicate of builtin", "grammars:\n  - name: isodate\n    kind: keyword\n    words: [a]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCatalog([]byte(tt.content))
			if err == nil {
				err = c.Register(NewRegistry())
			}
			assert.Error(t, err)
		})
	}
}

func TestCatalogJSON(t *testing.T) {
	c, err := ParseCatalog([]byte(`{"grammars": [{"name": "answer", "kind": "keyword", "words": ["yes", "no"]}]}`))
	require.NoError(t, err)

	r := NewRegistry()
	require.NoError(t, c.Register(r))

	g, err := r.Lookup("answer")
	require.NoError(t, err)
	got, err := parser.ParseStrict(g.Parser, "No")
	require.NoError(t, err)
	assert.Equal(t, "no", got)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(afero.NewMemMapFs(), "missing.yaml")
	assert.Error(t, err)
}
