package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/apstndb/seuss/formats"
	"github.com/apstndb/seuss/parser"
)

// Catalog is a file of user defined grammars, written in YAML or JSON.
//
//	grammars:
//	  - name: weekday
//	    kind: keyword
//	    words: [mon, tue, wed, thu, fri]
//	  - name: weekdays
//	    kind: list
//	    element: weekday
type Catalog struct {
	Grammars []CatalogGrammar `yaml:"grammars"`
}

// CatalogGrammar declares one grammar. Which fields apply depends on Kind.
type CatalogGrammar struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Kind is one of keyword, list or integer.
	Kind string `yaml:"kind"`

	// keyword: either words (the value is the word itself) or values (word to value).
	Words         []string       `yaml:"words"`
	Values        map[string]any `yaml:"values"`
	CaseSensitive bool           `yaml:"case_sensitive"`

	// list: name of a previously defined grammar.
	Element string `yaml:"element"`

	// integer: inclusive bounds.
	Min *int64 `yaml:"min"`
	Max *int64 `yaml:"max"`
}

const (
	catalogKindKeyword = "keyword"
	catalogKindList    = "list"
	catalogKindInteger = "integer"
)

var catalogKind = parser.EnumStrings(catalogKindKeyword, catalogKindList, catalogKindInteger)

// LoadCatalog reads a catalog file from fs.
func LoadCatalog(fs afero.Fs, path string) (*Catalog, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar catalog: %w", err)
	}
	return ParseCatalog(b)
}

// ParseCatalog decodes catalog content. Unknown fields are rejected.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.UnmarshalWithOptions(b, &c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("invalid grammar catalog: %w", err)
	}
	return &c, nil
}

// Register builds every grammar in declaration order and adds it to r.
// A list grammar may refer to any grammar registered before it.
func (c *Catalog) Register(r *Registry) error {
	for i, cg := range c.Grammars {
		g, err := cg.build(r)
		if err != nil {
			return fmt.Errorf("grammar #%d (%s): %w", i+1, cg.Name, err)
		}
		if err := r.Register(g); err != nil {
			return err
		}
	}
	return nil
}

func (cg CatalogGrammar) build(r *Registry) (Grammar, error) {
	kind, err := parser.ParseStrict(catalogKind, cg.Kind)
	if err != nil {
		return Grammar{}, fmt.Errorf("unknown kind %q, must be one of %v", cg.Kind, catalogKind.Words())
	}

	g := Grammar{Name: cg.Name, Description: cg.Description}
	switch kind {
	case catalogKindKeyword:
		values := cg.Values
		if len(cg.Words) > 0 {
			if len(values) > 0 {
				return Grammar{}, errors.New("words and values are mutually exclusive")
			}
			values = lo.SliceToMap(cg.Words, func(w string) (string, any) { return w, w })
		}
		if len(values) == 0 {
			return Grammar{}, errors.New("keyword grammar needs words or values")
		}
		if _, ok := values[""]; ok {
			return Grammar{}, errors.New("keyword grammar must not contain an empty word")
		}

		enum := parser.Enum(values)
		if cg.CaseSensitive {
			enum = enum.CaseSensitive()
		}
		g.Parser = enum
	case catalogKindList:
		elem, err := r.Lookup(cg.Element)
		if err != nil {
			return Grammar{}, err
		}
		g.Parser = erase(formats.List(elem.Parser), asIs)
	case catalogKindInteger:
		if cg.Min != nil && cg.Max != nil && *cg.Min > *cg.Max {
			return Grammar{}, fmt.Errorf("min %d is greater than max %d", *cg.Min, *cg.Max)
		}
		g.Parser = erase(parser.WithValidation(formats.Integer[int64](), parser.RangeValidator(cg.Min, cg.Max)), asIs)
	}
	return g, nil
}
