package formats_test

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/apstndb/seuss/formats"
	"github.com/apstndb/seuss/parser"
)

func TestList(t *testing.T) {
	ints := formats.List(formats.Integer[int]())

	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"empty", "[]", []int{}, false},
		{"single", "[1]", []int{1}, false},
		{"several", "[1,-2,3]", []int{1, -2, 3}, false},
		{"spaces", "  [ 1 ,  2 ,3 ] ", []int{1, 2, 3}, false},
		{
			"multi-line",
			heredoc.Doc(`
				[
				  10,
				  20
				]
			`),
			[]int{10, 20},
			false,
		},
		{"trailing comma", "[1,]", nil, true},
		{"missing bracket", "[1, 2", nil, true},
		{"not a number", "[a]", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseStrict(ints, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseStrict() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListOfDates(t *testing.T) {
	got, err := parser.ParseStrict(formats.List(formats.ISODate), "[2022-06-09, 1989-11-09]")
	if err != nil {
		t.Fatalf("ParseStrict() error = %v", err)
	}
	if len(got) != 2 || got[0].Year() != 2022 || got[1].Year() != 1989 {
		t.Errorf("ParseStrict() = %v", got)
	}
}
