package formats_test

import (
	"testing"

	"github.com/apstndb/seuss/formats"
	"github.com/apstndb/seuss/parser"
)

func TestQuotedString(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{`""`, "", false},
		{`"hello"`, "hello", false},
		{`"say \"hi\""`, `say "hi"`, false},
		{`"tab\tnewline\n"`, "tab\tnewline\n", false},
		{`"été"`, "été", false},
		{`"日本語"`, "日本語", false},
		{`"unterminated`, "", true},
		{`"bad \q escape"`, "", true},
		{`no quotes`, "", true},
		{`"a" "b"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseStrict(formats.QuotedString, tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStrict() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseStrict() = %q, want %q", got, tt.want)
			}
		})
	}
}
