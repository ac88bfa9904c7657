package enums

import "testing"

func TestDisplayModeString(t *testing.T) {
	tests := []struct {
		input   string
		want    DisplayMode
		wantErr bool
	}{
		{"TABLE", DisplayModeTable, false},
		{"table", DisplayModeTable, false},
		{"Vertical", DisplayModeVertical, false},
		{" json ", DisplayModeJSON, false},
		{"yaml", DisplayModeYAML, false},
		{"DEBUG", DisplayModeDebug, false},
		{"UNSPECIFIED", DisplayModeUnspecified, true},
		{"TAB", DisplayModeUnspecified, true},
		{"TABLEX", DisplayModeUnspecified, true},
		{"", DisplayModeUnspecified, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DisplayModeString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("DisplayModeString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("DisplayModeString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayModeRoundTrip(t *testing.T) {
	for _, name := range DisplayModeStrings() {
		mode, err := DisplayModeString(name)
		if err != nil {
			t.Fatalf("DisplayModeString(%q) error = %v", name, err)
		}
		if mode.String() != name {
			t.Errorf("DisplayMode(%d).String() = %q, want %q", mode, mode.String(), name)
		}
	}

	if got := DisplayMode(42).String(); got != "DisplayMode(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestResultModeString(t *testing.T) {
	if ResultModeAll.String() != "ALL" || ResultModeStrict.String() != "STRICT" {
		t.Errorf("unexpected names: %v %v", ResultModeAll, ResultModeStrict)
	}
}
