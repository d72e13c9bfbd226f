package errors

import (
	"testing"
)

func TestValidateRegionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Westfield", false},
		{"valid with space", "North Haven", false},
		{"valid with dash", "port-north", false},
		{"valid with dot", "st.johns", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegionName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegionName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"six digit", "#2171b5", false},
		{"three digit", "#abc", false},
		{"uppercase", "#ABCDEF", false},

		{"empty", "", true},
		{"no hash", "2171b5", true},
		{"wrong length", "#ab", true},
		{"invalid chars", "#zzzzzz", true},
		{"named color", "red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateThresholds(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		wantErr bool
	}{
		{"descending", []float64{0.8, 0.6, 0.4, 0.2}, false},
		{"single", []float64{0.5}, false},
		{"empty", nil, false},

		{"ascending", []float64{0.2, 0.4}, true},
		{"duplicate", []float64{0.5, 0.5}, true},
		{"above one", []float64{1.5}, true},
		{"negative", []float64{-0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThresholds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThresholds(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/map.svg", false},
		{"absolute", "/tmp/map.svg", false},
		{"simple", "map.svg", false},

		{"empty", "", true},
		{"traversal", "../secret", true},
		{"null byte", "map\x00.svg", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
