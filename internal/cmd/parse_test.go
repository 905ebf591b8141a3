package cmd

import (
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{
			name:  "plain hex",
			input: "FFB000",
			wantR: 255, wantG: 176, wantB: 0,
		},
		{
			name:  "leading hash",
			input: "#FFB000",
			wantR: 255, wantG: 176, wantB: 0,
		},
		{
			name:  "lowercase",
			input: "ffb000",
			wantR: 255, wantG: 176, wantB: 0,
		},
		{
			name:  "white",
			input: "FFFFFF",
			wantR: 255, wantG: 255, wantB: 255,
		},
		{
			name:  "black",
			input: "000000",
			wantR: 0, wantG: 0, wantB: 0,
		},
		{
			name:  "surrounding whitespace",
			input: "  804020  ",
			wantR: 0x80, wantG: 0x40, wantB: 0x20,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not hex",
			input:   "GGHHII",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "FFB00000",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "FFB000zz",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "FFB0",
			wantErr: true,
		},
		{
			name:    "three digit shorthand rejected",
			input:   "FB0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := parseColor(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseColor(%q) = (%d,%d,%d), want error", tt.input, r, g, b)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseColor(%q) returned error: %v", tt.input, err)
			}
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("parseColor(%q) = (%d,%d,%d), want (%d,%d,%d)",
					tt.input, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}
