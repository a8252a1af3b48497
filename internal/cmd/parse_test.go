package cmd

import (
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		wantErr  bool
	}{
		{input: "0", expected: 0},
		{input: "1000", expected: 1000},
		{input: "1K", expected: 1000},
		{input: "1k", expected: 1000},
		{input: "2M", expected: 2_000_000},
		{input: "1.5K", expected: 1500},
		{input: "1G", expected: 1_000_000_000},
		{input: "1,000", expected: 1000},
		{input: "1_000_000", expected: 1_000_000},
		{input: " 42 ", expected: 42},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "10 files", wantErr: true},
		{input: "1m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseCount(%q) = %d, expected an error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCount(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseCount(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		wantErr  bool
	}{
		{input: "0", expected: 0},
		{input: "512", expected: 512},
		{input: "10MB", expected: 10_000_000},
		{input: "1GiB", expected: 1 << 30},
		{input: "4 KiB", expected: 4096},
		{input: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseBytes(%q) = %d, expected an error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBytes(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseBytes(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
