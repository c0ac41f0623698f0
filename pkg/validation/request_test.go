package validation

import (
	"strings"
	"testing"
)

func TestValidateComparisonRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         ComparisonRequest
		wantErr     bool
		mentionsAll []string
	}{
		{
			name: "Valid request",
			req: ComparisonRequest{
				Commodity:      "Wheat",
				Quantity:       500,
				SourceState:    "Punjab",
				SourceDistrict: "Ludhiana",
			},
		},
		{
			name: "Missing commodity",
			req: ComparisonRequest{
				Quantity:       500,
				SourceState:    "Punjab",
				SourceDistrict: "Ludhiana",
			},
			wantErr:     true,
			mentionsAll: []string{"commodity"},
		},
		{
			name: "Zero quantity",
			req: ComparisonRequest{
				Commodity:      "Wheat",
				SourceState:    "Punjab",
				SourceDistrict: "Ludhiana",
			},
			wantErr:     true,
			mentionsAll: []string{"quantity"},
		},
		{
			name: "Negative quantity",
			req: ComparisonRequest{
				Commodity:      "Wheat",
				Quantity:       -10,
				SourceState:    "Punjab",
				SourceDistrict: "Ludhiana",
			},
			wantErr:     true,
			mentionsAll: []string{"quantity"},
		},
		{
			name:        "All fields missing are listed together",
			req:         ComparisonRequest{},
			wantErr:     true,
			mentionsAll: []string{"commodity", "quantity", "source state", "source district"},
		},
		{
			name: "Whitespace-only district",
			req: ComparisonRequest{
				Commodity:      "Wheat",
				Quantity:       500,
				SourceState:    "Punjab",
				SourceDistrict: "   ",
			},
			wantErr:     true,
			mentionsAll: []string{"source district"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComparisonRequest(tt.req)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, field := range tt.mentionsAll {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("error %q does not mention %q", err.Error(), field)
				}
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	if err := ValidateOutputFormat("pretty"); err != nil {
		t.Errorf("pretty should be valid: %v", err)
	}
	if err := ValidateOutputFormat("csv"); err != nil {
		t.Errorf("csv should be valid: %v", err)
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("xml should be rejected")
	}
}
