// Package validation provides request and output format validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/agriprofit/transport-compare/pkg/constants"
)

// ComparisonRequest carries the raw fields of a comparison request prior to
// unit normalization.
type ComparisonRequest struct {
	Commodity      string
	Quantity       float64
	SourceState    string
	SourceDistrict string
}

// ValidateComparisonRequest checks the required fields of a comparison
// request and returns a single error naming every missing field. The
// calculation core never sees partially-invalid input.
func ValidateComparisonRequest(req ComparisonRequest) error {
	var missing []string

	if strings.TrimSpace(req.Commodity) == "" {
		missing = append(missing, "commodity")
	}
	if req.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if strings.TrimSpace(req.SourceState) == "" {
		missing = append(missing, "source state")
	}
	if strings.TrimSpace(req.SourceDistrict) == "" {
		missing = append(missing, "source district")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
