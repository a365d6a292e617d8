package dto

import (
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	"maintenance-console/pkg/validation"
)

// nullIfBlank keeps empty optional inputs out of the backend payload.
func nullIfBlank(s null.String) null.String {
	v := strings.TrimSpace(s.String)
	return null.NewString(v, s.Valid && v != "")
}

// decimal reads a field already checked by the "decimal" rule.
func decimal(s string) float64 {
	n, _ := validation.ParseDecimal(s)
	return n
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
