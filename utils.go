package main

import (
	"path"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// TrimExt removes the extension from name
func TrimExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// formatFloat renders v in its shortest round-trip form. A
// non-negative digits rounds v to that many decimal places first;
// trailing zeros are not padded back in, matching the reference
// output files.
func formatFloat(v float64, digits int) string {
	if digits >= 0 {
		v = scalar.Round(v, digits)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
