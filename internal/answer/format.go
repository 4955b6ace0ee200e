package answer

import (
	"math"
	"strconv"
)

// commonFractions are the alternate forms Format recognizes, halves through
// eighths.
var commonFractions = []struct {
	value    float64
	fraction string
}{
	{1.0 / 2, "1/2"},
	{1.0 / 3, "1/3"},
	{2.0 / 3, "2/3"},
	{1.0 / 4, "1/4"},
	{3.0 / 4, "3/4"},
	{1.0 / 5, "1/5"},
	{2.0 / 5, "2/5"},
	{3.0 / 5, "3/5"},
	{4.0 / 5, "4/5"},
	{1.0 / 6, "1/6"},
	{5.0 / 6, "5/6"},
	{1.0 / 8, "1/8"},
	{3.0 / 8, "3/8"},
	{5.0 / 8, "5/8"},
	{7.0 / 8, "7/8"},
}

// Format renders v with a best-effort alternate form, for display next to a
// correct answer: "0.5 or 1/2", "9 or 3²". Values with no known alternate
// form are rendered as plain numbers.
func Format(v float64) string {
	s := FormatNumber(v)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}

	for _, cf := range commonFractions {
		if withinTolerance(v, cf.value) {
			return s + " or " + cf.fraction
		}
	}

	if v >= 0 {
		root := math.Sqrt(v)
		if root == math.Trunc(root) {
			return s + " or " + FormatNumber(root) + "²"
		}
	}
	return s
}

// FormatNumber renders v in its shortest plain decimal form: 12, 0.375, -2.5.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
