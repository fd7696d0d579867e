package gst

import "math"

// NormalizeRate converts a source rate to an integer percent. Fractions strictly between 0 and 1
// are scaled by 100; everything else is already a percent. Both paths truncate.
func NormalizeRate(v float64) int {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 1 {
		// 0.29*100 is 28.999... in binary floating point.
		return int(v*100 + 1e-9)
	}
	return int(v)
}

// ComponentRates derives CGST/SGST/IGST percentages from tax amounts. CGST takes precedence over
// IGST, and SGST always mirrors CGST. A non-positive taxable value yields all zeros.
func ComponentRates(taxable, cgstAmount, igstAmount float64) (cgst, sgst, igst float64) {
	if taxable <= 0 {
		return 0, 0, 0
	}
	if cgstAmount > 0 {
		cgst = cgstAmount / taxable * 100
		return cgst, cgst, 0
	}
	if igstAmount > 0 {
		return 0, 0, igstAmount / taxable * 100
	}
	return 0, 0, 0
}

// ResolveRate picks the filing rate: the explicit rate when present, else the truncated CGST
// rate, else the truncated IGST rate.
func ResolveRate(explicit *int, cgstRate, igstRate float64) int {
	if explicit != nil {
		if *explicit < 0 {
			return 0
		}
		return *explicit
	}
	if cgstRate > 0 {
		return int(cgstRate)
	}
	if igstRate > 0 {
		return int(igstRate)
	}
	return 0
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
