package parser

import (
	"log"
	"strings"
	"unicode"

	"sellersuite/internal/workbook"
)

const (
	// gstinScanRows bounds the header-region scan for the merchant GSTIN label.
	gstinScanRows = 20
	// gstinScanCols is how many cells of the row after the label are inspected.
	gstinScanCols = 5
	// gstinMinLen is the shortest token accepted as a plausible GSTIN.
	gstinMinLen = 10
)

var gstinLabels = map[string]bool{
	"merchant gstin": true,
	"gstin":          true,
	"nan":            true,
}

// ExtractGSTIN scans the header region of an untyped grid for a "Merchant GSTIN" label and
// returns the plausible identifier in the row below it. Label rows whose next row holds no
// plausible identifier are passed over and the scan continues to the end of the window.
// This is a plausibility check, not a GSTIN validator.
func ExtractGSTIN(grid [][]string) (string, bool) {
	limit := len(grid)
	if limit > gstinScanRows {
		limit = gstinScanRows
	}

	for i := 0; i < limit; i++ {
		if !isMerchantGSTINLabel(grid[i]) {
			continue
		}
		if i+1 >= len(grid) {
			break
		}
		next := grid[i+1]
		for col := 0; col < gstinScanCols && col < len(next); col++ {
			if v := strings.TrimSpace(next[col]); isPlausibleGSTIN(v) {
				return v, true
			}
		}
	}
	return "", false
}

// ExtractWorkbookGSTIN runs ExtractGSTIN on the first sheet. Read failures count as not found.
func ExtractWorkbookGSTIN(wb *workbook.Workbook) (string, bool) {
	rows, err := wb.FirstSheetRows()
	if err != nil {
		log.Printf("parser.ExtractWorkbookGSTIN: reading first sheet: %v", err)
		return "", false
	}
	return ExtractGSTIN(rows)
}

func isMerchantGSTINLabel(row []string) bool {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		if !workbook.IsBlank(cell) {
			parts = append(parts, cell)
		}
	}
	text := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(text, "merchant") && strings.Contains(text, "gstin")
}

func isPlausibleGSTIN(v string) bool {
	if len(v) < gstinMinLen || gstinLabels[strings.ToLower(v)] {
		return false
	}
	stripped := strings.NewReplacer("-", "", "_", "").Replace(v)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
