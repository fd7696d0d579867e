package service_test

import (
	"testing"

	"sellersuite/internal/workbook/workbooktest"
)

// amazonReadyToFile builds an Amazon Ready to File workbook with a merchant GSTIN sheet, a
// pre-aggregated B2C Small sheet and a B2B sheet.
func amazonReadyToFile(t *testing.T) []byte {
	t.Helper()

	b2cs := workbooktest.Decorative()
	b2cs = append(b2cs,
		[]any{1700.0, 0.0},
		[]any{"Type", "Place Of Supply", "Applicable % of Tax Rate", "Rate", "Taxable Value", "Cess Amount", "E-Commerce GSTIN"},
		[]any{"OE", "06-Haryana", "", 0.18, 1000.0, 0.0, ""},
		[]any{"OE", "06-Haryana", "", 0.18, 500.0, 0.0, ""},
		[]any{"OE", "27-Maharashtra", "", 0.05, 200.0, 0.0, ""},
	)

	b2b := workbooktest.Decorative()
	b2b = append(b2b,
		[]any{"Summary For B2B(4)"},
		[]any{"GSTIN/UIN of Recipient", "Receiver Name", "Invoice Number", "Invoice date", "Invoice Value", "Place Of Supply", "Reverse Charge", "Applicable % of Tax Rate", "Invoice Type", "E-Commerce GSTIN", "Rate", "Taxable Value", "Cess Amount"},
		[]any{"27AAACB1234F1Z5", "", "INV-100", 45786.0, 1180.0, "27-Maharashtra", "N", "", "Regular B2B", "", 18.0, 1000.0, 0.0},
	)

	return workbooktest.XLSX(t,
		workbooktest.Sheet{Name: "GSTIN Details", Rows: [][]any{{"Merchant GSTIN"}, {"29AICPN1083C1ZI"}}},
		workbooktest.Sheet{Name: "B2C Small", Rows: b2cs},
		workbooktest.Sheet{Name: "B2B", Rows: b2b},
	)
}
