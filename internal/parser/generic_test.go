package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellersuite/internal/domain"
	"sellersuite/internal/parser"
	"sellersuite/internal/workbook"
)

func TestGenericParser_Flipkart(t *testing.T) {
	p, err := parser.NewTransactionParser("Flipkart")
	require.NoError(t, err)

	wb := workbook.FromSheets(workbook.Sheet{Name: "Sales Report", Rows: [][]string{
		{"date", "invoice_id", "hsn", "product_title", "quantity", "selling_price", "igst", "cgst", "sgst", "igst_value", "cgst_value", "sgst_value", "total_price", "ship_to_state"},
		{"2025-05-09", "FK-1", "6109", "Kurta", "1", "1000", "0", "9", "9", "0", "90", "90", "1180", "27-Maharashtra"},
		{"", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"2025-05-10", "FK-2", "6109", "Saree", "2", "2000", "", "", "", "240", "", "", "2240", "06-Haryana"},
		{"not a date", "FK-3", "6109", "Stole", "n/a", "abc", "", "", "", "", "", "", "", ""},
	}})

	records, err := p.Parse(wb)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "09/05/2025", records[0].InvoiceDate)
	assert.Equal(t, "FK-1", records[0].InvoiceNo)
	assert.Equal(t, "Kurta", records[0].ProductName)
	assert.Equal(t, 9.0, records[0].CGSTRate)
	assert.Equal(t, 9.0, records[0].SGSTRate)
	assert.Equal(t, 90.0, records[0].CGSTAmount)
	assert.Equal(t, "27-Maharashtra", records[0].PlaceOfSupply)
	assert.Equal(t, "Flipkart", records[0].Portal)

	assert.Equal(t, 12.0, records[1].IGSTRate, "rates are derived from amounts when absent")
	assert.Zero(t, records[1].CGSTRate)

	assert.Equal(t, "not a date", records[2].InvoiceDate)
	assert.Zero(t, records[2].Quantity)
	assert.Zero(t, records[2].TaxableValue)
}

func TestGenericParser_CustomCSV(t *testing.T) {
	csvData := "\xEF\xBB\xBFInvoice Date,Invoice No,Taxable Value,CGST Rate,CGST,SGST Rate,SGST,Total,Place Of Supply\n" +
		"09/05/2025,C-1,500,2.5,12.5,2.5,12.5,525,06-Haryana\n"
	wb, err := workbook.Open(bytes.NewReader([]byte(csvData)), domain.FileTypeCSV)
	require.NoError(t, err)

	p, err := parser.NewTransactionParser("custom")
	require.NoError(t, err)

	records, err := parser.Parse("custom", p, wb)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "09/05/2025", records[0].InvoiceDate)
	assert.Equal(t, 2.5, records[0].CGSTRate)
	assert.Equal(t, 2.5, records[0].SGSTRate)
	assert.Equal(t, 525.0, records[0].TotalAmount)
	assert.Equal(t, "Custom", records[0].Portal)
}

func TestGenericParser_UnrecognisedHeaders(t *testing.T) {
	p := parser.NewGenericParser(domain.PortalPepperfry, parser.ColumnAliases{})
	wb := workbook.FromSheets(workbook.Sheet{Name: "Sheet1", Rows: [][]string{
		{"foo", "bar"},
		{"1", "2"},
	}})

	records, err := p.Parse(wb)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.NormalizedRecord{Portal: "Pepperfry"}, records[0])
}

func TestGenericParser_HeaderOnly(t *testing.T) {
	p, err := parser.NewTransactionParser("pepperfry")
	require.NoError(t, err)

	records, err := p.Parse(workbook.FromSheets(workbook.Sheet{Name: "Sheet1", Rows: [][]string{{"Invoice No"}}}))

	require.NoError(t, err)
	assert.Empty(t, records)
}
