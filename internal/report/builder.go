package report

import (
	"strconv"

	"sellersuite/internal/domain"
	"sellersuite/internal/gst"
)

// Output column schemas, in file order.
var (
	AggregatedColumns = []string{
		"Type",
		"Place Of Supply",
		"Rate",
		"Applicable % of Tax Rate",
		"Taxable Value",
		"Cess Amount",
		"E-Commerce GSTIN",
	}

	DetailedColumns = []string{
		"Invoice Date",
		"Invoice No",
		"HSN",
		"Description",
		"Quantity",
		"Taxable Value",
		"CGST Rate",
		"CGST",
		"SGST Rate",
		"SGST",
		"IGST Rate",
		"IGST",
		"Total",
	}

	B2BColumns = []string{
		"GSTIN/UIN of Recipient",
		"Receiver Name",
		"Invoice Number",
		"Invoice date",
		"Invoice Value",
		"Place Of Supply",
		"Reverse Charge",
		"Applicable % of Tax Rate",
		"Invoice Type",
		"E-Commerce GSTIN",
		"Rate",
		"Taxable Value",
		"Cess Amount",
	}
)

// Table is a rendered output file: a header, string rows and the summed taxable value.
type Table struct {
	Columns           []string
	Rows              [][]string
	TotalTaxableValue float64
}

// BuildAggregatedOutput renders B2CS summary rows.
func BuildAggregatedOutput(rows []domain.AggregatedSummaryRow) Table {
	t := Table{Columns: AggregatedColumns, Rows: make([][]string, 0, len(rows))}
	var total float64
	for i := range rows {
		r := &rows[i]
		t.Rows = append(t.Rows, []string{
			r.Type,
			r.PlaceOfSupply(),
			strconv.Itoa(r.Rate),
			r.ApplicableRate,
			formatMoney(r.TaxableValue),
			r.CessAmount,
			r.ECommerceGSTIN,
		})
		total += r.TaxableValue
	}
	t.TotalTaxableValue = gst.Round2(total)
	return t
}

// BuildDetailedOutput renders one row per invoice line.
func BuildDetailedOutput(records []domain.NormalizedRecord) Table {
	t := Table{Columns: DetailedColumns, Rows: make([][]string, 0, len(records))}
	var total float64
	for i := range records {
		r := &records[i]
		t.Rows = append(t.Rows, []string{
			r.InvoiceDate,
			r.InvoiceNo,
			r.HSNCode,
			r.ProductName,
			formatNumber(r.Quantity),
			formatMoney(r.TaxableValue),
			formatNumber(r.CGSTRate),
			formatMoney(r.CGSTAmount),
			formatNumber(r.SGSTRate),
			formatMoney(r.SGSTAmount),
			formatNumber(r.IGSTRate),
			formatMoney(r.IGSTAmount),
			formatMoney(r.TotalAmount),
		})
		total += r.TaxableValue
	}
	t.TotalTaxableValue = gst.Round2(total)
	return t
}

// BuildB2BOutput renders B2B invoice rows.
func BuildB2BOutput(records []domain.B2BRecord) Table {
	t := Table{Columns: B2BColumns, Rows: make([][]string, 0, len(records))}
	var total float64
	for i := range records {
		r := &records[i]
		t.Rows = append(t.Rows, []string{
			r.BuyerGSTIN,
			r.BuyerName,
			r.InvoiceNo,
			r.InvoiceDate,
			formatMoney(r.InvoiceValue),
			r.PlaceOfSupply,
			r.ReverseCharge,
			r.ApplicableTaxRate,
			r.InvoiceType,
			r.ECommerceGSTIN,
			strconv.Itoa(r.Rate),
			formatMoney(r.TaxableValue),
			formatNumber(r.CessAmount),
		})
		total += r.TaxableValue
	}
	t.TotalTaxableValue = gst.Round2(total)
	return t
}

// IsAggregatedOnly reports whether records came from a pre-aggregated sheet: they carry explicit
// rates but no invoice detail, so a detailed table would be empty of meaning.
func IsAggregatedOnly(records []domain.NormalizedRecord) bool {
	hasRate := false
	for i := range records {
		if records[i].HasInvoiceDetail() {
			return false
		}
		if records[i].Rate != nil {
			hasRate = true
		}
	}
	return hasRate
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
