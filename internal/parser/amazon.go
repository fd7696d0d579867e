package parser

import (
	"fmt"
	"log"
	"strings"

	"sellersuite/internal/domain"
	"sellersuite/internal/gst"
	"sellersuite/internal/port"
	"sellersuite/internal/workbook"
)

func init() {
	RegisterPortal(domain.PortalAmazon, func() port.TransactionParser { return NewAmazonParser() })
}

// decorativeRows is the number of title/instruction rows above every Ready to File report sheet.
const decorativeRows = 2

// Column positions of the pre-aggregated B2CS sheet. Header names in this sheet are not reliable,
// so values are read by position.
const (
	aggColType = iota
	aggColPlaceOfSupply
	aggColApplicableRate
	aggColRate
	aggColTaxableValue
	aggColCess
	aggColECommerceGSTIN
)

// Header names of the detailed invoice sheet, matched case-insensitively.
const (
	colInvoiceDate   = "invoice date"
	colInvoiceNo     = "invoice no"
	colHSN           = "hsn"
	colDescription   = "description"
	colQuantity      = "quantity"
	colTaxableValue  = "taxable value"
	colCGST          = "cgst"
	colSGST          = "sgst"
	colIGST          = "igst"
	colTotal         = "total"
	colPlaceOfSupply = "place of supply"
)

// Layout is the shape of a B2C sheet.
type Layout int

const (
	// LayoutDetailed holds one row per invoice with named columns.
	LayoutDetailed Layout = iota
	// LayoutAggregated holds rows already summarized by state and rate.
	LayoutAggregated
)

func (l Layout) String() string {
	if l == LayoutAggregated {
		return "aggregated"
	}
	return "detailed"
}

// DetectLayout classifies a B2C sheet from its first data row: a literal "Type" label in the
// first cell marks the pre-aggregated B2CS layout.
func DetectLayout(data [][]string) Layout {
	if len(data) > 0 && strings.EqualFold(workbook.Cell(data[0], 0), "type") {
		return LayoutAggregated
	}
	return LayoutDetailed
}

// AmazonParser parses the Amazon "Ready to File" GSTR-1 workbook.
type AmazonParser struct{}

// NewAmazonParser creates an AmazonParser.
func NewAmazonParser() *AmazonParser {
	return &AmazonParser{}
}

func isB2CSmallSheet(name string) bool {
	return strings.Contains(name, "b2c") && strings.Contains(name, "small")
}

// b2cSheet locates the consolidated B2C sheet and splits it into the header candidate and data
// rows. Without a B2C Small sheet the first sheet is read with its first row as header.
func (p *AmazonParser) b2cSheet(wb *workbook.Workbook) (sheet string, header []string, data [][]string, err error) {
	skip := decorativeRows
	sheet, ok := wb.FindSheet(isB2CSmallSheet)
	if !ok {
		if sheet, err = wb.FirstSheet(); err != nil {
			return "", nil, nil, err
		}
		skip = 0
		log.Printf("parser.AmazonParser: B2C Small sheet not found, reading first sheet %q", sheet)
	}

	rows, err := wb.Rows(sheet)
	if err != nil {
		return "", nil, nil, err
	}
	header, data = splitHeader(rows, skip)
	return sheet, header, data, nil
}

// Parse implements port.TransactionParser.
func (p *AmazonParser) Parse(wb *workbook.Workbook) ([]domain.NormalizedRecord, error) {
	sheet, header, data, err := p.b2cSheet(wb)
	if err != nil {
		return nil, err
	}

	layout := DetectLayout(data)
	log.Printf("parser.AmazonParser: sheet %q has %d rows in %s layout", sheet, len(data), layout)

	if layout == LayoutAggregated {
		return parseAggregatedRows(data[1:], domain.PortalAmazon.Label())
	}
	return parseDetailedRows(wb, header, data, domain.PortalAmazon.Label())
}

// ExtractGSTIN implements port.GSTINSource. The merchant GSTIN label in the first sheet wins;
// otherwise the E-Commerce GSTIN column of the B2CS sheet is used.
func (p *AmazonParser) ExtractGSTIN(wb *workbook.Workbook) (string, bool) {
	if gstin, ok := ExtractWorkbookGSTIN(wb); ok {
		return gstin, true
	}

	sheet, ok := wb.FindSheet(isB2CSmallSheet)
	if !ok {
		return "", false
	}
	rows, err := wb.Rows(sheet)
	if err != nil {
		log.Printf("parser.AmazonParser.ExtractGSTIN: %v", err)
		return "", false
	}
	_, data := splitHeader(rows, decorativeRows)
	if len(data) < 2 {
		return "", false
	}
	gstin := workbook.Cell(data[1], aggColECommerceGSTIN)
	if len(gstin) < gstinMinLen {
		return "", false
	}
	log.Printf("parser.AmazonParser.ExtractGSTIN: using B2CS E-Commerce GSTIN column")
	return gstin, true
}

func parseAggregatedRows(rows [][]string, portal string) ([]domain.NormalizedRecord, error) {
	records := make([]domain.NormalizedRecord, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		pos := workbook.Cell(row, aggColPlaceOfSupply)
		if workbook.IsBlank(pos) {
			skipped++
			continue
		}

		rawRate, err := workbook.Float(workbook.Cell(row, aggColRate))
		if err != nil {
			return nil, fmt.Errorf("aggregated row %d rate: %w", i+1, err)
		}
		taxable, err := workbook.Float(workbook.Cell(row, aggColTaxableValue))
		if err != nil {
			return nil, fmt.Errorf("aggregated row %d taxable value: %w", i+1, err)
		}
		// Zero rows carry nothing to file; negative values would break the non-negative invariant.
		if taxable <= 0 {
			skipped++
			continue
		}

		rate := gst.NormalizeRate(rawRate)
		records = append(records, domain.NormalizedRecord{
			PlaceOfSupply: pos,
			Rate:          &rate,
			TaxableValue:  gst.Round2(taxable),
			Portal:        portal,
		})
	}
	log.Printf("parser.parseAggregatedRows: %d records, %d rows skipped", len(records), skipped)
	return records, nil
}

func parseDetailedRows(wb *workbook.Workbook, header []string, rows [][]string, portal string) ([]domain.NormalizedRecord, error) {
	cols := indexColumns(header)
	get := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok {
			return ""
		}
		return workbook.Cell(row, idx)
	}

	records := make([]domain.NormalizedRecord, 0, len(rows))
	for i, row := range rows {
		rawDate := get(row, colInvoiceDate)
		if workbook.IsBlank(rawDate) {
			continue
		}

		var amounts [6]float64
		for j, name := range []string{colQuantity, colTaxableValue, colCGST, colSGST, colIGST, colTotal} {
			v, err := workbook.Float(get(row, name))
			if err != nil {
				return nil, fmt.Errorf("detailed row %d %s: %w", i+1, name, err)
			}
			amounts[j] = v
		}
		qty, taxable, cgstAmt, sgstAmt, igstAmt, total := amounts[0], amounts[1], amounts[2], amounts[3], amounts[4], amounts[5]
		cgstRate, sgstRate, igstRate := gst.ComponentRates(taxable, cgstAmt, igstAmt)

		pos := get(row, colPlaceOfSupply)
		if workbook.IsBlank(pos) {
			pos = ""
		}

		records = append(records, domain.NormalizedRecord{
			InvoiceDate:   invoiceDate(wb, rawDate),
			InvoiceNo:     get(row, colInvoiceNo),
			HSNCode:       get(row, colHSN),
			ProductName:   get(row, colDescription),
			Quantity:      qty,
			TaxableValue:  gst.Round2(taxable),
			CGSTRate:      gst.Round2(cgstRate),
			SGSTRate:      gst.Round2(sgstRate),
			IGSTRate:      gst.Round2(igstRate),
			CGSTAmount:    gst.Round2(cgstAmt),
			SGSTAmount:    gst.Round2(sgstAmt),
			IGSTAmount:    gst.Round2(igstAmt),
			TotalAmount:   gst.Round2(total),
			PlaceOfSupply: pos,
			Portal:        portal,
		})
	}
	return records, nil
}

// invoiceDate renders a date cell as dd/mm/yyyy, keeping unparseable text as-is.
func invoiceDate(wb *workbook.Workbook, raw string) string {
	t, err := wb.Time(raw)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}

// splitHeader drops skip leading rows, then returns the next row as header and the rest as data.
func splitHeader(rows [][]string, skip int) (header []string, data [][]string) {
	if skip >= len(rows) {
		return nil, nil
	}
	rows = rows[skip:]
	return rows[0], rows[1:]
}

// indexColumns maps lower-cased, trimmed header names to their position. The first occurrence of
// a duplicated name wins.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	return cols
}
