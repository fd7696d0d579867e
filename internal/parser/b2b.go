package parser

import (
	"fmt"
	"log"
	"strings"

	"sellersuite/internal/domain"
	"sellersuite/internal/gst"
	"sellersuite/internal/workbook"
)

// Column positions of the B2B sheet. The export does not preserve header names reliably.
const (
	b2bColGSTIN = iota
	b2bColReceiverName
	b2bColInvoiceNo
	b2bColInvoiceDate
	b2bColInvoiceValue
	b2bColPlaceOfSupply
	b2bColReverseCharge
	b2bColApplicableRate
	b2bColInvoiceType
	b2bColECommerceGSTIN
	b2bColRate
	b2bColTaxableValue
	b2bColCess
)

const (
	defaultReverseCharge = "N"
	defaultInvoiceType   = "Regular B2B"
)

// b2bHeaderLabels are first-cell values of a repeated header row inside the B2B data block.
var b2bHeaderLabels = map[string]bool{
	"buyer gstin":            true,
	"gstin/uin of recipient": true,
	"gstin":                  true,
}

// isB2BSheet matches B2B invoice sheets and excludes the credit/debit note variants.
func isB2BSheet(name string) bool {
	return strings.Contains(name, "b2b") && !strings.Contains(name, "cn") && !strings.Contains(name, "cdnr")
}

// ParseB2B implements port.B2BParser. A workbook without a B2B sheet yields no records.
func (p *AmazonParser) ParseB2B(wb *workbook.Workbook) ([]domain.B2BRecord, error) {
	sheet, ok := wb.FindSheet(isB2BSheet)
	if !ok {
		log.Printf("parser.AmazonParser.ParseB2B: B2B sheet not found in %v", wb.SheetNames())
		return []domain.B2BRecord{}, nil
	}

	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, err
	}
	_, data := splitHeader(rows, decorativeRows)
	if len(data) > 0 && b2bHeaderLabels[strings.ToLower(workbook.Cell(data[0], b2bColGSTIN))] {
		data = data[1:]
	}

	records := make([]domain.B2BRecord, 0, len(data))
	for i, row := range data {
		buyerGSTIN := workbook.Cell(row, b2bColGSTIN)
		if workbook.IsBlank(buyerGSTIN) {
			continue
		}

		invoiceValue, err := workbook.Float(workbook.Cell(row, b2bColInvoiceValue))
		if err != nil {
			return nil, fmt.Errorf("b2b row %d invoice value: %w", i+1, err)
		}
		if invoiceValue == 0 {
			continue
		}
		rate, err := workbook.Float(workbook.Cell(row, b2bColRate))
		if err != nil {
			return nil, fmt.Errorf("b2b row %d rate: %w", i+1, err)
		}
		taxable, err := workbook.Float(workbook.Cell(row, b2bColTaxableValue))
		if err != nil {
			return nil, fmt.Errorf("b2b row %d taxable value: %w", i+1, err)
		}

		pos := workbook.Cell(row, b2bColPlaceOfSupply)
		records = append(records, domain.B2BRecord{
			BuyerGSTIN:    buyerGSTIN,
			InvoiceNo:     workbook.Cell(row, b2bColInvoiceNo),
			InvoiceDate:   b2bInvoiceDate(wb, workbook.Cell(row, b2bColInvoiceDate)),
			InvoiceValue:  gst.Round2(invoiceValue),
			PlaceOfSupply: pos,
			StateCode:     gst.StateCode(pos),
			ReverseCharge: defaultReverseCharge,
			InvoiceType:   defaultInvoiceType,
			Rate:          gst.NormalizeRate(rate),
			TaxableValue:  gst.Round2(taxable),
		})
	}

	log.Printf("parser.AmazonParser.ParseB2B: sheet %q produced %d records", sheet, len(records))
	return records, nil
}

// b2bInvoiceDate renders a date cell as "9-May-25", keeping unparseable text as-is.
func b2bInvoiceDate(wb *workbook.Workbook, raw string) string {
	if workbook.IsBlank(raw) {
		return ""
	}
	t, err := wb.Time(raw)
	if err != nil {
		return raw
	}
	return t.Format("2-Jan-06")
}
