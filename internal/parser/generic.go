package parser

import (
	"log"

	"sellersuite/internal/domain"
	"sellersuite/internal/gst"
	"sellersuite/internal/port"
	"sellersuite/internal/workbook"
)

func init() {
	RegisterPortal(domain.PortalFlipkart, func() port.TransactionParser {
		return NewGenericParser(domain.PortalFlipkart, flipkartColumns)
	})
	RegisterPortal(domain.PortalPepperfry, func() port.TransactionParser {
		return NewGenericParser(domain.PortalPepperfry, standardColumns)
	})
	RegisterPortal(domain.PortalCustom, func() port.TransactionParser {
		return NewGenericParser(domain.PortalCustom, standardColumns)
	})
}

// ColumnAliases lists, per normalized field, the lower-cased header names that feed it.
type ColumnAliases struct {
	InvoiceDate   []string
	InvoiceNo     []string
	HSNCode       []string
	ProductName   []string
	Quantity      []string
	TaxableValue  []string
	CGSTRate      []string
	SGSTRate      []string
	IGSTRate      []string
	CGSTAmount    []string
	SGSTAmount    []string
	IGSTAmount    []string
	TotalAmount   []string
	PlaceOfSupply []string
}

// flipkartColumns follows the Flipkart seller sales report headers.
var flipkartColumns = ColumnAliases{
	InvoiceDate:   []string{"date"},
	InvoiceNo:     []string{"invoice_id"},
	HSNCode:       []string{"hsn"},
	ProductName:   []string{"product_title"},
	Quantity:      []string{"quantity"},
	TaxableValue:  []string{"selling_price"},
	CGSTRate:      []string{"cgst"},
	SGSTRate:      []string{"sgst"},
	IGSTRate:      []string{"igst"},
	CGSTAmount:    []string{"cgst_value"},
	SGSTAmount:    []string{"sgst_value"},
	IGSTAmount:    []string{"igst_value"},
	TotalAmount:   []string{"total_price"},
	PlaceOfSupply: []string{"place_of_supply", "ship_to_state"},
}

// standardColumns accepts the detailed output schema headers and their snake_case forms.
var standardColumns = ColumnAliases{
	InvoiceDate:   []string{"invoice date", "invoice_date"},
	InvoiceNo:     []string{"invoice no", "invoice number", "invoice_no"},
	HSNCode:       []string{"hsn", "hsn_code"},
	ProductName:   []string{"description", "product_name"},
	Quantity:      []string{"quantity"},
	TaxableValue:  []string{"taxable value", "taxable_value"},
	CGSTRate:      []string{"cgst rate", "cgst_rate"},
	SGSTRate:      []string{"sgst rate", "sgst_rate"},
	IGSTRate:      []string{"igst rate", "igst_rate"},
	CGSTAmount:    []string{"cgst", "cgst_amount"},
	SGSTAmount:    []string{"sgst", "sgst_amount"},
	IGSTAmount:    []string{"igst", "igst_amount"},
	TotalAmount:   []string{"total", "total_amount"},
	PlaceOfSupply: []string{"place of supply", "place_of_supply"},
}

// GenericParser maps recognised header names of the first sheet onto normalized records.
// Unrecognised or unparseable fields default to their zero value.
type GenericParser struct {
	portal  domain.Portal
	aliases ColumnAliases
}

// NewGenericParser creates a pass-through parser for a portal.
func NewGenericParser(portal domain.Portal, aliases ColumnAliases) *GenericParser {
	return &GenericParser{portal: portal, aliases: aliases}
}

// Parse implements port.TransactionParser.
func (p *GenericParser) Parse(wb *workbook.Workbook) ([]domain.NormalizedRecord, error) {
	rows, err := wb.FirstSheetRows()
	if err != nil {
		return nil, err
	}
	header, data := splitHeader(rows, 0)
	cols := indexColumns(header)

	lookup := func(row []string, names []string) string {
		for _, n := range names {
			if idx, ok := cols[n]; ok {
				if v := workbook.Cell(row, idx); !workbook.IsBlank(v) {
					return v
				}
			}
		}
		return ""
	}
	num := func(row []string, names []string) float64 {
		v, err := workbook.Float(lookup(row, names))
		if err != nil {
			return 0
		}
		return v
	}

	a := &p.aliases
	records := make([]domain.NormalizedRecord, 0, len(data))
	for _, row := range data {
		if isBlankRow(row) {
			continue
		}

		rec := domain.NormalizedRecord{
			InvoiceNo:     lookup(row, a.InvoiceNo),
			HSNCode:       lookup(row, a.HSNCode),
			ProductName:   lookup(row, a.ProductName),
			Quantity:      num(row, a.Quantity),
			TaxableValue:  gst.Round2(num(row, a.TaxableValue)),
			CGSTRate:      gst.Round2(num(row, a.CGSTRate)),
			SGSTRate:      gst.Round2(num(row, a.SGSTRate)),
			IGSTRate:      gst.Round2(num(row, a.IGSTRate)),
			CGSTAmount:    gst.Round2(num(row, a.CGSTAmount)),
			SGSTAmount:    gst.Round2(num(row, a.SGSTAmount)),
			IGSTAmount:    gst.Round2(num(row, a.IGSTAmount)),
			TotalAmount:   gst.Round2(num(row, a.TotalAmount)),
			PlaceOfSupply: lookup(row, a.PlaceOfSupply),
			Portal:        p.portal.Label(),
		}
		if raw := lookup(row, a.InvoiceDate); raw != "" {
			rec.InvoiceDate = invoiceDate(wb, raw)
		}
		if rec.CGSTRate == 0 && rec.SGSTRate == 0 && rec.IGSTRate == 0 {
			cgst, sgst, igst := gst.ComponentRates(rec.TaxableValue, rec.CGSTAmount, rec.IGSTAmount)
			rec.CGSTRate, rec.SGSTRate, rec.IGSTRate = gst.Round2(cgst), gst.Round2(sgst), gst.Round2(igst)
		}
		records = append(records, rec)
	}

	log.Printf("parser.GenericParser: %s sheet produced %d records from %d columns", p.portal, len(records), len(cols))
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if !workbook.IsBlank(c) {
			return false
		}
	}
	return true
}
