package port

import (
	"sellersuite/internal/domain"
	"sellersuite/internal/workbook"
)

// TransactionParser turns one marketplace workbook into normalized B2C records.
// A nil error with an empty slice means the file legitimately holds no transactions.
type TransactionParser interface {
	Parse(wb *workbook.Workbook) ([]domain.NormalizedRecord, error)
}

// B2BParser extracts B2B invoice lines from a workbook. Workbooks without a B2B sheet yield an
// empty slice.
type B2BParser interface {
	ParseB2B(wb *workbook.Workbook) ([]domain.B2BRecord, error)
}

// GSTINSource is implemented by strategies that can recover the seller's GSTIN from the workbook.
type GSTINSource interface {
	ExtractGSTIN(wb *workbook.Workbook) (string, bool)
}

// ParserRegistry resolves the parsing strategy for a declared portal.
type ParserRegistry interface {
	NewTransactionParser(portal string) (TransactionParser, error)
	SupportedPortals() []string
}
