package parser

import (
	"errors"
	"fmt"
	"log"

	"sellersuite/internal/domain"
	"sellersuite/internal/port"
	"sellersuite/internal/workbook"
)

// Parse runs a portal strategy and converts every failure, panics included, into a *ParseError.
// A successful parse always returns a non-nil slice.
func Parse(portal string, p port.TransactionParser, wb *workbook.Workbook) (records []domain.NormalizedRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("parser.Parse: %s strategy panicked: %v", portal, r)
			records, err = nil, NewParseError(portal, "parse", fmt.Errorf("panic: %v", r))
		}
	}()

	records, err = p.Parse(wb)
	if err != nil {
		log.Printf("parser.Parse: %s strategy failed: %v", portal, err)
		return nil, asParseError(portal, err)
	}
	if records == nil {
		records = []domain.NormalizedRecord{}
	}
	log.Printf("parser.Parse: %s strategy produced %d records", portal, len(records))
	return records, nil
}

// ParseB2B is Parse for B2B extraction.
func ParseB2B(portal string, p port.B2BParser, wb *workbook.Workbook) (records []domain.B2BRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("parser.ParseB2B: %s strategy panicked: %v", portal, r)
			records, err = nil, NewParseError(portal, "b2b", fmt.Errorf("panic: %v", r))
		}
	}()

	records, err = p.ParseB2B(wb)
	if err != nil {
		log.Printf("parser.ParseB2B: %s strategy failed: %v", portal, err)
		return nil, asParseError(portal, err)
	}
	if records == nil {
		records = []domain.B2BRecord{}
	}
	log.Printf("parser.ParseB2B: %s strategy produced %d records", portal, len(records))
	return records, nil
}

func asParseError(portal string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return NewParseError(portal, "parse", err)
}
