// Package workbook reads marketplace export files (XLSX via excelize, CSV) into untyped string
// grids. Cell values are read raw, so date cells stay Excel serial numbers until a caller asks
// for them as time values.
package workbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"sellersuite/internal/domain"
)

// Sheet is one named grid of raw cell values.
type Sheet struct {
	Name string
	Rows [][]string
}

type source interface {
	sheetList() []string
	rows(sheet string) ([][]string, error)
	close() error
}

// Workbook is an opened, multi-sheet source file.
type Workbook struct {
	src      source
	date1904 bool
}

// Open reads a workbook of the given file type from r.
func Open(r io.Reader, fileType domain.FileType) (*Workbook, error) {
	switch fileType {
	case domain.FileTypeXLSX, domain.FileTypeXLSM:
		return openExcel(r)
	case domain.FileTypeCSV:
		return openCSV(r)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, fileType)
	}
}

// FromSheets builds an in-memory workbook. Sheet order is preserved.
func FromSheets(sheets ...Sheet) *Workbook {
	return &Workbook{src: &memorySource{sheets: sheets}}
}

func openExcel(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	wb := &Workbook{src: &excelSource{f: f}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func openCSV(r io.Reader) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	return FromSheets(Sheet{Name: "Sheet1", Rows: rows}), nil
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.src.sheetList()
}

// FirstSheet returns the name of the first sheet, or an error for an empty workbook.
func (w *Workbook) FirstSheet() (string, error) {
	names := w.src.sheetList()
	if len(names) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	return names[0], nil
}

// FindSheet returns the first sheet whose lower-cased name satisfies match.
func (w *Workbook) FindSheet(match func(lowerName string) bool) (string, bool) {
	for _, name := range w.src.sheetList() {
		if match(strings.ToLower(name)) {
			return name, true
		}
	}
	return "", false
}

// Rows returns the raw grid of a sheet.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.src.rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// FirstSheetRows returns the raw grid of the first sheet.
func (w *Workbook) FirstSheetRows() ([][]string, error) {
	name, err := w.FirstSheet()
	if err != nil {
		return nil, err
	}
	return w.Rows(name)
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.src.close()
}

// Diagnostics describes the workbook for operator visibility: sheet names, the first sheet's
// header columns and its data row count.
func (w *Workbook) Diagnostics() []string {
	names := w.SheetNames()
	diag := []string{fmt.Sprintf("Sheets: [%s]", strings.Join(names, ", "))}
	if len(names) == 0 {
		return diag
	}
	rows, err := w.Rows(names[0])
	if err != nil {
		return append(diag, fmt.Sprintf("Unreadable first sheet: %v", err))
	}
	var header []string
	dataRows := 0
	if len(rows) > 0 {
		header = rows[0]
		dataRows = len(rows) - 1
	}
	return append(diag,
		fmt.Sprintf("Columns in first sheet: [%s]", strings.Join(header, ", ")),
		fmt.Sprintf("Rows in sheet: %d", dataRows),
	)
}

type excelSource struct {
	f *excelize.File
}

func (s *excelSource) sheetList() []string { return s.f.GetSheetList() }

func (s *excelSource) rows(sheet string) ([][]string, error) {
	return s.f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func (s *excelSource) close() error { return s.f.Close() }

type memorySource struct {
	sheets []Sheet
}

func (s *memorySource) sheetList() []string {
	names := make([]string, len(s.sheets))
	for i := range s.sheets {
		names[i] = s.sheets[i].Name
	}
	return names
}

func (s *memorySource) rows(sheet string) ([][]string, error) {
	for i := range s.sheets {
		if s.sheets[i].Name == sheet {
			return s.sheets[i].Rows, nil
		}
	}
	return nil, fmt.Errorf("sheet %s does not exist", sheet)
}

func (s *memorySource) close() error { return nil }
