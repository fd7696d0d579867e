// Package workbooktest builds XLSX fixtures in memory for parser and handler tests.
package workbooktest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is a fixture sheet. Cell values keep their Go type so numbers and dates are written as
// typed Excel cells.
type Sheet struct {
	Name string
	Rows [][]any
}

// XLSX renders the sheets, in order, into XLSX bytes.
func XLSX(t *testing.T, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.Name))
		} else {
			_, err := f.NewSheet(s.Name)
			require.NoError(t, err)
		}
		for r, row := range s.Rows {
			if len(row) == 0 {
				continue
			}
			cells := row
			require.NoError(t, f.SetSheetRow(s.Name, fmt.Sprintf("A%d", r+1), &cells))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// Decorative returns the two instructional rows the marketplace places above each report header.
func Decorative() [][]any {
	return [][]any{
		{"Summary For B2CS(7)"},
		{"Ready to file report generated by the marketplace"},
	}
}
