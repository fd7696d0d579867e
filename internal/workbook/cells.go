package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Cell returns the trimmed value at idx, or "" when the row is shorter.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// IsBlank reports whether a cell holds no usable value. "nan" covers exports that were
// round-tripped through dataframe tooling.
func IsBlank(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "nan")
}

// Float parses a numeric cell. Blank cells are zero; thousands separators and a trailing
// percent sign are ignored.
func Float(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if IsBlank(v) {
		return 0, nil
	}
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSuffix(v, "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return f, nil
}

// dateLayouts are tried in order for text date cells. Day-first layouts win over month-first.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"02-Jan-2006",
	"2-Jan-06",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 02, 2006",
	"January 02, 2006",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// Time interprets a date cell: Excel serial numbers first, then the text layouts.
func (w *Workbook) Time(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if IsBlank(v) {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return excelize.ExcelDateToTime(serial, w.date1904)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", v)
}
