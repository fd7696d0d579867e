package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"sellersuite/internal/report"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// TimestampLayout is the timestamp embedded in stored upload and report filenames.
const TimestampLayout = "20060102_150405"

// Writer wraps csv.Writer for exporting report tables as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader(columns []string) error {
	return w.csv.Write(columns)
}

// WriteRows writes pre-rendered rows.
func (w *Writer) WriteRows(rows [][]string) error {
	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteTable writes the BOM, header and rows of t to out.
func WriteTable(out io.Writer, t report.Table) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(t.Columns); err != nil {
		return err
	}
	if err := w.WriteRows(t.Rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// sanitize replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func sanitize(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// fallbackStem names an upload whose stem sanitizes to nothing, so the extension survives.
const fallbackStem = "upload"

// SanitizeFilename cleans a client-supplied filename for storage. Directory components are
// dropped, the stem is sanitized and the extension is kept.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	ext := filepath.Ext(name)
	stem := sanitize(strings.TrimSuffix(name, ext))
	ext = sanitize(strings.TrimPrefix(ext, "."))
	switch {
	case ext == "":
		return stem
	case stem == "":
		stem = fallbackStem
	}
	return stem + "." + ext
}

// UploadFilename returns the stored name of an upload: {YYYYMMDD_HHMMSS}_{sanitized name}.
func UploadFilename(original string, now time.Time) string {
	return fmt.Sprintf("%s_%s", now.Format(TimestampLayout), SanitizeFilename(original))
}

// BuildFilename returns a report filename.
// Format: {prefix}[_{period}][_{gstin}]_{YYYYMMDD_HHMMSS}.csv
func BuildFilename(prefix, period, gstin string, now time.Time) string {
	parts := []string{prefix}
	if period != "" {
		parts = append(parts, period)
	}
	if g := sanitize(gstin); g != "" {
		parts = append(parts, g)
	}
	parts = append(parts, now.Format(TimestampLayout))
	return strings.Join(parts, "_") + ".csv"
}
