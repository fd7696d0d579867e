package domain

import "strings"

// FileType represents the allowed source file types for upload.
type FileType string

const (
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLSM FileType = "xlsm"
	FileTypeCSV  FileType = "csv"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"xlsx": FileTypeXLSX,
	"xlsm": FileTypeXLSM,
	"csv":  FileTypeCSV,
}

// ContentTypes maps each FileType to the MIME type stored alongside it.
var ContentTypes = map[FileType]string{
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeXLSM: "application/vnd.ms-excel.sheet.macroEnabled.12",
	FileTypeCSV:  "text/csv",
}

// MatchesContent reports whether content sniffed by http.DetectContentType is plausible for the
// file type. Spreadsheets are zip containers; CSV must be text.
func (f FileType) MatchesContent(detected string) bool {
	switch f {
	case FileTypeXLSX, FileTypeXLSM:
		return detected == "application/zip" || detected == "application/octet-stream"
	case FileTypeCSV:
		return strings.HasPrefix(detected, "text/")
	}
	return false
}

// Portal identifies the marketplace that produced a seller export.
type Portal string

const (
	PortalAmazon    Portal = "amazon"
	PortalFlipkart  Portal = "flipkart"
	PortalPepperfry Portal = "pepperfry"
	PortalCustom    Portal = "custom"
)

var portalLabels = map[Portal]string{
	PortalAmazon:    "Amazon",
	PortalFlipkart:  "Flipkart",
	PortalPepperfry: "Pepperfry",
	PortalCustom:    "Custom",
}

// Label returns the display tag stamped on normalized records.
func (p Portal) Label() string {
	if l, ok := portalLabels[p]; ok {
		return l
	}
	return string(p)
}

// NormalizePortal lower-cases and trims a caller-supplied portal tag.
func NormalizePortal(s string) Portal {
	return Portal(strings.ToLower(strings.TrimSpace(s)))
}

// ReportFrequency is the filing period of a generated report.
type ReportFrequency string

const (
	FrequencyMonthly   ReportFrequency = "monthly"
	FrequencyQuarterly ReportFrequency = "quarterly"
)

// portalFrequency is the default report frequency per portal.
var portalFrequency = map[Portal]ReportFrequency{
	PortalAmazon:    FrequencyQuarterly,
	PortalFlipkart:  FrequencyMonthly,
	PortalPepperfry: FrequencyMonthly,
	PortalCustom:    FrequencyMonthly,
}

// ResolveFrequency returns the override when given, otherwise the portal default (monthly).
func ResolveFrequency(p Portal, override string) ReportFrequency {
	if o := strings.ToLower(strings.TrimSpace(override)); o != "" {
		return ReportFrequency(o)
	}
	if f, ok := portalFrequency[p]; ok {
		return f
	}
	return FrequencyMonthly
}

// PeriodSuffix returns the filename suffix for the frequency. Anything other than
// quarterly is treated as monthly.
func (f ReportFrequency) PeriodSuffix() string {
	if f == FrequencyQuarterly {
		return string(FrequencyQuarterly)
	}
	return string(FrequencyMonthly)
}

// OutputFormat selects the B2C output schema.
type OutputFormat string

const (
	OutputDetailed   OutputFormat = "detailed"
	OutputAggregated OutputFormat = "aggregated"
)
