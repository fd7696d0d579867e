package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"sellersuite/internal/csvexport"
	"sellersuite/internal/domain"
	"sellersuite/internal/port"
	"sellersuite/internal/report"
)

// Report filename prefixes.
const (
	prefixB2CS           = "b2cs"
	prefixDetailed       = "gstr1_b2c"
	prefixAggregatedAuto = "b2cs_aggregated"
	prefixB2B            = "b2b"
)

// GenerateInput is the DTO for B2C report generation.
type GenerateInput struct {
	Records   []domain.NormalizedRecord
	Format    domain.OutputFormat
	Frequency domain.ReportFrequency
	GSTIN     string
}

// GenerateB2BInput is the DTO for B2B report generation from a stored upload.
type GenerateB2BInput struct {
	Filename  string
	Frequency domain.ReportFrequency
	GSTIN     string
}

// GeneratedReport describes a CSV written to the output area.
type GeneratedReport struct {
	Filename          string  `json:"filename"`
	Message           string  `json:"message"`
	Rows              int     `json:"rows"`
	TotalTaxableValue float64 `json:"total_taxable_value"`
}

// ReportService defines the GSTR-1 CSV generation contract.
type ReportService interface {
	Generate(ctx context.Context, input GenerateInput) (*GeneratedReport, error)
	GenerateB2B(ctx context.Context, input GenerateB2BInput) (*GeneratedReport, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}

type reportService struct {
	store  port.FileStore
	ingest IngestService
}

// NewReportService creates a new ReportService implementation.
func NewReportService(store port.FileStore, ingest IngestService) ReportService {
	return &reportService{
		store:  store,
		ingest: ingest,
	}
}

func (s *reportService) Generate(ctx context.Context, input GenerateInput) (*GeneratedReport, error) {
	if len(input.Records) == 0 {
		return nil, domain.ErrNoData
	}
	if input.Frequency == "" {
		input.Frequency = domain.FrequencyMonthly
	}

	now := time.Now()
	var (
		table   report.Table
		name    string
		message string
	)
	switch {
	case input.Format == domain.OutputAggregated:
		table = report.BuildAggregatedOutput(report.Aggregate(input.Records))
		name = csvexport.BuildFilename(prefixB2CS, input.Frequency.PeriodSuffix(), input.GSTIN, now)
		message = "Aggregated B2CS CSV generated successfully"
	case report.IsAggregatedOnly(input.Records):
		// Summary rows have nothing to show in the invoice layout.
		table = report.BuildAggregatedOutput(report.Aggregate(input.Records))
		name = csvexport.BuildFilename(prefixAggregatedAuto, "", input.GSTIN, now)
		message = "CSV generated successfully"
	default:
		table = report.BuildDetailedOutput(input.Records)
		name = csvexport.BuildFilename(prefixDetailed, "", input.GSTIN, now)
		message = "CSV generated successfully"
	}

	if err := s.write(ctx, name, table); err != nil {
		return nil, err
	}
	log.Printf("reportService.Generate: wrote %s (%d rows, format %s)", name, len(table.Rows), input.Format)

	return &GeneratedReport{
		Filename:          name,
		Message:           message,
		Rows:              len(table.Rows),
		TotalTaxableValue: table.TotalTaxableValue,
	}, nil
}

func (s *reportService) GenerateB2B(ctx context.Context, input GenerateB2BInput) (*GeneratedReport, error) {
	if input.Filename == "" {
		return nil, domain.ErrInvalidFilename
	}
	if input.Frequency == "" {
		input.Frequency = domain.FrequencyQuarterly
	}

	records, err := s.ingest.ParseB2B(ctx, input.Filename)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoB2BData
	}

	table := report.BuildB2BOutput(records)
	name := csvexport.BuildFilename(prefixB2B, input.Frequency.PeriodSuffix(), input.GSTIN, time.Now())
	if err := s.write(ctx, name, table); err != nil {
		return nil, err
	}
	log.Printf("reportService.GenerateB2B: wrote %s from %s (%d rows)", name, input.Filename, len(table.Rows))

	return &GeneratedReport{
		Filename:          name,
		Message:           "B2B CSV generated successfully",
		Rows:              len(table.Rows),
		TotalTaxableValue: table.TotalTaxableValue,
	}, nil
}

func (s *reportService) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	return s.store.Open(ctx, port.AreaOutputs, filename)
}

func (s *reportService) write(ctx context.Context, name string, table report.Table) error {
	var buf bytes.Buffer
	if err := csvexport.WriteTable(&buf, table); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	err := s.store.Save(ctx, port.SaveInput{
		Area:        port.AreaOutputs,
		Name:        name,
		Body:        &buf,
		ContentType: domain.ContentTypes[domain.FileTypeCSV],
		Size:        int64(buf.Len()),
	})
	if err != nil {
		log.Printf("reportService.write: storing %s failed: %v", name, err)
		return domain.ErrUploadFailed
	}
	return nil
}
