package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"sellersuite/internal/config"
	"sellersuite/internal/csvexport"
	"sellersuite/internal/domain"
	"sellersuite/internal/parser"
	"sellersuite/internal/port"
	"sellersuite/internal/workbook"
)

// previewRows is the number of records echoed back for the upload preview.
const previewRows = 10

// UploadInput is the DTO for export file uploads.
type UploadInput struct {
	File         io.Reader
	Filename     string
	Size         int64
	Portal       string
	ReportPeriod string
}

// IngestService defines the upload and parsing contract.
type IngestService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.ParsedFileResult, error)
	ParseB2B(ctx context.Context, filename string) ([]domain.B2BRecord, error)
	SupportedPortals() []string
}

type ingestService struct {
	store   port.FileStore
	parsers port.ParserRegistry
	b2b     port.B2BParser
	cfg     *config.StorageConfig
}

// NewIngestService creates a new IngestService implementation.
func NewIngestService(
	store port.FileStore,
	parsers port.ParserRegistry,
	b2b port.B2BParser,
	cfg *config.StorageConfig,
) IngestService {
	return &ingestService{
		store:   store,
		parsers: parsers,
		b2b:     b2b,
		cfg:     cfg,
	}
}

func (s *ingestService) SupportedPortals() []string {
	return s.parsers.SupportedPortals()
}

func (s *ingestService) Upload(ctx context.Context, input UploadInput) (*domain.ParsedFileResult, error) {
	portal := domain.NormalizePortal(input.Portal)
	if portal == "" {
		portal = domain.PortalCustom
	}
	strategy, err := s.parsers.NewTransactionParser(string(portal))
	if err != nil {
		return nil, err
	}

	fileType, err := fileTypeOf(input.Filename)
	if err != nil {
		return nil, err
	}

	maxBytes := s.cfg.MaxFileSize()
	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Reject content that cannot be the declared file type before storing it
	if !fileType.MatchesContent(http.DetectContentType(data)) {
		return nil, domain.ErrUnsupportedFileType
	}

	storedName := csvexport.UploadFilename(input.Filename, time.Now())
	log.Printf("ingestService.Upload: storing %s as %s (%s, %d bytes, portal %s)",
		input.Filename, storedName, fileType, len(data), portal)

	err = s.store.Save(ctx, port.SaveInput{
		Area:        port.AreaUploads,
		Name:        storedName,
		Body:        bytes.NewReader(data),
		ContentType: domain.ContentTypes[fileType],
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("ingestService.Upload: storing %s failed: %v", storedName, err)
		return nil, domain.ErrUploadFailed
	}

	wb, err := workbook.Open(bytes.NewReader(data), fileType)
	if err != nil {
		return nil, parser.NewParseError(string(portal), "open", err)
	}
	defer func() { _ = wb.Close() }()

	records, err := parser.Parse(string(portal), strategy, wb)
	if err != nil {
		return nil, err
	}

	result := &domain.ParsedFileResult{
		Filename:        storedName,
		Portal:          string(portal),
		RowsProcessed:   len(records),
		Records:         records,
		Preview:         records[:min(previewRows, len(records))],
		ReportFrequency: domain.ResolveFrequency(portal, input.ReportPeriod),
		Diagnostics:     wb.Diagnostics(),
	}

	if src, ok := strategy.(port.GSTINSource); ok {
		if gstin, found := src.ExtractGSTIN(wb); found {
			result.GSTIN = &gstin
		}
	}
	log.Printf("ingestService.Upload: %s parsed, %d records, gstin found: %t",
		storedName, len(records), result.GSTIN != nil)

	return result, nil
}

func (s *ingestService) ParseB2B(ctx context.Context, filename string) ([]domain.B2BRecord, error) {
	fileType, err := fileTypeOf(filename)
	if err != nil {
		return nil, err
	}

	rc, err := s.store.Open(ctx, port.AreaUploads, filename)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("ingestService.ParseB2B: opening %s failed: %v", filename, err)
		}
		return nil, err
	}
	defer rc.Close()

	wb, err := workbook.Open(rc, fileType)
	if err != nil {
		return nil, parser.NewParseError(string(domain.PortalAmazon), "open", err)
	}
	defer func() { _ = wb.Close() }()

	return parser.ParseB2B(string(domain.PortalAmazon), s.b2b, wb)
}

// fileTypeOf resolves the FileType from a filename extension.
func fileTypeOf(filename string) (domain.FileType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}
	return fileType, nil
}
