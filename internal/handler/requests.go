package handler

import "sellersuite/internal/domain"

// GenerateCSVRequest is the body of POST /api/generate-csv.
type GenerateCSVRequest struct {
	Data            []domain.NormalizedRecord `json:"data" binding:"required"`
	Format          string                    `json:"format" binding:"omitempty,oneof=detailed aggregated" example:"aggregated"`
	ReportFrequency string                    `json:"report_frequency" binding:"omitempty,oneof=monthly quarterly" example:"quarterly"`
	GSTIN           string                    `json:"gstin" example:"29AICPN1083C1ZI"`
}

// GenerateB2BRequest is the body of POST /api/generate-b2b.
type GenerateB2BRequest struct {
	Filename        string `json:"filename" binding:"required" example:"20250509_140307_ready_to_file.xlsx"`
	ReportFrequency string `json:"report_frequency" binding:"omitempty,oneof=monthly quarterly" example:"quarterly"`
	GSTIN           string `json:"gstin" example:"29AICPN1083C1ZI"`
}
