package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sellersuite/internal/domain"
	"sellersuite/internal/service"
)

// ReportHandler handles GSTR-1 CSV generation and download.
type ReportHandler struct {
	reports service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GenerateCSV handles POST /api/generate-csv
// @Summary Generate a B2C CSV
// @Description Render normalized records as the detailed GSTR-1 B2C layout or the aggregated
// @Description B2CS summary. Summary-only records are always rendered aggregated.
// @Tags reports
// @Accept json
// @Produce json
// @Param body body GenerateCSVRequest true "Records and output options"
// @Success 200 {object} APIResponse{data=service.GeneratedReport}
// @Failure 400 {object} APIResponse "Validation error or no data"
// @Router /generate-csv [post]
func (h *ReportHandler) GenerateCSV(c *gin.Context) {
	var req GenerateCSVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	format := domain.OutputFormat(req.Format)
	if format == "" {
		format = domain.OutputDetailed
	}

	rep, err := h.reports.Generate(c.Request.Context(), service.GenerateInput{
		Records:   req.Data,
		Format:    format,
		Frequency: domain.ReportFrequency(req.ReportFrequency),
		GSTIN:     req.GSTIN,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// GenerateB2B handles POST /api/generate-b2b
// @Summary Generate a B2B CSV
// @Description Re-read a stored Amazon upload and render its B2B sheet as the GSTR-1 B2B layout.
// @Tags reports
// @Accept json
// @Produce json
// @Param body body GenerateB2BRequest true "Stored upload and output options"
// @Success 200 {object} APIResponse{data=service.GeneratedReport}
// @Failure 400 {object} APIResponse "Validation error or no B2B rows"
// @Failure 404 {object} APIResponse "Upload not found"
// @Router /generate-b2b [post]
func (h *ReportHandler) GenerateB2B(c *gin.Context) {
	var req GenerateB2BRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rep, err := h.reports.GenerateB2B(c.Request.Context(), service.GenerateB2BInput{
		Filename:  req.Filename,
		Frequency: domain.ReportFrequency(req.ReportFrequency),
		GSTIN:     req.GSTIN,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// Download handles GET /api/download/:filename
// @Summary Download a generated CSV
// @Tags reports
// @Produce text/csv
// @Param filename path string true "Generated report filename"
// @Success 200 {file} file
// @Failure 404 {object} APIResponse "File not found"
// @Router /download/{filename} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	rc, err := h.reports.Open(c.Request.Context(), filename)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = rc.Close() }()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		requestID, _ := c.Get("request_id")
		_ = c.Error(fmt.Errorf("[%s] streaming %s: %w", requestID, filename, err))
	}
}
