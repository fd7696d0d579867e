package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sellersuite/internal/service"
)

// UploadHandler handles marketplace export uploads.
type UploadHandler struct {
	ingest service.IngestService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(ingest service.IngestService) *UploadHandler {
	return &UploadHandler{ingest: ingest}
}

// Upload handles POST /api/upload
// @Summary Upload a marketplace export
// @Description Upload an XLSX, XLSM or CSV seller export. The file is stored, parsed with the
// @Description portal's strategy and the normalized records are returned with a preview.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Export file (xlsx, xlsm or csv)"
// @Param portal formData string false "Marketplace portal" default(custom)
// @Param report_period formData string false "Override report frequency (monthly or quarterly)"
// @Success 200 {object} APIResponse{data=domain.ParsedFileResult}
// @Failure 400 {object} APIResponse "Missing file, unsupported type or portal"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "File could not be parsed"
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "no file selected")
		return
	}

	result, err := h.ingest.Upload(c.Request.Context(), service.UploadInput{
		File:         file,
		Filename:     header.Filename,
		Size:         header.Size,
		Portal:       c.PostForm("portal"),
		ReportPeriod: c.PostForm("report_period"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
