package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/report"
	"wealthdesk/internal/services"
)

// ReportHandler serves client portfolio reports
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportQuery holds the optional report parameters.
type ReportQuery struct {
	Currency string `form:"currency" binding:"omitempty,iso4217"`
}

// GetReport renders a client's portfolio report
// @Summary     Client report
// @Description Render the client's portfolio report as JSON, Markdown, printable HTML, PDF or XLSX
// @Tags        reports
// @Produce     json,text/markdown,text/html,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       id       path  string true  "Client ID"
// @Param       format   path  string true  "json, md, html, pdf or xlsx"
// @Param       currency query string false "ISO 4217 currency code (default from configuration)"
// @Success     200 {file}   file
// @Failure     400 {object} ErrorResponse "Unsupported format"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/report/{format} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	format, err := report.ParseFormat(c.Param("format"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrUnsupportedFormat, err.Error()))
		return
	}
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	r, err := h.reportService.BuildReport(clientID, q.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, r, format); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	disposition := "attachment"
	if format == report.FormatJSON || format == report.FormatHTML {
		disposition = "inline"
	}
	c.Header("Content-Disposition", disposition+`; filename="`+h.reportService.FileName(r, format)+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
