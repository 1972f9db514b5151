package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"klagedok/internal/service"
)

// ReportHandler serves downloadable access-matrix reports.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// AccessMatrixXLSX godoc
// @Summary      Download access matrix as XLSX
// @Description  Spreadsheet of the case's documents and their permitted writers
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  string  true  "Case ID"
// @Success      200
// @Failure      404  {object}  APIResponse
// @Security     BearerAuth
// @Router       /cases/{id}/reports/access-matrix.xlsx [get]
func (h *ReportHandler) AccessMatrixXLSX(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid case id")
		return
	}

	filename := fmt.Sprintf("access-matrix-%s.xlsx", caseID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.reportService.WriteAccessMatrixXLSX(c.Request.Context(), caseID, c.Writer); err != nil {
		RespondDomainError(c, err)
		return
	}
}

// AccessMatrixCSV godoc
// @Summary      Download access matrix as CSV
// @Tags         reports
// @Produce      text/csv
// @Param        id  path  string  true  "Case ID"
// @Success      200
// @Failure      404  {object}  APIResponse
// @Security     BearerAuth
// @Router       /cases/{id}/reports/access-matrix.csv [get]
func (h *ReportHandler) AccessMatrixCSV(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid case id")
		return
	}

	filename := fmt.Sprintf("access-matrix-%s.csv", caseID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := h.reportService.WriteAccessMatrixCSV(c.Request.Context(), caseID, c.Writer); err != nil {
		RespondDomainError(c, err)
		return
	}
}
