package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/report"
)

type ReportHandler struct {
	reportService *report.Service
	timeout       time.Duration
}

func NewReportHandler(reportService *report.Service, timeout time.Duration) *ReportHandler {
	return &ReportHandler{reportService: reportService, timeout: timeout}
}

// POST /projects/:project_id/report
func (h *ReportHandler) Generate(c *gin.Context) {
	var req struct {
		Sections []string `json:"sections"`
	}
	_ = c.ShouldBindJSON(&req)

	userID := middleware.GetCurrentUserID(c)
	data, err := h.reportService.Assemble(userID, c.Param("project_id"), req.Sections)
	if err != nil {
		Fail(c, err)
		return
	}

	html, err := report.RenderHTML(data)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	pdf, err := report.RenderPDF(c.Request.Context(), html, h.timeout)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	filename := report.Filename(data.Project.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
