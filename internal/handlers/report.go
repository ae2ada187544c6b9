// internal/handlers/report.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/seedinglabs/seeding-backend/internal/services"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GET /admin/collections/:id/report
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	report, err := h.reportService.CollectionReport(id)
	if err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, report)
}
