package handler

import (
	"net/http"

	"duka/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// StockExport GET /api/reports/stock.xlsx — the audit page as a workbook.
func (h *ReportsHandler) StockExport(c *gin.Context) {
	f, err := h.svc.StockWorkbook(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="stock-audit.xlsx"`)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to stream stock workbook")
	}
}
