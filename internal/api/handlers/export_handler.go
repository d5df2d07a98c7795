package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/billtracker/internal/export"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

// ExportHandler handles GET /export.
type ExportHandler struct {
	bills BillService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(bills BillService) *ExportHandler {
	return &ExportHandler{bills: bills}
}

// Export handles GET /export?format=csv|xlsx&category=
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	opts := service.ListOptions{Category: models.Category(c.Query("category")), SortByDue: true}
	bills, err := h.bills.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err, "Failed to export bills")
		return
	}

	today := h.bills.Today()
	var buf bytes.Buffer
	if err := export.Write(&buf, format, bills, today); err != nil {
		writeError(c, err, "Failed to export bills")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(today)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
