package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

// BillHandler handles the /bills endpoints.
type BillHandler struct {
	bills BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bills BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

// listOptions reads ?category= and ?sort= (created, the default, or due).
func listOptions(c *gin.Context) (service.ListOptions, bool) {
	opts := service.ListOptions{Category: models.Category(c.Query("category"))}
	switch c.DefaultQuery("sort", "created") {
	case "created":
	case "due":
		opts.SortByDue = true
	default:
		badRequest(c, "sort must be one of: created, due")
		return opts, false
	}
	return opts, true
}

// ListBills handles GET /bills
func (h *BillHandler) ListBills(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	bills, err := h.bills.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err, "Failed to fetch bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

// ListViews handles GET /bills/views
func (h *BillHandler) ListViews(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	views, err := h.bills.Views(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err, "Failed to fetch bills")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetBill handles GET /bills/:id
func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.bills.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to fetch bill")
		return
	}
	c.JSON(http.StatusOK, bill)
}

// CreateBill handles POST /bills
func (h *BillHandler) CreateBill(c *gin.Context) {
	var in models.BillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	bill, err := h.bills.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// UpdateBill handles PUT /bills/:id
func (h *BillHandler) UpdateBill(c *gin.Context) {
	var in models.BillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	bill, err := h.bills.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err, "Failed to update bill")
		return
	}
	c.JSON(http.StatusOK, bill)
}

// DeleteBill handles DELETE /bills/:id
func (h *BillHandler) DeleteBill(c *gin.Context) {
	if err := h.bills.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete bill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

type setPaidRequest struct {
	IsPaid *bool `json:"isPaid"`
}

// SetPaidResponse is the body of a successful PATCH /bills/:id/paid.
type SetPaidResponse struct {
	Message      string     `json:"message"`
	LastPaidDate *time.Time `json:"lastPaidDate"`
}

// SetPaid handles PATCH /bills/:id/paid
func (h *BillHandler) SetPaid(c *gin.Context) {
	var req setPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPaid == nil {
		badRequest(c, "Request body must be {\"isPaid\": true|false}")
		return
	}

	lastPaid, err := h.bills.SetPaid(c.Request.Context(), c.Param("id"), *req.IsPaid)
	if err != nil {
		writeError(c, err, "Failed to update payment status")
		return
	}

	msg := "Bill marked as unpaid"
	if *req.IsPaid {
		msg = "Bill marked as paid"
	}
	c.JSON(http.StatusOK, SetPaidResponse{Message: msg, LastPaidDate: lastPaid})
}
