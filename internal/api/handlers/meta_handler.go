package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/billtracker/internal/calculator"
	"github.com/mmynk/billtracker/internal/models"
)

// CategoryResponse is one entry of GET /categories.
type CategoryResponse struct {
	Value models.Category `json:"value"`
	models.CategoryInfo
}

// PaymentMethodResponse is one entry of GET /payment-methods.
type PaymentMethodResponse struct {
	Value models.PaymentMethod `json:"value"`
	Label string               `json:"label"`
}

// Categories handles GET /categories
func Categories(c *gin.Context) {
	cats := models.Categories()
	out := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		out[i] = CategoryResponse{Value: cat, CategoryInfo: cat.Info()}
	}
	c.JSON(http.StatusOK, out)
}

// PaymentMethods handles GET /payment-methods
func PaymentMethods(c *gin.Context) {
	methods := models.PaymentMethods()
	out := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = PaymentMethodResponse{Value: m, Label: m.Label()}
	}
	c.JSON(http.StatusOK, out)
}

// DashboardHandler handles GET /dashboard.
type DashboardHandler struct {
	bills BillService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(bills BillService) *DashboardHandler {
	return &DashboardHandler{bills: bills}
}

// DashboardResponse adds preformatted currency strings to the summary.
type DashboardResponse struct {
	calculator.Summary
	TotalMonthlyText    string `json:"totalMonthlyText"`
	PaidAmountText      string `json:"paidAmountText"`
	RemainingAmountText string `json:"remainingAmountText"`
}

// Dashboard handles GET /dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	summary, err := h.bills.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{
		Summary:             summary,
		TotalMonthlyText:    calculator.FormatCurrency(summary.TotalMonthly),
		PaidAmountText:      calculator.FormatCurrency(summary.PaidAmount),
		RemainingAmountText: calculator.FormatCurrency(summary.RemainingAmount),
	})
}
