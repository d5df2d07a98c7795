// Package handlers implements the REST endpoints of the bill tracker API.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/billtracker/internal/calculator"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

// BillService is the application logic the handlers depend on.
// *service.BillService implements it.
type BillService interface {
	List(ctx context.Context, opts service.ListOptions) ([]models.Bill, error)
	Views(ctx context.Context, opts service.ListOptions) ([]calculator.BillView, error)
	Get(ctx context.Context, billID string) (*models.Bill, error)
	Create(ctx context.Context, in models.BillInput) (*models.Bill, error)
	Update(ctx context.Context, billID string, in models.BillInput) (*models.Bill, error)
	Delete(ctx context.Context, billID string) error
	SetPaid(ctx context.Context, billID string, isPaid bool) (*time.Time, error)
	Dashboard(ctx context.Context) (calculator.Summary, error)
	Today() time.Time
}

var _ BillService = (*service.BillService)(nil)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps service errors to HTTP responses. failMsg is the generic
// message used for unexpected failures.
func writeError(c *gin.Context, err error, failMsg string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bill not found"})
	default:
		_ = c.Error(err) // Attach error to context for the logging middleware
		slog.Error(failMsg, "route", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failMsg})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
