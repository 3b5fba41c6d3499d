package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/ports"
)

type EarningsHandler struct {
	earnings ports.EarningsService
	log      *zap.Logger
}

func NewEarningsHandler(earnings ports.EarningsService, log *zap.Logger) *EarningsHandler {
	return &EarningsHandler{
		earnings: earnings,
		log:      log,
	}
}

// GetBreakdown serves the dashboard card directly, without a dialog turn.
func (h *EarningsHandler) GetBreakdown(c *fiber.Ctx) error {
	driverID := c.Params("driverId")
	dateRange := domain.DateRange(c.Query("range", string(domain.DateRangeToday)))

	breakdown, err := h.earnings.Summarize(c.Context(), driverID, dateRange)
	if err != nil {
		h.log.Error("Failed to summarize earnings", zap.Error(err), zap.String("driver_id", driverID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to summarize earnings"})
	}
	if breakdown == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No earnings record for driver"})
	}

	return c.JSON(breakdown)
}
