package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/utils"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase"
)

// StatsHandler serves the catalogue summary endpoint.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Catalogue statistics
// @Description Scalar aggregates over the catalogue. A failed aggregate reports zero instead of failing the response.
// @Tags Stats
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Success 200 {object} domain.Statistics
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	lang := domain.NormalizeLanguage(c.Query("lang"))

	stats, err := h.statsUC.GetStatistics(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(stats)
}
