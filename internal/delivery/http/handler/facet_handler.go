package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/utils"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase/dto"
)

// FacetHandler serves the filter option and province breakdown endpoints.
type FacetHandler struct {
	facetUC *usecase.FacetUseCase
	logger  *zap.Logger
}

func NewFacetHandler(facetUC *usecase.FacetUseCase, logger *zap.Logger) *FacetHandler {
	return &FacetHandler{
		facetUC: facetUC,
		logger:  logger,
	}
}

// GetFilters godoc
// @Summary Filter options
// @Description Grouped counts for provinces, recognition types, jurisdictions and themes. Theme tokens are split from the comma-delimited storage and trimmed.
// @Tags Facets
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Success 200 {object} domain.Facets
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/filters [get]
func (h *FacetHandler) GetFilters(c *fiber.Ctx) error {
	lang := domain.NormalizeLanguage(c.Query("lang"))

	facets, err := h.facetUC.GetFacets(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(facets)
}

// GetProvinces godoc
// @Summary Province breakdown
// @Description Distinct provinces with place counts for one language.
// @Tags Facets
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Success 200 {object} dto.ProvincesResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/provinces [get]
func (h *FacetHandler) GetProvinces(c *fiber.Ctx) error {
	lang := domain.NormalizeLanguage(c.Query("lang"))

	provinces, err := h.facetUC.GetProvinces(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.ProvincesResponse{
		Provinces: provinces,
	})
}
