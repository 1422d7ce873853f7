package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/utils"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase/dto"
)

// PlaceHandler serves the catalogue list, single-record, and map endpoints.
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List historic places
// @Description Returns a filtered, paginated page of the catalogue. Only places with at least one image are listed. Malformed parameters are coerced to safe defaults, never rejected.
// @Tags Places
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Param province query string false "Province or territory (exact match)"
// @Param type query string false "Recognition type (exact match)"
// @Param random query bool false "Uniform random order instead of name order"
// @Param limit query int false "Page size, capped at 50" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.PlacesResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/places [get]
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	filter := domain.PlaceFilter{
		Language:        domain.NormalizeLanguage(c.Query("lang")),
		Province:        c.Query("province"),
		RecognitionType: c.Query("type"),
		Random:          c.Query("random") == "true",
		Limit:           domain.ClampLimit(c.Query("limit"), domain.DefaultPageSize, domain.MaxPageSize),
		Offset:          domain.ParseOffset(c.Query("offset")),
	}

	places, err := h.placeUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.PlacesResponse{
		Places: places,
		Count:  len(places),
	})
}

// GetByID godoc
// @Summary Get one historic place
// @Description Looks up a place by identifier and language, with its images in display order.
// @Tags Places
// @Produce json
// @Param id path int true "Place identifier (shared across languages)"
// @Param lang query string false "Language (en or fr)" default(en)
// @Success 200 {object} dto.PlaceResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/places/{id} [get]
func (h *PlaceHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// A non-numeric id is an unmatched API path; fall through to the
		// endpoint index rather than a 404.
		return c.Next()
	}
	lang := domain.NormalizeLanguage(c.Query("lang"))

	place, images, err := h.placeUC.Get(c.Context(), id, lang)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.PlaceResponse{
		Place:  place,
		Images: images,
	})
}

// Map godoc
// @Summary Places for map rendering
// @Description Returns coordinate-bearing places, optionally restricted to a rectangle (edges inclusive). The result is capped at 500 rows regardless of filters.
// @Tags Places
// @Produce json
// @Param lang query string false "Language (en or fr)" default(en)
// @Param bounds query string false "minLat,minLng,maxLat,maxLng"
// @Success 200 {object} dto.MapResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/map [get]
func (h *PlaceHandler) Map(c *fiber.Ctx) error {
	filter := domain.MapFilter{
		Language: domain.NormalizeLanguage(c.Query("lang")),
		Bounds:   domain.ParseBounds(c.Query("bounds")),
	}

	places, err := h.placeUC.Map(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MapResponse{
		Places: places,
		Count:  len(places),
	})
}
