package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/utils"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase/dto"
)

// SearchHandler serves the unified search endpoint.
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search historic places
// @Description Free-text search over name, description, municipality and architect, combined with filters. Queries shorter than 2 characters are ignored. The total reflects all matches, independent of pagination.
// @Tags Search
// @Produce json
// @Param q query string false "Search text (minimum 2 characters)"
// @Param lang query string false "Language (en or fr)" default(en)
// @Param province query string false "Province or territory (exact match)"
// @Param municipality query string false "Municipality (substring match)"
// @Param type query string false "Recognition type (exact match)"
// @Param jurisdiction query string false "Jurisdiction (exact match)"
// @Param theme query string false "Theme (substring match)"
// @Param architect query string false "Architect (substring match)"
// @Param min_year query int false "Minimum recognition year"
// @Param max_year query int false "Maximum recognition year"
// @Param sort query string false "name_asc, name_desc, newest, oldest or random" default(name_asc)
// @Param limit query int false "Page size, capped at 50" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.SearchResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	filter := domain.SearchFilter{
		Language:        domain.NormalizeLanguage(c.Query("lang")),
		Query:           domain.NormalizeQuery(c.Query("q")),
		Province:        c.Query("province"),
		Municipality:    c.Query("municipality"),
		RecognitionType: c.Query("type"),
		Jurisdiction:    c.Query("jurisdiction"),
		Theme:           c.Query("theme"),
		Architect:       c.Query("architect"),
		MinYear:         domain.ParseYear(c.Query("min_year")),
		MaxYear:         domain.ParseYear(c.Query("max_year")),
		Sort:            domain.ParseSortMode(c.Query("sort")),
		Limit:           domain.ClampLimit(c.Query("limit"), domain.DefaultPageSize, domain.MaxPageSize),
		Offset:          domain.ParseOffset(c.Query("offset")),
	}

	results, total, err := h.searchUC.Search(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.SearchResponse{
		Results: results,
		Count:   len(results),
		Total:   total,
	})
}
