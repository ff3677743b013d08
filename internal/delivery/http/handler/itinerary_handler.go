package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rural-itinerary/internal/pkg/errors"
	"github.com/rural-itinerary/internal/pkg/utils"
	"github.com/rural-itinerary/internal/usecase"
	"github.com/rural-itinerary/internal/usecase/dto"
	"go.uber.org/zap"
)

// ItineraryHandler - генерация маршрута
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

// NewItineraryHandler создает новый экземпляр ItineraryHandler
func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// Generate godoc
// @Summary Generate a travel itinerary
// @Description Раскладывает случайно перемешанные подходящие направления по дням и оценивает переезды через OpenRouteService. Недоступные оценки помечаются причиной, маршрут при этом строится. С format=text возвращается markdown.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Produce text/markdown
// @Param request body dto.ItineraryRequest true "Параметры маршрута"
// @Param format query string false "Формат ответа" Enums(json, text) default(json)
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/itinerary [post]
func (h *ItineraryHandler) Generate(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid itinerary request body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	it, err := h.itineraryUC.Generate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(usecase.RenderText(it))
	}

	return utils.SendSuccess(c, it, &utils.Meta{
		Total:    len(it.Stops()),
		Notices:  it.Notices,
		TimeMSec: utils.Elapsed(start),
	})
}
