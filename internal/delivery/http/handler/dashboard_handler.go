package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rural-itinerary/internal/pkg/utils"
	"github.com/rural-itinerary/internal/usecase"
	"github.com/rural-itinerary/internal/usecase/dto"
	"go.uber.org/zap"
)

// DashboardHandler - данные для графиков и фильтров дашборда
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler создает новый экземпляр DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetMetrics godoc
// @Summary Review counters
// @Description Всего отзывов, сельских и городских
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MetricsResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	result, err := h.dashboardUC.Metrics()
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// GetOptions godoc
// @Summary Filter and form options
// @Description Категории, подтипы, районы, типы жилья, границы бюджета и значения формы маршрута по умолчанию
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.OptionsResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/options [get]
func (h *DashboardHandler) GetOptions(c *fiber.Ctx) error {
	result, err := h.dashboardUC.Options()
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// GetReviews godoc
// @Summary Filtered reviews with chart aggregates
// @Description Отзывы по режиму фильтра: распределение тональности, число отзывов по направлениям и точки карты. В режиме category добавляется таблица активностей.
// @Tags Dashboard
// @Produce json
// @Param mode query string false "Режим фильтра" Enums(all, sentiment, area_type, category) default(all)
// @Param sentiment query string false "Тональность (для mode=sentiment)" Enums(Positive, Neutral, Negative)
// @Param area_type query string false "Тип местности (для mode=area_type)" Enums(Rural, Urban)
// @Param category query string false "Категория активностей (для mode=category)"
// @Param subtype query []string false "Подтипы активностей" collectionFormat(multi)
// @Param district query string false "Район или Any"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReviewsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/reviews [get]
func (h *DashboardHandler) GetReviews(c *fiber.Ctx) error {
	q := reviewsQuery(c)

	result, err := h.dashboardUC.Reviews(q)
	if err != nil {
		return utils.SendError(c, err)
	}

	var notices []string
	if result.MatchedActivities != nil {
		notices = result.MatchedActivities.Notices
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:   result.Total,
		Notices: notices,
	})
}

// GetWordFrequencies godoc
// @Summary Word frequencies for a word cloud
// @Description Частоты слов в тексте отфильтрованных отзывов, без стоп-слов
// @Tags Dashboard
// @Produce json
// @Param mode query string false "Режим фильтра" Enums(all, sentiment, area_type, category) default(all)
// @Param sentiment query string false "Тональность"
// @Param area_type query string false "Тип местности"
// @Param district query string false "Район или Any"
// @Param limit query int false "Максимум слов" default(200)
// @Success 200 {object} utils.SuccessResponse{data=dto.WordsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/reviews/words [get]
func (h *DashboardHandler) GetWordFrequencies(c *fiber.Ctx) error {
	q := reviewsQuery(c)
	q.Limit = c.QueryInt("limit", usecase.DefaultWordLimit)

	result, err := h.dashboardUC.WordFrequencies(q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Words)})
}

// GetActivities godoc
// @Summary Matched activities
// @Description Уникальные активности категории с учётом подтипов, бюджета и района, отсортированные по району и направлению
// @Tags Dashboard
// @Produce json
// @Param category query string true "Категория"
// @Param subtype query []string false "Подтипы" collectionFormat(multi)
// @Param budget_min query number false "Минимальная стоимость, LKR"
// @Param budget_max query number false "Максимальная стоимость, LKR"
// @Param district query string false "Район или Any"
// @Success 200 {object} utils.SuccessResponse{data=dto.ActivitiesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/activities [get]
func (h *DashboardHandler) GetActivities(c *fiber.Ctx) error {
	budgetMin, err := queryFloat(c, "budget_min")
	if err != nil {
		return utils.SendError(c, err)
	}
	budgetMax, err := queryFloat(c, "budget_max")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.MatchedActivities(dto.ActivitiesQuery{
		Category:  c.Query("category"),
		Subtypes:  queryList(c, "subtype"),
		BudgetMin: budgetMin,
		BudgetMax: budgetMax,
		District:  c.Query("district"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:   len(result.Rows),
		Notices: result.Notices,
	})
}

func reviewsQuery(c *fiber.Ctx) dto.ReviewsQuery {
	return dto.ReviewsQuery{
		Mode:      c.Query("mode", dto.FilterModeAll),
		Sentiment: c.Query("sentiment"),
		AreaType:  c.Query("area_type"),
		District:  c.Query("district"),
		Category:  c.Query("category"),
		Subtypes:  queryList(c, "subtype"),
	}
}
