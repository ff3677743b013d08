package utils

import (
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rural-itinerary/internal/pkg/errors"
)

// SuccessResponse - конверт {data, meta} всех успешных JSON ответов
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - конверт {error} с кодом приложения
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int      `json:"total,omitempty"`
	Notices  []string `json:"notices,omitempty"`
	TimeMSec float64  `json:"time_ms,omitempty"`
}

// Elapsed - миллисекунды с точностью до микросекунды для Meta.TimeMSec
func Elapsed(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError - AppError ищется по всей цепочке обёрток, прочие ошибки отдаются как 500
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
}
