package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rural-itinerary/internal/pkg/errors"
)

// queryList - значения повторяющегося параметра, также через запятую: ?subtype=a&subtype=b,c
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// queryFloat - необязательное число; пустое значение даёт nil
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			key: "must be a number",
		})
	}
	return &v, nil
}
