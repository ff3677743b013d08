package domain

import (
	"errors"
	"fmt"
)

// RouteFailureReason - почему оценка расстояния/времени недоступна
type RouteFailureReason string

const (
	RouteFailureNone              RouteFailureReason = ""
	RouteFailureNetwork           RouteFailureReason = "network"
	RouteFailureNoMatch           RouteFailureReason = "no_match"
	RouteFailureMalformedResponse RouteFailureReason = "malformed_response"
	RouteFailureServiceError      RouteFailureReason = "service_error"
)

// RouteError - типизированная ошибка внешнего сервиса маршрутов/геокодинга
type RouteError struct {
	Reason RouteFailureReason
	Err    error
}

func (e *RouteError) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// NewRouteError - создание RouteError
func NewRouteError(reason RouteFailureReason, err error) *RouteError {
	return &RouteError{Reason: reason, Err: err}
}

// FailureReasonOf извлекает причину; нетипизированные ошибки считаются сетевыми
func FailureReasonOf(err error) RouteFailureReason {
	if err == nil {
		return RouteFailureNone
	}
	var re *RouteError
	if errors.As(err, &re) {
		return re.Reason
	}
	return RouteFailureNetwork
}

// RouteLeg - ответ сервиса маршрутов для одной пары точек
type RouteLeg struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// RouteSegment - оценка пути между двумя соседними точками маршрута
type RouteSegment struct {
	From        Coordinate         `json:"from"`
	To          Coordinate         `json:"to"`
	DistanceKm  *float64           `json:"distance_km,omitempty"`
	DurationMin *float64           `json:"duration_min,omitempty"`
	Failure     RouteFailureReason `json:"failure,omitempty"`
}

// Available - есть ли оценка расстояния и времени
func (s RouteSegment) Available() bool {
	return s.Failure == RouteFailureNone && s.DistanceKm != nil && s.DurationMin != nil
}
