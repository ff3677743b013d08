package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Coordinate - точка в порядке (lon, lat), как её отдают ORS и исходные таблицы
type Coordinate struct {
	Lon float64 `json:"lon" db:"lon"`
	Lat float64 `json:"lat" db:"lat"`
}

// TitleCase приводит строку к виду "Title Case" после обрезки пробелов.
// Все строковые сравнения фильтров опираются на эту нормализацию при загрузке.
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Title(language.English).String(s)
}

// ParseCoordinates разбирает "(lon, lat)", "[lon, lat]" или "lon, lat".
// Пустые, битые и вне диапазона значения дают ok=false.
func ParseCoordinates(raw string) (Coordinate, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return Coordinate{}, false
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, false
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, false
	}

	return NewCoordinate(lon, lat)
}

// NewCoordinate проверяет диапазон и возвращает точку
func NewCoordinate(lon, lat float64) (Coordinate, bool) {
	c := Coordinate{Lon: lon, Lat: lat}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}

// Valid - NaN не проходит ни одно сравнение и тоже отсекается
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
