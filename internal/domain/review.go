package domain

// Sentiment - тональность отзыва
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// AreaType - тип местности отзыва
type AreaType string

const (
	AreaTypeRural AreaType = "Rural"
	AreaTypeUrban AreaType = "Urban"
)

// Sentiments - допустимые значения в порядке отображения
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// AreaTypes - допустимые типы местности
var AreaTypes = []AreaType{AreaTypeRural, AreaTypeUrban}

// ParseSentiment нормализует регистр и проверяет принадлежность множеству
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(TitleCase(raw))
	for _, known := range Sentiments {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// ParseAreaType нормализует регистр и проверяет принадлежность множеству
func ParseAreaType(raw string) (AreaType, bool) {
	a := AreaType(TitleCase(raw))
	for _, known := range AreaTypes {
		if a == known {
			return a, true
		}
	}
	return "", false
}

// Review - отзыв туриста с геопривязкой
type Review struct {
	Text        string      `json:"text"`
	Sentiment   Sentiment   `json:"sentiment"`
	AreaType    AreaType    `json:"area_type"`
	District    string      `json:"district"`
	Destination string      `json:"destination"`
	Location    *Coordinate `json:"location,omitempty"`
}
