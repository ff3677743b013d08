// Package docs Rural Itinerary Service API.
//
// Дашборд отзывов туристов о направлениях Шри-Ланки и генератор маршрутов по сельским
// активностям с оценкой переездов через OpenRouteService.
//
// Обновляется командой: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health and dataset summary",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Dataset not loaded"}
                }
            }
        },
        "/api/v1/dashboard/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Review counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MetricsResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/dashboard/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Filter and form options",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Filtered reviews with chart aggregates",
                "parameters": [
                    {"enum": ["all", "sentiment", "area_type", "category"], "type": "string", "default": "all", "name": "mode", "in": "query"},
                    {"enum": ["Positive", "Neutral", "Negative"], "type": "string", "name": "sentiment", "in": "query"},
                    {"enum": ["Rural", "Urban"], "type": "string", "name": "area_type", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "subtype", "in": "query"},
                    {"type": "string", "name": "district", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/reviews/words": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Word frequencies for a word cloud",
                "parameters": [
                    {"enum": ["all", "sentiment", "area_type", "category"], "type": "string", "default": "all", "name": "mode", "in": "query"},
                    {"type": "string", "name": "sentiment", "in": "query"},
                    {"type": "string", "name": "area_type", "in": "query"},
                    {"type": "string", "name": "district", "in": "query"},
                    {"type": "integer", "default": 200, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/activities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Matched activities",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "subtype", "in": "query"},
                    {"type": "number", "name": "budget_min", "in": "query"},
                    {"type": "number", "name": "budget_max", "in": "query"},
                    {"type": "string", "name": "district", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json", "text/markdown"],
                "tags": ["Itinerary"],
                "summary": "Generate a travel itinerary",
                "parameters": [
                    {"description": "Itinerary parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ItineraryRequest"}},
                    {"enum": ["json", "text"], "type": "string", "default": "json", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.MetricsResponse": {
            "type": "object",
            "properties": {
                "total_reviews": {"type": "integer"},
                "rural_reviews": {"type": "integer"},
                "urban_reviews": {"type": "integer"}
            }
        },
        "dto.ItineraryRequest": {
            "type": "object",
            "required": ["days", "categories"],
            "properties": {
                "days": {"type": "integer", "minimum": 1},
                "categories": {"type": "array", "items": {"type": "string"}},
                "district": {"type": "string"},
                "accommodation": {"type": "string", "enum": ["Eco Lodge", "Hotel", "Guesthouse"]},
                "start_city": {"type": "string"},
                "end_city": {"type": "string"},
                "budget_min": {"type": "number"},
                "budget_max": {"type": "number"},
                "seed": {"type": "integer"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Rural Itinerary Service API",
	Description:      "Tourist review dashboard and rural itinerary generator.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
