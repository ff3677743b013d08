package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidFilterMode = New(
		"INVALID_FILTER_MODE",
		"Unknown filter mode",
		http.StatusBadRequest,
	)

	ErrInvalidBudgetRange = New(
		"INVALID_BUDGET_RANGE",
		"Budget minimum must not exceed maximum",
		http.StatusBadRequest,
	)

	ErrDatasetUnavailable = New(
		"DATASET_UNAVAILABLE",
		"Dataset is not loaded",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
