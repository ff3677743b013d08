package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	apperrors "github.com/rural-itinerary/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// notblank - required не отсекает строки из одних пробелов
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// Validate - валидация структуры; ошибки полей превращаются в AppError с деталями
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]interface{}, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		return apperrors.ErrValidationFailed.WithDetails(details)
	}

	return apperrors.ErrInvalidRequest
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
