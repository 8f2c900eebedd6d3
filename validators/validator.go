package validators

import (
	"net/http"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator used by echo. Besides the
// built-in tags it understands reaction_kind.
func NewValidator() *CustomValidator {
	v := validator.New()
	// Only fails on an empty tag or nil func
	if err := v.RegisterValidation("reaction_kind", validateReactionKind); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// Validate validates a bound request struct
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func validateReactionKind(fl validator.FieldLevel) bool {
	_, err := models.ParseReactionKind(fl.Field().String())
	return err == nil
}
