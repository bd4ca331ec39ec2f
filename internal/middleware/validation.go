package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/pkg/results"
)

// BindJSON binds the request body into obj and, on failure, writes a 400
// envelope with one entry per invalid field. It reports whether binding
// succeeded.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := make([]dto.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fieldErrors = append(fieldErrors, dto.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationResponse(fieldErrors))
		return false
	}

	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(results.CodeFormatInvalid, err.Error(), results.LevelImportant))
	return false
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be at least " + e.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "failed " + e.Tag() + " validation"
	}
}
