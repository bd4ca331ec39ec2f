package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/pkg/results"
)

// statusFor maps catalogued failure codes to HTTP statuses. Codes without
// an entry fall through to 500.
var statusFor = map[results.Code]int{
	results.CodeNotFound:           http.StatusNotFound,
	results.CodeDuplicate:          http.StatusConflict,
	results.CodeAccountExists:      http.StatusConflict,
	results.CodeValidationFailed:   http.StatusBadRequest,
	results.CodeRequiredMissing:    http.StatusBadRequest,
	results.CodeValueOutOfRange:    http.StatusBadRequest,
	results.CodeFormatInvalid:      http.StatusBadRequest,
	results.CodeMaxLengthExceeded:  http.StatusBadRequest,
	results.CodeInvalidCredentials: http.StatusUnauthorized,
	results.CodeTokenInvalid:       http.StatusUnauthorized,
	results.CodeTokenExpired:       http.StatusUnauthorized,
	results.CodeAccessDenied:       http.StatusForbidden,
}

// HandleOperation writes the failed operation as a JSON envelope with the
// HTTP status implied by its first error code.
func HandleOperation(c *gin.Context, op results.Operation) {
	status, ok := statusFor[op.FirstCode()]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewFailureResponse(op, ""))
}
