package http

import (
	"errors"
	"net/http"

	applicantDomain "credit-engine/internal/domain/applicant"
	appDomain "credit-engine/internal/domain/application"
	contractDomain "credit-engine/internal/domain/contract"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeDomainError maps engine errors onto HTTP codes. Every caller gets a
// definitive success or failure; nothing is swallowed.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrValidation),
		errors.Is(err, contractDomain.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, contractDomain.ErrNotFound),
		errors.Is(err, contractDomain.ErrPaymentNotFound),
		errors.Is(err, applicantDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, appDomain.ErrInvalidTransition),
		errors.Is(err, contractDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, contractDomain.ErrDuplicateContract),
		errors.Is(err, contractDomain.ErrAlreadyPaid),
		errors.Is(err, contractDomain.ErrNotPayable):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, contractDomain.ErrGeneration):
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
