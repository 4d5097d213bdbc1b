package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/rules"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/server/http/dto"
	"github.com/polkiloo/storemart/internal/server/http/middleware"
	"github.com/polkiloo/storemart/internal/usecase"
)

// CurrentSession extracts the authenticated session from context.
func CurrentSession(c *gin.Context) pkgAuth.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return pkgAuth.Session{}
	}
	session, _ := val.(pkgAuth.Session)
	return session
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func violationStrings(v rules.Violations) []string {
	out := make([]string, len(v))
	for i, violation := range v {
		out[i] = string(violation)
	}
	return out
}

// respondError maps domain errors onto HTTP statuses in one place so
// handlers stay thin.
func respondError(c *gin.Context, err error) {
	var fieldErr *usecase.FieldError
	var recordErr *usecase.RecordError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:      "validation failed",
			Field:      fieldErr.Field,
			Violations: violationStrings(fieldErr.Violations),
		})
	case errors.As(err, &recordErr):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:      "invalid record",
			Violations: violationStrings(recordErr.Violations),
		})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrOutOfStock),
		errors.Is(err, domainErrors.ErrOrderNotPayable),
		errors.Is(err, domainErrors.ErrPaymentReviewed),
		errors.Is(err, rules.ErrNoOpTransition),
		errors.Is(err, rules.ErrIllegalTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, rules.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, rules.ErrDiscountNotFound),
		errors.Is(err, rules.ErrDiscountNotYetActive),
		errors.Is(err, rules.ErrDiscountExpired),
		errors.Is(err, rules.ErrInvalidPercentage),
		errors.Is(err, rules.ErrInvalidWindow):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
