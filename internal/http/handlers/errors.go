package handlers

import (
	"net/http"

	"eventhub/internal/domain"
	"eventhub/internal/http/middleware"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError translates a service error into the right HTTP status.
// Anything that is not a known domain error becomes a 500 without leaking
// the internal message to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err), domain.IsPaymentFailed(err):
		Fail(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		Fail(c, http.StatusUnauthorized, err.Error())
	case domain.IsForbidden(err):
		Fail(c, http.StatusForbidden, err.Error())
	case domain.IsNotFound(err):
		Fail(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		Fail(c, http.StatusConflict, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "error", err.Error())
		Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
