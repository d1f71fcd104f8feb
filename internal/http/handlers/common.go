package handlers

import (
	"net/http"
	"strconv"

	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Meta       *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    message,
		Data:       data,
	})
}

func OKList(c *gin.Context, message string, data any, p utils.Pagination, total int) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
		Meta:       &Meta{Page: p.Page, Limit: p.Limit, Total: total},
	})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success:    false,
		StatusCode: status,
		Message:    message,
	})
}

// idParam parses the :id path segment. On failure it writes a 400 and
// returns ok=false so the handler can bail out.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
