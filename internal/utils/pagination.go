package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

// GetPagination parses page/limit/sortBy/sortOrder query params. sortBy is
// checked against the caller's allow-list so it can be spliced into ORDER BY.
func GetPagination(c *gin.Context, allowedSort ...string) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	sortBy := strings.TrimSpace(c.Query("sortBy"))
	ok := false
	for _, col := range allowedSort {
		if sortBy == col {
			ok = true
			break
		}
	}
	if !ok {
		sortBy = "created_at"
	}

	sortOrder := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("sortOrder")), "asc") {
		sortOrder = "ASC"
	}

	return Pagination{
		Page:      page,
		Limit:     limit,
		Skip:      (page - 1) * limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}
