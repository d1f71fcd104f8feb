package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestGetPaginationDefaults(t *testing.T) {
	p := GetPagination(ctxWithQuery(""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "DESC", p.SortOrder)
}

func TestGetPaginationClampsAndSkips(t *testing.T) {
	p := GetPagination(ctxWithQuery("page=3&limit=500"))
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Skip)

	p = GetPagination(ctxWithQuery("page=-2&limit=0"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

// sortBy is spliced into ORDER BY, so anything outside the allow-list must
// fall back to created_at.
func TestGetPaginationSortAllowList(t *testing.T) {
	p := GetPagination(ctxWithQuery("sortBy=title&sortOrder=asc"), "created_at", "title")
	assert.Equal(t, "title", p.SortBy)
	assert.Equal(t, "ASC", p.SortOrder)

	p = GetPagination(ctxWithQuery("sortBy=id;DROP%20TABLE%20events"), "created_at", "title")
	assert.Equal(t, "created_at", p.SortBy)
}
