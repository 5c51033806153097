package query

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseQueryParamsDefaults(t *testing.T) {
	params := ParseQueryParams(contextWithQuery(""))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort.Field)
	assert.Equal(t, "desc", params.Sort.Order)
	assert.Empty(t, params.Search)
	assert.Empty(t, params.Filters)
}

func TestParseQueryParamsPaginationBounds(t *testing.T) {
	params := ParseQueryParams(contextWithQuery("page=0&limit=500"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)

	params = ParseQueryParams(contextWithQuery("page=3&limit=25"))
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
}

func TestParseQueryParamsFilters(t *testing.T) {
	params := ParseQueryParams(contextWithQuery("filters[category]=branding&filters[empty]=&search=logo"))

	assert.Equal(t, "branding", params.Filters["category"])
	assert.NotContains(t, params.Filters, "empty")
	assert.Equal(t, "logo", params.Search)
}

func TestParseQueryParamsSort(t *testing.T) {
	params := ParseQueryParams(contextWithQuery("sort[field]=name&sort[order]=asc"))
	assert.Equal(t, "name", params.Sort.Field)
	assert.Equal(t, "asc", params.Sort.Order)

	// invalid order falls back to desc
	params = ParseQueryParams(contextWithQuery("sort[field]=name&sort[order]=sideways"))
	assert.Equal(t, "desc", params.Sort.Order)
}

func TestBuildPaginationResponse(t *testing.T) {
	resp := BuildPaginationResponse(2, 10, 35)

	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, int64(35), resp.Total)
	assert.Equal(t, int64(4), resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
}

func TestBuildPaginationResponseSinglePage(t *testing.T) {
	resp := BuildPaginationResponse(1, 20, 5)

	assert.Equal(t, int64(1), resp.TotalPages)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrev)
}

func TestBuildPaginationResponseEmpty(t *testing.T) {
	resp := BuildPaginationResponse(1, 20, 0)

	assert.Equal(t, int64(0), resp.TotalPages)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrev)
}
