package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(c *gin.Context)
		status int
		body   string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "Title and content required") }, http.StatusBadRequest, `{"error":"Title and content required"}`},
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, `{"error":"resource not found"}`},
		{"internal passthrough", func(c *gin.Context) { InternalError(c, "disk I/O error") }, http.StatusInternalServerError, `{"error":"disk I/O error"}`},
		{"internal default", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, `{"error":"internal server error"}`},
		{"unavailable", func(c *gin.Context) { Unavailable(c, "") }, http.StatusServiceUnavailable, `{"error":"service unavailable"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.fn)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestSuccessResponses(t *testing.T) {
	w := record(func(c *gin.Context) { OK(c, []int{1, 2}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[1,2]`, w.Body.String())

	w = record(func(c *gin.Context) { Deleted(c, 0) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Deleted","changes":0}`, w.Body.String())
}
