package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func run(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestOKWrapsSlices(t *testing.T) {
	w := run(func(c *gin.Context) {
		OK(c, []string{"a", "b"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":["a","b"]}`, w.Body.String())
}

func TestOKPassesObjectsThrough(t *testing.T) {
	w := run(func(c *gin.Context) {
		OK(c, gin.H{"slug": "hello"})
	})
	assert.JSONEq(t, `{"slug":"hello"}`, w.Body.String())
}

func TestErrorEnvelopes(t *testing.T) {
	w := run(func(c *gin.Context) {
		BadRequest(c, "bad locale")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":0,"code":400,"message":"bad locale"}`, w.Body.String())

	w = run(func(c *gin.Context) { NotFound(c) })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ok":0,"code":404,"message":"Not Found"}`, w.Body.String())

	w = run(func(c *gin.Context) { NotFoundMsg(c, "post not found") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ok":0,"code":404,"message":"post not found"}`, w.Body.String())
}
