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
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestOKWrapsSlices(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, []string{"a", "b"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":["a","b"]}`, w.Body.String())
}

func TestOKEmptySliceKeepsDataKey(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, []string{})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestOKPassesObjectsThrough(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, gin.H{"id": "x"})
	})
	assert.JSONEq(t, `{"id":"x"}`, w.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		BadRequest(c, "title is required")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":0,"code":400,"message":"title is required"}`, w.Body.String())
}
