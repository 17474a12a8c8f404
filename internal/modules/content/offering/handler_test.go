package offering

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func passAuth(c *gin.Context) { c.Next() }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(nil))
	h.RegisterRoutes(r.Group("/api/v1"), passAuth)
	return r
}

func TestCreateRejectsMissingDescription(t *testing.T) {
	r := newTestRouter()

	body := `{"title":"Tokenomics Design"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Description")
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	r := newTestRouter()

	body := `{"description":"Full token model design"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title")
}
