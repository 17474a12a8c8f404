package booking

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(nil))
	h.RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRejectsMissingFields(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, `{"name":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, `{
		"project_type": "Tokenomics",
		"budget": "$10k",
		"date": "2026-09-01",
		"time": "10:00",
		"name": "Ada",
		"email": "not-an-email"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
}
