package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omkar342/youtube-dashboard-server/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.BearerToken(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"token": ctx.GetString(middleware.AccessTokenKey)})
	})
	return router
}

func TestBearerToken(t *testing.T) {
	router := newProtectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer tok-123")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "tok-123")
}

func TestBearerToken_Rejections(t *testing.T) {
	router := newProtectedRouter()

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic dXNlcjpwYXNz",
		"empty token":    "Bearer ",
		"no space":       "Bearertok",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				request.Header.Set("Authorization", header)
			}
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "No access token provided")
		})
	}
}
