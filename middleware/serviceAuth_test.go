package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
)

func newAuthRouter(t *testing.T) (*gin.Engine, dependencies.ServiceTokenInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := dependencies.NewJWTUtility(&config.JWTConfig{SecretKey: "test-secret", Issuer: "mp_hub"})
	r := gin.New()
	r.GET("/protected", NewServiceAuth(tokens, zap.NewNop()).Required(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.CallerKey))
	})
	return r, tokens
}

func TestServiceAuth_AcceptsValidToken(t *testing.T) {
	r, tokens := newAuthRouter(t)
	token, err := tokens.GenerateServiceToken("ops")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ops", w.Body.String())
}

func TestServiceAuth_Rejects(t *testing.T) {
	r, _ := newAuthRouter(t)
	other := dependencies.NewJWTUtility(&config.JWTConfig{SecretKey: "other", Issuer: "mp_hub"})
	forged, err := other.GenerateServiceToken("ops")
	require.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"wrong scheme": "Token abc",
		"no token":     "Bearer ",
		"bad token":    "Bearer not-a-jwt",
		"wrong secret": "Bearer " + forged,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
