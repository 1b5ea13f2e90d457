package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"podium/config"
	"podium/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
}

func authRouter(requiredRole string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuth(requiredRole), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subject": c.GetString(CtxSubjectID),
			"role":    c.GetString(CtxRole),
		})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateToken("speaker-1", RoleSpeaker, time.Hour)
	require.NoError(t, err)

	w := doRequest(t, authRouter(RoleSpeaker), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "speaker-1")
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	w := doRequest(t, authRouter(RoleSpeaker), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	w := doRequest(t, authRouter(RoleSpeaker), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("speaker-1", RoleSpeaker, -time.Minute)
	require.NoError(t, err)

	w := doRequest(t, authRouter(RoleSpeaker), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsWrongRole(t *testing.T) {
	token, err := utils.GenerateToken("org-1", RoleOrganizer, time.Hour)
	require.NoError(t, err)

	w := doRequest(t, authRouter(RoleSpeaker), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthAnyRoleWhenUnscoped(t *testing.T) {
	token, err := utils.GenerateToken("org-1", RoleOrganizer, time.Hour)
	require.NoError(t, err)

	w := doRequest(t, authRouter(""), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWTAuth(t *testing.T) {
	r := gin.New()
	r.GET("/open", OptionalJWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(CtxSubjectID)})
	})

	// Anonymous passes through with no identity.
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":""`)

	// A valid token populates identity.
	token, err := utils.GenerateToken("org-1", RoleOrganizer, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "org-1")
}
