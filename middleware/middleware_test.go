package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/utils"
)

const testSecret = "test-secret"

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) Revoke(_ context.Context, token string, _ time.Duration) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(blacklist utils.TokenBlacklist) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), RecoveryMiddleware(), ErrorHandler())
	r.GET("/me", JWTAuthMiddleware(testSecret, blacklist), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/fail", func(c *gin.Context) {
		c.Error(errors.New("db exploded"))
	})
	r.GET("/teapot", func(c *gin.Context) {
		c.Error(utils.CreateError(http.StatusTeapot, "short and stout"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.HTTPError {
	t.Helper()
	var body utils.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJWTAttachesUserID(t *testing.T) {
	token, err := utils.GenerateJWT(5, testSecret)
	require.NoError(t, err)

	w := doGet(newEngine(nil), "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5}`, w.Body.String())
}

func TestJWTRejectsMissingHeader(t *testing.T) {
	w := doGet(newEngine(nil), "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "Missing or invalid Authorization header", body.Message)
}

func TestJWTRejectsForeignSignature(t *testing.T) {
	token, err := utils.GenerateJWT(5, "someone-else")
	require.NoError(t, err)

	w := doGet(newEngine(nil), "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTRejectsRevokedToken(t *testing.T) {
	token, err := utils.GenerateJWT(5, testSecret)
	require.NoError(t, err)
	bl := &fakeBlacklist{revoked: map[string]bool{token: true}}

	w := doGet(newEngine(bl), "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has been revoked", decodeError(t, w).Message)
}

func TestErrorHandlerRendersHTTPError(t *testing.T) {
	w := doGet(newEngine(nil), "/teapot", "")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"status":418,"message":"short and stout"}`, w.Body.String())
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	w := doGet(newEngine(nil), "/fail", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeError(t, w).Message)
	assert.NotContains(t, w.Body.String(), "exploded")
}

func TestRecoveryReturns500(t *testing.T) {
	w := doGet(newEngine(nil), "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeError(t, w).Message)
}

func TestRequestIDIsGeneratedOrEchoed(t *testing.T) {
	r := newEngine(nil)

	w := doGet(r, "/teapot", "")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	given := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))
}
