package authHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"SonicSavor/internal/api/auth"
	authService "SonicSavor/internal/api/auth/service"
	"SonicSavor/internal/entity"
	"SonicSavor/internal/middleware"
	jwtPkg "SonicSavor/pkg/jwt"
	"SonicSavor/pkg/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	loggedOut []entity.AdminLoginData
}

func (f *fakeService) Session() authService.SessionDomain { return f }
func (f *fakeService) Admin() authService.AdminDomain     { return nil }

func (f *fakeService) Login(_ context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "password123" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{AccessToken: "tok", TokenType: "bearer", ExpiresInMinutes: 60}, nil
}

func (f *fakeService) Logout(_ context.Context, admin entity.AdminLoginData) (auth.MessageResponse, error) {
	f.loggedOut = append(f.loggedOut, admin)
	return auth.MessageResponse{Message: "Successfully logged out"}, nil
}

func newTestApp(svc authService.AuthService) *fiber.App {
	logger := log.NewDiscardLogger()
	mw := middleware.New(logger, nil)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, svc, validator.New(), mw).Start(app.Group("/api/v1"))
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, jsoniter.Unmarshal(raw, &out))
	return out
}

func postForm(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := postForm(t, app, "admin", "password123")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "tok", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := postForm(t, app, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Incorrect username or password", decode(t, resp)["error"])
}

func TestLogin_MissingFields(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := postForm(t, app, "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecret, "test-secret")
	svc := &fakeService{}
	app := newTestApp(svc)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": "u1", "username": "admin"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, svc.loggedOut, 1)
	assert.Equal(t, "admin", svc.loggedOut[0].Username)
	assert.NotEmpty(t, svc.loggedOut[0].TokenID)
}

func TestLogout_NoToken(t *testing.T) {
	app := newTestApp(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
