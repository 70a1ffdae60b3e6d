package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"life-reloaded/internal/pkg/jwt"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func newApp(h fiber.Handler, mws ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(zap.NewNop()).Middleware())
	for _, mw := range mws {
		app.Use(mw)
	}
	app.Get("/", h)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, body) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var b body
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
	return resp.StatusCode, b
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "", map[string]int{"n": 1}, errors.New("cause"))
	})
	status, b := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "conflict", b.Message)
	assert.NotNil(t, b.Data)
}

func TestErrorMiddleware_HidesInternalDetail(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password is hunter2", "secret", nil)
	})
	status, b := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", b.Message)
	assert.Nil(t, b.Data)
}

func TestErrorMiddleware_PlainErrorAndPanic(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error { return errors.New("boom") })
	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)

	app = newApp(func(c fiber.Ctx) error { panic("kaboom") })
	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Hour)
	id := uuid.New()
	tok, _, err := tokens.GeneratePlayerToken(id)
	require.NoError(t, err)

	auth := NewAuthMiddleware(tokens).Middleware()
	app := newApp(func(c fiber.Ctx) error {
		got, ok := PlayerID(c)
		if !ok {
			return errors.New("player id missing")
		}
		return c.JSON(body{Status: 200, Message: got.String()})
	}, auth)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	status, b := do(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, id.String(), b.Message)

	status, b = do(t, app, httptest.NewRequest(http.MethodGet, "/?token="+tok, nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, id.String(), b.Message)

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, status)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	status, _ = do(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Token abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
