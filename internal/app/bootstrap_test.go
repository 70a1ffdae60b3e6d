package app

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"life-reloaded/internal/config"
	"life-reloaded/internal/infrastructure/memory"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	c := &Container{
		Config: config.Config{
			App:   config.AppConfig{AppName: "life-reloaded-test", Environment: "test", HTTPPort: "0"},
			Store: config.StoreConfig{Driver: config.StoreDriverMemory},
			JWT:   config.JWTConfig{Secret: "test-secret", AccessExpiresIn: time.Hour},
			Game:  config.GameConfig{ReplyDelay: time.Millisecond},
		},
		Logger: zap.NewNop(),
		Store:  memory.NewStore(),
	}
	return New(c).Fiber
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func register(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/v1/players", "", nil)
	require.Equal(t, http.StatusCreated, status)
	var reg struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	require.NotEmpty(t, reg.AccessToken)
	return reg.AccessToken
}

func TestHealth(t *testing.T) {
	status, env := call(t, testApp(t), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", env.Message)
}

func TestAreas_ListsCatalog(t *testing.T) {
	status, env := call(t, testApp(t), http.MethodGet, "/api/v1/areas", "", nil)
	require.Equal(t, http.StatusOK, status)

	var areas []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &areas))
	require.Len(t, areas, 8)
	assert.Equal(t, "finance", areas[0].ID)
	assert.Equal(t, "personal", areas[7].ID)
}

func TestSetup_RequiresToken(t *testing.T) {
	app := testApp(t)
	status, _ := call(t, app, http.MethodGet, "/api/v1/setup", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, http.MethodGet, "/api/v1/setup", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSetup_Flow(t *testing.T) {
	app := testApp(t)
	token := register(t, app)

	status, _ := call(t, app, http.MethodGet, "/api/v1/setup", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/setup", token, nil)
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/setup/areas/finance/open", token, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodPut, "/api/v1/setup/profile", token, map[string]string{
		"name": "Alex", "dateOfBirth": "1990-05-17", "city": "Lisbon",
	})
	require.Equal(t, http.StatusOK, status)

	status, env := call(t, app, http.MethodPost, "/api/v1/setup/continue", token, nil)
	require.Equal(t, http.StatusOK, status)
	var st struct {
		Step string `json:"step"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, "areas", st.Step)

	status, _ = call(t, app, http.MethodPost, "/api/v1/setup/areas/astrology/open", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/setup/areas/career/open", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, app, http.MethodPost, "/api/v1/setup/draft/save", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.NotEqual(t, "null", string(env.Data))

	status, _ = call(t, app, http.MethodPatch, "/api/v1/setup/draft", token, map[string]any{"field": "salary", "value": 1})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPatch, "/api/v1/setup/draft", token, map[string]any{"field": "status", "value": "employed"})
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, app, http.MethodPost, "/api/v1/setup/draft/save", token, nil)
	require.Equal(t, http.StatusOK, status)
	var saved struct {
		Configured int `json:"configured"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, 1, saved.Configured)

	status, env = call(t, app, http.MethodPost, "/api/v1/setup/finish", token, nil)
	require.Equal(t, http.StatusOK, status)
	var fin struct {
		Finished bool `json:"finished"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fin))
	assert.False(t, fin.Finished)
}

func TestSetup_NonFiniteDraftValueRejected(t *testing.T) {
	app := testApp(t)
	token := register(t, app)

	status, _ := call(t, app, http.MethodPost, "/api/v1/setup", token, nil)
	require.Equal(t, http.StatusCreated, status)
	status, _ = call(t, app, http.MethodPut, "/api/v1/setup/profile", token, map[string]string{
		"name": "Alex", "dateOfBirth": "1990-05-17", "city": "Lisbon",
	})
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, app, http.MethodPost, "/api/v1/setup/continue", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, app, http.MethodPost, "/api/v1/setup/areas/finance/open", token, nil)
	require.Equal(t, http.StatusOK, status)

	for _, v := range []string{"NaN", "Inf", "-Infinity"} {
		status, _ = call(t, app, http.MethodPatch, "/api/v1/setup/draft", token, map[string]any{"field": "startingCash", "value": v})
		assert.Equal(t, http.StatusBadRequest, status, v)
	}

	status, _ = call(t, app, http.MethodGet, "/api/v1/setup", token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = call(t, app, http.MethodPost, "/api/v1/setup/draft/save", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestSimulation_DefaultsWithoutConfig(t *testing.T) {
	app := testApp(t)
	token := register(t, app)

	status, env := call(t, app, http.MethodGet, "/api/v1/simulation", token, nil)
	require.Equal(t, http.StatusOK, status)

	var sim struct {
		Config  any `json:"config"`
		Summary struct {
			Name string `json:"name"`
			Age  int    `json:"age"`
			City string `json:"city"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sim))
	assert.Nil(t, sim.Config)
	assert.Equal(t, "John Doe", sim.Summary.Name)
	assert.Equal(t, 25, sim.Summary.Age)
	assert.Equal(t, "New York", sim.Summary.City)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr("")
	assert.Error(t, err)
}
