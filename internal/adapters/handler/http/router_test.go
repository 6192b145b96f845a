package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/mindmate-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/services"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	now    time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := &testServer{t: t, now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}

	users := repository.NewInMemoryUserRepository()
	entries := repository.NewInMemoryMoodEntryRepository()
	settings := services.LedgerSettings{Location: time.UTC, Now: func() time.Time { return srv.now }}
	tokens := services.NewTokenService("router-secret", "mindmate-test", time.Hour, users, cache.NewMemoryTokenDenylist())

	srv.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:  adapterHTTP.NewAuthHandler(services.NewAuthService(users), tokens),
		MoodHandler:  adapterHTTP.NewMoodHandler(services.NewMoodService(entries, settings)),
		StatsHandler: adapterHTTP.NewStatsHandler(services.NewStatsService(entries, settings)),
		TokenService: tokens,
		StartTime:    time.Now(),
	})
	return srv
}

func (s *testServer) do(method, path, token string, payload any) *httptest.ResponseRecorder {
	s.t.Helper()

	var body []byte
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(s.t, err)
		body = raw
	}
	return s.send(method, path, token, body)
}

// doRaw sends body untouched, for payloads that are not valid JSON.
func (s *testServer) doRaw(method, path, token, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	return s.send(method, path, token, []byte(body))
}

func (s *testServer) send(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signup registers a fresh account and returns its token.
func (s *testServer) signup(email string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Tester", "email": email, "password": "long-password",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Ops(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Health without optional backends", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decode[map[string]string](t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "disabled", body["database"])
		assert.Equal(t, "disabled", body["redis"])
	})

	t.Run("Metrics are exposed", func(t *testing.T) {
		srv.do(http.MethodGet, "/health", "", nil)

		w := srv.do(http.MethodGet, "/metrics", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_requests_total")
	})

	t.Run("Swagger document is served", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/swagger/doc.json", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/moods/today")
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/moods", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_Session(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Fail: protected routes need a token", func(t *testing.T) {
		for _, path := range []string{"/api/v1/auth/me", "/api/v1/moods", "/api/v1/stats/weekly"} {
			w := srv.do(http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	t.Run("Success: me, then logout revokes the token", func(t *testing.T) {
		token := srv.signup("session@mindmate.app")

		w := srv.do(http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		me := decode[map[string]any](t, w)
		assert.Equal(t, "session@mindmate.app", me["email"])
		assert.NotContains(t, w.Body.String(), "password")

		w = srv.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = srv.do(http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success: login issues a new working token", func(t *testing.T) {
		srv.signup("again@mindmate.app")

		w := srv.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "AGAIN@mindmate.app", "password": "long-password",
		})
		require.Equal(t, http.StatusOK, w.Code)
		token := decode[map[string]any](t, w)["token"].(string)

		w = srv.do(http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Fail: duplicate signup", func(t *testing.T) {
		srv.signup("dup@mindmate.app")

		w := srv.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
			"name": "Other", "email": "dup@mindmate.app", "password": "long-password",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
