package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"portfolio/api/internal/config"
	"portfolio/api/internal/mail"
	"portfolio/api/internal/models"
	"portfolio/api/internal/repository/memory"
	"portfolio/api/internal/security"
	"portfolio/api/internal/session"
)

type stubMailer struct {
	mu   sync.Mutex
	err  error
	sent []mail.Message
}

func (m *stubMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type testEnv struct {
	engine *gin.Engine
	stores Stores
	mailer *stubMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	stores := Stores{
		Users:        memory.NewUserStore(),
		Sessions:     session.NewMemoryStore(30 * time.Minute),
		Projects:     memory.NewCollection[models.Project](),
		Achievements: memory.NewCollection[models.Achievement](),
		Skills:       memory.NewCollection[models.Skill](),
	}

	mailer := &stubMailer{}
	cfg := &config.AppConfig{Environment: "test"}
	handlerSet := NewHandlerSet(zerolog.New(io.Discard), cfg, stores, mailer, nil, nil)

	engine := gin.New()
	handlerSet.Register(engine.Group("/api"))

	return &testEnv{engine: engine, stores: stores, mailer: mailer}
}

// newSession provisions a user directly through the stores and returns
// a live token, bypassing the login handler.
func (e *testEnv) newSession(t *testing.T, username string, admin bool) string {
	t.Helper()
	ctx := context.Background()

	hash, err := security.HashPassword("test-password")
	require.NoError(t, err)

	user, err := e.stores.Users.Create(ctx, username, hash)
	require.NoError(t, err)
	if admin {
		require.NoError(t, e.stores.Users.Promote(ctx, user.ID))
	}

	sess, err := e.stores.Sessions.Create(ctx, user.ID)
	require.NoError(t, err)
	return sess.Token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	return e.doRaw(t, method, path, token, reader)
}

func (e *testEnv) doRaw(t *testing.T, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func jsonReader(s string) io.Reader {
	return strings.NewReader(s)
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
