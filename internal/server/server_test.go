package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// testServer bundles a Server with its in-memory dependencies. Prometheus
// middleware is left out so repeated test runs do not re-register collectors.
type testServer struct {
	app      *fiber.App
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	sessions *session.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := repository.NewUserRepository()
	posts := repository.NewPostRepository()
	comments := repository.NewCommentRepository()
	sessions := session.NewManager(users, session.NewMemoryStore(time.Minute))
	t.Cleanup(func() { sessions.Close() })

	s := &Server{
		config: &config.Config{
			Port:              "0",
			Env:               "test",
			AdminPassword:     "secret123",
			SessionTTLMinutes: 1,
			SessionStore:      config.SessionStoreMemory,
		},
		sessions:    sessions,
		userRepo:    users,
		postRepo:    posts,
		commentRepo: comments,
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return &testServer{
		app:      app,
		users:    users,
		posts:    posts,
		comments: comments,
		sessions: sessions,
	}
}

func (ts *testServer) seedUser(t *testing.T, username, password string, admin bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{Username: username, Password: hash, IsAdmin: admin}
	require.NoError(t, ts.users.Create(context.Background(), user))
	return user
}

// sessionCookie opens a session through the manager directly, bypassing
// the login endpoint's admin gate. Needed to exercise authorization of
// authenticated non-admin users.
func (ts *testServer) sessionCookie(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	_, sess, err := ts.sessions.Login(context.Background(), username, password)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookie, Value: sess.Token}
}

func (ts *testServer) request(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := ts.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func sessionCookieFrom(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}
