package bootstrap

import (
	"context"
	"testing"

	"inkwell/internal/auth"
	"inkwell/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:              "8460",
		Env:               "test",
		AdminPassword:     "secret123",
		SessionTTLMinutes: 60,
		SessionStore:      config.SessionStoreMemory,
	}
}

func TestInitRuntimeSeedsAdmin(t *testing.T) {
	ctx := context.Background()
	rt, err := InitRuntime(ctx, testConfig())
	require.NoError(t, err)
	defer rt.Sessions.Close()

	admin, err := rt.Users.GetByUsername(ctx, AdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)

	// the stored credential verifies against the configured password
	ok, err := auth.VerifyPassword("secret123", admin.Password)
	require.NoError(t, err)
	assert.True(t, ok)

	// and the whole login path works
	user, sess, err := rt.Sessions.Login(ctx, AdminUsername, "secret123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)
	assert.NotEmpty(t, sess.Token)
}

func TestInitRuntimeRequiresAdminPassword(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPassword = ""

	_, err := InitRuntime(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

func TestInitRuntimeRedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisURL = mr.Addr()

	ctx := context.Background()
	rt, err := InitRuntime(ctx, cfg)
	require.NoError(t, err)
	defer rt.Sessions.Close()

	_, sess, err := rt.Sessions.Login(ctx, AdminUsername, "secret123")
	require.NoError(t, err)

	// the session actually landed in Redis
	assert.True(t, mr.Exists("session:"+sess.Token))
}

func TestInitRuntimeRedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisURL = "127.0.0.1:1" // nothing listens here

	_, err := InitRuntime(context.Background(), cfg)
	assert.Error(t, err)
}

func TestInitRuntimeDemoSeed(t *testing.T) {
	cfg := testConfig()
	cfg.SeedDemo = true

	ctx := context.Background()
	rt, err := InitRuntime(ctx, cfg)
	require.NoError(t, err)
	defer rt.Sessions.Close()

	posts, err := rt.Posts.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, posts)

	comments, err := rt.Comments.ListByPost(ctx, posts[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, comments)
}
