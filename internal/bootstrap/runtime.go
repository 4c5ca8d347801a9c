// Package bootstrap wires repositories, the session store, and the seeded
// admin account into a ready-to-serve runtime.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/seed"
	"inkwell/internal/session"

	"github.com/redis/go-redis/v9"
)

// AdminUsername is the fixed name of the seeded admin account.
const AdminUsername = "admin"

// Runtime holds the process-wide stores created once at startup.
type Runtime struct {
	Users    repository.UserRepository
	Posts    repository.PostRepository
	Comments repository.CommentRepository
	Sessions *session.Manager
}

// InitRuntime builds the in-memory repositories, selects the session
// store backend, and ensures the admin account exists. All entity state
// lives in process memory and is lost on restart.
func InitRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	users := repository.NewUserRepository()
	posts := repository.NewPostRepository()
	comments := repository.NewCommentRepository()

	store, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		Sessions: session.NewManager(users, store),
	}

	if err := rt.ensureAdmin(ctx, cfg); err != nil {
		store.Close()
		return nil, err
	}

	if cfg.SeedDemo {
		admin, err := users.GetByUsername(ctx, AdminUsername)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("bootstrap: look up admin for demo seed: %w", err)
		}
		if err := seed.Demo(ctx, posts, comments, admin); err != nil {
			store.Close()
			return nil, fmt.Errorf("bootstrap: seed demo content: %w", err)
		}
	}

	return rt, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("bootstrap: redis session store unreachable: %w", err)
		}
		return session.NewRedisStore(client, cfg.SessionTTL()), nil
	default:
		return session.NewMemoryStore(cfg.SessionTTL()), nil
	}
}

// ensureAdmin seeds the single admin account on first boot. The password
// comes from configuration; the process refuses to start without it.
func (rt *Runtime) ensureAdmin(ctx context.Context, cfg *config.Config) error {
	existing, err := rt.Users.GetByUsername(ctx, AdminUsername)
	if err != nil {
		return fmt.Errorf("bootstrap: look up admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	if cfg.AdminPassword == "" {
		return fmt.Errorf("bootstrap: ADMIN_PASSWORD must be set to seed the admin account")
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap: hash admin password: %w", err)
	}

	if err := rt.Users.Create(ctx, &models.User{
		Username: AdminUsername,
		Password: hash,
		IsAdmin:  true,
	}); err != nil {
		return fmt.Errorf("bootstrap: create admin: %w", err)
	}
	return nil
}
