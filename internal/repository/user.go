// Package repository provides data access layer implementations for the
// application. The system of record is process memory: every repository is
// backed by maps guarded by an RWMutex, and all state is lost on restart.
package repository

import (
	"context"
	"errors"
	"sync"

	"inkwell/internal/models"
)

// ErrUsernameTaken is returned by UserRepository.Create when the username
// is already registered.
var ErrUsernameTaken = errors.New("repository: username already taken")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// userRepository implements UserRepository with an in-memory map.
type userRepository struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	nextID uint
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() UserRepository {
	return &userRepository{
		users:  make(map[uint]models.User),
		nextID: 1,
	}
}

func (r *userRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// Create assigns the next identifier and stores the user. Username
// uniqueness is enforced here; identifiers are never reused.
func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}
