package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkwell/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// commentRepository implements CommentRepository with an in-memory map.
type commentRepository struct {
	mu       sync.RWMutex
	comments map[uint]models.Comment
	nextID   uint
}

// NewCommentRepository creates a new in-memory comment repository
func NewCommentRepository() CommentRepository {
	return &commentRepository{
		comments: make(map[uint]models.Comment),
		nextID:   1,
	}
}

func (r *commentRepository) Create(_ context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now().UTC()

	r.comments[comment.ID] = *comment
	return nil
}

func (r *commentRepository) GetByID(_ context.Context, id uint) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(_ context.Context, postID uint) ([]*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]*models.Comment, 0)
	for _, comment := range r.comments {
		if comment.PostID == postID {
			c := comment
			comments = append(comments, &c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// Delete removes the comment; deleting an absent id is a no-op returning false.
func (r *commentRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return false, nil
	}
	delete(r.comments, id)
	return true, nil
}
