package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkwell/internal/models"
)

// PostRepository defines the interface for post data operations. The like
// ledger lives here as well: a per-post set of identity tokens that keeps
// the Likes counter and the recorded identities from ever diverging.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, id uint, update models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id uint) (bool, error)
	AddLike(ctx context.Context, postID uint, identity string) (bool, error)
	RemoveLike(ctx context.Context, postID uint, identity string) (bool, error)
	HasLiked(ctx context.Context, postID uint, identity string) (bool, error)
}

// postRepository implements PostRepository with in-memory maps.
type postRepository struct {
	mu     sync.RWMutex
	posts  map[uint]models.Post
	likes  map[uint]map[string]struct{}
	nextID uint
}

// NewPostRepository creates a new in-memory post repository
func NewPostRepository() PostRepository {
	return &postRepository{
		posts:  make(map[uint]models.Post),
		likes:  make(map[uint]map[string]struct{}),
		nextID: 1,
	}
}

// Create assigns the next identifier and creation timestamp and stores the
// post with a zero like counter. Identifiers are never reused, even after
// deletion.
func (r *postRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++
	post.Likes = 0
	post.CreatedAt = time.Now().UTC()

	r.posts[post.ID] = clonePost(*post)
	return nil
}

func (r *postRepository) GetByID(_ context.Context, id uint) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	out := clonePost(post)
	return &out, nil
}

func (r *postRepository) List(_ context.Context) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		out := clonePost(post)
		posts = append(posts, &out)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// Update merges the non-nil fields of update into the stored post.
// An absent id yields (nil, nil); callers map that to a not-found signal.
func (r *postRepository) Update(_ context.Context, id uint, update models.PostUpdate) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Category != nil {
		post.Category = *update.Category
	}
	if update.Tags != nil {
		// copy keeps an explicitly supplied empty array non-nil so it still
		// serializes as [] rather than null
		tags := make([]string, len(*update.Tags))
		copy(tags, *update.Tags)
		post.Tags = tags
	}

	r.posts[id] = clonePost(post)
	out := clonePost(post)
	return &out, nil
}

// Delete removes the post and its like ledger entry. Deleting an absent id
// is a no-op returning false.
func (r *postRepository) Delete(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	delete(r.likes, id)
	return true, nil
}

// AddLike records identity against the post and increments the counter.
// Returns false when the post does not exist or identity already liked it;
// the two cases are indistinguishable to callers.
func (r *postRepository) AddLike(_ context.Context, postID uint, identity string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return false, nil
	}

	ledger, ok := r.likes[postID]
	if !ok {
		ledger = make(map[string]struct{})
		r.likes[postID] = ledger
	}
	if _, liked := ledger[identity]; liked {
		return false, nil
	}

	ledger[identity] = struct{}{}
	post.Likes = len(ledger)
	r.posts[postID] = post
	return true, nil
}

// RemoveLike removes identity from the post's ledger and decrements the
// counter. Returns false when the post does not exist or identity had not
// liked it.
func (r *postRepository) RemoveLike(_ context.Context, postID uint, identity string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return false, nil
	}

	ledger := r.likes[postID]
	if _, liked := ledger[identity]; !liked {
		return false, nil
	}

	delete(ledger, identity)
	post.Likes = len(ledger)
	r.posts[postID] = post
	return true, nil
}

// HasLiked reports whether identity has liked the post. It never fails;
// an absent post yields false.
func (r *postRepository) HasLiked(_ context.Context, postID uint, identity string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger, ok := r.likes[postID]
	if !ok {
		return false, nil
	}
	_, liked := ledger[identity]
	return liked, nil
}

func clonePost(p models.Post) models.Post {
	if p.Tags != nil {
		tags := make([]string, len(p.Tags))
		copy(tags, p.Tags)
		p.Tags = tags
	}
	return p
}
