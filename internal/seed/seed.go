// Package seed provides helpers to create demo content for local
// development. It is never invoked in production deployments.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	demoPosts           = 6
	demoCommentsPerPost = 3
)

// Demo populates the repositories with generated posts and comments
// authored by the given user.
func Demo(ctx context.Context, posts repository.PostRepository,
	comments repository.CommentRepository, author *models.User) error {
	if author == nil {
		return fmt.Errorf("seed: demo content needs an author")
	}

	gofakeit.Seed(time.Now().UnixNano())

	for i := 0; i < demoPosts; i++ {
		post := &models.Post{
			Title:    strings.TrimSuffix(gofakeit.Sentence(6), "."),
			Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Category: gofakeit.RandomString([]string{"engineering", "design", "opinion", "news"}),
			Tags:     demoTags(),
			AuthorID: author.ID,
		}
		if err := posts.Create(ctx, post); err != nil {
			return fmt.Errorf("seed: create post: %w", err)
		}

		for j := 0; j < demoCommentsPerPost; j++ {
			comment := &models.Comment{
				Content:  gofakeit.Sentence(12),
				PostID:   post.ID,
				AuthorID: author.ID,
			}
			if err := comments.Create(ctx, comment); err != nil {
				return fmt.Errorf("seed: create comment: %w", err)
			}
		}
	}
	return nil
}

func demoTags() []string {
	n := gofakeit.Number(1, 4)
	tags := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tags = append(tags, strings.ToLower(gofakeit.BuzzWord()))
	}
	return tags
}
