// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"

	"inkwell/internal/models"
)

const (
	maxTitleLen    = 200
	maxContentLen  = 20000
	maxCategoryLen = 50
	maxTagLen      = 30
	maxTags        = 10
	maxCommentLen  = 2000
)

// Fields maps a field name to a human-readable problem with its value.
// A nil map means the input is valid.
type Fields map[string]string

// Login validates the credentials request body. It checks shape only;
// whether the credentials are correct is the session manager's concern.
func Login(username, password string) Fields {
	fields := Fields{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	return fields.orNil()
}

// PostInput validates a full post creation body.
func PostInput(title, content, category string, tags []string) Fields {
	fields := Fields{}
	checkTitle(fields, title)
	checkContent(fields, content)
	checkCategory(fields, category)
	checkTags(fields, tags)
	return fields.orNil()
}

// PostUpdate validates a partial update; only supplied fields are checked.
func PostUpdate(update models.PostUpdate) Fields {
	fields := Fields{}
	if update.Title != nil {
		checkTitle(fields, *update.Title)
	}
	if update.Content != nil {
		checkContent(fields, *update.Content)
	}
	if update.Category != nil {
		checkCategory(fields, *update.Category)
	}
	if update.Tags != nil {
		checkTags(fields, *update.Tags)
	}
	return fields.orNil()
}

// CommentInput validates a comment creation body.
func CommentInput(content string) Fields {
	fields := Fields{}
	if strings.TrimSpace(content) == "" {
		fields["content"] = "content is required"
	} else if len(content) > maxCommentLen {
		fields["content"] = fmt.Sprintf("content must not exceed %d characters", maxCommentLen)
	}
	return fields.orNil()
}

func checkTitle(fields Fields, title string) {
	if strings.TrimSpace(title) == "" {
		fields["title"] = "title is required"
	} else if len(title) > maxTitleLen {
		fields["title"] = fmt.Sprintf("title must not exceed %d characters", maxTitleLen)
	}
}

func checkContent(fields Fields, content string) {
	if strings.TrimSpace(content) == "" {
		fields["content"] = "content is required"
	} else if len(content) > maxContentLen {
		fields["content"] = fmt.Sprintf("content must not exceed %d characters", maxContentLen)
	}
}

func checkCategory(fields Fields, category string) {
	if strings.TrimSpace(category) == "" {
		fields["category"] = "category is required"
	} else if len(category) > maxCategoryLen {
		fields["category"] = fmt.Sprintf("category must not exceed %d characters", maxCategoryLen)
	}
}

func checkTags(fields Fields, tags []string) {
	if tags == nil {
		fields["tags"] = "tags must be an array of strings"
		return
	}
	if len(tags) > maxTags {
		fields["tags"] = fmt.Sprintf("at most %d tags are allowed", maxTags)
		return
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			fields["tags"] = "tags must not be empty"
			return
		}
		if len(tag) > maxTagLen {
			fields["tags"] = fmt.Sprintf("each tag must not exceed %d characters", maxTagLen)
			return
		}
	}
}

func (f Fields) orNil() Fields {
	if len(f) == 0 {
		return nil
	}
	return f
}
