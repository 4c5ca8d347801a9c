package validation

import (
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	assert.Nil(t, Login("admin", "secret123"))

	fields := Login("", "")
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")

	fields = Login("  ", "pw")
	assert.Contains(t, fields, "username")
	assert.NotContains(t, fields, "password")
}

func TestPostInput(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		category string
		tags     []string
		badField string
	}{
		{"valid", "Title", "Body", "news", []string{"go"}, ""},
		{"valid no tags", "Title", "Body", "news", []string{}, ""},
		{"missing title", "", "Body", "news", []string{}, "title"},
		{"blank title", "   ", "Body", "news", []string{}, "title"},
		{"long title", strings.Repeat("x", maxTitleLen+1), "Body", "news", []string{}, "title"},
		{"missing content", "Title", "", "news", []string{}, "content"},
		{"missing category", "Title", "Body", "", []string{}, "category"},
		{"nil tags", "Title", "Body", "news", nil, "tags"},
		{"empty tag", "Title", "Body", "news", []string{"ok", " "}, "tags"},
		{"too many tags", "Title", "Body", "news", make([]string, maxTags+1), "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := PostInput(tt.title, tt.content, tt.category, tt.tags)
			if tt.badField == "" {
				assert.Nil(t, fields)
			} else {
				assert.Contains(t, fields, tt.badField)
			}
		})
	}
}

func TestPostUpdateChecksOnlySuppliedFields(t *testing.T) {
	assert.Nil(t, PostUpdate(models.PostUpdate{}))

	empty := ""
	fields := PostUpdate(models.PostUpdate{Title: &empty})
	assert.Contains(t, fields, "title")
	assert.NotContains(t, fields, "content")

	title := "New title"
	assert.Nil(t, PostUpdate(models.PostUpdate{Title: &title}))
}

func TestCommentInput(t *testing.T) {
	assert.Nil(t, CommentInput("looks good"))
	assert.Contains(t, CommentInput(""), "content")
	assert.Contains(t, CommentInput(strings.Repeat("x", maxCommentLen+1)), "content")
}
