package services

import (
	"fmt"
	"strings"

	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
)

// Comments read top to bottom, oldest first.
const CommentDefaultOrder = "created_at ASC, id ASC"

func ListComment(postID uint) ([]models.Comment, error) {
	var items []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", postID).
		Order(CommentDefaultOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	var item models.Comment
	if len(strings.TrimSpace(text)) == 0 {
		return item, fmt.Errorf("comment text cannot be empty")
	}

	item = models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}
