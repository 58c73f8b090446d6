package services

import (
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"gorm.io/gorm"
)

// FilterPostWithFollowed narrows a post query down to authors the viewer
// follows. Following nobody yields an empty feed, not an error.
func FilterPostWithFollowed(tx *gorm.DB, viewer models.Account) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).
			Select("followed_id").
			Where("follower_id = ?", viewer.ID),
	)
}

// GetFeed recomputes the followed-authors feed on every call. Unlike the
// index page it is viewer-specific and therefore never cached.
func GetFeed(viewer models.Account, page string) (PostPage, error) {
	tx := FilterPostWithFollowed(database.C.Model(&models.Post{}), viewer)
	return PaginatePost(tx, page)
}
