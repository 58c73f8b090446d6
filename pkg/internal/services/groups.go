package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"gorm.io/gorm"
)

func GetGroupWithSlug(alias string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", alias).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	if err := database.C.Order("title ASC").Find(&groups).Error; err != nil {
		return groups, err
	}
	return groups, nil
}

// DeriveGroupSlug turns a title into a url-safe slug, transliterating
// non-latin characters and truncating to the column limit.
func DeriveGroupSlug(title string) string {
	out := slug.Make(title)
	if len(out) > models.GroupSlugMaxLength {
		out = strings.TrimRight(out[:models.GroupSlugMaxLength], "-")
	}
	return out
}

// NewGroup persists the group, deriving the slug from the title when one was
// not supplied. The slug never changes afterwards, even if the title does.
func NewGroup(item models.Group) (models.Group, error) {
	if len(item.Slug) == 0 {
		item.Slug = DeriveGroupSlug(item.Title)
	}
	if len(item.Slug) == 0 || len(item.Slug) > models.GroupSlugMaxLength {
		return item, fmt.Errorf("group slug must be between 1 and %d characters", models.GroupSlugMaxLength)
	}

	if err := database.C.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return item, fmt.Errorf("group slug %s is already taken", item.Slug)
		}
		return item, err
	}

	return item, nil
}

// DeleteGroup detaches the group's posts before removing the group itself;
// posts survive with their group reference cleared.
func DeleteGroup(item models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", item.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
