package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pemistahl/lingua-go"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PostDefaultOrder keeps listings newest-first; the id tiebreak makes page
// boundaries stable when several posts share a timestamp.
const PostDefaultOrder = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

func DetectPostLanguage(text string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Russian,
				lingua.German,
				lingua.French,
				lingua.Spanish,
			).
			Build()
	})

	if lang, ok := languageDetector.DetectLanguageOf(text); ok {
		return strings.ToLower(lang.IsoCode639_1().String())
	}
	return ""
}

func NewPost(author models.Account, item models.Post) (models.Post, error) {
	if len(strings.TrimSpace(item.Text)) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	item.AuthorID = author.ID
	item.Language = DetectPostLanguage(item.Text)

	start := time.Now()
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	log.Debug().
		Uint("post", item.ID).
		Uint("author", author.ID).
		Dur("elapsed", time.Since(start)).
		Msg("The post is published.")
	return item, nil
}

// EditPost updates the mutable fields only; the publication timestamp and
// the author stay as they were.
func EditPost(item models.Post) (models.Post, error) {
	if len(strings.TrimSpace(item.Text)) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	item.Language = DetectPostLanguage(item.Text)

	err := database.C.Model(&models.Post{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"text":       item.Text,
			"language":   item.Language,
			"group_id":   item.GroupID,
			"image":      item.Image,
			"image_meta": item.ImageMeta,
		}).Error

	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
