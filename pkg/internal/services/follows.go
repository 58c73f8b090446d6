package services

import (
	"errors"

	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"gorm.io/gorm"
)

var ErrFollowSelf = errors.New("you cannot follow yourself")

func GetFollow(follower, followed models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.
		Where("follower_id = ? AND followed_id = ?", follower.ID, followed.ID).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

// FollowAccount is idempotent: following someone you already follow is a
// no-op. The unique index settles concurrent attempts, so a duplicate-key
// error here means another request won the race and is swallowed too.
func FollowAccount(follower, followed models.Account) (models.Follow, error) {
	follow := models.Follow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}

	if follower.ID == followed.ID {
		return follow, ErrFollowSelf
	}

	if existing, err := GetFollow(follower, followed); err != nil {
		return follow, err
	} else if existing != nil {
		return *existing, nil
	}

	if err := database.C.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return follow, nil
		}
		return follow, err
	}

	return follow, nil
}

// UnfollowAccount removes the edge if present; absence is not an error.
func UnfollowAccount(follower, followed models.Account) error {
	return database.C.
		Where("follower_id = ? AND followed_id = ?", follower.ID, followed.ID).
		Delete(&models.Follow{}).Error
}

func CountFollowers(account models.Account) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("followed_id = ?", account.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func CountFollowing(account models.Account) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ?", account.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func IsFollowing(follower, followed models.Account) bool {
	follow, err := GetFollow(follower, followed)
	return err == nil && follow != nil
}
