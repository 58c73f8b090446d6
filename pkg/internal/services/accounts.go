package services

import (
	"errors"
	"fmt"

	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrCredentialsInvalid = errors.New("account name or password is incorrect")

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func NewAccount(name, nick, email, password string) (models.Account, error) {
	account := models.Account{
		Name:  name,
		Nick:  nick,
		Email: email,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}
	account.PasswordHash = string(hash)

	if err := database.C.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account, fmt.Errorf("account name or email is already taken")
		}
		return account, err
	}

	return account, nil
}

func AuthAccount(name, password string) (models.Account, error) {
	account, err := GetAccountWithName(name)
	if err != nil {
		return account, ErrCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return account, ErrCredentialsInvalid
	}
	return account, nil
}

// DeleteAccount removes the account and everything it owns: posts (with
// their comments), comments left elsewhere, and follow edges in both
// directions. One transaction, so a failure leaves nothing half-gone.
func DeleteAccount(account models.Account) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"post_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.Post{}).Select("id").Where("author_id = ?", account.ID),
		).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", account.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", account.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", account.ID, account.ID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
}
