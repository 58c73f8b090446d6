package models

import "gorm.io/datatypes"

type Post struct {
	BaseModel

	Text     string `json:"text" gorm:"not null"`
	Language string `json:"language"`

	// Relative path below the media root, plus the upload metadata
	// (original filename, size, content type) captured at upload time.
	Image     *string           `json:"image"`
	ImageMeta datatypes.JSONMap `json:"image_meta"`

	AuthorID uint    `json:"author_id" gorm:"index"`
	Author   Account `json:"author"`

	// A post outlives its group; removing the group leaves the reference nil.
	GroupID *uint  `json:"group_id" gorm:"index"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments"`
}
