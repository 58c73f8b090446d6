package models

type Comment struct {
	BaseModel

	Text string `json:"text" gorm:"not null"`

	PostID uint `json:"post_id" gorm:"index"`
	Post   Post `json:"post" gorm:"constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id" gorm:"index"`
	Author   Account `json:"author"`
}
