package models

// GroupSlugMaxLength bounds the slug column; slugs derived from long titles
// are truncated to fit.
const GroupSlugMaxLength = 30

type Group struct {
	BaseModel

	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:30"`
	Description string `json:"description"`

	Posts []Post `json:"posts"`
}
