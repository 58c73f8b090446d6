package models

type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	Description string `json:"description"`

	// Never leaves the server, not even in rendered JSON fragments.
	PasswordHash string `json:"-"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`

	Following []Follow `json:"following" gorm:"foreignKey:FollowerID"`
	Followers []Follow `json:"followers" gorm:"foreignKey:FollowedID"`
}
