package models

// Follow is a directed edge between two accounts. The composite unique index
// is the source of truth for deduplication: two racing follow attempts both
// pass the existence check, but only one insert survives.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"uniqueIndex:idx_follow_edge"`
	Follower   Account `json:"follower" gorm:"foreignKey:FollowerID"`

	FollowedID uint    `json:"followed_id" gorm:"uniqueIndex:idx_follow_edge"`
	Followed   Account `json:"followed" gorm:"foreignKey:FollowedID"`
}
