package user

import (
	"time"
)

// User is read-only here: listings join it for the author's username and
// group id. Account management lives outside this service.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username  string    `gorm:"column:username;unique;not null"`
	GroupID   int64     `gorm:"column:gid;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
