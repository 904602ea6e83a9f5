package submission

import (
	"time"
)

// Submission is one user-contributed item. The same model is mapped onto a
// separate physical table per kind, so it carries no TableName; adapters
// select the table through queue.Kind.
type Submission struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           int64      `gorm:"column:uid;not null;index"`
	Title            string     `gorm:"column:title;not null"`
	Description      string     `gorm:"column:description;type:text"`
	FileURL          string     `gorm:"column:file"`
	Thumbnail        string     `gorm:"column:thumbnail"`
	QueueCode        int        `gorm:"column:queue_code;not null;default:1;index"`
	Ghost            int        `gorm:"column:ghost;not null;default:0"`
	Views            int64      `gorm:"column:views;not null;default:0"`
	Downloads        int64      `gorm:"column:downloads;not null;default:0"`
	CreatedAt        time.Time  `gorm:"column:created;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated;autoUpdateTime"`
	AcceptedAt       *time.Time `gorm:"column:accept_date"`
	UpdateAcceptedAt *time.Time `gorm:"column:update_accept_date"`
}

// UpdateRecord is one submitted revision of a submission. All kinds share
// one table; the type code disambiguates the parent rid.
type UpdateRecord struct {
	VID         int64     `gorm:"column:vid;primaryKey;autoIncrement"`
	RID         int64     `gorm:"column:rid;not null;index"`
	Version     string    `gorm:"column:version;not null"`
	Description string    `gorm:"column:description;type:text"`
	Date        time.Time `gorm:"column:date;autoCreateTime"`
	TypeCode    int       `gorm:"column:type;not null"`
	Old         int       `gorm:"column:old;not null;default:0"`
}

func (UpdateRecord) TableName() string {
	return "submission_updates"
}

// Comment rows are written by the (out of scope) comment routes; listings
// only ever count them through a correlated subquery.
type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RID       int64     `gorm:"column:rid;not null;index:idx_comment_target"`
	TypeCode  int       `gorm:"column:type;not null;index:idx_comment_target"`
	UserID    int64     `gorm:"column:uid;not null"`
	Body      string    `gorm:"column:body;type:text"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
