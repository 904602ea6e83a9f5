package deletion

// ScheduledDeletion is one ledger row: delete submission SubmissionID of
// kind TypeCode at or after FireTime. Entries are created when a submission
// is declined and only ever consumed by the sweep.
type ScheduledDeletion struct {
	CronID       int64 `gorm:"column:cronid;primaryKey;autoIncrement"`
	TypeCode     int   `gorm:"column:type;not null"`
	SubmissionID int64 `gorm:"column:id;not null"`
	FireTime     int64 `gorm:"column:time;not null"` // unix seconds
}

func (ScheduledDeletion) TableName() string {
	return "deletion_schedule"
}
