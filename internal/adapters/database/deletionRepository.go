package database

import (
	"context"

	"gallery/internal/config"
	"gallery/internal/core/deletion"
)

type DeletionLedgerDatabase struct{}

func NewDeletionLedgerDatabase() *DeletionLedgerDatabase {
	return &DeletionLedgerDatabase{}
}

// All reads the whole ledger; one snapshot per sweep.
func (repo *DeletionLedgerDatabase) All(ctx context.Context) ([]*deletion.ScheduledDeletion, error) {
	var entries []*deletion.ScheduledDeletion
	if err := config.DB.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Remove deletes one ledger row. Zero rows affected is fine: the entry may
// already be gone.
func (repo *DeletionLedgerDatabase) Remove(ctx context.Context, cronID int64) error {
	return config.DB.WithContext(ctx).
		Where("cronid = ?", cronID).
		Delete(&deletion.ScheduledDeletion{}).Error
}
