package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gallery/internal/config"
	"gallery/internal/core/queue"
	"gallery/internal/core/submission"
	subPort "gallery/internal/ports/submission"

	"gorm.io/gorm"
)

// SubmissionRepositoryDatabase implements SubmissionRepository on the
// kind-partitioned MySQL tables.
type SubmissionRepositoryDatabase struct{}

func NewSubmissionRepositoryDatabase() *SubmissionRepositoryDatabase {
	return &SubmissionRepositoryDatabase{}
}

// submissionRow is the scan target for the listing/detail projection.
type submissionRow struct {
	ID               int64      `gorm:"column:id"`
	UserID           int64      `gorm:"column:uid"`
	Title            string     `gorm:"column:title"`
	Description      string     `gorm:"column:description"`
	FileURL          string     `gorm:"column:file"`
	Thumbnail        string     `gorm:"column:thumbnail"`
	QueueCode        int        `gorm:"column:queue_code"`
	Views            int64      `gorm:"column:views"`
	Downloads        int64      `gorm:"column:downloads"`
	Comments         int64      `gorm:"column:comments"`
	Username         string     `gorm:"column:username"`
	GroupID          int64      `gorm:"column:gid"`
	CreatedAt        time.Time  `gorm:"column:created"`
	UpdatedAt        time.Time  `gorm:"column:updated"`
	AcceptedAt       *time.Time `gorm:"column:accept_date"`
	UpdateAcceptedAt *time.Time `gorm:"column:update_accept_date"`
}

const projection = "t.id, t.uid, t.title, t.description, t.file, t.thumbnail, " +
	"t.queue_code, t.views, t.downloads, t.created, t.updated, t.accept_date, " +
	"t.update_accept_date, users.username, users.gid, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.rid = t.id AND comments.type = ?) AS comments"

// base builds the shared listing/detail query: kind table aliased to t,
// author join, comment count, ghost exclusion.
func (repo *SubmissionRepositoryDatabase) base(kind queue.Kind) *gorm.DB {
	return config.DB.
		Table(kind.Table()+" AS t").
		Select(projection, kind.Code()).
		Joins("LEFT JOIN users ON users.id = t.uid").
		Where("t.ghost = 0")
}

// listStmt assembles the full listing query: filter predicate, equality
// filters, sort, and the page translation LIMIT PageSize OFFSET Page*PageSize.
func (repo *SubmissionRepositoryDatabase) listStmt(ctx context.Context, kind queue.Kind, q subPort.ListQuery) (*gorm.DB, error) {
	clause, args, ok := filterClause(q.Filter)
	if !ok {
		return nil, fmt.Errorf("unknown queue filter %q", q.Filter)
	}

	tx := repo.base(kind).WithContext(ctx).Where(clause, args...)

	for _, eq := range q.Equals {
		if !allowedFilterColumn(eq.Column) {
			return nil, fmt.Errorf("filter column %q not allowed", eq.Column)
		}
		tx = tx.Where("t."+eq.Column+" = ?", eq.Value)
	}

	if q.SortColumn != "" {
		if !allowedSortColumn(q.SortColumn) {
			return nil, fmt.Errorf("sort column %q not allowed", q.SortColumn)
		}
		dir := "DESC"
		if q.Ascending {
			dir = "ASC"
		}
		tx = tx.Order("t." + q.SortColumn + " " + dir)
	}

	return tx.Limit(q.PageSize).Offset(q.Page * q.PageSize), nil
}

func (repo *SubmissionRepositoryDatabase) List(ctx context.Context, kind queue.Kind, q subPort.ListQuery) ([]*subPort.SubmissionDTO, error) {
	tx, err := repo.listStmt(ctx, kind, q)
	if err != nil {
		return nil, err
	}

	var rows []submissionRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*subPort.SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

func (repo *SubmissionRepositoryDatabase) FindByID(ctx context.Context, kind queue.Kind, id int64) (*subPort.SubmissionDTO, error) {
	var row submissionRow
	err := repo.base(kind).WithContext(ctx).Where("t.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, subPort.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toDTO(), nil
}

func (repo *SubmissionRepositoryDatabase) UpdateHistory(ctx context.Context, kind queue.Kind, rid int64) ([]*subPort.UpdateRecordDTO, error) {
	type updateRow struct {
		VID         int64     `gorm:"column:vid"`
		RID         int64     `gorm:"column:rid"`
		Version     string    `gorm:"column:version"`
		Description string    `gorm:"column:description"`
		Date        time.Time `gorm:"column:date"`
		TypeCode    int       `gorm:"column:type"`
		Old         int       `gorm:"column:old"`
	}

	var rows []updateRow
	err := config.DB.WithContext(ctx).
		Table("submission_updates").
		Where("rid = ? AND type = ?", rid, kind.Code()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*subPort.UpdateRecordDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, &subPort.UpdateRecordDTO{
			VID:         r.VID,
			RID:         r.RID,
			Version:     r.Version,
			Description: r.Description,
			Date:        r.Date.Format(time.RFC3339),
			TypeCode:    r.TypeCode,
			Old:         r.Old != 0,
		})
	}
	return out, nil
}

// Delete hard-deletes one submission row. It does not cascade to the update
// history or the deletion ledger; that is the caller's job.
func (repo *SubmissionRepositoryDatabase) Delete(ctx context.Context, kind queue.Kind, id int64) error {
	return config.DB.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		Delete(&submission.Submission{}).Error
}

func (repo *SubmissionRepositoryDatabase) BumpCounter(ctx context.Context, kind queue.Kind, id int64, column string) error {
	if !allowedCounterColumn(column) {
		return fmt.Errorf("counter column %q not allowed", column)
	}
	return config.DB.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

func (r *submissionRow) toDTO() *subPort.SubmissionDTO {
	status := queue.StatusFromCode(r.QueueCode)
	dto := &subPort.SubmissionDTO{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		FileURL:     r.FileURL,
		Thumbnail:   r.Thumbnail,
		Status:      status,
		StatusName:  status.String(),
		Views:       r.Views,
		Downloads:   r.Downloads,
		Comments:    r.Comments,
		Username:    r.Username,
		GroupID:     r.GroupID,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
	if r.AcceptedAt != nil {
		dto.AcceptedAt = r.AcceptedAt.Format(time.RFC3339)
	}
	if r.UpdateAcceptedAt != nil {
		dto.UpdateAcceptedAt = r.UpdateAcceptedAt.Format(time.RFC3339)
	}
	return dto
}
