package submission

import (
	"context"
	"errors"

	"gallery/internal/core/queue"
)

// ErrNotFound is returned by by-id lookups that match zero rows.
var ErrNotFound = errors.New("submission not found")

// ColumnValue is one caller-supplied equality filter. Columns are checked
// against an allow-list by the adapter; values are always bound parameters.
type ColumnValue struct {
	Column string
	Value  interface{}
}

// ListQuery carries the listing parameters of one page request.
type ListQuery struct {
	Filter     queue.Filter
	Page       int // zero-based
	PageSize   int
	SortColumn string // empty means storage order
	Ascending  bool
	Equals     []ColumnValue
}

// SubmissionRepository is the outbound port for the kind-partitioned
// submission tables.
type SubmissionRepository interface {
	List(ctx context.Context, kind queue.Kind, q ListQuery) ([]*SubmissionDTO, error)
	FindByID(ctx context.Context, kind queue.Kind, id int64) (*SubmissionDTO, error)
	UpdateHistory(ctx context.Context, kind queue.Kind, rid int64) ([]*UpdateRecordDTO, error)
	Delete(ctx context.Context, kind queue.Kind, id int64) error
	BumpCounter(ctx context.Context, kind queue.Kind, id int64, column string) error
}

// SubmissionCache is the outbound port for the detail cache. A miss and a
// cache failure look the same to callers.
type SubmissionCache interface {
	GetDetail(ctx context.Context, kind queue.Kind, id int64) (*SubmissionDTO, bool)
	SetDetail(ctx context.Context, kind queue.Kind, dto *SubmissionDTO)
	Invalidate(ctx context.Context, kind queue.Kind, id int64)
}

// SubmissionDTO is the listing/detail projection: the row itself plus the
// author join and the correlated comment count.
type SubmissionDTO struct {
	ID               int64        `json:"id"`
	UserID           int64        `json:"uid"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	FileURL          string       `json:"file"`
	Thumbnail        string       `json:"thumbnail"`
	Status           queue.Status `json:"-"`
	StatusName       string       `json:"status"`
	Views            int64        `json:"views"`
	Downloads        int64        `json:"downloads"`
	Comments         int64        `json:"comments"`
	Username         string       `json:"username"`
	GroupID          int64        `json:"gid"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        string       `json:"updated_at"`
	AcceptedAt       string       `json:"accept_date,omitempty"`
	UpdateAcceptedAt string       `json:"update_accept_date,omitempty"`
}

type UpdateRecordDTO struct {
	VID         int64  `json:"vid"`
	RID         int64  `json:"rid"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Date        string `json:"date"`
	TypeCode    int    `json:"type"`
	Old         bool   `json:"old"`
}
