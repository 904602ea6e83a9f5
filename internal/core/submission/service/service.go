package submissionapp

import (
	"context"

	"gallery/internal/core/queue"
	subPort "gallery/internal/ports/submission"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SubmissionService is the use-case layer over the submission repository and
// the detail cache.
type SubmissionService struct {
	SubmissionRepository subPort.SubmissionRepository
	Cache                subPort.SubmissionCache
	Logger               *zap.Logger
}

func NewSubmissionService(
	repo subPort.SubmissionRepository,
	cache subPort.SubmissionCache,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepository: repo,
		Cache:                cache,
		Logger:               logger,
	}
}

// List returns one page of submissions for the given queue filter.
func (s *SubmissionService) List(ctx context.Context, kind queue.Kind, q subPort.ListQuery) ([]*subPort.SubmissionDTO, error) {
	if q.Filter == "" {
		q.Filter = queue.FilterAccepted
	}
	if q.Page < 0 {
		q.Page = 0
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return s.SubmissionRepository.List(ctx, kind, q)
}

// Detail returns one submission, reading through the cache. The view
// counter bump is best-effort and never fails the read.
func (s *SubmissionService) Detail(ctx context.Context, kind queue.Kind, id int64) (*subPort.SubmissionDTO, error) {
	if dto, ok := s.Cache.GetDetail(ctx, kind, id); ok {
		s.bump(ctx, kind, id, "views")
		return dto, nil
	}

	dto, err := s.SubmissionRepository.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	s.Cache.SetDetail(ctx, kind, dto)
	s.bump(ctx, kind, id, "views")
	return dto, nil
}

// Download resolves the submission's file reference and bumps the download
// counter.
func (s *SubmissionService) Download(ctx context.Context, kind queue.Kind, id int64) (string, error) {
	dto, err := s.SubmissionRepository.FindByID(ctx, kind, id)
	if err != nil {
		return "", err
	}
	s.bump(ctx, kind, id, "downloads")
	return dto.FileURL, nil
}

// History returns the version rows for one submission.
func (s *SubmissionService) History(ctx context.Context, kind queue.Kind, rid int64) ([]*subPort.UpdateRecordDTO, error) {
	return s.SubmissionRepository.UpdateHistory(ctx, kind, rid)
}

// Delete removes the submission row and drops its cache entry.
func (s *SubmissionService) Delete(ctx context.Context, kind queue.Kind, id int64) error {
	if err := s.SubmissionRepository.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, kind, id)
	return nil
}

func (s *SubmissionService) bump(ctx context.Context, kind queue.Kind, id int64, column string) {
	if err := s.SubmissionRepository.BumpCounter(ctx, kind, id, column); err != nil {
		s.Logger.Warn("⚠️ Warning: could not bump counter",
			zap.String("kind", string(kind)), zap.Int64("id", id),
			zap.String("column", column), zap.Error(err))
	}
}
