package workers

import (
	"context"
	"sync/atomic"
	"time"

	deletionEntity "gallery/internal/core/deletion"
	"gallery/internal/core/queue"
	deletionPort "gallery/internal/ports/deletion"
	subPort "gallery/internal/ports/submission"

	"go.uber.org/zap"
)

// SweepWorker reconciles the deletion ledger against live submission state.
// Once per interval it snapshots the ledger and, entry by entry, deletes
// submissions that are due and still declined. Entries are processed
// best-effort: one failure never aborts the sweep.
type SweepWorker struct {
	Ledger      deletionPort.DeletionLedger
	Submissions subPort.SubmissionRepository
	Cache       subPort.SubmissionCache
	Interval    time.Duration
	Logger      *zap.Logger

	inFlight atomic.Bool
}

func NewSweepWorker(
	ledger deletionPort.DeletionLedger,
	submissions subPort.SubmissionRepository,
	cache subPort.SubmissionCache,
	interval time.Duration,
	logger *zap.Logger,
) *SweepWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SweepWorker{
		Ledger:      ledger,
		Submissions: submissions,
		Cache:       cache,
		Interval:    interval,
		Logger:      logger,
	}
}

// Run fires the sweep on interval boundaries (top of the hour for the
// default interval) until the context is cancelled.
func (w *SweepWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 SweepWorker started", zap.Duration("interval", w.Interval))

	timer := time.NewTimer(untilNextTick(time.Now(), w.Interval))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 SweepWorker stopped")
			return
		case <-timer.C:
			w.Sweep(ctx)
			timer.Reset(untilNextTick(time.Now(), w.Interval))
		}
	}
}

// Sweep runs one reconciliation pass over a fresh ledger snapshot. It is
// exported so operators and tests can trigger a pass without waiting for the
// timer. A tick that lands while a sweep is still running is skipped.
func (w *SweepWorker) Sweep(ctx context.Context) {
	if !w.inFlight.CompareAndSwap(false, true) {
		w.Logger.Warn("⚠️ Sweep still in flight, skipping this tick")
		return
	}
	defer w.inFlight.Store(false)

	entries, err := w.Ledger.All(ctx)
	if err != nil {
		w.Logger.Error("❌ Error reading deletion ledger:", zap.Error(err))
		return
	}

	now := time.Now().Unix()
	for _, entry := range entries {
		w.processEntry(ctx, entry, now)
	}
}

// processEntry walks one ledger entry through validate → time gate → fetch →
// confirm → delete. Every early return leaves the entry for the next sweep,
// except the stale-kind purge.
func (w *SweepWorker) processEntry(ctx context.Context, entry *deletionEntity.ScheduledDeletion, now int64) {
	if entry == nil {
		return
	}

	kind, ok := queue.KindByCode(entry.TypeCode)
	if !ok {
		// Stale entry: the type no longer maps to a kind. Purge without
		// touching any submission.
		w.Logger.Warn("⚠️ Ledger entry has unknown kind, purging",
			zap.Int64("cronid", entry.CronID), zap.Int("type", entry.TypeCode))
		w.removeEntry(ctx, entry.CronID)
		return
	}

	if entry.FireTime > now {
		// Not due yet; re-checked next sweep.
		return
	}

	sub, err := w.Submissions.FindByID(ctx, kind, entry.SubmissionID)
	if err != nil {
		w.Logger.Warn("⚠️ Could not fetch submission for ledger entry",
			zap.Int64("cronid", entry.CronID), zap.String("kind", string(kind)),
			zap.Int64("id", entry.SubmissionID), zap.Error(err))
		return
	}

	if sub.Status != queue.StatusDeclined {
		// Re-accepted (or back in the queue) since it was scheduled.
		w.Logger.Info("➡ Submission no longer declined, keeping",
			zap.Int64("cronid", entry.CronID), zap.String("kind", string(kind)),
			zap.Int64("id", entry.SubmissionID), zap.String("status", sub.Status.String()))
		return
	}

	if err := w.Submissions.Delete(ctx, kind, entry.SubmissionID); err != nil {
		w.Logger.Error("❌ Error deleting declined submission:",
			zap.Int64("cronid", entry.CronID), zap.String("kind", string(kind)),
			zap.Int64("id", entry.SubmissionID), zap.Error(err))
		return
	}

	w.Cache.Invalidate(ctx, kind, entry.SubmissionID)
	w.removeEntry(ctx, entry.CronID)

	w.Logger.Info("✅ Deleted declined submission",
		zap.String("kind", string(kind)), zap.Int64("id", entry.SubmissionID),
		zap.Int64("cronid", entry.CronID))
}

func (w *SweepWorker) removeEntry(ctx context.Context, cronID int64) {
	if err := w.Ledger.Remove(ctx, cronID); err != nil {
		w.Logger.Warn("⚠️ Warning: could not remove ledger entry:",
			zap.Int64("cronid", cronID), zap.Error(err))
	}
}

// untilNextTick aligns firings to wall-clock boundaries of the interval, so
// the hourly default fires at minute 0.
func untilNextTick(now time.Time, interval time.Duration) time.Duration {
	next := now.Truncate(interval).Add(interval)
	return next.Sub(now)
}
