package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gallery/internal/config"
	"gallery/internal/core/queue"
	subPort "gallery/internal/ports/submission"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SubmissionCacheRedis caches the detail projection per kind+id. Any cache
// failure is logged and treated as a miss so Redis can never fail a request.
type SubmissionCacheRedis struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSubmissionCacheRedis(client *redis.Client, ttl time.Duration) *SubmissionCacheRedis {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SubmissionCacheRedis{
		Client: client,
		TTL:    ttl,
	}
}

func detailKey(kind queue.Kind, id int64) string {
	return fmt.Sprintf("submission:%s:%d", kind, id)
}

func (r *SubmissionCacheRedis) GetDetail(ctx context.Context, kind queue.Kind, id int64) (*subPort.SubmissionDTO, bool) {
	raw, err := r.Client.Get(ctx, detailKey(kind, id)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		config.Logger.Warn("⚠️ Cache read failed", zap.String("key", detailKey(kind, id)), zap.Error(err))
		return nil, false
	}

	var dto subPort.SubmissionDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		config.Logger.Warn("⚠️ Cache entry not decodable, dropping", zap.String("key", detailKey(kind, id)), zap.Error(err))
		r.Client.Del(ctx, detailKey(kind, id))
		return nil, false
	}
	dto.Status = queue.StatusFromCode(statusCode(dto.StatusName))
	return &dto, true
}

func (r *SubmissionCacheRedis) SetDetail(ctx context.Context, kind queue.Kind, dto *subPort.SubmissionDTO) {
	raw, err := json.Marshal(dto)
	if err != nil {
		config.Logger.Warn("⚠️ Could not encode cache entry", zap.Error(err))
		return
	}
	if err := r.Client.Set(ctx, detailKey(kind, dto.ID), raw, r.TTL).Err(); err != nil {
		config.Logger.Warn("⚠️ Cache write failed", zap.String("key", detailKey(kind, dto.ID)), zap.Error(err))
	}
}

func (r *SubmissionCacheRedis) Invalidate(ctx context.Context, kind queue.Kind, id int64) {
	if err := r.Client.Del(ctx, detailKey(kind, id)).Err(); err != nil {
		config.Logger.Warn("⚠️ Cache invalidate failed", zap.String("key", detailKey(kind, id)), zap.Error(err))
	}
}

// statusCode recovers the stored code from the serialized status name. The
// JSON payload keeps the name, not the int, so detail responses stay stable.
func statusCode(name string) int {
	switch name {
	case queue.StatusAccepted.String():
		return 0
	case queue.StatusPendingNew.String():
		return 1
	case queue.StatusPendingUpdate.String():
		return 2
	default:
		return -1
	}
}
