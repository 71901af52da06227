package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/alienxp03/splitdecision/internal/core"
)

const redisKey = "splitdecision:comparisons"

// RedisStore implements Store on a Redis sorted set scored by timestamp.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Save adds the record scored by its timestamp and trims the set down to
// MaxRecords, dropping the lowest-scored (oldest) entries first.
func (s *RedisStore) Save(ctx context.Context, rec core.ComparisonRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := s.rdb.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(rec.Timestamp),
		Member: string(data),
	}).Err(); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	if err := s.rdb.ZRemRangeByRank(ctx, redisKey, 0, int64(-(MaxRecords + 1))).Err(); err != nil {
		return fmt.Errorf("failed to trim records: %w", err)
	}

	return nil
}

// Recent returns up to limit stored records newest first. Entries that
// fail to decode are skipped.
func (s *RedisStore) Recent(ctx context.Context, limit int) ([]core.ComparisonRecord, error) {
	limit = clampLimit(limit)
	members, err := s.rdb.ZRevRange(ctx, redisKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	records := make([]core.ComparisonRecord, 0, len(members))
	for _, m := range members {
		var rec core.ComparisonRecord
		if err := json.Unmarshal([]byte(m), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close is a no-op; the Redis client is shared and closed by its owner.
func (s *RedisStore) Close() error {
	return nil
}
