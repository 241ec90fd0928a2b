package repository

import (
	"context"
	"fmt"

	"claims_processor/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisSequenceKeyPrefix = "claims:seq:"

// Incrementer is the slice of the Redis client the allocator needs; *redis.Client satisfies it.
type Incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisSequenceAllocator keeps claim number counters in Redis so every store shares them.
type RedisSequenceAllocator struct {
	client Incrementer
}

var _ interfaces.ISequenceAllocator = (*RedisSequenceAllocator)(nil)
var _ Incrementer = (*redis.Client)(nil)

func NewRedisSequenceAllocator(client Incrementer) *RedisSequenceAllocator {
	return &RedisSequenceAllocator{client: client}
}

func sequenceKey(bucket string) string {
	return redisSequenceKeyPrefix + bucket
}

func (a *RedisSequenceAllocator) Next(ctx context.Context, bucket string) (int64, error) {
	v, err := a.client.Incr(ctx, sequenceKey(bucket)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", bucket, err)
	}
	return v, nil
}
