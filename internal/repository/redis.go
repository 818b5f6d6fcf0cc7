// internal/repository/redis.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "internship-matcher/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

// redisRepository keeps one hash of JSON documents per record kind and a
// sorted set of ids scored by insertion sequence.
type redisRepository[T any] struct {
	client   redis.Cmdable
	kind     string
	idOf     func(T) string
	dataKey  string
	orderKey string
	seqKey   string
}

// NewRedis returns a Repository stored under "<prefix>:<kind>s".
func NewRedis[T any](client redis.Cmdable, prefix, kind string, idOf func(T) string) Repository[T] {
	base := fmt.Sprintf("%s:%ss", prefix, kind)
	return &redisRepository[T]{
		client:   client,
		kind:     kind,
		idOf:     idOf,
		dataKey:  base,
		orderKey: base + ":order",
		seqKey:   base + ":seq",
	}
}

func (r *redisRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var record T

	raw, err := r.client.HGet(ctx, r.dataKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return record, ErrNotFound
	}
	if err != nil {
		return record, apperrors.NewStorageReadFailedError(r.kind, err)
	}

	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return record, apperrors.NewStorageReadFailedError(r.kind, err)
	}
	return record, nil
}

func (r *redisRepository[T]) Put(ctx context.Context, record T) error {
	id := r.idOf(record)

	payload, err := json.Marshal(record)
	if err != nil {
		return apperrors.NewStorageWriteFailedError(r.kind, err)
	}

	seq, err := r.client.Incr(ctx, r.seqKey).Result()
	if err != nil {
		return apperrors.NewStorageWriteFailedError(r.kind, err)
	}

	// NX keeps the original position when a record is replaced
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddNX(ctx, r.orderKey, redis.Z{Score: float64(seq), Member: id})
		pipe.HSet(ctx, r.dataKey, id, payload)
		return nil
	})
	if err != nil {
		return apperrors.NewStorageWriteFailedError(r.kind, err)
	}
	return nil
}

func (r *redisRepository[T]) List(ctx context.Context) ([]T, error) {
	ids, err := r.client.ZRange(ctx, r.orderKey, 0, -1).Result()
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(r.kind, err)
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	values, err := r.client.HMGet(ctx, r.dataKey, ids...).Result()
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(r.kind, err)
	}

	out := make([]T, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var record T
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, apperrors.NewStorageReadFailedError(r.kind, err)
		}
		out = append(out, record)
	}
	return out, nil
}
