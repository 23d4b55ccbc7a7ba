package testutil

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/socialharmony/backend/pkg/xredis"
)

type MockRedisClient struct {
	ZAddFunc                func(ctx context.Context, key string, z redis.Z) error
	ZRevRangeWithScoresFunc func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error)
	SetObjFunc              func(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObjFunc              func(ctx context.Context, key string, v any) error
}

func (m *MockRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	if m.ZAddFunc != nil {
		return m.ZAddFunc(ctx, key, z)
	}

	return nil
}

func (m *MockRedisClient) ZRevRangeWithScores(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
	if m.ZRevRangeWithScoresFunc != nil {
		return m.ZRevRangeWithScoresFunc(ctx, key, offset, limit)
	}

	return nil, nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if m.SetObjFunc != nil {
		return m.SetObjFunc(ctx, key, obj, ttl)
	}

	return nil
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if m.GetObjFunc != nil {
		return m.GetObjFunc(ctx, key, v)
	}

	return xredis.ErrNotFound
}

// NewMemoryRedisClient returns a MockRedisClient backed by in-memory maps.
func NewMemoryRedisClient() *MockRedisClient {
	var mutex sync.Mutex
	values := map[string]string{}
	sorted := map[string][]redis.Z{}

	get := func(ctx context.Context, key string) (string, error) {
		mutex.Lock()
		defer mutex.Unlock()

		v, ok := values[key]
		if !ok {
			return "", xredis.ErrNotFound
		}
		return v, nil
	}

	set := func(ctx context.Context, key, value string) error {
		mutex.Lock()
		defer mutex.Unlock()

		values[key] = value
		return nil
	}

	return &MockRedisClient{
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			b, err := json.Marshal(obj)
			if err != nil {
				return err
			}
			return set(ctx, key, string(b))
		},
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			s, err := get(ctx, key)
			if err != nil {
				return err
			}
			return json.Unmarshal([]byte(s), v)
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			mutex.Lock()
			defer mutex.Unlock()

			sorted[key] = append(sorted[key], z)
			sort.SliceStable(sorted[key], func(i, j int) bool {
				return sorted[key][i].Score > sorted[key][j].Score
			})
			return nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			mutex.Lock()
			defer mutex.Unlock()

			list := sorted[key]
			if offset >= len(list) {
				return nil, nil
			}
			end := offset + limit
			if end > len(list) {
				end = len(list)
			}
			return append([]redis.Z{}, list[offset:end]...), nil
		},
	}
}
