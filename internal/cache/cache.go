package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ヒット・ミスの記録先
type Recorder interface {
	CacheHit(category string)
	CacheMiss(category string)
}

type nopRecorder struct{}

func (nopRecorder) CacheHit(string)  {}
func (nopRecorder) CacheMiss(string) {}

// 読み込み時に埋めるキャッシュ
// 同じキーの同時ミスは1回の取得にまとめる
type Cache struct {
	provider Provider
	ttl      time.Duration
	group    singleflight.Group
	recorder Recorder
	logger   *zap.Logger
}

func New(provider Provider, ttl time.Duration, recorder Recorder, logger *zap.Logger) *Cache {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{provider: provider, ttl: ttl, recorder: recorder, logger: logger}
}

func (c *Cache) Remove(ctx context.Context, key Key) error {
	return c.provider.Remove(ctx, key.String())
}

// キャッシュにあればそれを、無ければ fetch の結果を保存して返す
// 保存先の障害は取得を妨げない
func GetOrAdd[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	k := key.String()

	if raw, ok, err := c.provider.Get(ctx, k); err == nil && ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			c.recorder.CacheHit(key.Category)
			return v, nil
		}
		c.logger.Warn("cache entry undecodable", zap.String("key", k))
	} else if err != nil {
		c.logger.Warn("cache get failed", zap.String("key", k), zap.Error(err))
	}

	c.recorder.CacheMiss(key.Category)

	res, err, _ := c.group.Do(k, func() (interface{}, error) {
		v, err := fetch(ctx)
		if err != nil {
			return v, err
		}
		if raw, err := json.Marshal(v); err == nil {
			if err := c.provider.Set(ctx, k, raw, c.ttl); err != nil {
				c.logger.Warn("cache set failed", zap.String("key", k), zap.Error(err))
			}
		}
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := res.(T)
	return v, nil
}
