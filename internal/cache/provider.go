package cache

import (
	"context"
	"time"
)

// JSON のバイト列を保存する先
type Provider interface {
	// 無ければ ok=false
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}
