package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// プロセス内の期限付きLRU
// TTL は生成時の値で一律（Set の ttl は使わない）
type MemoryProvider struct {
	lru *expirable.LRU[string, []byte]
}

func NewMemoryProvider(size int, ttl time.Duration) *MemoryProvider {
	if size <= 0 {
		size = 1024
	}
	return &MemoryProvider{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (p *MemoryProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.lru.Get(key)
	return v, ok, nil
}

func (p *MemoryProvider) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	p.lru.Add(key, value)
	return nil
}

func (p *MemoryProvider) Remove(_ context.Context, key string) error {
	p.lru.Remove(key)
	return nil
}

func (p *MemoryProvider) Len() int {
	return p.lru.Len()
}
