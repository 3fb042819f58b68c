package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis 接続設定
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// 複数プロセスで共有するキャッシュ
type RedisProvider struct {
	client *redis.Client
	logger *zap.Logger
}

// 接続確認してから返す
func NewRedisProvider(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))
	return &RedisProvider{client: client, logger: logger}, nil
}

func NewRedisProviderFromClient(client *redis.Client, logger *zap.Logger) *RedisProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisProvider{client: client, logger: logger}
}

func (p *RedisProvider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		p.logger.Error("redis get failed", zap.String("key", key), zap.Error(err))
		return nil, false, err
	}
	return val, true, nil
}

func (p *RedisProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := p.client.Set(ctx, key, value, ttl).Err(); err != nil {
		p.logger.Error("redis set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (p *RedisProvider) Remove(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		p.logger.Error("redis delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (p *RedisProvider) Close() error {
	return p.client.Close()
}
