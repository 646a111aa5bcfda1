package cache

import (
	"context"
	"errors"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

const settingTTL = 10 * time.Minute

// SettingsStorage 设置项两级缓存：进程内热缓存 + redis。
// 任何写入都同时失效两级
type SettingsStorage struct {
	redis *redis.Client
	local cmap.ConcurrentMap[string, string]
}

func NewSettingsStorage(redis *redis.Client) *SettingsStorage {
	return &SettingsStorage{
		redis: redis,
		local: cmap.New[string](),
	}
}

func (s *SettingsStorage) key(key string) string {
	return "settings:" + key
}

// Get 先查本地，再查 redis。两级都没有返回 false
func (s *SettingsStorage) Get(ctx context.Context, key string) (string, bool) {
	if v, ok := s.local.Get(key); ok {
		return v, true
	}

	v, err := s.redis.Get(ctx, s.key(key)).Result()
	if err != nil {
		return "", false
	}
	s.local.Set(key, v)
	return v, true
}

// Set 写入两级缓存
func (s *SettingsStorage) Set(ctx context.Context, key, value string) error {
	if err := s.redis.Set(ctx, s.key(key), value, settingTTL).Err(); err != nil {
		return err
	}
	s.local.Set(key, value)
	return nil
}

// Del 两级一起失效
func (s *SettingsStorage) Del(ctx context.Context, key string) error {
	s.local.Remove(key)
	err := s.redis.Del(ctx, s.key(key)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
