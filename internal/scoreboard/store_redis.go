package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey 记录列表的 key
const DefaultRedisKey = "judgment:scoreboard"

// RedisStore 每条记录一个 list 元素（RPUSH），读取时 LRANGE 全量
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

func (r *RedisStore) Append(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.rdb.RPush(ctx, r.key, data).Err()
}

func (r *RedisStore) List(ctx context.Context) ([]Entry, error) {
	raw, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for i, s := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("decode scoreboard entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
