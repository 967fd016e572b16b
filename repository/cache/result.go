package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uy1-mgp/bff/domain"
)

type RedisResultCache struct {
	cmd        redis.Cmdable
	expiration time.Duration
}

func NewRedisResultCache(cmd redis.Cmdable) ResultCache {
	return &RedisResultCache{
		cmd:        cmd,
		expiration: time.Minute * 15,
	}
}

func (c *RedisResultCache) Get(ctx context.Context, id int64) (domain.Result, error) {
	data, err := c.cmd.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return domain.Result{}, err
	}
	var r domain.Result
	err = json.Unmarshal(data, &r)
	return r, err
}

func (c *RedisResultCache) Set(ctx context.Context, r domain.Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.cmd.Set(ctx, c.key(r.Id), data, c.expiration).Err()
}

func (c *RedisResultCache) Delete(ctx context.Context, id int64) error {
	return c.cmd.Del(ctx, c.key(id)).Err()
}

func (c *RedisResultCache) key(id int64) string {
	return fmt.Sprintf("mgp:result:%d", id)
}
