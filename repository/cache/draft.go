package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uy1-mgp/bff/domain"
)

type RedisDraftCache struct {
	cmd        redis.Cmdable
	expiration time.Duration
	// 提交标记的过期时间，防止进程崩溃后草稿一直处于提交中
	submitExpiration time.Duration
}

func NewRedisDraftCache(cmd redis.Cmdable) DraftCache {
	return &RedisDraftCache{
		cmd:              cmd,
		expiration:       time.Hour * 2,
		submitExpiration: time.Second * 30,
	}
}

func (c *RedisDraftCache) Get(ctx context.Context, id string) (domain.Draft, error) {
	data, err := c.cmd.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return domain.Draft{}, err
	}
	var d domain.Draft
	err = json.Unmarshal(data, &d)
	return d, err
}

// Set 每次写入都会续期
func (c *RedisDraftCache) Set(ctx context.Context, d domain.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.cmd.Set(ctx, c.key(d.Id), data, c.expiration).Err()
}

func (c *RedisDraftCache) Delete(ctx context.Context, id string) error {
	return c.cmd.Del(ctx, c.key(id), c.submittingKey(id)).Err()
}

func (c *RedisDraftCache) SetSubmitting(ctx context.Context, id string) (bool, error) {
	return c.cmd.SetNX(ctx, c.submittingKey(id), 1, c.submitExpiration).Result()
}

func (c *RedisDraftCache) ClearSubmitting(ctx context.Context, id string) error {
	return c.cmd.Del(ctx, c.submittingKey(id)).Err()
}

func (c *RedisDraftCache) key(id string) string {
	return fmt.Sprintf("mgp:draft:%s", id)
}

func (c *RedisDraftCache) submittingKey(id string) string {
	return fmt.Sprintf("mgp:draft:%s:submitting", id)
}
