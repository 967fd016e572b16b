package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/uy1-mgp/bff/domain"
)

var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./types.go -package=cachemocks -destination=./mocks/cache.mock.go ResultCache DraftCache
type ResultCache interface {
	Get(ctx context.Context, id int64) (domain.Result, error)
	Set(ctx context.Context, r domain.Result) error
	Delete(ctx context.Context, id int64) error
}

type DraftCache interface {
	Get(ctx context.Context, id string) (domain.Draft, error)
	Set(ctx context.Context, d domain.Draft) error
	Delete(ctx context.Context, id string) error
	// SetSubmitting 提交中的标记，已存在时返回 false
	SetSubmitting(ctx context.Context, id string) (bool, error)
	ClearSubmitting(ctx context.Context, id string) error
}
