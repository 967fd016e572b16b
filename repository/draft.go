package repository

import (
	"context"

	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/repository/cache"
)

var ErrDraftNotFound = cache.ErrKeyNotExist

// DraftRepository 草稿只放在 redis 里，过期即丢弃
//
//go:generate mockgen -source=./draft.go -package=repomocks -destination=./mocks/draft.mock.go DraftRepository
type DraftRepository interface {
	Save(ctx context.Context, d domain.Draft) error
	FindById(ctx context.Context, id string) (domain.Draft, error)
	Delete(ctx context.Context, id string) error
	LockSubmit(ctx context.Context, id string) (bool, error)
	UnlockSubmit(ctx context.Context, id string) error
}

type CachedDraftRepository struct {
	cache cache.DraftCache
}

func NewCachedDraftRepository(cache cache.DraftCache) DraftRepository {
	return &CachedDraftRepository{cache: cache}
}

func (repo *CachedDraftRepository) Save(ctx context.Context, d domain.Draft) error {
	return repo.cache.Set(ctx, d)
}

func (repo *CachedDraftRepository) FindById(ctx context.Context, id string) (domain.Draft, error) {
	return repo.cache.Get(ctx, id)
}

func (repo *CachedDraftRepository) Delete(ctx context.Context, id string) error {
	return repo.cache.Delete(ctx, id)
}

func (repo *CachedDraftRepository) LockSubmit(ctx context.Context, id string) (bool, error) {
	return repo.cache.SetSubmitting(ctx, id)
}

func (repo *CachedDraftRepository) UnlockSubmit(ctx context.Context, id string) error {
	return repo.cache.ClearSubmitting(ctx, id)
}
