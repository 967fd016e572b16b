package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository/cache"
	"github.com/uy1-mgp/bff/repository/dao"
)

var ErrResultNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./result.go -package=repomocks -destination=./mocks/result.mock.go ResultRepository
type ResultRepository interface {
	Save(ctx context.Context, r domain.Result) error
	FindById(ctx context.Context, id int64) (domain.Result, error)
	FindByStudentName(ctx context.Context, name string, limit int) ([]domain.Result, error)
}

type CachedResultRepository struct {
	dao   dao.ResultDAO
	cache cache.ResultCache
	l     logger.Logger
}

func NewCachedResultRepository(dao dao.ResultDAO, cache cache.ResultCache, l logger.Logger) ResultRepository {
	return &CachedResultRepository{
		dao:   dao,
		cache: cache,
		l:     l,
	}
}

func (repo *CachedResultRepository) Save(ctx context.Context, r domain.Result) error {
	err := repo.dao.Upsert(ctx, repo.toEntity(r))
	if err != nil {
		return err
	}
	// 写库成功后删缓存，下次读再回填
	if er := repo.cache.Delete(ctx, r.Id); er != nil {
		repo.l.Warn("删除结果缓存失败", logger.Int64("id", r.Id), logger.Error(er))
	}
	return nil
}

func (repo *CachedResultRepository) FindById(ctx context.Context, id int64) (domain.Result, error) {
	r, err := repo.cache.Get(ctx, id)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, cache.ErrKeyNotExist) {
		// redis 有问题也继续查库
		repo.l.Warn("读取结果缓存失败", logger.Int64("id", id), logger.Error(err))
	}
	entity, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	r = repo.toDomain(entity)
	if er := repo.cache.Set(ctx, r); er != nil {
		repo.l.Warn("回写结果缓存失败", logger.Int64("id", id), logger.Error(er))
	}
	return r, nil
}

func (repo *CachedResultRepository) FindByStudentName(ctx context.Context, name string, limit int) ([]domain.Result, error) {
	entities, err := repo.dao.FindByStudentName(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Result) domain.Result {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedResultRepository) toEntity(r domain.Result) dao.Result {
	return dao.Result{
		Id:               r.Id,
		StudentName:      r.StudentName,
		Average:          r.Average,
		FormattedAverage: r.FormattedAverage,
		Mention:          r.Mention,
		Admitted:         r.Admitted,
		TotalCredits:     r.TotalCredits,
		TotalPoints:      r.TotalPoints,
		CourseCount:      r.CourseCount,
		ValidatedCount:   r.ValidatedCount,
		FailedCount:      r.FailedCount,
		SuccessRate:      r.SuccessRate,
		Ctime:            r.Ctime,
		Entries: slice.Map(r.Entries, func(idx int, src domain.GradedEntry) dao.ResultEntry {
			return dao.ResultEntry{
				Position: idx,
				Name:     src.Name,
				Credits:  src.Credits,
				Score:    src.Score,
				Letter:   string(src.Letter),
			}
		}),
	}
}

func (repo *CachedResultRepository) toDomain(r dao.Result) domain.Result {
	return domain.Result{
		Id:               r.Id,
		StudentName:      r.StudentName,
		Average:          r.Average,
		FormattedAverage: r.FormattedAverage,
		Mention:          r.Mention,
		Admitted:         r.Admitted,
		TotalCredits:     r.TotalCredits,
		TotalPoints:      r.TotalPoints,
		CourseCount:      r.CourseCount,
		ValidatedCount:   r.ValidatedCount,
		FailedCount:      r.FailedCount,
		SuccessRate:      r.SuccessRate,
		Ctime:            r.Ctime,
		Entries: slice.Map(r.Entries, func(idx int, src dao.ResultEntry) domain.GradedEntry {
			return domain.GradedEntry{
				CourseEntry: domain.CourseEntry{
					Name:    src.Name,
					Credits: src.Credits,
					Score:   src.Score,
				},
				Letter: domain.LetterGrade(src.Letter),
			}
		}),
	}
}
