package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository/cache"
	cachemocks "github.com/uy1-mgp/bff/repository/cache/mocks"
	"github.com/uy1-mgp/bff/repository/dao"
	daomocks "github.com/uy1-mgp/bff/repository/dao/mocks"
	"go.uber.org/mock/gomock"
)

var (
	testResult = domain.Result{
		Id:               7,
		StudentName:      "Awa",
		Average:          72,
		FormattedAverage: "72.00",
		Mention:          "Bien",
		Admitted:         true,
		Entries: []domain.GradedEntry{
			{CourseEntry: domain.CourseEntry{Name: "Math", Credits: 6, Score: 72}, Letter: domain.GradeB},
		},
		TotalCredits:   6,
		TotalPoints:    432,
		CourseCount:    1,
		ValidatedCount: 1,
		SuccessRate:    100,
		Ctime:          1718000000000,
	}
	testEntity = dao.Result{
		Id:               7,
		StudentName:      "Awa",
		Average:          72,
		FormattedAverage: "72.00",
		Mention:          "Bien",
		Admitted:         true,
		Entries: []dao.ResultEntry{
			{Position: 0, Name: "Math", Credits: 6, Score: 72, Letter: "B"},
		},
		TotalCredits:   6,
		TotalPoints:    432,
		CourseCount:    1,
		ValidatedCount: 1,
		SuccessRate:    100,
		Ctime:          1718000000000,
	}
)

func TestCachedResultRepository_FindById(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (dao.ResultDAO, cache.ResultCache)

		wantResult domain.Result
		wantErr    error
	}{
		{
			name: "缓存命中",
			mock: func(ctrl *gomock.Controller) (dao.ResultDAO, cache.ResultCache) {
				d := daomocks.NewMockResultDAO(ctrl)
				c := cachemocks.NewMockResultCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(7)).Return(testResult, nil)
				return d, c
			},
			wantResult: testResult,
		},
		{
			name: "缓存未命中，查库并回写",
			mock: func(ctrl *gomock.Controller) (dao.ResultDAO, cache.ResultCache) {
				d := daomocks.NewMockResultDAO(ctrl)
				c := cachemocks.NewMockResultCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(7)).Return(domain.Result{}, cache.ErrKeyNotExist)
				d.EXPECT().FindById(gomock.Any(), int64(7)).Return(testEntity, nil)
				c.EXPECT().Set(gomock.Any(), testResult).Return(nil)
				return d, c
			},
			wantResult: testResult,
		},
		{
			name: "redis 出错也查库，回写失败不影响结果",
			mock: func(ctrl *gomock.Controller) (dao.ResultDAO, cache.ResultCache) {
				d := daomocks.NewMockResultDAO(ctrl)
				c := cachemocks.NewMockResultCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(7)).Return(domain.Result{}, errors.New("redis down"))
				d.EXPECT().FindById(gomock.Any(), int64(7)).Return(testEntity, nil)
				c.EXPECT().Set(gomock.Any(), testResult).Return(errors.New("redis down"))
				return d, c
			},
			wantResult: testResult,
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) (dao.ResultDAO, cache.ResultCache) {
				d := daomocks.NewMockResultDAO(ctrl)
				c := cachemocks.NewMockResultCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(7)).Return(domain.Result{}, redis.Nil)
				d.EXPECT().FindById(gomock.Any(), int64(7)).Return(dao.Result{}, dao.ErrRecordNotFound)
				return d, c
			},
			wantErr: ErrResultNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			repo := NewCachedResultRepository(d, c, logger.NewNopLogger())
			r, err := repo.FindById(context.Background(), 7)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, r)
		})
	}
}

func TestCachedResultRepository_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockResultDAO(ctrl)
	c := cachemocks.NewMockResultCache(ctrl)
	repo := NewCachedResultRepository(d, c, logger.NewNopLogger())

	d.EXPECT().Upsert(gomock.Any(), testEntity).Return(nil)
	c.EXPECT().Delete(gomock.Any(), int64(7)).Return(errors.New("redis down"))
	assert.NoError(t, repo.Save(context.Background(), testResult))

	d.EXPECT().Upsert(gomock.Any(), testEntity).Return(errors.New("db down"))
	assert.Error(t, repo.Save(context.Background(), testResult))
}

func TestCachedResultRepository_FindByStudentName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockResultDAO(ctrl)
	repo := NewCachedResultRepository(d, cachemocks.NewMockResultCache(ctrl), logger.NewNopLogger())

	d.EXPECT().FindByStudentName(gomock.Any(), "awa", 50).Return([]dao.Result{testEntity}, nil)
	res, err := repo.FindByStudentName(context.Background(), "awa", 50)
	require.NoError(t, err)
	assert.Equal(t, []domain.Result{testResult}, res)
}
