package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	repomocks "github.com/uy1-mgp/bff/repository/mocks"
	"github.com/uy1-mgp/bff/service"
	svcmocks "github.com/uy1-mgp/bff/service/mocks"
	"go.uber.org/mock/gomock"
)

func TestReduce(t *testing.T) {
	base := domain.Draft{
		Id:          "d1",
		StudentName: "Awa",
		Entries: []domain.CourseEntry{
			{Name: "Math", Credits: 6, Score: 80},
			{Name: "Physics", Credits: 3, Score: 40},
		},
	}
	testCases := []struct {
		name   string
		action domain.Action

		wantEntries []domain.CourseEntry
		wantName    string
		wantErr     error
	}{
		{
			name:   "新增UE",
			action: domain.Action{Type: domain.ActionAddEntry},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Physics", Credits: 3, Score: 40},
				{Credits: service.DefaultCredits},
			},
			wantName: "Awa",
		},
		{
			name:        "删除UE",
			action:      domain.Action{Type: domain.ActionRemoveEntry, Index: 0},
			wantEntries: []domain.CourseEntry{{Name: "Physics", Credits: 3, Score: 40}},
			wantName:    "Awa",
		},
		{
			name:    "删除越界",
			action:  domain.Action{Type: domain.ActionRemoveEntry, Index: 2},
			wantErr: service.ErrInvalidAction,
		},
		{
			name:   "修改名称",
			action: domain.Action{Type: domain.ActionUpdateEntry, Index: 1, Field: domain.FieldName, Value: "Chimie"},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Chimie", Credits: 3, Score: 40},
			},
			wantName: "Awa",
		},
		{
			name:   "修改学分",
			action: domain.Action{Type: domain.ActionUpdateEntry, Index: 0, Field: domain.FieldCredits, Value: " 3 "},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 3, Score: 80},
				{Name: "Physics", Credits: 3, Score: 40},
			},
			wantName: "Awa",
		},
		{
			name:    "学分无法解析",
			action:  domain.Action{Type: domain.ActionUpdateEntry, Index: 0, Field: domain.FieldCredits, Value: "six"},
			wantErr: service.ErrInvalidAction,
		},
		{
			name:   "修改分数",
			action: domain.Action{Type: domain.ActionUpdateEntry, Index: 1, Field: domain.FieldScore, Value: "72.5"},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Physics", Credits: 3, Score: 72.5},
			},
			wantName: "Awa",
		},
		{
			name:   "分数无法解析当作0",
			action: domain.Action{Type: domain.ActionUpdateEntry, Index: 0, Field: domain.FieldScore, Value: "abc"},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 0},
				{Name: "Physics", Credits: 3, Score: 40},
			},
			wantName: "Awa",
		},
		{
			name:   "NaN当作0",
			action: domain.Action{Type: domain.ActionUpdateEntry, Index: 1, Field: domain.FieldScore, Value: "NaN"},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Physics", Credits: 3, Score: 0},
			},
			wantName: "Awa",
		},
		{
			name:   "Inf当作0",
			action: domain.Action{Type: domain.ActionUpdateEntry, Index: 0, Field: domain.FieldScore, Value: "-Inf"},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 0},
				{Name: "Physics", Credits: 3, Score: 40},
			},
			wantName: "Awa",
		},
		{
			name:    "未知字段",
			action:  domain.Action{Type: domain.ActionUpdateEntry, Index: 0, Field: "cote", Value: "A"},
			wantErr: service.ErrInvalidAction,
		},
		{
			name:   "修改姓名",
			action: domain.Action{Type: domain.ActionSetStudentName, Name: "Ngono Marie"},
			wantEntries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Physics", Credits: 3, Score: 40},
			},
			wantName: "Ngono Marie",
		},
		{
			name:    "未知类型",
			action:  domain.Action{Type: "reset"},
			wantErr: service.ErrInvalidAction,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := domain.Draft{
				Id:          base.Id,
				StudentName: base.StudentName,
				Entries:     append([]domain.CourseEntry(nil), base.Entries...),
			}
			next, err := service.Reduce(before, tc.action)
			// 输入不会被修改
			assert.Equal(t, base, before)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEntries, next.Entries)
			assert.Equal(t, tc.wantName, next.StudentName)
			assert.Equal(t, "d1", next.Id)
		})
	}
}

func TestNewDraft(t *testing.T) {
	d := service.NewDraft("d1", 10)
	assert.Equal(t, []domain.CourseEntry{{Name: "", Credits: 6, Score: 0}}, d.Entries)
	assert.Equal(t, int64(10), d.Utime)
}

func TestDraftService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockDraftRepository(ctrl)
	svc := service.NewDraftService(repo, svcmocks.NewMockMGPService(ctrl), logger.NewNopLogger())

	stored := service.NewDraft("d1", 1)
	repo.EXPECT().FindById(gomock.Any(), "d1").Return(stored, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, d domain.Draft) error {
		assert.Equal(t, "Awa", d.StudentName)
		assert.Equal(t, "Math", d.Entries[0].Name)
		assert.Len(t, d.Entries, 2)
		return nil
	})
	d, err := svc.Dispatch(context.Background(), "d1",
		domain.Action{Type: domain.ActionSetStudentName, Name: "Awa"},
		domain.Action{Type: domain.ActionUpdateEntry, Index: 0, Field: domain.FieldName, Value: "Math"},
		domain.Action{Type: domain.ActionAddEntry},
	)
	require.NoError(t, err)
	assert.Greater(t, d.Utime, int64(1))

	// 任何一个操作失败都不保存
	repo.EXPECT().FindById(gomock.Any(), "d1").Return(stored, nil)
	_, err = svc.Dispatch(context.Background(), "d1",
		domain.Action{Type: domain.ActionAddEntry},
		domain.Action{Type: domain.ActionRemoveEntry, Index: 9},
	)
	assert.ErrorIs(t, err, service.ErrInvalidAction)
}

func TestDraftService_Submit(t *testing.T) {
	entries := []domain.CourseEntry{{Name: "Math", Credits: 6, Score: 80}}
	stored := domain.Draft{Id: "d1", StudentName: "Awa", Entries: entries}
	testCases := []struct {
		name string
		mock func(repo *repomocks.MockDraftRepository, mgp *svcmocks.MockMGPService)

		wantResult domain.Result
		wantErr    error
	}{
		{
			name: "提交成功",
			mock: func(repo *repomocks.MockDraftRepository, mgp *svcmocks.MockMGPService) {
				repo.EXPECT().LockSubmit(gomock.Any(), "d1").Return(true, nil)
				repo.EXPECT().FindById(gomock.Any(), "d1").Return(stored, nil)
				mgp.EXPECT().Calculate(gomock.Any(), "Awa", entries, true).Return(domain.Result{Id: 8}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, d domain.Draft) error {
					assert.Equal(t, int64(8), d.LastResultId)
					return nil
				})
				repo.EXPECT().UnlockSubmit(gomock.Any(), "d1").Return(nil)
			},
			wantResult: domain.Result{Id: 8},
		},
		{
			name: "正在提交",
			mock: func(repo *repomocks.MockDraftRepository, mgp *svcmocks.MockMGPService) {
				repo.EXPECT().LockSubmit(gomock.Any(), "d1").Return(false, nil)
			},
			wantErr: service.ErrSubmissionInFlight,
		},
		{
			name: "计算失败也释放锁",
			mock: func(repo *repomocks.MockDraftRepository, mgp *svcmocks.MockMGPService) {
				repo.EXPECT().LockSubmit(gomock.Any(), "d1").Return(true, nil)
				repo.EXPECT().FindById(gomock.Any(), "d1").Return(stored, nil)
				mgp.EXPECT().Calculate(gomock.Any(), "Awa", entries, true).
					Return(domain.Result{}, &service.ValidationError{Reason: service.ErrNoValidEntries})
				repo.EXPECT().UnlockSubmit(gomock.Any(), "d1").Return(errors.New("redis down"))
			},
			wantErr: service.ErrNoValidEntries,
		},
		{
			name: "草稿不存在",
			mock: func(repo *repomocks.MockDraftRepository, mgp *svcmocks.MockMGPService) {
				repo.EXPECT().LockSubmit(gomock.Any(), "d1").Return(true, nil)
				repo.EXPECT().FindById(gomock.Any(), "d1").Return(domain.Draft{}, service.ErrDraftNotFound)
				repo.EXPECT().UnlockSubmit(gomock.Any(), "d1").Return(nil)
			},
			wantErr: service.ErrDraftNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockDraftRepository(ctrl)
			mgp := svcmocks.NewMockMGPService(ctrl)
			tc.mock(repo, mgp)
			res, err := service.NewDraftService(repo, mgp, logger.NewNopLogger()).
				Submit(context.Background(), "d1", true)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, res)
		})
	}
}

func TestDraftService_SubmitCancelledStillUnlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockDraftRepository(ctrl)
	mgp := svcmocks.NewMockMGPService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	repo.EXPECT().LockSubmit(gomock.Any(), "d1").Return(true, nil)
	repo.EXPECT().FindById(gomock.Any(), "d1").DoAndReturn(func(ctx context.Context, id string) (domain.Draft, error) {
		// 计算途中请求被取消
		cancel()
		return domain.Draft{}, ctx.Err()
	})
	repo.EXPECT().UnlockSubmit(gomock.Any(), "d1").DoAndReturn(func(ctx context.Context, id string) error {
		assert.NoError(t, ctx.Err())
		return nil
	})
	_, err := service.NewDraftService(repo, mgp, logger.NewNopLogger()).Submit(ctx, "d1", true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDraftService_CreateAndDiscard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockDraftRepository(ctrl)
	svc := service.NewDraftService(repo, svcmocks.NewMockMGPService(ctrl), logger.NewNopLogger())

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	d, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, d.Id)
	assert.Len(t, d.Entries, 1)

	repo.EXPECT().Delete(gomock.Any(), d.Id).Return(nil)
	assert.NoError(t, svc.Discard(context.Background(), d.Id))
}
