package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository"
	repomocks "github.com/uy1-mgp/bff/repository/mocks"
	"github.com/uy1-mgp/bff/service"
	svcmocks "github.com/uy1-mgp/bff/service/mocks"
	"go.uber.org/mock/gomock"
)

type mgpDeps struct {
	calc     *svcmocks.MockCalculationService
	exporter *svcmocks.MockTranscriptExporter
	renderer *svcmocks.MockTranscriptRenderer
	repo     *repomocks.MockResultRepository
}

func newMGPService(ctrl *gomock.Controller) (service.MGPService, mgpDeps) {
	deps := mgpDeps{
		calc:     svcmocks.NewMockCalculationService(ctrl),
		exporter: svcmocks.NewMockTranscriptExporter(ctrl),
		renderer: svcmocks.NewMockTranscriptRenderer(ctrl),
		repo:     repomocks.NewMockResultRepository(ctrl),
	}
	svc := service.NewMGPService(service.NewEntryValidator([]int{3, 6}), deps.calc, deps.exporter,
		deps.renderer, deps.repo, fixedIdGen(99), logger.NewNopLogger())
	return svc, deps
}

func TestMGPService_Calculate(t *testing.T) {
	entries := []domain.CourseEntry{
		{Name: "Math", Credits: 6, Score: 80},
		{Name: "", Credits: 6},
		{Name: "Physics", Credits: 3, Score: 40},
	}
	kept := []domain.CourseEntry{entries[0], entries[2]}
	calculated := domain.Result{Id: 1718000000000, StudentName: "Ngono Marie", FormattedAverage: "66.67"}

	testCases := []struct {
		name        string
		studentName string
		entries     []domain.CourseEntry
		autoSave    bool
		mock        func(deps mgpDeps)

		wantResult domain.Result
		wantErr    func(t *testing.T, err error)
	}{
		{
			name:        "计算并保存",
			studentName: " Ngono Marie ",
			entries:     entries,
			autoSave:    true,
			mock: func(deps mgpDeps) {
				deps.calc.EXPECT().Calculate(gomock.Any(), service.CalculationRequest{
					StudentName: "Ngono Marie",
					Entries:     kept,
					AutoSave:    true,
				}).Return(calculated, nil)
				deps.repo.EXPECT().Save(gomock.Any(), calculated).Return(nil)
			},
			wantResult: calculated,
		},
		{
			name:        "不保存",
			studentName: "Ngono Marie",
			entries:     entries,
			mock: func(deps mgpDeps) {
				deps.calc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(calculated, nil)
			},
			wantResult: calculated,
		},
		{
			name:        "没有 id 不保存",
			studentName: "Ngono Marie",
			entries:     entries,
			autoSave:    true,
			mock: func(deps mgpDeps) {
				deps.calc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(domain.Result{StudentName: "Ngono Marie"}, nil)
			},
			wantResult: domain.Result{StudentName: "Ngono Marie"},
		},
		{
			name:        "校验失败不调用计算服务",
			studentName: "",
			entries:     entries,
			mock:        func(deps mgpDeps) {},
			wantErr: func(t *testing.T, err error) {
				var ve *service.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.ErrorIs(t, err, service.ErrStudentNameRequired)
			},
		},
		{
			name:        "学分不合法",
			studentName: "Awa",
			entries:     []domain.CourseEntry{{Name: "Math", Credits: 4, Score: 60}},
			mock:        func(deps mgpDeps) {},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidEntries)
			},
		},
		{
			name:        "计算服务失败",
			studentName: "Awa",
			entries:     entries,
			mock: func(deps mgpDeps) {
				deps.calc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(domain.Result{}, errors.New("connection refused"))
			},
			wantErr: func(t *testing.T, err error) {
				var se *service.ServiceError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "connection refused", se.Err.Error())
			},
		},
		{
			name:        "保存失败",
			studentName: "Awa",
			entries:     entries,
			autoSave:    true,
			mock: func(deps mgpDeps) {
				deps.calc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(calculated, nil)
				deps.repo.EXPECT().Save(gomock.Any(), calculated).Return(errors.New("db down"))
			},
			wantErr: func(t *testing.T, err error) {
				var se *service.ServiceError
				assert.ErrorAs(t, err, &se)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newMGPService(ctrl)
			tc.mock(deps)
			res, err := svc.Calculate(context.Background(), tc.studentName, tc.entries, tc.autoSave)
			if tc.wantErr != nil {
				require.Error(t, err)
				tc.wantErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, res)
		})
	}
}

func TestMGPService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newMGPService(ctrl)

	_, err := svc.History(context.Background(), "  ")
	assert.ErrorIs(t, err, service.ErrStudentNameRequired)

	want := []domain.Result{{Id: 2, StudentName: "Awa Ndiaye"}}
	deps.repo.EXPECT().FindByStudentName(gomock.Any(), "awa", service.HistoryLimit).Return(want, nil)
	res, err := svc.History(context.Background(), " awa ")
	require.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestMGPService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newMGPService(ctrl)

	deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r domain.Result) error {
		assert.Equal(t, int64(99), r.Id)
		assert.NotZero(t, r.Ctime)
		return nil
	})
	res, err := svc.Save(context.Background(), domain.Result{StudentName: " Awa ", FormattedAverage: "55.00"})
	require.NoError(t, err)
	assert.Equal(t, int64(99), res.Id)
	assert.Equal(t, "Awa", res.StudentName)
	assert.Equal(t, "55.00", res.FormattedAverage)

	deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	res, err = svc.Save(context.Background(), domain.Result{Id: 5, StudentName: "Awa", Ctime: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Id)
	assert.Equal(t, int64(10), res.Ctime)

	_, err = svc.Save(context.Background(), domain.Result{})
	assert.ErrorIs(t, err, service.ErrStudentNameRequired)
}

func TestMGPService_ExportTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newMGPService(ctrl)

	want := domain.Transcript{Filename: "bulletin-Awa.pdf", Content: []byte("%PDF")}
	deps.exporter.EXPECT().Export(gomock.Any(), int64(3)).Return(want, nil)
	transcript, err := svc.ExportTranscript(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, transcript)

	deps.exporter.EXPECT().Export(gomock.Any(), int64(4)).Return(domain.Transcript{}, repository.ErrResultNotFound)
	_, err = svc.ExportTranscript(context.Background(), 4)
	var ee *service.ExportError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, int64(4), ee.ResultId)
	assert.ErrorIs(t, err, service.ErrResultNotFound)
}

func TestMGPService_RenderTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newMGPService(ctrl)

	r := domain.Result{StudentName: "Awa", FormattedAverage: "70.00"}
	deps.renderer.EXPECT().Render(r).Return([]byte("%PDF"), nil)
	transcript, err := svc.RenderTranscript(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, service.TemporaryTranscriptPDF, transcript.Filename)

	deps.renderer.EXPECT().Render(r).Return(nil, errors.New("boom"))
	_, err = svc.RenderTranscript(context.Background(), r)
	var ee *service.ExportError
	assert.ErrorAs(t, err, &ee)
}
