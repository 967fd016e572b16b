package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/repository"
	repomocks "github.com/uy1-mgp/bff/repository/mocks"
	"github.com/uy1-mgp/bff/service"
	svcmocks "github.com/uy1-mgp/bff/service/mocks"
	"go.uber.org/mock/gomock"
)

func TestPDFTranscriptExporter_Export(t *testing.T) {
	stored := domain.Result{Id: 7, StudentName: "Ngono  Marie", FormattedAverage: "66.67"}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.ResultRepository, service.TranscriptRenderer)

		wantTranscript domain.Transcript
		wantErr        error
	}{
		{
			name: "导出成功",
			mock: func(ctrl *gomock.Controller) (repository.ResultRepository, service.TranscriptRenderer) {
				repo := repomocks.NewMockResultRepository(ctrl)
				renderer := svcmocks.NewMockTranscriptRenderer(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).Return(stored, nil)
				renderer.EXPECT().Render(stored).Return([]byte("%PDF-1.3"), nil)
				return repo, renderer
			},
			wantTranscript: domain.Transcript{Filename: "bulletin-Ngono_Marie.pdf", Content: []byte("%PDF-1.3")},
		},
		{
			name: "结果不存在",
			mock: func(ctrl *gomock.Controller) (repository.ResultRepository, service.TranscriptRenderer) {
				repo := repomocks.NewMockResultRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).Return(domain.Result{}, repository.ErrResultNotFound)
				return repo, svcmocks.NewMockTranscriptRenderer(ctrl)
			},
			wantErr: service.ErrResultNotFound,
		},
		{
			name: "渲染失败",
			mock: func(ctrl *gomock.Controller) (repository.ResultRepository, service.TranscriptRenderer) {
				repo := repomocks.NewMockResultRepository(ctrl)
				renderer := svcmocks.NewMockTranscriptRenderer(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).Return(stored, nil)
				renderer.EXPECT().Render(stored).Return(nil, errors.New("font error"))
				return repo, renderer
			},
			wantErr: errors.New("font error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, renderer := tc.mock(ctrl)
			transcript, err := service.NewPDFTranscriptExporter(repo, renderer).Export(context.Background(), 7)
			if tc.wantErr != nil {
				var ee *service.ExportError
				require.ErrorAs(t, err, &ee)
				assert.Equal(t, int64(7), ee.ResultId)
				if errors.Is(tc.wantErr, service.ErrResultNotFound) {
					assert.ErrorIs(t, err, service.ErrResultNotFound)
				} else {
					assert.Equal(t, tc.wantErr.Error(), ee.Err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTranscript, transcript)
		})
	}
}

func TestTranscriptFilename(t *testing.T) {
	assert.Equal(t, "bulletin-Jean_Ebode.pdf", service.TranscriptFilename(" Jean  Ebode "))
	assert.Equal(t, "bulletin-mgp.pdf", service.TranscriptFilename("   "))
}
