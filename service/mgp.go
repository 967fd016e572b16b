package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository"
)

const (
	HistoryLimit           = 50
	TemporaryTranscriptPDF = "bulletin-temporaire.pdf"
)

//go:generate mockgen -source=./mgp.go -package=svcmocks -destination=./mocks/mgp.mock.go MGPService
type MGPService interface {
	// Calculate 先本地校验，校验失败不会调用计算服务
	Calculate(ctx context.Context, studentName string, entries []domain.CourseEntry, autoSave bool) (domain.Result, error)
	FindById(ctx context.Context, id int64) (domain.Result, error)
	History(ctx context.Context, studentName string) ([]domain.Result, error)
	Save(ctx context.Context, r domain.Result) (domain.Result, error)
	ExportTranscript(ctx context.Context, id int64) (domain.Transcript, error)
	RenderTranscript(ctx context.Context, r domain.Result) (domain.Transcript, error)
}

type mgpService struct {
	validator *EntryValidator
	calc      CalculationService
	exporter  TranscriptExporter
	renderer  TranscriptRenderer
	repo      repository.ResultRepository
	idGen     IdGenerator
	l         logger.Logger
	now       func() time.Time
}

func NewMGPService(validator *EntryValidator, calc CalculationService, exporter TranscriptExporter,
	renderer TranscriptRenderer, repo repository.ResultRepository, idGen IdGenerator, l logger.Logger) MGPService {
	return &mgpService{
		validator: validator,
		calc:      calc,
		exporter:  exporter,
		renderer:  renderer,
		repo:      repo,
		idGen:     idGen,
		l:         l,
		now:       time.Now,
	}
}

func (s *mgpService) Calculate(ctx context.Context, studentName string, entries []domain.CourseEntry, autoSave bool) (domain.Result, error) {
	name, kept, err := s.validator.Validate(studentName, entries)
	if err != nil {
		return domain.Result{}, err
	}
	res, err := s.calc.Calculate(ctx, CalculationRequest{
		StudentName: name,
		Entries:     kept,
		AutoSave:    autoSave,
	})
	if err != nil {
		var se *ServiceError
		if errors.As(err, &se) {
			return domain.Result{}, err
		}
		return domain.Result{}, &ServiceError{Err: err}
	}
	// 没有 id 的结果无法再被导出，不镜像
	if !autoSave || res.Id == 0 {
		return res, nil
	}
	if err = s.repo.Save(ctx, res); err != nil {
		return domain.Result{}, &ServiceError{Err: fmt.Errorf("保存结果 %d 失败: %w", res.Id, err)}
	}
	return res, nil
}

func (s *mgpService) FindById(ctx context.Context, id int64) (domain.Result, error) {
	return s.repo.FindById(ctx, id)
}

func (s *mgpService) History(ctx context.Context, studentName string) ([]domain.Result, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		return nil, &ValidationError{Reason: ErrStudentNameRequired}
	}
	return s.repo.FindByStudentName(ctx, name, HistoryLimit)
}

// Save 直接保存前端提交的结果，不重新计算
func (s *mgpService) Save(ctx context.Context, r domain.Result) (domain.Result, error) {
	r.StudentName = strings.TrimSpace(r.StudentName)
	if r.StudentName == "" {
		return domain.Result{}, &ValidationError{Reason: ErrStudentNameRequired}
	}
	if r.Id == 0 {
		r.Id = s.idGen.Next()
	}
	if r.Ctime == 0 {
		r.Ctime = s.now().UnixMilli()
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return domain.Result{}, err
	}
	return r, nil
}

func (s *mgpService) ExportTranscript(ctx context.Context, id int64) (domain.Transcript, error) {
	t, err := s.exporter.Export(ctx, id)
	if err != nil {
		var ee *ExportError
		if errors.As(err, &ee) {
			return domain.Transcript{}, err
		}
		return domain.Transcript{}, &ExportError{ResultId: id, Err: err}
	}
	return t, nil
}

func (s *mgpService) RenderTranscript(ctx context.Context, r domain.Result) (domain.Transcript, error) {
	content, err := s.renderer.Render(r)
	if err != nil {
		return domain.Transcript{}, &ExportError{ResultId: r.Id, Err: err}
	}
	return domain.Transcript{
		Filename: TemporaryTranscriptPDF,
		Content:  content,
	}, nil
}
