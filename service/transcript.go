package service

import (
	"context"
	"strings"

	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/repository"
)

//go:generate mockgen -source=./transcript.go -package=svcmocks -destination=./mocks/transcript.mock.go TranscriptExporter TranscriptRenderer
type TranscriptExporter interface {
	// Export 所有失败都以 *ExportError 返回
	Export(ctx context.Context, id int64) (domain.Transcript, error)
}

type TranscriptRenderer interface {
	Render(r domain.Result) ([]byte, error)
}

// PDFTranscriptExporter 从本地镜像的结果渲染成绩单
type PDFTranscriptExporter struct {
	repo     repository.ResultRepository
	renderer TranscriptRenderer
}

func NewPDFTranscriptExporter(repo repository.ResultRepository, renderer TranscriptRenderer) TranscriptExporter {
	return &PDFTranscriptExporter{
		repo:     repo,
		renderer: renderer,
	}
}

func (e *PDFTranscriptExporter) Export(ctx context.Context, id int64) (domain.Transcript, error) {
	r, err := e.repo.FindById(ctx, id)
	if err != nil {
		return domain.Transcript{}, &ExportError{ResultId: id, Err: err}
	}
	content, err := e.renderer.Render(r)
	if err != nil {
		return domain.Transcript{}, &ExportError{ResultId: id, Err: err}
	}
	return domain.Transcript{
		Filename: TranscriptFilename(r.StudentName),
		Content:  content,
	}, nil
}

func TranscriptFilename(studentName string) string {
	name := strings.Join(strings.Fields(studentName), "_")
	if name == "" {
		name = "mgp"
	}
	return "bulletin-" + name + ".pdf"
}
