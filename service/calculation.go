package service

import (
	"context"
	"time"

	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/service/grading"
)

type CalculationRequest struct {
	StudentName string
	Entries     []domain.CourseEntry
	// AutoSave 远程服务据此决定是否落库
	AutoSave bool
}

//go:generate mockgen -source=./calculation.go -package=svcmocks -destination=./mocks/calculation.mock.go CalculationService
type CalculationService interface {
	Calculate(ctx context.Context, req CalculationRequest) (domain.Result, error)
}

// LocalCalculationService 进程内计算，和远程服务语义一致
type LocalCalculationService struct {
	idGen IdGenerator
	now   func() time.Time
}

func NewLocalCalculationService(idGen IdGenerator) CalculationService {
	return &LocalCalculationService{
		idGen: idGen,
		now:   time.Now,
	}
}

func (s *LocalCalculationService) Calculate(ctx context.Context, req CalculationRequest) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	res := grading.Assemble(req.StudentName, grading.Aggregate(req.Entries), s.idGen.Next())
	res.Ctime = s.now().UnixMilli()
	return res, nil
}
