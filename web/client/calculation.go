package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "github.com/go-kratos/kratos/v2/encoding/json"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/service"
)

var ErrMalformedResponse = errors.New("计算服务返回的数据不完整")

func errMalformed(field string) error {
	return fmt.Errorf("%w: 缺少 %s", ErrMalformedResponse, field)
}

// RemoteCalculationService 调用远程 MGP 服务，不做重试
type RemoteCalculationService struct {
	cc  *khttp.Client
	l   logger.Logger
	now func() time.Time
}

func NewRemoteCalculationService(cc *khttp.Client, l logger.Logger) service.CalculationService {
	return &RemoteCalculationService{
		cc:  cc,
		l:   l,
		now: time.Now,
	}
}

func (s *RemoteCalculationService) Calculate(ctx context.Context, req service.CalculationRequest) (domain.Result, error) {
	var reply ResultatDTO
	path := "/api/mgp/calculer?autoSave=" + strconv.FormatBool(req.AutoSave)
	err := s.cc.Invoke(ctx, http.MethodPost, path, toCalculerReq(req.StudentName, req.Entries), &reply)
	if err != nil {
		s.l.Warn("调用计算服务失败", logger.String("student", req.StudentName), logger.Error(err))
		return domain.Result{}, &service.ServiceError{Err: err}
	}
	res, err := reply.toDomain(s.now())
	if err != nil {
		return domain.Result{}, &service.ServiceError{Err: err}
	}
	return res, nil
}
