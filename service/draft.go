package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository"
)

// DefaultCredits 新增 UE 的默认学分，和前端表单一致
const DefaultCredits = 6

func NewEntry() domain.CourseEntry {
	return domain.CourseEntry{Credits: DefaultCredits}
}

func NewDraft(id string, now int64) domain.Draft {
	return domain.Draft{
		Id:      id,
		Entries: []domain.CourseEntry{NewEntry()},
		Utime:   now,
	}
}

// Reduce 纯函数，不会修改传入的草稿
func Reduce(d domain.Draft, a domain.Action) (domain.Draft, error) {
	entries := make([]domain.CourseEntry, len(d.Entries), len(d.Entries)+1)
	copy(entries, d.Entries)
	next := d
	switch a.Type {
	case domain.ActionAddEntry:
		entries = append(entries, NewEntry())
	case domain.ActionRemoveEntry:
		if a.Index < 0 || a.Index >= len(entries) {
			return d, fmt.Errorf("%w: index %d 越界", ErrInvalidAction, a.Index)
		}
		entries = append(entries[:a.Index], entries[a.Index+1:]...)
	case domain.ActionUpdateEntry:
		if a.Index < 0 || a.Index >= len(entries) {
			return d, fmt.Errorf("%w: index %d 越界", ErrInvalidAction, a.Index)
		}
		e, err := updateEntry(entries[a.Index], a.Field, a.Value)
		if err != nil {
			return d, err
		}
		entries[a.Index] = e
	case domain.ActionSetStudentName:
		next.StudentName = a.Name
	default:
		return d, fmt.Errorf("%w: 未知类型 %q", ErrInvalidAction, a.Type)
	}
	next.Entries = entries
	return next, nil
}

func updateEntry(e domain.CourseEntry, field domain.EntryField, value string) (domain.CourseEntry, error) {
	switch field {
	case domain.FieldName:
		e.Name = value
	case domain.FieldCredits:
		credits, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return e, fmt.Errorf("%w: credits %q", ErrInvalidAction, value)
		}
		e.Credits = credits
	case domain.FieldScore:
		// 和前端一样，无法解析的分数当作 0，NaN 和 Inf 也算
		score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		e.Score = score
	default:
		return e, fmt.Errorf("%w: 未知字段 %q", ErrInvalidAction, field)
	}
	return e, nil
}

//go:generate mockgen -source=./draft.go -package=svcmocks -destination=./mocks/draft.mock.go DraftService
type DraftService interface {
	Create(ctx context.Context) (domain.Draft, error)
	Get(ctx context.Context, id string) (domain.Draft, error)
	// Dispatch 依次应用所有操作，任何一个失败则整体不生效
	Dispatch(ctx context.Context, id string, actions ...domain.Action) (domain.Draft, error)
	Submit(ctx context.Context, id string, autoSave bool) (domain.Result, error)
	Discard(ctx context.Context, id string) error
}

type draftService struct {
	repo repository.DraftRepository
	mgp  MGPService
	l    logger.Logger
	now  func() time.Time
}

func NewDraftService(repo repository.DraftRepository, mgp MGPService, l logger.Logger) DraftService {
	return &draftService{
		repo: repo,
		mgp:  mgp,
		l:    l,
		now:  time.Now,
	}
}

func (s *draftService) Create(ctx context.Context) (domain.Draft, error) {
	d := NewDraft(uuid.New().String(), s.now().UnixMilli())
	return d, s.repo.Save(ctx, d)
}

func (s *draftService) Get(ctx context.Context, id string) (domain.Draft, error) {
	return s.repo.FindById(ctx, id)
}

func (s *draftService) Dispatch(ctx context.Context, id string, actions ...domain.Action) (domain.Draft, error) {
	d, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Draft{}, err
	}
	for _, a := range actions {
		d, err = Reduce(d, a)
		if err != nil {
			return domain.Draft{}, err
		}
	}
	d.Utime = s.now().UnixMilli()
	return d, s.repo.Save(ctx, d)
}

func (s *draftService) Submit(ctx context.Context, id string, autoSave bool) (domain.Result, error) {
	ok, err := s.repo.LockSubmit(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	if !ok {
		return domain.Result{}, ErrSubmissionInFlight
	}
	defer func() {
		// 请求被取消或者超时也要释放锁
		if er := s.repo.UnlockSubmit(context.WithoutCancel(ctx), id); er != nil {
			s.l.Error("释放草稿提交锁失败", logger.String("draft", id), logger.Error(er))
		}
	}()
	d, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Result{}, err
	}
	res, err := s.mgp.Calculate(ctx, d.StudentName, d.Entries, autoSave)
	if err != nil {
		return domain.Result{}, err
	}
	d.LastResultId = res.Id
	d.Utime = s.now().UnixMilli()
	if er := s.repo.Save(ctx, d); er != nil {
		// 结果已经算出来了，草稿没记上只影响 LastResultId
		s.l.Warn("更新草稿失败", logger.String("draft", id), logger.Error(er))
	}
	return res, nil
}

func (s *draftService) Discard(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
