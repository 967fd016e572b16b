package service

import (
	"fmt"
	"strings"

	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/service/grading"
)

const (
	MinScore = 0.0
	MaxScore = 100.0
)

type EntryValidator struct {
	// allowedCredits 为空表示任意正整数
	allowedCredits map[int]struct{}
}

func NewEntryValidator(allowedCredits []int) *EntryValidator {
	allowed := make(map[int]struct{}, len(allowedCredits))
	for _, c := range allowedCredits {
		allowed[c] = struct{}{}
	}
	return &EntryValidator{allowedCredits: allowed}
}

// Validate 返回去掉首尾空白的姓名和过滤后的 UE。
// 名称为空的 UE 直接丢弃，分数越界或学分不合法会拒绝整个提交
func (v *EntryValidator) Validate(studentName string, entries []domain.CourseEntry) (string, []domain.CourseEntry, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		return "", nil, &ValidationError{Reason: ErrStudentNameRequired}
	}
	kept := make([]domain.CourseEntry, 0, len(entries))
	fields := make(map[string]string)
	for i, e := range entries {
		if grading.IsBlank(e.Name) {
			continue
		}
		// NaN 和任何数比较都是 false
		if !(e.Score >= MinScore && e.Score <= MaxScore) {
			fields[fmt.Sprintf("ues[%d].note", i)] = "la note doit être comprise entre 0 et 100"
		}
		if msg, ok := v.checkCredits(e.Credits); !ok {
			fields[fmt.Sprintf("ues[%d].credits", i)] = msg
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return "", nil, &ValidationError{Reason: ErrNoValidEntries}
	}
	if len(fields) > 0 {
		return "", nil, &ValidationError{Reason: ErrInvalidEntries, Fields: fields}
	}
	return name, kept, nil
}

func (v *EntryValidator) checkCredits(credits int) (string, bool) {
	if credits <= 0 {
		return "les crédits doivent être un entier positif", false
	}
	if len(v.allowedCredits) == 0 {
		return "", true
	}
	if _, ok := v.allowedCredits[credits]; !ok {
		return fmt.Sprintf("%d crédits non autorisés", credits), false
	}
	return "", true
}
