package grading

import (
	"strings"

	"github.com/uy1-mgp/bff/domain"
)

// FilterEntries 去掉名称为空白的 UE，保持原有顺序
func FilterEntries(entries []domain.CourseEntry) []domain.CourseEntry {
	res := make([]domain.CourseEntry, 0, len(entries))
	for _, e := range entries {
		if IsBlank(e.Name) {
			continue
		}
		res = append(res, e)
	}
	return res
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Aggregate 按学分加权求平均，总学分为 0 时平均分记为 0
func Aggregate(entries []domain.CourseEntry) domain.Aggregate {
	kept := FilterEntries(entries)
	var (
		totalPoints  float64
		totalCredits int
	)
	graded := make([]domain.GradedEntry, 0, len(kept))
	for _, e := range kept {
		totalPoints += e.Score * float64(e.Credits)
		totalCredits += e.Credits
		graded = append(graded, domain.GradedEntry{
			CourseEntry: e,
			Letter:      ClassifyScore(e.Score),
		})
	}
	var avg float64
	if totalCredits > 0 {
		avg = totalPoints / float64(totalCredits)
	}
	return domain.Aggregate{
		Average:      avg,
		TotalPoints:  totalPoints,
		TotalCredits: totalCredits,
		Entries:      graded,
	}
}
