package grading

import (
	"math"
	"strconv"

	"github.com/uy1-mgp/bff/domain"
)

const (
	// ValidatedScore UE 及格线
	ValidatedScore = 50.0
	// FailingScore 低于该分数的 UE 视为挂科
	FailingScore = 35.0
)

// Assemble 纯组装，不做任何 IO。Ctime 由调用方填
func Assemble(studentName string, agg domain.Aggregate, id int64) domain.Result {
	standing := ClassifyAverage(agg.Average)
	entries := make([]domain.GradedEntry, len(agg.Entries))
	copy(entries, agg.Entries)
	var validated, failed int
	for _, e := range entries {
		if e.Score >= ValidatedScore {
			validated++
		}
		if e.Score < FailingScore {
			failed++
		}
	}
	var rate float64
	if len(entries) > 0 {
		rate = float64(validated) / float64(len(entries)) * 100
	}
	return domain.Result{
		Id:               id,
		StudentName:      studentName,
		Average:          agg.Average,
		FormattedAverage: FormatAverage(agg.Average),
		Mention:          standing.Mention,
		Admitted:         standing.Admitted,
		Entries:          entries,
		TotalCredits:     agg.TotalCredits,
		TotalPoints:      agg.TotalPoints,
		CourseCount:      len(entries),
		ValidatedCount:   validated,
		FailedCount:      failed,
		SuccessRate:      rate,
	}
}

// FormatAverage 四舍五入（远离零）保留两位小数
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(math.Round(avg*100)/100, 'f', 2, 64)
}
