package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uy1-mgp/bff/domain"
)

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name        string
		entries     []domain.CourseEntry
		wantAvg     float64
		wantCredits int
		wantPoints  float64
		wantLetters []domain.LetterGrade
		wantNames   []string
	}{
		{
			name: "两门 UE",
			entries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Physics", Credits: 3, Score: 40},
			},
			wantAvg:     600.0 / 9.0,
			wantCredits: 9,
			wantPoints:  600,
			wantLetters: []domain.LetterGrade{domain.GradeA, domain.GradeF},
			wantNames:   []string{"Math", "Physics"},
		},
		{
			name: "全部 50 分",
			entries: []domain.CourseEntry{
				{Name: "Algo", Credits: 6, Score: 50},
				{Name: "BD", Credits: 3, Score: 50},
				{Name: "Réseaux", Credits: 6, Score: 50},
			},
			wantAvg:     50,
			wantCredits: 15,
			wantPoints:  750,
			wantLetters: []domain.LetterGrade{domain.GradeD, domain.GradeD, domain.GradeD},
			wantNames:   []string{"Algo", "BD", "Réseaux"},
		},
		{
			name: "空白名称被过滤，顺序保持",
			entries: []domain.CourseEntry{
				{Name: "  ", Credits: 6, Score: 90},
				{Name: "Java", Credits: 3, Score: 72.5},
				{Name: "", Credits: 6, Score: 10},
				{Name: "Anglais", Credits: 6, Score: 61},
			},
			wantAvg:     (72.5*3 + 61*6) / 9,
			wantCredits: 9,
			wantPoints:  72.5*3 + 61*6,
			wantLetters: []domain.LetterGrade{domain.GradeB, domain.GradeC},
			wantNames:   []string{"Java", "Anglais"},
		},
		{
			name:        "空列表",
			entries:     nil,
			wantLetters: []domain.LetterGrade{},
			wantNames:   []string{},
		},
		{
			name: "只有空白名称",
			entries: []domain.CourseEntry{
				{Name: "", Credits: 6, Score: 90},
			},
			wantLetters: []domain.LetterGrade{},
			wantNames:   []string{},
		},
		{
			name: "学分为 0 不会除零",
			entries: []domain.CourseEntry{
				{Name: "Stage", Credits: 0, Score: 90},
			},
			wantLetters: []domain.LetterGrade{domain.GradeA},
			wantNames:   []string{"Stage"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			agg := Aggregate(tc.entries)
			assert.InDelta(t, tc.wantAvg, agg.Average, 1e-9)
			assert.Equal(t, tc.wantCredits, agg.TotalCredits)
			assert.InDelta(t, tc.wantPoints, agg.TotalPoints, 1e-9)
			require.NotNil(t, agg.Entries)
			letters := make([]domain.LetterGrade, 0, len(agg.Entries))
			names := make([]string, 0, len(agg.Entries))
			for _, e := range agg.Entries {
				letters = append(letters, e.Letter)
				names = append(names, e.Name)
			}
			assert.Equal(t, tc.wantLetters, letters)
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestAggregateWeightedMean(t *testing.T) {
	entries := []domain.CourseEntry{
		{Name: "a", Credits: 1, Score: 33.3},
		{Name: "b", Credits: 7, Score: 91.25},
		{Name: "c", Credits: 4, Score: 0},
		{Name: "d", Credits: 12, Score: 100},
		{Name: "e", Credits: 5, Score: 57.8},
	}
	var points float64
	var credits int
	for _, e := range entries {
		points += e.Score * float64(e.Credits)
		credits += e.Credits
	}
	agg := Aggregate(entries)
	assert.InDelta(t, points/float64(credits), agg.Average, 1e-9)
	assert.Equal(t, credits, agg.TotalCredits)
}

func TestFilterEntriesIdempotent(t *testing.T) {
	entries := []domain.CourseEntry{
		{Name: "Math", Credits: 6, Score: 80},
		{Name: "\t", Credits: 3, Score: 40},
		{Name: "Physique", Credits: 3, Score: 40},
	}
	once := FilterEntries(entries)
	twice := FilterEntries(once)
	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
	// 原切片不受影响
	assert.Len(t, entries, 3)
}
