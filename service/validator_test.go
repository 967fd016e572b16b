package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/service"
)

func TestEntryValidator_Validate(t *testing.T) {
	testCases := []struct {
		name           string
		allowedCredits []int
		studentName    string
		entries        []domain.CourseEntry

		wantName   string
		wantKept   []domain.CourseEntry
		wantReason error
		wantFields map[string]string
	}{
		{
			name:        "空白UE被丢弃",
			studentName: "  Ngono Marie ",
			entries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "   ", Credits: 3, Score: 200},
				{Name: "Physics", Credits: 3, Score: 40},
			},
			wantName: "Ngono Marie",
			wantKept: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: 80},
				{Name: "Physics", Credits: 3, Score: 40},
			},
		},
		{
			name:        "姓名为空",
			studentName: " \t",
			entries:     []domain.CourseEntry{{Name: "Math", Credits: 6, Score: 80}},
			wantReason:  service.ErrStudentNameRequired,
		},
		{
			name:        "没有有效UE",
			studentName: "Awa",
			entries:     []domain.CourseEntry{{Name: "", Credits: 6, Score: 80}},
			wantReason:  service.ErrNoValidEntries,
		},
		{
			name:        "分数越界和学分非法",
			studentName: "Awa",
			entries: []domain.CourseEntry{
				{Name: "", Credits: 6},
				{Name: "Math", Credits: 0, Score: 101},
				{Name: "Physics", Credits: 3, Score: -1},
			},
			wantReason: service.ErrInvalidEntries,
			wantFields: map[string]string{
				"ues[1].note":    "la note doit être comprise entre 0 et 100",
				"ues[1].credits": "les crédits doivent être un entier positif",
				"ues[2].note":    "la note doit être comprise entre 0 et 100",
			},
		},
		{
			name:        "NaN和Inf分数",
			studentName: "Awa",
			entries: []domain.CourseEntry{
				{Name: "Math", Credits: 6, Score: math.NaN()},
				{Name: "Physics", Credits: 3, Score: math.Inf(1)},
				{Name: "Chimie", Credits: 3, Score: math.Inf(-1)},
			},
			wantReason: service.ErrInvalidEntries,
			wantFields: map[string]string{
				"ues[0].note": "la note doit être comprise entre 0 et 100",
				"ues[1].note": "la note doit être comprise entre 0 et 100",
				"ues[2].note": "la note doit être comprise entre 0 et 100",
			},
		},
		{
			name:           "学分不在允许范围",
			allowedCredits: []int{3, 6},
			studentName:    "Awa",
			entries:        []domain.CourseEntry{{Name: "Math", Credits: 4, Score: 60}},
			wantReason:     service.ErrInvalidEntries,
			wantFields: map[string]string{
				"ues[0].credits": "4 crédits non autorisés",
			},
		},
		{
			name:        "边界分数合法",
			studentName: "Awa",
			entries: []domain.CourseEntry{
				{Name: "Math", Credits: 4, Score: 0},
				{Name: "Chimie", Credits: 5, Score: 100},
			},
			wantName: "Awa",
			wantKept: []domain.CourseEntry{
				{Name: "Math", Credits: 4, Score: 0},
				{Name: "Chimie", Credits: 5, Score: 100},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := service.NewEntryValidator(tc.allowedCredits)
			name, kept, err := v.Validate(tc.studentName, tc.entries)
			if tc.wantReason != nil {
				var ve *service.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.ErrorIs(t, err, tc.wantReason)
				assert.Equal(t, tc.wantFields, ve.Fields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantKept, kept)
		})
	}
}
