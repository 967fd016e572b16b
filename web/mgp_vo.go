package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/uy1-mgp/bff/domain"
)

type UeVo struct {
	Nom     string  `json:"nom"`
	Credits int     `json:"credits"`
	Note    float64 `json:"note"`
	Cote    string  `json:"cote,omitempty"`
}

type CalculerReq struct {
	Ues         []UeVo `json:"ues"`
	NomEtudiant string `json:"nomEtudiant"`
}

type ResultatVo struct {
	// Id 没有保存时为 null
	Id           *int64  `json:"id"`
	NomEtudiant  string  `json:"nomEtudiant"`
	Mgp          float64 `json:"mgp"`
	MgpFormate   string  `json:"mgpFormate"`
	Mention      string  `json:"mention"`
	Admis        bool    `json:"admis"`
	Ues          []UeVo  `json:"ues"`
	TotalCredits int     `json:"totalCredits"`
	TotalPoints  float64 `json:"totalPoints"`
	NombreUE     int     `json:"nombreUE"`
	UeValidees   int     `json:"ueValidees"`   // note >= 50
	UeEchouees   int     `json:"ueEchouees"`   // note < 35
	TauxReussite float64 `json:"tauxReussite"` // 百分比
	DateCalcul   int64   `json:"dateCalcul"`   // 毫秒时间戳
}

func toCourseEntries(ues []UeVo) []domain.CourseEntry {
	return slice.Map(ues, func(idx int, src UeVo) domain.CourseEntry {
		return domain.CourseEntry{
			Name:    src.Nom,
			Credits: src.Credits,
			Score:   src.Note,
		}
	})
}

func toResultatVo(r domain.Result) ResultatVo {
	var id *int64
	if r.Id != 0 {
		id = &r.Id
	}
	return ResultatVo{
		Id:           id,
		NomEtudiant:  r.StudentName,
		Mgp:          r.Average,
		MgpFormate:   r.FormattedAverage,
		Mention:      r.Mention,
		Admis:        r.Admitted,
		TotalCredits: r.TotalCredits,
		TotalPoints:  r.TotalPoints,
		NombreUE:     r.CourseCount,
		UeValidees:   r.ValidatedCount,
		UeEchouees:   r.FailedCount,
		TauxReussite: r.SuccessRate,
		DateCalcul:   r.Ctime,
		Ues: slice.Map(r.Entries, func(idx int, src domain.GradedEntry) UeVo {
			return UeVo{
				Nom:     src.Name,
				Credits: src.Credits,
				Note:    src.Score,
				Cote:    string(src.Letter),
			}
		}),
	}
}

// toResult 前端回传的结果，原样保存，不重新计算
func (vo ResultatVo) toResult() domain.Result {
	var id int64
	if vo.Id != nil {
		id = *vo.Id
	}
	return domain.Result{
		Id:               id,
		StudentName:      vo.NomEtudiant,
		Average:          vo.Mgp,
		FormattedAverage: vo.MgpFormate,
		Mention:          vo.Mention,
		Admitted:         vo.Admis,
		TotalCredits:     vo.TotalCredits,
		TotalPoints:      vo.TotalPoints,
		CourseCount:      vo.NombreUE,
		ValidatedCount:   vo.UeValidees,
		FailedCount:      vo.UeEchouees,
		SuccessRate:      vo.TauxReussite,
		Ctime:            vo.DateCalcul,
		Entries: slice.Map(vo.Ues, func(idx int, src UeVo) domain.GradedEntry {
			return domain.GradedEntry{
				CourseEntry: domain.CourseEntry{
					Name:    src.Nom,
					Credits: src.Credits,
					Score:   src.Note,
				},
				Letter: domain.LetterGrade(src.Cote),
			}
		}),
	}
}
