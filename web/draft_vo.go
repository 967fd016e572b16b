package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/uy1-mgp/bff/domain"
)

type ActionVo struct {
	// Type addEntry / removeEntry / updateEntry / setStudentName
	Type  string `json:"type"`
	Index int    `json:"index"`
	// Field nom / credits / note
	Field string `json:"field"`
	Value string `json:"value"`
	Name  string `json:"name"`
}

type DispatchReq struct {
	Actions []ActionVo `json:"actions"`
}

type BrouillonVo struct {
	Id                string `json:"id"`
	NomEtudiant       string `json:"nomEtudiant"`
	Ues               []UeVo `json:"ues"`
	DernierResultatId *int64 `json:"dernierResultatId"`
	DateModification  int64  `json:"dateModification"`
}

func toActions(vos []ActionVo) []domain.Action {
	return slice.Map(vos, func(idx int, src ActionVo) domain.Action {
		return domain.Action{
			Type:  domain.ActionType(src.Type),
			Index: src.Index,
			Field: domain.EntryField(src.Field),
			Value: src.Value,
			Name:  src.Name,
		}
	})
}

func toBrouillonVo(d domain.Draft) BrouillonVo {
	var last *int64
	if d.LastResultId != 0 {
		last = &d.LastResultId
	}
	return BrouillonVo{
		Id:                d.Id,
		NomEtudiant:       d.StudentName,
		DernierResultatId: last,
		DateModification:  d.Utime,
		Ues: slice.Map(d.Entries, func(idx int, src domain.CourseEntry) UeVo {
			return UeVo{
				Nom:     src.Name,
				Credits: src.Credits,
				Note:    src.Score,
			}
		}),
	}
}
