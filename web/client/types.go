package client

import (
	"net/url"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/service/grading"
)

// 远程 MGP 服务的报文，字段名沿用服务端的法语命名

type UeDTO struct {
	Nom     string  `json:"nom"`
	Credits int     `json:"credits"`
	Note    float64 `json:"note"`
	Cote    string  `json:"cote,omitempty"`
}

type CalculerReq struct {
	Ues         []UeDTO `json:"ues"`
	NomEtudiant string  `json:"nomEtudiant"`
}

type ResultatDTO struct {
	// Id 未保存时为 null
	Id           *int64   `json:"id"`
	NomEtudiant  string   `json:"nomEtudiant"`
	Mgp          *float64 `json:"mgp"`
	MgpFormate   string   `json:"mgpFormate"`
	Mention      string   `json:"mention"`
	Admis        *bool    `json:"admis"`
	Ues          []UeDTO  `json:"ues"`
	TotalCredits int      `json:"totalCredits"`
	TotalPoints  *float64 `json:"totalPoints,omitempty"`
	DateCalcul   string   `json:"dateCalcul,omitempty"`
}

const dateCalculLayout = "2006-01-02T15:04:05"

func toCalculerReq(name string, entries []domain.CourseEntry) CalculerReq {
	return CalculerReq{
		NomEtudiant: name,
		Ues: slice.Map(entries, func(idx int, src domain.CourseEntry) UeDTO {
			return UeDTO{
				Nom:     src.Name,
				Credits: src.Credits,
				Note:    src.Score,
			}
		}),
	}
}

// toDomain 服务端给出的 mgp、mention、admis 为准，统计字段本地补齐
func (r ResultatDTO) toDomain(now time.Time) (domain.Result, error) {
	switch {
	case r.Mgp == nil:
		return domain.Result{}, errMalformed("mgp")
	case r.Admis == nil:
		return domain.Result{}, errMalformed("admis")
	case r.Mention == "":
		return domain.Result{}, errMalformed("mention")
	case r.MgpFormate == "":
		return domain.Result{}, errMalformed("mgpFormate")
	}
	graded := slice.Map(r.Ues, func(idx int, src UeDTO) domain.GradedEntry {
		letter := domain.LetterGrade(src.Cote)
		if letter == "" {
			letter = grading.ClassifyScore(src.Note)
		}
		return domain.GradedEntry{
			CourseEntry: domain.CourseEntry{
				Name:    src.Nom,
				Credits: src.Credits,
				Score:   src.Note,
			},
			Letter: letter,
		}
	})
	var points float64
	for _, e := range graded {
		points += e.Score * float64(e.Credits)
	}
	if r.TotalPoints != nil {
		points = *r.TotalPoints
	}
	var id int64
	if r.Id != nil {
		id = *r.Id
	}
	res := grading.Assemble(r.NomEtudiant, domain.Aggregate{
		Average:      *r.Mgp,
		TotalPoints:  points,
		TotalCredits: r.TotalCredits,
		Entries:      graded,
	}, id)
	res.FormattedAverage = r.MgpFormate
	res.Mention = r.Mention
	res.Admitted = *r.Admis
	res.Ctime = now.UnixMilli()
	if t, err := time.ParseInLocation(dateCalculLayout, trimFraction(r.DateCalcul), time.Local); err == nil {
		res.Ctime = t.UnixMilli()
	}
	return res, nil
}

// trimFraction 去掉 LocalDateTime 的小数秒
func trimFraction(s string) string {
	if len(s) > len(dateCalculLayout) {
		return s[:len(dateCalculLayout)]
	}
	return s
}

// baseURL 取 endpoint 的 scheme 和 host，服务发现时 host 由 kratos 替换
func baseURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + u.Host, nil
}
