package grading

import "github.com/uy1-mgp/bff/domain"

const (
	MentionTresBien  = "Très Bien"
	MentionBien      = "Bien"
	MentionAssezBien = "Assez Bien"
	MentionPassable  = "Passable"
	MentionEchec     = "Échec"
)

// AdmissionThreshold MGP 不低于该值即为admis
const AdmissionThreshold = 50.0

type threshold[T any] struct {
	min   float64
	label T
}

// 下界包含，从高到低匹配
var (
	letterThresholds = []threshold[domain.LetterGrade]{
		{min: 80, label: domain.GradeA},
		{min: 70, label: domain.GradeB},
		{min: 60, label: domain.GradeC},
		{min: 50, label: domain.GradeD},
	}
	mentionThresholds = []threshold[string]{
		{min: 80, label: MentionTresBien},
		{min: 70, label: MentionBien},
		{min: 60, label: MentionAssezBien},
		{min: 50, label: MentionPassable},
	}
)

type Standing struct {
	Mention  string
	Admitted bool
}

// ClassifyScore 不校验范围，范围由调用方负责
func ClassifyScore(score float64) domain.LetterGrade {
	return match(letterThresholds, score, domain.GradeF)
}

func ClassifyAverage(average float64) Standing {
	return Standing{
		Mention:  match(mentionThresholds, average, MentionEchec),
		Admitted: average >= AdmissionThreshold,
	}
}

func match[T any](thresholds []threshold[T], val float64, fallback T) T {
	for _, t := range thresholds {
		if val >= t.min {
			return t.label
		}
	}
	return fallback
}
