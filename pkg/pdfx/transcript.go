package pdfx

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/uy1-mgp/bff/domain"
)

const (
	university = "Université de Yaoundé I"
	faculty    = "Faculté des Sciences"
	title      = "Bulletin de Notes - Calcul MGP"
)

// TranscriptRenderer 把一次计算结果渲染成 A4 的 PDF 成绩单
type TranscriptRenderer struct {
	now func() time.Time
}

func NewTranscriptRenderer() *TranscriptRenderer {
	return &TranscriptRenderer{now: time.Now}
}

func (t *TranscriptRenderer) Render(r domain.Result) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// 内置字体只支持 cp1252，法语重音字符需要转换
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetCreator("mgp-bff", true)
	pdf.SetCreationDate(t.now())
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	t.header(pdf, tr)
	t.studentInfo(pdf, tr, r)
	t.entries(pdf, tr, r.Entries)
	t.summary(pdf, tr, r)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *TranscriptRenderer) header(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(university), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(faculty), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func (t *TranscriptRenderer) studentInfo(pdf *fpdf.Fpdf, tr func(string) string, r domain.Result) {
	date := t.now()
	if r.Ctime > 0 {
		date = time.UnixMilli(r.Ctime)
	}
	rows := [][2]string{
		{"Nom de l'étudiant", r.StudentName},
		{"Date", date.Format("02/01/2006 15:04")},
	}
	if r.Id != 0 {
		rows = append(rows, [2]string{"Référence", strconv.FormatInt(r.Id, 10)})
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (t *TranscriptRenderer) entries(pdf *fpdf.Fpdf, tr func(string) string, entries []domain.GradedEntry) {
	widths := []float64{80, 30, 30, 30}
	headers := []string{"Unité d'Enseignement", "Crédits", "Note /100", "Cote"}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	for _, e := range entries {
		pdf.CellFormat(widths[0], 7, tr(e.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.Itoa(e.Credits), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, strconv.FormatFloat(e.Score, 'f', 2, 64), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, string(e.Letter), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}

func (t *TranscriptRenderer) summary(pdf *fpdf.Fpdf, tr func(string) string, r domain.Result) {
	rows := [][2]string{
		{"Total crédits", strconv.Itoa(r.TotalCredits)},
		{"Total points", strconv.FormatFloat(r.TotalPoints, 'f', 2, 64)},
		{"MGP", r.FormattedAverage},
		{"Mention", r.Mention},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
	decision := "NON ADMIS"
	pdf.SetTextColor(180, 0, 0)
	if r.Admitted {
		decision = "ADMIS"
		pdf.SetTextColor(0, 128, 0)
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Décision : %s", decision)), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
