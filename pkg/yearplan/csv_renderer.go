package yearplan

import (
	"strings"
	"time"
)

// Renderer turns a year plan into a textual representation.
type Renderer interface {
	RenderYearPlan(plan YearPlan) (string, error)
}

// CsvRendererImpl writes the semicolon-separated form consumed by the
// production planning spreadsheets. Every field is quoted, including the
// header, and empty dates render as quoted empty strings.
type CsvRendererImpl struct {
	IncludeHeader bool
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{IncludeHeader: true}
}

var csvHeader = []string{
	"WeekCode", "WeekCodeFirst", "WeekCodeLast", "ShiftDay",
	"BookCart", "Proof", "BKM-red.", "ProofFrom", "ProofTo", "Publish",
}

func (r *CsvRendererImpl) RenderYearPlan(plan YearPlan) (string, error) {
	var b strings.Builder
	if r.IncludeHeader {
		writeCsvRow(&b, csvHeader)
	}
	for _, row := range plan.Rows {
		writeCsvRow(&b, []string{
			row.WeekCode,
			csvDate(row.WeekCodeFirst),
			csvDate(row.WeekCodeLast),
			csvDate(row.ShiftDay),
			csvDate(row.BookCart),
			csvDate(row.Proof),
			csvDate(row.Bkm),
			csvDate(row.ProofFrom),
			csvDate(row.ProofTo),
			csvDate(row.Publish),
		})
	}
	return b.String(), nil
}

func writeCsvRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
