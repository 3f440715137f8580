package yearplan

import (
	"html/template"
	"strconv"
	"strings"
	"time"
)

// HtmlRendererImpl renders the year plan as a standalone HTML table, used by
// the editorial staff for printing.
type HtmlRendererImpl struct {
	tmpl *template.Template
}

func NewHtmlRenderer() *HtmlRendererImpl {
	return &HtmlRendererImpl{tmpl: template.Must(template.New("yearplan").Parse(yearPlanTemplate))}
}

type htmlRow struct {
	WeekCode      string
	WeekCodeFirst string
	WeekCodeLast  string
	ShiftDay      string
	BookCart      string
	Proof         string
	Bkm           string
	ProofFrom     string
	ProofTo       string
	Publish       string
}

type htmlPlan struct {
	Title string
	Rows  []htmlRow
}

func (r *HtmlRendererImpl) RenderYearPlan(plan YearPlan) (string, error) {
	data := htmlPlan{
		Title: plan.CatalogueCode + " " + strconv.Itoa(plan.Year),
	}
	for _, row := range plan.Rows {
		data.Rows = append(data.Rows, htmlRow{
			WeekCode:      row.WeekCode,
			WeekCodeFirst: htmlDate(row.WeekCodeFirst),
			WeekCodeLast:  htmlDate(row.WeekCodeLast),
			ShiftDay:      htmlDate(row.ShiftDay),
			BookCart:      htmlDate(row.BookCart),
			Proof:         htmlDate(row.Proof),
			Bkm:           htmlDate(row.Bkm),
			ProofFrom:     htmlDate(row.ProofFrom),
			ProofTo:       htmlDate(row.ProofTo),
			Publish:       htmlDate(row.Publish),
		})
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func htmlDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

const yearPlanTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 2px 8px; font-family: sans-serif; font-size: 12px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<tr><th>WeekCode</th><th>WeekCodeFirst</th><th>WeekCodeLast</th><th>ShiftDay</th><th>BookCart</th><th>Proof</th><th>BKM-red.</th><th>ProofFrom</th><th>ProofTo</th><th>Publish</th></tr>
{{range .Rows}}<tr><td>{{.WeekCode}}</td><td>{{.WeekCodeFirst}}</td><td>{{.WeekCodeLast}}</td><td>{{.ShiftDay}}</td><td>{{.BookCart}}</td><td>{{.Proof}}</td><td>{{.Bkm}}</td><td>{{.ProofFrom}}</td><td>{{.ProofTo}}</td><td>{{.Publish}}</td></tr>
{{end}}</table>
</body>
</html>
`
