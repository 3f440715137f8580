package yearplan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestRenderYearPlanCsv(t *testing.T) {
	renderer := NewCsvRenderer()

	plan := YearPlan{
		CatalogueCode: "BKM",
		Year:          2023,
		Rows: []Row{
			{
				WeekCode:      "BKM202313",
				WeekCodeFirst: datePtr(2023, time.March, 27),
				WeekCodeLast:  datePtr(2023, time.March, 29),
				ShiftDay:      datePtr(2023, time.March, 30),
				BookCart:      datePtr(2023, time.March, 27),
				Proof:         datePtr(2023, time.March, 28),
				Bkm:           datePtr(2023, time.March, 29),
				ProofFrom:     datePtr(2023, time.March, 28),
				ProofTo:       datePtr(2023, time.March, 28),
				Publish:       datePtr(2023, time.March, 31),
			},
			{
				WeekCode:     "BKM202315",
				NoProduction: true,
			},
		},
	}

	out, err := renderer.RenderYearPlan(plan)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"WeekCode";"WeekCodeFirst";"WeekCodeLast";"ShiftDay";"BookCart";"Proof";"BKM-red.";"ProofFrom";"ProofTo";"Publish"`, lines[0])
	assert.Equal(t, `"BKM202313";"2023-03-27";"2023-03-29";"2023-03-30";"2023-03-27";"2023-03-28";"2023-03-29";"2023-03-28";"2023-03-28";"2023-03-31"`, lines[1])
	assert.Equal(t, `"BKM202315";"";"";"";"";"";"";"";"";""`, lines[2])
}

func TestRenderYearPlanCsvWithoutHeader(t *testing.T) {
	renderer := NewCsvRenderer()
	renderer.IncludeHeader = false

	out, err := renderer.RenderYearPlan(YearPlan{Rows: []Row{{WeekCode: "BKM202301"}}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `"BKM202301";`))
}

func TestRenderYearPlanHtml(t *testing.T) {
	renderer := NewHtmlRenderer()

	out, err := renderer.RenderYearPlan(YearPlan{
		CatalogueCode: "BKM",
		Year:          2023,
		Rows: []Row{{
			WeekCode: "BKM202313",
			Publish:  datePtr(2023, time.March, 31),
		}},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<title>BKM 2023</title>")
	assert.Contains(t, out, "<td>BKM202313</td>")
	assert.Contains(t, out, "<td>2023-03-31</td>")
}
