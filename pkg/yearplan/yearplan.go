// Package yearplan produces the full production calendar of a catalogue for
// one year, one row per week-code week.
package yearplan

import (
	"context"
	"time"

	"github.com/bibdata/weekresolver/pkg/weekcode"
	log "github.com/sirupsen/logrus"
)

// Row is one week of the year plan.
type Row struct {
	WeekCode      string
	WeekCodeFirst *time.Time
	WeekCodeLast  *time.Time
	ShiftDay      *time.Time
	BookCart      *time.Time
	Proof         *time.Time
	Bkm           *time.Time
	ProofFrom     *time.Time
	ProofTo       *time.Time
	Publish       *time.Time
	NoProduction  bool
}

type YearPlan struct {
	CatalogueCode string
	Year          int
	Rows          []Row
}

type Service interface {
	GetYearPlan(ctx context.Context, catalogueCode string, year int, locale string) (YearPlan, error)
}

type ServiceImpl struct {
	weekCode weekcode.Service
}

func NewService(weekCodeService weekcode.Service) *ServiceImpl {
	return &ServiceImpl{weekCode: weekCodeService}
}

// GetYearPlan resolves the week code of every Monday of the year, in order.
// Weeks without production (Easter) still get a row; their code is the week
// the production rolls into.
func (s *ServiceImpl) GetYearPlan(ctx context.Context, catalogueCode string, year int, locale string) (YearPlan, error) {
	plan := YearPlan{CatalogueCode: catalogueCode, Year: year}

	monday := firstMonday(year)
	for monday.Year() == year {
		if err := ctx.Err(); err != nil {
			return YearPlan{}, err
		}
		result, err := s.weekCode.ResolveCurrentWeekCode(ctx, catalogueCode, monday, locale)
		if err != nil {
			return YearPlan{}, err
		}
		plan.Rows = append(plan.Rows, rowFromResult(result))
		monday = monday.AddDate(0, 0, 7)
	}

	log.Debugf("built year plan for %s/%d with %d rows", catalogueCode, year, len(plan.Rows))
	return plan, nil
}

func rowFromResult(result weekcode.WeekCodeResult) Row {
	d := result.Description
	return Row{
		WeekCode:      result.WeekCode,
		WeekCodeFirst: d.WeekCodeFirst,
		WeekCodeLast:  d.WeekCodeLast,
		ShiftDay:      d.ShiftDay,
		BookCart:      d.BookCart,
		Proof:         d.Proof,
		Bkm:           d.Bkm,
		ProofFrom:     d.ProofFrom,
		ProofTo:       d.ProofTo,
		Publish:       d.Publish,
		NoProduction:  d.NoProduction,
	}
}

// firstMonday returns the first Monday on or after January 1st of the year.
func firstMonday(year int) time.Time {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
