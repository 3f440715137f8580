package weekcode

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/bibdata/weekresolver/pkg/closingday"
	log "github.com/sirupsen/logrus"
)

// Service resolves week codes for catalogued records. Every call is a fresh,
// independent computation: the service holds no per-call state and is safe
// for concurrent use.
type Service interface {
	// ResolveWeekCode computes the forward-looking week code a record created
	// on the given date is assigned to.
	ResolveWeekCode(ctx context.Context, catalogueCode string, date time.Time, locale string) (WeekCodeResult, error)
	// ResolveCurrentWeekCode answers the retrospective question "which release
	// week is this date a working day for".
	ResolveCurrentWeekCode(ctx context.Context, catalogueCode string, date time.Time, locale string) (WeekCodeResult, error)
}

type ServiceImpl struct {
	catalogue catalogue.Service
}

func NewService(catalogueService catalogue.Service) *ServiceImpl {
	return &ServiceImpl{catalogue: catalogueService}
}

func (s *ServiceImpl) ResolveWeekCode(ctx context.Context, catalogueCode string, date time.Time, locale string) (WeekCodeResult, error) {
	cfg, err := s.catalogue.Lookup(catalogueCode)
	if err != nil {
		return WeekCodeResult{}, err
	}
	code := strings.ToUpper(catalogueCode)
	if cfg.HasFixedWeekCode() {
		return fixedResult(code, cfg, date)
	}

	d := midnight(date)
	log.Debugf("resolving week code for %s on %s", code, d.Format("2006-01-02"))

	var shift *time.Weekday
	if !cfg.IgnoreClosingDays && cfg.ShiftDay != nil {
		shift, err = adjustShiftDay(d, *cfg.ShiftDay, cfg.AllowEndOfYear)
		if err != nil {
			return WeekCodeResult{}, err
		}
	}

	// On or past the cut-over day, the record belongs to next week's cycle.
	if shift != nil && isoDay(d.Weekday()) >= isoDay(*shift) {
		d = mondayOf(d).AddDate(0, 0, 7)
	}

	d = d.AddDate(0, 0, 7*cfg.AddWeeks)

	if !cfg.IgnoreClosingDays {
		// A code whose production week would be Easter week is pushed one
		// further, so no production is required during Easter.
		if closingday.IsEasterWeek(d.AddDate(0, 0, -7)) {
			d = d.AddDate(0, 0, 7)
		}
		for closingday.IsClosingDay(d, cfg.AllowEndOfYear) {
			d = d.AddDate(0, 0, 1)
		}
	}

	return buildResult(code, cfg, d, locale)
}

func (s *ServiceImpl) ResolveCurrentWeekCode(ctx context.Context, catalogueCode string, date time.Time, locale string) (WeekCodeResult, error) {
	cfg, err := s.catalogue.Lookup(catalogueCode)
	if err != nil {
		return WeekCodeResult{}, err
	}
	code := strings.ToUpper(catalogueCode)
	if cfg.HasFixedWeekCode() {
		return fixedResult(code, cfg, date)
	}

	// The retrospective query always treats the end-of-year weeks as regular
	// working weeks, regardless of the catalogue's own flag: it asks which
	// release week covers a working day, not which week a new record targets.
	cfg.AllowEndOfYear = true

	d := midnight(date)
	if cfg.IgnoreClosingDays {
		return buildResult(code, cfg, d, locale)
	}

	// Skip closing days, but never cross past Sunday: the answer stays within
	// the week of the queried date.
	for closingday.IsClosingDay(d, true) && d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}

	var shift *time.Weekday
	if cfg.ShiftDay != nil {
		shift, err = adjustShiftDay(d, *cfg.ShiftDay, true)
		if err != nil {
			return WeekCodeResult{}, err
		}
	}

	// Without a cut-over day this week, or on/past it, the date already works
	// for next week's cycle.
	if shift == nil || isoDay(d.Weekday()) >= isoDay(*shift) {
		d = d.AddDate(0, 0, 7)
	}

	return buildResult(code, cfg, d, locale)
}

func buildResult(code string, cfg catalogue.Config, resolved time.Time, locale string) (WeekCodeResult, error) {
	year, number := yearAndNumber(cfg, resolved, locale)
	short := WeekNumber{Week: number, Year: year}.String()

	description, err := buildDescription(cfg, resolved, short)
	if err != nil {
		return WeekCodeResult{}, err
	}

	return WeekCodeResult{
		WeekNumber:    number,
		Year:          year,
		CatalogueCode: code,
		WeekCode:      code + short,
		ResolvedDate:  resolved,
		Description:   description,
	}, nil
}

// yearAndNumber derives the week-code digits from the resolved date: the
// week-based year and week number, or the calendar year and month for
// month-numbered catalogues.
func yearAndNumber(cfg catalogue.Config, d time.Time, locale string) (int, int) {
	if cfg.UseMonthNumber {
		return d.Year(), int(d.Month())
	}
	wn := weekNumberOf(d, weekStartOf(locale))
	return wn.Year, wn.Week
}

// fixedResult short-circuits resolution for catalogues with a frozen suffix.
// The week/year fields mirror the suffix digits when it has the usual
// yyyyww form.
func fixedResult(code string, cfg catalogue.Config, date time.Time) (WeekCodeResult, error) {
	year, week := 0, 0
	if len(cfg.FixedWeekCode) == 6 {
		if y, err := strconv.Atoi(cfg.FixedWeekCode[:4]); err == nil {
			if w, err := strconv.Atoi(cfg.FixedWeekCode[4:]); err == nil {
				year, week = y, w
			}
		}
	}

	resolved := midnight(date)
	description, err := buildDescription(cfg, resolved, cfg.FixedWeekCode)
	if err != nil {
		return WeekCodeResult{}, err
	}

	return WeekCodeResult{
		WeekNumber:    week,
		Year:          year,
		CatalogueCode: code,
		WeekCode:      code + cfg.FixedWeekCode,
		ResolvedDate:  resolved,
		Description:   description,
	}, nil
}
