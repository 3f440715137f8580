package catalogue

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Override is a database-provided rule configuration for a single code.
type Override struct {
	Code   string
	Config Config
}

type Repository interface {
	GetOverrides(ctx context.Context) ([]Override, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// GetOverrides reads all rows of the catalogue_rule table. The shift day is
// stored as an ISO day-of-week number (Monday=1 .. Sunday=7), NULL meaning
// no cut-over logic.
func (r *RepositoryImpl) GetOverrides(ctx context.Context) ([]Override, error) {
	query := `SELECT code,
                     fixed_week_code,
                     add_weeks,
                     shift_day,
                     allow_end_of_year,
                     ignore_closing_days,
                     use_month_number
                FROM catalogue_rule`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query catalogue rules: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var overrides []Override
	for rows.Next() {
		var (
			code          string
			fixedWeekCode sql.NullString
			shiftDay      sql.NullInt64
			cfg           Config
		)
		if err := rows.Scan(&code, &fixedWeekCode, &cfg.AddWeeks, &shiftDay,
			&cfg.AllowEndOfYear, &cfg.IgnoreClosingDays, &cfg.UseMonthNumber); err != nil {
			err := fmt.Errorf("could not scan catalogue rule: %w", err)
			log.Error(err)
			return nil, err
		}
		if fixedWeekCode.Valid {
			cfg.FixedWeekCode = fixedWeekCode.String
		}
		if shiftDay.Valid {
			day, err := weekdayFromIso(int(shiftDay.Int64))
			if err != nil {
				return nil, fmt.Errorf("catalogue rule %s: %w", code, err)
			}
			cfg.ShiftDay = &day
		}
		overrides = append(overrides, Override{Code: strings.ToUpper(code), Config: cfg})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read catalogue rules: %w", err)
	}

	return overrides, nil
}

func weekdayFromIso(day int) (time.Weekday, error) {
	if day < 1 || day > 7 {
		return 0, fmt.Errorf("invalid ISO day-of-week value: %d", day)
	}
	if day == 7 {
		return time.Sunday, nil
	}
	return time.Weekday(day), nil
}
