// Package catalogue maps catalogue codes to their week-code rule
// configuration. The registry is an immutable snapshot: built once from the
// compiled-in defaults (optionally overlaid with database overrides) and
// replaced wholesale on reload, never mutated in place.
package catalogue

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrUnknownCatalogueCode is returned when a code has no registry entry.
// An unknown code is a client error, never a default configuration.
var ErrUnknownCatalogueCode = fmt.Errorf("unknown catalogue code")

// Config is the rule configuration for a single catalogue code.
// A non-empty FixedWeekCode short-circuits every other field: the catalogue
// always reports that literal suffix regardless of date.
type Config struct {
	FixedWeekCode     string
	AddWeeks          int
	ShiftDay          *time.Weekday
	AllowEndOfYear    bool
	IgnoreClosingDays bool
	UseMonthNumber    bool
}

// HasFixedWeekCode reports whether this catalogue always uses a literal suffix.
func (c Config) HasFixedWeekCode() bool {
	return c.FixedWeekCode != ""
}

var friday = time.Friday

// defaultConfigs returns the built-in rule table, keyed by upper-case code.
func defaultConfigs() map[string]Config {
	currentWeek := Config{IgnoreClosingDays: true, AllowEndOfYear: true}
	fridayPlus1 := Config{AddWeeks: 1, ShiftDay: &friday}
	fridayPlus2 := Config{AddWeeks: 2, ShiftDay: &friday}
	fridayPlus3EndOfYear := Config{AddWeeks: 3, ShiftDay: &friday, AllowEndOfYear: true}
	monthCode := Config{UseMonthNumber: true, IgnoreClosingDays: true, AllowEndOfYear: true}

	return map[string]Config{
		// Accession and related codes report the ongoing week, untouched by
		// closing days or the end-of-year weeks.
		"ACC": currentWeek,
		"ACE": currentWeek,
		"ACF": currentWeek,
		"ACK": currentWeek,
		"ACM": currentWeek,
		"ACN": currentWeek,
		"ACP": currentWeek,
		"ACT": currentWeek,
		"ARK": currentWeek,
		"BLG": currentWeek,

		// Weekly lists cut over on Friday, one week ahead.
		"BKM": fridayPlus1,
		"BKR": fridayPlus1,
		"BKX": fridayPlus1,
		"DAT": fridayPlus1,
		"DIG": fridayPlus1,
		"EMO": fridayPlus1,

		// National bibliography lists run two weeks ahead.
		"DBF": fridayPlus2,
		"DBI": fridayPlus2,
		"DLF": fridayPlus2,
		"DLR": fridayPlus2,
		"DMO": fridayPlus2,
		"EMS": fridayPlus2,
		"GBF": fridayPlus2,
		"GMO": fridayPlus2,
		"HOB": fridayPlus2,

		// Periodica runs three weeks ahead and publishes through new year.
		"DPF": fridayPlus3EndOfYear,
		"FPF": fridayPlus3EndOfYear,
		"GPF": fridayPlus3EndOfYear,

		// Subscription lists: one week ahead, Friday cut-over, year-round.
		"FSB": {AddWeeks: 1, ShiftDay: &friday, AllowEndOfYear: true},
		"FSC": {AddWeeks: 1, ShiftDay: &friday, AllowEndOfYear: true},

		// No cut-over day: plain one-week offset, closing days still apply.
		"SNE": {AddWeeks: 1},
		"VUR": {AddWeeks: 1},

		// Same-week Friday cut-over.
		"FLX": {ShiftDay: &friday},

		// Month-numbered codes.
		"LIT": monthCode,
		"VPT": monthCode,

		// Retro and maintenance codes carry a frozen suffix.
		"DBR": {FixedWeekCode: "197604"},
		"DBT": {FixedWeekCode: "999999"},
		"SDT": {FixedWeekCode: "999999"},
		"DIS": {FixedWeekCode: "197605"},
		"ERA": {FixedWeekCode: "999999"},
		"ERE": {FixedWeekCode: "999999"},
		"ERL": {FixedWeekCode: "999999"},
		"ERO": {FixedWeekCode: "999999"},
		"ERP": {FixedWeekCode: "999999"},
		"ERT": {FixedWeekCode: "999999"},
		"NLL": {FixedWeekCode: "999999"},
		"NLY": {FixedWeekCode: "999999"},
		"OPR": {FixedWeekCode: "197601"},
		"UTI": {FixedWeekCode: "197601"},
		"IDU": {FixedWeekCode: "197601"},
	}
}

// Registry is an immutable catalogue-code lookup table.
type Registry struct {
	configs map[string]Config
}

// NewRegistry builds a registry from the given configs. Keys are normalized
// to upper case.
func NewRegistry(configs map[string]Config) *Registry {
	normalized := make(map[string]Config, len(configs))
	for code, cfg := range configs {
		normalized[strings.ToUpper(code)] = cfg
	}
	return &Registry{configs: normalized}
}

// Default returns a registry with the compiled-in rule table.
func Default() *Registry {
	return NewRegistry(defaultConfigs())
}

// Lookup resolves a catalogue code case-insensitively.
func (r *Registry) Lookup(code string) (Config, error) {
	cfg, ok := r.configs[strings.ToUpper(code)]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownCatalogueCode, code)
	}
	return cfg, nil
}

// Codes returns all registered catalogue codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.configs))
	for code := range r.configs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
