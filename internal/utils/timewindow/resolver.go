// Package timewindow computes the calendar-month windows used by every
// monthly aggregation.
package timewindow

import (
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

const (
	DefaultTrendMonths   = 6
	DefaultSummaryMonths = 3
)

var monthLabels = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"it": {"Gen", "Feb", "Mar", "Apr", "Mag", "Giu", "Lug", "Ago", "Set", "Ott", "Nov", "Dic"},
	"de": {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	"fr": {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"pt": {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
}

// Resolver turns reference instants into month windows for one location and locale.
type Resolver struct {
	loc    *time.Location
	labels [12]string
}

// NewResolver creates a resolver. A nil location means UTC; an unknown
// locale falls back to English labels. Locales like "it-IT" match "it".
func NewResolver(loc *time.Location, locale string) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	labels, ok := monthLabels[lang]
	if !ok {
		labels = monthLabels["en"]
	}
	return &Resolver{loc: loc, labels: labels}
}

// Location returns the resolver's time zone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// MonthWindow returns the calendar month containing reference. Explicit
// bounds are used verbatim; a missing bound falls back to the month bound.
func (r *Resolver) MonthWindow(reference time.Time, explicitStart, explicitEnd *time.Time) domain.Window {
	w := r.monthOf(reference.In(r.loc).Year(), reference.In(r.loc).Month())
	if explicitStart != nil {
		w.Start = *explicitStart
	}
	if explicitEnd != nil {
		w.End = *explicitEnd
	}
	return w
}

// RecentMonths returns count month windows, oldest first, the last one being
// the month that contains reference.
func (r *Resolver) RecentMonths(reference time.Time, count int) []domain.MonthWindow {
	if count <= 0 {
		return []domain.MonthWindow{}
	}
	local := reference.In(r.loc)
	out := make([]domain.MonthWindow, 0, count)
	for i := count - 1; i >= 0; i-- {
		// time.Date normalises negative months across year boundaries.
		first := time.Date(local.Year(), local.Month()-time.Month(i), 1, 0, 0, 0, 0, r.loc)
		out = append(out, domain.MonthWindow{
			Label:  r.Label(first.Month()),
			Window: r.monthOf(first.Year(), first.Month()),
		})
	}
	return out
}

// Label returns the short month name in the resolver's locale.
func (r *Resolver) Label(m time.Month) string {
	return r.labels[m-1]
}

// monthOf ends the window on "day 0 of the following month", i.e. the last
// day of the month, at its final nanosecond.
func (r *Resolver) monthOf(year int, month time.Month) domain.Window {
	return domain.Window{
		Start: time.Date(year, month, 1, 0, 0, 0, 0, r.loc),
		End:   time.Date(year, month+1, 0, 23, 59, 59, int(time.Second-time.Nanosecond), r.loc),
	}
}
