package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the date format accepted by Parse and used in results.
const Layout = "2006-01-02"

var (
	ErrBirthInFuture = errors.New("birth date is after the reference date")
	ErrUnknownUnit   = errors.New("unit must be days, weeks, months or years")
	ErrAmountRange   = errors.New("amount must be between -100000 and 100000")
)

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Span is a calendar difference between two days.
type Span struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d years, %d months, %d days", s.Years, s.Months, s.Days)
}

// calendarSpan breaks from..to (from <= to) into whole months, counted with
// end-of-month clamping, plus leftover days.
func calendarSpan(from, to time.Time) Span {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	anchor := addMonths(from, months)
	if anchor.After(to) {
		months--
		anchor = addMonths(from, months)
	}
	return Span{Years: months / 12, Months: months % 12, Days: daysBetween(anchor, to)}
}

// daysBetween counts calendar days from a to b. It works on Unix seconds
// since time.Duration saturates after about 292 years.
func daysBetween(a, b time.Time) int {
	return int((Day(b).Unix() - Day(a).Unix()) / 86400)
}

// AgeResult describes how old someone is on a given day.
type AgeResult struct {
	Span           Span      `json:"span"`
	TotalDays      int       `json:"total_days"`
	TotalWeeks     int       `json:"total_weeks"`
	TotalMonths    int       `json:"total_months"`
	NextBirthday   time.Time `json:"next_birthday"`
	DaysToBirthday int       `json:"days_to_birthday"`
	BornOn         string    `json:"born_on"`
}

// Age computes the age on day on of someone born on birth.
func Age(birth, on time.Time) (AgeResult, error) {
	birth, on = Day(birth), Day(on)
	if birth.After(on) {
		return AgeResult{}, ErrBirthInFuture
	}
	span := calendarSpan(birth, on)
	total := daysBetween(birth, on)

	next := anniversary(birth, on.Year())
	if next.Before(on) {
		next = anniversary(birth, on.Year()+1)
	}
	return AgeResult{
		Span:           span,
		TotalDays:      total,
		TotalWeeks:     total / 7,
		TotalMonths:    span.Years*12 + span.Months,
		NextBirthday:   next,
		DaysToBirthday: daysBetween(on, next),
		BornOn:         birth.Weekday().String(),
	}, nil
}

// anniversary returns birth's month/day in year; Feb 29 falls on Mar 1 in
// common years.
func anniversary(birth time.Time, year int) time.Time {
	return time.Date(year, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
}

// Difference is the distance between two days.
type Difference struct {
	Span         Span `json:"span"`
	Days         int  `json:"days"`
	Weeks        int  `json:"weeks"`
	RemDays      int  `json:"remaining_days"`
	BusinessDays int  `json:"business_days"`
	Reversed     bool `json:"reversed"`
}

// Diff measures from..to. When to precedes from the dates are swapped and
// Reversed is set. Business days count Monday–Friday in [from, to).
func Diff(from, to time.Time) Difference {
	from, to = Day(from), Day(to)
	var d Difference
	if to.Before(from) {
		from, to = to, from
		d.Reversed = true
	}
	d.Span = calendarSpan(from, to)
	d.Days = daysBetween(from, to)
	d.Weeks, d.RemDays = d.Days/7, d.Days%7
	d.BusinessDays = businessDays(from, d.Days)
	return d
}

func businessDays(from time.Time, days int) int {
	full := days / 7
	n := full * 5
	wd := from.Weekday()
	for i := 0; i < days%7; i++ {
		if day := (wd + time.Weekday(i)) % 7; day != time.Saturday && day != time.Sunday {
			n++
		}
	}
	return n
}

// Unit of date arithmetic.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
	UnitYears  Unit = "years"
)

// Add moves date by amount units. Month and year arithmetic clamps to the
// end of the target month, so Jan 31 + 1 month is Feb 28 (or 29).
func Add(date time.Time, amount int, unit Unit) (time.Time, error) {
	if amount < -100000 || amount > 100000 {
		return time.Time{}, ErrAmountRange
	}
	date = Day(date)
	switch unit {
	case UnitDays:
		return date.AddDate(0, 0, amount), nil
	case UnitWeeks:
		return date.AddDate(0, 0, 7*amount), nil
	case UnitMonths:
		return addMonths(date, amount), nil
	case UnitYears:
		return addMonths(date, 12*amount), nil
	default:
		return time.Time{}, ErrUnknownUnit
	}
}

func addMonths(date time.Time, months int) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := date.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DayInfo describes a single calendar day.
type DayInfo struct {
	Weekday   string `json:"weekday"`
	DayOfYear int    `json:"day_of_year"`
	ISOYear   int    `json:"iso_year"`
	ISOWeek   int    `json:"iso_week"`
	LeapYear  bool   `json:"leap_year"`
}

// Describe reports the weekday, ordinal and ISO week of date.
func Describe(date time.Time) DayInfo {
	date = Day(date)
	y, w := date.ISOWeek()
	year := date.Year()
	return DayInfo{
		Weekday:   date.Weekday().String(),
		DayOfYear: date.YearDay(),
		ISOYear:   y,
		ISOWeek:   w,
		LeapYear:  year%4 == 0 && (year%100 != 0 || year%400 == 0),
	}
}
