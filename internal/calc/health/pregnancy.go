package health

import (
	"errors"
	"time"
)

var (
	ErrFutureLMP     = errors.New("last menstrual period is after the reference date")
	ErrCycleLength   = errors.New("cycle length must be between 20 and 45 days")
	ErrPastGestation = errors.New("more than 44 weeks have passed since the last menstrual period")
)

// GestationDays is the length of a pregnancy counted from the LMP.
const GestationDays = 280

// Pregnancy is a dating estimate anchored on the last menstrual period.
type Pregnancy struct {
	DueDate        time.Time `json:"due_date"`
	ConceptionDate time.Time `json:"conception_date"`
	Weeks          int       `json:"weeks"`
	Days           int       `json:"days"`
	Trimester      int       `json:"trimester"`
	DaysRemaining  int       `json:"days_remaining"`
}

// DueDate applies Naegele's rule (LMP + 280 days), shifted by how far the
// cycle length differs from 28 days, and reports gestational age on the
// reference date.
func DueDate(lmp, on time.Time, cycleDays int) (Pregnancy, error) {
	if cycleDays < 20 || cycleDays > 45 {
		return Pregnancy{}, ErrCycleLength
	}
	lmp = truncateDay(lmp)
	on = truncateDay(on)
	if on.Before(lmp) {
		return Pregnancy{}, ErrFutureLMP
	}

	adjust := cycleDays - 28
	p := Pregnancy{
		DueDate:        lmp.AddDate(0, 0, GestationDays+adjust),
		ConceptionDate: lmp.AddDate(0, 0, 14+adjust),
	}
	elapsed := daysBetween(lmp, on)
	if elapsed > 44*7 {
		return Pregnancy{}, ErrPastGestation
	}
	p.Weeks, p.Days = elapsed/7, elapsed%7
	switch {
	case p.Weeks < 14:
		p.Trimester = 1
	case p.Weeks < 28:
		p.Trimester = 2
	default:
		p.Trimester = 3
	}
	p.DaysRemaining = daysBetween(on, p.DueDate)
	return p, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}
