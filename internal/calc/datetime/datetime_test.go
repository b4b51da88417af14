package datetime_test

import (
	"errors"
	"testing"
	"time"

	"calckit/internal/calc/datetime"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := datetime.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return d
}

func TestAge(t *testing.T) {
	t.Run("should break an age into calendar parts", func(t *testing.T) {
		a, err := datetime.Age(date(t, "1990-05-15"), date(t, "2026-10-19"))
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		want := datetime.Span{Years: 36, Months: 5, Days: 4}
		if a.Span != want {
			t.Fatalf("wanted: %v\ngot: %v", want, a.Span)
		}
		if !a.NextBirthday.Equal(date(t, "2027-05-15")) {
			t.Fatalf("wanted: next birthday 2027-05-15\ngot: %s", a.NextBirthday)
		}
		if a.DaysToBirthday != 208 {
			t.Fatalf("wanted: 208 days\ngot: %d", a.DaysToBirthday)
		}
	})

	t.Run("should count total days for ages over 292 years", func(t *testing.T) {
		a, err := datetime.Age(date(t, "1500-01-01"), date(t, "2026-10-19"))
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if a.TotalDays != 192409 {
			t.Fatalf("wanted: 192409\ngot: %d", a.TotalDays)
		}
		if a.Span != (datetime.Span{Years: 526, Months: 9, Days: 18}) {
			t.Fatalf("wanted: 526 years, 9 months, 18 days\ngot: %v", a.Span)
		}
	})

	t.Run("should borrow days from the previous month", func(t *testing.T) {
		a, _ := datetime.Age(date(t, "2000-01-31"), date(t, "2000-03-01"))
		if a.Span != (datetime.Span{Months: 1, Days: 1}) {
			t.Fatalf("wanted: 1 month 1 day\ngot: %v", a.Span)
		}
	})

	t.Run("should report zero days on the birthday", func(t *testing.T) {
		a, _ := datetime.Age(date(t, "2000-10-19"), date(t, "2026-10-19"))
		if a.DaysToBirthday != 0 || a.Span.Years != 26 {
			t.Fatalf("wanted: birthday today at 26\ngot: %+v", a)
		}
	})

	t.Run("should reject a birth date in the future", func(t *testing.T) {
		if _, err := datetime.Age(date(t, "2030-01-01"), date(t, "2026-01-01")); !errors.Is(err, datetime.ErrBirthInFuture) {
			t.Fatalf("wanted: ErrBirthInFuture\ngot: %v", err)
		}
	})
}

func TestDiff(t *testing.T) {
	d := datetime.Diff(date(t, "2026-10-19"), date(t, "2026-11-02"))
	if d.Days != 14 || d.Weeks != 2 || d.BusinessDays != 10 {
		t.Fatalf("wanted: 14 days, 2 weeks, 10 business days\ngot: %+v", d)
	}

	r := datetime.Diff(date(t, "2026-11-02"), date(t, "2026-10-19"))
	if !r.Reversed || r.Days != 14 {
		t.Fatalf("wanted: reversed 14 days\ngot: %+v", r)
	}

	t.Run("should count days across spans longer than a time.Duration", func(t *testing.T) {
		long := datetime.Diff(date(t, "1000-01-01"), date(t, "2000-01-01"))
		if long.Days != 365242 || long.Span.Years != 1000 {
			t.Fatalf("wanted: 365242 days over 1000 years\ngot: %+v", long)
		}
		if long.Weeks != 365242/7 || long.RemDays != 365242%7 {
			t.Fatalf("wanted: %d weeks %d days\ngot: %d weeks %d days", 365242/7, 365242%7, long.Weeks, long.RemDays)
		}
	})

	// Saturday to Monday spans no business day.
	w := datetime.Diff(date(t, "2026-10-24"), date(t, "2026-10-26"))
	if w.BusinessDays != 0 {
		t.Fatalf("wanted: 0 business days\ngot: %d", w.BusinessDays)
	}
}

func TestAdd(t *testing.T) {
	got, err := datetime.Add(date(t, "2026-01-31"), 1, datetime.UnitMonths)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !got.Equal(date(t, "2026-02-28")) {
		t.Fatalf("wanted: 2026-02-28\ngot: %s", got.Format(datetime.Layout))
	}

	back, _ := datetime.Add(date(t, "2024-02-29"), -1, datetime.UnitYears)
	if !back.Equal(date(t, "2023-02-28")) {
		t.Fatalf("wanted: 2023-02-28\ngot: %s", back.Format(datetime.Layout))
	}

	if _, err := datetime.Add(date(t, "2026-01-01"), 1, "fortnights"); !errors.Is(err, datetime.ErrUnknownUnit) {
		t.Fatalf("wanted: ErrUnknownUnit\ngot: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	info := datetime.Describe(date(t, "2026-10-19"))
	if info.Weekday != "Monday" || info.DayOfYear != 292 || info.LeapYear {
		t.Fatalf("unexpected day info: %+v", info)
	}
}
