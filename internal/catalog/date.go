package catalog

import (
	"fmt"

	"calckit/internal/calc/datetime"
	"calckit/internal/domain"
)

var unitOptions = []domain.Option{
	opt(string(datetime.UnitDays), "Days"),
	opt(string(datetime.UnitWeeks), "Weeks"),
	opt(string(datetime.UnitMonths), "Months"),
	opt(string(datetime.UnitYears), "Years"),
}

func dateCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "age",
			Title:    "Age Calculator",
			Category: domain.CategoryDate,
			Summary:  "Exact age in years, months and days, and the countdown to the next birthday.",
			Fields: []domain.Field{
				dateField("birth", "Date of birth", ""),
				help(optional(dateField("on", "Age on", "")), "Defaults to today.", ""),
			},
			Compute: computeAge,
		},
		{
			Slug:     "date-difference",
			Title:    "Date Difference Calculator",
			Category: domain.CategoryDate,
			Summary:  "Days, weeks, months and business days between two dates.",
			Fields: []domain.Field{
				dateField("from", "Start date", ""),
				dateField("to", "End date", ""),
			},
			Compute: computeDateDifference,
		},
		{
			Slug:     "date-add",
			Title:    "Add or Subtract Dates",
			Category: domain.CategoryDate,
			Summary:  "Move a date forward or back by days, weeks, months or years.",
			Fields: []domain.Field{
				dateField("date", "Start date", ""),
				help(integerField("amount", "Amount", "30"), "Use a negative number to go back in time.", ""),
				selectField("unit", "Unit", string(datetime.UnitDays), unitOptions...),
			},
			Compute: computeDateAdd,
		},
		{
			Slug:     "day-of-week",
			Title:    "Day of the Week Calculator",
			Category: domain.CategoryDate,
			Summary:  "The weekday, day of the year and ISO week of any date.",
			Fields:   []domain.Field{dateField("date", "Date", "")},
			Compute:  computeDayOfWeek,
		},
	}
}

func computeAge(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	birth := f.Date("birth")
	on := f.DateOr("on", now())
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	a, err := datetime.Age(birth, on)
	if !f.Check("birth", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s, %s, %s",
		plural(a.Span.Years, "year"), plural(a.Span.Months, "month"), plural(a.Span.Days, "day"))}
	res.Add("Age", res.Summary).
		Add("Total months", count(a.TotalMonths)).
		Add("Total weeks", count(a.TotalWeeks)).
		Add("Total days", count(a.TotalDays)).
		Add("Born on a", a.BornOn).
		Add("Next birthday", fmt.Sprintf("%s (%s)", a.NextBirthday.Format(datetime.Layout), ordinal(a.NextBirthday.Year()-birth.Year()))).
		Add("Days until next birthday", count(a.DaysToBirthday))
	return res, nil
}

func computeDateDifference(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	from, to := f.Date("from"), f.Date("to")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	d := datetime.Diff(from, to)
	res := domain.Result{Summary: plural(d.Days, "day")}
	res.Add("Total days", count(d.Days)).
		Add("Weeks and days", fmt.Sprintf("%s, %s", plural(d.Weeks, "week"), plural(d.RemDays, "day"))).
		Add("Calendar span", fmt.Sprintf("%s, %s, %s", plural(d.Span.Years, "year"), plural(d.Span.Months, "month"), plural(d.Span.Days, "day"))).
		Add("Business days", count(d.BusinessDays))
	if d.Reversed {
		res.Notes = append(res.Notes, "The end date is before the start date; the dates were swapped.")
	}
	return res, nil
}

func computeDateAdd(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	date := f.Date("date")
	amount := f.Int("amount")
	unit := f.Choice("unit", unitOptions)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	out, err := datetime.Add(date, amount, datetime.Unit(unit))
	if !f.Blame(err, []blame{{datetime.ErrAmountRange, "amount"}, {datetime.ErrUnknownUnit, "unit"}}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s (%s)", out.Format(datetime.Layout), out.Weekday())}
	res.Add("Result", out.Format(datetime.Layout)).Add("Weekday", out.Weekday().String())
	return res, nil
}

func computeDayOfWeek(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	date := f.Date("date")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	info := datetime.Describe(date)
	leap := "no"
	if info.LeapYear {
		leap = "yes"
	}
	res := domain.Result{Summary: fmt.Sprintf("%s is a %s", date.Format(datetime.Layout), info.Weekday)}
	res.Add("Weekday", info.Weekday).
		Add("Day of year", ordinal(info.DayOfYear)).
		Add("ISO week", fmt.Sprintf("%d-W%02d", info.ISOYear, info.ISOWeek)).
		Add("Leap year", leap)
	return res, nil
}
