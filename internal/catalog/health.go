package catalog

import (
	"fmt"
	"time"

	"calckit/internal/calc/datetime"
	"calckit/internal/calc/health"
	"calckit/internal/domain"
)

var sexOptions = []domain.Option{opt("female", "Female"), opt("male", "Male")}

var activityOptions = []domain.Option{
	opt(string(health.Sedentary), "Sedentary (little or no exercise)"),
	opt(string(health.Light), "Light (1–3 days a week)"),
	opt(string(health.Moderate), "Moderate (3–5 days a week)"),
	opt(string(health.Active), "Active (6–7 days a week)"),
	opt(string(health.VeryActive), "Very active (physical job or twice daily)"),
}

func healthCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "bmi",
			Title:    "BMI Calculator",
			Category: domain.CategoryHealth,
			Summary:  "Body mass index with its WHO weight category and healthy weight range.",
			Fields: []domain.Field{
				selectField("units", "Units", "metric", opt("metric", "Metric (kg, cm)"), opt("imperial", "Imperial (lb, in)")),
				numberField("weight", "Weight", "70"),
				numberField("height", "Height", "175"),
			},
			Compute: computeBMI,
		},
		{
			Slug:     "bmr",
			Title:    "BMR Calculator",
			Category: domain.CategoryHealth,
			Summary:  "Basal metabolic rate by the Mifflin-St Jeor equation.",
			Fields: []domain.Field{
				selectField("sex", "Sex", "female", sexOptions...),
				integerField("age", "Age (years)", "30"),
				numberField("weight", "Weight (kg)", "65"),
				numberField("height", "Height (cm)", "168"),
			},
			Compute: computeBMR,
		},
		{
			Slug:     "tdee",
			Title:    "TDEE Calculator",
			Category: domain.CategoryHealth,
			Summary:  "Total daily energy expenditure from BMR and activity level.",
			Fields: []domain.Field{
				selectField("sex", "Sex", "female", sexOptions...),
				integerField("age", "Age (years)", "30"),
				numberField("weight", "Weight (kg)", "65"),
				numberField("height", "Height (cm)", "168"),
				selectField("activity", "Activity level", string(health.Moderate), activityOptions...),
			},
			Compute: computeTDEE,
		},
		{
			Slug:     "ideal-weight",
			Title:    "Ideal Weight Calculator",
			Category: domain.CategoryHealth,
			Summary:  "Ideal body weight by the Devine, Robinson and Miller formulas.",
			Fields: []domain.Field{
				selectField("sex", "Sex", "female", sexOptions...),
				numberField("height", "Height (cm)", "168"),
			},
			Compute: computeIdealWeight,
		},
		{
			Slug:     "body-fat",
			Title:    "Body Fat Calculator",
			Category: domain.CategoryHealth,
			Summary:  "Body fat percentage by the US Navy circumference method.",
			Fields: []domain.Field{
				selectField("sex", "Sex", "male", sexOptions...),
				numberField("height", "Height (cm)", "178"),
				numberField("neck", "Neck (cm)", "38"),
				numberField("waist", "Waist (cm)", "86"),
				help(optional(numberField("hip", "Hip (cm)", "")), "Required for women.", ""),
			},
			Compute: computeBodyFat,
		},
		{
			Slug:     "due-date",
			Title:    "Pregnancy Due Date Calculator",
			Category: domain.CategoryHealth,
			Summary:  "Estimated due date, gestational age and trimester from the last menstrual period.",
			Fields: []domain.Field{
				dateField("lmp", "First day of last period", ""),
				help(optional(integerField("cycle", "Average cycle length (days)", "28")), "Between 20 and 45 days.", "28"),
				help(optional(dateField("on", "As of", "")), "Defaults to today.", ""),
			},
			Compute: computeDueDate,
		},
	}
}

func computeBMI(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	units := f.Choice("units", []domain.Option{opt("metric", ""), opt("imperial", "")})
	w, h := f.Positive("weight"), f.Positive("height")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	var (
		b   health.BodyMass
		err error
	)
	if units == "imperial" {
		b, err = health.BMIImperial(w, h)
	} else {
		b, err = health.BMI(w, h)
	}
	if !f.Check("weight", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("BMI %s (%s)", fixed(b.BMI, 1), b.Category)}
	res.Add("BMI", fixed(b.BMI, 1)).Add("Category", b.Category)
	if units == "imperial" {
		res.Add("Healthy weight", fmt.Sprintf("%s–%s lb", fixed(b.HealthyMin/health.KgPerPound, 1), fixed(b.HealthyMax/health.KgPerPound, 1)))
	} else {
		res.Add("Healthy weight", fmt.Sprintf("%s–%s kg", fixed(b.HealthyMin, 1), fixed(b.HealthyMax, 1)))
	}
	return res, nil
}

// person reads the fields shared by the energy calculators.
func person(f *form) (health.Sex, int, float64, float64) {
	sex, err := health.ParseSex(f.Text("sex"))
	if err != nil {
		f.fail("sex", err)
	}
	return sex, f.Int("age"), f.Positive("weight"), f.Positive("height")
}

var personFields = []blame{
	{health.ErrInvalidAge, "age"},
	{health.ErrNonPositive, "weight"},
	{health.ErrUnknownSex, "sex"},
}

func computeBMR(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	sex, age, w, h := person(f)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	bmr, err := health.BMR(sex, age, w, h)
	if !f.Blame(err, personFields) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("BMR: %s kcal/day", fixed(bmr, 0))}
	res.Add("Basal metabolic rate", fixed(bmr, 0)+" kcal/day")
	for _, a := range health.Activities {
		factor, _ := a.Factor()
		res.Add(activityLabel(a), fixed(bmr*factor, 0)+" kcal/day")
	}
	return res, nil
}

func computeTDEE(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	sex, age, w, h := person(f)
	level := f.Choice("activity", activityOptions)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	e, err := health.TDEE(sex, age, w, h, health.Activity(level))
	if !f.Blame(err, personFields) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("TDEE: %s kcal/day", fixed(e.TDEE, 0))}
	res.Add("BMR", fixed(e.BMR, 0)+" kcal/day").
		Add("TDEE", fixed(e.TDEE, 0)+" kcal/day").
		Add("Lose 0.5 kg/week", fixed(e.Lose, 0)+" kcal/day").
		Add("Gain 0.5 kg/week", fixed(e.Gain, 0)+" kcal/day")
	return res, nil
}

func activityLabel(a health.Activity) string {
	for _, o := range activityOptions {
		if o.Value == string(a) {
			return o.Label
		}
	}
	return string(a)
}

func computeIdealWeight(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	sex, err := health.ParseSex(f.Text("sex"))
	if err != nil {
		f.fail("sex", err)
	}
	h := f.Positive("height")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	w, err := health.IdealWeight(sex, h)
	if !f.Check("height", err) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Ideal weight: %s kg (Devine)", fixed(w.Devine, 1))}
	res.Add("Devine", fixed(w.Devine, 1)+" kg").
		Add("Robinson", fixed(w.Robinson, 1)+" kg").
		Add("Miller", fixed(w.Miller, 1)+" kg")
	return res, nil
}

func computeBodyFat(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	sex, err := health.ParseSex(f.Text("sex"))
	if err != nil {
		f.fail("sex", err)
	}
	h, neck, waist := f.Positive("height"), f.Positive("neck"), f.Positive("waist")
	hip := f.OptFloat("hip", 0)
	if sex == health.Female && hip <= 0 {
		f.fail("hip", errRequired)
	}
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	bf, err := health.BodyFat(sex, h, neck, waist, hip)
	if !f.Blame(err, []blame{{health.ErrMeasurements, "waist"}}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Body fat: %s", pct(bf))}
	res.Add("Body fat", pct(bf)).Add("Category", bodyFatCategory(sex, bf))
	return res, nil
}

// bodyFatCategory follows the American Council on Exercise bands.
func bodyFatCategory(sex health.Sex, pct float64) string {
	bands := []float64{6, 14, 18, 25}
	if sex == health.Female {
		bands = []float64{14, 21, 25, 32}
	}
	switch {
	case pct < bands[0]:
		return "Essential fat"
	case pct < bands[1]:
		return "Athletes"
	case pct < bands[2]:
		return "Fitness"
	case pct < bands[3]:
		return "Average"
	default:
		return "Obese"
	}
}

func computeDueDate(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	lmp := f.Date("lmp")
	cycle := f.OptInt("cycle", 28)
	on := f.DateOr("on", now())
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	p, err := health.DueDate(lmp, on, cycle)
	if !f.Blame(err, []blame{
		{health.ErrCycleLength, "cycle"},
		{health.ErrFutureLMP, "lmp"},
		{health.ErrPastGestation, "lmp"},
	}) {
		return domain.Result{}, f.Err()
	}
	due := p.DueDate.Format(datetime.Layout)
	res := domain.Result{Summary: fmt.Sprintf("Due date: %s (%s)", due, p.DueDate.Weekday())}
	res.Add("Estimated due date", due).
		Add("Estimated conception", p.ConceptionDate.Format(datetime.Layout)).
		Add("Gestational age", fmt.Sprintf("%s, %s", plural(p.Weeks, "week"), plural(p.Days, "day"))).
		Add("Trimester", ordinal(p.Trimester)).
		Add("Days until due date", count(p.DaysRemaining))
	return res, nil
}

// now is the reference clock for date calculators that default to today.
var now = func() time.Time { return time.Now().UTC() }
