package health

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrNonPositive     = errors.New("measurements must be greater than zero")
	ErrInvalidAge      = errors.New("age must be between 15 and 100")
	ErrUnknownSex      = errors.New("sex must be male or female")
	ErrUnknownActivity = errors.New("unknown activity level")
	ErrMeasurements    = errors.New("waist must be larger than neck")
)

// Sex selects the sex-specific coefficients of a formula.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"m" and "female"/"f" in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return "", ErrUnknownSex
	}
}

// Conversions used by the imperial forms.
const (
	KgPerPound = 0.45359237
	CmPerInch  = 2.54
)

// BodyMass is a BMI reading.
type BodyMass struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	// Healthy weight range for the given height, in kg.
	HealthyMin float64 `json:"healthy_min"`
	HealthyMax float64 `json:"healthy_max"`
}

// BMI computes body mass index from kilograms and centimetres.
func BMI(weightKg, heightCm float64) (BodyMass, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BodyMass{}, ErrNonPositive
	}
	m := heightCm / 100
	bmi := weightKg / (m * m)
	return BodyMass{
		BMI:        bmi,
		Category:   bmiCategory(bmi),
		HealthyMin: 18.5 * m * m,
		HealthyMax: 24.9 * m * m,
	}, nil
}

// BMIImperial computes body mass index from pounds and inches.
func BMIImperial(weightLb, heightIn float64) (BodyMass, error) {
	return BMI(weightLb*KgPerPound, heightIn*CmPerInch)
}

// bmiCategory follows the WHO adult classification.
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 16:
		return "Severely underweight"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obese (class I)"
	case bmi < 40:
		return "Obese (class II)"
	default:
		return "Obese (class III)"
	}
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(sex Sex, age int, weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrNonPositive
	}
	if age < 15 || age > 100 {
		return 0, ErrInvalidAge
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case Male:
		return base + 5, nil
	case Female:
		return base - 161, nil
	default:
		return 0, ErrUnknownSex
	}
}

// Activity is a TDEE activity level.
type Activity string

const (
	Sedentary  Activity = "sedentary"
	Light      Activity = "light"
	Moderate   Activity = "moderate"
	Active     Activity = "active"
	VeryActive Activity = "very_active"
)

// Activities lists the levels from least to most active.
var Activities = []Activity{Sedentary, Light, Moderate, Active, VeryActive}

// Factor returns the Harris-Benedict activity multiplier.
func (a Activity) Factor() (float64, error) {
	switch a {
	case Sedentary:
		return 1.2, nil
	case Light:
		return 1.375, nil
	case Moderate:
		return 1.55, nil
	case Active:
		return 1.725, nil
	case VeryActive:
		return 1.9, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, string(a))
	}
}

// Energy is daily energy expenditure.
type Energy struct {
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
	// Calorie targets for ±0.5 kg a week.
	Lose float64 `json:"lose"`
	Gain float64 `json:"gain"`
}

// TDEE scales the basal metabolic rate by the activity factor.
func TDEE(sex Sex, age int, weightKg, heightCm float64, level Activity) (Energy, error) {
	bmr, err := BMR(sex, age, weightKg, heightCm)
	if err != nil {
		return Energy{}, err
	}
	f, err := level.Factor()
	if err != nil {
		return Energy{}, err
	}
	tdee := bmr * f
	return Energy{BMR: bmr, TDEE: tdee, Lose: tdee - 500, Gain: tdee + 500}, nil
}

// IdealWeights holds ideal body weight estimates in kg.
type IdealWeights struct {
	Devine   float64 `json:"devine"`
	Robinson float64 `json:"robinson"`
	Miller   float64 `json:"miller"`
}

// IdealWeight estimates ideal body weight from height. The formulas are
// defined for heights of five feet and above.
func IdealWeight(sex Sex, heightCm float64) (IdealWeights, error) {
	if heightCm < 152.4 {
		return IdealWeights{}, errors.New("height must be at least 152.4 cm (5 ft)")
	}
	over := heightCm/CmPerInch - 60
	switch sex {
	case Male:
		return IdealWeights{Devine: 50 + 2.3*over, Robinson: 52 + 1.9*over, Miller: 56.2 + 1.41*over}, nil
	case Female:
		return IdealWeights{Devine: 45.5 + 2.3*over, Robinson: 49 + 1.7*over, Miller: 53.1 + 1.36*over}, nil
	default:
		return IdealWeights{}, ErrUnknownSex
	}
}

// BodyFat estimates body fat percentage with the US Navy circumference
// method. Hip is only used for women. All measurements are in cm.
func BodyFat(sex Sex, heightCm, neckCm, waistCm, hipCm float64) (float64, error) {
	if heightCm <= 0 || neckCm <= 0 || waistCm <= 0 {
		return 0, ErrNonPositive
	}
	var pct float64
	switch sex {
	case Male:
		if waistCm <= neckCm {
			return 0, ErrMeasurements
		}
		pct = 495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450
	case Female:
		if hipCm <= 0 {
			return 0, ErrNonPositive
		}
		if waistCm+hipCm <= neckCm {
			return 0, ErrMeasurements
		}
		pct = 495/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450
	default:
		return 0, ErrUnknownSex
	}
	if pct < 0 {
		pct = 0
	}
	return pct, nil
}
