// Package health implements body-metric calculators: BMI, BMR/TDEE, ideal
// weight, body fat and pregnancy dating. Inputs are metric; the imperial
// helpers convert before calling the metric formulas.
package health
