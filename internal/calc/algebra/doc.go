// Package algebra implements the math calculators: polynomial root finders,
// descriptive statistics, the Pythagorean solver, percentages, fractions and
// GCD/LCM.
//
// Roots are returned as Root values so real and complex solutions share one
// representation; Root.String renders complex roots as "re + im i".
package algebra
