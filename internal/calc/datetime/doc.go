// Package datetime implements the age and date calculators. All dates are
// treated as calendar days in UTC; times of day are discarded.
package datetime
