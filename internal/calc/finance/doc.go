// Package finance implements the financial calculators.
//
// Contents
//
//   - Loan amortization schedules and level monthly payments (Amortize,
//     MonthlyPayment)
//   - Debt payoff and savings-goal simulations (PayOffDebt, ReachSavingsGoal)
//   - Simple and compound interest (SimpleInterest, CompoundInterest)
//   - Home equity and loan-to-value (HomeEquity)
//   - Retail helpers: discount, sales tax, tip split and return on investment
//
// # Simulations
//
// The iterative simulators step month by month, applying interest before the
// payment or contribution, and never run past MaxPeriods months. Rates are
// nominal annual percentages compounded monthly unless stated otherwise.
package finance
