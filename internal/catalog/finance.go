package catalog

import (
	"fmt"
	"strconv"

	"calckit/internal/calc/finance"
	"calckit/internal/domain"
)

func financeCalculators() []domain.Calculator {
	return []domain.Calculator{
		{
			Slug:     "amortization",
			Title:    "Loan Amortization Schedule",
			Category: domain.CategoryFinance,
			Summary:  "Monthly payment and the month-by-month split between interest and principal.",
			Fields: []domain.Field{
				numberField("principal", "Loan amount ($)", "250000"),
				numberField("rate", "Annual interest rate (%)", "6.5"),
				integerField("years", "Term (years)", "30"),
			},
			Compute: computeAmortization,
		},
		{
			Slug:     "debt-payoff",
			Title:    "Debt Payoff Calculator",
			Category: domain.CategoryFinance,
			Summary:  "How long a fixed monthly payment takes to clear a balance, and the interest it costs.",
			Fields: []domain.Field{
				numberField("balance", "Current balance ($)", "5000"),
				numberField("rate", "Annual interest rate (%)", "19.99"),
				numberField("payment", "Monthly payment ($)", "200"),
			},
			Compute: computeDebtPayoff,
		},
		{
			Slug:     "savings-goal",
			Title:    "Savings Goal Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Months of saving needed to reach a target balance with monthly contributions.",
			Fields: []domain.Field{
				numberField("goal", "Savings goal ($)", "20000"),
				numberField("initial", "Starting balance ($)", "1000"),
				numberField("monthly", "Monthly contribution ($)", "400"),
				numberField("rate", "Annual interest rate (%)", "4"),
			},
			Compute: computeSavingsGoal,
		},
		{
			Slug:     "loan-payment",
			Title:    "Loan Payment Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Monthly payment, total paid and total interest for a fixed-rate loan.",
			Fields: []domain.Field{
				numberField("principal", "Loan amount ($)", "25000"),
				numberField("rate", "Annual interest rate (%)", "7"),
				integerField("months", "Term (months)", "60"),
			},
			Compute: computeLoanPayment,
		},
		{
			Slug:     "simple-interest",
			Title:    "Simple Interest Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Interest earned without compounding: principal × rate × time.",
			Fields: []domain.Field{
				numberField("principal", "Principal ($)", "10000"),
				numberField("rate", "Annual interest rate (%)", "5"),
				numberField("years", "Time (years)", "3"),
			},
			Compute: computeSimpleInterest,
		},
		{
			Slug:     "compound-interest",
			Title:    "Compound Interest Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Growth of an investment with compounding and optional monthly contributions.",
			Fields: []domain.Field{
				numberField("principal", "Initial investment ($)", "10000"),
				numberField("rate", "Annual interest rate (%)", "7"),
				integerField("years", "Years", "10"),
				selectField("frequency", "Compounding", "12",
					opt("1", "Annually"), opt("4", "Quarterly"), opt("12", "Monthly"), opt("365", "Daily")),
				optional(numberField("monthly", "Monthly contribution ($)", "0")),
			},
			Compute: computeCompoundInterest,
		},
		{
			Slug:     "home-equity",
			Title:    "Home Equity Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Equity, loan-to-value and how much can be borrowed against a home.",
			Fields: []domain.Field{
				numberField("value", "Home value ($)", "500000"),
				numberField("balance", "Mortgage balance ($)", "300000"),
				help(numberField("max_ltv", "Maximum combined LTV (%)", "85"),
					"Lenders typically cap total borrowing at 80–90% of the home's value.", "85"),
			},
			Compute: computeHomeEquity,
		},
		{
			Slug:     "discount",
			Title:    "Discount Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Sale price and savings after a percentage discount.",
			Fields: []domain.Field{
				numberField("price", "Original price ($)", "80"),
				numberField("percent", "Discount (%)", "25"),
			},
			Compute: computeDiscount,
		},
		{
			Slug:     "sales-tax",
			Title:    "Sales Tax Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Tax owed and total price for a given sales tax rate.",
			Fields: []domain.Field{
				numberField("price", "Price before tax ($)", "100"),
				numberField("rate", "Sales tax rate (%)", "8.25"),
			},
			Compute: computeSalesTax,
		},
		{
			Slug:     "tip",
			Title:    "Tip Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Tip amount and each person's share of the bill.",
			Fields: []domain.Field{
				numberField("bill", "Bill amount ($)", "86.40"),
				numberField("percent", "Tip (%)", "18"),
				integerField("people", "Number of people", "2"),
			},
			Compute: computeTip,
		},
		{
			Slug:     "roi",
			Title:    "Return on Investment Calculator",
			Category: domain.CategoryFinance,
			Summary:  "Total and annualized return between an initial and final value.",
			Fields: []domain.Field{
				numberField("initial", "Amount invested ($)", "10000"),
				numberField("final", "Final value ($)", "15000"),
				optional(numberField("years", "Holding period (years)", "")),
			},
			Compute: computeROI,
		},
	}
}

func computeAmortization(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	principal := f.Float("principal")
	rate := f.Float("rate")
	years := f.Int("years")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	s, err := finance.Amortize(principal, rate, years*12)
	if !f.Blame(err, []blame{
		{finance.ErrInvalidTerm, "years"},
		{finance.ErrNegativeRate, "rate"},
		{finance.ErrNegativeAmount, "principal"},
	}) {
		return domain.Result{}, f.Err()
	}
	if len(s.Periods) == 0 {
		return domain.Result{Summary: "Nothing to repay."}, nil
	}

	res := domain.Result{Summary: fmt.Sprintf("Monthly payment: %s", money(s.Payment))}
	res.Add("Monthly payment", money(s.Payment)).
		Add("Number of payments", count(len(s.Periods))).
		Add("Total interest", money(s.TotalInterest)).
		Add("Total paid", money(s.TotalPaid))
	res.Table = periodTable(s.Periods)
	return res, nil
}

func computeDebtPayoff(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	balance := f.Float("balance")
	rate := f.Float("rate")
	payment := f.Float("payment")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	p, err := finance.PayOffDebt(balance, rate, payment)
	if !f.Blame(err, []blame{
		{finance.ErrNeverPaysOff, "payment"},
		{finance.ErrInvalidPayment, "payment"},
		{finance.ErrNegativeRate, "rate"},
	}) {
		return domain.Result{}, f.Err()
	}
	if p.Months == 0 {
		return domain.Result{Summary: "There is no balance to pay off."}, nil
	}

	res := domain.Result{Summary: fmt.Sprintf("Debt-free in %s", duration(p.Months))}
	res.Add("Months to pay off", count(p.Months)).
		Add("Total interest", money(p.TotalInterest)).
		Add("Total paid", money(p.TotalPaid)).
		Add("Final payment", money(p.Periods[len(p.Periods)-1].Payment))
	res.Table = periodTable(p.Periods)
	return res, nil
}

func periodTable(periods []finance.Period) *domain.Table {
	t := &domain.Table{Columns: []string{"Month", "Payment", "Interest", "Principal", "Balance"}}
	for _, p := range periods {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(p.Number), money(p.Payment), money(p.Interest), money(p.Principal), money(p.Balance),
		})
	}
	return t
}

func computeSavingsGoal(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	goal := f.Float("goal")
	initial := f.Float("initial")
	monthly := f.Float("monthly")
	rate := f.Float("rate")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	plan, err := finance.ReachSavingsGoal(goal, initial, monthly, rate)
	if !f.Blame(err, []blame{
		{finance.ErrInvalidGoal, "goal"},
		{finance.ErrGoalUnreachable, "monthly"},
		{finance.ErrNegativeRate, "rate"},
		{finance.ErrNegativeAmount, "initial"},
	}) {
		return domain.Result{}, f.Err()
	}
	if plan.Months == 0 {
		res := domain.Result{Summary: "Goal already reached."}
		res.Add("Current balance", money(initial))
		return res, nil
	}

	res := domain.Result{Summary: fmt.Sprintf("Goal reached in %s", duration(plan.Months))}
	res.Add("Months required", count(plan.Months)).
		Add("Final balance", money(plan.FinalBalance)).
		Add("Total contributed", money(plan.TotalContributed)).
		Add("Interest earned", money(plan.TotalInterest))
	t := &domain.Table{Columns: []string{"Month", "Contribution", "Interest", "Balance"}}
	for _, p := range plan.Periods {
		t.Rows = append(t.Rows, []string{strconv.Itoa(p.Number), money(p.Contribution), money(p.Interest), money(p.Balance)})
	}
	res.Table = t
	return res, nil
}

func computeLoanPayment(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	principal := f.Float("principal")
	rate := f.Float("rate")
	months := f.Int("months")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	l, err := finance.LoanPayment(principal, rate, months)
	if !f.Blame(err, []blame{
		{finance.ErrInvalidTerm, "months"},
		{finance.ErrNegativeRate, "rate"},
		{finance.ErrNegativeAmount, "principal"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Monthly payment: %s", money(l.Payment))}
	res.Add("Monthly payment", money(l.Payment)).
		Add("Total paid", money(l.TotalPaid)).
		Add("Total interest", money(l.TotalInterest))
	return res, nil
}

func computeSimpleInterest(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	principal := f.Float("principal")
	rate := f.Float("rate")
	years := f.Float("years")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	si, err := finance.Simple(principal, rate, years)
	if !f.Blame(err, []blame{
		{finance.ErrNegativeAmount, "principal"},
		{finance.ErrNegativeRate, "rate"},
		{finance.ErrInvalidYears, "years"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Interest: %s", money(si.Interest))}
	res.Add("Interest", money(si.Interest)).Add("Total amount", money(si.Total))
	res.Steps = []string{
		fmt.Sprintf("I = P × r × t = %s × %s × %s", num(principal), num(rate/100), num(years)),
		fmt.Sprintf("I = %s", money(si.Interest)),
	}
	return res, nil
}

func computeCompoundInterest(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	principal := f.Float("principal")
	rate := f.Float("rate")
	years := f.Int("years")
	freq := f.Int("frequency")
	monthly := f.OptFloat("monthly", 0)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	g, err := finance.Compound(principal, rate, years, freq, monthly)
	if !f.Blame(err, []blame{
		{finance.ErrNegativeAmount, "principal"},
		{finance.ErrNegativeRate, "rate"},
		{finance.ErrInvalidYears, "years"},
		{finance.ErrInvalidFrequency, "frequency"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Final balance: %s", money(g.FinalBalance))}
	res.Add("Final balance", money(g.FinalBalance)).
		Add("Total contributions", money(g.TotalContributions)).
		Add("Interest earned", money(g.TotalInterest))
	t := &domain.Table{Columns: []string{"Year", "Contributions", "Interest", "Balance"}}
	for _, y := range g.Years {
		t.Rows = append(t.Rows, []string{strconv.Itoa(y.Year), money(y.Contributions), money(y.Interest), money(y.Balance)})
	}
	res.Table = t
	return res, nil
}

func computeHomeEquity(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	value := f.Float("value")
	balance := f.Float("balance")
	maxLTV := f.OptFloat("max_ltv", finance.DefaultMaxLTV)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}

	e, err := finance.HomeEquity(value, balance, maxLTV)
	if !f.Blame(err, []blame{
		{finance.ErrInvalidHomeValue, "value"},
		{finance.ErrNegativeAmount, "balance"},
		{finance.ErrInvalidLTV, "max_ltv"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Home equity: %s (%s)", money(e.Equity), pct(e.EquityPct))}
	res.Add("Home equity", money(e.Equity)).
		Add("Equity share", pct(e.EquityPct)).
		Add("Loan-to-value", pct(e.LTV)).
		Add("Maximum total debt", money(e.MaxTotalDebt)).
		Add("Available to borrow", money(e.MaxBorrow))
	if e.Underwater {
		res.Notes = append(res.Notes, "The mortgage balance exceeds the home's value.")
	}
	return res, nil
}

func computeDiscount(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	price := f.Float("price")
	percent := f.Float("percent")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	d, err := finance.ApplyDiscount(price, percent)
	if !f.Blame(err, []blame{
		{finance.ErrNegativeAmount, "price"},
		{finance.ErrInvalidPercent, "percent"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Sale price: %s", money(d.Final))}
	res.Add("Sale price", money(d.Final)).Add("You save", money(d.Saved))
	return res, nil
}

func computeSalesTax(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	price := f.Float("price")
	rate := f.Float("rate")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	tx, err := finance.SalesTax(price, rate)
	if !f.Blame(err, []blame{
		{finance.ErrNegativeAmount, "price"},
		{finance.ErrInvalidPercent, "rate"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("Total: %s", money(tx.Total))}
	res.Add("Sales tax", money(tx.Tax)).Add("Total price", money(tx.Total))
	return res, nil
}

func computeTip(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	bill := f.Float("bill")
	percent := f.Float("percent")
	people := f.Int("people")
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	tip, err := finance.SplitTip(bill, percent, people)
	if !f.Blame(err, []blame{
		{finance.ErrNegativeAmount, "bill"},
		{finance.ErrInvalidPercent, "percent"},
		{finance.ErrInvalidPeople, "people"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("%s per person", money(tip.PerPerson))}
	res.Add("Tip", money(tip.Tip)).
		Add("Total with tip", money(tip.Total)).
		Add("Per person", money(tip.PerPerson))
	return res, nil
}

func computeROI(in domain.Inputs) (domain.Result, error) {
	f := read(in)
	initial := f.Float("initial")
	final := f.Float("final")
	years := f.OptFloat("years", 0)
	if err := f.Err(); err != nil {
		return domain.Result{}, err
	}
	r, err := finance.ROI(initial, final, years)
	if !f.Blame(err, []blame{
		{finance.ErrZeroInvestment, "initial"},
		{finance.ErrNegativeAmount, "final"},
		{finance.ErrInvalidYears, "years"},
	}) {
		return domain.Result{}, f.Err()
	}
	res := domain.Result{Summary: fmt.Sprintf("ROI: %s", pct(r.ROIPct))}
	res.Add("Net gain", money(r.Gain)).Add("Return on investment", pct(r.ROIPct))
	if years > 0 {
		res.Add("Annualized return", pct(r.AnnualizedPct))
	}
	return res, nil
}
