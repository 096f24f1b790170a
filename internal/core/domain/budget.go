package domain

import (
	"fmt"
	"strconv"
)

// BudgetType selects which of the two budget fields is populated.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
)

// Budget is embedded in campaigns and ad sets. Exactly one of the fields is
// set when the record is built through NewBudget; the store itself does not
// check this. Amounts are decimal strings in the account currency.
type Budget struct {
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
}

// NewBudget picks the amount matching typ and drops the other one.
func NewBudget(typ BudgetType, daily, lifetime string) (Budget, error) {
	switch typ {
	case BudgetDaily, "":
		if err := checkAmount(daily); err != nil {
			return Budget{}, fmt.Errorf("daily_budget: %w", err)
		}
		return Budget{DailyBudget: daily}, nil
	case BudgetLifetime:
		if err := checkAmount(lifetime); err != nil {
			return Budget{}, fmt.Errorf("lifetime_budget: %w", err)
		}
		return Budget{LifetimeBudget: lifetime}, nil
	default:
		return Budget{}, fmt.Errorf("budget_type %q is not daily or lifetime", typ)
	}
}

// BudgetType reports which field is populated. Records written by older
// clients may carry neither, in which case lifetime is reported like the
// edit form does.
func (b Budget) BudgetType() BudgetType {
	if b.DailyBudget != "" {
		return BudgetDaily
	}
	return BudgetLifetime
}

func checkAmount(s string) error {
	if s == "" {
		return fmt.Errorf("amount is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("amount %q is not a number", s)
	}
	if v <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
