package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"admanager/internal/core/domain"
)

// problems collects form errors so the caller sees all of them at once.
type problems []string

func (p *problems) add(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p *problems) required(field, v string) {
	if strings.TrimSpace(v) == "" {
		p.add("%s is required", field)
	}
}

func (p *problems) window(start time.Time, end *time.Time, startField, endField string) {
	if end != nil && !start.IsZero() && end.Before(start) {
		p.add("%s must not be before %s", endField, startField)
	}
}

func (p *problems) amount(field, v string) {
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		p.add("%s %q is not a non-negative number", field, v)
	}
}

func (p *problems) link(field, v string) {
	if v == "" {
		return
	}
	u, err := url.Parse(v)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		p.add("%s %q is not an http(s) URL", field, v)
	}
}

func (p *problems) schedule(s []domain.Schedule) {
	for i, w := range s {
		if len(w.Days) == 0 {
			p.add("adset_schedule[%d] has no days", i)
		}
		for _, d := range w.Days {
			if d < 1 || d > 7 {
				p.add("adset_schedule[%d] day %d is outside 1..7", i, d)
			}
		}
		if w.StartMinute < 0 || w.StartMinute > 1439 {
			p.add("adset_schedule[%d] start_minute %d is outside 0..1439", i, w.StartMinute)
		}
		if w.EndMinute < 0 || w.EndMinute > 1439 {
			p.add("adset_schedule[%d] end_minute %d is outside 0..1439", i, w.EndMinute)
		}
	}
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(p, "; "))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

// enum returns v, or def when v is empty, and records a problem when the
// result is not allowed.
func enum[T ~string](p *problems, field string, v, def T, allowed []T) T {
	if v == "" {
		v = def
	}
	if !domain.OneOf(v, allowed) {
		p.add("%s %q is not one of %v", field, v, allowed)
	}
	return v
}

// budget wraps domain.NewBudget into the problem list.
func budget(p *problems, typ domain.BudgetType, daily, lifetime string) domain.Budget {
	b, err := domain.NewBudget(typ, daily, lifetime)
	if err != nil {
		p.add("%s", err)
	}
	return b
}

func at(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := at(*t)
	return &v
}

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
