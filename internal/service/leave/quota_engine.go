package leave

import (
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
)

// Verdict is the outcome of QuotaEngine.Decide. A nil Err means the candidate is admitted.
type Verdict struct {
	Err       error
	Used      int
	Requested int
}

// Admitted reports whether the candidate passed every check.
func (v Verdict) Admitted() bool {
	return v.Err == nil
}

// QuotaEngine applies the annual day quota and the one-leave-per-start-month
// rule. It holds no state besides the limit.
type QuotaEngine struct {
	limit int
}

// NewQuotaEngine returns an engine enforcing leave.AnnualQuotaDays.
func NewQuotaEngine() *QuotaEngine {
	return &QuotaEngine{limit: leave.AnnualQuotaDays}
}

// Limit returns the annual quota in days.
func (e *QuotaEngine) Limit() int {
	return e.limit
}

func (e *QuotaEngine) ValidateOrdering(candidate leave.Leave) error {
	if candidate.DateStart.After(candidate.DateEnd) {
		return leave.ErrInvalidDateRange
	}
	return nil
}

// ComputeDuration returns the inclusive number of calendar days from start to end.
func (e *QuotaEngine) ComputeDuration(start, end calendar.Date) int {
	return end.DaysSince(start) + 1
}

// AnnualUsage sums the durations of records starting in year.
// A record spanning into the next year counts wholly towards its start year.
func (e *QuotaEngine) AnnualUsage(records []leave.Leave, year int) int {
	from, to := calendar.YearStart(year), calendar.YearEnd(year)

	used := 0
	for _, r := range records {
		if r.DateStart.Before(from) || r.DateStart.After(to) {
			continue
		}
		used += e.ComputeDuration(r.DateStart, r.DateEnd)
	}
	return used
}

func (e *QuotaEngine) CheckAnnualLimit(candidate leave.Leave, priorUsage int) error {
	requested := e.ComputeDuration(candidate.DateStart, candidate.DateEnd)
	if priorUsage+requested > e.limit {
		return &leave.AnnualLimitError{
			Used:      priorUsage,
			Requested: requested,
			Limit:     e.limit,
		}
	}
	return nil
}

// CheckMonthlyLimit rejects candidate when another record starts in the same
// year and month. Only start months are compared; overlapping ranges that
// start in different months pass.
func (e *QuotaEngine) CheckMonthlyLimit(candidate leave.Leave, records []leave.Leave) error {
	for _, r := range records {
		if candidate.ID != "" && r.ID == candidate.ID {
			continue
		}
		if r.DateStart.SameMonth(candidate.DateStart) {
			return &leave.MonthlyLimitError{Month: r.DateStart}
		}
	}
	return nil
}

// Decide checks ordering, then the annual quota, then the monthly rule, and
// reports the first failure. The year window is the candidate's start year.
func (e *QuotaEngine) Decide(candidate leave.Leave, records []leave.Leave) Verdict {
	if err := e.ValidateOrdering(candidate); err != nil {
		return Verdict{Err: err}
	}

	var others []leave.Leave
	for _, r := range records {
		if candidate.ID != "" && r.ID == candidate.ID {
			continue
		}
		others = append(others, r)
	}

	verdict := Verdict{
		Used:      e.AnnualUsage(others, candidate.DateStart.Year()),
		Requested: e.ComputeDuration(candidate.DateStart, candidate.DateEnd),
	}
	if err := e.CheckAnnualLimit(candidate, verdict.Used); err != nil {
		verdict.Err = err
		return verdict
	}
	if err := e.CheckMonthlyLimit(candidate, others); err != nil {
		verdict.Err = err
		return verdict
	}
	return verdict
}
