// Package scoring computes bounded account scores with a factor breakdown.
// All functions are pure: signals in, score out, no I/O.
package scoring

import (
	"sort"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// Signals are the derived inputs one account is scored from.
type Signals struct {
	DaysSinceContact int // whole days; negative under clock skew
	RecentActivities int // activities in the trailing 14-day window
	LifetimeActivities int
	ContactCount     int
	ChecklistTotal   int
	ChecklistDone    int
	PendingTasks     int
	Stage            domain.Stage
	Importance       domain.Importance
}

// ChecklistRatio returns checklist completion in [0,1]. Empty checklists
// count as zero progress.
func (s Signals) ChecklistRatio() float64 {
	if s.ChecklistTotal <= 0 {
		return 0
	}
	return float64(s.ChecklistDone) / float64(s.ChecklistTotal)
}

// SignalsFromAccount derives Signals from an account record, its pending
// task count and the evaluation time.
func SignalsFromAccount(a *domain.Account, pendingTasks int, now time.Time) Signals {
	sig := Signals{
		DaysSinceContact:   a.DaysSinceContact(now),
		LifetimeActivities: len(a.Activities),
		ContactCount:       len(a.Contacts),
		ChecklistTotal:     len(a.Checklist),
		PendingTasks:       pendingTasks,
		Stage:              a.Stage,
		Importance:         a.Importance,
	}
	cutoff := now.AddDate(0, 0, -14)
	for _, act := range a.Activities {
		if !act.OccurredAt.Before(cutoff) {
			sig.RecentActivities++
		}
	}
	for _, item := range a.Checklist {
		if item.Completed {
			sig.ChecklistDone++
		}
	}
	return sig
}

// factorFunc is one labelled contribution to a score. A nil factor means
// the signal did not apply.
type factorFunc func(Signals) (int, *contract.ScoreFactor)

// runFactors folds a factor pipeline over the signals, starting from base,
// and clamps the sum to [floor, ceiling].
func runFactors(base int, factors []factorFunc, sig Signals, floor, ceiling int) contract.ScoreResult {
	result := contract.ScoreResult{Score: base}
	for _, f := range factors {
		delta, factor := f(sig)
		result.Score += delta
		if factor != nil {
			result.Factors = append(result.Factors, *factor)
		}
	}
	result.Score = clamp(result.Score, floor, ceiling)
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func factor(label string, weight int) (int, *contract.ScoreFactor) {
	return weight, &contract.ScoreFactor{Label: label, Weight: weight}
}

// ScoreLeads scores a batch of accounts and returns them ranked by lead
// score, highest first. Ties break on account name then ID so the order
// is deterministic.
func ScoreLeads(accounts []*domain.Account, signals []Signals) []contract.LeadScore {
	ranked := make([]contract.LeadScore, 0, len(accounts))
	for i, a := range accounts {
		ranked = append(ranked, contract.LeadScore{
			AccountID:   a.ID,
			AccountName: a.Name,
			Result:      Lead(signals[i]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		if ranked[i].AccountName != ranked[j].AccountName {
			return ranked[i].AccountName < ranked[j].AccountName
		}
		return ranked[i].AccountID < ranked[j].AccountID
	})
	return ranked
}
