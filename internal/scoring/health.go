package scoring

import (
	"math"

	"github.com/alexanderramin/pulse/internal/contract"
)

const healthBase = 50

// Health scores relationship health in [0,100].
func Health(sig Signals) contract.ScoreResult {
	factors := []factorFunc{
		healthRecency,
		healthActivityDepth,
		healthContactCoverage,
		healthChecklistProgress,
		healthTaskBacklog,
	}
	return runFactors(healthBase, factors, sig, 0, 100)
}

func healthRecency(sig Signals) (int, *contract.ScoreFactor) {
	d := sig.DaysSinceContact
	switch {
	case d <= 3:
		return factor("contacted within 3 days", 20)
	case d <= 7:
		return factor("contacted within a week", 10)
	case d > 14:
		return factor("no contact for over two weeks", -20)
	}
	return 0, nil
}

func healthActivityDepth(sig Signals) (int, *contract.ScoreFactor) {
	if sig.LifetimeActivities > 5 {
		return factor("established activity history", 10)
	}
	return 0, nil
}

func healthContactCoverage(sig Signals) (int, *contract.ScoreFactor) {
	if sig.ContactCount > 1 {
		return factor("multiple contacts on record", 5)
	}
	return 0, nil
}

func healthChecklistProgress(sig Signals) (int, *contract.ScoreFactor) {
	ratio := sig.ChecklistRatio()
	if ratio <= 0 {
		return 0, nil
	}
	return factor("checklist progress", int(math.Round(15*ratio)))
}

func healthTaskBacklog(sig Signals) (int, *contract.ScoreFactor) {
	if sig.PendingTasks > 3 {
		return factor("pending task backlog", -10)
	}
	return 0, nil
}
