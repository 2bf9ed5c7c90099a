package scoring

import (
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// forecastCeiling caps close probability below certainty. The ceiling is
// deliberate: no forecast is ever a sure thing.
const forecastCeiling = 95

// forecastStageSeed is the base close probability per pipeline stage.
var forecastStageSeed = map[domain.Stage]int{
	domain.StageEntry:         10,
	domain.StageExchange:      25,
	domain.StageProposal:      50,
	domain.StageValidation:    75,
	domain.StageClientSuccess: 95,
}

// Forecast scores close probability in [0,95].
func Forecast(sig Signals) contract.ScoreResult {
	seed, ok := forecastStageSeed[sig.Stage]
	if !ok {
		seed = forecastStageSeed[domain.StageEntry]
	}
	factors := []factorFunc{
		forecastRecency,
		forecastVelocity,
		forecastContactReach,
		forecastChecklist,
	}
	return runFactors(seed, factors, sig, 0, forecastCeiling)
}

func forecastRecency(sig Signals) (int, *contract.ScoreFactor) {
	d := sig.DaysSinceContact
	switch {
	case d <= 3:
		return factor("fresh contact", 10)
	case d > 14:
		return factor("relationship going stale", -20)
	case d > 7:
		return factor("contact slipping", -5)
	}
	return 0, nil
}

func forecastVelocity(sig Signals) (int, *contract.ScoreFactor) {
	switch {
	case sig.RecentActivities >= 5:
		return factor("strong recent velocity", 15)
	case sig.RecentActivities >= 2:
		return factor("some recent velocity", 5)
	case sig.RecentActivities == 0:
		return factor("no recent activity", -10)
	}
	return 0, nil
}

func forecastContactReach(sig Signals) (int, *contract.ScoreFactor) {
	switch {
	case sig.ContactCount >= 3:
		return factor("multi-threaded relationship", 10)
	case sig.ContactCount == 0:
		return factor("no contacts on record", -10)
	}
	return 0, nil
}

func forecastChecklist(sig Signals) (int, *contract.ScoreFactor) {
	if sig.ChecklistRatio() >= 0.7 {
		return factor("onboarding checklist mostly done", 5)
	}
	return 0, nil
}
