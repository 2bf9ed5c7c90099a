package scoring

import (
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

const leadBase = 30

// leadStageBonus weights pipeline position. Validation is the hottest
// phase; an account already in client success is no longer a lead.
var leadStageBonus = map[domain.Stage]int{
	domain.StageEntry:         5,
	domain.StageExchange:      15,
	domain.StageProposal:      25,
	domain.StageValidation:    35,
	domain.StageClientSuccess: 10,
}

// Lead scores conversion potential in [0,100].
func Lead(sig Signals) contract.ScoreResult {
	factors := []factorFunc{
		leadRecency,
		leadStage,
		leadActivityVolume,
		leadContactReach,
		leadImportance,
	}
	return runFactors(leadBase, factors, sig, 0, 100)
}

func leadRecency(sig Signals) (int, *contract.ScoreFactor) {
	d := sig.DaysSinceContact
	switch {
	case d <= 3:
		return factor("recent contact", 20)
	case d <= 7:
		return factor("contacted within a week", 10)
	case d > 14:
		return factor("contact has gone cold", -15)
	}
	return 0, nil
}

func leadStage(sig Signals) (int, *contract.ScoreFactor) {
	bonus, ok := leadStageBonus[sig.Stage]
	if !ok {
		return 0, nil
	}
	return factor("pipeline stage "+string(sig.Stage), bonus)
}

func leadActivityVolume(sig Signals) (int, *contract.ScoreFactor) {
	switch {
	case sig.LifetimeActivities > 10:
		return factor("high activity volume", 10)
	case sig.LifetimeActivities > 5:
		return factor("steady activity volume", 5)
	case sig.LifetimeActivities <= 1:
		return factor("little recorded activity", -5)
	}
	return 0, nil
}

func leadContactReach(sig Signals) (int, *contract.ScoreFactor) {
	if sig.ContactCount >= 3 {
		return factor("broad contact reach", 5)
	}
	return 0, nil
}

func leadImportance(sig Signals) (int, *contract.ScoreFactor) {
	if sig.Importance == domain.ImportanceHigh {
		return factor("flagged high importance", 10)
	}
	return 0, nil
}
