package scoring

import (
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLead_ProposalStageColdContact(t *testing.T) {
	// 20 days since contact, proposal stage, 1 contact, 6 lifetime
	// activities: 30 - 15 + 25 + 5 = 45.
	result := Lead(Signals{
		DaysSinceContact:   20,
		LifetimeActivities: 6,
		RecentActivities:   2,
		ContactCount:       1,
		Stage:              domain.StageProposal,
	})

	assert.Equal(t, 45, result.Score)

	weights := make(map[string]int)
	total := 0
	for _, f := range result.Factors {
		weights[f.Label] = f.Weight
		total += f.Weight
	}
	assert.Equal(t, -15, weights["contact has gone cold"])
	assert.Equal(t, 25, weights["pipeline stage proposal"])
	assert.Equal(t, 5, weights["steady activity volume"])
	assert.Equal(t, 45, leadBase+total, "factors must account for the full score")
}

func TestHealth_Breakpoints(t *testing.T) {
	tests := []struct {
		name string
		sig  Signals
		want int
	}{
		{"fresh contact only", Signals{DaysSinceContact: 1}, 70},
		{"week-old contact", Signals{DaysSinceContact: 6}, 60},
		{"neutral window", Signals{DaysSinceContact: 10}, 50},
		{"gone quiet", Signals{DaysSinceContact: 20}, 30},
		{"deep history", Signals{DaysSinceContact: 2, LifetimeActivities: 6, ContactCount: 2}, 85},
		{"full checklist", Signals{DaysSinceContact: 2, ChecklistTotal: 4, ChecklistDone: 4}, 85},
		{"half checklist rounds", Signals{DaysSinceContact: 10, ChecklistTotal: 2, ChecklistDone: 1}, 58},
		{"task backlog", Signals{DaysSinceContact: 10, PendingTasks: 4}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Health(tt.sig).Score)
		})
	}
}

func TestScores_AlwaysWithinBounds(t *testing.T) {
	// Extremes in both directions, including negative days-since-contact
	// from clock skew between store and caller.
	extremes := []Signals{
		{DaysSinceContact: -3, LifetimeActivities: 50, RecentActivities: 20, ContactCount: 10,
			ChecklistTotal: 5, ChecklistDone: 5, Stage: domain.StageValidation, Importance: domain.ImportanceHigh},
		{DaysSinceContact: 400, PendingTasks: 99, Stage: domain.StageEntry},
		{},
	}
	for _, sig := range extremes {
		h := Health(sig)
		l := Lead(sig)
		f := Forecast(sig)
		assert.GreaterOrEqual(t, h.Score, 0)
		assert.LessOrEqual(t, h.Score, 100)
		assert.GreaterOrEqual(t, l.Score, 0)
		assert.LessOrEqual(t, l.Score, 100)
		assert.GreaterOrEqual(t, f.Score, 0)
		assert.LessOrEqual(t, f.Score, 95, "forecast ceiling is 95, not 100")
	}
}

func TestForecast_StageSeedsAndVelocity(t *testing.T) {
	// Neutral recency (5 days), one recent activity, one contact: the
	// score is exactly the stage seed.
	neutral := Signals{DaysSinceContact: 5, RecentActivities: 1, ContactCount: 1}

	for stage, seed := range map[domain.Stage]int{
		domain.StageEntry:      10,
		domain.StageExchange:   25,
		domain.StageProposal:   50,
		domain.StageValidation: 75,
	} {
		sig := neutral
		sig.Stage = stage
		assert.Equal(t, seed, Forecast(sig).Score, "stage %s", stage)
	}

	// Client success seeds at 95 and can not exceed the ceiling even
	// with every positive factor firing.
	hot := Signals{
		DaysSinceContact: 1, RecentActivities: 9, ContactCount: 4,
		ChecklistTotal: 10, ChecklistDone: 9, Stage: domain.StageClientSuccess,
	}
	assert.Equal(t, 95, Forecast(hot).Score)

	dead := Signals{DaysSinceContact: 30, RecentActivities: 0, ContactCount: 0, Stage: domain.StageEntry}
	assert.Equal(t, 0, Forecast(dead).Score)
}

func TestForecast_FactorListPresent(t *testing.T) {
	result := Forecast(Signals{DaysSinceContact: 30, Stage: domain.StageProposal})
	require.NotEmpty(t, result.Factors)
	for _, f := range result.Factors {
		assert.NotEmpty(t, f.Label)
	}
}

func TestScoreLeads_RankedDescending(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "a-1", Name: "Quiet Co"},
		{ID: "a-2", Name: "Hot Prospect"},
		{ID: "a-3", Name: "Warm Lead"},
	}
	signals := []Signals{
		{DaysSinceContact: 30, Stage: domain.StageEntry},
		{DaysSinceContact: 1, LifetimeActivities: 12, ContactCount: 3, Stage: domain.StageValidation, Importance: domain.ImportanceHigh},
		{DaysSinceContact: 5, LifetimeActivities: 6, Stage: domain.StageExchange},
	}

	ranked := ScoreLeads(accounts, signals)
	require.Len(t, ranked, 3)
	assert.Equal(t, "a-2", ranked[0].AccountID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Result.Score, ranked[i].Result.Score)
	}
}

func TestSignalsFromAccount(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -6)
	acc := &domain.Account{
		ID:            "a-1",
		Name:          "Acme",
		Stage:         domain.StageProposal,
		Importance:    domain.ImportanceHigh,
		LastContactAt: &last,
		Contacts:      []domain.Contact{{ID: "c-1"}, {ID: "c-2"}},
		Activities: []domain.Activity{
			{ID: "act-1", OccurredAt: now.AddDate(0, 0, -2)},
			{ID: "act-2", OccurredAt: now.AddDate(0, 0, -10)},
			{ID: "act-3", OccurredAt: now.AddDate(0, 0, -40)},
		},
		Checklist: []domain.ChecklistItem{
			{ID: "ch-1", Completed: true},
			{ID: "ch-2"},
		},
	}

	sig := SignalsFromAccount(acc, 2, now)
	assert.Equal(t, 6, sig.DaysSinceContact)
	assert.Equal(t, 2, sig.RecentActivities, "only activities inside the 14-day window")
	assert.Equal(t, 3, sig.LifetimeActivities)
	assert.Equal(t, 2, sig.ContactCount)
	assert.Equal(t, 1, sig.ChecklistDone)
	assert.Equal(t, 2, sig.ChecklistTotal)
	assert.Equal(t, 2, sig.PendingTasks)
	assert.Equal(t, domain.StageProposal, sig.Stage)
}
