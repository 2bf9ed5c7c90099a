package dispatch

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/gateway"
	"github.com/alexanderramin/pulse/internal/scoring"
)

// accountSignals derives scoring signals for one resolved account.
func (d *Dispatcher) accountSignals(ctx context.Context, acc *domain.Account) (scoring.Signals, error) {
	tasks, err := d.store.ListTasks(ctx, gateway.TaskFilter{
		AccountID: acc.ID,
		Status:    domain.TaskPending,
	})
	if err != nil {
		return scoring.Signals{}, err
	}
	return scoring.SignalsFromAccount(acc, len(tasks), d.now()), nil
}

func (d *Dispatcher) handleScoreHealth(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	sig, err := d.accountSignals(ctx, acc)
	if err != nil {
		return "", nil, err
	}
	result := scoring.Health(sig)
	return fmt.Sprintf("Health score for %s is %d/100.", acc.Name, result.Score), map[string]any{
		"accountId": acc.ID,
		"health":    result,
	}, nil
}

func (d *Dispatcher) handleForecast(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	sig, err := d.accountSignals(ctx, acc)
	if err != nil {
		return "", nil, err
	}
	result := scoring.Forecast(sig)
	return fmt.Sprintf("Close probability for %s is %d%%.", acc.Name, result.Score), map[string]any{
		"accountId": acc.ID,
		"forecast":  result,
	}, nil
}

func (d *Dispatcher) handleHealthReport(ctx context.Context, req Request) (string, map[string]any, error) {
	acc, err := d.resolveAccount(ctx, req.Params.String("account"))
	if err != nil {
		return "", nil, err
	}
	sig, err := d.accountSignals(ctx, acc)
	if err != nil {
		return "", nil, err
	}
	health := scoring.Health(sig)
	lead := scoring.Lead(sig)
	forecast := scoring.Forecast(sig)
	return fmt.Sprintf("Report for %s: health %d, lead %d, close probability %d%%.",
			acc.Name, health.Score, lead.Score, forecast.Score), map[string]any{
			"accountId":        acc.ID,
			"accountName":      acc.Name,
			"health":           health,
			"lead":             lead,
			"forecast":         forecast,
			"daysSinceContact": sig.DaysSinceContact,
			"stage":            string(acc.Stage),
		}, nil
}

// handleScoreLeads fans out the account and task reads, then scores the
// whole book in one pure pass.
func (d *Dispatcher) handleScoreLeads(ctx context.Context, _ Request) (string, map[string]any, error) {
	var (
		accounts []*domain.Account
		pending  []*domain.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = d.store.ListAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = d.store.ListTasks(gctx, gateway.TaskFilter{Status: domain.TaskPending})
		return err
	})
	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	pendingByAccount := make(map[string]int)
	for _, t := range pending {
		if t.AccountID != "" {
			pendingByAccount[t.AccountID]++
		}
	}

	now := d.now()
	signals := make([]scoring.Signals, len(accounts))
	for i, acc := range accounts {
		signals[i] = scoring.SignalsFromAccount(acc, pendingByAccount[acc.ID], now)
	}
	ranked := scoring.ScoreLeads(accounts, signals)

	return fmt.Sprintf("Scored %d accounts.", len(ranked)), map[string]any{
		"leads": ranked,
	}, nil
}

func (d *Dispatcher) handleListStale(ctx context.Context, _ Request) (string, map[string]any, error) {
	stale, err := d.staleAccounts(ctx)
	if err != nil {
		return "", nil, err
	}
	now := d.now()
	summaries := make([]map[string]any, 0, len(stale))
	for _, acc := range stale {
		summaries = append(summaries, map[string]any{
			"accountId":        acc.ID,
			"accountName":      acc.Name,
			"stage":            string(acc.Stage),
			"daysSinceContact": acc.DaysSinceContact(now),
		})
	}
	return fmt.Sprintf("%d accounts need a follow-up.", len(stale)), map[string]any{
		"staleAccounts": summaries,
	}, nil
}

// staleAccounts returns accounts with an active pipeline whose last
// contact is beyond the staleness window, most stale first.
func (d *Dispatcher) staleAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := d.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	now := d.now()
	var stale []*domain.Account
	for _, acc := range accounts {
		if acc.Stage == domain.StageClientSuccess {
			continue
		}
		if acc.DaysSinceContact(now) > d.cfg.StaleAfterDays {
			stale = append(stale, acc)
		}
	}
	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].DaysSinceContact(now) > stale[j].DaysSinceContact(now)
	})
	return stale, nil
}
