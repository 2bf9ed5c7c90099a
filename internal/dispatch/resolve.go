package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

// resolveAccount turns a free-text account reference into a record: an
// exact ID first, then a case-insensitive substring match on the name
// where the first match wins. Overlapping names ("Acme" vs "Acme Labs")
// can therefore resolve to either; the ambiguity is accepted rather than
// guessed around.
func (d *Dispatcher) resolveAccount(ctx context.Context, ref string) (*domain.Account, error) {
	if acc, err := d.store.GetAccountByID(ctx, ref); err == nil {
		return acc, nil
	} else if !errors.Is(err, contract.ErrNotFound) {
		return nil, err
	}

	accounts, err := d.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(ref))
	for _, acc := range accounts {
		if strings.Contains(strings.ToLower(acc.Name), needle) {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", ref, contract.ErrNotFound)
}
