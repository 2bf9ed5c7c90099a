package slots

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotPool(n int) []contract.FreeSlot {
	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	pool := make([]contract.FreeSlot, 0, n)
	for i := 0; i < n; i++ {
		start := 9*60 + i*60
		pool = append(pool, contract.FreeSlot{
			Date:        day,
			DayLabel:    day.Format("Monday, Jan 2"),
			StartMin:    start,
			EndMin:      start + 60,
			DurationMin: 60,
		})
	}
	return pool
}

func account(id, name string, contacts ...domain.Contact) *domain.Account {
	return &domain.Account{ID: id, Name: name, Contacts: contacts}
}

func TestDistribute_ConsecutiveShares(t *testing.T) {
	pool := slotPool(6)
	accounts := []*domain.Account{
		account("a-1", "Acme"),
		account("a-2", "Borealis"),
	}

	got := Distribute(pool, accounts)

	require.Len(t, got, 2)
	// 6 slots / 2 accounts = 3 each, capped at 3, consecutive.
	require.Len(t, got[0].Slots, 3)
	require.Len(t, got[1].Slots, 3)
	assert.Equal(t, pool[0], got[0].Slots[0])
	assert.Equal(t, pool[3], got[1].Slots[0])
}

func TestDistribute_CapAtThreePerAccount(t *testing.T) {
	got := Distribute(slotPool(12), []*domain.Account{account("a-1", "Acme")})
	require.Len(t, got, 1)
	assert.Len(t, got[0].Slots, 3)
}

func TestDistribute_PoolExhaustedReusesFirstSlot(t *testing.T) {
	pool := slotPool(2)
	accounts := []*domain.Account{
		account("a-1", "Acme"),
		account("a-2", "Borealis"),
		account("a-3", "Cobalt"),
	}

	got := Distribute(pool, accounts)

	require.Len(t, got, 3)
	// 2 slots / 3 accounts floors to 0, bumped to 1 per account.
	assert.Equal(t, pool[0], got[0].Slots[0])
	assert.Equal(t, pool[1], got[1].Slots[0])
	// Third account gets the first slot again.
	require.Len(t, got[2].Slots, 1)
	assert.Equal(t, pool[0], got[2].Slots[0])
}

func TestDistribute_DraftUsesMainContact(t *testing.T) {
	accounts := []*domain.Account{
		account("a-1", "Acme Labs",
			domain.Contact{ID: "c-1", Name: "Ana Ruiz", Emails: []string{"ana@acme.test", "ruiz@acme.test"}},
			domain.Contact{ID: "c-2", Name: "Bo Chen", Emails: []string{"bo@acme.test"}, IsMainContact: true},
		),
	}

	got := Distribute(slotPool(2), accounts)

	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "Bo Chen", p.ContactName, "flagged main contact wins over list order")
	assert.Equal(t, "bo@acme.test", p.ContactEmail)
	assert.Contains(t, p.DraftSubject, "Acme Labs")
	assert.Contains(t, p.DraftBody, "Hello Bo Chen")
	for _, s := range p.Slots {
		assert.Contains(t, p.DraftBody, s.TimeRange())
	}
}

func TestDistribute_NoSlotsNoAccounts(t *testing.T) {
	assert.Empty(t, Distribute(slotPool(3), nil))

	got := Distribute(nil, []*domain.Account{account("a-1", "Acme")})
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Slots)
	assert.True(t, strings.Contains(got[0].DraftBody, "availability"))
}
