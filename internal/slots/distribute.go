package slots

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/domain"
)

const maxSlotsPerAccount = 3

// Distribute hands out consecutive unused slots to each target account in
// order: min(3, max(1, total/accounts)) per account, reusing the first
// slot once the pool runs dry. The allocation is deterministic and
// order-sensitive; it makes no fairness guarantee beyond that.
func Distribute(free []contract.FreeSlot, accounts []*domain.Account) []contract.SlotProposal {
	proposals := make([]contract.SlotProposal, 0, len(accounts))
	if len(accounts) == 0 {
		return proposals
	}

	perAccount := 0
	if len(free) > 0 {
		perAccount = len(free) / len(accounts)
		if perAccount < 1 {
			perAccount = 1
		}
		if perAccount > maxSlotsPerAccount {
			perAccount = maxSlotsPerAccount
		}
	}

	cursor := 0
	for _, acc := range accounts {
		var share []contract.FreeSlot
		switch {
		case cursor < len(free):
			end := cursor + perAccount
			if end > len(free) {
				end = len(free)
			}
			share = free[cursor:end]
			cursor = end
		case len(free) > 0:
			// Pool exhausted: fall back to offering the first slot again.
			share = free[:1]
		}

		p := contract.SlotProposal{
			AccountID:   acc.ID,
			AccountName: acc.Name,
			Slots:       share,
		}
		if c := acc.MainContact(); c != nil {
			p.ContactName = c.Name
			p.ContactEmail = c.PrimaryEmail()
		}
		p.DraftSubject, p.DraftBody = draftMessage(acc.Name, p.ContactName, share)
		proposals = append(proposals, p)
	}
	return proposals
}

// draftMessage fills the meeting-proposal template. The draft is handed
// to the messaging provider as a draft, never sent directly.
func draftMessage(accountName, contactName string, slots []contract.FreeSlot) (subject, body string) {
	subject = fmt.Sprintf("Meeting proposal — %s", accountName)

	greeting := "Hello"
	if contactName != "" {
		greeting = "Hello " + contactName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s,\n\n", greeting)
	if len(slots) == 0 {
		b.WriteString("I would like to schedule a meeting with you. Could you share some availability on your side?\n")
	} else {
		b.WriteString("I would like to schedule a meeting with you. Here are some slots that work on my side:\n\n")
		for _, s := range slots {
			fmt.Fprintf(&b, "- %s, %s\n", s.DayLabel, s.TimeRange())
		}
		b.WriteString("\nLet me know which one suits you best.\n")
	}
	b.WriteString("\nBest regards")
	return subject, b.String()
}
