package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

// RenderSlots renders free slots grouped under their day.
func RenderSlots(slots []contract.FreeSlot) string {
	if len(slots) == 0 {
		return Dim("No free slots in range.") + "\n"
	}

	var b strings.Builder
	currentDay := ""
	for _, s := range slots {
		day := s.Date.Format("2006-01-02")
		if day != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(Bold(fmt.Sprintf("%s %s", s.DayLabel, s.Date.Format("Jan 2"))) + "\n")
			currentDay = day
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleGreen.Render(s.TimeRange()),
			Dim(fmt.Sprintf("(%s free)", FormatMinutes(s.EndMin-s.StartMin)))))
	}
	return b.String()
}

// RenderProposals renders one scheduling block per account, with the
// reserved slots and the draft that goes with them.
func RenderProposals(proposals []contract.SlotProposal) string {
	if len(proposals) == 0 {
		return Dim("No proposals.") + "\n"
	}

	var b strings.Builder
	for i, p := range proposals {
		if i > 0 {
			b.WriteString("\n")
		}
		contact := Dim("no contact on record")
		if p.ContactName != "" {
			contact = p.ContactName
			if p.ContactEmail != "" {
				contact += " " + Dim("<"+p.ContactEmail+">")
			}
		}
		b.WriteString(fmt.Sprintf("%s — %s\n", Bold(p.AccountName), contact))
		for _, s := range p.Slots {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				s.Date.Format("Mon Jan 2"),
				StyleGreen.Render(s.TimeRange()),
				Dim(FormatMinutes(s.DurationMin))))
		}
		b.WriteString(Dim("  draft: "+p.DraftSubject) + "\n")
	}
	return b.String()
}
