package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pulse/internal/contract"
)

// RenderProgram renders the daily program: three priority buckets and a
// stats footer.
func RenderProgram(p *contract.Program) string {
	var b strings.Builder

	b.WriteString(renderBucket("Urgent", StyleRed, p.Urgent))
	b.WriteString(renderBucket("Important", StyleYellow, p.Important))
	b.WriteString(renderBucket("To plan", StyleBlue, p.ToPlan))

	stats := fmt.Sprintf("%d overdue · %d due today · %d mentions · %d stale accounts · %d meetings · %d unread messages · %d notifications",
		p.Stats.OverdueCount,
		p.Stats.DueTodayCount,
		p.Stats.MentionCount,
		p.Stats.StaleAccountCount,
		p.Stats.MeetingsToday,
		p.Stats.UnreadMessages,
		p.Stats.UnreadNotifications,
	)
	b.WriteString(Dim(stats) + "\n")
	return b.String()
}

func renderBucket(title string, style lipgloss.Style, items []contract.ProgramItem) string {
	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("▌ %s (%d)", strings.ToUpper(title), len(items))) + "\n")
	if len(items) == 0 {
		b.WriteString(Dim("  nothing here") + "\n\n")
		return b.String()
	}
	for _, item := range items {
		line := "  • " + item.Title
		if item.Detail != "" {
			line += " " + Dim("— "+item.Detail)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
