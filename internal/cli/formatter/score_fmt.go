package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/contract"
)

// RenderScore renders one score with its full factor breakdown.
func RenderScore(title string, r contract.ScoreResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(title), ScoreBadge(r.Score)))

	rows := make([][]string, 0, len(r.Factors))
	for _, f := range r.Factors {
		rows = append(rows, []string{f.Label, weightCell(f.Weight)})
	}
	b.WriteString(RenderTable([]string{"Factor", "Weight"}, rows))
	return b.String()
}

// RenderLeadRanking renders the scored account book, best lead first.
func RenderLeadRanking(leads []contract.LeadScore) string {
	if len(leads) == 0 {
		return Dim("No accounts to score.") + "\n"
	}

	rows := make([][]string, 0, len(leads))
	for i, lead := range leads {
		top := ""
		if len(lead.Result.Factors) > 0 {
			best := lead.Result.Factors[0]
			for _, f := range lead.Result.Factors[1:] {
				if f.Weight > best.Weight {
					best = f
				}
			}
			top = Dim(best.Label)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			lead.AccountName,
			ScoreBadge(lead.Result.Score),
			top,
		})
	}

	return Header("Lead ranking") + "\n" +
		RenderTable([]string{"#", "Account", "Score", "Top factor"}, rows)
}

func weightCell(w int) string {
	switch {
	case w > 0:
		return StyleGreen.Render(fmt.Sprintf("+%d", w))
	case w < 0:
		return StyleRed.Render(fmt.Sprintf("%d", w))
	default:
		return Dim("0")
	}
}
