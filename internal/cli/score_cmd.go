package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/dispatch"
)

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score accounts and rank leads",
	}

	cmd.AddCommand(
		newScoreHealthCmd(app),
		newScoreLeadsCmd(app),
		newScoreForecastCmd(app),
		newScoreReportCmd(app),
		newScoreStaleCmd(app),
	)
	return cmd
}

func newScoreHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health <account>",
		Short: "Relationship health score for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("score_account_health", dispatch.Params{"account": args[0]})
			if err != nil {
				return err
			}
			if health, ok := res.Payload["health"].(contract.ScoreResult); ok {
				cmd.Print(formatter.RenderScore("Health", health))
				return nil
			}
			return printJSON(cmd, res.Payload)
		},
	}
}

func newScoreLeadsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "leads",
		Short: "Rank all accounts by lead score",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("score_leads", nil)
			if err != nil {
				return err
			}
			if leads, ok := res.Payload["leads"].([]contract.LeadScore); ok {
				cmd.Print(formatter.RenderLeadRanking(leads))
				return nil
			}
			return printJSON(cmd, res.Payload)
		},
	}
}

func newScoreForecastCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <account>",
		Short: "Close-probability forecast for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("forecast_account", dispatch.Params{"account": args[0]})
			if err != nil {
				return err
			}
			if forecast, ok := res.Payload["forecast"].(contract.ScoreResult); ok {
				cmd.Print(formatter.RenderScore("Close probability", forecast))
				return nil
			}
			return printJSON(cmd, res.Payload)
		},
	}
}

func newScoreReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report <account>",
		Short: "Combined health, lead and forecast analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("account_health_report", dispatch.Params{"account": args[0]})
			if err != nil {
				return err
			}
			health, okH := res.Payload["health"].(contract.ScoreResult)
			lead, okL := res.Payload["lead"].(contract.ScoreResult)
			forecast, okF := res.Payload["forecast"].(contract.ScoreResult)
			if !okH || !okL || !okF {
				return printJSON(cmd, res.Payload)
			}
			name, _ := res.Payload["accountName"].(string)
			cmd.Println(formatter.Header("Report — " + name))
			cmd.Println()
			cmd.Print(formatter.RenderScore("Health", health))
			cmd.Println()
			cmd.Print(formatter.RenderScore("Lead", lead))
			cmd.Println()
			cmd.Print(formatter.RenderScore("Close probability", forecast))
			return nil
		},
	}
}

func newScoreStaleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stale",
		Short: "Accounts with an active pipeline and no recent contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("list_stale_accounts", nil)
			if err != nil {
				return err
			}
			summaries, ok := res.Payload["staleAccounts"].([]map[string]any)
			if !ok {
				return printJSON(cmd, res.Payload)
			}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				days, _ := s["daysSinceContact"].(int)
				name, _ := s["accountName"].(string)
				stage, _ := s["stage"].(string)
				rows = append(rows, []string{name, stage, formatter.DaysAgo(days)})
			}
			cmd.Print(formatter.RenderTable([]string{"Account", "Stage", "Last contact"}, rows))
			return nil
		},
	}
}
