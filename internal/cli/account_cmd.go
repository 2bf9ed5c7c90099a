package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/dispatch"
	"github.com/alexanderramin/pulse/internal/domain"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountAddCmd(app),
		newAccountListCmd(app),
		newAccountShowCmd(app),
		newAccountStageCmd(app),
		newAccountContactCmd(app),
		newAccountLogCmd(app),
	)
	return cmd
}

func newAccountAddCmd(app *App) *cobra.Command {
	var kind, stage, importance string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("create_account", dispatch.Params{
				"name":       args[0],
				"kind":       kind,
				"stage":      stage,
				"importance": importance,
			})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Account kind: client or partner")
	cmd.Flags().StringVar(&stage, "stage", "", "Initial pipeline stage")
	cmd.Flags().StringVar(&importance, "importance", "", "Importance: low, medium or high")
	return cmd
}

func newAccountListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("list_accounts", nil)
			if err != nil {
				return err
			}
			accounts, ok := res.Payload["accounts"].([]*domain.Account)
			if !ok {
				return printJSON(cmd, res.Payload)
			}
			rows := make([][]string, 0, len(accounts))
			for _, a := range accounts {
				last := formatter.Dim("never")
				if a.LastContactAt != nil {
					last = formatter.HumanDate(*a.LastContactAt)
				}
				rows = append(rows, []string{
					formatter.TruncID(a.ID),
					a.Name,
					string(a.Kind),
					formatter.StagePill(a.Stage),
					last,
				})
			}
			cmd.Print(formatter.RenderTable(
				[]string{"ID", "Name", "Kind", "Stage", "Last contact"}, rows))
			return nil
		},
	}
}

func newAccountShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account>",
		Short: "Fetch one account with its contacts and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("get_account", dispatch.Params{"account": args[0]})
			if err != nil {
				return err
			}
			acc, ok := res.Payload["account"].(*domain.Account)
			if !ok {
				return printJSON(cmd, res.Payload)
			}

			cmd.Println(formatter.Header(acc.Name))
			cmd.Printf("%s  %s  %s\n\n",
				formatter.StagePill(acc.Stage),
				formatter.Dim(string(acc.Kind)),
				formatter.Dim("importance: "+string(acc.Importance)))

			if len(acc.Contacts) > 0 {
				rows := make([][]string, 0, len(acc.Contacts))
				for _, c := range acc.Contacts {
					marker := ""
					if c.IsMainContact {
						marker = formatter.Bold("★")
					}
					rows = append(rows, []string{marker, c.Name, c.PrimaryEmail(), c.Role})
				}
				cmd.Print(formatter.RenderTable([]string{"", "Contact", "Email", "Role"}, rows))
				cmd.Println()
			}

			for i, act := range acc.Activities {
				if i >= 5 {
					cmd.Println(formatter.Dim("  …"))
					break
				}
				cmd.Printf("  %s %s %s\n",
					formatter.Dim(act.OccurredAt.Format("Jan 2")),
					string(act.Type),
					act.Title)
			}
			return nil
		},
	}
}

func newAccountStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <account> <stage>",
		Short: "Move an account to a pipeline stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("advance_stage", dispatch.Params{
				"account": args[0],
				"stage":   args[1],
			})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}
}

func newAccountContactCmd(app *App) *cobra.Command {
	var emails []string
	var role string
	var main bool

	cmd := &cobra.Command{
		Use:   "contact <account> <name>",
		Short: "Add a contact to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("add_contact", dispatch.Params{
				"account": args[0],
				"name":    args[1],
				"emails":  emails,
				"role":    role,
				"main":    main,
			})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&emails, "email", nil, "Email address (repeatable, first is primary)")
	cmd.Flags().StringVar(&role, "role", "", "Contact role")
	cmd.Flags().BoolVar(&main, "main", false, "Mark as the main contact")
	return cmd
}

func newAccountLogCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "log <account> <type> <title>",
		Short: "Log an activity (call, email, meeting or note)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("log_activity", dispatch.Params{
				"account":     args[0],
				"type":        args[1],
				"title":       args[2],
				"description": description,
			})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "note", "", "Longer description")
	return cmd
}
