package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/dispatch"
	"github.com/alexanderramin/pulse/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskStatusCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var account, due, priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("create_task", dispatch.Params{
				"title":    args[0],
				"account":  account,
				"due":      due,
				"priority": priority,
			})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account name or ID")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var account, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("list_tasks", dispatch.Params{
				"account": account,
				"status":  status,
			})
			if err != nil {
				return err
			}
			tasks, ok := res.Payload["tasks"].([]*domain.Task)
			if !ok {
				return printJSON(cmd, res.Payload)
			}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				due := formatter.Dim("—")
				if t.DueDate != nil {
					due = formatter.RelativeDate(*t.DueDate)
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					formatter.PriorityPill(t.Priority),
					formatter.TaskStatusPill(t.Status),
					due,
				})
			}
			cmd.Print(formatter.RenderTable(
				[]string{"ID", "Title", "Priority", "Status", "Due"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Filter by account name or ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <status>",
		Short: "Change a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("update_task_status", dispatch.Params{
				"task":   args[0],
				"status": args[1],
			})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}
}
