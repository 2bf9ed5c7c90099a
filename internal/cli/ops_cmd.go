package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
)

func newOpsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List every registered operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := app.Dispatcher.Operations()
			rows := make([][]string, 0, len(ops))
			for _, op := range ops {
				required := formatter.Dim("—")
				if len(op.Required) > 0 {
					required = strings.Join(op.Required, ", ")
				}
				rows = append(rows, []string{op.Name, required, op.Description})
			}
			cmd.Print(formatter.RenderTable([]string{"Operation", "Required", "Description"}, rows))
			return nil
		},
	}
}
