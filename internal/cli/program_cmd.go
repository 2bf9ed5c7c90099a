package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
)

func newProgramCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "program",
		Short: "The ranked daily work program",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("daily_program", nil)
			if err != nil {
				return err
			}
			if p, ok := res.Payload["program"].(*contract.Program); ok {
				cmd.Print(formatter.RenderProgram(p))
				return nil
			}
			return printJSON(cmd, res.Payload)
		},
	}
}
