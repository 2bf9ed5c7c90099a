package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/dispatch"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CRM book from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("import_book", dispatch.Params{"file": args[0]})
			if err != nil {
				return err
			}
			cmd.Println(res.Description)
			return nil
		},
	}
}
