package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/dispatch"
)

// newExecCmd is the generic escape hatch: run any registered operation
// with key=value parameters and get the raw envelope back as JSON.
func newExecCmd(app *App) *cobra.Command {
	var paramFlags []string

	cmd := &cobra.Command{
		Use:   "exec <operation>",
		Short: "Run an operation by name with key=value parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(paramFlags)
			if err != nil {
				return err
			}
			res, execErr := app.execute(args[0], params)
			if err := printJSON(cmd, res); err != nil {
				return err
			}
			return execErr
		},
	}

	cmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil,
		"Operation parameter as key=value (repeatable; comma-separate list values)")
	return cmd
}

func parseParams(flags []string) (dispatch.Params, error) {
	params := dispatch.Params{}
	for _, raw := range flags {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", raw)
		}
		params[key] = value
	}
	return params, nil
}
