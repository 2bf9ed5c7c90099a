// Package cli wires the dispatcher's operations into a cobra command
// tree. Every command goes through Dispatcher.Execute; the CLI never
// talks to the store directly.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/dispatch"
)

// App holds what CLI commands need: the dispatcher and the acting user.
type App struct {
	Dispatcher *dispatch.Dispatcher
	User       string
}

// NewRootCmd creates the top-level "pulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pulse",
		Short:         "CRM decision support: scoring, scheduling and the daily program",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Operation parameters use snake_case; accept the same spelling on
	// flags so `--last_contact` and `--last-contact` both work.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newOpsCmd(app),
		newExecCmd(app),
		newScoreCmd(app),
		newSlotsCmd(app),
		newProgramCmd(app),
		newAccountCmd(app),
		newTaskCmd(app),
		newImportCmd(app),
	)

	return root
}

// execute runs one operation and fails the command when the envelope
// reports failure, so exit codes track operation outcomes.
func (app *App) execute(name string, params dispatch.Params) (*contract.Result, error) {
	res := app.Dispatcher.Execute(context.Background(), app.User, name, params)
	if !res.Success {
		return res, fmt.Errorf("%s: %s", res.ErrorKind, res.Description)
	}
	return res, nil
}

// printJSON renders any payload value as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
