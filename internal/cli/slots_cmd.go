package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/dispatch"
)

func newSlotsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Find free slots and propose meetings",
	}

	cmd.AddCommand(
		newSlotsFindCmd(app),
		newSlotsProposeCmd(app),
	)
	return cmd
}

// slotFlags are shared by find and propose.
type slotFlags struct {
	from, to   string
	duration   int
	preference string
}

func (f *slotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Range end (YYYY-MM-DD, inclusive)")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "Minimum slot duration in minutes (default from config)")
	cmd.Flags().StringVar(&f.preference, "pref", "", "Part of day: morning or afternoon")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (f *slotFlags) params() dispatch.Params {
	params := dispatch.Params{"from": f.from, "to": f.to}
	if f.duration > 0 {
		params["duration"] = f.duration
	}
	if f.preference != "" {
		params["preference"] = f.preference
	}
	return params
}

func newSlotsFindCmd(app *App) *cobra.Command {
	var flags slotFlags

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Free meeting slots over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.execute("find_free_slots", flags.params())
			if err != nil {
				return err
			}
			if free, ok := res.Payload["slots"].([]contract.FreeSlot); ok {
				cmd.Print(formatter.RenderSlots(free))
				return nil
			}
			return printJSON(cmd, res.Payload)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSlotsProposeCmd(app *App) *cobra.Command {
	var flags slotFlags
	var accounts []string

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Distribute slots across accounts with draft messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := flags.params()
			params["accounts"] = accounts
			res, err := app.execute("propose_meetings", params)
			if err != nil {
				return err
			}
			if proposals, ok := res.Payload["proposals"].([]contract.SlotProposal); ok {
				cmd.Print(formatter.RenderProposals(proposals))
				cmd.Println(formatter.Dim(res.Description))
				return nil
			}
			return printJSON(cmd, res.Payload)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&accounts, "accounts", nil, "Account names or IDs (repeatable)")
	_ = cmd.MarkFlagRequired("accounts")
	return cmd
}
