package dispatch

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/alexanderramin/pulse/internal/importer"
)

// handleImportBook bulk-loads a CRM book from a JSON file: accounts with
// their nested records, plus tasks, mentions and calendar events.
func (d *Dispatcher) handleImportBook(ctx context.Context, req Request) (string, map[string]any, error) {
	path := req.Params.String("file")

	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", contract.ErrValidation, err)
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return "", nil, fmt.Errorf("%w: import file has %d problem(s), first: %v",
			contract.ErrValidation, len(errs), errs[0])
	}

	// The store only exposes mention writes when it is a local mirror;
	// against a read-only provider the mentions section is skipped.
	mentions, _ := d.store.(importer.MentionWriter)

	res, err := importer.Import(ctx, d.store, d.calendar, mentions, schema, d.now())
	if err != nil {
		return "", nil, err
	}

	return fmt.Sprintf("Imported %d account(s), %d task(s), %d mention(s), %d event(s)",
			res.Accounts, res.Tasks, res.Mentions, res.Events),
		map[string]any{
			"accountsImported": res.Accounts,
			"tasksImported":    res.Tasks,
			"mentionsImported": res.Mentions,
			"eventsImported":   res.Events,
		}, nil
}
