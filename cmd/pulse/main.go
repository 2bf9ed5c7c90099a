package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pulse/internal/cli"
	"github.com/alexanderramin/pulse/internal/config"
	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/dispatch"
	"github.com/alexanderramin/pulse/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulse/pulse.db
	dbPath := os.Getenv("PULSE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulse", "pulse.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewSQLiteStore(database)

	// No external providers are connected yet; the local mirrors stand
	// in so scheduling and messaging still work end to end.
	calendar := repository.NewSQLiteCalendar(database)
	messenger := repository.NewSQLiteMessenger(database)

	var opts []dispatch.Option
	if os.Getenv("PULSE_LOG_OPS") != "" {
		opts = append(opts, dispatch.WithObserver(dispatch.NewLogObserver(os.Stderr)))
	}

	dispatcher := dispatch.NewDispatcher(store, calendar, messenger, config.LoadConfig(), opts...)

	app := &cli.App{
		Dispatcher: dispatcher,
		User:       actingUser(),
	}

	rootCmd := cli.NewRootCmd(app)

	// Piped output still gets the full command tree; only the helper
	// hint depends on the terminal.
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		rootCmd.Example = "  pulse program\n  pulse score leads\n  pulse slots find --from 2025-06-16 --to 2025-06-20"
	}

	return rootCmd.Execute()
}

// actingUser resolves the user identity threaded through every
// operation: PULSE_USER wins, then the OS username.
func actingUser() string {
	if u := os.Getenv("PULSE_USER"); u != "" {
		return u
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "default"
}
