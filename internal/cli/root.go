package cli

import (
	"fmt"
	"os"
	"strings"

	"jot-cli/internal/format"
	"jot-cli/internal/store"
	"jot-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "jot",
		Short:        "jot (local-first) notes CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  jot

  # Scriptable commands
  jot list --query urgent

  # Capture without opening the TUI
  jot new --title "Groceries" --tags "food, errands"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("JOT_DIR", ""), "Path to data dir (default: ~/.jot)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newNewCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := openStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func openStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
	}
	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, err
	}
	return s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
