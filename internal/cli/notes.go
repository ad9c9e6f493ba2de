package cli

import (
	"fmt"
	"strings"

	"jot-cli/internal/export"
	"jot-cli/internal/search"
	"jot-cli/internal/store"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes (most recently updated first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			notes, _ := store.Bootstrap(s.Load(cmd.Context()))
			return writeOut(cmd, app, search.Filter(notes, query))
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive substring filter over title, tags and content")
	return cmd
}

func newNewCmd(app *App) *cobra.Command {
	var title, tags, content string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			notes, _ := store.Bootstrap(s.Load(ctx))

			n := store.NewBlankNote()
			notes = append(notes, n)
			notes = store.Commit(notes, n.ID, store.EditorFields{Title: title, Tags: tags, Content: content})
			if err := s.Save(ctx, notes); err != nil {
				return writeErr(cmd, err)
			}

			created, _ := store.FindNote(notes, n.ID)
			return writeOut(cmd, app, created)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <note-id>",
		Short: "Write a note as a slugified .txt file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			notes := s.Load(cmd.Context())
			n, ok := store.FindNote(notes, strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, fmt.Errorf("note not found: %s", args[0]))
			}

			dir := outDir
			if dir == "" {
				dir = s.LoadConfig().ExportDir
			}
			path, err := export.Write(dir, n)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"path": path})
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: exportDir from config.json, else cwd)")
	return cmd
}
