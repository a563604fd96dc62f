package cli

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/taskline/internal/codec"
	"github.com/sandeepkv93/taskline/internal/config"
	"github.com/sandeepkv93/taskline/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportNotes bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the task list as a markdown checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrCreate(configPath)
		if err != nil {
			return err
		}
		tasks, err := codec.Load(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", cfg.StorePath, err)
		}

		md := export.Markdown(tasks, export.Options{ShowNotes: exportNotes})
		out := exportOut
		if out == "" {
			out = cfg.ExportPath
		}
		if out == "-" {
			fmt.Print(md)
			return nil
		}
		if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("exported %d tasks to %s\n", len(tasks), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, or - for stdout (defaults to the configured export path)")
	exportCmd.Flags().BoolVar(&exportNotes, "notes", false, "include task notes as indented continuation lines")
	rootCmd.AddCommand(exportCmd)
}
