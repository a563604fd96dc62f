package cli

import (
	"fmt"

	"github.com/sandeepkv93/taskline/internal/codec"
	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/config"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move completed tasks into the JSON archive",
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

		col := collection.New()
		col.ReplaceAll(tasks)
		n, err := codec.ArchiveCompleted(cfg.ArchivePath, col)
		if err != nil {
			return fmt.Errorf("archiving: %w", err)
		}
		if n == 0 {
			fmt.Println("no completed tasks to archive")
			return nil
		}
		if err := codec.Save(cfg.StorePath, col.Tasks()); err != nil {
			return fmt.Errorf("saving %s: %w", cfg.StorePath, err)
		}
		fmt.Printf("archived %d tasks to %s\n", n, cfg.ArchivePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
