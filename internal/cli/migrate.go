package cli

import (
	"fmt"

	"github.com/sandeepkv93/taskline/internal/codec"
	"github.com/sandeepkv93/taskline/internal/config"
	"github.com/spf13/cobra"
)

var migrateDest string

var migrateCmd = &cobra.Command{
	Use:   "migrate <source>",
	Short: "Import tasks from another store into the line format",
	Long: `Import tasks from a JSON export (.json), a taskd sqlite database (.db)
or an older line-format file, and write them to the destination store.

Unreadable records are skipped, never fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := migrateDest
		if dest == "" {
			cfg, err := config.LoadOrCreate(configPath)
			if err != nil {
				return err
			}
			dest = cfg.StorePath
		}
		n, err := codec.Migrate(args[0], dest)
		if err != nil {
			return fmt.Errorf("migrating %s: %w", args[0], err)
		}
		fmt.Printf("imported %d tasks into %s\n", n, dest)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateDest, "out", "o", "", "destination store (defaults to the configured store)")
	rootCmd.AddCommand(migrateCmd)
}
