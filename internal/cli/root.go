package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskline/internal/codec"
	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/config"
	"github.com/sandeepkv93/taskline/internal/scheduler"
	"github.com/sandeepkv93/taskline/internal/update"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "taskline",
	Short: "Terminal task manager with due dates, tags and reminders",
	Long: `taskline is a single-user terminal task manager. Tasks carry a title,
priority, due date, tags, a markdown note and an optional recurrence rule.

Running taskline without a subcommand opens the interactive list. The store
is a plain text file, so it survives editors, syncing and version control.`,
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

		engine := scheduler.NewEngine(cfg.SchedulerBuffer)
		engine.Start()
		defer engine.Stop()

		program := tea.NewProgram(update.NewModel(cfg, col, engine))
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFileName, "path to the config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
