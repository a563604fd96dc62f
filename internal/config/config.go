package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "taskline.toml"
	DefaultStorePath      = "tasks.txt"
	DefaultArchivePath    = "archive.json"
)

type Keymap struct {
	Quit     string `toml:"quit"`
	Add      string `toml:"add"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Toggle   string `toml:"toggle"`
	Delete   string `toml:"delete"`
	Search   string `toml:"search"`
	Filter   string `toml:"filter"`
	Sort     string `toml:"sort"`
	Undo     string `toml:"undo"`
	Redo     string `toml:"redo"`
	Archive  string `toml:"archive"`
	Export   string `toml:"export"`
	Notes    string `toml:"notes"`
	Help     string `toml:"help"`
}

type Config struct {
	StorePath       string `toml:"store_path"`
	ArchivePath     string `toml:"archive_path"`
	ExportPath      string `toml:"export_path"`
	ReminderHour    int    `toml:"reminder_hour"`
	SchedulerBuffer int    `toml:"scheduler_buffer"`
	ShowNotes       bool   `toml:"show_notes"`
	Keys            Keymap `toml:"keys"`
}

// LoadOrCreate reads the TOML config at path, writing the defaults first
// when the file does not exist. Missing keys in a partial file keep their
// default values.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath
	}
	if cfg.ArchivePath == "" {
		cfg.ArchivePath = DefaultArchivePath
	}
	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		cfg.ReminderHour = Default().ReminderHour
	}
	if cfg.SchedulerBuffer <= 0 {
		cfg.SchedulerBuffer = Default().SchedulerBuffer
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		StorePath:       DefaultStorePath,
		ArchivePath:     DefaultArchivePath,
		ExportPath:      "tasks.md",
		ReminderHour:    9,
		SchedulerBuffer: 64,
		ShowNotes:       false,
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Search:  "/",
			Filter:  "f",
			Sort:    "s",
			Undo:    "u",
			Redo:    "r",
			Archive: "A",
			Export:  "E",
			Notes:   "n",
			Help:    "?",
		},
	}
}
