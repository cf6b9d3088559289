package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/0wafi0/ng-snake/config"
	"github.com/0wafi0/ng-snake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake is a grid snake game for the terminal",
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	configFile  string
	logLevel    string
	logFile     string
	metricsAddr string

	width        int
	height       int
	tick         time.Duration
	foodAttempts int
	seed         int64

	cfg config.Config
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML file with the game settings")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, disabled when empty")
	flags.IntVarP(&width, "width", "W", config.Width, "grid width in cells")
	flags.IntVarP(&height, "height", "H", config.Height, "grid height in cells")
	flags.DurationVarP(&tick, "tick", "t", config.TickInterval, "time between two steps")
	flags.IntVar(&foodAttempts, "food-attempts", config.FoodAttempts, "random draws before food placement scans the grid")
	flags.Int64Var(&seed, "seed", config.Seed, "random seed, 0 picks one from the clock")
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup configures logging and builds the game config. Settings from the
// config file are overridden by flags given on the command line.
func setup(c *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrap(err, "unable to open log file")
		}
		log.SetOutput(f)
	}

	cfg = config.Default()
	if configFile != "" {
		if cfg, err = config.LoadFile(configFile); err != nil {
			return err
		}
	}

	flags := c.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("tick") {
		cfg.Tick = tick
	}
	if flags.Changed("food-attempts") {
		cfg.FoodAttempts = foodAttempts
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	log.WithFields(log.Fields{
		"Width":  cfg.Width,
		"Height": cfg.Height,
		"Tick":   cfg.Tick,
		"Seed":   cfg.Seed,
	}).Debug("configuration loaded")
	return cfg.Validate()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the snake version",
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Version)
	},
}
