package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/cobra"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

type app struct {
	configPath string
	config     *Config
	log        *logger.L

	// startLogging sets up logging and returns the function that flushes it.
	startLogging func(LoggingConfig) (func(), error)
	stopLogging  func()
}

func newApp() *app {
	return &app{startLogging: startLogging}
}

// finish flushes the logger if it was started. Cobra skips post-run hooks
// when a command fails, so this runs after Execute instead.
func (a *app) finish() {
	if a.stopLogging != nil {
		a.stopLogging()
		a.stopLogging = nil
	}
}

func main() {
	if err := run(newApp(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line args and finishes logging whatever the
// outcome.
func run(a *app, args []string, stdout, stderr io.Writer) error {
	defer a.finish()
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "avldemo",
		Version:      version,
		Short:        "Demonstrates a self-balancing AVL tree",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			stop, err := a.startLogging(config.Logging)
			if err != nil {
				return fmt.Errorf("logger initialisation failed: %w", err)
			}
			a.stopLogging = stop
			a.config = config
			a.log = logger.New("avldemo")
			a.log.Debugf("config: %+v", *config)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration `FILE`")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Insert, print, query and remove values step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Infof("demo with %d values", len(a.config.Demo.Values))
			tree, err := runDemo(cmd.OutOrStdout(), a.config.Demo)
			if err != nil {
				a.log.Errorf("demo: %s", err)
				return err
			}
			a.log.Infof("demo done: size: %d  height: %d", tree.Size(), tree.Height())
			return nil
		},
	}

	var values []int
	rangeCmd := &cobra.Command{
		Use:   "range LOW HIGH",
		Short: "Print the values within [LOW, HIGH]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad LOW: %w", err)
			}
			high, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad HIGH: %w", err)
			}
			if !cmd.Flags().Changed("values") {
				values = a.config.Demo.Values
			}
			res := runRange(cmd.OutOrStdout(), values, low, high)
			a.log.Infof("range [%d, %d]: %d results", low, high, len(res))
			return nil
		},
	}
	rangeCmd.Flags().IntSliceVar(&values, "values", nil, "values to insert (default from config)")

	var ops int
	var seed int64
	stressCmd := &cobra.Command{
		Use:   "stress",
		Short: "Random inserts and removes, checking the invariants after each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.config.Stress
			if cmd.Flags().Changed("n") {
				c.Ops = ops
			}
			if cmd.Flags().Changed("seed") {
				c.Seed = seed
			}
			if err := c.validate(); err != nil {
				return fmt.Errorf("bad stress flags: %w", err)
			}
			rep, err := runStress(c)
			if err != nil {
				a.log.Criticalf("stress: %s", err)
				return err
			}
			a.log.Infof("stress: %+v", rep)
			fmt.Fprintf(cmd.OutOrStdout(), "ops: %d  inserted: %d  removed: %d  rotations: %d  size: %d  max height: %d\n",
				rep.Ops, rep.Inserted, rep.Removed, rep.Rotations, rep.Size, rep.MaxHeight)
			return nil
		},
	}
	stressCmd.Flags().IntVar(&ops, "n", 0, "number of operations (default from config)")
	stressCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "avldemo version: %s\n", version)
		},
	}

	rootCmd.AddCommand(demoCmd, rangeCmd, stressCmd, versionCmd)
	return rootCmd
}
