package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgoodman/uwo-santa-clause/internal/config"
	"github.com/pgoodman/uwo-santa-clause/internal/delay"
	"github.com/pgoodman/uwo-santa-clause/internal/event"
	"github.com/pgoodman/uwo-santa-clause/internal/logging"
	"github.com/pgoodman/uwo-santa-clause/internal/narrate"
	"github.com/pgoodman/uwo-santa-clause/internal/workshop"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation to completion",
	Long: `Run the simulation until the last reindeer departs.

An interrupt (Ctrl-C) stops the run early through the same teardown path
as normal completion.`,
	RunE: runSimulation,
}

func init() {
	runCmd.Flags().Int("elves", 0, "elf pool size (overrides config)")
	runCmd.Flags().Int("reindeer", 0, "reindeer herd size (overrides config)")
	runCmd.Flags().Int("group-size", 0, "elves helped per group (overrides config)")
	runCmd.Flags().Uint64("seed", 0, "delay source seed, 0 seeds from the clock")
	runCmd.Flags().Bool("no-narration", false, "disable console narration")

	_ = viper.BindPFlag("workshop.elves", runCmd.Flags().Lookup("elves"))
	_ = viper.BindPFlag("workshop.reindeer", runCmd.Flags().Lookup("reindeer"))
	_ = viper.BindPFlag("workshop.group_size", runCmd.Flags().Lookup("group-size"))
	_ = viper.BindPFlag("delays.seed", runCmd.Flags().Lookup("seed"))

	rootCmd.AddCommand(runCmd)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	bus := event.NewBus()
	noNarration, _ := cmd.Flags().GetBool("no-narration")
	if cfg.Narration.Enabled && !noNarration {
		narrate.New(cmd.OutOrStdout(), cfg.Narration.Color).Attach(bus)
	}

	run, err := workshop.New(workshop.Config{
		Elves:     cfg.Workshop.Elves,
		Reindeer:  cfg.Workshop.Reindeer,
		GroupSize: cfg.Workshop.GroupSize,
	},
		workshop.WithBus(bus),
		workshop.WithLogger(logger),
		workshop.WithDelaySource(delay.NewRandom(cfg.Delays.Min(), cfg.Delays.Max(), cfg.Delays.Seed)),
	)
	if err != nil {
		return err
	}

	// An operator interrupt cancels the run context; teardown is the same
	// as on normal completion.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run.Start(ctx); err != nil {
		return err
	}

	res := run.Wait()
	if res.Err != nil {
		return fmt.Errorf("run failed: %w", res.Err)
	}
	return nil
}
