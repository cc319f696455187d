package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"srboli-wheel/internal/app"
	"srboli-wheel/internal/config"
	"srboli-wheel/internal/entries"
	"srboli-wheel/internal/logger"
	"srboli-wheel/internal/wheel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagEntries  string
	flagWatch    bool
	flagStrategy string
	flagSeed     uint64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagDemo     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "srboli-wheel",
		Short: "Srboli Wheel - terminal prize wheel",
		Long: `Srboli Wheel spins a prize wheel of names in the terminal and announces
the entry that stops under the pointer.

Names can be added interactively, imported from a text file with one name
per line, or preset in a YAML settings file. Use --watch to re-import the
names file whenever it changes.`,
		SilenceUsage: true,
		RunE:         run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagEntries, "entries", "e", "", "Names file to import (one name per line)")
	pf.StringVar(&flagStrategy, "strategy", "", "Winner selection: uniform or weighted (overrides settings)")
	pf.Uint64Var(&flagSeed, "seed", 0, "Seed for reproducible spins (0 uses a crypto source)")
	pf.StringVar(&flagConfig, "config", "", "YAML settings file")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagDemo, "demo", false, "Start with a demo list of names")
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Re-import the names file when it changes")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "spin",
		Short: "Spin once without the TUI and print the winner",
		Args:  cobra.NoArgs,
		RunE:  runSpin,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the logger and a wheel loaded with every configured source
// of names. The returned closer flushes the log file.
func setup(headless bool) (*wheel.Engine, wheel.Strategy, zerolog.Logger, func(), error) {
	log, closer, err := logger.Open(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, "", log, nil, err
	}
	done := func() { closer.Close() }

	// without a TUI on the terminal, logs can go to stderr
	if headless && flagLogFile == "" {
		level, err := logger.ParseLevel(flagLogLevel)
		if err != nil {
			done()
			return nil, "", log, nil, err
		}
		log = logger.NewConsole(level)
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		done()
		return nil, "", log, nil, err
	}
	if flagStrategy != "" {
		settings.Strategy = flagStrategy
	}
	strategy := wheel.Strategy(settings.Strategy)
	sel, err := wheel.NewSelector(strategy)
	if err != nil {
		done()
		return nil, "", log, nil, err
	}

	params := wheel.Params{
		MinFullSpins:   settings.MinFullSpins,
		MaxFullSpins:   settings.MaxFullSpins,
		BaseDuration:   settings.BaseDuration,
		DurationJitter: settings.DurationJitter,
		EdgeMargin:     settings.EdgeMargin,
		Easing:         wheel.Easing(settings.Easing),
	}
	if err := params.Validate(); err != nil {
		done()
		return nil, "", log, nil, err
	}

	opts := []wheel.Option{
		wheel.WithSelector(sel),
		wheel.WithParams(params),
		wheel.WithLogger(log),
	}
	if flagSeed != 0 {
		opts = append(opts, wheel.WithRandom(wheel.NewSeededRNG(flagSeed)))
	}
	eng := wheel.New(opts...)

	for _, nc := range settings.Entries {
		w := config.DefaultWeight
		if nc.Weight != nil {
			w = *nc.Weight
		}
		eng.AddEntry(nc.Name, w)
	}
	if flagDemo {
		for _, d := range entries.Demo() {
			eng.AddEntry(d.Name, d.Weight)
		}
	}
	if flagEntries != "" {
		n, err := entries.Import(eng, flagEntries)
		if err != nil {
			done()
			return nil, "", log, nil, err
		}
		log.Info().Str("path", flagEntries).Int("added", n).Msg("names imported")
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("strategy", string(strategy)).
		Int("entries", eng.Len()).
		Msg("wheel ready")
	return eng, strategy, log, done, nil
}

func run(cmd *cobra.Command, args []string) error {
	eng, strategy, log, done, err := setup(false)
	if err != nil {
		return err
	}
	defer done()

	watchPath := ""
	if flagWatch {
		if flagEntries == "" {
			return errors.New("--watch needs --entries")
		}
		watchPath = flagEntries
	}

	model := app.New(app.Options{
		Engine:      eng,
		Strategy:    strategy,
		EntriesPath: watchPath,
		Log:         log,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Start the watcher with reference to the tea program
	if err := model.StartWatcher(ctx, p); err != nil {
		return err
	}

	_, err = p.Run()
	model.StopWatcher()
	return err
}

func runSpin(cmd *cobra.Command, args []string) error {
	eng, _, _, done, err := setup(true)
	if err != nil {
		return err
	}
	defer done()

	plan, err := eng.Spin()
	if err != nil {
		return err
	}
	for {
		res, finished := eng.Update(config.HeadlessFrame)
		if finished {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Selected: %s\n", res.Entry.Name)
			fmt.Fprintf(out, "  index %d of %d, %d full turns, rotation %.1fdeg\n",
				res.Index, eng.Len(), plan.FullSpins, wheel.NormalizeDeg(res.Rotation))
			return nil
		}
	}
}
