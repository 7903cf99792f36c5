package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"handgrid/internal/game"
)

var (
	logger *zap.Logger

	flagListen  string
	flagDemo    bool
	flagSeed    uint64
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "handgrid",
		Short: "Hand-gesture grid sculptor",
		Long: `Handgrid turns a live stream of hand landmarks into block edits on a
fixed grid: point to place, pinch to grab and drag, join both hands to
pop the newest block.

Landmark frames arrive as JSON datagrams over UDP from an external
hand-tracking bridge; --demo runs a scripted choreography instead.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&flagListen, "listen", "", "UDP address for detector frames (overrides config)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "run the scripted demo choreography (no detector needed)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "deterministic seed (0 = clock)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "handgrid: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	if flagVerbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	listen := cfg.GetString(cfgKeyListen)
	if cmd.Flags().Changed("listen") {
		listen = flagListen
	}
	demo := cfg.GetBool(cfgKeyDemo)
	if cmd.Flags().Changed("demo") {
		demo = flagDemo
	}

	return game.Run(game.Options{
		ListenAddr: listen,
		Demo:       demo,
		Seed:       flagSeed,
		Log:        logger,
	})
}
