// Package main provides the ndshape CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/ndshape/internal/config"
	"github.com/born-ml/ndshape/internal/logging"
	"github.com/born-ml/ndshape/internal/shapeinfo"
)

const version = "v0.1.0-dev"

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	shapes shapeinfo.Source
	enc    *shapeinfo.Encoder
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "ndshape",
		Short:        "Shape descriptor encoder and DQN topology builder",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "ndshape.yaml", "path to YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newEncodeCmd(a),
		newInspectCmd(a),
		newDQNCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ndshape %s\n", version)
			},
		},
	)
	return root
}

// init loads configuration and wires the logger and descriptor source.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}

	encCfg := cfg.EncoderConfig()
	encCfg.Logger = logger
	enc, err := shapeinfo.NewEncoder(encCfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.enc = enc
	a.shapes = enc
	if cfg.Shape.CacheEnabled {
		a.shapes = shapeinfo.NewCache(enc)
	}
	return nil
}
