// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/ccgeom/ccgeom"
	"github.com/ccgeom/ccgeom/builder"
	"github.com/ccgeom/ccgeom/config"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	engine *ccgeom.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ccgeom",
		Short: "Platonic surface registry and half-edge mesh builder",
		Long: `Inspect the Platonic template catalog and build validated closed surfaces.

Configuration is read from --config (YAML) and CCGEOM_* environment
variables; --log-level overrides log.level.

Examples:
  ccgeom classify 4 6 4
  ccgeom catalog
  ccgeom solid cube --config ccgeom.yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	root.AddCommand(
		newClassifyCmd(a),
		newCatalogCmd(),
		newSolidCmd(a),
	)

	return root
}

// setup loads configuration and builds the engine. Logs go to stderr so
// stdout carries results only.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	engine, err := ccgeom.New(cfg, builder.WithLogger(logger))
	if err != nil {
		return err
	}
	a.cfg, a.engine = cfg, engine
	logger.Debug("configuration loaded",
		"config", a.configPath,
		"derive_edges", cfg.Builder.DeriveEdges,
		"derive_half_edges", cfg.Builder.DeriveHalfEdges,
		"max_surfaces", cfg.Store.MaxSurfaces,
	)

	return nil
}
