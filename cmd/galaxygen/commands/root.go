// Package commands wires the galaxygen cobra commands.
//
// Settings resolve in viper order: flag, then GALAXYGEN_* environment
// variable, then default. For example --seed may also come from
// GALAXYGEN_SEED and --log-level from GALAXYGEN_LOG_LEVEL.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/galaxygen/galaxy"
	"github.com/katalvlaran/galaxygen/levels"
	"github.com/katalvlaran/galaxygen/logger"
)

// Setting keys shared by flags, environment and viper lookups.
const (
	keyConfig   = "config"
	keyLogJSON  = "log-json"
	keyLogLevel = "log-level"
	keySeed     = "seed"
	keyDOT      = "dot"
	keyJSON     = "json"
	keyDB       = "db"
	keyName     = "name"
	keyLayout   = "layout"
	keyRun      = "run"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "galaxygen",
		Short: "Generate clustered jump-point galaxies",
		Long: `galaxygen builds a galaxy of systems grouped into hierarchical clusters and
links them with jump points. Each level's cumulative probability table
decides how often a link stays inside its cluster or reaches another level.

Commands:
  generate - build a galaxy and write DOT / JSON / SQLite outputs
  validate - check a level specification without generating
  runs     - list runs stored in a SQLite database
  stats    - analyze a stored run`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}
			l, err := logger.New(a.v.GetBool(keyLogJSON), a.v.GetString(keyLogLevel))
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().String(keyConfig, "", "level specification file (.yaml, .yml, .toml, .json); built-in default when empty")
	root.PersistentFlags().Bool(keyLogJSON, false, "emit JSON logs")
	root.PersistentFlags().String(keyLogLevel, "info", "log level: debug, info, warn, error")

	root.AddCommand(
		a.generateCmd(),
		a.validateCmd(),
		a.runsCmd(),
		a.statsCmd(),
	)

	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GALAXYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyName, "galaxy")
	v.SetDefault(keyLayout, "fdp")

	return v
}

// loadSpec reads the configured spec file, or the built-in default.
func (a *app) loadSpec() (galaxy.Spec, string, error) {
	path := a.v.GetString(keyConfig)
	if path == "" {
		return levels.Default(), "default", nil
	}
	spec, err := levels.Load(path)
	if err != nil {
		return nil, path, err
	}

	return spec, path, nil
}
