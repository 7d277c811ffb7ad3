package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/internal/config"
	"github.com/katalvlaran/graphsearch/internal/shell"
)

// flags holds the raw command-line values before they are merged into a
// config.Config.
type flags struct {
	configPath string
	capacity   int
	noMenu     bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "graphsearch",
		Short: "Interactive DFS/BFS exerciser for a small adjacency-list graph",
		Long: `graphsearch reads one-letter commands from stdin:

  z            initialize the graph
  v            insert a vertex
  e SRC DEST   insert an undirected edge
  d START      depth-first search
  b START      breadth-first search
  p            print the adjacency lists
  q            quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())
			logger.Debug("config resolved", "capacity", cfg.Capacity, "menu", cfg.Menu)

			g := core.NewGraph(core.WithCapacity(cfg.Capacity))
			sh := shell.New(g, cmd.InOrStdin(), cmd.OutOrStdout(),
				shell.WithLogger(logger),
				shell.WithMenu(cfg.Menu),
			)

			return sh.Run(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.IntVar(&f.capacity, "capacity", core.DefaultCapacity, "number of vertex slots")
	fs.BoolVar(&f.noMenu, "no-menu", false, "do not print the menu banner and prompts")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// resolveConfig layers defaults, the optional config file and the flags
// the user actually set, then validates.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if fs.Changed("no-menu") {
		cfg.Menu = !f.noMenu
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
