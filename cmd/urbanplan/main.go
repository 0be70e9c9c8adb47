package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lrrr908/sewer-showdown/internal/server"
	"github.com/Lrrr908/sewer-showdown/internal/store"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "urbanplan",
		Short: "Procedural road network and city layout generator for region maps",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(synthCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate roads and buildings and write them into the region file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			return runGenerate(args[0], opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "override the configured seed")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the region here instead of overwriting the input")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "run the pipeline without writing any file")
	cmd.Flags().BoolVar(&opts.jsonStats, "json", false, "print stats and validation as JSON")
	cmd.Flags().StringVar(&opts.db, "db", "", "record the run in this history database")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project's config, region and generated layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func synthCmd() *cobra.Command {
	var opts synthOptions

	cmd := &cobra.Command{
		Use:   "synth [project-path]",
		Short: "Create a project with a synthetic region and the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSynth(args[0], opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "terrain and town seed")
	cmd.Flags().IntVar(&opts.width, "width", 0, "region width in tiles (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "region height in tiles (default from config)")
	cmd.Flags().IntVar(&opts.towns, "towns", 0, "number of towns (default from config)")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "write region.json.zst")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing project")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		port int
		db   string
	)

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var history *store.Store
			if db != "" {
				var err error
				if history, err = store.Open(db); err != nil {
					return err
				}
				defer history.Close()
			}
			srv := server.New(args[0], port, history)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&db, "db", "", "record generate requests in this history database")
	return cmd
}

func historyCmd() *cobra.Command {
	var (
		db    string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runHistory(db, limit)
		},
	}

	cmd.Flags().StringVar(&db, "db", "urbanplan.db", "history database")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show")
	return cmd
}
