package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Lrrr908/sewer-showdown/internal/store"
	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/pipeline"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

type generateOptions struct {
	seed      int64
	seedSet   bool
	out       string
	dryRun    bool
	jsonStats bool
	db        string
}

func runGenerate(projectPath string, opts generateOptions) error {
	p, report, err := pipeline.LoadProject(projectPath)
	if err != nil {
		return err
	}
	if opts.seedSet {
		p.Config.Seed = opts.seed
	}

	res, r, err := p.Generate()
	report.Merge(r)
	if err != nil {
		printValidationReport(report)
		return fmt.Errorf("generating layout: %w", err)
	}

	if !opts.dryRun {
		if opts.out != "" {
			p.RegionPath = opts.out
		}
		if err := p.Save(); err != nil {
			return err
		}
	}

	if opts.db != "" {
		history, err := store.Open(opts.db)
		if err != nil {
			return err
		}
		defer history.Close()
		if _, err := history.Record(projectPath, p.Config.Seed, p.Region, res.Stats, report); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	if opts.jsonStats {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"seed":       p.Config.Seed,
			"stats":      res.Stats,
			"validation": report,
		})
	}

	printStats(&res.Stats)
	fmt.Println()
	printValidationReport(report)
	if !opts.dryRun {
		fmt.Printf("\nWrote %s\n", p.RegionPath)
	}
	return nil
}

func runValidate(projectPath string) error {
	p, report, err := pipeline.LoadProject(projectPath)
	if err != nil {
		return err
	}
	report.Merge(validation.ValidateConfig(p.Config))
	report.Merge(validation.ValidateRegion(p.Region))

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

type synthOptions struct {
	seed          int64
	width, height int
	towns         int
	compress      bool
	force         bool
}

func runSynth(projectPath string, opts synthOptions) error {
	cfg := config.Default()
	cfg.Seed = opts.seed
	if opts.width > 0 {
		cfg.Synth.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Synth.Height = opts.height
	}
	if opts.towns > 0 {
		cfg.Synth.TownCount = opts.towns
	}

	if _, err := region.FindProjectFile(projectPath); err == nil && !opts.force {
		return fmt.Errorf("%s already holds a region; use --force to overwrite", projectPath)
	}
	if err := os.MkdirAll(projectPath, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	rg := region.Synthesize(cfg.Synth, cfg.Seed)
	name := region.ProjectFiles[0]
	if opts.compress {
		name = region.ProjectFiles[1]
	}
	path := filepath.Join(projectPath, name)
	if err := region.Save(path, rg); err != nil {
		return err
	}

	cfgPath := filepath.Join(projectPath, config.ProjectFile)
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) || opts.force {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	fmt.Printf("Wrote %s (%dx%d, %d towns)\n", path, rg.Width(), rg.Height(), len(rg.Towns))
	return nil
}

func runHistory(db string, limit int) error {
	history, err := store.Open(db)
	if err != nil {
		return err
	}
	defer history.Close()

	runs, err := history.Runs(limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	printHistory(runs)
	return nil
}
