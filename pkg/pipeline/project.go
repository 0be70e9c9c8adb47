package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Lrrr908/sewer-showdown/pkg/catalog"
	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// Project is a loaded project directory.
type Project struct {
	Dir        string
	RegionPath string
	Config     config.Config
	Region     *region.Region
	Catalog    *catalog.Catalog // nil when buildings.json is missing or unreadable
}

// LoadProject reads the config, region and catalog from dir. A missing or
// broken catalog is reported as a warning and leaves Catalog nil.
func LoadProject(dir string) (*Project, *validation.Report, error) {
	report := validation.NewReport()

	cfg, err := config.LoadProject(dir)
	if err != nil {
		return nil, report, fmt.Errorf("loading config: %w", err)
	}
	path, err := region.FindProjectFile(dir)
	if err != nil {
		return nil, report, err
	}
	rg, err := region.Load(path)
	if err != nil {
		return nil, report, fmt.Errorf("loading region: %w", err)
	}

	p := &Project{Dir: dir, RegionPath: path, Config: cfg, Region: rg}
	cat, err := catalog.Load(filepath.Join(dir, catalog.ProjectFile))
	if err != nil {
		slog.Warn("catalog unavailable, skipping catalog buildings", "err", err)
		report.AddWarning(validation.Result{
			Level:       validation.LevelPlacement,
			Message:     "building catalog could not be loaded; no catalog buildings will be placed",
			Path:        catalog.ProjectFile,
			ActualValue: err.Error(),
		})
	} else {
		p.Catalog = cat
	}
	return p, report, nil
}

// Generate runs the pipeline on the project's region.
func (p *Project) Generate() (*Result, *validation.Report, error) {
	return Generate(p.Region, p.Config, p.Catalog)
}

// Save writes the project's region back to the file it was loaded from.
func (p *Project) Save() error {
	return region.Save(p.RegionPath, p.Region)
}
