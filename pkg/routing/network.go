package routing

import (
	"log/slog"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// BuildNetwork runs the highway, arterial and local passes in order and
// merges them into a centerline graph. Each pass subtracts the tiles already
// claimed by the passes before it.
func BuildNetwork(g *terrain.Grid, water *terrain.Water, towns []region.Town, cfg config.Config) (*Graph, *validation.Report) {
	report := validation.NewReport()

	highways, r := Highways(g, water, towns, cfg.Roads)
	report.Merge(r)

	arterials, r := Arterials(g, water, towns, highways, cfg.Roads)
	report.Merge(r)

	major := highways.Clone()
	major.AddAll(arterials)
	locals, r := LocalStreets(g, water, towns, major, cfg)
	report.Merge(r)

	graph := BuildGraph(g.W, g.H, highways, arterials, locals)
	slog.Info("roads synthesized",
		"highway", highways.Len(),
		"arterial", arterials.Len(),
		"local", locals.Len(),
		"centerlines", len(graph.Tiles))
	return graph, report
}
