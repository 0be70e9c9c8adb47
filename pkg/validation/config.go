package validation

import (
	"fmt"
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
)

// ValidateConfig performs schema validation on a generator config. It checks
// structural correctness before any generation runs.
func ValidateConfig(cfg config.Config) *Report {
	r := NewReport()

	validateRoads(cfg, r)
	validateUrban(cfg, r)
	validateBlocks(cfg, r)
	validateLots(cfg, r)
	validateBuildings(cfg, r)
	validateSpecial(cfg, r)

	return r
}

func positive(r *Report, path string, v float64) {
	if v <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be greater than 0", path),
			Path:        path,
			ActualValue: v,
			Expected:    "> 0",
		})
	}
}

func nonNegative(r *Report, path string, v float64) {
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be non-negative", path),
			Path:        path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func fraction(r *Report, path string, v float64) {
	if v < 0 || v > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s %.3f is outside [0, 1]", path, v),
			Path:        path,
			ActualValue: v,
			Expected:    "0-1",
		})
	}
}

func validateRoads(cfg config.Config, r *Report) {
	rc := cfg.Roads
	positive(r, "terrain.max_bridge_span", float64(cfg.Terrain.MaxBridgeSpan))
	positive(r, "roads.cost_land", rc.CostLand)
	positive(r, "roads.cost_mountain", rc.CostMountain)
	positive(r, "roads.cost_bridge", rc.CostBridge)
	nonNegative(r, "roads.turn_penalty", rc.TurnPenalty)
	nonNegative(r, "roads.highway_discount", rc.HighwayDiscount)
	nonNegative(r, "roads.arterial_mountain_extra", rc.ArterialMountainExtra)
	positive(r, "roads.highway_fallback_count", float64(rc.HighwayFallbackCount))
	fraction(r, "roads.cross_link_fraction", rc.CrossLinkFraction)
	nonNegative(r, "roads.cross_link_max_dist", rc.CrossLinkMaxDist)

	if rc.CostBridge < rc.CostLand {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "bridge cost is below land cost; roads will prefer water crossings",
			Path:        "roads.cost_bridge",
			ActualValue: rc.CostBridge,
			Suggestions: []string{"Keep cost_bridge well above cost_land"},
		})
	}
}

func validateUrban(cfg config.Config, r *Report) {
	u := cfg.Urban
	positive(r, "urban.default_multiplier", u.DefaultMultiplier)
	positive(r, "urban.default_spacing", float64(u.DefaultSpacing))
	fraction(r, "urban.ring_road_fraction", u.RingRoadFraction)
	for _, tier := range sortedKeys(u.TierMultiplier) {
		positive(r, fmt.Sprintf("urban.tier_multiplier.%s", tier), u.TierMultiplier[tier])
	}
	for _, profile := range sortedKeys(u.ProfileSpacing) {
		positive(r, fmt.Sprintf("urban.profile_spacing.%s", profile), float64(u.ProfileSpacing[profile]))
	}
}

func validateBlocks(cfg config.Config, r *Report) {
	b := cfg.Blocks
	positive(r, "blocks.min_park_area", float64(b.MinParkArea))
	if b.MinBlockArea <= b.MinParkArea {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("min_block_area (%d) must exceed min_park_area (%d)", b.MinBlockArea, b.MinParkArea),
			Path:        "blocks.min_block_area",
			ActualValue: b.MinBlockArea,
			Expected:    fmt.Sprintf("> %d", b.MinParkArea),
		})
	}

	z := cfg.Zoning
	fraction(r, "zoning.center_frac", z.CenterFrac)
	fraction(r, "zoning.mid_frac", z.MidFrac)
	if z.CenterFrac > z.MidFrac {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("zoning.center_frac (%.2f) must not exceed mid_frac (%.2f)", z.CenterFrac, z.MidFrac),
			Path:        "zoning.center_frac",
			ActualValue: z.CenterFrac,
		})
	}
}

func validateLots(cfg config.Config, r *Report) {
	l := cfg.Lots
	nonNegative(r, "lots.sidewalk_depth", float64(l.SidewalkDepth))
	positive(r, "lots.lot_depth", float64(l.LotDepth))
	nonNegative(r, "lots.building_gap", float64(l.BuildingGap))
	positive(r, "lots.interior_divisor", float64(l.InteriorDivisor))
	fraction(r, "lots.default_fill_ratio", l.DefaultFillRatio)
	for _, zone := range sortedKeys(l.FillRatio) {
		fraction(r, fmt.Sprintf("lots.fill_ratio.%s", zone), l.FillRatio[zone])
	}
}

func validateBuildings(cfg config.Config, r *Report) {
	b := cfg.Buildings
	for _, kind := range sortedKeys(b.Footprints) {
		fp := b.Footprints[kind]
		if fp.W <= 0 || fp.H <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("footprint for %s must be at least 1x1", kind),
				Path:        fmt.Sprintf("buildings.footprints.%s", kind),
				ActualValue: fmt.Sprintf("%dx%d", fp.W, fp.H),
				Expected:    ">= 1x1",
			})
		}
	}
	for _, zone := range sortedKeys(b.ZonePools) {
		validatePool(r, fmt.Sprintf("buildings.zone_pools.%s", zone), b.ZonePools[zone])
	}
	for _, zone := range sortedKeys(b.FloorRanges) {
		validateFloorRange(r, fmt.Sprintf("buildings.floor_ranges.%s", zone), b.FloorRanges[zone])
	}
	validateFloorRange(r, "buildings.default_floor_range", b.DefaultFloorRange)
	fraction(r, "buildings.downtown_bonus_frac", b.DowntownBonusFrac)
	fraction(r, "buildings.rotate_chance", b.RotateChance)
	positive(r, "buildings.color_variants", float64(b.ColorVariants))
	if len(b.CornerKinds) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "buildings.corner_kinds must list at least one kind",
			Path:     "buildings.corner_kinds",
			Expected: "at least 1 kind",
		})
	}
}

func validateSpecial(cfg config.Config, r *Report) {
	s := cfg.Special
	nonNegative(r, "special.min_spacing", float64(s.MinSpacing))
	nonNegative(r, "special.neighborhood_radius", float64(s.NeighborhoodRadius))
	fraction(r, "special.neighborhood_fill", s.NeighborhoodFill)
	validatePool(r, "special.neighborhood_pool", s.NeighborhoodPool)
	if s.FallbackMinRadius > s.FallbackMaxRadius {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("fallback_min_radius (%d) exceeds fallback_max_radius (%d)", s.FallbackMinRadius, s.FallbackMaxRadius),
			Path:        "special.fallback_min_radius",
			ActualValue: s.FallbackMinRadius,
		})
	}
}

func validatePool(r *Report, path string, pool []config.WeightedKind) {
	total := 0.0
	for i, wk := range pool {
		if wk.Weight < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s[%d] (%s): weight must be non-negative", path, i, wk.Kind),
				Path:        fmt.Sprintf("%s[%d].weight", path, i),
				ActualValue: wk.Weight,
				Expected:    ">= 0",
			})
		}
		total += wk.Weight
	}
	if total <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must have positive total weight", path),
			Path:        path,
			ActualValue: total,
			Expected:    "> 0",
		})
	}
}

func validateFloorRange(r *Report, path string, fr config.FloorRange) {
	if fr.Min < 1 || fr.Max < fr.Min {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%d-%d) must satisfy 1 <= min <= max", path, fr.Min, fr.Max),
			Path:        path,
			ActualValue: fmt.Sprintf("%d-%d", fr.Min, fr.Max),
			Expected:    "1 <= min <= max",
		})
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
