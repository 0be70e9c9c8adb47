package config

import "slices"

// UrbanRadius scales a town radius by its tier multiplier.
func (c Config) UrbanRadius(tier string, radius float64) float64 {
	mult, ok := c.Urban.TierMultiplier[tier]
	if !ok {
		mult = c.Urban.DefaultMultiplier
	}
	return radius * mult
}

// Spacing returns the local street spacing for a town profile.
func (c Config) Spacing(profile string) int {
	if s, ok := c.Urban.ProfileSpacing[profile]; ok && s > 0 {
		return s
	}
	return c.Urban.DefaultSpacing
}

// HasRingRoad reports whether towns with the given profile get a ring road.
func (c Config) HasRingRoad(profile string) bool {
	return slices.Contains(c.Urban.RingRoadProfiles, profile)
}

// Footprint returns the tile extent of kind, swapped when rotated.
func (c Config) Footprint(kind string, rotated bool) (w, h int) {
	fp, ok := c.Buildings.Footprints[kind]
	if !ok {
		fp = c.Buildings.DefaultFootprint
	}
	if rotated {
		return fp.H, fp.W
	}
	return fp.W, fp.H
}

// Rotatable reports whether kind has a non-square footprint.
func (c Config) Rotatable(kind string) bool {
	w, h := c.Footprint(kind, false)
	return w != h
}

// FloorRange returns the floor range for a zone.
func (c Config) FloorRange(zone string) FloorRange {
	if r, ok := c.Buildings.FloorRanges[zone]; ok {
		return r
	}
	return c.Buildings.DefaultFloorRange
}

// FillRatio returns the lot fill ratio for a zone.
func (c Config) FillRatio(zone string) float64 {
	if r, ok := c.Lots.FillRatio[zone]; ok {
		return r
	}
	return c.Lots.DefaultFillRatio
}

// IsDowntownTier reports whether the tier earns the downtown floor bonus.
func (c Config) IsDowntownTier(tier string) bool {
	return slices.Contains(c.Buildings.DowntownTiers, tier)
}

// IsCornerKind reports whether kind is one of the corner building kinds.
func (c Config) IsCornerKind(kind string) bool {
	return slices.Contains(c.Buildings.CornerKinds, kind)
}
