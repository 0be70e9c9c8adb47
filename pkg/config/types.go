package config

// Config holds every tunable of the generation pipeline. It is built once
// (Default or Load) and passed by value into the pipeline; phases treat it as
// read-only.
type Config struct {
	Seed      int64          `yaml:"seed" json:"seed"`
	Terrain   TerrainConfig  `yaml:"terrain" json:"terrain"`
	Roads     RoadConfig     `yaml:"roads" json:"roads"`
	Urban     UrbanConfig    `yaml:"urban" json:"urban"`
	Blocks    BlockConfig    `yaml:"blocks" json:"blocks"`
	Zoning    ZoningConfig   `yaml:"zoning" json:"zoning"`
	Lots      LotConfig      `yaml:"lots" json:"lots"`
	Buildings BuildingConfig `yaml:"buildings" json:"buildings"`
	Special   SpecialConfig  `yaml:"special" json:"special"`
	Synth     SynthConfig    `yaml:"synth" json:"synth"`
}

type TerrainConfig struct {
	MaxBridgeSpan int `yaml:"max_bridge_span" json:"max_bridge_span"`
}

// RoadConfig holds the pathfinding cost model and network topology knobs.
type RoadConfig struct {
	CostLand              float64 `yaml:"cost_land" json:"cost_land"`
	CostMountain          float64 `yaml:"cost_mountain" json:"cost_mountain"`
	CostBridge            float64 `yaml:"cost_bridge" json:"cost_bridge"`
	TurnPenalty           float64 `yaml:"turn_penalty" json:"turn_penalty"`
	HighwayDiscount       float64 `yaml:"highway_discount" json:"highway_discount"`
	ArterialMountainExtra float64 `yaml:"arterial_mountain_extra" json:"arterial_mountain_extra"`
	HighwayFallbackCount  int     `yaml:"highway_fallback_count" json:"highway_fallback_count"`
	CrossLinkFraction     float64 `yaml:"cross_link_fraction" json:"cross_link_fraction"`
	CrossLinkMaxDist      float64 `yaml:"cross_link_max_dist" json:"cross_link_max_dist"`
}

// UrbanConfig controls urban radii, street spacing and ring roads.
type UrbanConfig struct {
	TierMultiplier    map[string]float64 `yaml:"tier_multiplier" json:"tier_multiplier"`
	DefaultMultiplier float64            `yaml:"default_multiplier" json:"default_multiplier"`
	ProfileSpacing    map[string]int     `yaml:"profile_spacing" json:"profile_spacing"`
	DefaultSpacing    int                `yaml:"default_spacing" json:"default_spacing"`
	RingRoadProfiles  []string           `yaml:"ring_road_profiles" json:"ring_road_profiles"`
	RingRoadFraction  float64            `yaml:"ring_road_fraction" json:"ring_road_fraction"`
}

type BlockConfig struct {
	MinBlockArea int `yaml:"min_block_area" json:"min_block_area"`
	MinParkArea  int `yaml:"min_park_area" json:"min_park_area"`
}

// ZoningConfig holds the block classification thresholds.
type ZoningConfig struct {
	HighwayDist  int     `yaml:"highway_dist" json:"highway_dist"`
	ArterialDist int     `yaml:"arterial_dist" json:"arterial_dist"`
	WaterDist    int     `yaml:"water_dist" json:"water_dist"`
	CenterFrac   float64 `yaml:"center_frac" json:"center_frac"`
	MidFrac      float64 `yaml:"mid_frac" json:"mid_frac"`
}

// LotConfig controls band depths, spacing and fill ratios.
type LotConfig struct {
	SidewalkDepth    int                `yaml:"sidewalk_depth" json:"sidewalk_depth"`
	LotDepth         int                `yaml:"lot_depth" json:"lot_depth"`
	BuildingGap      int                `yaml:"building_gap" json:"building_gap"`
	InteriorDivisor  int                `yaml:"interior_divisor" json:"interior_divisor"`
	FillRatio        map[string]float64 `yaml:"fill_ratio" json:"fill_ratio"`
	DefaultFillRatio float64            `yaml:"default_fill_ratio" json:"default_fill_ratio"`
}

// Footprint is a building's tile extent before rotation.
type Footprint struct {
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

// WeightedKind is one entry of a weighted building pool.
type WeightedKind struct {
	Kind   string  `yaml:"kind" json:"kind"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// FloorRange is an inclusive (min, max) floor count.
type FloorRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// BuildingConfig describes building kinds, pools and heights.
type BuildingConfig struct {
	Footprints        map[string]Footprint      `yaml:"footprints" json:"footprints"`
	DefaultFootprint  Footprint                 `yaml:"default_footprint" json:"default_footprint"`
	ZonePools         map[string][]WeightedKind `yaml:"zone_pools" json:"zone_pools"`
	FloorRanges       map[string]FloorRange     `yaml:"floor_ranges" json:"floor_ranges"`
	DefaultFloorRange FloorRange                `yaml:"default_floor_range" json:"default_floor_range"`
	DowntownBonusFrac float64                   `yaml:"downtown_bonus_frac" json:"downtown_bonus_frac"`
	DowntownMaxFloors int                       `yaml:"downtown_max_floors" json:"downtown_max_floors"`
	DowntownTiers     []string                  `yaml:"downtown_tiers" json:"downtown_tiers"`
	CornerKinds       []string                  `yaml:"corner_kinds" json:"corner_kinds"`
	RotateChance      float64                   `yaml:"rotate_chance" json:"rotate_chance"`
	ColorVariants     int                       `yaml:"color_variants" json:"color_variants"`
}

// SpecialConfig controls placement of catalog-assigned buildings and the
// infill around them.
type SpecialConfig struct {
	FootprintKind      string         `yaml:"footprint_kind" json:"footprint_kind"`
	MinSpacing         int            `yaml:"min_spacing" json:"min_spacing"`
	MaxRoadDist        int            `yaml:"max_road_dist" json:"max_road_dist"`
	RoadProbe          int            `yaml:"road_probe" json:"road_probe"`
	FallbackMinRadius  int            `yaml:"fallback_min_radius" json:"fallback_min_radius"`
	FallbackMaxRadius  int            `yaml:"fallback_max_radius" json:"fallback_max_radius"`
	NeighborhoodRadius int            `yaml:"neighborhood_radius" json:"neighborhood_radius"`
	NeighborhoodFill   float64        `yaml:"neighborhood_fill" json:"neighborhood_fill"`
	NeighborhoodPool   []WeightedKind `yaml:"neighborhood_pool" json:"neighborhood_pool"`
	SeedOffset         int64          `yaml:"seed_offset" json:"seed_offset"`
	FillSeedOffset     int64          `yaml:"fill_seed_offset" json:"fill_seed_offset"`
}

// SynthConfig parameterizes the synthetic demo region.
type SynthConfig struct {
	Width       int     `yaml:"width" json:"width"`
	Height      int     `yaml:"height" json:"height"`
	SeaLevel    float64 `yaml:"sea_level" json:"sea_level"`
	CoastBand   float64 `yaml:"coast_band" json:"coast_band"`
	MountainLvl float64 `yaml:"mountain_level" json:"mountain_level"`
	RiverCount  int     `yaml:"river_count" json:"river_count"`
	TownCount   int     `yaml:"town_count" json:"town_count"`
}
