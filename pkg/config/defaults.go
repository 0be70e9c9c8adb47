package config

// Default returns the tuned configuration the generator ships with.
func Default() Config {
	return Config{
		Seed: 42,
		Terrain: TerrainConfig{
			MaxBridgeSpan: 6,
		},
		Roads: RoadConfig{
			CostLand:              1,
			CostMountain:          3,
			CostBridge:            12,
			TurnPenalty:           12,
			HighwayDiscount:       0.5,
			ArterialMountainExtra: 1,
			HighwayFallbackCount:  5,
			CrossLinkFraction:     0.2,
			CrossLinkMaxDist:      40,
		},
		Urban: UrbanConfig{
			TierMultiplier:    map[string]float64{"A": 3.5, "B": 2.5, "C": 2.0},
			DefaultMultiplier: 2.0,
			ProfileSpacing: map[string]int{
				"downtown": 10, "metro": 10,
				"arts_district": 12, "tourist": 12,
				"suburb": 16, "industrial": 14,
			},
			DefaultSpacing:   12,
			RingRoadProfiles: []string{"downtown", "metro"},
			RingRoadFraction: 0.8,
		},
		Blocks: BlockConfig{
			MinBlockArea: 16,
			MinParkArea:  3,
		},
		Zoning: ZoningConfig{
			HighwayDist:  2,
			ArterialDist: 3,
			WaterDist:    4,
			CenterFrac:   0.35,
			MidFrac:      0.70,
		},
		Lots: LotConfig{
			SidewalkDepth:   1,
			LotDepth:        3,
			BuildingGap:     1,
			InteriorDivisor: 10,
			FillRatio: map[string]float64{
				"commercial": 0.45, "industrial": 0.30,
				"residential": 0.30, "sparse": 0.12,
			},
			DefaultFillRatio: 0.2,
		},
		Buildings: BuildingConfig{
			Footprints: map[string]Footprint{
				"mall":        {4, 2},
				"warehouse":   {4, 2},
				"gas_station": {4, 2},
				"apt_tall":    {2, 2},
				"apt_med":     {2, 2},
				"apt_small":   {1, 1},
				"shop":        {2, 2},
				"fastfood":    {2, 2},
				"pizza":       {2, 2},
			},
			DefaultFootprint: Footprint{1, 1},
			ZonePools: map[string][]WeightedKind{
				"commercial":  {{"mall", 2}, {"shop", 5}, {"fastfood", 2}, {"pizza", 2}, {"apt_tall", 2}},
				"industrial":  {{"warehouse", 5}, {"gas_station", 3}, {"shop", 1}},
				"residential": {{"apt_med", 5}, {"apt_small", 6}, {"shop", 1}},
				"sparse":      {{"apt_small", 3}, {"gas_station", 1}},
			},
			FloorRanges: map[string]FloorRange{
				"commercial":  {1, 8},
				"industrial":  {1, 2},
				"residential": {1, 5},
				"sparse":      {1, 1},
			},
			DefaultFloorRange: FloorRange{1, 1},
			DowntownBonusFrac: 0.25,
			DowntownMaxFloors: 40,
			DowntownTiers:     []string{"A", "B"},
			CornerKinds:       []string{"mall", "shop", "gas_station"},
			RotateChance:      0.45,
			ColorVariants:     6,
		},
		Special: SpecialConfig{
			FootprintKind:      "shop",
			MinSpacing:         3,
			MaxRoadDist:        4,
			RoadProbe:          5,
			FallbackMinRadius:  2,
			FallbackMaxRadius:  19,
			NeighborhoodRadius: 6,
			NeighborhoodFill:   0.35,
			NeighborhoodPool: []WeightedKind{
				{"shop", 4}, {"apt_small", 5}, {"apt_med", 2}, {"fastfood", 1}, {"pizza", 1},
			},
			SeedOffset:     7,
			FillSeedOffset: 13,
		},
		Synth: SynthConfig{
			Width:       160,
			Height:      120,
			SeaLevel:    0.30,
			CoastBand:   0.03,
			MountainLvl: 0.74,
			RiverCount:  3,
			TownCount:   12,
		},
	}
}
