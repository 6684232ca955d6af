package logic

import "github.com/f1racepredictor/race-api/internal/data"

// strategyPools holds the candidate tire strategies for one weather branch,
// split by how much risk they carry.
type strategyPools struct {
	conservative []string
	aggressive   []string
	alternative  []string
}

var wetPools = strategyPools{
	conservative: []string{
		"Full Wet → Intermediate → Medium",
		"Intermediate → Medium",
		"Full Wet → Intermediate",
	},
	aggressive: []string{
		"Intermediate → Soft (risky dry gamble)",
		"Full Wet → Medium (early switch)",
		"Intermediate → Full Wet → Soft",
	},
	alternative: []string{
		"Start on Intermediates (if others on Full Wet)",
		"Full Wet → Hard (long stint strategy)",
		"Intermediate → Hard → Soft",
	},
}

var mixedPools = strategyPools{
	conservative: []string{
		"Intermediate → Medium → Hard",
		"Intermediate → Hard",
		"Medium → Hard (if track dries quickly)",
	},
	aggressive: []string{
		"Intermediate → Soft → Medium",
		"Soft → Intermediate → Soft (double switch)",
		"Medium → Soft (aggressive dry switch)",
	},
	alternative: []string{
		"Hard → Intermediate (reverse strategy)",
		"Intermediate → Soft → Hard",
		"Start on Mediums (dry gamble)",
	},
}

// dryHighDegPools applies on circuits with tire wear above 0.7.
var dryHighDegPools = strategyPools{
	conservative: []string{
		"Medium → Hard",
		"Hard → Medium",
		"Medium → Medium",
	},
	aggressive: []string{
		"Soft → Medium → Hard",
		"Soft → Hard",
		"Medium → Soft (undercut attempt)",
	},
	alternative: []string{
		"Hard → Soft (reverse strategy)",
		"Soft → Medium → Medium",
		"Medium → Hard → Soft",
	},
}

var dryNormalPools = strategyPools{
	conservative: []string{
		"Medium → Hard",
		"Soft → Medium",
		"Hard → Medium",
	},
	aggressive: []string{
		"Soft → Soft (double stint on softs)",
		"Soft → Hard (long second stint)",
		"Medium → Soft (late attack)",
	},
	alternative: []string{
		"Hard → Soft (opposite to field)",
		"Soft → Medium → Soft",
		"Medium → Medium",
	},
}

// tireStrategy picks one strategy for an entrant. Driver and team profiles
// average into an aggression score, the grid band dampens or amplifies it,
// and the weather selects the candidate pools. The draw order is: alternative
// gamble first, then aggressive if the score clears the weather branch's
// threshold, else conservative.
func tireStrategy(rng RNG, driver, constructor string, grid int, weather, circuit string) string {
	driverProfile := data.DriverStrategyProfileFor(driver)
	teamProfile := data.TeamStrategyProfileFor(constructor)
	circuitProfile := data.CircuitStrategyProfileFor(circuit)

	aggression := (driverProfile.Aggression + teamProfile.Aggression) / 2

	// Grid band: the front row protects track position, backmarkers gamble.
	var altChance float64
	switch {
	case grid <= 3:
		aggression *= 0.7
		altChance = 0.1
	case grid <= 6:
		aggression *= 0.85
		altChance = 0.2
	case grid <= 10:
		altChance = 0.35
	default:
		aggression *= 1.3
		altChance = 0.5
	}

	// Strategy has more leverage where passing is hard.
	if circuitProfile.OvertakingDifficulty > 0.8 {
		aggression *= 1.2
		altChance += 0.15
	}

	switch weather {
	case WeatherWet:
		aggression *= driverProfile.WetBoost
		return pickFromPools(rng, wetPools, aggression, altChance, 0.7)
	case WeatherMixed:
		return pickFromPools(rng, mixedPools, aggression, altChance, 0.7)
	default:
		aggression *= teamProfile.DryAggressionTrim
		if teamProfile.SignatureStrategy != "" && rng.Float64() < teamProfile.SignatureChance {
			return teamProfile.SignatureStrategy
		}
		if grid > 5 {
			aggression *= driverProfile.LowGridBoost
		}
		if circuitProfile.StrategyImportance > 0.8 {
			aggression *= driverProfile.StrategyCallBoost
		}
		pools := dryNormalPools
		if circuitProfile.TireWear > 0.7 {
			pools = dryHighDegPools
		}
		return pickFromPools(rng, pools, aggression, altChance, 0.75)
	}
}

func pickFromPools(rng RNG, pools strategyPools, aggression, altChance, threshold float64) string {
	if rng.Float64() < altChance {
		return pools.alternative[rng.Intn(len(pools.alternative))]
	}
	if aggression > threshold {
		return pools.aggressive[rng.Intn(len(pools.aggressive))]
	}
	return pools.conservative[rng.Intn(len(pools.conservative))]
}
