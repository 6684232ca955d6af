package logic

import "github.com/f1racepredictor/race-api/internal/data"

// winProbability estimates a single entrant's raw win chance in percentage
// points. It is a pure function: constructor base rate × driver skill × grid
// discount × weather fit, clamped to the ruleset's bounds. Normalization
// across the grid happens later in the assembler.
func winProbability(rs *data.Ruleset, driver, constructor string, grid int, weather string) float64 {
	base := rs.BaseRateFor(constructor)
	driverFactor := rs.DriverFactorFor(driver)
	gridFactor := gridFactor(rs.GridModel, grid)
	weatherFactor := weatherFactor(rs, driver, weather)

	prob := base * driverFactor * gridFactor * weatherFactor

	if prob > rs.MaxProbability {
		prob = rs.MaxProbability
	}
	if prob < rs.MinProbability {
		prob = rs.MinProbability
	}
	return prob
}

// gridFactor discounts the win chance by starting position.
func gridFactor(model data.GridModel, grid int) float64 {
	if model == data.GridLinear {
		f := 1.0 - float64(grid-1)*0.08
		if f < 0 {
			f = 0
		}
		return f
	}

	var f float64
	switch {
	case grid <= 5:
		f = 1.0 - float64(grid-1)*0.1
	case grid <= 10:
		f = 0.6 - float64(grid-6)*0.08
	default:
		f = 0.2 - float64(grid-11)*0.02
	}
	if f < 0.01 {
		f = 0.01
	}
	return f
}

// weatherFactor rewards wet specialists in the rain and discounts everyone
// else; mixed conditions apply the ruleset's flat unpredictability factor.
func weatherFactor(rs *data.Ruleset, driver, weather string) float64 {
	switch weather {
	case WeatherWet:
		if rs.WetSpecialists[driver] {
			return rs.WetBonus
		}
		return rs.WetPenalty
	case WeatherMixed:
		return rs.MixedFactor
	default:
		return 1.0
	}
}
