package data

// GridModel selects how starting position discounts the win probability.
type GridModel int

const (
	// GridBanded uses three piecewise-linear bands: front runners, midfield
	// and backmarkers, floored at 0.01.
	GridBanded GridModel = iota
	// GridLinear uses a flat 8% discount per grid slot, floored at 0.
	GridLinear
)

// Ruleset parameterizes the win probability estimator. The current-season
// ruleset and the all-era fantasy ruleset share one scoring routine and
// differ only in this data.
type Ruleset struct {
	Name string

	// BaseRates are constructor win rates in percentage points.
	BaseRates       map[string]float64
	DefaultBaseRate float64

	// DriverFactors are skill multipliers applied to the base rate.
	DriverFactors       map[string]float64
	DefaultDriverFactor float64

	GridModel      GridModel
	MaxProbability float64
	MinProbability float64

	// WetSpecialists get WetBonus in wet races; everyone else gets
	// WetPenalty. MixedFactor applies flat in mixed conditions.
	WetSpecialists map[string]bool
	WetBonus       float64
	WetPenalty     float64
	MixedFactor    float64
}

// BaseRateFor returns the constructor's base win rate under this ruleset.
func (r *Ruleset) BaseRateFor(constructor string) float64 {
	if v, ok := r.BaseRates[constructor]; ok {
		return v
	}
	return r.DefaultBaseRate
}

// DriverFactorFor returns the driver's skill multiplier under this ruleset.
func (r *Ruleset) DriverFactorFor(driver string) float64 {
	if v, ok := r.DriverFactors[driver]; ok {
		return v
	}
	return r.DefaultDriverFactor
}

var currentBaseRates = map[string]float64{
	"McLaren":         25,
	"Ferrari":         22,
	"Red Bull Racing": 20,
	"Mercedes":        18,
	"Aston Martin":    8,
	"Alpine":          4,
	"Williams":        2,
	"Haas":            1,
	"RB":              1.5,
	"Kick Sauber":     0.5,
}

var currentRuleset = Ruleset{
	Name:                "current",
	BaseRates:           currentBaseRates,
	DefaultBaseRate:     1.0,
	DriverFactors:       currentDriverFactors(),
	DefaultDriverFactor: defaultDriverPerformance.WinFactor,
	GridModel:           GridBanded,
	MaxProbability:      35.0,
	MinProbability:      0.1,
	WetSpecialists: map[string]bool{
		"Lewis Hamilton":  true,
		"Max Verstappen":  true,
		"Fernando Alonso": true,
	},
	WetBonus:    1.3,
	WetPenalty:  0.85,
	MixedFactor: 0.95,
}

// currentDriverFactors derives the season multipliers from the performance
// table so the two cannot drift apart.
func currentDriverFactors() map[string]float64 {
	factors := make(map[string]float64, len(driverPerformance))
	for name, perf := range driverPerformance {
		factors[name] = perf.WinFactor
	}
	return factors
}

var allEraRuleset = Ruleset{
	Name: "all_era",
	BaseRates: func() map[string]float64 {
		rates := make(map[string]float64, len(currentBaseRates)+8)
		for name, rate := range currentBaseRates {
			rates[name] = rate
		}
		// Historical teams, scaled for cross-era comparison.
		rates["Lotus"] = 15
		rates["Brabham"] = 12
		rates["Tyrrell"] = 8
		rates["Cooper"] = 10
		rates["BRM"] = 6
		rates["Matra"] = 9
		rates["Benetton"] = 14
		rates["Jordan"] = 5
		return rates
	}(),
	DefaultBaseRate: 5,
	DriverFactors: map[string]float64{
		// Current drivers
		"Max Verstappen":  1.4,
		"Lewis Hamilton":  1.3,
		"Charles Leclerc": 1.25,
		"Lando Norris":    1.2,
		"George Russell":  1.15,
		"Fernando Alonso": 1.2,
		"Oscar Piastri":   1.1,
		"Carlos Sainz":    1.1,

		// Legends, adjusted for cross-era comparison
		"Ayrton Senna":       1.45,
		"Michael Schumacher": 1.4,
		"Alain Prost":        1.35,
		"Juan Manuel Fangio": 1.4,
		"Jim Clark":          1.35,
		"Jackie Stewart":     1.3,
		"Niki Lauda":         1.25,
		"Mika Häkkinen":      1.2,
		"Sebastian Vettel":   1.2,
		"Kimi Räikkönen":     1.1,
		"Nigel Mansell":      1.15,
		"Nelson Piquet":      1.2,

		// 2005-2020 era
		"Jenson Button":    1.05,
		"Felipe Massa":     1.0,
		"Mark Webber":      1.05,
		"Daniel Ricciardo": 1.1,
		"Valtteri Bottas":  1.05,
		"Nico Rosberg":     1.1,
		"Romain Grosjean":  0.95,
		"Pastor Maldonado": 0.8,
		"Kamui Kobayashi":  0.9,
		"Jean-Eric Vergne": 0.95,
		"Nico Hülkenberg":  0.95,
		"Sergio Pérez":     1.0,
	},
	DefaultDriverFactor: 1.0,
	GridModel:           GridLinear,
	MaxProbability:      40.0,
	MinProbability:      0.1,
	WetSpecialists: map[string]bool{
		"Lewis Hamilton":  true,
		"Max Verstappen":  true,
		"Fernando Alonso": true,
		"Ayrton Senna":    true,
	},
	WetBonus:    1.3,
	WetPenalty:  0.9,
	MixedFactor: 1.0,
}

// RulesetByName resolves a ruleset identifier from a prediction request.
// The empty string selects the current-season rules.
func RulesetByName(name string) *Ruleset {
	if name == "all_era" {
		return &allEraRuleset
	}
	return &currentRuleset
}
