package models

// RaceEntry is one driver/constructor/grid-slot combination submitted for
// prediction. Grid position 1 is pole.
type RaceEntry struct {
	Driver      string `json:"driver" validate:"required"`
	Constructor string `json:"constructor" validate:"required"`
	Grid        int    `json:"grid" validate:"required,min=1"`
}

// PredictRequest is the body of POST /predict. Ruleset is optional and
// defaults to the current-season rules; "all_era" enables cross-era lineups.
type PredictRequest struct {
	Circuit string      `json:"circuit" validate:"required"`
	Weather string      `json:"weather" validate:"required,oneof=Dry Mixed Wet"`
	Ruleset string      `json:"ruleset,omitempty" validate:"omitempty,oneof=current all_era"`
	Entries []RaceEntry `json:"entries" validate:"required,min=1,dive"`
}

// Prediction is the simulated outcome for a single entrant. WinProbability
// is normalized across the submitted grid so the set sums to 100.
type Prediction struct {
	Driver            string  `json:"driver"`
	Constructor       string  `json:"constructor"`
	Grid              int     `json:"grid"`
	WinProbability    float64 `json:"win_probability"`
	TireStrategy      string  `json:"tire_strategy"`
	PredictedPosition int     `json:"predicted_position"`
	PodiumChance      bool    `json:"podium_chance"`
	PointsEarned      int     `json:"points_earned"`
}

// RaceInfo carries the ambient conditions generated for the request. One
// RaceInfo is shared by every entrant in a prediction.
type RaceInfo struct {
	Circuit     string  `json:"circuit"`
	Weather     string  `json:"weather"`
	Temperature int     `json:"temperature"`
	TrackTemp   float64 `json:"track_temp"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// PredictResponse is the full ranked result returned by POST /predict.
type PredictResponse struct {
	Success     bool         `json:"success"`
	Predictions []Prediction `json:"predictions"`
	RaceInfo    RaceInfo     `json:"race_info"`
}
