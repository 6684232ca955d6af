package logic

import (
	"context"

	"github.com/f1racepredictor/race-api/internal/models"
)

// RNG is the random source used by the weather generator and the strategy
// selector. Production uses a seeded, mutex-guarded math/rand source; tests
// inject a fixed-seed generator for reproducible outcomes.
type RNG interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// PredictionService computes a full simulated race outcome for a submitted
// grid.
type PredictionService interface {
	PredictRace(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error)
}

// ReferenceService exposes the static catalogs served by the data endpoints.
type ReferenceService interface {
	Circuits() []models.Circuit
	Teams() map[string]models.Team
	ConstructorStandings() []models.ConstructorStanding
}
