package handlers

import (
	"context"

	"github.com/f1racepredictor/race-api/internal/models"
)

// Mocks

type MockPredictionService struct {
	PredictRaceFunc func(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error)
}

func (m *MockPredictionService) PredictRace(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error) {
	if m.PredictRaceFunc != nil {
		return m.PredictRaceFunc(ctx, req)
	}
	return &models.PredictResponse{Success: true}, nil
}

type MockReferenceService struct {
	CircuitsFunc             func() []models.Circuit
	TeamsFunc                func() map[string]models.Team
	ConstructorStandingsFunc func() []models.ConstructorStanding
}

func (m *MockReferenceService) Circuits() []models.Circuit {
	if m.CircuitsFunc != nil {
		return m.CircuitsFunc()
	}
	return nil
}

func (m *MockReferenceService) Teams() map[string]models.Team {
	if m.TeamsFunc != nil {
		return m.TeamsFunc()
	}
	return nil
}

func (m *MockReferenceService) ConstructorStandings() []models.ConstructorStanding {
	if m.ConstructorStandingsFunc != nil {
		return m.ConstructorStandingsFunc()
	}
	return nil
}
