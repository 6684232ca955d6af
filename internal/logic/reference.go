package logic

import (
	"github.com/f1racepredictor/race-api/internal/data"
	"github.com/f1racepredictor/race-api/internal/models"
)

type referenceService struct{}

// NewReferenceService exposes the static catalogs behind the service
// interface the handlers consume.
func NewReferenceService() ReferenceService {
	return &referenceService{}
}

func (s *referenceService) Circuits() []models.Circuit {
	return data.Circuits()
}

func (s *referenceService) Teams() map[string]models.Team {
	return data.Teams()
}

func (s *referenceService) ConstructorStandings() []models.ConstructorStanding {
	return data.ConstructorStandings()
}
