package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/f1racepredictor/race-api/internal/logic"
	"github.com/f1racepredictor/race-api/internal/models"
)

func newReferenceHandler() *Handler {
	return New(Config{
		Logger:     zap.NewNop(),
		Prediction: &MockPredictionService{},
		Reference:  logic.NewReferenceService(),
	})
}

func TestGetCircuits(t *testing.T) {
	h := newReferenceHandler()

	req := httptest.NewRequest("GET", "/circuits", nil)
	w := httptest.NewRecorder()
	h.GetCircuits(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var circuits []models.Circuit
	if err := json.NewDecoder(w.Body).Decode(&circuits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(circuits) != 24 {
		t.Fatalf("got %d circuits, want 24", len(circuits))
	}
	if circuits[0].Name != "Albert Park Grand Prix Circuit" {
		t.Errorf("first circuit = %q, calendar order lost", circuits[0].Name)
	}
	for _, c := range circuits {
		if c.Name == "" || c.Country == "" || c.Length <= 0 || c.Turns <= 0 {
			t.Errorf("incomplete circuit record: %+v", c)
		}
	}
}

func TestGetTeams(t *testing.T) {
	h := newReferenceHandler()

	req := httptest.NewRequest("GET", "/teams", nil)
	w := httptest.NewRecorder()
	h.GetTeams(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v", w.Code)
	}

	var teams map[string]models.Team
	if err := json.NewDecoder(w.Body).Decode(&teams); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(teams) != 10 {
		t.Fatalf("got %d teams, want 10", len(teams))
	}
	for _, key := range []string{"Red Bull Racing", "Ferrari", "McLaren", "Mercedes", "Williams"} {
		team, ok := teams[key]
		if !ok {
			t.Errorf("team %q missing from catalog", key)
			continue
		}
		if team.Color == "" || len(team.Drivers) != 2 {
			t.Errorf("team %q entry incomplete: %+v", key, team)
		}
	}
}

func TestGetConstructorStandings(t *testing.T) {
	h := newReferenceHandler()

	req := httptest.NewRequest("GET", "/constructor-standings", nil)
	w := httptest.NewRecorder()
	h.GetConstructorStandings(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v", w.Code)
	}

	var standings []models.ConstructorStanding
	if err := json.NewDecoder(w.Body).Decode(&standings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(standings) != 10 {
		t.Fatalf("got %d rows, want 10", len(standings))
	}
	for i, s := range standings {
		if s.Position != i+1 {
			t.Errorf("row %d has position %d", i, s.Position)
		}
		if i > 0 && s.Points > standings[i-1].Points {
			t.Errorf("standings not sorted by points at row %d", i)
		}
	}
}
