package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/f1racepredictor/race-api/internal/models"
)

func newTestHandler(prediction *MockPredictionService) *Handler {
	if prediction == nil {
		prediction = &MockPredictionService{}
	}
	return New(Config{
		Logger:     zap.NewNop(),
		Prediction: prediction,
		Reference:  &MockReferenceService{},
	})
}

func TestPredictRace_TableDriven(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockPredict    func(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error)
		expectedStatus int
		expectInBody   string
	}{
		{
			name:           "Valid Request",
			body:           `{"circuit":"Circuit de Monaco","weather":"Dry","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Circuit",
			body:           `{"weather":"Dry","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectInBody:   "circuit",
		},
		{
			name:           "Missing Weather",
			body:           `{"circuit":"Circuit de Monaco","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectInBody:   "weather",
		},
		{
			name:           "Invalid Weather",
			body:           `{"circuit":"Circuit de Monaco","weather":"Snow","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectInBody:   "weather",
		},
		{
			name:           "Empty Entries",
			body:           `{"circuit":"Circuit de Monaco","weather":"Dry","entries":[]}`,
			expectedStatus: http.StatusBadRequest,
			expectInBody:   "entries",
		},
		{
			name:           "Entry Missing Grid",
			body:           `{"circuit":"Circuit de Monaco","weather":"Dry","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing"}]}`,
			expectedStatus: http.StatusBadRequest,
			expectInBody:   "grid",
		},
		{
			name:           "Invalid Ruleset",
			body:           `{"circuit":"Circuit de Monaco","weather":"Dry","ruleset":"vintage","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectInBody:   "ruleset",
		},
		{
			name:           "Invalid JSON",
			body:           `{"circuit":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Service Error",
			body: `{"circuit":"Circuit de Monaco","weather":"Dry","entries":[{"driver":"Max Verstappen","constructor":"Red Bull Racing","grid":1}]}`,
			mockPredict: func(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error) {
				return nil, errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectInBody:   "Failed to generate race prediction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&MockPredictionService{PredictRaceFunc: tt.mockPredict})

			req := httptest.NewRequest("POST", "/predict", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.PredictRace(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.expectInBody != "" && !strings.Contains(w.Body.String(), tt.expectInBody) {
				t.Errorf("body %q does not mention %q", w.Body.String(), tt.expectInBody)
			}
		})
	}
}

func TestPredictRacePassesRequestThrough(t *testing.T) {
	var captured *models.PredictRequest
	h := newTestHandler(&MockPredictionService{
		PredictRaceFunc: func(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error) {
			captured = req
			return &models.PredictResponse{Success: true}, nil
		},
	})

	body := `{"circuit":"Hungaroring","weather":"Wet","ruleset":"all_era","entries":[{"driver":"Ayrton Senna","constructor":"Lotus","grid":3}]}`
	req := httptest.NewRequest("POST", "/predict", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.PredictRace(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v", w.Code)
	}
	if captured == nil {
		t.Fatal("service never called")
	}
	if captured.Circuit != "Hungaroring" || captured.Weather != "Wet" || captured.Ruleset != "all_era" {
		t.Errorf("request = %+v", captured)
	}
	if len(captured.Entries) != 1 || captured.Entries[0].Grid != 3 {
		t.Errorf("entries = %+v", captured.Entries)
	}

	var resp models.PredictResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
}
