package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/f1racepredictor/race-api/internal/models"
)

// PredictRace simulates a race outcome for a submitted grid
// @Summary Predict Race Outcome
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Grid, circuit and weather"
// @Success 200 {object} models.PredictResponse
// @Failure 400 {object} map[string]string "Missing Fields"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /predict [post]
func (h *Handler) PredictRace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resp, err := h.prediction.PredictRace(r.Context(), &req)
	if err != nil {
		h.logger.Errorw("Failed to generate race prediction", "error", err, "circuit", req.Circuit)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate race prediction",
			"message": err.Error(),
		})
		return
	}

	h.jsonResponse(w, http.StatusOK, resp)
}

// validationMessage turns validator output into the 400 body, naming every
// offending field the way the API has always reported them.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}

	fields := make([]string, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}
	return "Missing or invalid required fields: " + strings.Join(fields, ", ")
}
