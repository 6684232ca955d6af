package handlers

import "net/http"

// GetCircuits returns the race calendar
// @Summary List Circuits
// @Tags Reference
// @Produce json
// @Success 200 {array} models.Circuit
// @Router /circuits [get]
func (h *Handler) GetCircuits(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.reference.Circuits())
}

// GetTeams returns the team catalog keyed by constructor name
// @Summary List Teams
// @Tags Reference
// @Produce json
// @Success 200 {object} map[string]models.Team
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.reference.Teams())
}

// GetConstructorStandings returns the championship table sorted by position
// @Summary Constructor Standings
// @Tags Reference
// @Produce json
// @Success 200 {array} models.ConstructorStanding
// @Router /constructor-standings [get]
func (h *Handler) GetConstructorStandings(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.reference.ConstructorStandings())
}
