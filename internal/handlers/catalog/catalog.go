// Package catalog serves the sample-data screens and their JSON twins.
package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"UltraNova/internal/apperror"
	"UltraNova/internal/catalog"
	"UltraNova/internal/view"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TeamPage(w http.ResponseWriter, r *http.Request) {
	expanded := catalog.AgentType(r.URL.Query().Get("agent"))
	view.Render(w, r, http.StatusOK, view.TeamPage(catalog.AgentProfiles(), expanded))
}

func DecisionsPage(w http.ResponseWriter, r *http.Request) {
	selected, err := strconv.Atoi(r.URL.Query().Get("decision"))
	if err != nil {
		selected = 0
	}
	view.Render(w, r, http.StatusOK, view.DecisionsPage(catalog.Decisions(), selected))
}

// RoadmapPage shows the active milestone unless ?milestone= names another.
func RoadmapPage(w http.ResponseWriter, r *http.Request) {
	active, ok := catalog.MilestoneByID(r.URL.Query().Get("milestone"))
	if !ok {
		active = catalog.ActiveMilestone()
	}
	view.Render(w, r, http.StatusOK, view.RoadmapPage(catalog.CurrentRoadmap(), active))
}

func ConsolePage(w http.ResponseWriter, r *http.Request) {
	console := catalog.CurrentConsole()
	selected, err := strconv.Atoi(r.URL.Query().Get("option"))
	if err != nil || selected < 0 || selected >= len(console.Options) {
		selected = -1
	}
	view.Render(w, r, http.StatusOK, view.ConsolePage(console, selected))
}

func ListAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.AgentProfiles())
}

func GetAgent(w http.ResponseWriter, r *http.Request) {
	agentType := chi.URLParam(r, "type")
	profile, ok := catalog.AgentProfileByType(catalog.AgentType(agentType))
	if !ok {
		apperror.WriteJSON(w, apperror.NotFound("agent", agentType))
		return
	}
	writeJSON(w, profile)
}

func ListDecisions(w http.ResponseWriter, r *http.Request) {
	if theme := r.URL.Query().Get("theme"); theme != "" {
		writeJSON(w, catalog.DecisionsByTheme(catalog.Theme(theme)))
		return
	}
	writeJSON(w, catalog.Decisions())
}

func GetDecision(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		apperror.WriteJSON(w, apperror.NotFound("decision", raw))
		return
	}
	decision, ok := catalog.DecisionByID(id)
	if !ok {
		apperror.WriteJSON(w, apperror.NotFound("decision", raw))
		return
	}
	writeJSON(w, decision)
}

func GetRoadmap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.CurrentRoadmap())
}

func GetConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.CurrentConsole())
}
