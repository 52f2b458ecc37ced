package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UltraNova/internal/catalog"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/team", TeamPage)
	r.Get("/decisions", DecisionsPage)
	r.Get("/roadmap", RoadmapPage)
	r.Get("/console", ConsolePage)
	r.Get("/api/agents", ListAgents)
	r.Get("/api/agents/{type}", GetAgent)
	r.Get("/api/decisions", ListDecisions)
	r.Get("/api/decisions/{id}", GetDecision)
	r.Get("/api/roadmap", GetRoadmap)
	r.Get("/api/console", GetConsole)
	return r
}

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAgentsAPI(t *testing.T) {
	rec := get(t, "/api/agents")
	require.Equal(t, http.StatusOK, rec.Code)
	var profiles []catalog.AgentProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	assert.Len(t, profiles, 5)

	rec = get(t, "/api/agents/tech")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tech"`)
}

func TestDecisionsAPI(t *testing.T) {
	rec := get(t, "/api/decisions")
	require.Equal(t, http.StatusOK, rec.Code)
	var decisions []catalog.Decision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decisions))
	assert.Len(t, decisions, 8)

	rec = get(t, "/api/decisions/3")
	require.Equal(t, http.StatusOK, rec.Code)
	var d catalog.Decision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, 3, d.ID)

	rec = get(t, "/api/decisions?theme=nowhere")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUnknownIDsAre404(t *testing.T) {
	for _, target := range []string{"/api/agents/legal", "/api/decisions/99", "/api/decisions/abc"} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, target)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			var body struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Detail, "not found")
		})
	}
}

func TestRoadmapAndConsoleAPI(t *testing.T) {
	rec := get(t, "/api/roadmap")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"milestones"`)

	rec = get(t, "/api/console")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"speaking_order":[0,2,3,1,4]`)
}

func TestPagesRenderSelection(t *testing.T) {
	rec := get(t, "/team?agent=ops")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agent-detail")

	rec = get(t, "/decisions?decision=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "decision-detail")

	rec = get(t, "/roadmap?milestone=v2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 month")

	rec = get(t, "/console?option=7")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPagesWithoutSelection(t *testing.T) {
	rec := get(t, "/decisions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "decision-detail")

	rec = get(t, "/roadmap?milestone=bogus")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Core product build")
}
