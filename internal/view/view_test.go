package view

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"UltraNova/internal/catalog"
	"UltraNova/internal/waitlist"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-20, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{150, 100},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPercent(tt.in), "input %v", tt.in)
	}
}

func TestConfidenceBarNeverRendersOutOfRange(t *testing.T) {
	for _, v := range []float64{-5, 250, math.NaN()} {
		html := render(t, ConfidenceBar(ConfidenceBarProps{Value: v}))
		assert.NotContains(t, html, "-5")
		assert.NotContains(t, html, "250")
		assert.NotContains(t, html, "NaN")
	}

	html := render(t, ConfidenceBar(ConfidenceBarProps{Value: 150, Label: "Confidence"}))
	assert.Contains(t, html, "100%")
	assert.Contains(t, html, `data-value="100"`)
	assert.Contains(t, html, "Confidence")
	assert.Contains(t, html, defaultBarColor)
}

func TestConfidenceBarHidePercentage(t *testing.T) {
	html := render(t, ConfidenceBar(ConfidenceBarProps{Value: 34, HidePercentage: true, Size: BarSmall}))
	assert.NotContains(t, html, "34%")
	assert.Contains(t, html, "height:4px")
}

func TestLayoutMarksActiveLink(t *testing.T) {
	html := render(t, TeamPage(catalog.AgentProfiles(), ""))
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `href="/team" title="Agent council" class="active"`)
}

func TestTeamPageExpandsSelectedAgent(t *testing.T) {
	html := render(t, TeamPage(catalog.AgentProfiles(), catalog.Tech))
	assert.Contains(t, html, "Increase test coverage to 85%")
	assert.NotContains(t, html, "Define ICP within 48h")
	assert.Equal(t, 1, strings.Count(html, `class="agent-detail"`))
}

func TestDecisionsPage(t *testing.T) {
	html := render(t, DecisionsPage(catalog.Decisions(), 4))
	assert.Contains(t, html, "Pricing model selection")
	assert.Contains(t, html, `id="decision-8"`)
	assert.Equal(t, 1, strings.Count(html, `class="decision-detail"`))
}

func TestRoadmapPage(t *testing.T) {
	m, ok := catalog.MilestoneByID("v2")
	require.True(t, ok)

	html := render(t, RoadmapPage(catalog.CurrentRoadmap(), m))
	assert.Contains(t, html, "Scale infrastructure")
	assert.NotContains(t, html, "First 50 users")
}

func TestConsolePageRecommendsBestOption(t *testing.T) {
	html := render(t, ConsolePage(catalog.CurrentConsole(), -1))
	assert.Equal(t, 1, strings.Count(html, "Recommended"))
	assert.Contains(t, html, "Standing by for veto review.")
}

func TestRiskColor(t *testing.T) {
	assert.Equal(t, "#FF3B3B", RiskColor(45))
	assert.Equal(t, "#FF6B3B", RiskColor(30))
	assert.Equal(t, "#00FF9D", RiskColor(15))
}

func TestWaitlistForm(t *testing.T) {
	html := render(t, WaitlistPage(WaitlistForm{
		Values: waitlist.Signup{Name: "Ada", Role: "marketer", Stage: "mvp"},
		Error:  "email is required",
	}))
	assert.Contains(t, html, `value="Ada"`)
	assert.Contains(t, html, `<option value="marketer" selected>Marketer</option>`)
	assert.Contains(t, html, `<option value="mvp" selected>Have MVP</option>`)
	assert.Contains(t, html, "email is required")

	html = render(t, WaitlistPage(WaitlistForm{Success: true}))
	assert.Contains(t, html, `id="waitlist-success"`)
	assert.Contains(t, html, "on the list!")
	assert.NotContains(t, html, "<form")
}

func TestChatPageEscapesQuestion(t *testing.T) {
	html := render(t, ChatPage([]ChatTurn{{Question: "<b>hi</b>", ReplyHTML: "<p>ok</p>"}}))
	assert.Contains(t, html, "&lt;b&gt;hi&lt;/b&gt;")
	assert.Contains(t, html, "<p>ok</p>")
	assert.NotContains(t, html, "What is an AI Founder OS?")
}

func TestRenderWritesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Render(rec, httptest.NewRequest(http.MethodGet, "/nope", nil), http.StatusNotFound, NotFoundPage())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "This sector of space is uncharted.")
}

func TestPageBridgesToTempl(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(HomePage(Founder{Name: "Ada"})).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Welcome back, Ada")
}
