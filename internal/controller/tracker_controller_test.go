package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readflow_backend/internal/service"
	"readflow_backend/internal/store"
	"readflow_backend/internal/util"
)

func newTrackerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tracker := service.NewTrackerService(store.NewMemoryStore(), nil)
	c := NewTrackerController(tracker)

	r := gin.New()
	r.POST("/api/sessions", c.SaveSession)
	r.GET("/api/sessions", c.ListSessions)
	r.GET("/api/stats", c.GetStats)
	r.GET("/api/goals", c.ListGoals)
	r.POST("/api/goals", c.CreateGoal)
	r.PATCH("/api/goals/:id/toggle", c.ToggleGoal)
	r.DELETE("/api/goals/:id", c.DeleteGoal)
	r.GET("/api/badges", c.ListBadges)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSaveSessionEndpoint(t *testing.T) {
	r := newTrackerRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{
		"durationSeconds": 60,
		"wpm":             250,
		"type":            "speed-test",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp.Data.(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(100), stats["xp"])
	assert.Equal(t, float64(20), stats["coins"])
	assert.Equal(t, float64(250), stats["currentWPM"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data, 1)
}

func TestSaveSessionEndpointRejectsBadType(t *testing.T) {
	r := newTrackerRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{
		"durationSeconds": 60,
		"type":            "napping",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpointCarriesLevelProjection(t *testing.T) {
	r := newTrackerRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1000), data["nextLevelXp"])
}

func TestGoalEndpoints(t *testing.T) {
	r := newTrackerRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/goals", gin.H{
		"title":  "Read 100 Pages",
		"target": 100,
		"unit":   "pages",
		"period": "monthly",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	goal := resp.Data.(map[string]interface{})
	id := goal["id"].(string)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/goals/"+id+"/toggle", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/goals/unknown/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/goals/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBadgesEndpoint(t *testing.T) {
	r := newTrackerRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/badges", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data, 3)
}
