package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/strideworks/recap/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleAdd(t *testing.T) {
	repo := newRepoMock()
	metricsManager := metrics.NewTestManager()
	handler := NewHandler(repo, metricsManager)

	testActivity := Activity{
		Type:            "Run",
		Name:            gofakeit.Sentence(3),
		StartedAt:       time.Date(2024, 3, 12, 7, 30, 0, 0, time.UTC),
		DurationSeconds: 2400,
		Distance:        8.2,
	}
	testActivityJson, err := json.Marshal(testActivity)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/activities", bytes.NewReader(testActivityJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAdd(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var added Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, 1, added.ID)
	assert.Equal(t, testActivity.Type, added.Type)
	assert.Equal(t, testActivity.Name, added.Name)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterActivitiesAdded))
}

func TestHandler_HandleAdd_InvalidInput(t *testing.T) {
	repo := newRepoMock()
	handler := NewHandler(repo, metrics.NewTestManager())

	// missing content type
	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/activities", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	handler.HandleAdd(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing type and start timestamp
	rec = httptest.NewRecorder()
	req, err = http.NewRequest("POST", "/activities", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	handler.HandleAdd(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, repo.Activities)
}

func TestHandler_HandleGet(t *testing.T) {
	repo := newRepoMock()
	handler := NewHandler(repo, metrics.NewTestManager())

	added, err := repo.Add(context.Background(), &Activity{
		Type:            "Swim",
		Name:            "morning laps",
		StartedAt:       time.Date(2024, 3, 12, 6, 0, 0, 0, time.UTC),
		DurationSeconds: 1800,
		Distance:        1.5,
	})
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/activities/{id}", handler.HandleGet).Methods("GET")

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", fmt.Sprintf("/activities/%d", added.ID), nil)
	require.NoError(t, err)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var fetched Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, added.ID, fetched.ID)
	assert.Equal(t, "Swim", fetched.Type)

	// unknown activity
	rec = httptest.NewRecorder()
	req, err = http.NewRequest("GET", "/activities/555", nil)
	require.NoError(t, err)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HandleDelete(t *testing.T) {
	repo := newRepoMock()
	handler := NewHandler(repo, metrics.NewTestManager())

	added, err := repo.Add(context.Background(), &Activity{
		Type:      "Ride",
		StartedAt: time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/activities/{id}", handler.HandleDelete).Methods("DELETE")

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", fmt.Sprintf("/activities/%d", added.ID), nil)
	require.NoError(t, err)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var deleteResp DeleteActivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleteResp))
	assert.Equal(t, added.ID, deleteResp.DeletedID)
	assert.Empty(t, repo.Activities)
}

func TestHandler_HandleList(t *testing.T) {
	repo := newRepoMock()
	handler := NewHandler(repo, metrics.NewTestManager())

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.Add(context.Background(), &Activity{
			Type:            "Run",
			Name:            gofakeit.Sentence(2),
			StartedAt:       start.AddDate(0, 0, i),
			DurationSeconds: 1800 + i*60,
			Distance:        5 + float64(i),
		})
		require.NoError(t, err)
	}

	router := mux.NewRouter()
	router.HandleFunc("/activities/list/page/{page}/size/{size}", handler.HandleList).Methods("GET")

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/activities/list/page/1/size/2", nil)
	require.NoError(t, err)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var listResp ActivitiesListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Equal(t, 5, listResp.Total)
	require.Len(t, listResp.Activities, 2)
	// newest first
	assert.True(t, listResp.Activities[0].StartedAt.After(listResp.Activities[1].StartedAt))

	// invalid page
	rec = httptest.NewRecorder()
	req, err = http.NewRequest("GET", "/activities/list/page/0/size/2", nil)
	require.NoError(t, err)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleTypes(t *testing.T) {
	handler := NewHandler(newRepoMock(), metrics.NewTestManager())

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/activities/types", nil)
	require.NoError(t, err)
	handler.HandleTypes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var types []TypeInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
	assert.Equal(t, len(AllTypes()), len(types))
}
