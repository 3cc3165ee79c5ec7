package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskPerformance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/puzzle/task/007bbfb7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "007bbfb7",
			"performanceData": {
				"avgAccuracy": 0.15,
				"totalExplanations": 12,
				"avgConfidence": 0.7,
				"wrongCount": 10
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	perf, err := c.TaskPerformance(context.Background(), "007bbfb7")
	require.NoError(t, err)
	require.NotNil(t, perf)
	assert.InDelta(t, 0.15, perf.AvgAccuracy, 1e-9)
	assert.Equal(t, 12, perf.TotalExplanations)
	assert.Equal(t, 10, perf.WrongCount)
}

func TestTaskPerformanceAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	perf, err := c.TaskPerformance(context.Background(), "zzzzzzzz")
	require.NoError(t, err, "404 means known-absent, not an error")
	assert.Nil(t, perf)
}

func TestTaskPerformanceClampsAccuracy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"007bbfb7","performanceData":{"avgAccuracy":1.7}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	perf, err := c.TaskPerformance(context.Background(), "007bbfb7")
	require.NoError(t, err)
	require.NotNil(t, perf)
	assert.Equal(t, 1.0, perf.AvgAccuracy)
}

func TestTaskPerformanceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.TaskPerformance(context.Background(), "007bbfb7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestTaskPerformanceMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.TaskPerformance(context.Background(), "007bbfb7")
	assert.ErrorIs(t, err, ErrBadPayload)
}

func TestWorstPerforming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/puzzle/worst-performing", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "composite", r.URL.Query().Get("sortBy"))
		w.Write([]byte(`{"puzzles":[
			{"id":"007bbfb7","performanceData":{"avgAccuracy":0.05}},
			{"id":"11852cab"}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	records, err := c.WorstPerforming(context.Background(), 5, "composite")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "007bbfb7", records[0].ID)
	require.NotNil(t, records[0].Performance)
	assert.InDelta(t, 0.05, records[0].Performance.AvgAccuracy, 1e-9)
	assert.Nil(t, records[1].Performance)
}

func TestWorstPerformingMissingIDIsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"puzzles":[{"performanceData":{"avgAccuracy":0.5}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.WorstPerforming(context.Background(), 0, "")
	assert.ErrorIs(t, err, ErrBadPayload)
}
