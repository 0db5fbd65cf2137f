package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justgohire/jobboard/internal/models"
)

func jobsResponse(w http.ResponseWriter, titles ...string) {
	jobs := make([]models.Job, 0, len(titles))
	for _, title := range titles {
		jobs = append(jobs, models.Job{Title: title})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(jobs)
}

func TestRefresh_ReplacesListAndClearsLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/jobs", r.URL.Path)
		jobsResponse(w, "Backend Engineer")
	}))
	defer srv.Close()

	ctrl := NewController(srv.URL, nil)
	require.NoError(t, ctrl.Refresh(context.Background()))

	jobs := ctrl.Jobs()
	require.Len(t, jobs, 1)
	require.Equal(t, "Backend Engineer", jobs[0].Title)
	require.False(t, ctrl.Loading())
	require.False(t, ctrl.Failed())
}

func TestRefresh_ForwardsFilters(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("jobType")
		jobsResponse(w)
	}))
	defer srv.Close()

	ctrl := NewController(srv.URL, nil)
	require.NoError(t, ctrl.SetFilters(context.Background(), Filters{JobType: "Contract"}))
	require.Equal(t, "Contract", got)
}

func TestRefresh_ErrorSetsFlagAndClearsLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Failed to fetch jobs."}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctrl := NewController(srv.URL, nil)
	require.Error(t, ctrl.Refresh(context.Background()))
	require.True(t, ctrl.Failed())
	require.False(t, ctrl.Loading())
}

func TestRefresh_EmptyBodyMeansEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctrl := NewController(srv.URL, nil)
	require.NoError(t, ctrl.Refresh(context.Background()))
	require.NotNil(t, ctrl.Jobs())
	require.Empty(t, ctrl.Jobs())
}

func TestRefresh_StaleResponseDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("searchTerm") == "old" {
			once.Do(func() { close(slowStarted) })
			<-release
			jobsResponse(w, "stale result")
			return
		}
		jobsResponse(w, "fresh result")
	}))
	defer srv.Close()

	ctrl := NewController(srv.URL, nil)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.SetFilters(context.Background(), Filters{SearchTerm: "old"})
	}()
	<-slowStarted

	// a newer refresh finishes while the first is still in flight
	require.NoError(t, ctrl.SetFilters(context.Background(), Filters{SearchTerm: "new"}))

	close(release)
	require.NoError(t, <-done)

	jobs := ctrl.Jobs()
	require.Len(t, jobs, 1)
	require.Equal(t, "fresh result", jobs[0].Title)
	require.False(t, ctrl.Loading())
	require.False(t, ctrl.Failed())
}
