package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArtworksAcceptsFlatArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artwork", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("isDeleted"))
		w.Write([]byte(`[{"ArtworkID":1,"Title":"A"},{"ArtworkID":2,"Title":"B"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	out, err := client.ListArtworks(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
}

func TestListArtworksAcceptsNestedArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"ArtworkID":1,"Title":"A"}],[{"ArtworkID":2,"Title":"B"},{"Title":"no id"}]]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	out, err := client.ListArtworks(context.Background(), false)
	require.NoError(t, err)
	// Rows without an id are dropped.
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[1].ArtworkID)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
		w.Write([]byte(`{"message":"admin only"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListArtworks(context.Background(), false)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "admin only", apiErr.Message)
}

func TestScalarListAcceptsNumbersAndStrings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/creation-years":
			w.Write([]byte(`[1889,1906,1962]`))
		case "/mediums":
			w.Write([]byte(`["Oil on canvas","Charcoal"]`))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	years, err := client.CreationYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1889", "1906", "1962"}, years)

	mediums, err := client.Mediums(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Oil on canvas", "Charcoal"}, mediums)
}

func TestFetchImageBatchReportsPerItemFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/artwork/3/image" {
			w.WriteHeader(404)
			return
		}
		w.Write([]byte("img"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	images, failures := client.FetchImageBatch(context.Background(), KindArtwork, []int{1, 2, 3, 4}, 2)

	assert.Equal(t, int32(4), calls.Load())
	assert.Len(t, images, 3)
	require.Len(t, failures, 1)
	assert.Equal(t, 3, failures[0].ID)
	var apiErr *APIError
	assert.ErrorAs(t, failures[0].Err, &apiErr)
}

func TestGenerateReportSendsIdentityHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.Header.Get("user-id"))
		assert.Equal(t, "staff", r.Header.Get("role"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "revenue", req["report_type"])

		w.Write([]byte(`{"reportData":[{"date":"2026-01-03","total_revenue":"12.50"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	rows, err := client.GenerateReport(context.Background(),
		models.AuthContext{UserID: 7, Username: "clerk1", Role: "staff"},
		models.ReportRequest{ReportType: "revenue", ReportPeriodType: "date_range"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "12.50", rows[0].TotalRevenue.String())
}
