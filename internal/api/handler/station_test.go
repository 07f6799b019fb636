package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuuden/shuuden/internal/api/handler"
	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/station"
)

func getStations(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rec
}

func TestStationHandler_List(t *testing.T) {
	h := handler.NewStationHandler(station.Default())

	rec := getStations(h.List, "/v1/stations?q="+url.QueryEscape("荻窪"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	var body models.StationList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Stations, 2)
	assert.Equal(t, "荻窪", body.Stations[0].Name)
	assert.Equal(t, "西荻窪", body.Stations[1].Name)
	assert.Equal(t, []string{"JR中央線", "丸ノ内線"}, body.Stations[0].Lines)
}

func TestStationHandler_ListLimit(t *testing.T) {
	h := handler.NewStationHandler(station.Default())

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantLen    int
	}{
		{"default limit", "?q=JR", http.StatusOK, station.DefaultSearchLimit},
		{"explicit limit", "?q=JR&limit=3", http.StatusOK, 3},
		{"blank keyword", "?q=", http.StatusOK, 0},
		{"no keyword", "", http.StatusOK, 0},
		{"zero limit", "?q=JR&limit=0", http.StatusBadRequest, 0},
		{"too large", "?q=JR&limit=51", http.StatusBadRequest, 0},
		{"not a number", "?q=JR&limit=ten", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getStations(h.List, "/v1/stations"+tt.query)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				var p models.Problem
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
				require.Len(t, p.Errors, 1)
				assert.Equal(t, "limit", p.Errors[0].Field)
				return
			}

			var body models.StationList
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotNil(t, body.Stations)
			assert.Len(t, body.Stations, tt.wantLen)
		})
	}
}

func TestStationHandler_Nearest(t *testing.T) {
	h := handler.NewStationHandler(station.Default())

	rec := getStations(h.Nearest, "/v1/stations/nearest?lat=35.7041&lng=139.6199")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.NearestStation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "荻窪", body.Station.Name)
	assert.Zero(t, body.DistanceKm)
}

func TestStationHandler_NearestRoundsDistance(t *testing.T) {
	h := handler.NewStationHandler(station.Default())

	rec := getStations(h.Nearest, "/v1/stations/nearest?lat=35.6900&lng=139.7006")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.NearestStation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "新宿", body.Station.Name)
	assert.InDelta(t, 0.044, body.DistanceKm, 1e-9)
}

func TestStationHandler_NearestRejectsBadInput(t *testing.T) {
	h := handler.NewStationHandler(station.Default())

	tests := []struct {
		name       string
		query      string
		wantFields []string
	}{
		{"missing both", "", []string{"lat", "lng"}},
		{"missing lng", "?lat=35.7", []string{"lng"}},
		{"not a number", "?lat=abc&lng=139.6", []string{"lat"}},
		{"nan", "?lat=NaN&lng=139.6", []string{"lat"}},
		{"infinite", "?lat=35.7&lng=Inf", []string{"lng"}},
		{"out of range", "?lat=95&lng=139.6", []string{"coordinates"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getStations(h.Nearest, "/v1/stations/nearest"+tt.query)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var p models.Problem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
			var fields []string
			for _, fe := range p.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestStationHandler_NearestEmptyDirectory(t *testing.T) {
	h := handler.NewStationHandler(station.NewDirectory(nil))

	rec := getStations(h.Nearest, "/v1/stations/nearest?lat=35.7&lng=139.6")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
