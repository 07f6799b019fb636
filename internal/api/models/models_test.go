package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/station"
)

func TestNewSearchResult(t *testing.T) {
	r := &search.Result{
		CurrentLocation:    "新宿駅周辺",
		Destination:        "荻窪駅",
		FullTaxiFare:       4200,
		FullTaxiDistanceKm: 9.8,
		SearchedAt:         "2025/1/15 0:23:45",
		IsDemo:             true,
		Options: []search.RouteOption{
			{
				Kind:    search.KindTrainAndTaxi,
				Summary: "中央線で中野まで → タクシーで荻窪駅へ",
				Train: &search.TrainSegment{
					Line: "JR中央線", From: "新宿", To: "中野",
					DepartureTime: "0:25", ArrivalTime: "0:31", Fare: 170,
				},
				Taxi:      &search.TaxiSegment{From: "中野駅", To: "荻窪駅", DistanceKm: 4.2, Fare: 1810, DurationMin: 9},
				TotalCost: 1980,
				Savings:   2220,
			},
			{
				Kind:      search.KindTaxiOnly,
				Summary:   "タクシーで直接荻窪駅へ",
				Taxi:      &search.TaxiSegment{From: "新宿駅", To: "荻窪駅", DistanceKm: 9.8, Fare: 4200, DurationMin: 20},
				TotalCost: 4200,
			},
		},
	}

	body, err := json.Marshal(models.NewSearchResult(r))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, "新宿駅周辺", got["currentLocation"])
	assert.Equal(t, "荻窪駅", got["destination"])
	assert.Equal(t, float64(4200), got["fullTaxiFare"])
	assert.Equal(t, 9.8, got["fullTaxiDistanceKm"])
	assert.Equal(t, "2025/1/15 0:23:45", got["searchedAt"])
	assert.Equal(t, true, got["isDemo"])

	options, ok := got["options"].([]any)
	require.True(t, ok)
	require.Len(t, options, 2)

	first := options[0].(map[string]any)
	assert.Equal(t, "train_and_taxi", first["type"])
	assert.Equal(t, float64(2220), first["savings"])
	train := first["train"].(map[string]any)
	assert.Equal(t, "0:25", train["departureTime"])
	assert.Equal(t, "0:31", train["arrivalTime"])
	taxi := first["taxi"].(map[string]any)
	assert.Equal(t, float64(9), taxi["durationMin"])

	last := options[1].(map[string]any)
	assert.Equal(t, "taxi_only", last["type"])
	assert.NotContains(t, last, "train")
	assert.Equal(t, float64(0), last["savings"])
}

func TestNewSearchResult_EmptyOptionsEncodeAsArray(t *testing.T) {
	body, err := json.Marshal(models.NewSearchResult(&search.Result{}))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"options":[]`)
}

func TestNewStationList(t *testing.T) {
	list := models.NewStationList([]station.Station{
		{Name: "荻窪", Lat: 35.7041, Lng: 139.6199, Lines: []string{"JR中央線", "丸ノ内線"}},
		{Name: "無名", Lat: 35.0, Lng: 139.0},
	})

	require.Len(t, list.Stations, 2)
	assert.Equal(t, "荻窪", list.Stations[0].Name)
	assert.Equal(t, []string{"JR中央線", "丸ノ内線"}, list.Stations[0].Lines)
	assert.NotNil(t, list.Stations[1].Lines)

	body, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"lines":[]`)
}

func TestTimestamp_JSON(t *testing.T) {
	ts := models.Timestamp(time.Date(2025, time.January, 15, 0, 23, 45, 0, time.UTC))

	body, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-15T00:23:45Z"`, string(body))

	var back models.Timestamp
	require.NoError(t, json.Unmarshal(body, &back))
	assert.True(t, ts.Time().Equal(back.Time()))

	assert.Error(t, json.Unmarshal([]byte(`12`), &back))
}

func TestNewTimestampPtr(t *testing.T) {
	assert.Nil(t, models.NewTimestampPtr(nil))

	now := time.Now()
	ts := models.NewTimestampPtr(&now)
	require.NotNil(t, ts)
	assert.True(t, now.Equal(ts.Time()))
}
