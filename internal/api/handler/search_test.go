package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuuden/shuuden/internal/api/handler"
	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/search"
)

type fakeSearcher struct {
	got    *search.Request
	result *search.Result
	err    error
}

func (f *fakeSearcher) Search(_ context.Context, req search.Request) (*search.Result, error) {
	f.got = &req
	return f.result, f.err
}

func sampleResult() *search.Result {
	return &search.Result{
		CurrentLocation:    "新宿駅周辺",
		Destination:        "荻窪駅",
		FullTaxiFare:       4200,
		FullTaxiDistanceKm: 9.8,
		SearchedAt:         "2025/1/15 0:23:45",
		IsDemo:             true,
		Options: []search.RouteOption{{
			Kind:      search.KindTaxiOnly,
			Summary:   "タクシーで直接荻窪駅へ",
			Taxi:      &search.TaxiSegment{From: "新宿駅", To: "荻窪駅", DistanceKm: 9.8, Fare: 4200, DurationMin: 20},
			TotalCost: 4200,
		}},
	}
}

func postSearch(h *handler.SearchHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Search(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) models.Problem {
	t.Helper()
	var p models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestSearchHandler_Success(t *testing.T) {
	searcher := &fakeSearcher{result: sampleResult()}
	h := handler.NewSearchHandler(searcher, zerolog.Nop())

	rec := postSearch(h, `{"lat":35.6896,"lng":139.7006,"destName":"吉祥寺駅","destLat":35.7030,"destLng":139.5795}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	require.NotNil(t, searcher.got)
	assert.InDelta(t, 35.6896, searcher.got.OriginLat, 1e-9)
	assert.InDelta(t, 139.7006, searcher.got.OriginLng, 1e-9)
	require.NotNil(t, searcher.got.DestName)
	assert.Equal(t, "吉祥寺駅", *searcher.got.DestName)
	require.NotNil(t, searcher.got.DestLat)
	assert.InDelta(t, 35.7030, *searcher.got.DestLat, 1e-9)

	var body models.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "新宿駅周辺", body.CurrentLocation)
	assert.True(t, body.IsDemo)
	require.Len(t, body.Options, 1)
	assert.Equal(t, "taxi_only", body.Options[0].Type)
}

func TestSearchHandler_OptionalDestinationOmitted(t *testing.T) {
	searcher := &fakeSearcher{result: sampleResult()}
	h := handler.NewSearchHandler(searcher, zerolog.Nop())

	rec := postSearch(h, `{"lat":35.6896,"lng":139.7006}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, searcher.got.DestLat)
	assert.Nil(t, searcher.got.DestLng)
	assert.Nil(t, searcher.got.DestName)
}

func TestSearchHandler_RejectsBadOrigin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields map[string]string
	}{
		{"empty body", ``, map[string]string{"lat": models.CodeRequired, "lng": models.CodeRequired}},
		{"empty object", `{}`, map[string]string{"lat": models.CodeRequired, "lng": models.CodeRequired}},
		{"missing lng", `{"lat":35.6}`, map[string]string{"lng": models.CodeRequired}},
		{"null lat", `{"lat":null,"lng":139.7}`, map[string]string{"lat": models.CodeRequired}},
		{"string lat", `{"lat":"35.6","lng":139.7}`, map[string]string{"lat": models.CodeInvalid}},
		{"bool lng", `{"lat":35.6,"lng":true}`, map[string]string{"lng": models.CodeInvalid}},
		{"string lat with destination", `{"lat":"35.6","lng":139.7,"destName":"吉祥寺"}`, map[string]string{"lat": models.CodeInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeSearcher{result: sampleResult()}
			rec := postSearch(handler.NewSearchHandler(searcher, zerolog.Nop()), tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, searcher.got, "search must not run")

			p := decodeProblem(t, rec)
			assert.Equal(t, "lat, lng が必要です", p.Detail)

			got := map[string]string{}
			for _, fe := range p.Errors {
				got[fe.Field] = fe.Code
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestSearchHandler_RejectsMistypedDestination(t *testing.T) {
	searcher := &fakeSearcher{result: sampleResult()}
	rec := postSearch(handler.NewSearchHandler(searcher, zerolog.Nop()), `{"lat":35.6,"lng":139.7,"destName":42}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, searcher.got)

	p := decodeProblem(t, rec)
	assert.Equal(t, "destLat, destLng は数値、destName は文字列で指定してください", p.Detail)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "destName", p.Errors[0].Field)
	assert.Equal(t, "must be a string", p.Errors[0].Message)
}

func TestSearchHandler_InvalidJSON(t *testing.T) {
	searcher := &fakeSearcher{}
	rec := postSearch(handler.NewSearchHandler(searcher, zerolog.Nop()), `{"lat":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", decodeProblem(t, rec).Detail)
	assert.Nil(t, searcher.got)
}

func TestSearchHandler_BodyTooLarge(t *testing.T) {
	searcher := &fakeSearcher{}
	body := `{"destName":"` + strings.Repeat("駅", 10000) + `","lat":35.6,"lng":139.7}`

	rec := postSearch(handler.NewSearchHandler(searcher, zerolog.Nop()), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, searcher.got)
}

func TestSearchHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "out of range",
			err:        fmt.Errorf("origin: latitude 91.000000 out of range [-90, 90]: %w", search.ErrInvalidCoordinates),
			wantStatus: http.StatusBadRequest,
			wantDetail: "origin: latitude 91.000000 out of range [-90, 90]: invalid coordinates",
		},
		{
			name: "provider failure",
			err: &search.ProviderError{
				Provider: "google-directions",
				Code:     "SERVER_503",
				Message:  "directions provider is temporarily unavailable",
				Err:      search.ErrProviderUnavailable,
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "検索中にエラーが発生しました",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "検索中にエラーが発生しました",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSearch(handler.NewSearchHandler(&fakeSearcher{err: tt.err}, zerolog.Nop()), `{"lat":91,"lng":139.7}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantDetail, decodeProblem(t, rec).Detail)
			assert.NotContains(t, rec.Body.String(), "google-directions")
		})
	}
}
