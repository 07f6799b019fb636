package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/api/response"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/station"
)

const maxStationLimit = 50

// StationFinder looks stations up by keyword or position.
type StationFinder interface {
	Search(keyword string, limit int) []station.Station
	NearestExcept(lat, lng float64, names ...string) (station.Station, bool)
}

// StationHandler handles station lookups.
type StationHandler struct {
	stations StationFinder
}

// NewStationHandler creates a new StationHandler.
func NewStationHandler(stations StationFinder) *StationHandler {
	return &StationHandler{stations: stations}
}

// List handles GET /v1/stations?q=&limit= - keyword autocomplete.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxStationLimit {
			response.BadRequest(w, r, "limit must be an integer between 1 and 50", []models.FieldError{
				{Field: "limit", Message: "must be between 1 and 50", Code: models.CodeOutOfRange},
			})
			return
		}
		limit = n
	}

	stations := h.stations.Search(r.URL.Query().Get("q"), limit)

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, models.NewStationList(stations))
}

// Nearest handles GET /v1/stations/nearest?lat=&lng= - closest station.
func (h *StationHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fieldErrs []models.FieldError
	lat, fe := parseCoordinate("lat", q.Get("lat"))
	if fe != nil {
		fieldErrs = append(fieldErrs, *fe)
	}
	lng, fe := parseCoordinate("lng", q.Get("lng"))
	if fe != nil {
		fieldErrs = append(fieldErrs, *fe)
	}
	if len(fieldErrs) > 0 {
		response.BadRequest(w, r, detailOriginRequired, fieldErrs)
		return
	}

	if err := search.ValidateCoordinate(search.Coordinate{Lat: lat, Lng: lng}); err != nil {
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "coordinates", Message: err.Error(), Code: models.CodeOutOfRange},
		})
		return
	}

	s, ok := h.stations.NearestExcept(lat, lng)
	if !ok {
		response.NotFound(w, r, "no stations available")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NearestStation{
		Station:    models.NewStation(s),
		DistanceKm: math.Round(station.HaversineKm(lat, lng, s.Lat, s.Lng)*1000) / 1000,
	})
}

// parseCoordinate parses a query coordinate. It returns a field error when
// the value is missing or not a finite number.
func parseCoordinate(field, raw string) (float64, *models.FieldError) {
	if raw == "" {
		return 0, &models.FieldError{Field: field, Message: "required", Code: models.CodeRequired}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &models.FieldError{Field: field, Message: "must be a number", Code: models.CodeInvalid}
	}
	return v, nil
}
