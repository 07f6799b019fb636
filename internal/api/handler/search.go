package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/shuuden/shuuden/internal/api/middleware"
	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/api/response"
	"github.com/shuuden/shuuden/internal/search"
)

const (
	maxSearchBodyBytes = 16 << 10

	detailOriginRequired = "lat, lng が必要です"
	detailSearchFailed   = "検索中にエラーが発生しました"

	detailDestinationInvalid = "destLat, destLng は数値、destName は文字列で指定してください"
)

// Searcher runs a route search.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Result, error)
}

// SearchHandler handles route searches.
type SearchHandler struct {
	searcher Searcher
	logger   zerolog.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searcher Searcher, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{searcher: searcher, logger: logger}
}

// Search handles POST /v1/search - rank the ways home from the given origin.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	input, fieldErrs, err := decodeSearchRequest(w, r)
	if err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if len(fieldErrs) > 0 {
		response.BadRequest(w, r, fieldErrorDetail(fieldErrs), fieldErrs)
		return
	}

	result, err := h.searcher.Search(r.Context(), search.Request{
		OriginLat: *input.Lat,
		OriginLng: *input.Lng,
		DestLat:   input.DestLat,
		DestLng:   input.DestLng,
		DestName:  input.DestName,
	})
	if err != nil {
		if errors.Is(err, search.ErrInvalidCoordinates) {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "coordinates", Message: err.Error(), Code: models.CodeOutOfRange},
			})
			return
		}

		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("search failed")
		response.InternalError(w, r, detailSearchFailed)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	response.JSON(w, r, http.StatusOK, models.NewSearchResult(result))
}

// fieldErrorDetail picks the problem detail. Any error on the origin wins,
// since a mistyped lat or lng may still leave its pointer set.
func fieldErrorDetail(fieldErrs []models.FieldError) string {
	for _, fe := range fieldErrs {
		if fe.Field == "lat" || fe.Field == "lng" {
			return detailOriginRequired
		}
	}
	return detailDestinationInvalid
}

// decodeSearchRequest reads the body. A syntax error is returned as err;
// missing or mistyped fields come back as field errors. An empty body is
// treated as an empty object.
func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (models.SearchRequest, []models.FieldError, error) {
	var input models.SearchRequest

	var typeErr *json.UnmarshalTypeError
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSearchBodyBytes)).Decode(&input)
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.As(err, &typeErr):
	default:
		return input, nil, err
	}

	var fieldErrs []models.FieldError
	for _, f := range []struct {
		name    string
		kind    string
		missing bool
	}{
		{"lat", "number", input.Lat == nil},
		{"lng", "number", input.Lng == nil},
		{"destLat", "number", false},
		{"destLng", "number", false},
		{"destName", "string", false},
	} {
		switch {
		case typeErr != nil && typeErr.Field == f.name:
			fieldErrs = append(fieldErrs, models.FieldError{
				Field:   f.name,
				Message: "must be a " + f.kind,
				Code:    models.CodeInvalid,
			})
		case f.missing:
			fieldErrs = append(fieldErrs, models.FieldError{
				Field:   f.name,
				Message: "required",
				Code:    models.CodeRequired,
			})
		}
	}

	return input, fieldErrs, nil
}
