package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shuuden/shuuden/internal/api/middleware"
	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/api/response"
)

// requestWithID creates a request whose context carries a request ID.
func requestWithID(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, http.NoBody)
	req = req.WithContext(middleware.WithRequestID(req.Context(), "req_response_test"))
	return req, httptest.NewRecorder()
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) models.Problem {
	t.Helper()
	var problem models.Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	return problem
}

func TestJSON_IncludesRequestID(t *testing.T) {
	req, rec := requestWithID(http.MethodGet, "/v1/stations")

	response.JSON(rec, req, http.StatusOK, map[string]string{"message": "hello"})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req_response_test" {
		t.Errorf("expected X-Request-Id req_response_test, got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "hello" {
		t.Errorf("expected message hello, got %q", body["message"])
	}
}

func TestJSON_WithoutRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()

	response.JSON(rec, req, http.StatusOK, nil)

	if got := rec.Header().Get("X-Request-Id"); got != "" {
		t.Errorf("expected no X-Request-Id header when not in context, got %q", got)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body for nil data, got %q", rec.Body.String())
	}
}

func TestProblemResponses(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		write      func(w http.ResponseWriter, r *http.Request)
		wantStatus int
		wantType   string
	}{
		{
			name:   "bad request",
			method: http.MethodPost,
			write: func(w http.ResponseWriter, r *http.Request) {
				response.BadRequest(w, r, "lat, lng が必要です", []models.FieldError{
					{Field: "lat", Message: "required", Code: models.CodeRequired},
				})
			},
			wantStatus: http.StatusBadRequest,
			wantType:   models.ProblemTypeValidation,
		},
		{
			name:   "not found",
			method: http.MethodGet,
			write: func(w http.ResponseWriter, r *http.Request) {
				response.NotFound(w, r, "no route")
			},
			wantStatus: http.StatusNotFound,
			wantType:   models.ProblemTypeNotFound,
		},
		{
			name:       "method not allowed",
			method:     http.MethodDelete,
			write:      response.MethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantType:   models.ProblemTypeMethodNotAllowed,
		},
		{
			name:   "internal error",
			method: http.MethodPost,
			write: func(w http.ResponseWriter, r *http.Request) {
				response.InternalError(w, r, "検索中にエラーが発生しました")
			},
			wantStatus: http.StatusInternalServerError,
			wantType:   models.ProblemTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := requestWithID(tt.method, "/v1/search")

			tt.write(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("expected Content-Type application/problem+json, got %q", ct)
			}

			problem := decodeProblem(t, rec)
			if problem.Type != tt.wantType {
				t.Errorf("expected type %q, got %q", tt.wantType, problem.Type)
			}
			if problem.Instance != "/v1/search" {
				t.Errorf("expected instance /v1/search, got %q", problem.Instance)
			}
			if problem.TraceID != "req_response_test" {
				t.Errorf("expected traceId req_response_test, got %q", problem.TraceID)
			}
		})
	}
}
