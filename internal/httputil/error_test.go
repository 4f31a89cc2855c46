package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirect(t *testing.T) {
	t.Run("htmx", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tournament/start", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		Redirect(rec, req, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	})

	t.Run("plain form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tournament/start", nil)
		rec := httptest.NewRecorder()

		Redirect(rec, req, "/")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestErrorResponses(t *testing.T) {
	testCases := []struct {
		name   string
		write  func(http.ResponseWriter)
		status int
		body   string
	}{
		{
			name:   "bad request",
			write:  func(w http.ResponseWriter) { BadRequest(w, "Invalid side", nil) },
			status: http.StatusBadRequest,
			body:   "Invalid side",
		},
		{
			name:   "not found",
			write:  func(w http.ResponseWriter) { NotFound(w, "Match not found", errors.New("missing")) },
			status: http.StatusNotFound,
			body:   "Match not found",
		},
		{
			name:   "conflict",
			write:  func(w http.ResponseWriter) { Conflict(w, "Tournament is running", errors.New("running")) },
			status: http.StatusConflict,
			body:   "Tournament is running",
		},
		{
			name:   "internal",
			write:  func(w http.ResponseWriter) { InternalServerError(w, "boom", errors.New("boom")) },
			status: http.StatusInternalServerError,
			body:   "Internal Server Error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}
