package main

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/AdamBeresnev/bracketeer/internal/live"
	"github.com/AdamBeresnev/bracketeer/internal/service"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *service.TournamentService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tournaments := service.NewTournamentService(service.Options{
		ThirdPlace: true,
		Strict:     true,
		Rand:       rand.New(rand.NewPCG(7, 7)),
		Logger:     logger,
	})
	return newRouter(tournaments, scs.New(), live.NewHub(logger), "Black"), tournaments
}

func post(h http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersEditor(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(router, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Entrants (0)")
	assert.Contains(t, rec.Body.String(), `<option value="Black" selected>`)
}

func TestTournamentFlow(t *testing.T) {
	router, tournaments := newTestRouter(t)

	rec := post(router, "/entrants", url.Values{"names": {"Alice\nBob"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = post(router, "/tournament/start", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := get(router, "/").Body.String()
	assert.Contains(t, page, "<h3>Final</h3>")
	assert.Contains(t, page, "<h3>Champion</h3>")

	rec = post(router, "/entrants", url.Values{"names": {"Carol"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = post(router, "/matches/0/score", url.Values{"side": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var champion string
	tournaments.Read(func(s service.State) {
		require.True(t, s.Running)
		if p := s.Bracket.Champion().Player1(); p != nil {
			champion = p.Name
		}
	})
	assert.NotEmpty(t, champion)
	assert.Contains(t, get(router, "/").Body.String(), "Champion: "+champion)

	rec = post(router, "/matches/0/score", url.Values{"side": {"1"}})
	assert.Equal(t, http.StatusConflict, rec.Code, "decided matches take no more points")

	rec = post(router, "/tournament/back", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, get(router, "/").Body.String(), "Entrants (2)")
}

func TestMatchErrors(t *testing.T) {
	router, _ := newTestRouter(t)
	require.Equal(t, http.StatusSeeOther, post(router, "/entrants", url.Values{"names": {"A\nB\nC\nD"}}).Code)
	require.Equal(t, http.StatusSeeOther, post(router, "/tournament/start", nil).Code)

	testCases := []struct {
		name   string
		path   string
		form   url.Values
		status int
	}{
		{name: "match id not a number", path: "/matches/abc/score", form: url.Values{"side": {"1"}}, status: http.StatusBadRequest},
		{name: "unknown match", path: "/matches/99/score", form: url.Values{"side": {"1"}}, status: http.StatusNotFound},
		{name: "invalid side", path: "/matches/0/score", form: url.Values{"side": {"3"}}, status: http.StatusBadRequest},
		{name: "missing side", path: "/matches/0/score", form: url.Values{}, status: http.StatusBadRequest},
		{name: "even best-of", path: "/matches/0/best-of", form: url.Values{"best_of": {"2"}}, status: http.StatusBadRequest},
		{name: "best-of not a number", path: "/matches/0/best-of", form: url.Values{"best_of": {"x"}}, status: http.StatusBadRequest},
		{
			name:   "move with bad player",
			path:   "/matches/2/move",
			form:   url.Values{"source_match": {"0"}, "player_id": {"nope"}, "side": {"1"}},
			status: http.StatusBadRequest,
		},
		{
			name:   "move rejected",
			path:   "/matches/0/move",
			form:   url.Values{"source_match": {"0"}, "player_id": {uuid.NewString()}, "side": {"1"}},
			status: http.StatusUnprocessableEntity,
		},
		{name: "best-of accepted", path: "/matches/1/best-of", form: url.Values{"best_of": {"3"}}, status: http.StatusSeeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(router, tc.path, tc.form)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestEntrantErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusConflict, post(router, "/tournament/start", nil).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, "/entrants", url.Values{"names": {"  \n "}}).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, "/entrants", url.Values{"names": {strings.Repeat("x", 51)}}).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, "/entrants/not-a-uuid/rename", url.Values{"name": {"Z"}}).Code)
	assert.Equal(t, http.StatusNotFound, post(router, "/entrants/"+uuid.NewString()+"/delete", nil).Code)
}

func TestHTMXRequestsGetRedirectHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/tournament/reset", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
}

func TestPreferences(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, post(router, "/preferences/theme", url.Values{"theme": {"Sepia"}}).Code)
	assert.Equal(t, http.StatusBadRequest, post(router, "/preferences/zoom", url.Values{"zoom": {"big"}}).Code)

	rec := post(router, "/preferences/theme", url.Values{"theme": {"Neon"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = post(router, "/preferences/zoom", url.Values{"zoom": {"4"}}, cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := get(router, "/", cookies...).Body.String()
	assert.Contains(t, page, `<option value="Neon" selected>`)
	assert.Contains(t, page, "--zoom: 2.5;")
}

func TestStaticAssets(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(router, "/static/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--zoom")

	assert.Equal(t, http.StatusNotFound, get(router, "/static/missing.css").Code)
}
