package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AdamBeresnev/bracketeer/internal/bracket"
	"github.com/AdamBeresnev/bracketeer/internal/httputil"
	"github.com/AdamBeresnev/bracketeer/internal/middleware"
	"github.com/AdamBeresnev/bracketeer/internal/roster"
	"github.com/AdamBeresnev/bracketeer/internal/service"
	"github.com/AdamBeresnev/bracketeer/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func newRouter(tournaments *service.TournamentService, sessionManager *scs.SessionManager, hub http.Handler, defaultTheme string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Outside the session group so the upgrade sees an unbuffered writer.
	r.Method(http.MethodGet, "/ws", hub)
	r.Handle("/static/*", http.StripPrefix("/static/", views.StaticHandler()))

	r.Group(func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		r.Use(middleware.LoadPreferences(sessionManager, defaultTheme))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			var data views.PageData
			tournaments.Read(func(s service.State) {
				data = views.NewPageData(s.Running, s.ThirdPlace, s.Entrants, s.Bracket, middleware.GetPreferences(r.Context()))
			})
			if err := views.Render(w, r, views.Index(data)); err != nil {
				httputil.InternalServerError(w, "Failed to render page", err)
			}
		})

		r.Post("/entrants", func(w http.ResponseWriter, r *http.Request) {
			_, err := tournaments.AddEntrants(r.FormValue("names"))
			writeResult(w, r, err)
		})

		r.Post("/entrants/{id}/rename", func(w http.ResponseWriter, r *http.Request) {
			id, ok := parseEntrantID(w, r)
			if !ok {
				return
			}
			writeResult(w, r, tournaments.RenameEntrant(id, r.FormValue("name")))
		})

		r.Post("/entrants/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
			id, ok := parseEntrantID(w, r)
			if !ok {
				return
			}
			writeResult(w, r, tournaments.RemoveEntrant(id))
		})

		r.Route("/tournament", func(r chi.Router) {
			r.Post("/third-place", func(w http.ResponseWriter, r *http.Request) {
				writeResult(w, r, tournaments.SetThirdPlace(r.FormValue("on") == "true"))
			})
			r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
				writeResult(w, r, tournaments.Start())
			})
			r.Post("/randomize", func(w http.ResponseWriter, r *http.Request) {
				writeResult(w, r, tournaments.Randomize())
			})
			r.Post("/back", func(w http.ResponseWriter, r *http.Request) {
				tournaments.BackToEdit()
				writeResult(w, r, nil)
			})
			r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
				tournaments.Reset()
				writeResult(w, r, nil)
			})
		})

		r.Route("/matches/{id}", func(r chi.Router) {
			r.Post("/score", func(w http.ResponseWriter, r *http.Request) {
				matchID, ok := parseMatchID(w, r)
				if !ok {
					return
				}
				side, ok := formSide(w, r)
				if !ok {
					return
				}
				writeResult(w, r, tournaments.RecordScore(matchID, side))
			})

			r.Post("/best-of", func(w http.ResponseWriter, r *http.Request) {
				matchID, ok := parseMatchID(w, r)
				if !ok {
					return
				}
				bestOf, err := strconv.Atoi(r.FormValue("best_of"))
				if err != nil {
					httputil.BadRequest(w, "Invalid best-of", err)
					return
				}
				writeResult(w, r, tournaments.SetBestOf(matchID, bestOf))
			})

			r.Post("/move", func(w http.ResponseWriter, r *http.Request) {
				target, ok := parseMatchID(w, r)
				if !ok {
					return
				}
				source, err := strconv.Atoi(r.FormValue("source_match"))
				if err != nil {
					httputil.BadRequest(w, "Invalid source match", err)
					return
				}
				playerID, err := uuid.Parse(r.FormValue("player_id"))
				if err != nil {
					httputil.BadRequest(w, "Invalid player ID", err)
					return
				}
				side, ok := formSide(w, r)
				if !ok {
					return
				}
				tok := bracket.Token{MatchID: source, PlayerID: playerID}
				writeResult(w, r, tournaments.Move(tok, target, side))
			})
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Post("/theme", func(w http.ResponseWriter, r *http.Request) {
				theme := r.FormValue("theme")
				if !views.IsTheme(theme) {
					httputil.BadRequest(w, "Unknown theme", nil)
					return
				}
				middleware.SaveTheme(r.Context(), sessionManager, theme)
				httputil.Redirect(w, r, "/")
			})

			r.Post("/zoom", func(w http.ResponseWriter, r *http.Request) {
				zoom, err := strconv.ParseFloat(r.FormValue("zoom"), 64)
				if err != nil {
					httputil.BadRequest(w, "Invalid zoom", err)
					return
				}
				middleware.SaveZoom(r.Context(), sessionManager, zoom)
				httputil.Redirect(w, r, "/")
			})
		})
	})

	return r
}

func parseEntrantID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid entrant ID", err)
		return uuid.Nil, false
	}
	return id, true
}

func parseMatchID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid match ID", err)
		return 0, false
	}
	return id, true
}

func formSide(w http.ResponseWriter, r *http.Request) (bracket.Side, bool) {
	n, err := strconv.Atoi(r.FormValue("side"))
	side := bracket.Side(n)
	if err != nil || !side.Valid() {
		httputil.BadRequest(w, "Side must be 1 or 2", err)
		return 0, false
	}
	return side, true
}

// writeResult redirects back to the page on success and maps service
// errors to status codes otherwise.
func writeResult(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case err == nil:
		httputil.Redirect(w, r, "/")
	case errors.Is(err, service.ErrMoveRejected):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, roster.ErrEntrantNotFound), errors.Is(err, bracket.ErrMatchNotFound):
		httputil.NotFound(w, err.Error(), err)
	case errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, roster.ErrNameTooLong),
		errors.Is(err, bracket.ErrInvalidSide),
		errors.Is(err, bracket.ErrInvalidBestOf):
		httputil.BadRequest(w, err.Error(), err)
	case errors.Is(err, service.ErrTournamentRunning),
		errors.Is(err, service.ErrTournamentNotRunning),
		errors.Is(err, bracket.ErrNoEntrants),
		errors.Is(err, bracket.ErrMatchNotPending):
		httputil.Conflict(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, "Operation failed", err)
	}
}
