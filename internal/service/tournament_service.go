package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/AdamBeresnev/bracketeer/internal/bracket"
	"github.com/AdamBeresnev/bracketeer/internal/roster"
	"github.com/google/uuid"
)

var (
	ErrTournamentRunning    = errors.New("tournament is running")
	ErrTournamentNotRunning = errors.New("no tournament is running")
	ErrMoveRejected         = errors.New("move rejected")
)

type EventType string

const (
	EventRender   EventType = "render"
	EventChampion EventType = "champion"
)

// Event is handed to the render callback after a mutation completes.
type Event struct {
	Type     EventType `json:"type"`
	Champion string    `json:"champion,omitempty"`
}

type Options struct {
	ThirdPlace bool
	BestOf     int
	// Strict panics on a broken bracket invariant instead of logging it.
	Strict bool
	Rand   *rand.Rand
	Logger *slog.Logger
	Render func(Event)
}

// State is what the renderer sees. It is only valid inside Read.
type State struct {
	Running    bool
	ThirdPlace bool
	Entrants   []*bracket.Entrant
	Bracket    *bracket.Bracket
}

// TournamentService is the only writer of the roster and the bracket. Every
// operation runs to completion under one lock, then the render callback is
// called with the events it produced.
type TournamentService struct {
	mu         sync.Mutex
	roster     *roster.Roster
	bracket    *bracket.Bracket
	thirdPlace bool
	bestOf     int
	strict     bool
	rng        *rand.Rand
	logger     *slog.Logger
	render     func(Event)
	pending    []Event
}

func NewTournamentService(opts Options) *TournamentService {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bestOf := opts.BestOf
	if bestOf == 0 {
		bestOf = 1
	}

	return &TournamentService{
		roster:     roster.New(),
		thirdPlace: opts.ThirdPlace,
		bestOf:     bestOf,
		strict:     opts.Strict,
		rng:        rng,
		logger:     logger,
		render:     opts.Render,
	}
}

// Read hands fn a consistent view of the session.
func (s *TournamentService) Read(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(State{
		Running:    s.bracket != nil,
		ThirdPlace: s.thirdPlace,
		Entrants:   s.roster.Entrants(),
		Bracket:    s.bracket,
	})
}

func (s *TournamentService) AddEntrants(text string) ([]*bracket.Entrant, error) {
	var added []*bracket.Entrant
	err := s.mutate("add entrants", func() error {
		if s.bracket != nil {
			return ErrTournamentRunning
		}
		var err error
		added, err = s.roster.Add(text)
		return err
	})
	return added, err
}

// RenameEntrant works in both modes; a running bracket shows the new name.
func (s *TournamentService) RenameEntrant(id uuid.UUID, name string) error {
	return s.mutate("rename entrant", func() error {
		_, err := s.roster.Rename(id, name)
		return err
	})
}

func (s *TournamentService) RemoveEntrant(id uuid.UUID) error {
	return s.mutate("remove entrant", func() error {
		if s.bracket != nil {
			return ErrTournamentRunning
		}
		return s.roster.Remove(id)
	})
}

func (s *TournamentService) SetThirdPlace(on bool) error {
	return s.mutate("set third place", func() error {
		if s.bracket != nil {
			return ErrTournamentRunning
		}
		s.thirdPlace = on
		return nil
	})
}

// Start shuffles the roster and builds a fresh bracket from it.
func (s *TournamentService) Start() error {
	return s.mutate("start", func() error {
		if s.bracket != nil {
			return ErrTournamentRunning
		}
		if s.roster.Len() == 0 {
			return bracket.ErrNoEntrants
		}

		s.roster.Shuffle(s.rng)
		b, err := bracket.Build(s.roster.Entrants(), bracket.Options{
			ThirdPlace: s.thirdPlace,
			BestOf:     s.bestOf,
		})
		if err != nil {
			return fmt.Errorf("failed to build bracket: %w", err)
		}

		b.OnChampion(s.announce)
		s.bracket = b
		b.ObserveChampion()

		s.logger.Info("tournament started", "entrants", s.roster.Len(), "matches", len(b.Matches()), "third_place", b.ThirdPlace() != nil)
		return nil
	})
}

// Randomize shuffles the roster before a start, or the first-round pairings
// of a running bracket.
func (s *TournamentService) Randomize() error {
	return s.mutate("randomize", func() error {
		if s.bracket == nil {
			s.roster.Shuffle(s.rng)
			return nil
		}
		s.bracket.Randomize(s.rng)
		return nil
	})
}

func (s *TournamentService) RecordScore(matchID int, side bracket.Side) error {
	return s.mutate("record score", func() error {
		if s.bracket == nil {
			return ErrTournamentNotRunning
		}
		return s.bracket.RecordScore(matchID, side)
	})
}

func (s *TournamentService) SetBestOf(matchID, bestOf int) error {
	return s.mutate("set best-of", func() error {
		if s.bracket == nil {
			return ErrTournamentNotRunning
		}
		return s.bracket.SetBestOf(matchID, bestOf)
	})
}

func (s *TournamentService) Move(tok bracket.Token, matchID int, side bracket.Side) error {
	return s.mutate("move", func() error {
		if s.bracket == nil {
			return ErrTournamentNotRunning
		}
		if !s.bracket.TryMove(tok, matchID, side) {
			return ErrMoveRejected
		}
		return nil
	})
}

// BackToEdit discards the bracket and keeps the roster.
func (s *TournamentService) BackToEdit() {
	s.mutate("back to edit", func() error {
		s.bracket = nil
		return nil
	})
}

// Reset discards the bracket and the roster.
func (s *TournamentService) Reset() {
	s.mutate("reset", func() error {
		s.bracket = nil
		s.roster.Clear()
		return nil
	})
}

func (s *TournamentService) announce(champion *bracket.Entrant) {
	s.logger.Info("champion decided", "entrant", champion.Name)
	s.pending = append(s.pending, Event{Type: EventChampion, Champion: champion.Name})
}

func (s *TournamentService) mutate(op string, fn func() error) error {
	s.mu.Lock()
	err := fn()

	var events []Event
	if err == nil {
		s.checkInvariants(op)
		events = append(s.pending, Event{Type: EventRender})
	}
	s.pending = nil
	s.mu.Unlock()

	if err != nil {
		s.logger.Debug("operation rejected", "op", op, "error", err)
		return err
	}
	s.logger.Debug("operation applied", "op", op)

	if s.render != nil {
		for _, e := range events {
			s.render(e)
		}
	}
	return nil
}

func (s *TournamentService) checkInvariants(op string) {
	if s.bracket == nil {
		return
	}
	if err := s.bracket.Validate(); err != nil {
		if s.strict {
			panic(fmt.Sprintf("%s: %v", op, err))
		}
		s.logger.Error("bracket invariant violated", "op", op, "error", err)
	}
}
