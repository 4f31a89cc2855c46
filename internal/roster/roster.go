package roster

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/AdamBeresnev/bracketeer/internal/bracket"
	"github.com/google/uuid"
)

const MaxNameLength = 50

var (
	ErrEmptyName       = errors.New("entrant name is empty")
	ErrNameTooLong     = fmt.Errorf("entrant name exceeds %d characters", MaxNameLength)
	ErrEntrantNotFound = errors.New("entrant not found")
)

// Roster is the ordered pool of entrants a bracket is built from.
type Roster struct {
	entrants []*bracket.Entrant
}

func New() *Roster {
	return &Roster{}
}

// Add creates one entrant per non-blank line. Nothing is added if any line is
// too long.
func (r *Roster) Add(text string) ([]*bracket.Entrant, error) {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return nil, fmt.Errorf("%q: %w", name, ErrNameTooLong)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, ErrEmptyName
	}

	added := make([]*bracket.Entrant, 0, len(names))
	for _, name := range names {
		added = append(added, bracket.NewEntrant(name))
	}
	r.entrants = append(r.entrants, added...)
	return added, nil
}

// Rename keeps the old name when the new one is blank.
func (r *Roster) Rename(id uuid.UUID, name string) (*bracket.Entrant, error) {
	e, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	e.Rename(name)
	return e, nil
}

func (r *Roster) Remove(id uuid.UUID) error {
	for i, e := range r.entrants {
		if e.ID == id {
			r.entrants = append(r.entrants[:i], r.entrants[i+1:]...)
			return nil
		}
	}
	return ErrEntrantNotFound
}

func (r *Roster) Get(id uuid.UUID) (*bracket.Entrant, error) {
	for _, e := range r.entrants {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrEntrantNotFound
}

func (r *Roster) Clear() {
	r.entrants = nil
}

func (r *Roster) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(r.entrants), func(i, j int) {
		r.entrants[i], r.entrants[j] = r.entrants[j], r.entrants[i]
	})
}

// Entrants returns the current order. The entrants themselves are shared.
func (r *Roster) Entrants() []*bracket.Entrant {
	out := make([]*bracket.Entrant, len(r.entrants))
	copy(out, r.entrants)
	return out
}

func (r *Roster) Len() int {
	return len(r.entrants)
}
