package bracket

import (
	"strings"

	"github.com/google/uuid"
)

// Entrant is a participant in the pool. Score and Losses are carried for the
// caller; the bracket never reads them.
type Entrant struct {
	ID     uuid.UUID
	Name   string
	Score  int
	Losses int
}

func NewEntrant(name string) *Entrant {
	return &Entrant{
		ID:   uuid.New(),
		Name: strings.TrimSpace(name),
	}
}

// Rename changes the display name in place. Blank names are ignored.
func (e *Entrant) Rename(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	e.Name = name
	return true
}

func sameEntrant(a, b *Entrant) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID == b.ID
}
