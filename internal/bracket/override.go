package bracket

import "github.com/google/uuid"

// Token identifies a dragged player: the match it is displayed in and the
// entrant itself.
type Token struct {
	MatchID  int
	PlayerID uuid.UUID
}

// TryMove applies a dragged token to a side of a target match. It either
// pulls a result back (the token comes from the target's parent) or decides
// the match that feeds the target side. Rejected moves change nothing.
func (b *Bracket) TryMove(tok Token, targetID int, side Side) bool {
	if !side.Valid() {
		return false
	}
	target, ok := b.Match(targetID)
	if !ok {
		return false
	}
	source, ok := b.Match(tok.MatchID)
	if !ok {
		return false
	}
	dragged := source.resolved(tok.PlayerID)
	if dragged == nil {
		return false
	}

	if parent := target.Parent(); parent != nil && parent.ID == source.ID {
		if !b.reverse(target, parent, dragged) {
			return false
		}
		b.ObserveChampion()
		return true
	}

	if target.Player(side) != nil {
		return false
	}
	prev := target.Previous(side)
	if prev == nil || prev.ID != source.ID {
		return false
	}
	if !prev.decidable() {
		return false
	}

	prev.winner = dragged
	b.ObserveChampion()
	return true
}

// reverse undoes one level of progress for dragged. A decided parent is
// reopened first; an open parent hands the player back to the target match.
func (b *Bracket) reverse(target, parent *Match, dragged *Entrant) bool {
	switch {
	case sameEntrant(parent.winner, dragged):
		b.retract(parent)
	case parent.winner == nil && sameEntrant(target.winner, dragged):
		b.retract(target)
	default:
		return false
	}
	return true
}

// resolved returns the entrant with the given ID if it currently resolves on
// either side of the match.
func (m *Match) resolved(id uuid.UUID) *Entrant {
	for _, side := range []Side{Side1, Side2} {
		if p := m.Player(side); p != nil && p.ID == id {
			return p
		}
	}
	return nil
}
