package bracket

import "github.com/AdamBeresnev/bracketeer/internal/utils"

type MatchState string

const (
	// MatchEmpty means fewer than two sides resolve and no winner is set.
	MatchEmpty   MatchState = "empty"
	MatchPending MatchState = "pending"
	MatchDecided MatchState = "decided"
)

type Side int

const (
	Side1 Side = 1
	Side2 Side = 2
)

func (s Side) Valid() bool {
	return s == Side1 || s == Side2
}

func (s Side) Other() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// Match is a record in the bracket arena. Links to other matches are arena
// indices, never pointers, so a match may have more than one reader (the
// third-place match reads both semifinals without being their parent).
//
// Only winner, the series counters and the champion flag change after Build.
type Match struct {
	ID int

	player1 *Entrant
	player2 *Entrant

	previous1 *int
	previous2 *int
	parent    *int

	winner *Entrant

	useLosers      bool
	isChampionSlot bool

	p1Series int
	p2Series int
	bestOf   int

	championFired bool
	celebrated    *Entrant

	slot  int
	arena *Bracket
}

// Player1 resolves side one on every call. Nothing downstream is cached.
func (m *Match) Player1() *Entrant {
	return m.Player(Side1)
}

func (m *Match) Player2() *Entrant {
	return m.Player(Side2)
}

func (m *Match) Player(side Side) *Entrant {
	prev := m.Previous(side)
	if m.useLosers {
		if prev == nil {
			return nil
		}
		return prev.Loser()
	}
	if bound := m.Bound(side); bound != nil {
		return bound
	}
	if prev != nil {
		return prev.winner
	}
	return nil
}

// Loser is set only once the match is decided between two concrete players.
func (m *Match) Loser() *Entrant {
	if m.winner == nil {
		return nil
	}
	p1, p2 := m.Player1(), m.Player2()
	if p1 == nil || p2 == nil {
		return nil
	}
	if sameEntrant(m.winner, p1) {
		return p2
	}
	return p1
}

func (m *Match) Winner() *Entrant {
	return m.winner
}

// Bound returns the entrant placed directly on a side. Only leaves have them.
func (m *Match) Bound(side Side) *Entrant {
	if side == Side1 {
		return m.player1
	}
	return m.player2
}

func (m *Match) Previous(side Side) *Match {
	ref := m.previous1
	if side == Side2 {
		ref = m.previous2
	}
	if ref == nil {
		return nil
	}
	return m.arena.matches[*ref]
}

func (m *Match) Parent() *Match {
	if m.parent == nil {
		return nil
	}
	return m.arena.matches[*m.parent]
}

// HasSide reports whether a side can ever hold a player.
func (m *Match) HasSide(side Side) bool {
	return m.Bound(side) != nil || m.Previous(side) != nil
}

// IsLeaf reports a first-round match: no feeding matches on either side.
func (m *Match) IsLeaf() bool {
	return !m.isChampionSlot && m.previous1 == nil && m.previous2 == nil
}

func (m *Match) UsesLosers() bool {
	return m.useLosers
}

func (m *Match) IsChampionSlot() bool {
	return m.isChampionSlot
}

func (m *Match) ChampionFired() bool {
	return m.championFired
}

func (m *Match) BestOf() int {
	return m.bestOf
}

func (m *Match) Series() (int, int) {
	return m.p1Series, m.p2Series
}

func (m *Match) State() MatchState {
	if m.winner != nil {
		return MatchDecided
	}
	if m.Player1() != nil && m.Player2() != nil {
		return MatchPending
	}
	return MatchEmpty
}

func (m *Match) IsWinner(side Side) bool {
	return m.winner != nil && sameEntrant(m.winner, m.Player(side))
}

func (m *Match) IsLoser(side Side) bool {
	p := m.Player(side)
	return m.winner != nil && p != nil && !sameEntrant(m.winner, p)
}

func (m *Match) pointsToWin() int {
	return (m.bestOf + 1) / 2
}

// participant reports whether e currently resolves on either side.
func (m *Match) participant(e *Entrant) bool {
	return sameEntrant(e, m.Player1()) || sameEntrant(e, m.Player2())
}

func (m *Match) clearResult() {
	m.winner = nil
	m.p1Series = 0
	m.p2Series = 0
}

// resolveBye decides a leaf that has exactly one bound side.
func (m *Match) resolveBye() bool {
	if !m.IsLeaf() {
		return false
	}
	switch {
	case m.player1 != nil && m.player2 == nil:
		m.winner = m.player1
	case m.player1 == nil && m.player2 != nil:
		m.winner = m.player2
	default:
		return false
	}
	return true
}

func (m *Match) link(side Side, prev int) {
	if side == Side1 {
		m.previous1 = utils.Ptr(prev)
	} else {
		m.previous2 = utils.Ptr(prev)
	}
}
