package bracket

import "fmt"

// RecordScore adds one point to a side of a pending match. The side's player
// wins once it reaches a majority of the match's best-of.
func (b *Bracket) RecordScore(id int, side Side) error {
	if !side.Valid() {
		return ErrInvalidSide
	}
	m, err := b.lookup(id)
	if err != nil {
		return err
	}
	if m.State() != MatchPending {
		return fmt.Errorf("match %d: %w", id, ErrMatchNotPending)
	}

	points := &m.p1Series
	if side == Side2 {
		points = &m.p2Series
	}
	*points++

	if *points >= m.pointsToWin() {
		m.winner = m.Player(side)
	}

	b.ObserveChampion()
	return nil
}

// SetBestOf changes the series length of a match that has no result and no
// points recorded yet.
func (b *Bracket) SetBestOf(id int, bestOf int) error {
	if !validBestOf(bestOf) {
		return ErrInvalidBestOf
	}
	m, err := b.lookup(id)
	if err != nil {
		return err
	}
	if m.winner != nil || m.p1Series != 0 || m.p2Series != 0 {
		return fmt.Errorf("match %d already has a result: %w", id, ErrMatchNotPending)
	}
	m.bestOf = bestOf
	return nil
}

// OnChampion registers the function called when a new champion appears.
func (b *Bracket) OnChampion(fn func(*Entrant)) {
	b.onChampion = fn
}

// ObserveChampion fires the champion notification when the champion slot has
// gone from empty to a player. An empty slot re-arms it, but the same player
// reappearing is not announced twice.
func (b *Bracket) ObserveChampion() {
	m := b.champion
	if m == nil {
		return
	}

	champion := m.Player1()
	if champion == nil {
		m.championFired = false
		return
	}
	if m.championFired {
		return
	}

	m.championFired = true
	if sameEntrant(champion, m.celebrated) {
		return
	}
	m.celebrated = champion
	if b.onChampion != nil {
		b.onChampion(champion)
	}
}

// validWinner reports whether the stored winner still matches the players the
// match resolves to right now.
func (m *Match) validWinner() bool {
	if m.winner == nil {
		return true
	}
	if !m.participant(m.winner) {
		return false
	}
	if m.Player1() != nil && m.Player2() != nil {
		return true
	}
	return m.isBye()
}

// isBye reports a leaf with exactly one bound side.
func (m *Match) isBye() bool {
	return m.IsLeaf() && (m.player1 == nil) != (m.player2 == nil)
}

// decidable reports whether a winner may be assigned by hand.
func (m *Match) decidable() bool {
	if m.isChampionSlot {
		return false
	}
	return (m.Player1() != nil && m.Player2() != nil) || m.isBye()
}

// strandedSeries reports series points left on a match that is no longer
// pending. They belong to a pairing that does not exist anymore.
func (m *Match) strandedSeries() bool {
	return m.winner == nil && (m.p1Series != 0 || m.p2Series != 0) && m.State() != MatchPending
}

// retract clears a result and every later result that depended on it,
// including partial series. Matches are created before their readers, so one
// pass in ID order is enough.
func (b *Bracket) retract(m *Match) {
	m.clearResult()
	for _, later := range b.matches[m.slot+1:] {
		if !later.validWinner() || later.strandedSeries() {
			later.clearResult()
		}
	}
}
