package views

import (
	"github.com/AdamBeresnev/bracketeer/internal/bracket"
	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotTBD    SlotStatus = "tbd"
	SlotBye    SlotStatus = "bye"
	SlotPlayer SlotStatus = "player"
	SlotWinner SlotStatus = "winner"
	SlotLoser  SlotStatus = "loser"
)

type SlotView struct {
	Side     bracket.Side
	Name     string
	PlayerID uuid.UUID
	Status   SlotStatus
	Score    int
	// Scorable is true while the match is pending; clicking the slot
	// records a point for this side.
	Scorable bool
}

func (s SlotView) Resolved() bool {
	return s.PlayerID != uuid.Nil
}

type MatchView struct {
	ID         int
	BestOf     int
	Champion   bool
	ThirdPlace bool
	Slots      []SlotView

	// BestOfEditable holds until the first point or result is recorded.
	BestOfEditable bool
}

// ShowSeries is true for best-of matches worth a score readout.
func (m MatchView) ShowSeries() bool {
	return m.BestOf > 1 && !m.Champion
}

type RoundColumn struct {
	Label   string
	Matches []MatchView
}

type BracketData struct {
	Columns    []RoundColumn
	ThirdPlace *RoundColumn
	// Champion is empty until the final is decided.
	Champion string
}

// PrepareBracketData lays the bracket out as round columns, leaf round first
// and the champion slot last.
func PrepareBracketData(b *bracket.Bracket) BracketData {
	rounds := b.Rounds()
	data := BracketData{Columns: make([]RoundColumn, 0, len(rounds))}

	for level, round := range rounds {
		column := RoundColumn{
			Label:   bracket.RoundLabel(len(round), level, len(rounds)),
			Matches: make([]MatchView, 0, len(round)),
		}
		for _, m := range round {
			column.Matches = append(column.Matches, matchView(m))
		}
		data.Columns = append(data.Columns, column)
	}

	if third := b.ThirdPlace(); third != nil {
		view := matchView(third)
		view.ThirdPlace = true
		data.ThirdPlace = &RoundColumn{Label: bracket.ThirdPlaceLabel, Matches: []MatchView{view}}
	}

	if champion := b.Champion().Player1(); champion != nil {
		data.Champion = champion.Name
	}

	return data
}

func matchView(m *bracket.Match) MatchView {
	view := MatchView{
		ID:       m.ID,
		BestOf:   m.BestOf(),
		Champion: m.IsChampionSlot(),
	}

	sides := []bracket.Side{bracket.Side1, bracket.Side2}
	if m.IsChampionSlot() {
		sides = sides[:1]
	}

	pending := m.State() == bracket.MatchPending
	p1, p2 := m.Series()
	view.BestOfEditable = !m.IsChampionSlot() && m.Winner() == nil && p1 == 0 && p2 == 0
	for _, side := range sides {
		slot := SlotView{Side: side, Status: SlotTBD}
		if side == bracket.Side1 {
			slot.Score = p1
		} else {
			slot.Score = p2
		}

		player := m.Player(side)
		switch {
		case player != nil:
			slot.Name = player.Name
			slot.PlayerID = player.ID
			slot.Status = SlotPlayer
			slot.Scorable = pending
			if m.IsWinner(side) {
				slot.Status = SlotWinner
			} else if m.IsLoser(side) {
				slot.Status = SlotLoser
			}
		case !m.HasSide(side):
			slot.Status = SlotBye
		}

		view.Slots = append(view.Slots, slot)
	}
	return view
}
