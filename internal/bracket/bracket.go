package bracket

import (
	"errors"

	"github.com/AdamBeresnev/bracketeer/internal/utils"
)

var (
	ErrNoEntrants      = errors.New("cannot build a bracket with zero entrants")
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchNotPending = errors.New("match is not pending")
	ErrInvalidSide     = errors.New("side must be 1 or 2")
	ErrInvalidBestOf   = errors.New("best-of must be a positive odd number")
	ErrInvariant       = errors.New("bracket invariant violated")
)

type Options struct {
	// ThirdPlace adds a match between the two semifinal losers.
	ThirdPlace bool
	// BestOf is applied to every match. Zero means 1.
	BestOf int
}

// Bracket owns every match of one tournament run. Matches are stored in
// creation order and a match's ID is its index.
type Bracket struct {
	matches    []*Match
	rounds     [][]*Match
	champion   *Match
	thirdPlace *Match

	onChampion func(*Entrant)
}

// Build seeds entrants (already ordered by the caller) into a single
// elimination bracket ending in a champion slot.
func Build(entrants []*Entrant, opts Options) (*Bracket, error) {
	if len(entrants) == 0 {
		return nil, ErrNoEntrants
	}

	bestOf := opts.BestOf
	if bestOf == 0 {
		bestOf = 1
	}
	if !validBestOf(bestOf) {
		return nil, ErrInvalidBestOf
	}

	b := &Bracket{}

	// A lone entrant is champion without playing.
	if len(entrants) == 1 {
		champion := b.newMatch(bestOf)
		champion.player1 = entrants[0]
		champion.isChampionSlot = true
		b.champion = champion
		b.rounds = [][]*Match{{champion}}
		b.assignIDs()
		return b, nil
	}

	order := Seed(len(entrants))
	slots := make([]*Entrant, len(order))
	for i, seed := range order {
		if seed != 0 {
			slots[i] = entrants[seed-1]
		}
	}

	leaves := make([]*Match, 0, len(slots)/2)
	for i := 0; i < len(slots); i += 2 {
		m := b.newMatch(bestOf)
		m.player1 = slots[i]
		if i+1 < len(slots) {
			m.player2 = slots[i+1]
		}
		m.resolveBye()
		leaves = append(leaves, m)
	}
	b.rounds = append(b.rounds, leaves)

	current := leaves
	for len(current) > 1 {
		level := make([]*Match, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			m := b.newMatch(bestOf)
			b.feed(m, Side1, current[i], true)
			if i+1 < len(current) {
				b.feed(m, Side2, current[i+1], true)
			}
			level = append(level, m)
		}
		b.rounds = append(b.rounds, level)
		current = level
	}

	champion := b.newMatch(bestOf)
	champion.isChampionSlot = true
	b.feed(champion, Side1, current[0], true)
	b.champion = champion
	b.rounds = append(b.rounds, []*Match{champion})

	if opts.ThirdPlace && len(b.rounds) >= 3 {
		semifinals := b.rounds[len(b.rounds)-3]
		if len(semifinals) >= 2 {
			third := b.newMatch(bestOf)
			third.useLosers = true
			// The final stays the semifinals' parent.
			b.feed(third, Side1, semifinals[0], false)
			b.feed(third, Side2, semifinals[1], false)
			b.thirdPlace = third
		}
	}

	b.assignIDs()
	return b, nil
}

func (b *Bracket) newMatch(bestOf int) *Match {
	m := &Match{bestOf: bestOf, slot: len(b.matches), arena: b}
	b.matches = append(b.matches, m)
	return m
}

func (b *Bracket) feed(m *Match, side Side, prev *Match, adopt bool) {
	m.link(side, prev.slot)
	if adopt {
		prev.parent = utils.Ptr(m.slot)
	}
}

func (b *Bracket) assignIDs() {
	for _, m := range b.matches {
		m.ID = m.slot
	}
}

// Match looks up a match by its ID.
func (b *Bracket) Match(id int) (*Match, bool) {
	if id < 0 || id >= len(b.matches) {
		return nil, false
	}
	return b.matches[id], true
}

func (b *Bracket) lookup(id int) (*Match, error) {
	m, ok := b.Match(id)
	if !ok {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// Matches returns every match in ID order.
func (b *Bracket) Matches() []*Match {
	out := make([]*Match, len(b.matches))
	copy(out, b.matches)
	return out
}

// Rounds returns the leaf round first and the champion slot last. The
// third-place match is not part of any round.
func (b *Bracket) Rounds() [][]*Match {
	out := make([][]*Match, len(b.rounds))
	for i, round := range b.rounds {
		out[i] = append([]*Match(nil), round...)
	}
	return out
}

func (b *Bracket) Champion() *Match {
	return b.champion
}

func (b *Bracket) ThirdPlace() *Match {
	return b.thirdPlace
}

// Leaves returns first-round matches in traversal order.
func (b *Bracket) Leaves() []*Match {
	var leaves []*Match
	for _, m := range b.matches {
		if m.IsLeaf() {
			leaves = append(leaves, m)
		}
	}
	return leaves
}

func validBestOf(n int) bool {
	return n > 0 && n%2 == 1
}
