package bracket

import "math/rand/v2"

// Randomize reshuffles the players bound to first-round matches and discards
// every result. Byes keep their shape: a leaf with one bound side still has
// one, and is decided again straight away.
func (b *Bracket) Randomize(rng *rand.Rand) {
	leaves := b.Leaves()

	var pool []*Entrant
	for _, m := range leaves {
		if m.player1 != nil {
			pool = append(pool, m.player1)
		}
		if m.player2 != nil {
			pool = append(pool, m.player2)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	next := 0
	for _, m := range leaves {
		if m.player1 != nil {
			m.player1 = pool[next]
			next++
		}
		if m.player2 != nil {
			m.player2 = pool[next]
			next++
		}
	}

	for _, m := range b.matches {
		m.clearResult()
		m.resolveBye()
		m.championFired = false
		m.celebrated = nil
	}

	b.ObserveChampion()
}
