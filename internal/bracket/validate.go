package bracket

import (
	"errors"
	"fmt"
)

// Validate checks the structural and result invariants of every match. A
// non-nil error means a programming error in the bracket or its caller.
func (b *Bracket) Validate() error {
	var errs []error
	fail := func(m *Match, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: match %d: %s", ErrInvariant, m.ID, fmt.Sprintf(format, args...)))
	}

	for i, m := range b.matches {
		if m.ID != i {
			fail(m, "id does not match arena index %d", i)
		}
		if !m.validWinner() {
			fail(m, "winner %q does not resolve on either side", m.winner.Name)
		}
		for _, side := range []Side{Side1, Side2} {
			if m.Bound(side) != nil && m.Previous(side) != nil {
				fail(m, "side %d is both bound and derived", side)
			}
			prev := m.Previous(side)
			if prev == nil || m.useLosers {
				continue
			}
			if parent := prev.Parent(); parent != m {
				fail(m, "feeder %d is registered to another parent", prev.ID)
			}
		}
		if m.winner == nil && (m.p1Series >= m.pointsToWin() || m.p2Series >= m.pointsToWin()) {
			fail(m, "series %d-%d reached best-of %d without a winner", m.p1Series, m.p2Series, m.bestOf)
		}
		if m.strandedSeries() {
			fail(m, "series %d-%d kept on a match that is not pending", m.p1Series, m.p2Series)
		}
		if m.isChampionSlot && m.winner != nil {
			fail(m, "champion slot has a winner")
		}
		if !m.isChampionSlot && (m.championFired || m.celebrated != nil) {
			fail(m, "champion flag set outside the champion slot")
		}
	}

	return errors.Join(errs...)
}
