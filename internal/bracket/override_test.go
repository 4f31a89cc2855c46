package bracket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchSnapshot struct {
	winner        uuid.UUID
	p1, p2        int
	bestOf        int
	championFired bool
}

func snapshot(b *Bracket) []matchSnapshot {
	out := make([]matchSnapshot, 0, len(b.matches))
	for _, m := range b.matches {
		s := matchSnapshot{p1: m.p1Series, p2: m.p2Series, bestOf: m.bestOf, championFired: m.championFired}
		if m.winner != nil {
			s.winner = m.winner.ID
		}
		out = append(out, s)
	}
	return out
}

func tok(m *Match, e *Entrant) Token {
	return Token{MatchID: m.ID, PlayerID: e.ID}
}

func TestManualDecision(t *testing.T) {
	entrants := genEntrants(4)
	b := mustBuild(t, entrants, Options{ThirdPlace: true})
	leaves := b.Leaves()
	final := leaves[0].Parent()

	// Drag Entry 4 from the first leaf into the empty final slot.
	require.True(t, b.TryMove(tok(leaves[0], entrants[3]), final.ID, Side1))

	assert.Same(t, entrants[3], leaves[0].Winner())
	assert.Same(t, entrants[3], final.Player1())
	assert.Same(t, entrants[0], b.ThirdPlace().Player1())
	require.NoError(t, b.Validate())
}

func TestManualDecisionIntoThirdPlace(t *testing.T) {
	entrants := genEntrants(4)
	b := mustBuild(t, entrants, Options{ThirdPlace: true})
	leaves := b.Leaves()
	third := b.ThirdPlace()

	require.True(t, b.TryMove(tok(leaves[1], entrants[2]), third.ID, Side2))
	assert.Same(t, entrants[2], leaves[1].Winner())
	assert.Same(t, entrants[1], third.Player2())
	require.NoError(t, b.Validate())
}

func TestTryMoveRejections(t *testing.T) {
	entrants := genEntrants(8)
	b := mustBuild(t, entrants, Options{ThirdPlace: true})
	leaves := b.Leaves()
	second := leaves[0].Parent()
	final := second.Parent()

	// Leaf 0 is Entry 1 vs Entry 8; leaf 1 is Entry 5 vs Entry 4.
	require.NoError(t, b.RecordScore(leaves[0].ID, Side1))
	before := snapshot(b)

	testCases := []struct {
		name   string
		token  Token
		target int
		side   Side
	}{
		{
			name:   "target side already resolved",
			token:  tok(leaves[0], entrants[7]),
			target: second.ID,
			side:   Side1,
		},
		{
			name:   "player is not in the claimed source match",
			token:  Token{MatchID: leaves[1].ID, PlayerID: entrants[0].ID},
			target: second.ID,
			side:   Side2,
		},
		{
			name:   "source is not the side's feeder",
			token:  tok(leaves[2], entrants[2]),
			target: second.ID,
			side:   Side2,
		},
		{
			name:   "feeder has only one resolved side",
			token:  tok(second, entrants[0]),
			target: final.ID,
			side:   Side1,
		},
		{
			name:   "leaf side is bound",
			token:  tok(leaves[1], entrants[4]),
			target: leaves[1].ID,
			side:   Side1,
		},
		{
			name:   "unknown player",
			token:  Token{MatchID: leaves[1].ID, PlayerID: uuid.New()},
			target: second.ID,
			side:   Side2,
		},
		{
			name:   "unknown source match",
			token:  Token{MatchID: 1000, PlayerID: entrants[4].ID},
			target: second.ID,
			side:   Side2,
		},
		{
			name:   "unknown target match",
			token:  tok(leaves[1], entrants[4]),
			target: -5,
			side:   Side2,
		},
		{
			name:   "invalid side",
			token:  tok(leaves[1], entrants[4]),
			target: second.ID,
			side:   Side(0),
		},
		{
			name:   "parent token for a player who never advanced",
			token:  tok(second, entrants[0]),
			target: leaves[1].ID,
			side:   Side1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, b.TryMove(tc.token, tc.target, tc.side))
			assert.Equal(t, before, snapshot(b), "rejected moves leave the graph unchanged")
		})
	}
}

func TestReversal(t *testing.T) {
	entrants := genEntrants(4)
	b := mustBuild(t, entrants, Options{ThirdPlace: true})
	leaves := b.Leaves()
	final := leaves[0].Parent()
	champion := b.Champion()

	require.NoError(t, b.RecordScore(leaves[0].ID, Side1))
	require.NoError(t, b.RecordScore(leaves[1].ID, Side1))
	require.NoError(t, b.RecordScore(final.ID, Side1))
	require.Same(t, entrants[0], champion.Player1())

	t.Run("decided parent is reopened first", func(t *testing.T) {
		require.True(t, b.TryMove(tok(final, entrants[0]), leaves[0].ID, Side1))

		assert.Nil(t, final.Winner())
		assert.Equal(t, MatchPending, final.State())
		assert.Nil(t, champion.Player1())
		assert.Same(t, entrants[0], leaves[0].Winner(), "the feeder keeps its result")
		assert.Same(t, entrants[0], final.Player1())
		require.NoError(t, b.Validate())
	})

	t.Run("open parent hands the player back", func(t *testing.T) {
		require.True(t, b.TryMove(tok(final, entrants[0]), leaves[0].ID, Side1))

		assert.Nil(t, leaves[0].Winner())
		assert.Equal(t, MatchPending, leaves[0].State())
		assert.Nil(t, final.Player1())
		assert.Nil(t, b.ThirdPlace().Player1())
		require.NoError(t, b.Validate())
	})

	t.Run("parent side tracks the feeder again", func(t *testing.T) {
		require.True(t, b.TryMove(tok(leaves[0], entrants[3]), final.ID, Side1))
		assert.Same(t, entrants[3], final.Player1())
		assert.Same(t, entrants[0], b.ThirdPlace().Player1())
	})

	t.Run("nothing left to pull back", func(t *testing.T) {
		assert.False(t, b.TryMove(tok(final, entrants[2]), leaves[0].ID, Side1))
	})
}

func TestReversalClearsDependentResults(t *testing.T) {
	entrants := genEntrants(4)
	b := mustBuild(t, entrants, Options{ThirdPlace: true})
	leaves := b.Leaves()
	final := leaves[0].Parent()
	third := b.ThirdPlace()

	require.NoError(t, b.RecordScore(leaves[0].ID, Side1))
	require.NoError(t, b.RecordScore(leaves[1].ID, Side1))
	require.NoError(t, b.RecordScore(third.ID, Side1))
	require.Same(t, entrants[3], third.Winner())

	require.True(t, b.TryMove(tok(final, entrants[0]), leaves[0].ID, Side2))

	assert.Nil(t, leaves[0].Winner())
	assert.Nil(t, third.Winner(), "the third-place result depended on the first leaf's loser")
	p1, p2 := third.Series()
	assert.Zero(t, p1)
	assert.Zero(t, p2)
	assert.Same(t, entrants[2], final.Player2())
	require.NoError(t, b.Validate())
}

func TestReversalOfBye(t *testing.T) {
	entrants := genEntrants(3)
	b := mustBuild(t, entrants, Options{})
	bye := b.Leaves()[0]
	final := bye.Parent()
	require.Same(t, entrants[0], bye.Winner())

	require.True(t, b.TryMove(tok(final, entrants[0]), bye.ID, Side1))
	assert.Nil(t, bye.Winner())
	assert.Equal(t, MatchEmpty, bye.State())
	require.NoError(t, b.Validate())

	require.True(t, b.TryMove(tok(bye, entrants[0]), final.ID, Side1))
	assert.Same(t, entrants[0], bye.Winner())
	assert.Same(t, entrants[0], final.Player1())
}

func decide(t *testing.T, b *Bracket, m *Match, side Side) {
	t.Helper()
	for m.Winner() == nil {
		require.NoError(t, b.RecordScore(m.ID, side))
	}
}

func TestReversalResetsPartialSeries(t *testing.T) {
	entrants := genEntrants(8)
	b := mustBuild(t, entrants, Options{BestOf: 3})
	leaves := b.Leaves()
	for _, leaf := range leaves {
		decide(t, b, leaf, Side1)
	}
	semi := leaves[0].Parent()
	decide(t, b, semi, Side1)
	decide(t, b, leaves[2].Parent(), Side1)
	final := semi.Parent()

	require.NoError(t, b.RecordScore(final.ID, Side1))
	require.Same(t, entrants[0], final.Player1())

	require.True(t, b.TryMove(tok(final, entrants[0]), semi.ID, Side1))
	assert.Equal(t, MatchEmpty, final.State())
	p1, p2 := final.Series()
	assert.Zero(t, p1, "points belonged to the old pairing")
	assert.Zero(t, p2)
	require.NoError(t, b.Validate())

	// Entry 5 now takes the semifinal and still needs two points in the final.
	require.True(t, b.TryMove(tok(semi, entrants[4]), final.ID, Side1))
	require.Same(t, entrants[4], final.Player1())
	require.NoError(t, b.RecordScore(final.ID, Side1))
	assert.Nil(t, final.Winner())
	assert.Equal(t, MatchPending, final.State())
	require.NoError(t, b.Validate())
}

func TestReversalResetsThirdPlaceSeries(t *testing.T) {
	entrants := genEntrants(4)
	b := mustBuild(t, entrants, Options{ThirdPlace: true, BestOf: 3})
	leaves := b.Leaves()
	final := leaves[0].Parent()
	third := b.ThirdPlace()
	decide(t, b, leaves[0], Side1)
	decide(t, b, leaves[1], Side1)

	require.NoError(t, b.RecordScore(third.ID, Side1))
	require.Same(t, entrants[3], third.Player1())

	require.True(t, b.TryMove(tok(final, entrants[0]), leaves[0].ID, Side1))
	p1, p2 := third.Series()
	assert.Zero(t, p1)
	assert.Zero(t, p2)
	require.NoError(t, b.Validate())

	require.True(t, b.TryMove(tok(leaves[0], entrants[3]), final.ID, Side1))
	assert.Same(t, entrants[0], third.Player1(), "the new loser inherits nothing")
	p1, _ = third.Series()
	assert.Zero(t, p1)
}
