package matchmaker

import (
	"testing"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/odds"
	"StarGame/internal/game/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, hands ...table.Hand) table.Table {
	t.Helper()
	actors := make([]table.Actor, len(hands))
	for i, h := range hands {
		actors[i] = table.RestoreActor(i+1, string(rune('A'+i)), h, 3)
	}
	tbl := table.Table{Actors: actors, Pool: table.PoolOf(actors...)}
	require.NoError(t, tbl.Verify())
	return tbl
}

func ids(actors []table.Actor) []int {
	out := make([]int, len(actors))
	for i, a := range actors {
		out[i] = a.ID
	}
	return out
}

func TestCompeteCandidatesFiltersAndRanks(t *testing.T) {
	tbl := newTable(t,
		table.Hand{1, 1, 1},
		table.Hand{},
		table.Hand{0, 0, 3},
		table.Hand{2, 0, 0},
	)

	got := CompeteCandidates(tbl)
	require.Len(t, got, 3, "actor without cards cannot compete")
	assert.NotContains(t, ids(got), 2)

	for i := 1; i < len(got); i++ {
		prev := odds.CompeteWill(tbl.Pool, got[i-1])
		cur := odds.CompeteWill(tbl.Pool, got[i])
		assert.GreaterOrEqual(t, prev, cur, "candidates must be ordered by descending will")
	}
}

func TestCompeteCandidatesStableOnTies(t *testing.T) {
	// identical hands give identical wills
	tbl := newTable(t,
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
	)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(CompeteCandidates(tbl)))
}

func TestSelectRoundSizeForcesEven(t *testing.T) {
	src := &dealer.Script{Ints: []int{5, 4, 0, 1}}

	assert.Equal(t, 4, SelectRoundSize(5, src), "a draw of 5 among 5 candidates selects 4")
	assert.Equal(t, 4, SelectRoundSize(5, src))
	assert.Equal(t, 0, SelectRoundSize(5, src))
	assert.Equal(t, 0, SelectRoundSize(5, src))
}

func TestSelectRoundSizeCanTakeEveryone(t *testing.T) {
	d := dealer.NewDealer(11)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := SelectRoundSize(4, d)
		assert.Equal(t, 0, n%2)
		seen[n] = true
	}
	assert.True(t, seen[4], "inclusive upper bound allows the full population")
}

func TestCompeteListTakesPrefixThenShuffles(t *testing.T) {
	tbl := newTable(t,
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
	)
	candidates := CompeteCandidates(tbl)

	src := &dealer.Script{Ints: []int{5}, Perms: [][]int{{3, 1, 0, 2}}}
	list := CompeteList(candidates, src)

	assert.Equal(t, []int{4, 2, 1, 3}, list)
	assert.Equal(t, []string{"int", "shuffle"}, src.Draws)
	assert.Equal(t, []Pair{{A: 4, B: 2}, {A: 1, B: 3}}, Pairs(list))
}

func TestPairs(t *testing.T) {
	assert.Empty(t, Pairs(nil))
	assert.Empty(t, Pairs([]int{7}))
	assert.Equal(t, []Pair{{A: 1, B: 2}, {A: 3, B: 4}}, Pairs([]int{1, 2, 3, 4, 5}))
}

func TestNegotiateCandidatesIsSetDifference(t *testing.T) {
	tbl := newTable(t,
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{1, 1, 1},
		table.Hand{},
	)
	got := NegotiateCandidates(tbl, []int{3, 1, 42})
	assert.Equal(t, []int{2, 4, 5}, got)
}

func TestNegotiateListDropsOddTail(t *testing.T) {
	src := &dealer.Script{Perms: [][]int{{1, 0}}}
	assert.Equal(t, []int{4, 2}, NegotiateList([]int{2, 4, 5}, src))

	assert.Empty(t, NegotiateList([]int{9}, &dealer.Script{}))
}
