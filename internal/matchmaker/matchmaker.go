// Package matchmaker decides who competes each round, how many and against
// whom, and pairs the rest for negotiation.
package matchmaker

import (
	"sort"

	"StarGame/internal/game/dealer"
	"StarGame/internal/game/odds"
	"StarGame/internal/game/table"
)

// Pair holds two actor ids.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// CompeteCandidates returns the actors that still hold cards, most willing
// first. Equal wills keep population order.
func CompeteCandidates(t table.Table) []table.Actor {
	type ranked struct {
		actor table.Actor
		will  float64
	}
	list := make([]ranked, 0, len(t.Actors))
	for _, a := range t.Actors {
		if a.CanCompete() {
			list = append(list, ranked{actor: a, will: odds.CompeteWill(t.Pool, a)})
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].will > list[j].will })

	out := make([]table.Actor, len(list))
	for i, r := range list {
		out[i] = r.actor
	}
	return out
}

// SelectRoundSize draws how many candidates compete: uniform in [0, n],
// rounded down to even. The inclusive bound makes "everyone" slightly more
// likely than the other even sizes.
func SelectRoundSize(n int, src dealer.Source) int {
	count := src.IntInclusive(n)
	if count%2 == 1 {
		count--
	}
	return count
}

// CompeteList takes the most willing prefix of the round size and shuffles
// it into contest order.
func CompeteList(candidates []table.Actor, src dealer.Source) []int {
	count := SelectRoundSize(len(candidates), src)
	ids := make([]int, count)
	for i := range ids {
		ids[i] = candidates[i].ID
	}
	dealer.ShuffleSlice(src, ids)
	return ids
}

// Pairs matches consecutive ids. A trailing odd id is left out.
func Pairs(ids []int) []Pair {
	pairs := make([]Pair, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		pairs = append(pairs, Pair{A: ids[i], B: ids[i+1]})
	}
	return pairs
}

// NegotiateCandidates lists, in population order, the active actors that
// were not picked to compete.
func NegotiateCandidates(t table.Table, competing []int) []int {
	skip := make(map[int]struct{}, len(competing))
	for _, id := range competing {
		skip[id] = struct{}{}
	}
	ids := make([]int, 0, len(t.Actors))
	for _, a := range t.Actors {
		if _, ok := skip[a.ID]; !ok {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// NegotiateList drops the last candidate when the count is odd and
// shuffles the rest.
func NegotiateList(candidates []int, src dealer.Source) []int {
	count := len(candidates)
	if count%2 == 1 {
		count--
	}
	ids := make([]int, count)
	copy(ids, candidates[:count])
	dealer.ShuffleSlice(src, ids)
	return ids
}
