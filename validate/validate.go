// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"sort"

	"github.com/simplehardware/labyrinth/grid"
)

// BalanceGap is the largest tolerated difference between the form counts of
// two players before Validate warns.
const BalanceGap = 2

// tally holds per-player counts gathered in one pass over the grid.
type tally struct {
	starts   map[int]int
	finishes map[int]int
	forms    map[int]map[rune]bool
}

func collect(g grid.Grid) tally {
	t := tally{
		starts:   map[int]int{},
		finishes: map[int]int{},
		forms:    map[int]map[rune]bool{},
	}
	grid.Each(g, func(_ grid.Point, c grid.Cell) {
		switch {
		case c.State == grid.Start:
			t.starts[c.Owner]++
		case c.State == grid.Finish:
			t.finishes[c.Owner]++
		case c.State.IsForm():
			if t.forms[c.Owner] == nil {
				t.forms[c.Owner] = map[rune]bool{}
			}
			t.forms[c.Owner][c.State.Letter()] = true
		}
	})
	return t
}

// players returns every owner seen on a start, finish or form, ascending.
func (t tally) players() []int {
	seen := map[int]bool{}
	for id := range t.starts {
		seen[id] = true
	}
	for id := range t.finishes {
		seen[id] = true
	}
	for id := range t.forms {
		seen[id] = true
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks g against the structural level rules.
// Complexity: O(n²) time, O(players) memory.
func Validate(g grid.Grid) *Result {
	res := NewResult()
	t := collect(g)
	players := t.players()

	for _, id := range players {
		checkCount(res, id, t.starts[id], "start")
		checkCount(res, id, t.finishes[id], "finish")
	}
	for _, id := range players {
		if letters := t.forms[id]; len(letters) > 0 {
			VerifyFormSequence(id, letters, res)
		}
	}
	checkBalance(res, players, t.forms)
	return res
}

func checkCount(res *Result, player, count int, what string) {
	switch {
	case count == 0:
		res.AddError(fmt.Sprintf("Player %d has no %s position", player, what))
	case count > 1:
		res.AddError(fmt.Sprintf("Player %d has %d %s positions, should have exactly 1", player, count, what))
	}
}

// VerifyFormSequence reports whether letters is the contiguous run A..max.
// On the first gap it adds an error to res (when non-nil) and stops.
func VerifyFormSequence(player int, letters map[rune]bool, res *Result) bool {
	if len(letters) == 0 {
		return true
	}
	var top rune
	for l := range letters {
		top = max(top, l)
	}
	for c := 'A'; c <= top; c++ {
		if !letters[c] {
			if res != nil {
				res.AddError(fmt.Sprintf("Player %d missing form %c in sequence (has forms up to %c)", player, c, top))
			}
			return false
		}
	}
	return true
}

func checkBalance(res *Result, players []int, forms map[int]map[rune]bool) {
	if len(players) <= 1 {
		return
	}
	lo, hi := formSpan(players, forms)
	if hi-lo > BalanceGap {
		res.AddWarning(fmt.Sprintf("Unbalanced forms: some players have %d forms while others have %d", hi, lo))
	}
}

// formSpan returns the smallest and largest distinct form count among players.
func formSpan(players []int, forms map[int]map[rune]bool) (lo, hi int) {
	lo = -1
	for _, id := range players {
		k := len(forms[id])
		if lo < 0 || k < lo {
			lo = k
		}
		hi = max(hi, k)
	}
	return lo, hi
}
