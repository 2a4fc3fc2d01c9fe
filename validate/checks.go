// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/reach"
)

// CheckPathReachability reports whether to can be reached from from without
// crossing a Wall. Validate does not call it.
func CheckPathReachability(g grid.Grid, from, to grid.Point) bool {
	return reach.IsReachable(g, from, to)
}

// CheckPlayerBalance reports whether player's distinct form count lies within
// BalanceGap of every other player's. A player with no cells is compared as
// holding zero forms. Validate does not call it.
func CheckPlayerBalance(g grid.Grid, player int) bool {
	t := collect(g)
	mine := len(t.forms[player])
	for _, id := range t.players() {
		if id == player {
			continue
		}
		d := len(t.forms[id]) - mine
		if d > BalanceGap || -d > BalanceGap {
			return false
		}
	}
	return true
}

// CheckStartsReachFinishes returns one message for every player whose single
// start cannot reach their single finish. Players with a missing or duplicate
// marker are skipped; Validate already reports them.
func CheckStartsReachFinishes(g grid.Grid) []string {
	starts := map[int][]grid.Point{}
	finishes := map[int][]grid.Point{}
	grid.Each(g, func(p grid.Point, c grid.Cell) {
		switch c.State {
		case grid.Start:
			starts[c.Owner] = append(starts[c.Owner], p)
		case grid.Finish:
			finishes[c.Owner] = append(finishes[c.Owner], p)
		}
	})

	var msgs []string
	for _, id := range collect(g).players() {
		s, f := starts[id], finishes[id]
		if len(s) != 1 || len(f) != 1 {
			continue
		}
		if !CheckPathReachability(g, s[0], f[0]) {
			msgs = append(msgs, fmt.Sprintf("Player %d cannot reach finish (%d,%d) from start (%d,%d)",
				id, f[0].X, f[0].Y, s[0].X, s[0].Y))
		}
	}
	return msgs
}
