// Package labyrinth generates balanced multi-player mazes and checks
// hand-edited levels against the game's structural rules.
//
// Everything operates on a caller-owned square grid through the narrow
// grid.Grid interface (Size/Get/Set):
//
//	grid/      — cell states, the Grid contract, the in-memory Board, row layout
//	reach/     — BFS distances, reachability, passable regions
//	maze/      — recursive-backtracker carving (explicit stack), random scatter
//	placement/ — balanced finish + per-player start placement (rejection sampling)
//	validate/  — start/finish cardinality, form sequences, form balance
//	generator/ — carve + place in one call
//	config/    — env and HCL settings for the CLI
//
// Quick ASCII example of a carved 7×7 maze with two players:
//
//	# # # # # # #
//	# @     #   #
//	# # #   #   #
//	#     !     #
//	#   # # #   #
//	#   #     @ #
//	# # # # # # #
//
// Randomness is always injected (*rand.Rand or a seed option), so every
// layout can be replayed in tests.
//
//	go install github.com/simplehardware/labyrinth/cmd/labyrinth@latest
package labyrinth
