// SPDX-License-Identifier: MIT

// Package config holds the generation settings used by the labyrinth CLI.
//
// Settings come from three layers, later layers winning:
//
//   - defaults (struct tags),
//   - LABYRINTH_* environment variables (FromEnv),
//   - a `maze { ... }` block in an HCL file (LoadFile).
//
// HCL files may reference the variables max_players and min_size.
package config
