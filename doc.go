// Package astar finds shortest paths on 2D occupancy grids with A*.
//
// Movement is 4-directional with unit step cost and the heuristic is the
// Manhattan distance. It exposes three entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: advance the search one expansion at a time to drive UIs or debugging tools.
//   - SolveAll: run many independent searches on a bounded worker pool.
//
// A search annotates a private copy of the input grid: every expanded cell
// is marked Path, every discovered cell Closed, and on success the start
// and goal cells become Start and Finish.
package astar
