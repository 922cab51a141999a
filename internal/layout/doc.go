// Package layout implements the pure allocation engine behind resizable panel groups.
//
// A group's total extent is always 100 percentage units. Each panel carries a
// [Constraint] (min, max, collapse and grow rules) and the engine works on a
// size vector: one float64 per panel, index-aligned with the constraints.
// Boundary i is the seam between panel i and panel i+1.
//
// The two entry points are [Distribute], which builds a vector for a panel
// set, and [Adjust], which moves one boundary by a delta. Both are stateless:
// callers thread the returned vector into the next call. [Diff] compares two
// vectors and reports which panels collapsed or expanded.
//
// Types are re-exported through the root resizable package for public consumption.
package layout
