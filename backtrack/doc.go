// Package backtrack collects classic backtracking searches: procedures
// that grow a partial solution one choice at a time, prune choices a
// validity predicate rejects, and undo the latest choice when a branch
// dead-ends.
//
// Catalogue:
//
//   - Permutations: every ordering of the input values. O(n·n!) time.
//   - Combinations: every k-subset of 1..n in lexicographic order.
//     O(k·C(n,k)) time.
//   - NQueens: every placement of n non-attacking queens, as '.'/'Q'
//     board rows. The validity predicate checks the column and both
//     upper diagonals of the candidate square.
//   - SolveSudoku: fills a 9×9 '.'-or-digit grid in place. The validity
//     predicate checks the row, the column, and the 3×3 box.
//
// All results are deterministic: choices are tried in ascending order
// (slice order, column order, digit order), so solution lists always
// come back in the same sequence.
//
// Empty solutions are real solutions: Permutations(nil) and
// Combinations(n, 0) both return a single empty arrangement, and
// NQueens(0) returns the single empty board.
//
// Errors (sentinel):
//
//   - ErrBadBoard    if a Sudoku board is not exactly 9×9.
//   - ErrUnsolvable  if a Sudoku board admits no solution; the board is
//     left exactly as given.
package backtrack
