package backtrack

import "errors"

// Sentinel errors returned by SolveSudoku.
var (
	// ErrBadBoard indicates that the provided Sudoku board is not exactly
	// 9 rows of 9 cells.
	ErrBadBoard = errors.New("backtrack: sudoku board must be 9x9")

	// ErrUnsolvable indicates that no digit assignment satisfies the
	// Sudoku constraints for the given board.
	ErrUnsolvable = errors.New("backtrack: sudoku board has no solution")
)
