package backtrack

const (
	boardSize = 9
	boxSize   = 3
	emptyCell = '.'
)

// SolveSudoku fills the '.' cells of a 9×9 Sudoku board in place so
// that every row, column, and 3×3 box holds the digits '1'..'9' at
// most once each (exactly once when solved).
//
// The board must be exactly 9 rows of 9 bytes, each '.' or a digit;
// any other shape returns ErrBadBoard. Pre-filled digits are trusted,
// not validated: a board whose givens already conflict is caller error
// and produces meaningless results. When no solution exists the board
// is left exactly as passed in (backtracking undoes every trial digit)
// and ErrUnsolvable is returned.
//
// Complexity: O(9^m) worst case over m empty cells; real puzzles prune
// far below that.
func SolveSudoku(board [][]byte) error {
	// 1) Shape check.
	if len(board) != boardSize {
		return ErrBadBoard
	}
	for _, row := range board {
		if len(row) != boardSize {
			return ErrBadBoard
		}
	}

	// 2) Recursive fill.
	if !fillSudoku(board) {
		return ErrUnsolvable
	}

	return nil
}

// fillSudoku finds the next empty cell, tries each digit the
// constraints allow, and recurses; it reports whether the board got
// completed.
func fillSudoku(board [][]byte) bool {
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if board[row][col] != emptyCell {
				continue
			}
			for digit := byte('1'); digit <= '9'; digit++ {
				if !sudokuAllows(board, row, col, digit) {
					continue
				}
				board[row][col] = digit
				if fillSudoku(board) {
					return true
				}
				board[row][col] = emptyCell
			}

			// No digit fits this cell: dead end.
			return false
		}
	}

	// No empty cell remains.
	return true
}

// sudokuAllows reports whether placing digit at (row, col) keeps the
// row, column, and 3×3 box free of duplicates.
func sudokuAllows(board [][]byte, row, col int, digit byte) bool {
	// 1) Row and column in one sweep.
	for i := 0; i < boardSize; i++ {
		if board[row][i] == digit || board[i][col] == digit {
			return false
		}
	}

	// 2) The 3×3 box.
	boxRow, boxCol := boxSize*(row/boxSize), boxSize*(col/boxSize)
	for i := boxRow; i < boxRow+boxSize; i++ {
		for j := boxCol; j < boxCol+boxSize; j++ {
			if board[i][j] == digit {
				return false
			}
		}
	}

	return true
}
