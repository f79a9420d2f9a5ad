package backtrack

import "bytes"

// NQueens returns every placement of n queens on an n×n board such
// that no two attack each other. Each solution is a slice of n rows,
// each row a string of '.' with a single 'Q'. Solutions appear in
// column-ascending search order; sizes with no solution (2 and 3)
// return none, and NQueens(0) returns the single empty board.
//
// Complexity: O(n!) time in the search worst case.
func NQueens(n int) [][]string {
	var result [][]string
	board := make([][]byte, n)
	for i := range board {
		board[i] = bytes.Repeat([]byte{'.'}, n)
	}

	var backtrack func(row int)
	backtrack = func(row int) {
		// 1) All rows filled: snapshot the board as strings.
		if row == n {
			snapshot := make([]string, n)
			for i, r := range board {
				snapshot[i] = string(r)
			}
			result = append(result, snapshot)
			return
		}

		// 2) Try each column of this row, keeping only unattacked squares.
		for col := 0; col < n; col++ {
			if !queenSafe(board, row, col) {
				continue
			}
			board[row][col] = 'Q'
			backtrack(row + 1)
			board[row][col] = '.'
		}
	}
	backtrack(0)

	return result
}

// queenSafe reports whether a queen at (row, col) is unattacked by the
// queens already placed in the rows above. Rows below are still empty,
// so only the column and the two upper diagonals need checking.
func queenSafe(board [][]byte, row, col int) bool {
	n := len(board)

	// 1) Column above.
	for i := 0; i < row; i++ {
		if board[i][col] == 'Q' {
			return false
		}
	}

	// 2) Upper-left diagonal.
	for i, j := row-1, col-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if board[i][j] == 'Q' {
			return false
		}
	}

	// 3) Upper-right diagonal.
	for i, j := row-1, col+1; i >= 0 && j < n; i, j = i-1, j+1 {
		if board[i][j] == 'Q' {
			return false
		}
	}

	return true
}
