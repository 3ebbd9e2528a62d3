package gomoku

import "fmt"

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Rules answers legality, win and draw questions for one settings set.
// Win detection scans the 4 axes through the last placed stone only, so
// checking a position after a move is O(winLength) rather than O(N²).
type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if player != state.ToMove {
		return false, "not this player's turn"
	}
	if !move.IsValid(r.settings.BoardSize) {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

func (r Rules) IsLegalDefault(state GameState, move Move) (bool, string) {
	return r.IsLegal(state, move, state.ToMove)
}

// IsWin reports whether the stone at lastMove completes a run of at least
// WinLength in any of the 4 axis directions. Overlines count.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid(board.Size()) {
		return false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	for i := 0; i < 4; i++ {
		dx := directions[i][0]
		dy := directions[i][1]
		count := 1
		count += countDirection(board, lastMove, dx, dy)
		count += countDirection(board, lastMove, -dx, -dy)
		if count >= r.settings.WinLength {
			return true
		}
	}
	return false
}

func (r Rules) IsDraw(board Board) bool {
	return board.IsFull()
}

// Result classifies the position after the last placed stone. It assumes
// at most one player can have a winning run, which holds for any position
// reached through Place.
func (r Rules) Result(state GameState) GameStatus {
	last, ok := state.Board.LastMove()
	if !ok {
		return StatusRunning
	}
	if r.IsWin(state.Board, last) {
		winner, err := playerAt(state.Board, last)
		if err != nil {
			return StatusRunning
		}
		return wonStatus(winner)
	}
	if r.IsDraw(state.Board) {
		return StatusDraw
	}
	return StatusRunning
}

// FindWinningLine collects the run through lastMove for highlighting.
func (r Rules) FindWinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(board.Size()) {
		return nil, false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return nil, false
	}
	for i := 0; i < 4; i++ {
		dx := directions[i][0]
		dy := directions[i][1]
		line := collectLine(board, lastMove, dx, dy)
		if len(line) >= r.settings.WinLength {
			return line, true
		}
	}
	return nil, false
}

func countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func collectLine(board Board, start Move, dx, dy int) []Move {
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	line := []Move{}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}

func playerAt(board Board, move Move) (PlayerColor, error) {
	switch board.At(move.X, move.Y) {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
