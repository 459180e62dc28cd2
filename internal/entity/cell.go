package entity

// Token is the occupancy value of a cell.
type Token uint8

const (
	TokenEmpty Token = iota
	TokenPlayerOne
	TokenPlayerTwo
)

func (that Token) String() string {
	switch that {
	case TokenPlayerOne:
		return "player-one"
	case TokenPlayerTwo:
		return "player-two"
	default:
		return "empty"
	}
}

// Cell represents one square of the board.
// It does not check whether it is already occupied, that is the board's job.
type Cell struct {
	value Token
}

// Occupy - puts the token into the cell, overwriting any prior value.
func (that *Cell) Occupy(token Token) {
	that.value = token
}

// Value - returns the current occupancy of the cell.
func (that *Cell) Value() Token {
	return that.value
}
