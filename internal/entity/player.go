package entity

const (
	DefaultPlayerOneName = "PlayerOne"
	DefaultPlayerTwoName = "PlayerTwo"
)

type Player struct {
	Name  string `json:"name"`
	Token Token  `json:"token"`
}

// NewPlayers - returns the two players of a game in turn order.
// Empty names fall back to the defaults.
func NewPlayers(playerOneName, playerTwoName string) [2]Player {
	if playerOneName == "" {
		playerOneName = DefaultPlayerOneName
	}

	if playerTwoName == "" {
		playerTwoName = DefaultPlayerTwoName
	}

	return [2]Player{
		{Name: playerOneName, Token: TokenPlayerOne},
		{Name: playerTwoName, Token: TokenPlayerTwo},
	}
}
