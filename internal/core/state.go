package core

// GameState represents the current state of a game session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has stopped
	Crashed  bool // Whether it stopped because of a collision
}
