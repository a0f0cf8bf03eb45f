package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Players taking turns
	GameStateComplete   GameState = "complete"    // Game over, scores final
)

// PlayerState is a player's seat in a game
type PlayerState struct {
	ID    PlayerID `json:"id"`
	Rack  string   `json:"rack"`
	Score int      `json:"score"`
}

// Game is one multi-player match around a single board
type Game struct {
	ID      GameID        `json:"id"`
	State   GameState     `json:"state"`
	Players []PlayerState `json:"players"`

	// Turn management
	CurrentPlayer     int `json:"current_player"` // Index into Players
	ConsecutivePasses int `json:"consecutive_passes"`

	Board Board  `json:"board"`
	Bag   string `json:"bag"` // Remaining tiles, one letter each

	// History holds one snapshot per completed turn, oldest first
	History []GameSnapshot `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameSnapshot records a turn together with the state it replaced
type GameSnapshot struct {
	Turn              Turn          `json:"turn"`
	Board             Board         `json:"board"`
	Bag               string        `json:"bag"`
	Players           []PlayerState `json:"players"`
	CurrentPlayer     int           `json:"current_player"`
	ConsecutivePasses int           `json:"consecutive_passes"`
}

// CurrentPlayerID returns the PlayerID whose turn it is
func (g *Game) CurrentPlayerID() PlayerID {
	if len(g.Players) == 0 {
		return ""
	}
	return g.Players[g.CurrentPlayer].ID
}

// Player returns the seat for the given player
func (g *Game) Player(id PlayerID) (*PlayerState, error) {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i], nil
		}
	}
	return nil, ErrPlayerNotFound
}

// IsComplete returns true once the game is over
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// Plays returns the accepted plays in order, passes excluded
func (g *Game) Plays() []Play {
	var plays []Play
	for _, snap := range g.History {
		if snap.Turn.Kind == TurnPlay && snap.Turn.Play != nil {
			plays = append(plays, *snap.Turn.Play)
		}
	}
	return plays
}

// Snapshot captures the current state ahead of the given turn
func (g *Game) Snapshot(turn Turn) GameSnapshot {
	players := make([]PlayerState, len(g.Players))
	copy(players, g.Players)
	return GameSnapshot{
		Turn:              turn,
		Board:             g.Board,
		Bag:               g.Bag,
		Players:           players,
		CurrentPlayer:     g.CurrentPlayer,
		ConsecutivePasses: g.ConsecutivePasses,
	}
}

// Restore rolls the game back to a snapshot
func (g *Game) Restore(snap GameSnapshot) {
	g.Board = snap.Board
	g.Bag = snap.Bag
	g.Players = make([]PlayerState, len(snap.Players))
	copy(g.Players, snap.Players)
	g.CurrentPlayer = snap.CurrentPlayer
	g.ConsecutivePasses = snap.ConsecutivePasses
	g.State = GameStateInProgress
}

// Standing is a player's position in the final or running scores
type Standing struct {
	PlayerID PlayerID `json:"player_id"`
	Score    int      `json:"score"`
	Rank     int      `json:"rank"`
}

// GameSummary is a lightweight record of a game's scores
type GameSummary struct {
	ID        GameID     `json:"id"`
	State     GameState  `json:"state"`
	Standings []Standing `json:"standings"`
	Winner    PlayerID   `json:"winner,omitempty"` // Empty if tie or unfinished
	Moves     int        `json:"moves"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Clone returns a copy that shares no mutable state with g
func (g *Game) Clone() *Game {
	cp := *g
	cp.Players = make([]PlayerState, len(g.Players))
	copy(cp.Players, g.Players)
	cp.History = make([]GameSnapshot, len(g.History))
	copy(cp.History, g.History)
	return &cp
}
