package model

import (
	"fmt"
	"time"
)

// MoveError names the first rule a play broke
type MoveError int

const (
	NoError MoveError = iota
	OutOfBounds
	HeightLimitExceeded
	NotConnected
	HasGap
	SameTileStacked
	CoversExistingWord
	FirstPlayDoesNotCoverCenter
	InvalidWord
	OnlyPluralizesWord
)

var moveErrorNames = map[MoveError]string{
	NoError:                     "",
	OutOfBounds:                 "OutOfBounds",
	HeightLimitExceeded:         "HeightLimitExceeded",
	NotConnected:                "NotConnected",
	HasGap:                      "HasGap",
	SameTileStacked:             "SameTileStacked",
	CoversExistingWord:          "CoversExistingWord",
	FirstPlayDoesNotCoverCenter: "FirstPlayDoesNotCoverCenter",
	InvalidWord:                 "InvalidWord",
	OnlyPluralizesWord:          "OnlyPluralizesWord",
}

func (e MoveError) String() string {
	if name, ok := moveErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("MoveError(%d)", int(e))
}

// Description is a player-facing explanation of the error
func (e MoveError) Description() string {
	switch e {
	case OutOfBounds:
		return "play runs off the board"
	case HeightLimitExceeded:
		return "a stack would grow above the height limit"
	case NotConnected:
		return "play does not touch any existing tile"
	case HasGap:
		return "play leaves an empty square between its tiles"
	case SameTileStacked:
		return "a tile is stacked on the same letter"
	case CoversExistingWord:
		return "play completely covers an existing word"
	case FirstPlayDoesNotCoverCenter:
		return "first play must cover one of the four centre squares"
	case InvalidWord:
		return "play forms a word that is not in the dictionary"
	case OnlyPluralizesWord:
		return "play only adds an S to an existing word"
	default:
		return ""
	}
}

// ParseMoveError is the inverse of String
func ParseMoveError(s string) (MoveError, error) {
	for e, name := range moveErrorNames {
		if name == s {
			return e, nil
		}
	}
	return NoError, fmt.Errorf("unknown move error %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (e MoveError) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *MoveError) UnmarshalText(text []byte) error {
	parsed, err := ParseMoveError(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MoveResult is the outcome of validating, and if legal scoring, a play
type MoveResult struct {
	IsValid bool      `json:"is_valid"`
	Points  int       `json:"points,omitempty"`
	Error   MoveError `json:"error,omitempty"`
}

// Illegal builds a rejected result
func Illegal(e MoveError) MoveResult {
	return MoveResult{IsValid: false, Error: e}
}

// Legal builds an accepted result
func Legal(points int) MoveResult {
	return MoveResult{IsValid: true, Points: points}
}

// MoveRecord is one accepted play in a session's history
type MoveRecord struct {
	Play   Play       `json:"play"`
	Result MoveResult `json:"result"`
	// Before is the board as it was prior to the play
	Before Board `json:"-"`
}

// TurnKind distinguishes entries in a game's turn log
type TurnKind string

const (
	TurnPlay     TurnKind = "play"
	TurnPass     TurnKind = "pass"
	TurnExchange TurnKind = "exchange"
)

// Turn is one entry in a game's turn log, enough to undo it
type Turn struct {
	Kind     TurnKind  `json:"kind"`
	PlayerID PlayerID  `json:"player_id"`
	Play     *Play     `json:"play,omitempty"`
	Points   int       `json:"points"`
	Drawn    string    `json:"drawn,omitempty"`
	// Returned holds the tiles put back in the bag by an exchange
	Returned string    `json:"returned,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}
