package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrOutOfRange        = errors.New("coordinate is outside the board")
	ErrInvalidToken      = errors.New("invalid board cell token")
	ErrInvalidBoardShape = errors.New("board must be 10x10")

	// Play errors
	ErrEmptyPlay        = errors.New("play contains no tiles")
	ErrInvalidTile      = errors.New("play contains an invalid tile")
	ErrInvalidDirection = errors.New("invalid play direction")

	// History errors
	ErrHistoryOutOfRange = errors.New("history does not go back that far")
	ErrNothingToUndo     = errors.New("no move to undo")

	// Tile errors
	ErrBagEmpty      = errors.New("tile bag is empty")
	ErrTileNotInRack = errors.New("tile is not in rack")
	ErrTileNotInSet  = errors.New("tile is not in set")
	ErrInvalidLetter = errors.New("invalid letter")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrNotPlayerTurn       = errors.New("not this player's turn")
	ErrGameComplete        = errors.New("game is already complete")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrTooManyPlayers      = errors.New("too many players")
	ErrDuplicatePlayer     = errors.New("player listed more than once")
	ErrIllegalMove         = errors.New("illegal move")
	ErrBoardMismatch       = errors.New("stored board does not match its move log")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
