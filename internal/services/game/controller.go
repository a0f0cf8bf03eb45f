package game

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcoot/upwords-go/internal/dependencies/clock"
	"github.com/mcoot/upwords-go/internal/dependencies/random"
	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/services/scoring"
	"github.com/mcoot/upwords-go/internal/services/session"
	"github.com/mcoot/upwords-go/internal/services/tiles"
	"github.com/mcoot/upwords-go/internal/services/validation"
	"github.com/mcoot/upwords-go/internal/storage"
)

// Config holds table rules for a game
type Config struct {
	MinPlayers int
	MaxPlayers int
	RackSize   int
	// PassRounds ends the game once every player has passed this many
	// times in a row
	PassRounds int
}

// DefaultConfig returns the standard table rules
func DefaultConfig() Config {
	return Config{
		MinPlayers: 1,
		MaxPlayers: 4,
		RackSize:   tiles.RackSize,
		PassRounds: 2,
	}
}

// Controller manages turn flow, racks and the bag around a shared board
type Controller struct {
	storage    storage.Storage
	dictionary validation.Dictionary
	validator  *validation.Service
	scorer     *scoring.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
	cfg        Config

	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	dictionary validation.Dictionary,
	validator *validation.Service,
	scorer *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	return &Controller{
		storage:    storage,
		dictionary: dictionary,
		validator:  validator,
		scorer:     scorer,
		clock:      clock,
		random:     random,
		logger:     logger,
		cfg:        cfg,
		locks:      make(map[model.GameID]*sync.Mutex),
	}
}

// lock serialises access to one game and returns its unlock func
func (c *Controller) lock(id model.GameID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// CreateGame deals racks to the players and saves a fresh game
func (c *Controller) CreateGame(ctx context.Context, players []model.PlayerID) (*model.Game, error) {
	if len(players) < max(1, c.cfg.MinPlayers) {
		return nil, model.ErrInsufficientPlayers
	}
	if c.cfg.MaxPlayers > 0 && len(players) > c.cfg.MaxPlayers {
		return nil, fmt.Errorf("%w: %d > %d", model.ErrTooManyPlayers, len(players), c.cfg.MaxPlayers)
	}
	seen := make(map[model.PlayerID]bool, len(players))
	for _, id := range players {
		if id == "" || seen[id] {
			return nil, fmt.Errorf("%w: %q", model.ErrDuplicatePlayer, id)
		}
		seen[id] = true
	}

	bag := tiles.NewBag(c.random)
	seats := make([]model.PlayerState, 0, len(players))
	for _, id := range players {
		rack := tiles.NewRack().WithTarget(c.cfg.RackSize)
		if _, err := rack.Refill(bag); err != nil {
			return nil, err
		}
		seats = append(seats, model.PlayerState{ID: id, Rack: rack.String()})
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.UUID()),
		State:     model.GameStateInProgress,
		Players:   seats,
		Board:     model.EmptyBoard(),
		Bag:       bag.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(players)),
	)
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames summarises every stored game, most recent first
func (c *Controller) ListGames(ctx context.Context) ([]model.GameSummary, error) {
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, Summarize(g))
	}
	return summaries, nil
}

// DeleteGame removes a game from storage
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	defer c.lock(gameID)()

	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.locks, gameID)
	c.mu.Unlock()

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// loadTurn fetches a game and checks that it is playerID's turn
func (c *Controller) loadTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, *model.PlayerState, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if game.IsComplete() {
		return nil, nil, model.ErrGameComplete
	}
	seat, err := game.Player(playerID)
	if err != nil {
		return nil, nil, err
	}
	if game.CurrentPlayerID() != playerID {
		return nil, nil, model.ErrNotPlayerTurn
	}
	return game, seat, nil
}

// PlayMove plays tiles from the current player's rack. An illegal play
// comes back as an invalid MoveResult and leaves the game untouched.
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, play model.Play) (model.MoveResult, error) {
	defer c.lock(gameID)()

	game, seat, err := c.loadTurn(ctx, gameID, playerID)
	if err != nil {
		return model.MoveResult{}, err
	}

	play = play.Normalized()
	if err := play.Validate(); err != nil {
		return model.MoveResult{}, err
	}

	rack, err := tiles.RackFromString(seat.Rack)
	if err != nil {
		return model.MoveResult{}, err
	}
	rack.WithTarget(c.cfg.RackSize)
	if !rack.Has(play.Letters()) {
		return model.MoveResult{}, fmt.Errorf("%w: %s", model.ErrTileNotInRack, play.Letters())
	}

	sess := session.New(c.dictionary,
		session.WithBoard(game.Board),
		session.WithPriorMoves(len(game.Plays())),
		session.WithValidator(c.validator),
		session.WithScorer(c.scorer),
	)
	result, err := sess.PlayTiles(play)
	if err != nil {
		return model.MoveResult{}, err
	}
	if !result.IsValid {
		c.logger.Debug("move rejected",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(playerID)),
			slog.String("reason", result.Error.String()),
		)
		return result, nil
	}

	now := c.clock.Now()
	turn := model.Turn{
		Kind:     model.TurnPlay,
		PlayerID: playerID,
		Play:     &play,
		Points:   result.Points,
		PlayedAt: now,
	}
	snap := game.Snapshot(turn)

	bag, err := tiles.BagFromString(game.Bag, c.random)
	if err != nil {
		return model.MoveResult{}, err
	}
	if err := rack.Take(play.Letters()); err != nil {
		return model.MoveResult{}, err
	}
	drawn, err := rack.Refill(bag)
	if err != nil {
		return model.MoveResult{}, err
	}
	snap.Turn.Drawn = drawn

	seat.Rack = rack.String()
	seat.Score += result.Points
	game.Board = sess.Board()
	game.Bag = bag.String()
	game.ConsecutivePasses = 0
	game.History = append(game.History, snap)

	if rack.Count() == 0 && bag.IsEmpty() {
		c.complete(game, "rack emptied")
	} else {
		game.CurrentPlayer = (game.CurrentPlayer + 1) % len(game.Players)
	}
	game.UpdatedAt = now

	if err := c.save(ctx, game); err != nil {
		return model.MoveResult{}, err
	}

	c.logger.Info("move accepted",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.String("play", play.String()),
		slog.Int("points", result.Points),
	)
	return result, nil
}

// CheckMove validates and scores a play for the current player without
// changing the game
func (c *Controller) CheckMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, play model.Play) (model.MoveResult, error) {
	game, seat, err := c.loadTurn(ctx, gameID, playerID)
	if err != nil {
		return model.MoveResult{}, err
	}
	play = play.Normalized()
	if err := play.Validate(); err != nil {
		return model.MoveResult{}, err
	}
	rack, err := tiles.RackFromString(seat.Rack)
	if err != nil {
		return model.MoveResult{}, err
	}
	if !rack.Has(play.Letters()) {
		return model.MoveResult{}, fmt.Errorf("%w: %s", model.ErrTileNotInRack, play.Letters())
	}

	sess := session.New(c.dictionary,
		session.WithBoard(game.Board),
		session.WithPriorMoves(len(game.Plays())),
		session.WithValidator(c.validator),
		session.WithScorer(c.scorer),
	)
	return sess.CheckPlay(play)
}

// Pass ends the current player's turn without playing
func (c *Controller) Pass(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	defer c.lock(gameID)()

	game, _, err := c.loadTurn(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.History = append(game.History, game.Snapshot(model.Turn{
		Kind:     model.TurnPass,
		PlayerID: playerID,
		PlayedAt: now,
	}))
	game.ConsecutivePasses++

	if c.cfg.PassRounds > 0 && game.ConsecutivePasses >= c.cfg.PassRounds*len(game.Players) {
		c.complete(game, "everyone passed")
	} else {
		game.CurrentPlayer = (game.CurrentPlayer + 1) % len(game.Players)
	}
	game.UpdatedAt = now

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}
	c.logger.Info("turn passed",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
	)
	return game, nil
}

// Exchange swaps tiles from the current player's rack for fresh ones from
// the bag and ends the turn
func (c *Controller) Exchange(ctx context.Context, gameID model.GameID, playerID model.PlayerID, letters string) (*model.Game, error) {
	defer c.lock(gameID)()

	game, seat, err := c.loadTurn(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	letters = model.Play{Tiles: letters}.Normalized().Letters()
	if letters == "" {
		return nil, model.ErrEmptyPlay
	}

	bag, err := tiles.BagFromString(game.Bag, c.random)
	if err != nil {
		return nil, err
	}
	if bag.Remaining() < len(letters) {
		return nil, fmt.Errorf("%w: %d tiles left", model.ErrBagEmpty, bag.Remaining())
	}
	rack, err := tiles.RackFromString(seat.Rack)
	if err != nil {
		return nil, err
	}
	rack.WithTarget(c.cfg.RackSize)

	now := c.clock.Now()
	snap := game.Snapshot(model.Turn{
		Kind:     model.TurnExchange,
		PlayerID: playerID,
		Returned: letters,
		PlayedAt: now,
	})

	if err := rack.Take(letters); err != nil {
		return nil, err
	}
	// Draw before returning so the same tiles cannot come straight back
	drawn, err := bag.Draw(len(letters))
	if err != nil {
		return nil, err
	}
	if err := rack.Put(drawn); err != nil {
		return nil, err
	}
	if err := bag.Return(letters); err != nil {
		return nil, err
	}
	snap.Turn.Drawn = drawn

	seat.Rack = rack.String()
	game.Bag = bag.String()
	game.History = append(game.History, snap)
	game.ConsecutivePasses = 0
	game.CurrentPlayer = (game.CurrentPlayer + 1) % len(game.Players)
	game.UpdatedAt = now

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}
	c.logger.Info("tiles exchanged",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("count", len(letters)),
	)
	return game, nil
}

// UndoLastMove rolls back the most recent turn of any kind, including one
// that ended the game
func (c *Controller) UndoLastMove(ctx context.Context, gameID model.GameID) (*model.Turn, error) {
	defer c.lock(gameID)()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(game.History) == 0 {
		return nil, model.ErrNothingToUndo
	}

	last := game.History[len(game.History)-1]
	game.History = game.History[:len(game.History)-1]
	game.Restore(last)
	game.UpdatedAt = c.clock.Now()

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move undone",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(last.Turn.PlayerID)),
		slog.String("kind", string(last.Turn.Kind)),
	)
	return &last.Turn, nil
}

// Verify replays the game's plays on an empty board and checks that the
// result matches the stored board
func (c *Controller) Verify(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	sess := session.New(c.dictionary,
		session.WithValidator(c.validator),
		session.WithScorer(c.scorer),
	)
	if err := sess.Replay(game.Plays()); err != nil {
		return err
	}
	if sess.Board() != game.Board {
		return fmt.Errorf("%w: game %s", model.ErrBoardMismatch, gameID)
	}
	return nil
}

// Standings ranks the players of a game by score
func (c *Controller) Standings(ctx context.Context, gameID model.GameID) ([]model.Standing, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return Rank(game.Players), nil
}

// Summary returns a lightweight record of the game's scores
func (c *Controller) Summary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(game)
	return &summary, nil
}

func (c *Controller) complete(game *model.Game, reason string) {
	game.State = model.GameStateComplete
	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", reason),
		slog.Int("moves", len(game.Plays())),
	)
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Rank orders players by score, highest first. Tied players share a rank
// and the next rank skips accordingly.
func Rank(players []model.PlayerState) []model.Standing {
	standings := make([]model.Standing, 0, len(players))
	for _, p := range players {
		standings = append(standings, model.Standing{PlayerID: p.ID, Score: p.Score})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	for i := range standings {
		if i > 0 && standings[i].Score == standings[i-1].Score {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

// Summarize builds a GameSummary. The winner is set only for a finished
// game with a single top score.
func Summarize(game *model.Game) model.GameSummary {
	standings := Rank(game.Players)
	summary := model.GameSummary{
		ID:        game.ID,
		State:     game.State,
		Standings: standings,
		Moves:     len(game.Plays()),
		UpdatedAt: game.UpdatedAt,
	}
	if game.IsComplete() && len(standings) > 0 {
		if len(standings) == 1 || standings[1].Rank != 1 {
			summary.Winner = standings[0].PlayerID
		}
	}
	return summary
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, players []model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.GameSummary, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	PlayMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, play model.Play) (model.MoveResult, error)
	CheckMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, play model.Play) (model.MoveResult, error)
	Pass(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	Exchange(ctx context.Context, gameID model.GameID, playerID model.PlayerID, letters string) (*model.Game, error)
	UndoLastMove(ctx context.Context, gameID model.GameID) (*model.Turn, error)
	Verify(ctx context.Context, gameID model.GameID) error
	Standings(ctx context.Context, gameID model.GameID) ([]model.Standing, error)
	Summary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
