package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/upwords-go/internal/dependencies/mocks"
	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/services/dictionary"
	"github.com/mcoot/upwords-go/internal/services/scoring"
	"github.com/mcoot/upwords-go/internal/services/validation"
	"github.com/mcoot/upwords-go/internal/storage/memory"
	"github.com/mcoot/upwords-go/internal/testutil"
)

const (
	alice model.PlayerID = "alice"
	bob   model.PlayerID = "bob"
)

var hello = model.NewPlay("HELLO", 4, 2, model.Horizontal)

type ControllerSuite struct {
	suite.Suite
	storage     *memory.Storage
	dictService *dictionary.Service
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	controller  *Controller
	ctx         context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.dictService = dictionary.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(
		s.storage,
		s.dictService,
		validation.New(s.dictService, validation.DefaultConfig()),
		scoring.New(scoring.DefaultConfig()),
		s.clock,
		s.random,
		testutil.NopLogger(),
		DefaultConfig(),
	)
	s.ctx = context.Background()

	s.Require().NoError(s.dictService.LoadWords(testutil.Words()))
}

// newGame creates a two player game and overrides the dealt tiles
func (s *ControllerSuite) newGame(bag string, racks ...string) model.GameID {
	s.random.QueueUUID("game-1")
	game, err := s.controller.CreateGame(s.ctx, []model.PlayerID{alice, bob})
	s.Require().NoError(err)

	for i, rack := range racks {
		game.Players[i].Rack = rack
	}
	game.Bag = bag
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game.ID
}

func (s *ControllerSuite) game(id model.GameID) *model.Game {
	game, err := s.storage.GetGame(s.ctx, id)
	s.Require().NoError(err)
	return game
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameDealsRacks() {
	s.random.QueueUUID("game-1")

	game, err := s.controller.CreateGame(s.ctx, []model.PlayerID{alice, bob})
	s.Require().NoError(err)

	s.Equal(model.GameID("game-1"), game.ID)
	s.Equal(model.GameStateInProgress, game.State)
	s.Equal(alice, game.CurrentPlayerID())
	s.True(game.Board.IsEmpty())
	// Intn always returns 0 so tiles come out alphabetically
	s.Equal("AAAAAAA", game.Players[0].Rack)
	s.Equal("BBBCCCC", game.Players[1].Rack)
	s.Len([]rune(game.Bag), 86)

	stored := s.game("game-1")
	s.Equal(game.Players, stored.Players)
}

func (s *ControllerSuite) TestCreateGameRejectsNoPlayers() {
	_, err := s.controller.CreateGame(s.ctx, nil)
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestCreateGameRejectsTooManyPlayers() {
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{"a", "b", "c", "d", "e"})
	s.ErrorIs(err, model.ErrTooManyPlayers)
}

func (s *ControllerSuite) TestCreateGameRejectsDuplicatePlayers() {
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{alice, alice})
	s.ErrorIs(err, model.ErrDuplicatePlayer)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestDeleteGame() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")

	s.Require().NoError(s.controller.DeleteGame(s.ctx, id))
	_, err := s.controller.GetGame(s.ctx, id)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// PlayMove tests

func (s *ControllerSuite) TestPlayMoveScoresAndRefills() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")
	s.clock.Advance(time.Minute)

	result, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)
	s.Equal(model.Legal(10), result)

	game := s.game(id)
	s.Equal(10, game.Players[0].Score)
	s.Equal("ABCXY", game.Players[0].Rack)
	s.Equal("", game.Bag)
	s.Equal(bob, game.CurrentPlayerID())
	s.Equal(model.GameStateInProgress, game.State)
	s.Equal(s.clock.CurrentTime, game.UpdatedAt)

	s.Require().Len(game.History, 1)
	turn := game.History[0].Turn
	s.Equal(model.TurnPlay, turn.Kind)
	s.Equal(alice, turn.PlayerID)
	s.Equal(10, turn.Points)
	s.Equal("ABC", turn.Drawn)
}

func (s *ControllerSuite) TestPlayMoveNormalizesTiles() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")

	result, err := s.controller.PlayMove(s.ctx, id, alice, model.NewPlay("hello", 4, 2, model.Horizontal))
	s.Require().NoError(err)
	s.True(result.IsValid)
}

func (s *ControllerSuite) TestIllegalPlayLeavesGameUnchanged() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")
	before := s.game(id)

	result, err := s.controller.PlayMove(s.ctx, id, alice, model.NewPlay("HELLO", 0, 0, model.Horizontal))
	s.Require().NoError(err)
	s.Equal(model.Illegal(model.FirstPlayDoesNotCoverCenter), result)

	s.Equal(before, s.game(id))
}

func (s *ControllerSuite) TestPlayMoveRequiresTilesInRack() {
	id := s.newGame("ABC", "ABCDEFG", "SAAAAAA")

	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.ErrorIs(err, model.ErrTileNotInRack)
}

func (s *ControllerSuite) TestPlayMoveOutOfTurn() {
	id := s.newGame("ABC", "HELLOXY", "HELLOXY")

	_, err := s.controller.PlayMove(s.ctx, id, bob, hello)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestPlayMoveUnknownPlayer() {
	id := s.newGame("ABC", "HELLOXY", "HELLOXY")

	_, err := s.controller.PlayMove(s.ctx, id, "carol", hello)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestPlayMoveStructuralError() {
	id := s.newGame("ABC", "HELLOXY", "HELLOXY")

	_, err := s.controller.PlayMove(s.ctx, id, alice, model.NewPlay("   ", 4, 2, model.Horizontal))
	s.ErrorIs(err, model.ErrEmptyPlay)
}

func (s *ControllerSuite) TestEmptyingRackWithEmptyBagEndsGame() {
	id := s.newGame("", "HELLO", "SAAAAAA")

	result, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)
	s.True(result.IsValid)

	game := s.game(id)
	s.Equal(model.GameStateComplete, game.State)

	summary, err := s.controller.Summary(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(alice, summary.Winner)
	s.Equal(1, summary.Moves)

	_, err = s.controller.PlayMove(s.ctx, id, alice, hello)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ControllerSuite) TestStackedPlayOnSecondTurn() {
	id := s.newGame("", "HELLOXY", "SAAAAAA")

	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)

	result, err := s.controller.PlayMove(s.ctx, id, bob, model.NewPlay("    S", 4, 2, model.Horizontal))
	s.Require().NoError(err)
	s.Equal(model.Legal(6), result)

	game := s.game(id)
	s.Equal(6, game.Players[1].Score)
	s.Equal("AAAAAA", game.Players[1].Rack)
	s.Equal(alice, game.CurrentPlayerID())
}

// CheckMove tests

func (s *ControllerSuite) TestCheckMoveDoesNotChangeGame() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")
	before := s.game(id)

	result, err := s.controller.CheckMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)
	s.Equal(model.Legal(10), result)
	s.Equal(before, s.game(id))
}

// Pass tests

func (s *ControllerSuite) TestPassAdvancesTurn() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")

	game, err := s.controller.Pass(s.ctx, id, alice)
	s.Require().NoError(err)
	s.Equal(bob, game.CurrentPlayerID())
	s.Equal(1, game.ConsecutivePasses)
	s.Equal(model.TurnPass, game.History[0].Turn.Kind)
}

func (s *ControllerSuite) TestPassRoundsEndGame() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")

	for i := range 3 {
		player := []model.PlayerID{alice, bob}[i%2]
		game, err := s.controller.Pass(s.ctx, id, player)
		s.Require().NoError(err)
		s.Equal(model.GameStateInProgress, game.State)
	}

	game, err := s.controller.Pass(s.ctx, id, bob)
	s.Require().NoError(err)
	s.Equal(model.GameStateComplete, game.State)

	summary, err := s.controller.Summary(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(summary.Winner, "a tie has no winner")
	s.Equal(1, summary.Standings[0].Rank)
	s.Equal(1, summary.Standings[1].Rank)
}

func (s *ControllerSuite) TestPlayResetsPassCount() {
	id := s.newGame("ABC", "HELLOXY", "HELLOXY")

	_, err := s.controller.Pass(s.ctx, id, alice)
	s.Require().NoError(err)
	_, err = s.controller.PlayMove(s.ctx, id, bob, hello)
	s.Require().NoError(err)

	s.Equal(0, s.game(id).ConsecutivePasses)
}

// Exchange tests

func (s *ControllerSuite) TestExchange() {
	id := s.newGame("DEF", "AAAAAAA", "BBBBBBB")

	game, err := s.controller.Exchange(s.ctx, id, alice, "aa")
	s.Require().NoError(err)

	s.Equal("AAAAADE", game.Players[0].Rack)
	s.Equal("AAF", game.Bag)
	s.Equal(bob, game.CurrentPlayerID())

	turn := game.History[0].Turn
	s.Equal(model.TurnExchange, turn.Kind)
	s.Equal("AA", turn.Returned)
	s.Equal("DE", turn.Drawn)
}

func (s *ControllerSuite) TestExchangeNeedsEnoughTilesInBag() {
	id := s.newGame("D", "AAAAAAA", "BBBBBBB")

	_, err := s.controller.Exchange(s.ctx, id, alice, "AA")
	s.ErrorIs(err, model.ErrBagEmpty)
}

func (s *ControllerSuite) TestExchangeRequiresTilesInRack() {
	id := s.newGame("DEF", "AAAAAAA", "BBBBBBB")

	_, err := s.controller.Exchange(s.ctx, id, alice, "Z")
	s.ErrorIs(err, model.ErrTileNotInRack)
	s.Equal("DEF", s.game(id).Bag)
}

// UndoLastMove tests

func (s *ControllerSuite) TestUndoRestoresState() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")
	before := s.game(id)

	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)

	turn, err := s.controller.UndoLastMove(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.TurnPlay, turn.Kind)
	s.Equal(alice, turn.PlayerID)

	after := s.game(id)
	s.Equal(before.Board, after.Board)
	s.Equal(before.Players, after.Players)
	s.Equal(before.Bag, after.Bag)
	s.Equal(alice, after.CurrentPlayerID())
	s.Empty(after.History)
}

func (s *ControllerSuite) TestUndoReopensCompletedGame() {
	id := s.newGame("", "HELLO", "SAAAAAA")

	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)
	s.True(s.game(id).IsComplete())

	_, err = s.controller.UndoLastMove(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.GameStateInProgress, s.game(id).State)
}

func (s *ControllerSuite) TestUndoWithNoHistory() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")

	_, err := s.controller.UndoLastMove(s.ctx, id)
	s.ErrorIs(err, model.ErrNothingToUndo)
}

// Verify tests

func (s *ControllerSuite) TestVerifyReplaysPlays() {
	id := s.newGame("", "HELLOXY", "SAAAAAA")

	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)
	_, err = s.controller.Pass(s.ctx, id, bob)
	s.Require().NoError(err)

	s.NoError(s.controller.Verify(s.ctx, id))
}

func (s *ControllerSuite) TestVerifyDetectsTamperedBoard() {
	id := s.newGame("", "HELLOXY", "SAAAAAA")

	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)

	game := s.game(id)
	game.Board[9][9] = model.Cell{Letter: 'Z', Height: 1}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.ErrorIs(s.controller.Verify(s.ctx, id), model.ErrBoardMismatch)
}

// Listing and standings tests

func (s *ControllerSuite) TestListGamesMostRecentFirst() {
	s.random.QueueUUID("older", "newer")
	_, err := s.controller.CreateGame(s.ctx, []model.PlayerID{alice})
	s.Require().NoError(err)
	s.clock.Advance(time.Hour)
	_, err = s.controller.CreateGame(s.ctx, []model.PlayerID{bob})
	s.Require().NoError(err)

	summaries, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.GameID("newer"), summaries[0].ID)
	s.Equal(model.GameID("older"), summaries[1].ID)
}

func (s *ControllerSuite) TestRankSharesTies() {
	standings := Rank([]model.PlayerState{
		{ID: "a", Score: 10},
		{ID: "b", Score: 30},
		{ID: "c", Score: 30},
		{ID: "d", Score: 5},
	})

	s.Equal([]model.Standing{
		{PlayerID: "b", Score: 30, Rank: 1},
		{PlayerID: "c", Score: 30, Rank: 1},
		{PlayerID: "a", Score: 10, Rank: 3},
		{PlayerID: "d", Score: 5, Rank: 4},
	}, standings)
}

func (s *ControllerSuite) TestSummaryOfUnfinishedGameHasNoWinner() {
	id := s.newGame("ABC", "HELLOXY", "SAAAAAA")
	_, err := s.controller.PlayMove(s.ctx, id, alice, hello)
	s.Require().NoError(err)

	summary, err := s.controller.Summary(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(summary.Winner)
	s.Equal(alice, summary.Standings[0].PlayerID)
}

// Centre rule on stored boards

func (s *ControllerSuite) rowOneGame(withHistory bool) model.GameID {
	id := s.newGame("", "SABCDEF", "GHIJKLM")
	game := s.game(id)
	opening := model.NewPlay("HELLO", 1, 3, model.Horizontal)
	board, err := model.EmptyBoard().PlaceTiles(opening)
	s.Require().NoError(err)
	game.Board = board
	if withHistory {
		game.History = []model.GameSnapshot{{
			Turn:  model.Turn{Kind: model.TurnPlay, PlayerID: bob, Play: &opening, Points: 10},
			Board: model.EmptyBoard(),
		}}
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return id
}

func (s *ControllerSuite) TestStoredPlaysLiftCenterRule() {
	id := s.rowOneGame(true)

	result, err := s.controller.PlayMove(s.ctx, id, alice, model.NewPlay("S", 1, 7, model.Horizontal))
	s.Require().NoError(err)
	s.Equal(model.MoveResult{IsValid: true, Points: 6}, result)
}

func (s *ControllerSuite) TestCenterRuleWithoutStoredPlays() {
	id := s.rowOneGame(false)

	result, err := s.controller.PlayMove(s.ctx, id, alice, model.NewPlay("S", 1, 7, model.Horizontal))
	s.Require().NoError(err)
	s.Equal(model.Illegal(model.FirstPlayDoesNotCoverCenter), result)
}
