// Package storagetest holds the behaviour every storage backend must share.
// Backend test suites embed Suite and assign Storage in their SetupTest.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/storage"
	"github.com/mcoot/upwords-go/internal/testutil"
)

type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

// NewGame builds a two player game with HELLO on the board
func NewGame(id model.GameID, updated time.Time) *model.Game {
	play := model.NewPlay("HELLO", 4, 2, model.Horizontal)
	return &model.Game{
		ID:    id,
		State: model.GameStateInProgress,
		Players: []model.PlayerState{
			{ID: "alice", Rack: "ABCDEFG", Score: 10},
			{ID: "bob", Rack: "HIJKLMN"},
		},
		CurrentPlayer: 1,
		Board:         testutil.HelloWorldBoard(),
		Bag:           "QRSTUVWXYZ",
		History: []model.GameSnapshot{{
			Turn: model.Turn{
				Kind:     model.TurnPlay,
				PlayerID: "alice",
				Play:     &play,
				Points:   10,
				PlayedAt: updated,
			},
			Board:   model.EmptyBoard(),
			Bag:     "HELLOQRSTUVWXYZ",
			Players: []model.PlayerState{{ID: "alice", Rack: "ABHELLO"}, {ID: "bob", Rack: "HIJKLMN"}},
		}},
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

func (s *Suite) TestSaveAndGetGame() {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := NewGame("game-1", at)

	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, got.ID)
	s.Equal(game.Players, got.Players)
	s.Equal(game.Board, got.Board)
	s.Equal(game.Bag, got.Bag)
	s.Equal(1, got.CurrentPlayer)
	s.Require().Len(got.History, 1)
	s.Equal(game.History[0].Turn.Play, got.History[0].Turn.Play)
	s.True(game.UpdatedAt.Equal(got.UpdatedAt))
}

func (s *Suite) TestGetGameNotFound() {
	_, err := s.Storage.GetGame(s.Ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSaveGameOverwrites() {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game := NewGame("game-1", at)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	game.Players[0].Score = 99
	game.State = model.GameStateComplete
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(99, got.Players[0].Score)
	s.True(got.IsComplete())
}

func (s *Suite) TestReturnedGameIsIndependent() {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("game-1", at)))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	got.Players[0].Score = 500

	again, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(10, again.Players[0].Score)
}

func (s *Suite) TestDeleteGame() {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("game-1", at)))

	s.Require().NoError(s.Storage.DeleteGame(s.Ctx, "game-1"))

	_, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *Suite) TestDeleteMissingGame() {
	s.NoError(s.Storage.DeleteGame(s.Ctx, "missing"))
}

func (s *Suite) TestListGamesMostRecentFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("old", base)))
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("new", base.Add(time.Hour))))
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("mid", base.Add(time.Minute))))

	games, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal(model.GameID("new"), games[0].ID)
	s.Equal(model.GameID("mid"), games[1].ID)
	s.Equal(model.GameID("old"), games[2].ID)
}

func (s *Suite) TestListGamesEmpty() {
	games, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *Suite) TestSaveAndGetDictionaryWords() {
	words := []string{"hello", "world", "follow"}
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, words))

	got, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, got)
}

func (s *Suite) TestDictionaryNotLoaded() {
	_, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *Suite) TestSaveDictionaryWordsReplaces() {
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"old", "words"}))
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"new"}))

	got, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, got)
}
