package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/upwords-go/internal/model"
)

type PlaySuite struct {
	suite.Suite
}

func TestPlaySuite(t *testing.T) {
	suite.Run(t, new(PlaySuite))
}

func (s *PlaySuite) TestLengths() {
	play := model.NewPlay("BE  O D  ", 5, 2, model.Horizontal)
	s.Equal(9, play.Length())
	s.Equal(7, play.TrimmedLength())
	s.Equal(4, play.LetterCount())
	s.Equal("BEOD", play.Letters())
}

func (s *PlaySuite) TestPlacedTilesSkipBlanks() {
	play := model.NewPlay("F LLOW", 3, 7, model.Vertical)
	placed := play.PlacedTiles()
	s.Require().Len(placed, 5)
	s.Equal(model.PlacedTile{Letter: 'F', Coord: model.Coord{Row: 3, Col: 7}}, placed[0])
	s.Equal(model.PlacedTile{Letter: 'L', Coord: model.Coord{Row: 5, Col: 7}}, placed[1])
}

func (s *PlaySuite) TestBeforeAndEnd() {
	play := model.NewPlay("HELLO", 4, 3, model.Horizontal)
	s.Equal(model.Coord{Row: 4, Col: 2}, play.Before())
	s.Equal(model.Coord{Row: 4, Col: 8}, play.End())
	s.Len(play.Coords(), 5)
}

func (s *PlaySuite) TestValidate() {
	s.NoError(model.NewPlay("HELLO", 4, 3, model.Horizontal).Validate())
	s.NoError(model.NewPlay("F LLOW", 3, 7, model.Vertical).Validate())

	s.ErrorIs(model.NewPlay("", 4, 3, model.Horizontal).Validate(), model.ErrEmptyPlay)
	s.ErrorIs(model.NewPlay("   ", 4, 3, model.Horizontal).Validate(), model.ErrEmptyPlay)
	s.ErrorIs(model.NewPlay("he1lo", 4, 3, model.Horizontal).Validate(), model.ErrInvalidTile)
	s.ErrorIs(model.NewPlay("HI", 4, 3, model.Direction(7)).Validate(), model.ErrInvalidDirection)
}

func (s *PlaySuite) TestNormalized() {
	play := model.NewPlay("hello", 4, 3, model.Horizontal).Normalized()
	s.Equal("HELLO", play.Tiles)
	s.NoError(play.Validate())
}

func (s *PlaySuite) TestJSON() {
	var play model.Play
	err := json.Unmarshal([]byte(`{"tiles":"M S","start":{"row":6,"col":0},"direction":"horizontal"}`), &play)
	s.Require().NoError(err)
	s.Equal(model.NewPlay("M S", 6, 0, model.Horizontal), play)
}

func (s *PlaySuite) TestMoveErrorText() {
	data, err := json.Marshal(model.Illegal(model.CoversExistingWord))
	s.Require().NoError(err)
	s.JSONEq(`{"is_valid":false,"error":"CoversExistingWord"}`, string(data))

	parsed, err := model.ParseMoveError("OnlyPluralizesWord")
	s.Require().NoError(err)
	s.Equal(model.OnlyPluralizesWord, parsed)
}
