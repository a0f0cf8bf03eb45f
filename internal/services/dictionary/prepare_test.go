package dictionary

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PrepareSuite struct {
	suite.Suite
}

func TestPrepareSuite(t *testing.T) {
	suite.Run(t, new(PrepareSuite))
}

func (s *PrepareSuite) TestNoConstraintsKeepsEverything() {
	input := []string{"a", "list", "of", "words"}
	kept, removed := PrepareWordList(input, PrepareOptions{})
	s.ElementsMatch(input, kept)
	s.Empty(removed)
}

func (s *PrepareSuite) TestMinLength() {
	kept, removed := PrepareWordList([]string{"a", "list", "of", "words"}, PrepareOptions{MinLength: 2})
	s.ElementsMatch([]string{"list", "of", "words"}, kept)
	s.Equal([]RemovedWord{{Word: "a", Reason: ReasonTooShort}}, removed)
}

func (s *PrepareSuite) TestMaxLength() {
	kept, removed := PrepareWordList(
		[]string{"a", "list", "of", "longer", "words"},
		PrepareOptions{MinLength: 2, MaxLength: 5},
	)
	s.ElementsMatch([]string{"list", "of", "words"}, kept)
	s.Len(removed, 2)
	s.Contains(removed, RemovedWord{Word: "longer", Reason: ReasonTooLong})
}

func (s *PrepareSuite) TestJoinQuRemovesQWithoutU() {
	kept, removed := PrepareWordList([]string{"burqa", "qat", "queen"}, PrepareOptions{JoinQu: true})
	s.Equal([]string{"queen"}, kept)
	s.ElementsMatch([]RemovedWord{
		{Word: "burqa", Reason: ReasonQWithoutU},
		{Word: "qat", Reason: ReasonQWithoutU},
	}, removed)
}

func (s *PrepareSuite) TestJoinQuMeasuresLengthAsOneTile() {
	kept, removed := PrepareWordList([]string{"queen", "quiz"}, PrepareOptions{JoinQu: true, MaxLength: 4})
	s.ElementsMatch([]string{"queen", "quiz"}, kept)
	s.Empty(removed)
}

func (s *PrepareSuite) TestFoldQu() {
	kept, _ := PrepareWordList([]string{"queen", "quiz"}, PrepareOptions{JoinQu: true, FoldQu: true})
	s.ElementsMatch([]string{"qeen", "qiz"}, kept)
}

func (s *PrepareSuite) TestTileCounts() {
	counts := map[rune]int{'A': 5, 'E': 5, 'I': 5, 'P': 2, 'R': 3, 'Z': 1}
	kept, removed := PrepareWordList([]string{"zipper", "pizza"}, PrepareOptions{TileCounts: counts})
	s.Equal([]string{"zipper"}, kept)
	s.Equal([]RemovedWord{{Word: "pizza", Reason: ReasonTileCount}}, removed)
}

func (s *PrepareSuite) TestDefaultOptions() {
	opts := DefaultPrepareOptions()
	s.Equal(1, opts.TileCounts['Q'])
	s.Equal(8, opts.TileCounts['E'])

	kept, removed := PrepareWordList([]string{"Hello", "hello", "don't", "quizzes"}, opts)
	s.Equal([]string{"hello"}, kept)
	s.ElementsMatch([]RemovedWord{
		{Word: "hello", Reason: ReasonDuplicateWord},
		{Word: "don't", Reason: ReasonNotLetters},
		{Word: "quizzes", Reason: ReasonTileCount},
	}, removed)
}

func (s *PrepareSuite) TestLastFailingCheckNamesReason() {
	_, removed := PrepareWordList(
		[]string{"qatqatqat", "q", "zzz"},
		PrepareOptions{JoinQu: true, MinLength: 2, MaxLength: 5, TileCounts: map[rune]int{'Q': 1, 'A': 5, 'T': 5}},
	)
	s.Equal([]RemovedWord{
		{Word: "qatqatqat", Reason: ReasonTileCount},
		{Word: "q", Reason: ReasonTooShort},
		{Word: "zzz", Reason: ReasonTileCount},
	}, removed)
}

func (s *PrepareSuite) TestTooLongOutranksMissingU() {
	_, removed := PrepareWordList([]string{"qwertyuiop"}, PrepareOptions{JoinQu: true, MaxLength: 5})
	s.Equal([]RemovedWord{{Word: "qwertyuiop", Reason: ReasonTooLong}}, removed)
}
