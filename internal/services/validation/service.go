package validation

import (
	"github.com/mcoot/upwords-go/internal/model"
)

// Config selects the optional rules
type Config struct {
	// RejectPluralOnly enables the OnlyPluralizesWord rule
	RejectPluralOnly bool
}

// DefaultConfig returns the standard rule set
func DefaultConfig() Config {
	return Config{RejectPluralOnly: true}
}

// Service runs plays through the rule pipeline
type Service struct {
	dictionary Dictionary
	cfg        Config
	rules      []Rule
}

// New creates a validator. Rules run in a fixed order and the first
// illegal result wins.
func New(dictionary Dictionary, cfg Config) *Service {
	rules := []Rule{
		HeightLimitExceeded,
		NotConnected,
		HasGap,
		SameTileStacked,
		CoversExistingWord,
		FirstPlayDoesNotCoverCenter,
		InvalidWord,
	}
	if cfg.RejectPluralOnly {
		rules = append(rules, OnlyPluralizesWord)
	}
	return &Service{
		dictionary: dictionary,
		cfg:        cfg,
		rules:      rules,
	}
}

// Validate checks a structurally valid play against a board, treating an
// empty board as one with no accepted moves
func (s *Service) Validate(board model.Board, play model.Play) Result {
	return s.ValidateMove(board, play, board.IsEmpty())
}

// ValidateMove checks a play against a board. firstMove is true while no
// move has been accepted on the board, which is when the play must cover
// the centre.
func (s *Service) ValidateMove(board model.Board, play model.Play, firstMove bool) Result {
	ctx := &RuleContext{
		Before:     board,
		Play:       play,
		Opening:    board.IsEmpty(),
		FirstMove:  firstMove,
		Dictionary: s.dictionary,
	}

	// Placement is only defined once the play is on the grid
	if r := OutOfBounds(ctx); r.IsIllegal {
		return r
	}
	after, err := board.PlaceTiles(play)
	if err != nil {
		return check(true, model.OutOfBounds)
	}
	ctx.After = after

	for _, rule := range s.rules {
		if r := rule(ctx); r.IsIllegal {
			return r
		}
	}
	return Result{}
}

// Rules lists the errors this validator can report, in pipeline order
func (s *Service) Rules() []model.MoveError {
	errs := []model.MoveError{
		model.OutOfBounds,
		model.HeightLimitExceeded,
		model.NotConnected,
		model.HasGap,
		model.SameTileStacked,
		model.CoversExistingWord,
		model.FirstPlayDoesNotCoverCenter,
		model.InvalidWord,
	}
	if s.cfg.RejectPluralOnly {
		errs = append(errs, model.OnlyPluralizesWord)
	}
	return errs
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(board model.Board, play model.Play) Result
	ValidateMove(board model.Board, play model.Play, firstMove bool) Result
	Rules() []model.MoveError
}

var _ ServiceInterface = (*Service)(nil)
