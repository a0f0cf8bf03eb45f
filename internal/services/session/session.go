// Package session holds a single board with its move history. A Session is
// single-writer: callers sharing one across goroutines must serialise access.
package session

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/services/scoring"
	"github.com/mcoot/upwords-go/internal/services/validation"
	"github.com/mcoot/upwords-go/internal/ubf"
)

// Validator decides whether a play is legal
type Validator interface {
	ValidateMove(board model.Board, play model.Play, firstMove bool) validation.Result
}

// Scorer prices a legal play
type Scorer interface {
	ScorePlay(board model.Board, play model.Play) (int, error)
}

// Session is a board plus the stack of accepted moves
type Session struct {
	board   model.Board
	history []model.MoveRecord
	// prior counts moves accepted on the board before the session began
	prior int

	validator Validator
	scorer    Scorer
	logger    *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithBoard starts the session from an existing board
func WithBoard(b model.Board) Option {
	return func(s *Session) { s.board = b }
}

// WithPriorMoves records that the starting board already carries n
// accepted moves, lifting the centre rule when n > 0
func WithPriorMoves(n int) Option {
	return func(s *Session) { s.prior = max(0, n) }
}

// WithValidator replaces the default rule pipeline
func WithValidator(v Validator) Option {
	return func(s *Session) { s.validator = v }
}

// WithScorer replaces the default scorer
func WithScorer(sc Scorer) Option {
	return func(s *Session) { s.scorer = sc }
}

// WithLogger sets the session logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session on an empty board using the standard rules
func New(dict validation.Dictionary, opts ...Option) *Session {
	s := &Session{
		board:     model.EmptyBoard(),
		validator: validation.New(dict, validation.DefaultConfig()),
		scorer:    scoring.New(scoring.DefaultConfig()),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromUBF creates a session from a serialised board
func FromUBF(f ubf.Format, dict validation.Dictionary, opts ...Option) (*Session, error) {
	b, err := ubf.ToBoard(f)
	if err != nil {
		return nil, err
	}
	return New(dict, append([]Option{WithBoard(b)}, opts...)...), nil
}

// CheckPlay validates and scores a play without changing the session
func (s *Session) CheckPlay(play model.Play) (model.MoveResult, error) {
	play = play.Normalized()
	if err := play.Validate(); err != nil {
		return model.MoveResult{}, err
	}

	r := s.validator.ValidateMove(s.board, play, s.prior+len(s.history) == 0)
	if r.IsIllegal {
		return model.Illegal(r.Error), nil
	}

	points, err := s.scorer.ScorePlay(s.board, play)
	if err != nil {
		return model.MoveResult{}, err
	}
	return model.Legal(points), nil
}

// PlayTiles checks a play and commits it when legal
func (s *Session) PlayTiles(play model.Play) (model.MoveResult, error) {
	play = play.Normalized()
	result, err := s.CheckPlay(play)
	if err != nil {
		return model.MoveResult{}, err
	}
	if !result.IsValid {
		s.logger.Debug("move rejected",
			slog.String("play", play.String()),
			slog.String("reason", result.Error.String()),
		)
		return result, nil
	}

	after, err := s.board.PlaceTiles(play)
	if err != nil {
		return model.MoveResult{}, err
	}

	s.history = append(s.history, model.MoveRecord{
		Play:   play,
		Result: result,
		Before: s.board,
	})
	s.board = after

	s.logger.Info("move accepted",
		slog.String("play", play.String()),
		slog.Int("points", result.Points),
		slog.Int("move", len(s.history)),
	)
	return result, nil
}

// UBF returns the board in serialised form
func (s *Session) UBF() ubf.Format {
	return ubf.FromBoard(s.board)
}

// Board returns a copy of the current board
func (s *Session) Board() model.Board {
	return s.board
}

// PreviousMove returns the result of the move stepsBack from the latest;
// 1 is the most recent
func (s *Session) PreviousMove(stepsBack int) (model.MoveResult, error) {
	if stepsBack < 1 || stepsBack > len(s.history) {
		return model.MoveResult{}, fmt.Errorf("%w: can't go back %d moves", model.ErrHistoryOutOfRange, stepsBack)
	}
	return s.history[len(s.history)-stepsBack].Result, nil
}

// UndoMove removes the latest move and restores the board it replaced
func (s *Session) UndoMove() (model.MoveRecord, error) {
	if len(s.history) == 0 {
		return model.MoveRecord{}, model.ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board = last.Before

	s.logger.Info("move undone",
		slog.String("play", last.Play.String()),
		slog.Int("move", len(s.history)+1),
	)
	return last, nil
}

// History returns the accepted moves, oldest first
func (s *Session) History() []model.MoveRecord {
	out := make([]model.MoveRecord, len(s.history))
	copy(out, s.history)
	return out
}

// MoveCount returns the number of accepted moves
func (s *Session) MoveCount() int {
	return len(s.history)
}

// Restore replaces the board and history wholesale
func (s *Session) Restore(b model.Board, history []model.MoveRecord) {
	s.board = b
	s.history = make([]model.MoveRecord, len(history))
	copy(s.history, history)
}

// Replay plays each move in order, stopping at the first one that is
// not legal. Moves before the failure stay applied.
func (s *Session) Replay(plays []model.Play) error {
	for i, p := range plays {
		result, err := s.PlayTiles(p)
		if err != nil {
			return fmt.Errorf("replay move %d: %w", i+1, err)
		}
		if !result.IsValid {
			return fmt.Errorf("replay move %d %s: %w: %s", i+1, p, model.ErrIllegalMove, result.Error)
		}
	}
	return nil
}
