package scoring

import (
	"github.com/mcoot/upwords-go/internal/model"
)

// Config holds the bonus rules
type Config struct {
	// FullRackBonus is added when a play uses RackSize tiles
	FullRackBonus int
	RackSize      int
	// QuBonus is added per all-height-1 word containing a Q tile
	QuBonus int
}

// DefaultConfig returns the standard scoring rules
func DefaultConfig() Config {
	return Config{
		FullRackBonus: 20,
		RackSize:      7,
	}
}

// WordScore is the points one formed word contributes
type WordScore struct {
	Word   string          `json:"word"`
	Cells  model.BoardWord `json:"cells"`
	Points int             `json:"points"`
}

// Breakdown itemises the score of a play
type Breakdown struct {
	Words []WordScore `json:"words"`
	Bonus int         `json:"bonus"`
	Total int         `json:"total"`
}

// Service scores plays
type Service struct {
	cfg Config
}

// New creates a new ScoringService
func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// ScorePlay returns the points a play earns on the given pre-play board.
// The play must already have been validated.
func (s *Service) ScorePlay(board model.Board, play model.Play) (int, error) {
	b, err := s.ScoreWords(board, play)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// ScoreWords scores each word a play forms. The main word always counts;
// cross words count once per placed tile that forms them.
func (s *Service) ScoreWords(board model.Board, play model.Play) (Breakdown, error) {
	after, err := board.PlaceTiles(play)
	if err != nil {
		return Breakdown{}, err
	}

	var b Breakdown
	for _, w := range model.WordsFromPlay(after, play) {
		ws := WordScore{
			Word:   w.String(),
			Cells:  w,
			Points: s.wordPoints(w),
		}
		b.Words = append(b.Words, ws)
		b.Total += ws.Points
	}

	if s.cfg.RackSize > 0 && play.LetterCount() == s.cfg.RackSize {
		b.Bonus = s.cfg.FullRackBonus
		b.Total += b.Bonus
	}
	return b, nil
}

// wordPoints sums heights, doubling a word laid entirely at height 1
func (s *Service) wordPoints(w model.BoardWord) int {
	points := 0
	for _, c := range w {
		points += c.Height
	}
	if w.AllHeightOne() {
		points *= 2
		if w.HasLetter('Q') {
			points += s.cfg.QuBonus
		}
	}
	return points
}

// Interface for dependency injection
type ServiceInterface interface {
	ScorePlay(board model.Board, play model.Play) (int, error)
	ScoreWords(board model.Board, play model.Play) (Breakdown, error)
}

var _ ServiceInterface = (*Service)(nil)
