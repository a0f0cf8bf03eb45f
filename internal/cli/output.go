package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/services/dictionary"
	"github.com/mcoot/upwords-go/internal/services/scoring"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoardView(v)
	case PlayView:
		o.printPlayView(v)
	case GameView:
		o.printGameView(v)
	case []model.GameSummary:
		o.printSummaries(v)
	case TurnView:
		o.printTurnView(v)
	case PrepareReport:
		o.printPrepareReport(v)
	case []WordCheck:
		o.printWordChecks(v)
	case RulesView:
		o.printRules(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardView is a board read from or written to a UBF file
type BoardView struct {
	Path  string      `json:"path,omitempty"`
	Board model.Board `json:"board"`
	Tiles int         `json:"tiles"`
}

// PlayView is the outcome of checking or making a play
type PlayView struct {
	Play      model.Play         `json:"play"`
	Result    model.MoveResult   `json:"result"`
	Breakdown *scoring.Breakdown `json:"breakdown,omitempty"`
	// Board is the board after an accepted play, nil for a check
	Board *model.Board `json:"board,omitempty"`
}

// GameView is a game as seen by one player
type GameView struct {
	Game      *model.Game      `json:"game"`
	Standings []model.Standing `json:"standings"`
	// Viewer is the player whose rack is shown
	Viewer model.PlayerID `json:"viewer,omitempty"`
}

// TurnView describes a turn that was just taken or undone
type TurnView struct {
	Action string     `json:"action"`
	Turn   model.Turn `json:"turn"`
}

// PrepareReport summarises a word list curation run
type PrepareReport struct {
	Input   string                   `json:"input"`
	Output  string                   `json:"output,omitempty"`
	Kept    int                      `json:"kept"`
	Removed []dictionary.RemovedWord `json:"removed"`
}

// WordCheck is one dictionary lookup
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// RuleView names a validation rule in check order
type RuleView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RulesView lists the active rules and scoring bonuses
type RulesView struct {
	Rules         []RuleView `json:"rules"`
	RackSize      int        `json:"rack_size"`
	FullRackBonus int        `json:"full_rack_bonus"`
	QuBonus       int        `json:"qu_bonus"`
}

func (o *Output) printBoardView(v BoardView) {
	if v.Path != "" {
		fmt.Fprintf(o.w, "Board: %s (%d tiles)\n", v.Path, v.Tiles)
	}
	fmt.Fprintln(o.w, RenderBoard(v.Board))
}

func (o *Output) printPlayView(v PlayView) {
	if !v.Result.IsValid {
		fmt.Fprintf(o.w, "Illegal: %s (%s)\n", v.Result.Error, v.Result.Error.Description())
		return
	}
	fmt.Fprintf(o.w, "Legal: %d points\n", v.Result.Points)
	if v.Breakdown != nil {
		for _, w := range v.Breakdown.Words {
			fmt.Fprintf(o.w, "  - %s (%d pts)\n", w.Word, w.Points)
		}
		if v.Breakdown.Bonus > 0 {
			fmt.Fprintf(o.w, "  + full rack bonus (%d pts)\n", v.Breakdown.Bonus)
		}
	}
	if v.Board != nil {
		fmt.Fprintln(o.w, RenderBoard(*v.Board))
	}
}

func (o *Output) printGameView(v GameView) {
	g := v.Game
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	if !g.IsComplete() {
		fmt.Fprintf(o.w, "Turn: %s\n", g.CurrentPlayerID())
	}
	fmt.Fprintf(o.w, "Bag: %d tiles\n", len(g.Bag))
	fmt.Fprintln(o.w, RenderBoard(g.Board))

	fmt.Fprintln(o.w, "Scores:")
	for _, s := range v.Standings {
		fmt.Fprintf(o.w, "  %d. %s: %d points\n", s.Rank, s.PlayerID, s.Score)
	}

	if v.Viewer != "" {
		if seat, err := g.Player(v.Viewer); err == nil {
			fmt.Fprintf(o.w, "Rack (%s): %s\n", v.Viewer, RenderRack(seat.Rack))
		}
	}
}

func (o *Output) printSummaries(games []model.GameSummary) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, g := range games {
		scores := make([]string, 0, len(g.Standings))
		for _, s := range g.Standings {
			scores = append(scores, fmt.Sprintf("%s %d", s.PlayerID, s.Score))
		}
		line := fmt.Sprintf("%s  %-11s  %2d moves  %s", g.ID, g.State, g.Moves, strings.Join(scores, ", "))
		if g.Winner != "" {
			line += fmt.Sprintf("  winner: %s", g.Winner)
		}
		fmt.Fprintln(o.w, line)
	}
}

func (o *Output) printTurnView(v TurnView) {
	t := v.Turn
	switch t.Kind {
	case model.TurnPlay:
		fmt.Fprintf(o.w, "%s: %s played %s for %d points\n", v.Action, t.PlayerID, t.Play, t.Points)
	case model.TurnExchange:
		fmt.Fprintf(o.w, "%s: %s exchanged %s\n", v.Action, t.PlayerID, t.Returned)
	default:
		fmt.Fprintf(o.w, "%s: %s passed\n", v.Action, t.PlayerID)
	}
}

func (o *Output) printPrepareReport(r PrepareReport) {
	fmt.Fprintf(o.w, "Kept %d words, removed %d\n", r.Kept, len(r.Removed))
	byReason := make(map[string]int)
	var reasons []string
	for _, w := range r.Removed {
		if byReason[w.Reason] == 0 {
			reasons = append(reasons, w.Reason)
		}
		byReason[w.Reason]++
	}
	for _, reason := range reasons {
		fmt.Fprintf(o.w, "  %s: %d\n", reason, byReason[reason])
	}
	if r.Output != "" {
		fmt.Fprintf(o.w, "Written to %s\n", r.Output)
	}
}

func (o *Output) printWordChecks(checks []WordCheck) {
	for _, c := range checks {
		verdict := "not a word"
		if c.Valid {
			verdict = "ok"
		}
		fmt.Fprintf(o.w, "%s: %s\n", c.Word, verdict)
	}
}

func (o *Output) printRules(v RulesView) {
	fmt.Fprintln(o.w, "Rules, checked in order:")
	for i, r := range v.Rules {
		fmt.Fprintf(o.w, "  %d. %s: %s\n", i+1, r.Name, r.Description)
	}
	fmt.Fprintf(o.w, "Full rack bonus: %d points for using %d tiles\n", v.FullRackBonus, v.RackSize)
	if v.QuBonus > 0 {
		fmt.Fprintf(o.w, "Qu bonus: %d points\n", v.QuBonus)
	}
}
