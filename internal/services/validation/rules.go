package validation

import (
	"github.com/mcoot/upwords-go/internal/model"
)

// Dictionary answers word membership for the InvalidWord rule
type Dictionary interface {
	IsValidWord(word string) bool
}

// RuleContext is everything a rule may look at. After is only set once
// the play is known to be on the board.
type RuleContext struct {
	Before model.Board
	After  model.Board
	Play   model.Play
	// Opening is set when Before is empty and the play need not connect
	Opening bool
	// FirstMove is set while no move has been accepted on the board
	FirstMove  bool
	Dictionary Dictionary
}

// Result is the outcome of one rule
type Result struct {
	IsIllegal bool
	Error     model.MoveError
}

// Rule checks a single game rule
type Rule func(ctx *RuleContext) Result

func check(illegal bool, e model.MoveError) Result {
	return Result{IsIllegal: illegal, Error: e}
}

// centerCoords are the cells the opening play must cover
var centerCoords = []model.Coord{{Row: 4, Col: 4}, {Row: 4, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 5}}

// OutOfBounds rejects a negative start or a last letter beyond the grid.
// Trailing blanks do not count towards the span.
func OutOfBounds(ctx *RuleContext) Result {
	p := ctx.Play
	if p.Start.Row < 0 || p.Start.Col < 0 {
		return check(true, model.OutOfBounds)
	}
	last := p.CoordAt(p.TrimmedLength() - 1)
	return check(last.Row > model.BoardSize-1 || last.Col > model.BoardSize-1, model.OutOfBounds)
}

// HeightLimitExceeded rejects any stack taller than MaxHeight after placement
func HeightLimitExceeded(ctx *RuleContext) Result {
	return check(ctx.After.MaxStackHeight() > model.MaxHeight, model.HeightLimitExceeded)
}

// NotConnected requires the play to touch an existing tile: the cell before
// the start, the cell after the end, a played cell itself or a played cell's
// orthogonal neighbours. The opening play is exempt.
func NotConnected(ctx *RuleContext) Result {
	if ctx.Opening {
		return check(false, model.NotConnected)
	}
	p := ctx.Play
	cross := p.Direction.Orthogonal()

	touching := []model.Coord{p.Before(), p.End()}
	for _, c := range p.Coords() {
		touching = append(touching, c, c.Offset(cross, -1), c.Offset(cross, 1))
	}

	for _, c := range touching {
		if ctx.Before.Occupied(c) {
			return check(false, model.NotConnected)
		}
	}
	return check(true, model.NotConnected)
}

// HasGap rejects a play that leaves any spanned cell empty
func HasGap(ctx *RuleContext) Result {
	for _, c := range ctx.Play.Coords() {
		if c.InBounds() && !ctx.After.Occupied(c) {
			return check(true, model.HasGap)
		}
	}
	return check(false, model.HasGap)
}

// SameTileStacked rejects placing a letter on top of the same letter
func SameTileStacked(ctx *RuleContext) Result {
	for _, t := range ctx.Play.PlacedTiles() {
		if !ctx.Before.Occupied(t.Coord) {
			continue
		}
		if letter, _ := ctx.Before.LetterAt(t.Coord); letter == t.Letter {
			return check(true, model.SameTileStacked)
		}
	}
	return check(false, model.SameTileStacked)
}

// CoversExistingWord rejects a play that writes over every cell of an
// existing word along its line. Each run of two or more occupied cells is
// an interval; the play's written positions mask the line, and the play is
// illegal when some interval is left with no unmasked cell.
func CoversExistingWord(ctx *RuleContext) Result {
	p := ctx.Play
	line, err := ctx.Before.LineOfPlay(p.Start, p.Direction)
	if err != nil {
		return check(false, model.CoversExistingWord)
	}

	var written [model.BoardSize]bool
	for _, t := range p.PlacedTiles() {
		if i := t.Coord.Index(p.Direction); i >= 0 && i < model.BoardSize {
			written[i] = true
		}
	}

	for start := 0; start < len(line); {
		if line[start].IsEmpty() {
			start++
			continue
		}
		end := start
		for end < len(line) && !line[end].IsEmpty() {
			end++
		}
		if end-start >= 2 && allMasked(written[start:end]) {
			return check(true, model.CoversExistingWord)
		}
		start = end
	}
	return check(false, model.CoversExistingWord)
}

func allMasked(mask []bool) bool {
	for _, m := range mask {
		if !m {
			return false
		}
	}
	return true
}

// FirstPlayDoesNotCoverCenter requires the first accepted move to leave a
// tile on one of the four centre cells
func FirstPlayDoesNotCoverCenter(ctx *RuleContext) Result {
	if !ctx.FirstMove {
		return check(false, model.FirstPlayDoesNotCoverCenter)
	}
	for _, c := range centerCoords {
		if ctx.After.Occupied(c) {
			return check(false, model.FirstPlayDoesNotCoverCenter)
		}
	}
	return check(true, model.FirstPlayDoesNotCoverCenter)
}

// InvalidWord rejects a play forming any word of two or more letters that
// is not in the dictionary. A Q cell reads as "qu".
func InvalidWord(ctx *RuleContext) Result {
	for _, w := range FormedWords(ctx.After, ctx.Play) {
		if ctx.Dictionary == nil || !ctx.Dictionary.IsValidWord(w.DictionaryForm()) {
			return check(true, model.InvalidWord)
		}
	}
	return check(false, model.InvalidWord)
}

// OnlyPluralizesWord rejects a lone S dropped on an empty cell when all it
// does is append S to existing words. Each word it forms must end at the S,
// be at least three long, and not already end in S before the append. The
// check is literal: any word ending in the new S counts as a plural.
func OnlyPluralizesWord(ctx *RuleContext) Result {
	placed := ctx.Play.PlacedTiles()
	if len(placed) != 1 || placed[0].Letter != 'S' || ctx.Before.Occupied(placed[0].Coord) {
		return check(false, model.OnlyPluralizesWord)
	}
	s := placed[0].Coord

	words := FormedWords(ctx.After, ctx.Play)
	if len(words) == 0 {
		return check(false, model.OnlyPluralizesWord)
	}
	for _, w := range words {
		n := len(w)
		if w[n-1].Coord != s || n < 3 || w[n-2].Letter == 'S' {
			return check(false, model.OnlyPluralizesWord)
		}
	}
	return check(true, model.OnlyPluralizesWord)
}

// FormedWords returns the words of two or more letters a play forms
func FormedWords(after model.Board, p model.Play) []model.BoardWord {
	var words []model.BoardWord
	for _, w := range model.WordsFromPlay(after, p) {
		if len(w) >= 2 {
			words = append(words, w)
		}
	}
	return words
}
