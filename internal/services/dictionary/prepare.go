package dictionary

import (
	"strings"
	"unicode/utf8"

	"github.com/mcoot/upwords-go/internal/services/tiles"
)

// Reasons a word is dropped while preparing a word list
const (
	ReasonNotLetters    = "not letters"
	ReasonQWithoutU     = "q without u"
	ReasonTooShort      = "too short"
	ReasonTooLong       = "too long"
	ReasonTileCount     = "tile count exceeded"
	ReasonDuplicateWord = "duplicate"
)

// PrepareOptions controls word list curation. Zero values disable a check.
type PrepareOptions struct {
	MinLength int
	MaxLength int
	// JoinQu treats "qu" as the single Q tile when measuring and counting
	// letters, and drops words with a q that is not followed by u
	JoinQu bool
	// FoldQu writes kept words with "qu" folded to "q"
	FoldQu bool
	// TileCounts caps how many of each uppercase letter a word may use.
	// Letters missing from the map are not allowed at all.
	TileCounts map[rune]int
}

// DefaultPrepareOptions matches the standard tile set
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		MinLength:  MinWordLength,
		MaxLength:  10,
		JoinQu:     true,
		TileCounts: tiles.StandardDistribution().Map(),
	}
}

// RemovedWord is a word dropped from the list and why
type RemovedWord struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

// PrepareWordList filters a raw word list down to words that can be
// built with the tile set. Words are lower-cased; the last failing
// check names the removal reason.
func PrepareWordList(words []string, opts PrepareOptions) ([]string, []RemovedWord) {
	kept := make([]string, 0, len(words))
	var removed []RemovedWord
	seen := make(map[string]struct{}, len(words))

	for _, raw := range words {
		word := strings.ToLower(strings.TrimSpace(raw))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			removed = append(removed, RemovedWord{Word: word, Reason: ReasonDuplicateWord})
			continue
		}
		seen[word] = struct{}{}

		if reason := rejectReason(word, opts); reason != "" {
			removed = append(removed, RemovedWord{Word: word, Reason: reason})
			continue
		}
		if opts.JoinQu && opts.FoldQu {
			word = strings.ReplaceAll(word, "qu", "q")
		}
		kept = append(kept, word)
	}
	return kept, removed
}

// rejectReason runs every check and reports the last one that fails, so a
// length or tile count failure outranks a missing u
func rejectReason(word string, opts PrepareOptions) string {
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return ReasonNotLetters
		}
	}

	reason := ""
	tileWord := word
	if opts.JoinQu && strings.ContainsRune(word, 'q') {
		if strings.Count(word, "q") != strings.Count(word, "qu") {
			reason = ReasonQWithoutU
		} else {
			tileWord = strings.ReplaceAll(word, "qu", "q")
		}
	}

	length := utf8.RuneCountInString(tileWord)
	if opts.MinLength > 0 && length < opts.MinLength {
		reason = ReasonTooShort
	}
	if opts.MaxLength > 0 && length > opts.MaxLength {
		reason = ReasonTooLong
	}
	if opts.TileCounts != nil && !withinTileCounts(tileWord, opts.TileCounts) {
		reason = ReasonTileCount
	}
	return reason
}

func withinTileCounts(word string, counts map[rune]int) bool {
	used := make(map[rune]int)
	for _, r := range strings.ToUpper(word) {
		used[r]++
		if used[r] > counts[r] {
			return false
		}
	}
	return true
}
