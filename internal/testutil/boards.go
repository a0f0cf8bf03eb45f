package testutil

import (
	"github.com/mcoot/upwords-go/internal/model"
)

// Board builds a board from ten row strings of ten two-character tokens
// each. It panics on malformed input.
func Board(rows ...string) model.Board {
	grid := make([][]string, len(rows))
	for i, row := range rows {
		runes := []rune(row)
		for j := 0; j+1 < len(runes); j += 2 {
			grid[i] = append(grid[i], string(runes[j:j+2]))
		}
	}
	b, err := model.BoardFromTokens(grid)
	if err != nil {
		panic(err)
	}
	return b
}

const emptyRow = "0 0 0 0 0 0 0 0 0 0 "

// HelloWorldBoard has HELLO across row 4 from (4,3) and WORLD down
// column 7 from (3,7), sharing a height-2 O at (4,7).
func HelloWorldBoard() model.Board {
	return Board(
		emptyRow,
		emptyRow,
		emptyRow,
		"0 0 0 0 0 0 0 1W0 0 ",
		"0 0 0 1H1E1L1L2O0 0 ",
		"0 0 0 0 0 0 0 1R0 0 ",
		"0 0 0 0 0 0 0 1L0 0 ",
		"0 0 0 0 0 0 0 1D0 0 ",
		emptyRow,
		emptyRow,
	)
}

// DenseBoard is a crowded mid-game board with stacks up to height 5
// and a Q tile at (6,0).
func DenseBoard() model.Board {
	return Board(
		emptyRow,
		"0 1M0 0 0 0 1V0 0 0 ",
		"0 1A3H0 0 0 1A0 0 0 ",
		"0 1N1O0 5F1U4C3I0 0 ",
		"0 1S2O3M2A1N1S0 0 0 ",
		"0 0 4D5U3R4R0 0 0 0 ",
		"2Q1A1Y3S0 2I1D0 0 0 ",
		"0 0 0 5C3O5P1E0 0 0 ",
		"0 0 0 3A0 1S3W2I2M0 ",
		"1B1I1K1E0 0 0 0 0 0 ",
	)
}

// TallStackBoard has TEST across row 4 with a height-5 S at (4,5) and
// TRIAL down column 3.
func TallStackBoard() model.Board {
	return Board(
		emptyRow,
		emptyRow,
		emptyRow,
		emptyRow,
		"0 0 0 1T1E5S4T0 0 0 ",
		"0 0 0 1R0 0 0 0 0 0 ",
		"0 0 0 1I0 0 0 0 0 0 ",
		"0 0 0 1A0 0 0 0 0 0 ",
		"0 0 0 1L0 0 0 0 0 0 ",
		emptyRow,
	)
}

// FollowPrawnBoard has HELLO across row 4, FOLLOW down column 7 and
// PRAWN across row 8.
func FollowPrawnBoard() model.Board {
	return Board(
		emptyRow,
		emptyRow,
		emptyRow,
		"0 0 0 0 0 0 0 1F0 0 ",
		"0 0 0 1H1E1L1L1O0 0 ",
		"0 0 0 0 0 0 0 1L0 0 ",
		"0 0 0 0 0 0 0 1L0 0 ",
		"0 0 0 0 0 0 0 1O0 0 ",
		"0 0 0 0 1P1R1A1W1N0 ",
		emptyRow,
	)
}

// Words is a small dictionary covering the fixtures above
func Words() []string {
	return []string{
		"hello", "hells", "hell", "world", "follow", "prawn", "test", "tests",
		"trial", "team", "cinders", "swims", "mass", "hoods", "cat", "cats",
		"at", "as", "sat", "he", "hen", "up", "be", "old", "queen", "quit",
		"quits", "so", "lo", "go", "pass", "ma", "hi",
	}
}
