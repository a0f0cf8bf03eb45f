package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	workDir    string
	env        []string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "upwords-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/upwords")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	workDir := t.TempDir()
	wordsPath := filepath.Join(workDir, "words.txt")
	words := "hello\nhells\nworld\ncat\ncats\nat\n"
	require.NoError(t, os.WriteFile(wordsPath, []byte(words), 0o600))

	return &cliRunner{
		binaryPath: binaryPath,
		workDir:    workDir,
		env: []string{
			"HOME=" + workDir,
			"UPWORDS_STORAGE=sqlite",
			"UPWORDS_DB=" + filepath.Join(workDir, "games.db"),
			"UPWORDS_DICTIONARY=" + wordsPath,
			"UPWORDS_LOG_LEVEL=error",
		},
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{"--output", "json"}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Dir = r.workDir
	cmd.Env = append(os.Environ(), r.env...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Response types for JSON parsing

type playResponse struct {
	Result struct {
		IsValid bool   `json:"is_valid"`
		Points  int    `json:"points"`
		Error   string `json:"error"`
	} `json:"result"`
	Breakdown *struct {
		Words []struct {
			Word   string `json:"word"`
			Points int    `json:"points"`
		} `json:"words"`
	} `json:"breakdown"`
}

type gameResponse struct {
	Game struct {
		ID      string `json:"id"`
		State   string `json:"state"`
		Players []struct {
			ID    string `json:"id"`
			Rack  string `json:"rack"`
			Score int    `json:"score"`
		} `json:"players"`
		Bag string `json:"bag"`
	} `json:"game"`
}

type summaryResponse struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Winner string `json:"winner"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_BoardFile(t *testing.T) {
	cli := newCLIRunner(t)
	board := filepath.Join(cli.workDir, "board.json")

	output, err := cli.run("board", "new", board)
	require.NoError(t, err, "output: %s", output)

	// Opening play through the centre
	output, err = cli.run("board", "play", board, "HELLO", "4", "2", "h")
	require.NoError(t, err, "output: %s", output)
	var play playResponse
	require.NoError(t, json.Unmarshal([]byte(output), &play))
	assert.True(t, play.Result.IsValid)
	assert.Equal(t, 10, play.Result.Points)

	// Stacking an S is scored by stack height
	output, err = cli.run("board", "check", board, "....S", "4", "2", "h")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &play))
	assert.Equal(t, 6, play.Result.Points)
	require.NotNil(t, play.Breakdown)
	assert.Equal(t, "HELLS", play.Breakdown.Words[0].Word)

	// A disconnected play is rejected and not saved
	output, err = cli.run("board", "play", board, "CAT", "0", "0", "h")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &play))
	assert.False(t, play.Result.IsValid)
	assert.Equal(t, "NotConnected", play.Result.Error)

	data, err := os.ReadFile(board)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "1C")
}

func TestCLI_GameLifecycle(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("game", "new", "alice", "bob")
	require.NoError(t, err, "output: %s", output)
	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	require.Len(t, game.Game.Players, 2)
	assert.Len(t, game.Game.Players[0].Rack, 7)
	assert.Len(t, game.Game.Bag, 86)
	id := game.Game.ID

	// Playing out of turn fails
	_, err = cli.run("game", "pass", id, "bob")
	assert.Error(t, err)

	// Alice swaps two tiles; the bag size is unchanged
	letters := game.Game.Players[0].Rack[:2]
	output, err = cli.run("game", "exchange", id, "alice", letters)
	require.NoError(t, err, "output: %s", output)

	// Everyone passes twice to end the game
	for _, player := range []string{"bob", "alice", "bob", "alice"} {
		output, err = cli.run("game", "pass", id, player)
		require.NoError(t, err, "output: %s", output)
	}

	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var summaries []summaryResponse
	require.NoError(t, json.Unmarshal([]byte(output), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "complete", summaries[0].State)
	assert.Empty(t, summaries[0].Winner)

	output, err = cli.run("game", "verify", id)
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, "verified")

	// Undoing the final pass reopens the game
	output, err = cli.run("game", "undo", id)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("game", "show", id)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "in_progress", game.Game.State)
	assert.Len(t, game.Game.Bag, 86)
}

func TestCLI_DotEnv(t *testing.T) {
	cli := newCLIRunner(t)
	cli.env = []string{"HOME=" + cli.workDir}
	require.NoError(t, os.WriteFile(filepath.Join(cli.workDir, ".env"), []byte("UPWORDS_STORAGE=memory\n"), 0o600))

	output, err := cli.run("config")
	require.NoError(t, err, "output: %s", output)
	assert.True(t, strings.Contains(output, `"type": "memory"`), output)
}
