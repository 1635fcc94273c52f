package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	state   core.GameState
	lines   int
	resets  int
	resized [2]int
	last    core.InputFrame
}

func (g *stubGame) ID() string       { return "stub" }
func (g *stubGame) Title() string    { return "Stub" }
func (g *stubGame) Controls() string { return "nothing to see" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Lines() int               { return g.lines }
func (g *stubGame) Resize(width, height int) { g.resized = [2]int{width, height} }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelForwardsInput(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})

	assert.Equal(t, 1, game.last.Count(core.ActionLeft))
	assert.True(t, game.last.Has(core.ActionHardDrop))

	// The frame is cleared after every tick
	m = update(t, m, TickMsg{})
	assert.False(t, game.last.Has(core.ActionLeft))
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &stubGame{}
	m := NewModel(game, store, testConfig()).WithPlayer("tester")
	m.Init()

	game.state = core.GameState{Score: 500, GameOver: true}
	game.lines = 5
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 500, scores[0].Score)
	assert.Equal(t, 5, scores[0].Lines)
	assert.Equal(t, "tester", scores[0].Player)
	assert.True(t, m.State().GameOver)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()
	require.Equal(t, 1, game.resets)

	// Restart is ignored while playing
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	assert.Equal(t, 1, game.resets)

	game.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.State().GameOver)
}

func TestModelBackPausesThenLeaves(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())
	m = update(t, m, TickMsg{})
	assert.True(t, game.last.Has(core.ActionPause), "esc pauses a running game")

	game.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, [2]int{100, 40}, game.resized)
	assert.Equal(t, 1, game.resets, "resizable games are not restarted")
	assert.Contains(t, m.View(), "stub")
}

// fixedLayoutGame hides the stub's Resize method.
type fixedLayoutGame struct {
	registry.Game
}

func TestModelResizeRestartsFixedLayoutGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(fixedLayoutGame{game}, nil, testConfig())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 2, game.resets, "a game without Resize restarts at the new size")
	assert.Equal(t, [2]int{}, game.resized)

	// A finished game is left alone so its final score stays on screen
	game.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, 2, game.resets)
	assert.True(t, m.State().GameOver)
}

func TestModelCountsRepeatedKeys(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey("a"))
	m = update(t, m, runeKey("z"))
	m = update(t, m, TickMsg{})

	assert.Equal(t, 2, game.last.Count(core.ActionLeft))
	assert.False(t, game.last.Has(core.ActionNone))
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	m.Init()

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
	assert.Empty(t, next.(Model).View())
}

func TestNickname(t *testing.T) {
	assert.Equal(t, "alice", Nickname("alice"))

	for _, anon := range []string{"", "anonymous", "guest"} {
		name := Nickname(anon)
		assert.NotEqual(t, anon, name)
		assert.Len(t, strings.Split(name, "-"), 2, "generated nickname %q", name)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "tester")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.Equal(t, viewGame, s.view)
	assert.Equal(t, "tester", s.gameModel.player)

	// Pause, then leave
	next, _ = s.Update(runeKey("p"))
	s = next.(SessionModel)
	game := s.gameModel.game.(*stubGame)
	game.state.Paused = true
	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	assert.Equal(t, viewMenu, s.view)
	assert.False(t, s.quitting)
}

func TestSessionScoreboard(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "tester")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	require.Equal(t, viewScores, s.view)
	assert.Contains(t, s.View(), "HIGH SCORES")

	next, _ = s.Update(runeKey("b"))
	s = next.(SessionModel)
	assert.Equal(t, viewMenu, s.view)
}
