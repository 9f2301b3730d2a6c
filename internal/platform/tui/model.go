package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappybird/internal/core"
	"github.com/vovakirdan/flappybird/internal/flappy"
)

// footerRows is the space kept below the field for the help line.
const footerRows = 1

// Model is the Bubble Tea model running one flappy.Game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	queue    *core.EventQueue
	spawn    *core.IntervalTimer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int
	width    int
	height   int
	lastHigh int
	quitting bool
}

// NewModel creates a model for a terminal of the given size.
func NewModel(game *flappy.Game, logger *log.Logger, width, height int) Model {
	cfg := game.Config()

	h := help.New()
	h.ShowAll = false
	h.Width = width

	return Model{
		game:     game,
		screen:   core.NewScreen(width, fieldRows(height)),
		queue:    core.NewEventQueue(),
		spawn:    core.NewIntervalTimer(cfg.Obstacles.SpawnInterval, cfg.Physics.TickRate),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		tickRate: cfg.Physics.TickRate,
		width:    width,
		height:   height,
	}
}

func fieldRows(height int) int {
	return max(height-footerRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues gameplay input. Quit leaves immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Flap):
		m.queue.PushKind(core.EventFlap)
	case key.Matches(msg, m.keys.Confirm):
		m.queue.PushKind(core.EventConfirm)
	}
	return m, nil
}

// handleMouse maps a left click back into field coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	x, y := m.projection().toField(msg.X, msg.Y)
	m.queue.Push(core.PointerDown(x, y))
	return m, nil
}

// handleResize refits the field to the new terminal size.
// Game state is kept; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with everything queued since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.spawn.Tick() {
		m.queue.PushKind(core.EventSpawnTick)
	}

	res := m.game.Step(m.queue.Drain())
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, c := range res.Cues {
		m.logger.Debug("cue", "cue", c)
	}
	if res.Died {
		m.logger.Debug("game over", "score", res.Score, "outcome", res.Outcome)
	}
	if res.HighScore > m.lastHigh {
		m.lastHigh = res.HighScore
		m.logger.Debug("new high score", "score", res.HighScore)
	}

	return m, tickCmd(m.tickRate)
}

func (m Model) projection() projection {
	cfg := m.game.Config()
	return newProjection(cfg.Field.Width, cfg.Field.Height, m.screen.Width(), m.screen.Height())
}

// View renders the field and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawField(m.screen, m.game, m.projection())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
