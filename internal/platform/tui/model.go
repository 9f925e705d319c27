package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tentacles/internal/core"
	"github.com/vovakirdan/tui-tentacles/internal/registry"
)

// helpRows is the number of terminal rows reserved under the game.
const helpRows = 1

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	sched      *Scheduler
	logger     *log.Logger
	fixedSeed  bool
	quitting   bool
}

// NewModel creates a model for the given game. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	sched := NewScheduler()
	cfg.Scheduler = sched
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		sched:      sched,
		logger:     logger,
		fixedSeed:  fixedSeed,
	}
}

func playfieldHeight(termH int) int {
	return max(termH-helpRows, 1)
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)
	return tea.Batch(tickCmd(m.config.TickRate), m.sched.Flush())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		if pg, ok := m.game.(registry.PointerGame); ok {
			pg.PointerLeave()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case deferredMsg:
		msg.fn()
		return m, m.sched.Flush()
	}

	return m, nil
}

// handleKey maps a key press onto the input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("session quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse forwards pointer events. Hover is a pointer move, a held
// left button is a touch. Presses and drags outside the playfield are dropped.
func (m Model) handleMouse(msg tea.MouseMsg) {
	pg, ok := m.game.(registry.PointerGame)
	if !ok {
		return
	}

	// The help bar is not part of the arena: hovering it counts as leaving.
	field := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	if !field.Contains(msg.X, msg.Y) {
		if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
			pg.PointerLeave()
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			pg.TouchStart(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			pg.TouchMove(msg.X, msg.Y)
		} else {
			pg.PointerMove(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		pg.TouchEnd()
	}
}

// handleResize adapts the screen to the terminal. Games implementing
// registry.Resizer keep their session, others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playfieldHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "width", m.config.ScreenW, "height", m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, m.sched.Flush()
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("session reset", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tea.Batch(tickCmd(m.config.TickRate), m.sched.Flush())
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("session ended",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"reason", m.gameState.EndReason,
		)
	}

	m.inputFrame.Clear()

	return m, tea.Batch(tickCmd(m.config.TickRate), m.sched.Flush())
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the game and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", game.ID(), err)
	}
	return nil
}
