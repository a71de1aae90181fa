package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config    config.DotsConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // nil keeps scores in memory only
	Logger    *log.Logger    // nil discards logs
	SessionID string         // generated when empty
	Bell      io.Writer      // where the feedback bell is written, nil for none

	// Controller options applied after the built-in observers, e.g. a fixed
	// board or color source.
	Controller []dots.Option
}

// Model is the Bubble Tea model for one dots session.
type Model struct {
	ctrl     *dots.Controller
	input    *dots.Input
	anim     *Animator
	feedback *Feedback
	scores   *scoreKeeper

	cfg        config.DotsConfig
	runtime    core.RuntimeConfig
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	cursor     dots.CellCoord
	lastTick   time.Time
	showScores bool
	quitting   bool
}

// NewModel creates a game model with a freshly dealt board.
func NewModel(opts Options) (Model, error) {
	if err := opts.Config.Validate(); err != nil {
		return Model{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	settings := opts.Config.ToSettings()
	keeper := newScoreKeeper(opts.Store, logger, opts.SessionID, settings)
	anim := NewAnimator(time.Duration(opts.Config.Display.AnimationMS) * time.Millisecond)
	feedback := NewFeedback(opts.Config.Feedback, opts.Bell)

	ctrlOpts := []dots.Option{
		dots.WithLogger(logger),
		dots.WithObserver(anim),
		dots.WithObserver(feedback),
		dots.WithObserver(keeper),
	}
	ctrl, err := dots.NewController(settings, append(ctrlOpts, opts.Controller...)...)
	if err != nil {
		return Model{}, fmt.Errorf("cannot start session: %w", err)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	m := Model{
		ctrl:     ctrl,
		anim:     anim,
		feedback: feedback,
		scores:   keeper,
		cfg:      opts.Config,
		runtime:  opts.Runtime,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-1),
		keys:     DefaultKeyMap(),
		help:     h,
	}
	m.input = dots.NewInput(ctrl, m.layout())
	return m, nil
}

// layout computes the board placement for the current screen size.
func (m Model) layout() dots.Layout {
	return computeLayout(
		m.screen.Bounds(),
		m.ctrl.Settings().GridSize,
		m.cfg.Display.CellWidth, m.cfg.Display.CellHeight,
	)
}

// Init starts the animation tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey drives the controller from the keyboard cursor.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if m.showScores && action != core.ActionQuit {
		if action == core.ActionScores || action == core.ActionCancel {
			m.showScores = false
		}
		return m, nil
	}

	if action.IsMove() {
		dx, dy := action.Delta()
		n := m.ctrl.Settings().GridSize
		m.cursor = dots.At(
			core.Clamp(m.cursor.Col+dx, 0, n-1),
			core.Clamp(m.cursor.Row+dy, 0, n-1),
		)
		if m.ctrl.Phase() == dots.PhaseDrawing {
			m.ctrl.PointerMove(m.cursor)
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionScores:
		m.showScores = true

	case core.ActionSelect:
		if m.ctrl.Phase() == dots.PhaseDrawing {
			m.ctrl.PointerUp()
		} else {
			m.ctrl.PointerDown(m.cursor)
		}

	case core.ActionCancel:
		if m.ctrl.Phase() == dots.PhaseDrawing {
			m.ctrl.CancelPath()
		}

	case core.ActionRestart:
		m.ctrl.Reset()
	}

	return m, nil
}

// handleMouse maps terminal mouse events onto pointer events.
// Drags are clamped to the board edge so a path never breaks when the
// pointer strays outside it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m, nil
	}
	layout := m.input.Layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !layout.Contains(msg.X, msg.Y) && !m.ctrl.GameOver() {
			return m, nil
		}
		m.cursor = layout.CellAt(msg.X, msg.Y)
		m.input.PointerDown(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.ctrl.Phase() != dots.PhaseDrawing {
			return m, nil
		}
		m.cursor = layout.CellAt(msg.X, msg.Y)
		m.input.PointerMove(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if m.ctrl.Phase() == dots.PhaseDrawing {
			m.input.PointerUp()
		}
	}

	return m, nil
}

// handleResize re-centers the board. The session itself is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime = m.runtime.WithSize(msg.Width, msg.Height)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH-1)
	m.input.SetLayout(m.layout())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances animations and feedback.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.anim.Update(now.Sub(m.lastTick))
	}
	m.lastTick = now
	m.feedback.Tick()
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpLine := helpStyle.Render(m.help.View(m.keys))

	if m.showScores {
		panel := renderScorePanel(m.scores, m.screen.Width(), m.screen.Height())
		return lipgloss.JoinVertical(lipgloss.Left, panel, helpLine)
	}

	snap := m.ctrl.Snapshot()
	layout := m.input.Layout()

	status, statusColor := pathStatus(snap)
	m.screen.Clear()
	drawHUD(m.screen, hudInfo{
		label:  m.ctrl.Settings().Label(),
		score:  snap.Score,
		moves:  snap.MovesLeft,
		best:   m.scores.Best(),
		status: status,
		color:  statusColor,
	})
	drawBoard(m.screen, boardFrame{
		snap:     snap,
		layout:   layout,
		anim:     m.anim,
		cursor:   m.cursor,
		flashing: m.feedback.Flashing(),
	})
	if snap.GameOver {
		drawGameOver(m.screen, layout, gameOverInfo{
			score:   snap.Score,
			best:    m.scores.Best(),
			newBest: m.scores.NewBest(),
			reason:  snap.Reason,
		})
	}

	return RenderScreen(m.screen) + "\n" + helpLine
}

// Controller exposes the session controller, mainly for tests.
func (m Model) Controller() *dots.Controller {
	return m.ctrl
}

// SessionID returns the identifier scores are saved under.
func (m Model) SessionID() string {
	return m.scores.sessionID
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
