package dots

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the controller's position in the pointer state machine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	PhaseResolving
	PhaseGameOver
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Controller owns a session: the board, the path, the color source, score
// and remaining moves. It processes one pointer event to completion before
// returning and never waits on observers.
type Controller struct {
	settings  Settings
	board     *Board
	path      *PathBuilder
	rng       Source
	observers []Observer
	logger    *log.Logger

	// fixture is the board dealt on the first session, if supplied.
	fixture *Board

	score     int
	movesLeft int
	gameOver  bool
	reason    GameOverReason
	phase     Phase
	resolved  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers an observer. Observers are notified in registration order.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, o)
	}
}

// WithSource replaces the seeded color source.
func WithSource(rng Source) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithBoard deals the given board for the first session instead of a random one.
// The grid size setting follows the board.
func WithBoard(b *Board) Option {
	return func(c *Controller) {
		c.fixture = b
	}
}

// WithLogger sets a logger for dropped input and resolutions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController validates settings and deals the first board.
func NewController(settings Settings, opts ...Option) (*Controller, error) {
	if settings.LoopRemoval == "" {
		settings.LoopRemoval = LoopRemovesColor
	}

	c := &Controller{settings: settings}
	for _, opt := range opts {
		opt(c)
	}

	if c.fixture != nil {
		c.settings.GridSize = c.fixture.Size()
	}
	if err := c.settings.Validate(); err != nil {
		return nil, err
	}

	if c.rng == nil {
		seed := time.Now().UnixNano()
		if c.settings.Seed != nil {
			seed = *c.settings.Seed
		}
		c.rng = NewRandSource(seed, c.settings.PaletteSize)
	}

	if err := c.deal(); err != nil {
		return nil, err
	}
	c.endIfStuck()
	return c, nil
}

// endIfStuck ends a freshly dealt session whose board offers no legal move.
func (c *Controller) endIfStuck() {
	if !c.board.AnyLegalMove() {
		c.endGame(ReasonNoMoves)
	}
}

// deal installs a fresh board and resets session state.
func (c *Controller) deal() error {
	board := c.fixture
	c.fixture = nil
	if board == nil {
		var err error
		board, err = NewBoard(c.settings.GridSize, c.rng)
		if err != nil {
			return fmt.Errorf("dots: cannot deal board: %w", err)
		}
	} else {
		board = board.Clone()
	}

	c.board = board
	if c.path == nil {
		c.path = NewPathBuilder(board)
	} else {
		c.path.Rebind(board)
	}
	c.score = 0
	c.movesLeft = c.settings.MoveBudget
	c.gameOver = false
	c.reason = ""
	c.phase = PhaseIdle
	c.resolved = 0
	return nil
}

// AddObserver registers an observer after construction.
func (c *Controller) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) emit(e Event) {
	for _, o := range c.observers {
		o.Notify(e)
	}
}

func (c *Controller) drop(event string, reason error) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("event dropped", "event", event, "phase", c.phase, "reason", reason)
}

func (c *Controller) emitPath() {
	c.emit(PathUpdated{Path: c.path.Path(), Color: c.path.Color()})
}

// PointerDown begins a path at cell, or starts a new session after game over.
func (c *Controller) PointerDown(cell CellCoord) {
	switch c.phase {
	case PhaseGameOver:
		c.Reset()
	case PhaseIdle:
		if out := c.path.Begin(cell); out.Kind != OutcomeExtended {
			c.drop("pointer_down", fmt.Errorf("%w: %v", ErrInvalidCoord, cell))
			return
		}
		c.phase = PhaseDrawing
		c.emitPath()
	default:
		c.drop("pointer_down", ErrIllegalTransition)
	}
}

// PointerMove feeds the cell under the pointer to the path builder.
// A closed loop resolves immediately.
func (c *Controller) PointerMove(cell CellCoord) {
	if c.phase != PhaseDrawing {
		c.drop("pointer_move", ErrIllegalTransition)
		return
	}

	out := c.path.Hover(cell)
	switch out.Kind {
	case OutcomeExtended, OutcomeRetreated:
		c.emitPath()
	case OutcomeLoopClosed:
		c.resolve(c.loopVictims(out.Color))
	}
}

// PointerUp commits the path. Paths shorter than two dots are cancelled.
func (c *Controller) PointerUp() {
	if c.phase != PhaseDrawing {
		c.drop("pointer_up", ErrIllegalTransition)
		return
	}

	victims, err := c.path.Commit()
	if err != nil {
		c.drop("pointer_up", err)
		c.path.Cancel()
		c.phase = PhaseIdle
		c.emitPath()
		return
	}
	c.resolve(victims)
}

// CancelPath abandons the in-progress path without scoring,
// e.g. when the pointer leaves the playing surface.
func (c *Controller) CancelPath() {
	if c.phase != PhaseDrawing {
		c.drop("cancel", ErrIllegalTransition)
		return
	}
	c.path.Cancel()
	c.phase = PhaseIdle
	c.emitPath()
}

// Reset deals a new board and restores score and moves.
func (c *Controller) Reset() {
	if err := c.deal(); err != nil {
		// Settings were validated at construction; dealing cannot fail.
		c.drop("reset", err)
		return
	}
	c.emit(SessionReset{GridSize: c.board.Size(), Score: c.score, Moves: c.movesLeft})
	c.emit(ScoreChanged{Score: c.score})
	c.emit(MovesChanged{Remaining: c.movesLeft})
	c.endIfStuck()
}

func (c *Controller) loopVictims(color Color) []CellCoord {
	if c.settings.LoopRemoval == LoopRemovesPath {
		return c.path.Path()
	}
	return c.board.CoordsOfColor(color)
}

// resolve removes victims, settles the board, scores and checks for game over.
func (c *Controller) resolve(victims []CellCoord) {
	c.phase = PhaseResolving

	report, err := c.board.RemoveAndSettle(victims, c.rng)
	if err != nil {
		c.drop("resolve", err)
		c.path.Cancel()
		c.phase = PhaseIdle
		c.emitPath()
		return
	}

	c.emit(DotsRemoved{Coords: report.Removed})
	c.emit(DotsMoved{Moves: report.Moves()})
	c.emit(DotsInserted{Insertions: report.Insertions()})

	c.score += len(report.Removed)
	if c.movesLeft > 0 {
		c.movesLeft--
	}
	c.resolved++
	c.emit(ScoreChanged{Score: c.score})
	c.emit(MovesChanged{Remaining: c.movesLeft})

	c.path.Cancel()

	if c.logger != nil {
		c.logger.Debug("resolved", "removed", len(report.Removed), "score", c.score, "moves_left", c.movesLeft)
	}

	switch {
	case c.movesLeft == 0:
		c.endGame(ReasonMovesExhausted)
	case !c.board.AnyLegalMove():
		c.endGame(ReasonNoMoves)
	default:
		c.phase = PhaseIdle
	}
}

func (c *Controller) endGame(reason GameOverReason) {
	c.gameOver = true
	c.reason = reason
	c.phase = PhaseGameOver
	c.emit(GameOver{FinalScore: c.score, Reason: reason})
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.score
}

// MovesLeft returns the number of moves remaining.
func (c *Controller) MovesLeft() int {
	return c.movesLeft
}

// GameOver returns true once the session has ended.
func (c *Controller) GameOver() bool {
	return c.gameOver
}

// Reason returns why the session ended, or "" while it is running.
func (c *Controller) Reason() GameOverReason {
	return c.reason
}

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Board returns a copy of the current board.
func (c *Controller) Board() *Board {
	return c.board.Clone()
}

// Path returns a copy of the in-progress path and its color.
func (c *Controller) Path() ([]CellCoord, Color) {
	return c.path.Path(), c.path.Color()
}

// Settings returns the session settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Snapshot captures the observable session state.
type Snapshot struct {
	Board     []Color
	GridSize  int
	Path      []CellCoord
	PathColor Color
	Score     int
	MovesLeft int
	Resolved  int
	Phase     Phase
	GameOver  bool
	Reason    GameOverReason
}

// Snapshot returns the current session snapshot.
func (c *Controller) Snapshot() Snapshot {
	path, color := c.Path()
	return Snapshot{
		Board:     c.board.Colors(),
		GridSize:  c.board.Size(),
		Path:      path,
		PathColor: color,
		Score:     c.score,
		MovesLeft: c.movesLeft,
		Resolved:  c.resolved,
		Phase:     c.phase,
		GameOver:  c.gameOver,
		Reason:    c.reason,
	}
}
