package dots

// EventKind identifies the variant of an Event.
type EventKind uint8

const (
	KindPathUpdated EventKind = iota
	KindDotsRemoved
	KindDotsMoved
	KindDotsInserted
	KindScoreChanged
	KindMovesChanged
	KindGameOver
	KindSessionReset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case KindPathUpdated:
		return "PathUpdated"
	case KindDotsRemoved:
		return "DotsRemoved"
	case KindDotsMoved:
		return "DotsMoved"
	case KindDotsInserted:
		return "DotsInserted"
	case KindScoreChanged:
		return "ScoreChanged"
	case KindMovesChanged:
		return "MovesChanged"
	case KindGameOver:
		return "GameOver"
	case KindSessionReset:
		return "SessionReset"
	default:
		return "Unknown"
	}
}

// Event is emitted by the controller to its observers.
// Per resolution the order is DotsRemoved, DotsMoved, DotsInserted,
// ScoreChanged, MovesChanged, then GameOver if the game ended.
type Event interface {
	Kind() EventKind
}

// PathUpdated is sent whenever the in-progress path changes.
// An empty Path means the selection was cleared.
type PathUpdated struct {
	Path  []CellCoord
	Color Color
}

func (PathUpdated) Kind() EventKind { return KindPathUpdated }

// DotsRemoved lists the victims of a resolution, sorted by row then column.
type DotsRemoved struct {
	Coords []CellCoord
}

func (DotsRemoved) Kind() EventKind { return KindDotsRemoved }

// DotsMoved lists the gravity moves of a resolution. Applying them in order
// to the pre-settle board yields the post-settle survivors.
type DotsMoved struct {
	Moves []DotMove
}

func (DotsMoved) Kind() EventKind { return KindDotsMoved }

// DotsInserted lists the fresh dots placed at the top of each column.
type DotsInserted struct {
	Insertions []DotInsert
}

func (DotsInserted) Kind() EventKind { return KindDotsInserted }

// ScoreChanged carries the new total score.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) Kind() EventKind { return KindScoreChanged }

// MovesChanged carries the number of moves left.
type MovesChanged struct {
	Remaining int
}

func (MovesChanged) Kind() EventKind { return KindMovesChanged }

// GameOverReason explains why a game ended.
type GameOverReason string

const (
	ReasonMovesExhausted GameOverReason = "moves_exhausted"
	ReasonNoMoves        GameOverReason = "no_moves"
)

// GameOver is sent once when the session ends.
type GameOver struct {
	FinalScore int
	Reason     GameOverReason
}

func (GameOver) Kind() EventKind { return KindGameOver }

// SessionReset is sent when a fresh board has been dealt.
type SessionReset struct {
	GridSize int
	Score    int
	Moves    int
}

func (SessionReset) Kind() EventKind { return KindSessionReset }

// Observer receives controller events synchronously.
// Observers must not call back into the controller from Notify.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls f(e).
func (f ObserverFunc) Notify(e Event) {
	f(e)
}

// Handlers is an Observer built from optional per-kind callbacks.
// Nil callbacks are skipped.
type Handlers struct {
	OnPathUpdated  func(PathUpdated)
	OnDotsRemoved  func(DotsRemoved)
	OnDotsMoved    func(DotsMoved)
	OnDotsInserted func(DotsInserted)
	OnScoreChanged func(ScoreChanged)
	OnMovesChanged func(MovesChanged)
	OnGameOver     func(GameOver)
	OnSessionReset func(SessionReset)
}

// Notify dispatches e to the matching callback.
func (h Handlers) Notify(e Event) {
	switch ev := e.(type) {
	case PathUpdated:
		if h.OnPathUpdated != nil {
			h.OnPathUpdated(ev)
		}
	case DotsRemoved:
		if h.OnDotsRemoved != nil {
			h.OnDotsRemoved(ev)
		}
	case DotsMoved:
		if h.OnDotsMoved != nil {
			h.OnDotsMoved(ev)
		}
	case DotsInserted:
		if h.OnDotsInserted != nil {
			h.OnDotsInserted(ev)
		}
	case ScoreChanged:
		if h.OnScoreChanged != nil {
			h.OnScoreChanged(ev)
		}
	case MovesChanged:
		if h.OnMovesChanged != nil {
			h.OnMovesChanged(ev)
		}
	case GameOver:
		if h.OnGameOver != nil {
			h.OnGameOver(ev)
		}
	case SessionReset:
		if h.OnSessionReset != nil {
			h.OnSessionReset(ev)
		}
	}
}

// Recorder is an Observer that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Notify appends e.
func (r *Recorder) Notify(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind()
	}
	return kinds
}

// Last returns the most recent event of the given kind.
func (r *Recorder) Last(kind EventKind) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind() == kind {
			return r.Events[i], true
		}
	}
	return nil, false
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
