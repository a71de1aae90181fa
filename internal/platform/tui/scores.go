package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// scoreKeeper is an observer that records finished sessions and tracks the
// best score for the board being played.
type scoreKeeper struct {
	store     *storage.Store
	logger    *log.Logger
	sessionID string
	board     string
	budget    int

	remaining int
	best      int
	newBest   bool
	history   []storage.ScoreEntry // games finished in this session, newest first
}

func newScoreKeeper(store *storage.Store, logger *log.Logger, sessionID string, s dots.Settings) *scoreKeeper {
	k := &scoreKeeper{
		store:     store,
		logger:    logger,
		sessionID: sessionID,
		board:     s.Label(),
		budget:    s.MoveBudget,
		remaining: s.MoveBudget,
	}
	if store != nil {
		best, err := store.HighScore(k.board)
		if err != nil {
			logger.Warn("cannot load high score", "board", k.board, "err", err)
		}
		k.best = best
	}
	return k
}

// Notify tracks moves and saves the score when a game ends.
func (k *scoreKeeper) Notify(e dots.Event) {
	switch ev := e.(type) {
	case dots.MovesChanged:
		k.remaining = ev.Remaining
	case dots.SessionReset:
		k.remaining = ev.Moves
		k.newBest = false
	case dots.GameOver:
		k.record(ev)
	}
}

func (k *scoreKeeper) record(ev dots.GameOver) {
	rec := storage.ScoreRecord{
		SessionID: k.sessionID,
		Board:     k.board,
		Score:     ev.FinalScore,
		MovesUsed: k.budget - k.remaining,
		Reason:    string(ev.Reason),
	}
	k.history = append([]storage.ScoreEntry{{
		SessionID: rec.SessionID,
		Board:     rec.Board,
		Score:     rec.Score,
		MovesUsed: rec.MovesUsed,
		Reason:    rec.Reason,
	}}, k.history...)

	if ev.FinalScore > k.best {
		k.best = ev.FinalScore
		k.newBest = true
	}

	k.logger.Info("game over", "board", k.board, "score", ev.FinalScore, "reason", ev.Reason)

	if k.store == nil || ev.FinalScore <= 0 {
		return
	}
	if _, err := k.store.SaveScore(rec); err != nil {
		k.logger.Error("cannot save score", "board", k.board, "err", err)
	}
}

// Best returns the best score known for the board.
func (k *scoreKeeper) Best() int {
	return k.best
}

// NewBest reports whether the last finished game set a new best.
func (k *scoreKeeper) NewBest() bool {
	return k.newBest
}

// Top returns the high scores for the board, falling back to the games
// played in this session when there is no store.
func (k *scoreKeeper) Top(limit int) []storage.ScoreEntry {
	if k.store != nil {
		scores, err := k.store.TopScores(k.board, limit)
		if err == nil {
			return scores
		}
		k.logger.Warn("cannot load scores", "board", k.board, "err", err)
	}
	if len(k.history) > limit {
		return k.history[:limit]
	}
	return k.history
}

// Session returns the games finished under this session id. Stored games
// span every board played over SSH or locally with the same id; without a
// store only the games kept in memory are returned.
func (k *scoreKeeper) Session() []storage.ScoreEntry {
	if k.store != nil {
		scores, err := k.store.SessionScores(k.sessionID)
		if err == nil {
			return scores
		}
		k.logger.Warn("cannot load session scores", "session", k.sessionID, "err", err)
	}
	return k.history
}

// sessionSummary describes the games finished in this session.
func sessionSummary(games []storage.ScoreEntry) string {
	if len(games) == 0 {
		return "This session: no games yet"
	}
	best := 0
	for _, g := range games {
		best = max(best, g.Score)
	}
	noun := "games"
	if len(games) == 1 {
		noun = "game"
	}
	return fmt.Sprintf("This session: %d %s, best %d", len(games), noun, best)
}

// renderScorePanel renders the in-game high score overlay.
func renderScorePanel(k *scoreKeeper, width, height int) string {
	t := newScoreTable(width-4, height-7)
	t.SetRows(scoreRows(k.Top(maxScores), width-4 < 56))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("HIGH SCORES - %s", k.board), width)))
	b.WriteString("\n")
	sessionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(sessionStyle.Render(centerText(sessionSummary(k.Session()), width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(t.Rows()) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(tableStyle.Render(empty.Render("No scores recorded yet.")))
	} else {
		b.WriteString(tableStyle.Render(t.View()))
	}
	return b.String()
}
