package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

func TestBoardLabels(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreRecord{Board: "5x5", Score: 3})
	require.NoError(t, err)

	labels := boardLabels(store, "8x8")
	require.NotEmpty(t, labels)
	assert.Equal(t, "8x8", labels[0])
	assert.Contains(t, labels, "5x5")
	assert.Contains(t, labels, "6x6")
	assert.Contains(t, labels, "4x4")

	seen := map[string]bool{}
	for _, l := range labels {
		assert.False(t, seen[l], "duplicate label %s", l)
		seen[l] = true
	}
}

func TestScoreRows(t *testing.T) {
	scores := []storage.ScoreEntry{
		{Score: 40, MovesUsed: 30, Reason: string(dots.ReasonMovesExhausted)},
		{Score: 12, MovesUsed: 9, Reason: string(dots.ReasonNoMoves)},
	}

	rows := scoreRows(scores, false)
	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "40", rows[0][1])
	assert.Equal(t, "30", rows[0][2])
	assert.Equal(t, "Out of moves", rows[0][3])
	assert.Equal(t, "No pairs left", rows[1][3])

	narrow := scoreRows(scores, true)
	assert.Len(t, narrow[0], 4)
}

func TestScoreboardSwitchesBoards(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreRecord{Board: "6x6", Score: 25})
	require.NoError(t, err)

	m := NewScoreboardModel(store, "6x6", 100, 30)
	assert.Equal(t, "6x6", m.Board())
	assert.Len(t, m.scores, 1)
	assert.Contains(t, m.View(), "HIGH SCORES - 6x6")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.NotEqual(t, "6x6", m.Board())
	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = prev.(ScoreboardModel)
	assert.Equal(t, "6x6", m.Board())
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "6x6", 60, 20)

	back, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, back.(ScoreboardModel).IsGoingBack())

	quit, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, quit.(ScoreboardModel).IsQuitting())
}

func TestScoreKeeperWithoutStore(t *testing.T) {
	k := newScoreKeeper(nil, log.New(io.Discard), "s1", dots.DefaultSettings())

	k.Notify(dots.MovesChanged{Remaining: 25})
	k.Notify(dots.GameOver{FinalScore: 14, Reason: dots.ReasonNoMoves})

	assert.Equal(t, 14, k.Best())
	assert.True(t, k.NewBest())

	top := k.Top(10)
	require.Len(t, top, 1)
	assert.Equal(t, 5, top[0].MovesUsed)
	assert.Equal(t, "6x6", top[0].Board)

	k.Notify(dots.SessionReset{GridSize: 6, Moves: 30})
	assert.False(t, k.NewBest())

	k.Notify(dots.GameOver{FinalScore: 9, Reason: dots.ReasonMovesExhausted})
	assert.Equal(t, 14, k.Best())
	assert.False(t, k.NewBest())
	assert.Len(t, k.Top(10), 2)
	assert.Len(t, k.Top(1), 1)
}

func TestScoreKeeperLoadsBestAndSkipsZero(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreRecord{Board: "6x6", Score: 50})
	require.NoError(t, err)

	k := newScoreKeeper(store, log.New(io.Discard), "s2", dots.DefaultSettings())
	assert.Equal(t, 50, k.Best())

	k.Notify(dots.GameOver{FinalScore: 0, Reason: dots.ReasonNoMoves})
	scores, err := store.TopScores("6x6", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1, "zero scores are not saved")
}
