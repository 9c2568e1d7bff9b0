package achievements

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamber/internal/player"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckUnlocksOnce(t *testing.T) {
	e := NewEvaluator(testLogger())
	s := player.NewState()
	s.Level = 5

	newly := e.Check(s)
	require.Len(t, newly, 1)
	assert.Equal(t, 1, newly[0].ID)
	assert.Equal(t, player.StartBalance+100, s.Balance, "reward credited")
	assert.Equal(t, []int{1}, s.AchievementsUnlocked)

	assert.Empty(t, e.Check(s), "satisfied predicates never fire twice")
	assert.Equal(t, player.StartBalance+100, s.Balance)
}

func TestCheckUnlocksMultiple(t *testing.T) {
	e := NewEvaluator(testLogger())
	s := player.NewState()
	s.Level = 5
	s.WinStreak = 5

	newly := e.Check(s)
	require.Len(t, newly, 2)
	assert.Equal(t, []int{1, 2}, s.AchievementsUnlocked)
	assert.Equal(t, player.StartBalance+100+200, s.Balance)
}

func TestCheckJackpotAchievement(t *testing.T) {
	e := NewEvaluator(testLogger())
	s := player.NewState()
	s.LastResult = player.ResultJackpotWin

	newly := e.Check(s)
	require.Len(t, newly, 1)
	assert.Equal(t, 5, newly[0].ID)
}

// Catalog entries without predicates are visible but never auto-unlock.
func TestCheckSkipsUnwiredEntries(t *testing.T) {
	e := NewEvaluator(testLogger())
	s := player.NewState()
	s.Balance = player.MaxBalance
	s.Level = player.MaxLevel
	s.GamesPlayed = 1_000_000
	s.WinStreak = 100
	s.LastResult = player.ResultJackpotWin

	e.Check(s)
	for _, id := range []int{6, 7, 8} {
		assert.False(t, e.Unlocked(id))
	}
}

func TestSyncUnlocked(t *testing.T) {
	e := NewEvaluator(testLogger())
	e.SyncUnlocked([]int{2, 4, 99})

	assert.True(t, e.Unlocked(2))
	assert.True(t, e.Unlocked(4))
	assert.False(t, e.Unlocked(99), "unknown ids are dropped")
	assert.Equal(t, []int{2, 4}, e.UnlockedIDs())
}

func TestSyncedAchievementDoesNotRefire(t *testing.T) {
	e := NewEvaluator(testLogger())
	e.SyncUnlocked([]int{1})

	s := player.NewState()
	s.Level = 5
	assert.Empty(t, e.Check(s))
	assert.Equal(t, player.StartBalance, s.Balance)
}
