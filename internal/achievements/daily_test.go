package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamber/internal/player"
)

type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) IntN(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i]
	s.i++
	return v % n
}

var day0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// A zeroed source always takes the head of the pool, yielding the
// win-streak, bet-size and level challenges in that order.
func newZeroBoard() *Board {
	return NewBoard(&scriptedSource{}, day0)
}

func TestNewBoardDrawsThreeDistinct(t *testing.T) {
	b := newZeroBoard()
	cs := b.Challenges()
	require.Len(t, cs, 3)

	assert.Equal(t, ChallengeWinStreak, cs[0].Type)
	assert.Equal(t, ChallengeBetSize, cs[1].Type)
	assert.Equal(t, ChallengeLevel, cs[2].Type)
}

func TestRotate(t *testing.T) {
	b := newZeroBoard()
	assert.False(t, b.Rotate(day0.Add(2*time.Hour)), "same day keeps the board")

	b.CheckCompletion(player.NewState(), ChallengeWinStreak, 3)
	require.NotEmpty(t, b.Unclaimed())

	assert.True(t, b.Rotate(day0.Add(24*time.Hour)))
	assert.Empty(t, b.Unclaimed(), "rotation discards unclaimed rewards")
	assert.Len(t, b.Challenges(), 3)
}

func TestCheckCompletionThreshold(t *testing.T) {
	b := newZeroBoard()
	s := player.NewState()

	assert.Empty(t, b.CheckCompletion(s, ChallengeWinStreak, 2))

	done := b.CheckCompletion(s, ChallengeWinStreak, 3)
	require.Len(t, done, 1)
	assert.Equal(t, "Win 3 rounds in a row", done[0].Name)

	assert.Empty(t, b.CheckCompletion(s, ChallengeWinStreak, 5), "already completed")
}

func TestCheckCompletionStateBacked(t *testing.T) {
	b := newZeroBoard()
	s := player.NewState()
	s.Level = 4

	assert.Empty(t, b.CheckCompletion(s, ChallengeLevel, 0))

	s.Level = 5
	assert.Len(t, b.CheckCompletion(s, ChallengeLevel, 0), 1)
}

func TestCheckCompletionPlayEvent(t *testing.T) {
	// Pool index 6 is the play-double-or-nothing challenge.
	b := NewBoard(&scriptedSource{vals: []int{6}}, day0)
	s := player.NewState()

	done := b.CheckCompletion(s, ChallengePlayDouble, 1)
	require.Len(t, done, 1)
	assert.Equal(t, ChallengePlayDouble, done[0].Type)
}

func TestGamesWonNeverCompletes(t *testing.T) {
	// Pool index 4 is the win-5-rounds challenge, which has no trigger.
	b := NewBoard(&scriptedSource{vals: []int{4}}, day0)
	s := player.NewState()

	assert.Empty(t, b.CheckCompletion(s, ChallengeGamesWon, 1_000_000))
}

func TestClaimCreditsAllAtOnce(t *testing.T) {
	b := newZeroBoard()
	s := player.NewState()

	b.CheckCompletion(s, ChallengeWinStreak, 3)  // reward 500
	b.CheckCompletion(s, ChallengeBetSize, 1000) // reward 300
	require.Len(t, b.Unclaimed(), 2)

	total := b.Claim(s)
	assert.Equal(t, int64(800), total)
	assert.Equal(t, player.StartBalance+800, s.Balance)
	assert.Empty(t, b.Unclaimed())

	assert.Equal(t, int64(0), b.Claim(s), "nothing left to claim")
	assert.Equal(t, player.StartBalance+800, s.Balance)
}

func TestChallengesReturnsCopy(t *testing.T) {
	b := newZeroBoard()
	cs := b.Challenges()
	cs[0].Completed = true

	assert.False(t, b.Challenges()[0].Completed)
}
