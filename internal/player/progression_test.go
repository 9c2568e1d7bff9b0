package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func win(amount int64) RoundOutcome {
	return RoundOutcome{
		Result:       ResultWin,
		Win:          true,
		Bet:          amount,
		BalanceDelta: amount * 2,
		Winnings:     amount * 2,
		PoolAfter:    -1,
	}
}

func loss(amount int64) RoundOutcome {
	return RoundOutcome{
		Result:       ResultLoss,
		Bet:          amount,
		BalanceDelta: -amount,
		Loss:         amount,
		PoolAfter:    -1,
	}
}

func TestApplyRoundWin(t *testing.T) {
	s := NewState()
	s.ApplyRound(win(10))

	assert.Equal(t, int64(120), s.Balance)
	assert.Equal(t, int64(1), s.GamesPlayed)
	assert.Equal(t, int64(20), s.TotalWinnings)
	assert.Equal(t, int64(1), s.WinStreak)
	assert.Equal(t, ResultWin, s.LastResult)
}

func TestApplyRoundLoss(t *testing.T) {
	s := NewState()
	s.ApplyRound(loss(10))

	assert.Equal(t, int64(90), s.Balance)
	assert.Equal(t, int64(10), s.TotalLosses)
	assert.Equal(t, int64(0), s.WinStreak)
	assert.Equal(t, ResultLoss, s.LastResult)
}

// The high-water mark is written only when a streak breaks, so a live streak
// can exceed it.
func TestStreakHighWaterMarkIsLazy(t *testing.T) {
	s := NewState()

	s.ApplyRound(win(1))
	s.ApplyRound(win(1))
	assert.Equal(t, int64(2), s.WinStreak)
	assert.Equal(t, int64(0), s.MaxWinStreak, "mid-streak the mark stays behind")

	s.ApplyRound(loss(1))
	assert.Equal(t, int64(0), s.WinStreak)
	assert.Equal(t, int64(2), s.MaxWinStreak)

	s.ApplyRound(win(1))
	assert.Equal(t, int64(1), s.WinStreak)
	assert.Equal(t, int64(2), s.MaxWinStreak)
}

func TestApplyRoundFreeRound(t *testing.T) {
	s := NewState()
	s.ApplyRound(win(10))

	s.ApplyRound(RoundOutcome{
		Result:       ResultNone,
		Win:          true,
		BalanceDelta: 500,
		XPGain:       25,
		PoolAfter:    -1,
	})

	assert.Equal(t, int64(2), s.GamesPlayed)
	assert.Equal(t, int64(1), s.WinStreak, "free rounds never touch the streak")
	assert.Equal(t, ResultWin, s.LastResult)
	assert.Equal(t, int64(20), s.TotalWinnings)
}

func TestApplyRoundPool(t *testing.T) {
	s := NewState()

	o := loss(10)
	o.Result = ResultJackpotLoss
	o.PoolAfter = 110
	s.ApplyRound(o)
	assert.Equal(t, int64(110), s.JackpotPool)

	s.ApplyRound(win(10))
	assert.Equal(t, int64(110), s.JackpotPool, "negative PoolAfter leaves the pool alone")
}

func TestApplyRoundBalanceNeverNegative(t *testing.T) {
	s := NewState()
	s.Balance = 5
	s.ApplyRound(loss(10))
	assert.Equal(t, int64(0), s.Balance)
}

func TestLevelUpAtThreshold(t *testing.T) {
	s := NewState()
	s.XP = 95

	o := win(10)
	o.XPGain = 10
	s.ApplyRound(o)

	assert.Equal(t, int64(2), s.Level)
	assert.Equal(t, int64(5), s.XP, "excess carries into the new level")
	assert.Equal(t, int64(150), s.XPToLevel)
}

func TestMultipleLevelUpsInOneRound(t *testing.T) {
	s := NewState()

	o := win(10)
	o.XPGain = 260
	s.ApplyRound(o)

	// 260 pays 100 into level 2 and 150 into level 3.
	assert.Equal(t, int64(3), s.Level)
	assert.Equal(t, int64(10), s.XP)
	assert.Equal(t, int64(225), s.XPToLevel)
}

func TestThresholdGrowthIsFloored(t *testing.T) {
	s := NewState()
	s.XPToLevel = 101
	s.XP = 101

	s.ResolveLevelUps()
	assert.Equal(t, int64(151), s.XPToLevel)
}

func TestThresholdClampedToCap(t *testing.T) {
	s := NewState()
	s.XPToLevel = MaxXPToLevel
	s.XP = MaxXP

	s.ResolveLevelUps()
	assert.Equal(t, MaxXPToLevel, s.XPToLevel)
}

func TestNoLevelUpAtLevelCap(t *testing.T) {
	s := NewState()
	s.Level = MaxLevel
	s.XP = 500

	gained := s.ResolveLevelUps()
	assert.Equal(t, 0, gained)
	assert.Equal(t, MaxLevel, s.Level)
	assert.Equal(t, int64(500), s.XP, "excess XP at the cap stays put")
}

func TestResolveLevelUpsIdempotent(t *testing.T) {
	s := NewState()
	s.XP = 120

	assert.Equal(t, 1, s.ResolveLevelUps())
	assert.Equal(t, 0, s.ResolveLevelUps())
}
