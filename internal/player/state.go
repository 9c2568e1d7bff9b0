// Package player owns the progression state machine: balance, experience,
// levels, streak bookkeeping and the caps that keep all of them plausible.
package player

import (
	"errors"
	"fmt"
)

// Result tags the last resolved round outcome.
type Result string

const (
	ResultNone        Result = "none"
	ResultWin         Result = "win"
	ResultLoss        Result = "loss"
	ResultJackpotWin  Result = "jackpot_win"
	ResultJackpotLoss Result = "jackpot_loss"
)

const (
	MaxBalance   int64 = 1_000_000_000
	MaxXP        int64 = 1_000_000_000
	MaxLevel     int64 = 10_000
	MaxXPToLevel int64 = 1_000_000_000
	MinXPToLevel int64 = 100

	// StartBalance and StartXPToLevel are the first-run defaults.
	StartBalance   int64 = 100
	StartXPToLevel int64 = 100

	// JackpotBase is the progressive pool's floor; the pool resets to it
	// after every jackpot win.
	JackpotBase int64 = 100

	// Stipend is granted when the player is broke at round start.
	Stipend int64 = 10
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInsufficientFund = errors.New("insufficient funds")
)

// State is the single mutable aggregate for one player session. Components
// operate on it explicitly and hold no hidden copies of their own.
type State struct {
	Balance   int64
	XP        int64
	Level     int64
	XPToLevel int64

	GamesPlayed   int64
	TotalWinnings int64
	TotalLosses   int64

	WinStreak    int64
	MaxWinStreak int64
	LastResult   Result

	JackpotPool int64

	AchievementsUnlocked []int
	CloudSyncEnabled     bool

	// SessionStartBalance is snapshotted at init/load time and read only by
	// the anti-cheat inspector.
	SessionStartBalance int64
}

// NewState returns the first-run defaults.
func NewState() *State {
	return &State{
		Balance:             StartBalance,
		Level:               1,
		XPToLevel:           StartXPToLevel,
		LastResult:          ResultNone,
		JackpotPool:         JackpotBase,
		SessionStartBalance: StartBalance,
	}
}

// Snapshot returns a value copy safe to hand to display and sync consumers.
func (s *State) Snapshot() State {
	cp := *s
	cp.AchievementsUnlocked = append([]int(nil), s.AchievementsUnlocked...)
	return cp
}

// EnsureStake grants the broke-player stipend. Reports whether it fired so
// the caller can show the one-time notice.
func (s *State) EnsureStake() bool {
	if s.Balance > 0 {
		return false
	}
	s.Balance = Stipend
	return true
}

// Debit removes amount from the balance; used by the shop, which performs no
// game logic beyond spending currency.
func (s *State) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > s.Balance {
		return ErrInsufficientFund
	}
	s.Balance = clamp(s.Balance-amount, 0, MaxBalance)
	return nil
}

// Credit adds amount to the balance, clamped to the cap. Used for
// achievement and challenge rewards.
func (s *State) Credit(amount int64) {
	s.Balance = clamp(s.Balance+amount, 0, MaxBalance)
}

// Validate re-checks every numeric field against its declared bounds. Load
// paths must reject wholesale on any violation.
func (s *State) Validate() error {
	checks := []struct {
		name     string
		v        int64
		min, max int64
	}{
		{"balance", s.Balance, 0, MaxBalance},
		{"xp", s.XP, 0, MaxXP},
		{"level", s.Level, 1, MaxLevel},
		{"xp_to_level", s.XPToLevel, MinXPToLevel, MaxXPToLevel},
		{"games_played", s.GamesPlayed, 0, 1<<62 - 1},
		{"total_winnings", s.TotalWinnings, 0, 1<<62 - 1},
		{"total_losses", s.TotalLosses, 0, 1<<62 - 1},
		{"win_streak", s.WinStreak, 0, 1<<62 - 1},
		{"max_win_streak", s.MaxWinStreak, 0, 1<<62 - 1},
		{"progressive_jackpot_amount", s.JackpotPool, 0, 1<<62 - 1},
	}
	for _, c := range checks {
		if c.v < c.min || c.v > c.max {
			return fmt.Errorf("field %s out of range: %d", c.name, c.v)
		}
	}
	return nil
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
