package player

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Anti-cheat heuristics. Best-effort anomaly telemetry, not a security
// boundary: flags are logged and returned, nothing is blocked or mutated.

const (
	suspiciousStreak = 10
	// balanceGrowthFactor flags a balance that outgrew the session start
	// a thousandfold.
	balanceGrowthFactor = 1000
	// The fixed-odds game wins 1 time in 10; winRateTolerance allows 5x
	// that rate over the recent window before flagging.
	recentWindow     = 20
	expectedWinRate  = "0.1"
	winRateTolerance = 5
	// Max XP per game is 10; xpRateTolerance doubles it to leave room for
	// level bonuses.
	maxXPPerGame    = 10
	xpRateTolerance = 2
)

// Inspect reviews the state after a round and reports implausible patterns.
func Inspect(log *slog.Logger, s *State) []string {
	var flags []string

	if s.WinStreak > suspiciousStreak {
		flags = append(flags, "win_streak")
		log.Warn("suspicious win streak", "streak", s.WinStreak)
	}

	if s.SessionStartBalance > 0 && s.Balance > s.SessionStartBalance*balanceGrowthFactor {
		flags = append(flags, "balance_growth")
		log.Warn("suspicious balance growth",
			"balance", s.Balance, "session_start", s.SessionStartBalance)
	}

	if s.GamesPlayed >= recentWindow {
		recent := s.GamesPlayed
		if recent > recentWindow {
			recent = recentWindow
		}
		expectedWins := decimal.NewFromInt(recent).
			Mul(decimal.RequireFromString(expectedWinRate))
		limit := expectedWins.Mul(decimal.NewFromInt(winRateTolerance))
		if decimal.NewFromInt(s.WinStreak).GreaterThan(limit) {
			flags = append(flags, "win_rate")
			log.Warn("suspicious win rate in recent games",
				"streak", s.WinStreak, "window", recent)
		}
	}

	if s.XP > s.GamesPlayed*maxXPPerGame*xpRateTolerance {
		flags = append(flags, "xp_rate")
		log.Warn("suspicious xp gain rate",
			"xp", s.XP, "games_played", s.GamesPlayed)
	}

	return flags
}
