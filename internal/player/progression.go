package player

// RoundOutcome is the structured result a wager resolver hands to the
// progression engine. BalanceDelta is the raw signed change before clamping;
// Winnings/Loss feed the lifetime counters and may differ from the delta
// (the jackpot stakes the bet and pays the pool in the same round).
type RoundOutcome struct {
	Mode   string
	Result Result
	Win    bool

	Bet          int64
	BalanceDelta int64
	XPGain       int64
	Winnings     int64
	Loss         int64

	// Drawn is the value the random source produced, kept for display and
	// the audit trail.
	Drawn int

	// PoolAfter carries the progressive jackpot pool after this round.
	// Negative means the round did not touch the pool.
	PoolAfter int64
}

// ApplyRound folds one resolved outcome into the state: balance and XP with
// immediate clamping, lifetime counters, streak bookkeeping and the last
// result tag, then resolves any pending level-ups.
func (s *State) ApplyRound(o RoundOutcome) {
	s.Balance = clamp(s.Balance+o.BalanceDelta, 0, MaxBalance)
	s.XP = clamp(s.XP+o.XPGain, 0, MaxXP)
	s.GamesPlayed++

	if o.PoolAfter >= 0 {
		s.JackpotPool = o.PoolAfter
	}

	switch o.Result {
	case ResultWin, ResultJackpotWin:
		s.TotalWinnings += o.Winnings
		s.WinStreak++
		s.LastResult = o.Result
	case ResultLoss, ResultJackpotLoss:
		s.TotalLosses += o.Loss
		// The high-water mark is recorded lazily, at the moment the streak
		// breaks; WinStreak > MaxWinStreak is legal mid-streak.
		if s.WinStreak > s.MaxWinStreak {
			s.MaxWinStreak = s.WinStreak
		}
		s.WinStreak = 0
		s.LastResult = o.Result
	default:
		// Free rounds (bonus) count as played but leave streaks, lifetime
		// totals and the last result untouched.
	}

	s.ResolveLevelUps()
}

// ResolveLevelUps consumes XP into levels until the threshold no longer
// passes or the level cap is reached. The threshold grows by half, floored,
// per level. Re-invoking after it returns is a no-op, and excess XP at the
// cap stays put (already clamped to MaxXP).
func (s *State) ResolveLevelUps() int {
	gained := 0
	for s.XP >= s.XPToLevel && s.Level < MaxLevel {
		s.XP -= s.XPToLevel
		s.Level++
		gained++
		s.XPToLevel = clamp(s.XPToLevel*3/2, MinXPToLevel, MaxXPToLevel)
	}
	return gained
}
