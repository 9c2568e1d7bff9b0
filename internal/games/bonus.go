package games

import "chamber/internal/player"

const (
	bonusRange    = 5
	bonusAttempts = 3
	bonusBasePay  = 500
	bonusXP       = 25
)

// Hint tells the guesser where the secret lies relative to their guess.
type Hint int

const (
	HintHit Hint = iota
	HintHigher
	HintLower
)

// Bonus is the free guessing game: a secret number in 1..5, three attempts,
// higher payout for fewer guesses. No bet, no streak effect.
type Bonus struct {
	src Source
}

func NewBonus(src Source) *Bonus {
	return &Bonus{src: src}
}

// Start draws the secret and opens a round.
func (b *Bonus) Start() *BonusRound {
	return &BonusRound{
		secret:    b.src.IntN(bonusRange) + 1,
		remaining: bonusAttempts,
	}
}

// BonusRound tracks one in-flight guessing session.
type BonusRound struct {
	secret    int
	remaining int
	hit       bool
	done      bool
}

func (r *BonusRound) Remaining() int { return r.remaining }
func (r *BonusRound) Done() bool     { return r.done }
func (r *BonusRound) Secret() int    { return r.secret }

// Guess consumes one attempt and reports whether the guess hit, or which
// direction the secret lies.
func (r *BonusRound) Guess(n int) (Hint, error) {
	if r.done {
		return 0, ErrRoundFinished
	}
	if n < 1 || n > bonusRange {
		return 0, ErrInvalidChoice
	}
	if r.remaining <= 0 {
		return 0, ErrNoAttemptsLeft
	}
	r.remaining--

	switch {
	case n == r.secret:
		r.hit = true
		r.done = true
		return HintHit, nil
	case n < r.secret:
		if r.remaining == 0 {
			r.done = true
		}
		return HintHigher, nil
	default:
		if r.remaining == 0 {
			r.done = true
		}
		return HintLower, nil
	}
}

// Outcome converts the finished round into a progression outcome. Payout is
// 500 per unused attempt plus 500 for the winning one; misses pay nothing.
// The round counts as played but never breaks or extends a streak.
func (r *BonusRound) Outcome() player.RoundOutcome {
	o := player.RoundOutcome{
		Mode:      string(ModeBonus),
		Result:    player.ResultNone,
		Drawn:     r.secret,
		PoolAfter: -1,
	}
	if r.hit {
		bonus := int64(bonusBasePay * (r.remaining + 1))
		o.Win = true
		o.BalanceDelta = bonus
		o.XPGain = bonusXP
	}
	return o
}
