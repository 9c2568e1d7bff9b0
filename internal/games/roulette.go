package games

import "chamber/internal/player"

const (
	rouletteChambers = 10
	rouletteWinXP    = 10
	rouletteLossXP   = 5
)

// Roulette is the fixed-odds pick: ten chambers, one loaded. Matching the
// drawn chamber means the bullet fired, a loss. Any other chamber is
// survival, paying double the bet.
type Roulette struct {
	src Source
}

func (g *Roulette) Mode() Mode { return ModeRoulette }

func (g *Roulette) Resolve(s *player.State, bet int64, choice int) (player.RoundOutcome, error) {
	if err := validateBet(s.Balance, bet); err != nil {
		return player.RoundOutcome{}, err
	}
	// Half-of-balance cap, unique to this mode, to slow down inflation.
	if bet*2 > s.Balance {
		return player.RoundOutcome{}, ErrBetCapExceeded
	}
	if choice < 1 || choice > rouletteChambers {
		return player.RoundOutcome{}, ErrInvalidChoice
	}

	drawn := g.src.IntN(rouletteChambers) + 1

	o := player.RoundOutcome{
		Mode:      string(ModeRoulette),
		Bet:       bet,
		Drawn:     drawn,
		PoolAfter: -1,
	}
	if choice == drawn {
		o.Result = player.ResultLoss
		o.BalanceDelta = -bet
		o.Loss = bet
		o.XPGain = rouletteLossXP
		return o, nil
	}
	o.Result = player.ResultWin
	o.Win = true
	o.Winnings = bet * 2
	o.BalanceDelta = bet * 2
	o.XPGain = rouletteWinXP
	return o, nil
}
