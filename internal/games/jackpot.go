package games

import "chamber/internal/player"

const (
	jackpotRange  = 20 // draw in 0..19, only 0 pays
	jackpotWinXP  = 50
	jackpotLossXP = 5
)

// Jackpot is the progressive pool game. The bet joins the pool before the
// draw, so a winning round pays out its own stake as part of the pool.
type Jackpot struct {
	src Source
}

func (g *Jackpot) Mode() Mode { return ModeJackpot }

// Resolve ignores choice; the jackpot has no player pick.
func (g *Jackpot) Resolve(s *player.State, bet int64, _ int) (player.RoundOutcome, error) {
	if err := validateBet(s.Balance, bet); err != nil {
		return player.RoundOutcome{}, err
	}

	pool := s.JackpotPool + bet
	drawn := g.src.IntN(jackpotRange)

	o := player.RoundOutcome{
		Mode:  string(ModeJackpot),
		Bet:   bet,
		Drawn: drawn,
	}
	if drawn == 0 {
		o.Result = player.ResultJackpotWin
		o.Win = true
		o.Winnings = pool
		o.BalanceDelta = pool - bet
		o.XPGain = jackpotWinXP
		o.PoolAfter = player.JackpotBase
		return o, nil
	}
	o.Result = player.ResultJackpotLoss
	o.BalanceDelta = -bet
	o.Loss = bet
	o.XPGain = jackpotLossXP
	o.PoolAfter = pool
	return o, nil
}
