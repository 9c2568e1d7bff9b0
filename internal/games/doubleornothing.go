package games

import "chamber/internal/player"

const (
	doubleOrNothingWinXP  = 15
	doubleOrNothingLossXP = 3
)

// DoubleOrNothing is the 1-in-2 call: guess the drawn number and the bet
// doubles, miss and it's gone. Riskier framing earns the highest per-round
// XP of the binary games.
type DoubleOrNothing struct {
	src Source
}

func (g *DoubleOrNothing) Mode() Mode { return ModeDoubleOrNothing }

func (g *DoubleOrNothing) Resolve(s *player.State, bet int64, choice int) (player.RoundOutcome, error) {
	if err := validateBet(s.Balance, bet); err != nil {
		return player.RoundOutcome{}, err
	}
	if choice != 1 && choice != 2 {
		return player.RoundOutcome{}, ErrInvalidChoice
	}

	drawn := g.src.IntN(2) + 1

	o := player.RoundOutcome{
		Mode:      string(ModeDoubleOrNothing),
		Bet:       bet,
		Drawn:     drawn,
		PoolAfter: -1,
	}
	if choice == drawn {
		o.Result = player.ResultWin
		o.Win = true
		o.Winnings = bet * 2
		o.BalanceDelta = bet * 2
		o.XPGain = doubleOrNothingWinXP
		return o, nil
	}
	o.Result = player.ResultLoss
	o.BalanceDelta = -bet
	o.Loss = bet
	o.XPGain = doubleOrNothingLossXP
	return o, nil
}
