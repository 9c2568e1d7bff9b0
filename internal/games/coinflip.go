package games

import "chamber/internal/player"

// Coin face choices.
const (
	Heads = 1
	Tails = 2
)

const (
	coinFlipWinXP  = 12
	coinFlipLossXP = 2
)

// CoinFlip pays double the bet when the called face lands.
type CoinFlip struct {
	src Source
}

func (g *CoinFlip) Mode() Mode { return ModeCoinFlip }

func (g *CoinFlip) Resolve(s *player.State, bet int64, choice int) (player.RoundOutcome, error) {
	if err := validateBet(s.Balance, bet); err != nil {
		return player.RoundOutcome{}, err
	}
	if choice != Heads && choice != Tails {
		return player.RoundOutcome{}, ErrInvalidChoice
	}

	drawn := g.src.IntN(2) + 1

	o := player.RoundOutcome{
		Mode:      string(ModeCoinFlip),
		Bet:       bet,
		Drawn:     drawn,
		PoolAfter: -1,
	}
	if choice == drawn {
		o.Result = player.ResultWin
		o.Win = true
		o.Winnings = bet * 2
		o.BalanceDelta = bet * 2
		o.XPGain = coinFlipWinXP
		return o, nil
	}
	o.Result = player.ResultLoss
	o.BalanceDelta = -bet
	o.Loss = bet
	o.XPGain = coinFlipLossXP
	return o, nil
}
