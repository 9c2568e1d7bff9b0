// Package games implements the wager resolvers: each mode takes a validated
// bet and a player choice, draws one unpredictable outcome and reports a
// structured result for the progression engine to apply.
package games

import (
	"errors"
	"sort"

	"chamber/internal/player"
)

// Mode identifies a mini-game. The closed set replaces the original menu's
// stringly-typed dispatch.
type Mode string

const (
	ModeRoulette        Mode = "roulette"
	ModeCoinFlip        Mode = "coin_flip"
	ModeDoubleOrNothing Mode = "double_or_nothing"
	ModeJackpot         Mode = "progressive_jackpot"
	ModeBonus           Mode = "bonus_round"
)

var (
	ErrUnknownMode     = errors.New("unknown game mode")
	ErrInvalidBet      = errors.New("bet must be positive")
	ErrInsufficientBet = errors.New("bet exceeds balance")
	ErrBetCapExceeded  = errors.New("bet exceeds half of balance")
	ErrInvalidChoice   = errors.New("choice out of range")
	ErrRoundFinished   = errors.New("bonus round already finished")
	ErrNoAttemptsLeft  = errors.New("no attempts left")
)

// Resolver evaluates one round. Implementations read state (balance for
// validation, the jackpot pool) but never mutate it; all mutation happens in
// the progression engine.
type Resolver interface {
	Mode() Mode
	Resolve(s *player.State, bet int64, choice int) (player.RoundOutcome, error)
}

var registry = map[Mode]func(Source) Resolver{
	ModeRoulette:        func(src Source) Resolver { return &Roulette{src: src} },
	ModeCoinFlip:        func(src Source) Resolver { return &CoinFlip{src: src} },
	ModeDoubleOrNothing: func(src Source) Resolver { return &DoubleOrNothing{src: src} },
	ModeJackpot:         func(src Source) Resolver { return &Jackpot{src: src} },
}

// New builds the resolver for mode around the given draw source.
func New(mode Mode, src Source) (Resolver, error) {
	ctor, ok := registry[mode]
	if !ok {
		return nil, ErrUnknownMode
	}
	return ctor(src), nil
}

// All builds every registered resolver, keyed by mode.
func All(src Source) map[Mode]Resolver {
	out := make(map[Mode]Resolver, len(registry))
	for mode, ctor := range registry {
		out[mode] = ctor(src)
	}
	return out
}

// Modes lists the registered wager modes in stable order.
func Modes() []Mode {
	names := make([]Mode, 0, len(registry))
	for m := range registry {
		names = append(names, m)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// validateBet enforces the shared bet rules. Failures are prompts to retry,
// never round outcomes.
func validateBet(balance, bet int64) error {
	if bet <= 0 {
		return ErrInvalidBet
	}
	if bet > balance {
		return ErrInsufficientBet
	}
	return nil
}
