// Package session orchestrates one single-threaded game session: each round
// flows resolver, progression, anti-cheat, achievements, challenges,
// auto-save, audit trail and event emission, strictly in that order.
package session

import (
	"log/slog"
	"time"

	"chamber/internal/achievements"
	"chamber/internal/config"
	"chamber/internal/events"
	"chamber/internal/games"
	"chamber/internal/history"
	"chamber/internal/player"
	"chamber/internal/save"
	"chamber/internal/shop"
)

// big-bet threshold that triggers the bet_size daily challenge check
const challengeBetThreshold = 1000

// RoundReport is what one resolved round looked like to the player: the raw
// outcome plus everything the pipeline unlocked along the way.
type RoundReport struct {
	Outcome             player.RoundOutcome
	LevelsGained        int
	UnlockedAchievement []achievements.Achievement
	CompletedChallenges []achievements.Challenge
	AntiCheatFlags      []string
	Saved               bool
}

// Session wires the components around a single PlayerState. All wagering
// mutation funnels through here; external consumers only ever see value
// snapshots.
type Session struct {
	State    *player.State
	Settings config.Settings

	resolvers map[games.Mode]games.Resolver
	bonus     *games.Bonus
	evaluator *achievements.Evaluator
	board     *achievements.Board
	store     *save.FileStore
	history   *history.Store  // optional
	emitter   *events.Emitter // optional, nil-safe
	log       *slog.Logger

	stipendNotified bool
}

type Options struct {
	Source   games.Source
	Settings config.Settings
	Store    *save.FileStore
	History  *history.Store
	Emitter  *events.Emitter
	Log      *slog.Logger
}

func New(opts Options) *Session {
	src := opts.Source
	if src == nil {
		src = games.CryptoSource{}
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		State:     player.NewState(),
		Settings:  opts.Settings,
		resolvers: games.All(src),
		bonus:     games.NewBonus(src),
		evaluator: achievements.NewEvaluator(log),
		board:     achievements.NewBoard(src, time.Now()),
		store:     opts.Store,
		history:   opts.History,
		emitter:   opts.Emitter,
		log:       log,
	}
}

// EnsureStake tops a broke player up with the stipend. The notice fires only
// the first time per session.
func (s *Session) EnsureStake() (granted, notify bool) {
	if !s.State.EnsureStake() {
		return false, false
	}
	notify = !s.stipendNotified
	s.stipendNotified = true
	return true, notify
}

// Play resolves one wager round and runs the full post-round pipeline.
// Validation errors surface untouched so the caller can re-prompt; they are
// not round outcomes and change nothing.
func (s *Session) Play(mode games.Mode, bet int64, choice int) (RoundReport, error) {
	r, ok := s.resolvers[mode]
	if !ok {
		return RoundReport{}, games.ErrUnknownMode
	}
	outcome, err := r.Resolve(s.State, bet, choice)
	if err != nil {
		return RoundReport{}, err
	}
	return s.applyRound(outcome), nil
}

// StartBonus opens a bonus round; finish it with FinishBonus.
func (s *Session) StartBonus() *games.BonusRound {
	return s.bonus.Start()
}

// FinishBonus applies a completed bonus round through the same pipeline as
// the wager games.
func (s *Session) FinishBonus(r *games.BonusRound) RoundReport {
	return s.applyRound(r.Outcome())
}

func (s *Session) applyRound(o player.RoundOutcome) RoundReport {
	st := s.State
	levelBefore := st.Level
	st.ApplyRound(o)

	report := RoundReport{Outcome: o}
	report.LevelsGained = int(st.Level - levelBefore)
	report.AntiCheatFlags = player.Inspect(s.log, st)
	report.UnlockedAchievement = s.evaluator.Check(st)
	report.CompletedChallenges = s.checkRoundChallenges(o)

	if s.Settings.AutoSaveEnabled && s.store != nil {
		if err := s.store.Save(st); err == nil {
			report.Saved = true
		}
	}

	if s.history != nil {
		if err := s.history.Append(o, st.Balance, time.Now().Unix()); err != nil {
			s.log.Warn("history append failed", "err", err)
		}
	}
	if err := s.emitter.EmitRound(o, st.Snapshot()); err != nil {
		s.log.Warn("round event emit failed", "err", err)
	}

	return report
}

// checkRoundChallenges fires the per-round challenge triggers the way the
// game always has: play counters unconditionally, thresholds only once the
// relevant stat crosses a floor.
func (s *Session) checkRoundChallenges(o player.RoundOutcome) []achievements.Challenge {
	s.board.Rotate(time.Now())
	st := s.State

	var done []achievements.Challenge
	done = append(done, s.board.CheckCompletion(st, achievements.ChallengeGamesPlayed, st.GamesPlayed)...)
	if o.Bet >= challengeBetThreshold {
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengeBetSize, o.Bet)...)
	}
	if st.WinStreak >= 3 {
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengeWinStreak, st.WinStreak)...)
	}
	if st.XP >= 1000 {
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengeXPCollected, st.XP)...)
	}
	if st.Level >= 5 {
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengeLevel, st.Level)...)
	}

	switch games.Mode(o.Mode) {
	case games.ModeDoubleOrNothing:
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengePlayDouble, 1)...)
	case games.ModeCoinFlip:
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengePlayCoin, 1)...)
	case games.ModeBonus:
		done = append(done, s.board.CheckCompletion(st, achievements.ChallengePlayBonus, 1)...)
	case games.ModeJackpot:
		if o.Result == player.ResultJackpotWin {
			done = append(done, s.board.CheckCompletion(st, achievements.ChallengePlayJackpot, 1)...)
		}
	}
	return done
}

// VisitShop registers a shop visit for the daily board and returns the
// catalog.
func (s *Session) VisitShop() ([]shop.Item, []achievements.Challenge) {
	s.board.Rotate(time.Now())
	done := s.board.CheckCompletion(s.State, achievements.ChallengeVisitShop, 1)
	return shop.Catalog(), done
}

// Purchase debits a shop item.
func (s *Session) Purchase(id int) (shop.Item, error) {
	return shop.Purchase(s.State, id)
}

// Challenges returns today's board, rotating it first if the date changed.
func (s *Session) Challenges() []achievements.Challenge {
	s.board.Rotate(time.Now())
	return s.board.Challenges()
}

// ClaimChallengeRewards credits all completed-but-unclaimed rewards at once.
func (s *Session) ClaimChallengeRewards() int64 {
	s.board.Rotate(time.Now())
	return s.board.Claim(s.State)
}

// Achievements exposes the catalog with unlock status for display.
func (s *Session) Achievements() ([]achievements.Achievement, map[int]bool) {
	status := make(map[int]bool)
	for _, a := range s.evaluator.Catalog() {
		status[a.ID] = s.evaluator.Unlocked(a.ID)
	}
	return s.evaluator.Catalog(), status
}

// SaveNow persists the current state explicitly.
func (s *Session) SaveNow() error {
	if s.store == nil {
		return nil
	}
	return s.store.Save(s.State)
}

// LoadNow attempts to replace the session state from disk. Anything short
// of LoadApplied leaves the current state untouched.
func (s *Session) LoadNow() save.LoadResult {
	if s.store == nil {
		return save.LoadResult{Status: save.LoadNotFound}
	}
	res := s.store.Load()
	if res.Status != save.LoadApplied {
		return res
	}
	s.State = res.State
	s.evaluator.SyncUnlocked(res.State.AchievementsUnlocked)
	if err := s.emitter.EmitSnapshot(s.State.Snapshot()); err != nil {
		s.log.Warn("snapshot emit failed", "err", err)
	}
	return res
}

// Snapshot hands external consumers a value copy of the state.
func (s *Session) Snapshot() player.State {
	return s.State.Snapshot()
}

// Close flushes optional resources.
func (s *Session) Close() {
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			s.log.Warn("history close failed", "err", err)
		}
	}
	s.emitter.Close()
}
