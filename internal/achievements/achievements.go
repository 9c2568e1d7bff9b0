// Package achievements evaluates one-shot achievement unlocks and the
// rotating daily challenge board against player state.
package achievements

import (
	"log/slog"
	"sort"

	"chamber/internal/player"
)

// Achievement is a catalog entry. Predicate is evaluated against the current
// state; entries with a nil predicate exist in the catalog but are never
// unlocked automatically (their triggers were never wired in the original
// game and are intentionally left that way).
type Achievement struct {
	ID          int
	Name        string
	Description string
	Reward      int64
	Predicate   func(*player.State) bool
}

// Catalog returns the fixed achievement set. Read-mostly configuration; the
// evaluator tracks the unlocked flags separately.
func Catalog() []Achievement {
	return []Achievement{
		{ID: 1, Name: "First Steps", Description: "Reach level 5", Reward: 100,
			Predicate: func(s *player.State) bool { return s.Level >= 5 }},
		{ID: 2, Name: "Lucky Streak", Description: "Win 5 rounds in a row", Reward: 200,
			Predicate: func(s *player.State) bool { return s.WinStreak >= 5 }},
		{ID: 3, Name: "Millionaire", Description: "Hold a balance of $1,000,000", Reward: 500,
			Predicate: func(s *player.State) bool { return s.Balance >= 1_000_000 }},
		{ID: 4, Name: "High Roller", Description: "Play 100 rounds", Reward: 300,
			Predicate: func(s *player.State) bool { return s.GamesPlayed >= 100 }},
		{ID: 5, Name: "Jackpot", Description: "Win the progressive jackpot", Reward: 1000,
			Predicate: func(s *player.State) bool { return s.LastResult == player.ResultJackpotWin }},
		{ID: 6, Name: "Marathoner", Description: "Play for 10 hours straight", Reward: 750},
		{ID: 7, Name: "Explorer", Description: "Visit every game mode", Reward: 400},
		{ID: 8, Name: "Tycoon", Description: "Spend $10,000 in the shop", Reward: 600},
	}
}

// Evaluator owns the unlocked set and credits rewards exactly once.
type Evaluator struct {
	catalog  []Achievement
	unlocked map[int]bool
	log      *slog.Logger
}

func NewEvaluator(log *slog.Logger) *Evaluator {
	return &Evaluator{
		catalog:  Catalog(),
		unlocked: make(map[int]bool),
		log:      log,
	}
}

// SyncUnlocked replaces the unlocked set, typically after a save load.
// Unknown IDs are ignored rather than rejected; the save codec has already
// bounds-checked the record.
func (e *Evaluator) SyncUnlocked(ids []int) {
	e.unlocked = make(map[int]bool, len(ids))
	for _, a := range e.catalog {
		for _, id := range ids {
			if a.ID == id {
				e.unlocked[id] = true
			}
		}
	}
}

// UnlockedIDs returns the unlocked set in ascending order, the persisted
// representation.
func (e *Evaluator) UnlockedIDs() []int {
	ids := make([]int, 0, len(e.unlocked))
	for id := range e.unlocked {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Catalog exposes the entries with their unlock status for display.
func (e *Evaluator) Catalog() []Achievement {
	return append([]Achievement(nil), e.catalog...)
}

// Unlocked reports whether the achievement with id is unlocked.
func (e *Evaluator) Unlocked(id int) bool {
	return e.unlocked[id]
}

// Check evaluates every locked predicate against the state. First
// satisfaction marks the entry unlocked, credits its reward to the balance
// and returns it; re-checking never fires twice.
func (e *Evaluator) Check(s *player.State) []Achievement {
	var newly []Achievement
	for _, a := range e.catalog {
		if e.unlocked[a.ID] || a.Predicate == nil {
			continue
		}
		if !a.Predicate(s) {
			continue
		}
		e.unlocked[a.ID] = true
		s.Credit(a.Reward)
		newly = append(newly, a)
		e.log.Info("achievement unlocked",
			"id", a.ID, "name", a.Name, "reward", a.Reward)
	}
	if newly != nil {
		s.AchievementsUnlocked = e.UnlockedIDs()
	}
	return newly
}
