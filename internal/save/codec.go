// Package save round-trips player state through a checksummed, base64
// encoded record and guards every load behind integrity and bounds checks.
package save

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chamber/internal/player"
)

var (
	// ErrCorrupt covers undecodable blobs and checksum mismatches. Both are
	// treated as tampering; nothing is repaired silently.
	ErrCorrupt = errors.New("save data corrupt or tampered")
	// ErrInvalidData means the record decoded cleanly but a field violates
	// its declared bounds. An internally consistent record with a freshly
	// recomputed checksum is still rejected on policy.
	ErrInvalidData = errors.New("save data out of bounds")
)

// record is the persisted schema. Fields are declared in ascending key order
// so json.Marshal output doubles as the canonical form for checksumming.
// The checksum field itself is omitted from the canonical form via omitempty.
type record struct {
	AchievementsUnlocked []int   `json:"achievements_unlocked"`
	Balance              int64   `json:"balance"`
	Checksum             string  `json:"checksum,omitempty"`
	CloudSyncEnabled     bool    `json:"cloud_sync_enabled"`
	GamesPlayed          int64   `json:"games_played"`
	LastSaveTime         float64 `json:"last_save_time"`
	Level                int64   `json:"level"`
	MaxWinStreak         int64   `json:"max_win_streak"`
	JackpotPool          int64   `json:"progressive_jackpot_amount"`
	TotalLosses          int64   `json:"total_losses"`
	TotalWinnings        int64   `json:"total_winnings"`
	WinStreak            int64   `json:"win_streak"`
	XP                   int64   `json:"xp"`
	XPToLevel            int64   `json:"xp_to_level"`
}

// defaultRecord carries the first-run values; absent keys in an incoming
// blob default-fill from here, so every field is present post-decode.
func defaultRecord() record {
	return record{
		AchievementsUnlocked: []int{},
		Balance:              player.StartBalance,
		Level:                1,
		JackpotPool:          player.JackpotBase,
		XPToLevel:            player.StartXPToLevel,
	}
}

// checksum hashes the canonical (checksum-free) serialization of r.
func checksum(r record) string {
	r.Checksum = ""
	canonical, err := json.Marshal(r)
	if err != nil {
		// record contains only marshalable field types
		panic(err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// Encode serializes state into the text-safe save blob.
func Encode(s *player.State, now time.Time) string {
	r := record{
		AchievementsUnlocked: append([]int{}, s.AchievementsUnlocked...),
		Balance:              s.Balance,
		CloudSyncEnabled:     s.CloudSyncEnabled,
		GamesPlayed:          s.GamesPlayed,
		LastSaveTime:         float64(now.UnixNano()) / 1e9,
		Level:                s.Level,
		MaxWinStreak:         s.MaxWinStreak,
		JackpotPool:          s.JackpotPool,
		TotalLosses:          s.TotalLosses,
		TotalWinnings:        s.TotalWinnings,
		WinStreak:            s.WinStreak,
		XP:                   s.XP,
		XPToLevel:            s.XPToLevel,
	}
	r.Checksum = checksum(r)

	payload, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(payload)
}

// Decode validates and reconstructs state from a save blob. The checksum
// must match exactly and every numeric field must sit inside its bounds;
// any failure rejects the whole load and the caller's state stays untouched.
func Decode(blob string) (*player.State, error) {
	payload, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	r := defaultRecord()
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if r.Checksum == "" || r.Checksum != checksum(r) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	s := &player.State{
		Balance:              r.Balance,
		XP:                   r.XP,
		Level:                r.Level,
		XPToLevel:            r.XPToLevel,
		GamesPlayed:          r.GamesPlayed,
		TotalWinnings:        r.TotalWinnings,
		TotalLosses:          r.TotalLosses,
		WinStreak:            r.WinStreak,
		MaxWinStreak:         r.MaxWinStreak,
		JackpotPool:          r.JackpotPool,
		AchievementsUnlocked: append([]int{}, r.AchievementsUnlocked...),
		CloudSyncEnabled:     r.CloudSyncEnabled,
		// Session bookkeeping restarts on load.
		LastResult:          player.ResultNone,
		SessionStartBalance: r.Balance,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return s, nil
}
