// Package events publishes round results and state snapshots over NATS for
// external consumers (companion displays, sync peers). Consumers get
// read-only snapshots; wagering mutations never travel this path.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"chamber/internal/player"
	"chamber/pkg/retry"
)

const (
	connectInitialInterval = 500 * time.Millisecond
	connectMaxElapsed      = 5 * time.Second
)

const (
	TypeRound    = "round"
	TypeSnapshot = "snapshot"
)

// Event is the wire envelope.
type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// RoundData describes one resolved round alongside the state it produced.
type RoundData struct {
	Mode    string `json:"mode"`
	Result  string `json:"result"`
	Bet     int64  `json:"bet"`
	Delta   int64  `json:"delta"`
	Balance int64  `json:"balance"`
	Level   int64  `json:"level"`
}

// SnapshotData is the display/sync view of player state.
type SnapshotData struct {
	Balance       int64  `json:"balance"`
	XP            int64  `json:"xp"`
	Level         int64  `json:"level"`
	GamesPlayed   int64  `json:"games_played"`
	WinStreak     int64  `json:"win_streak"`
	MaxWinStreak  int64  `json:"max_win_streak"`
	JackpotPool   int64  `json:"progressive_jackpot_amount"`
	LastResult    string `json:"last_result"`
	TotalWinnings int64  `json:"total_winnings"`
	TotalLosses   int64  `json:"total_losses"`
}

// Emitter publishes to NATS. A nil *Emitter is a valid no-op, so callers
// don't branch on whether sync is configured.
type Emitter struct {
	conn          *nats.Conn
	subjectPrefix string
}

func NewEmitter(natsURL, subjectPrefix string) (*Emitter, error) {
	conn, err := connect(natsURL, connectInitialInterval, connectMaxElapsed)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Emitter{conn: conn, subjectPrefix: subjectPrefix}, nil
}

// connect dials NATS with exponential backoff; the server may still be
// coming up when the session starts.
func connect(url string, initial, maxElapsed time.Duration) (*nats.Conn, error) {
	var conn *nats.Conn
	err := retry.Exponential(func() error {
		c, err := nats.Connect(url)
		if err != nil {
			return err
		}
		conn = c
		return nil
	}, retry.ExponentialConfig{
		InitialInterval: initial,
		MaxElapsedTime:  maxElapsed,
		OnRetry: func(err error, next time.Duration) {
			slog.Warn("NATS connect failed, retrying", "err", err, "next_retry_in", next)
		},
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (e *Emitter) EmitRound(o player.RoundOutcome, snap player.State) error {
	return e.emit(Event{
		Type: TypeRound,
		Data: RoundData{
			Mode:    o.Mode,
			Result:  string(o.Result),
			Bet:     o.Bet,
			Delta:   o.BalanceDelta,
			Balance: snap.Balance,
			Level:   snap.Level,
		},
		Timestamp: time.Now().UTC().Unix(),
	})
}

func (e *Emitter) EmitSnapshot(snap player.State) error {
	return e.emit(Event{
		Type: TypeSnapshot,
		Data: SnapshotData{
			Balance:       snap.Balance,
			XP:            snap.XP,
			Level:         snap.Level,
			GamesPlayed:   snap.GamesPlayed,
			WinStreak:     snap.WinStreak,
			MaxWinStreak:  snap.MaxWinStreak,
			JackpotPool:   snap.JackpotPool,
			LastResult:    string(snap.LastResult),
			TotalWinnings: snap.TotalWinnings,
			TotalLosses:   snap.TotalLosses,
		},
		Timestamp: time.Now().UTC().Unix(),
	})
}

func (e *Emitter) emit(event Event) error {
	if e == nil || e.conn == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.conn.Publish(e.subjectPrefix+"."+event.Type, data)
}

func (e *Emitter) Close() {
	if e != nil && e.conn != nil {
		e.conn.Close()
	}
}
