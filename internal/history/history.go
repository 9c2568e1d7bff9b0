// Package history keeps an append-only audit trail of resolved rounds in a
// local Badger store. Advisory telemetry, like the anti-cheat inspector; the
// game runs fine without it.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"chamber/internal/player"
)

const roundKeyPrefix = "round/"

// Record is one resolved round as persisted.
type Record struct {
	Seq     uint64 `json:"seq"`
	Mode    string `json:"mode"`
	Result  string `json:"result"`
	Bet     int64  `json:"bet"`
	Drawn   int    `json:"drawn"`
	Delta   int64  `json:"delta"`
	XPGain  int64  `json:"xp_gain"`
	Balance int64  `json:"balance"`
	Time    int64  `json:"time"`
}

type Store struct {
	db  *badger.DB
	seq *badger.Sequence
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	seq, err := db.GetSequence([]byte("round_seq"), 64)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, seq: seq}, nil
}

func (st *Store) Close() error {
	if err := st.seq.Release(); err != nil {
		st.db.Close()
		return err
	}
	return st.db.Close()
}

// roundKey is zero-padded so lexicographic key order equals sequence order.
func roundKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", roundKeyPrefix, seq))
}

// Append records one resolved round against the state it produced.
func (st *Store) Append(o player.RoundOutcome, balance int64, unixTime int64) error {
	seq, err := st.seq.Next()
	if err != nil {
		return err
	}
	rec := Record{
		Seq:     seq,
		Mode:    o.Mode,
		Result:  string(o.Result),
		Bet:     o.Bet,
		Drawn:   o.Drawn,
		Delta:   o.BalanceDelta,
		XPGain:  o.XPGain,
		Balance: balance,
		Time:    unixTime,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return st.db.Update(func(txn *badger.Txn) error {
		return txn.Set(roundKey(seq), data)
	})
}

// Recent returns up to n most recent rounds, newest first.
func (st *Store) Recent(n int) ([]Record, error) {
	var out []Record
	err := st.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(roundKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration needs a seek past the last possible key.
		seek := []byte(roundKeyPrefix + "~")
		for it.Seek(seek); it.Valid() && len(out) < n; it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}
