package save

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"chamber/internal/player"
	"chamber/pkg/retry"
)

// LoadStatus names the outcome of a load attempt.
type LoadStatus int

const (
	// LoadApplied means the decoded state fully replaced the in-memory one.
	LoadApplied LoadStatus = iota
	// LoadNotFound means no save file exists; the default state stands.
	LoadNotFound
	// LoadCorrupt means the blob failed decoding or its checksum.
	LoadCorrupt
	// LoadInvalid means the blob decoded but a field violated its bounds.
	LoadInvalid
	// LoadIOError means the file could not be read at all.
	LoadIOError
)

// LoadResult is the explicit outcome record; no load failure is silent and
// none of them mutate existing state.
type LoadResult struct {
	Status LoadStatus
	State  *player.State
	Err    error
}

// FileStore persists the encoded save blob. When cloud sync is enabled a
// secondary copy is written alongside and consulted as a load fallback.
type FileStore struct {
	path      string
	cloudPath string
	log       *slog.Logger
}

func NewFileStore(path, cloudPath string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, cloudPath: cloudPath, log: log}
}

// Save encodes and writes the state. Write failures are retried briefly and
// then reported; the game continues in memory either way.
func (fs *FileStore) Save(s *player.State) error {
	blob := Encode(s, time.Now())

	err := retry.Constant(func() error {
		return os.WriteFile(fs.path, []byte(blob), 0o644)
	}, retry.DefaultInterval, retry.DefaultMaxAttempts)
	if err != nil {
		fs.log.Error("save write failed", "path", fs.path, "err", err)
		return err
	}

	if s.CloudSyncEnabled && fs.cloudPath != "" {
		if err := os.WriteFile(fs.cloudPath, []byte(blob), 0o644); err != nil {
			// Secondary copy is best effort; the primary save succeeded.
			fs.log.Warn("cloud copy write failed", "path", fs.cloudPath, "err", err)
		}
	}
	return nil
}

// Load reads and decodes the save file, falling back to the cloud copy when
// the primary is missing. The returned status drives the caller's state
// machine: only LoadApplied carries a state to adopt.
func (fs *FileStore) Load() LoadResult {
	blob, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) && fs.cloudPath != "" {
		blob, err = os.ReadFile(fs.cloudPath)
	}
	switch {
	case errors.Is(err, os.ErrNotExist):
		return LoadResult{Status: LoadNotFound}
	case err != nil:
		fs.log.Error("save read failed", "path", fs.path, "err", err)
		return LoadResult{Status: LoadIOError, Err: err}
	}

	state, err := Decode(string(blob))
	switch {
	case errors.Is(err, ErrInvalidData):
		fs.log.Warn("save rejected: field out of bounds", "err", err)
		return LoadResult{Status: LoadInvalid, Err: err}
	case err != nil:
		fs.log.Warn("save rejected: corrupt or tampered", "err", err)
		return LoadResult{Status: LoadCorrupt, Err: err}
	}
	return LoadResult{Status: LoadApplied, State: state}
}
