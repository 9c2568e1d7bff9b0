package save

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "save.dat"), "", testLogger())

	s := sampleState()
	s.CloudSyncEnabled = false
	require.NoError(t, fs.Save(s))

	res := fs.Load()
	require.Equal(t, LoadApplied, res.Status)
	require.NotNil(t, res.State)
	assert.Equal(t, s.Balance, res.State.Balance)
	assert.Equal(t, s.Level, res.State.Level)
	assert.Equal(t, s.Balance, res.State.SessionStartBalance)
}

func TestFileStoreLoadNotFound(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing.dat"), "", testLogger())

	res := fs.Load()
	assert.Equal(t, LoadNotFound, res.Status)
	assert.Nil(t, res.State)
	assert.NoError(t, res.Err)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.dat")
	require.NoError(t, os.WriteFile(path, []byte("scribbles"), 0o644))

	fs := NewFileStore(path, "", testLogger())
	res := fs.Load()
	assert.Equal(t, LoadCorrupt, res.Status)
	assert.ErrorIs(t, res.Err, ErrCorrupt)
	assert.Nil(t, res.State)
}

func TestFileStoreLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.dat")

	r := defaultRecord()
	r.Balance = -1
	r.Checksum = checksum(r)
	require.NoError(t, os.WriteFile(path, []byte(encodeRecord(t, r)), 0o644))

	fs := NewFileStore(path, "", testLogger())
	res := fs.Load()
	assert.Equal(t, LoadInvalid, res.Status)
	assert.ErrorIs(t, res.Err, ErrInvalidData)
}

func TestFileStoreCloudCopy(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "save.dat")
	cloud := filepath.Join(dir, "cloud.dat")
	fs := NewFileStore(primary, cloud, testLogger())

	s := sampleState()
	s.CloudSyncEnabled = true
	require.NoError(t, fs.Save(s))

	p, err := os.ReadFile(primary)
	require.NoError(t, err)
	c, err := os.ReadFile(cloud)
	require.NoError(t, err)
	assert.Equal(t, p, c)
}

func TestFileStoreNoCloudCopyWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	cloud := filepath.Join(dir, "cloud.dat")
	fs := NewFileStore(filepath.Join(dir, "save.dat"), cloud, testLogger())

	s := sampleState()
	s.CloudSyncEnabled = false
	require.NoError(t, fs.Save(s))

	_, err := os.Stat(cloud)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreCloudFallback(t *testing.T) {
	dir := t.TempDir()
	cloud := filepath.Join(dir, "cloud.dat")
	blob := Encode(sampleState(), time.Now())
	require.NoError(t, os.WriteFile(cloud, []byte(blob), 0o644))

	fs := NewFileStore(filepath.Join(dir, "missing.dat"), cloud, testLogger())
	res := fs.Load()
	require.Equal(t, LoadApplied, res.Status)
	assert.Equal(t, int64(4_200), res.State.Balance)
}
