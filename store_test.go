package main

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sidecarStore {
    t.Helper()
    store, err := newSidecarStore(filepath.Join(t.TempDir(), "downloads"))
    require.NoError(t, err)
    return store
}

func putPair(t *testing.T, s *sidecarStore, id, title string) DownloadRecord {
    t.Helper()
    rec := DownloadRecord{ID: id, Title: title, Artist: "someone", MP3File: id + ".mp3"}
    require.NoError(t, os.WriteFile(s.audioPath(rec.MP3File), []byte("mp3-bytes"), 0o644))
    require.NoError(t, s.put(id, rec))
    return rec
}

func TestStoreListReturnsCompletePairs(t *testing.T) {
    store := newTestStore(t)
    rec := putPair(t, store, "abc", "first")

    records, err := store.list()
    require.NoError(t, err)
    require.Len(t, records, 1)
    assert.Equal(t, rec, records[0])
}

func TestStoreListHidesSidecarWithoutAudio(t *testing.T) {
    store := newTestStore(t)
    require.NoError(t, store.put("ghost", DownloadRecord{ID: "ghost", MP3File: "ghost.mp3"}))

    records, err := store.list()
    require.NoError(t, err)
    assert.Empty(t, records)
}

func TestStoreListHidesAudioWithoutSidecar(t *testing.T) {
    store := newTestStore(t)
    require.NoError(t, os.WriteFile(store.audioPath("stray.mp3"), []byte("x"), 0o644))

    records, err := store.list()
    require.NoError(t, err)
    assert.Empty(t, records)
}

func TestStoreListSkipsMalformedSidecar(t *testing.T) {
    store := newTestStore(t)
    putPair(t, store, "good", "ok")
    require.NoError(t, os.WriteFile(filepath.Join(store.dir, "bad.info.json"), []byte("{not json"), 0o644))

    records, err := store.list()
    require.NoError(t, err)
    require.Len(t, records, 1)
    assert.Equal(t, "good", records[0].ID)
}

func TestStoreDeleteRemovesBothHalves(t *testing.T) {
    store := newTestStore(t)
    rec := putPair(t, store, "abc", "bye")

    require.NoError(t, store.delete(rec.MP3File))

    assert.NoFileExists(t, store.audioPath(rec.MP3File))
    assert.NoFileExists(t, filepath.Join(store.dir, "abc.info.json"))
}

func TestStoreDeleteOfUnknownPairIsNoOp(t *testing.T) {
    store := newTestStore(t)
    assert.NoError(t, store.delete("never-existed.mp3"))
}

func TestSweepOrphansRemovesStrays(t *testing.T) {
    store := newTestStore(t)
    putPair(t, store, "keep", "survivor")
    require.NoError(t, store.put("lost", DownloadRecord{ID: "lost", MP3File: "lost.mp3"}))
    require.NoError(t, os.WriteFile(store.audioPath("stray.mp3"), []byte("x"), 0o644))

    store.sweepOrphans()

    assert.FileExists(t, store.audioPath("keep.mp3"))
    assert.FileExists(t, filepath.Join(store.dir, "keep.info.json"))
    assert.NoFileExists(t, filepath.Join(store.dir, "lost.info.json"))
    assert.NoFileExists(t, store.audioPath("stray.mp3"))
}
