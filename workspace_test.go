package main

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestWorkspaceAcquireCreatesUniqueDirs(t *testing.T) {
    root := t.TempDir()

    a, err := acquireWorkspace(root)
    require.NoError(t, err)
    b, err := acquireWorkspace(root)
    require.NoError(t, err)

    assert.NotEqual(t, a.dir, b.dir)
    assert.DirExists(t, a.dir)
    assert.DirExists(t, b.dir)

    a.release()
    b.release()
}

func TestWorkspaceReleaseRemovesEverything(t *testing.T) {
    root := t.TempDir()

    ws, err := acquireWorkspace(root)
    require.NoError(t, err)
    require.NoError(t, os.WriteFile(filepath.Join(ws.dir, "partial.mp3"), []byte("xxx"), 0o644))

    ws.release()
    assert.NoDirExists(t, ws.dir)
}

func TestWorkspaceReleaseIsIdempotent(t *testing.T) {
    root := t.TempDir()

    ws, err := acquireWorkspace(root)
    require.NoError(t, err)

    ws.release()
    ws.release()
    assert.NoDirExists(t, ws.dir)
}

func TestResetWorkRootClearsLeftovers(t *testing.T) {
    root := filepath.Join(t.TempDir(), "work")
    require.NoError(t, os.MkdirAll(filepath.Join(root, "stale"), 0o755))

    require.NoError(t, resetWorkRoot(root))

    entries, err := os.ReadDir(root)
    require.NoError(t, err)
    assert.Empty(t, entries)
}
