package main

import (
    "log"
    "os"
    "path/filepath"

    "github.com/google/uuid"
)

// workspace is a uniquely named scratch directory scoped to the lifetime of
// one download request. Nothing in it survives release.
type workspace struct {
    dir      string
    released bool
}

func acquireWorkspace(root string) (*workspace, error) {
    dir := filepath.Join(root, uuid.New().String())
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, err
    }
    return &workspace{dir: dir}, nil
}

// release removes the directory and everything in it. Safe to defer on
// every exit path; only the first call does work. A failed removal is
// logged, never surfaced: the response may already be in flight.
func (w *workspace) release() {
    if w == nil || w.released {
        return
    }
    w.released = true
    if err := os.RemoveAll(w.dir); err != nil {
        log.Printf("⚠️  Failed to clean workspace %s: %v", w.dir, err)
    }
}

// resetWorkRoot clears workspaces orphaned by a previous run and recreates
// the root.
func resetWorkRoot(root string) error {
    if err := os.RemoveAll(root); err != nil {
        return err
    }
    return os.MkdirAll(root, 0o755)
}
