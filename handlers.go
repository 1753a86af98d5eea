package main

import (
    "encoding/json"
    "fmt"
    "io"
    "log"
    "net/http"
    "os"
    "path/filepath"
    "strings"
    "sync/atomic"

    "github.com/google/uuid"
)

// server holds the dependencies the handlers work against. There is no
// shared in-memory state between requests beyond the store directory.
type server struct {
    store    *sidecarStore
    resolver resolver
    workRoot string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}

func writeValidationError(w http.ResponseWriter, msg string) {
    writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeServerError(w http.ResponseWriter, msg string, err error) {
    writeJSON(w, http.StatusInternalServerError, map[string]string{
        "error":   msg,
        "details": err.Error(),
    })
}

// POST /get-info
func (s *server) handleGetInfo(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)

    if r.Method == http.MethodOptions {
        w.WriteHeader(http.StatusOK)
        return
    }
    if r.Method != http.MethodPost {
        http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
        return
    }

    var req infoRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeValidationError(w, "Invalid JSON")
        return
    }
    if req.URL == "" {
        writeValidationError(w, "No URL provided")
        return
    }

    info, err := s.resolver.Probe(r.Context(), req.URL)
    if err != nil {
        writeServerError(w, "Failed to extract video info", err)
        return
    }

    writeJSON(w, http.StatusOK, infoResponse{
        Title:        info.Title,
        Thumbnail:    info.Thumbnail,
        Artist:       info.Artist,
        AudioFormats: info.Formats,
    })
}

// POST /download
func (s *server) handleDownload(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)

    if r.Method == http.MethodOptions {
        w.WriteHeader(http.StatusOK)
        return
    }
    if r.Method != http.MethodPost {
        http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
        return
    }

    var req downloadRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeValidationError(w, "Invalid JSON")
        return
    }
    if req.URL == "" {
        writeValidationError(w, "No URL provided")
        return
    }
    if req.FormatID == "" {
        writeValidationError(w, "No format_id provided")
        return
    }

    ws, err := acquireWorkspace(s.workRoot)
    if err != nil {
        writeServerError(w, "Failed to allocate workspace", err)
        return
    }
    defer ws.release()

    atomic.AddInt64(&activeDownloads, 1)
    defer atomic.AddInt64(&activeDownloads, -1)

    id := uuid.New().String()
    log.Printf("⬇️  Download %s started for URL: %s (format %s)", id, req.URL, req.FormatID)

    tmpPath, err := s.resolver.Fetch(r.Context(), req.URL, req.FormatID, ws.dir, id)
    if err != nil {
        atomic.AddInt64(&failedDownloads, 1)
        writeServerError(w, "Download failed", err)
        return
    }

    // Keep the artifact: the workspace is gone once this request ends, so
    // the store copy is what /play and /list-downloads see.
    mp3Name := id + ".mp3"
    if err := copyFile(tmpPath, s.store.audioPath(mp3Name)); err != nil {
        atomic.AddInt64(&failedDownloads, 1)
        writeServerError(w, "Failed to persist download", err)
        return
    }

    rec := DownloadRecord{
        ID:        id,
        Title:     req.Metadata.Title,
        Artist:    req.Metadata.Artist,
        Thumbnail: req.Metadata.Thumbnail,
        MP3File:   mp3Name,
    }
    if err := s.store.put(id, rec); err != nil {
        atomic.AddInt64(&failedDownloads, 1)
        writeServerError(w, "Failed to persist download", err)
        return
    }
    mirrorRecordToRedis(rec)

    f, err := os.Open(s.store.audioPath(mp3Name))
    if err != nil {
        atomic.AddInt64(&failedDownloads, 1)
        writeServerError(w, "Failed to open download", err)
        return
    }
    defer f.Close()

    w.Header().Set("Content-Type", "audio/mpeg")
    w.Header().Set("Content-Disposition",
        fmt.Sprintf("attachment; filename=\"%s\"", attachmentName(req.Metadata.Title)))
    if fi, err := f.Stat(); err == nil {
        w.Header().Set("Content-Length", fmt.Sprintf("%d", fi.Size()))
    }
    if _, err := io.Copy(w, f); err != nil {
        // Headers already went out; nothing more to send the client.
        log.Printf("⚠️  Client aborted download %s: %v", id, err)
        return
    }

    atomic.AddInt64(&completedDownloads, 1)
    log.Printf("✅ Download %s completed (%s)", id, rec.Title)
}

// GET /list-downloads
func (s *server) handleListDownloads(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)

    if r.Method == http.MethodOptions {
        w.WriteHeader(http.StatusOK)
        return
    }

    records, err := s.store.list()
    if err != nil {
        writeServerError(w, "Failed to list downloads", err)
        return
    }
    writeJSON(w, http.StatusOK, records)
}

// GET /play/{filename}
func (s *server) handlePlay(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)

    name := filepath.Base(r.URL.Path)
    if name == "" || name == "play" {
        http.Error(w, "Missing filename", http.StatusBadRequest)
        return
    }
    http.ServeFile(w, r, s.store.audioPath(name))
}

// POST /delete
func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)

    if r.Method == http.MethodOptions {
        w.WriteHeader(http.StatusOK)
        return
    }
    if r.Method != http.MethodPost {
        http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
        return
    }

    var req deleteRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeValidationError(w, "Invalid JSON")
        return
    }
    if req.MP3File == "" {
        writeValidationError(w, "No filename provided")
        return
    }

    name := filepath.Base(req.MP3File)
    if err := s.store.delete(name); err != nil {
        writeServerError(w, "Failed to delete download", err)
        return
    }
    dropRecordFromRedis(strings.SplitN(name, ".", 2)[0])

    writeJSON(w, http.StatusOK, map[string]any{
        "success": true,
        "message": fmt.Sprintf("Deleted %s", name),
    })
}
