package main

import (
    "encoding/json"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"

    redis "github.com/redis/go-redis/v9"
)

const sidecarSuffix = ".info.json"

// sidecarStore keeps one {id}.mp3 / {id}.info.json pair per completed
// download in a single flat directory. Callers are not synchronized; a list
// racing a delete may transiently observe half a pair, which list filters
// out.
type sidecarStore struct {
    dir string
}

func newSidecarStore(dir string) (*sidecarStore, error) {
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, err
    }
    return &sidecarStore{dir: dir}, nil
}

func (s *sidecarStore) put(id string, rec DownloadRecord) error {
    data, err := json.Marshal(rec)
    if err != nil {
        return err
    }
    return os.WriteFile(filepath.Join(s.dir, id+sidecarSuffix), data, 0o644)
}

// list returns every record whose sidecar parses and whose mp3 is still on
// disk. A pair missing either half is invisible. Order follows directory
// enumeration.
func (s *sidecarStore) list() ([]DownloadRecord, error) {
    entries, err := os.ReadDir(s.dir)
    if err != nil {
        return nil, err
    }
    records := make([]DownloadRecord, 0, len(entries))
    for _, e := range entries {
        if e.IsDir() || !strings.HasSuffix(e.Name(), sidecarSuffix) {
            continue
        }
        data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
        if err != nil {
            log.Printf("⚠️  Skipping unreadable sidecar %s: %v", e.Name(), err)
            continue
        }
        var rec DownloadRecord
        if err := json.Unmarshal(data, &rec); err != nil {
            log.Printf("⚠️  Skipping malformed sidecar %s: %v", e.Name(), err)
            continue
        }
        if rec.MP3File == "" {
            continue
        }
        if _, err := os.Stat(filepath.Join(s.dir, rec.MP3File)); err != nil {
            continue
        }
        records = append(records, rec)
    }
    return records, nil
}

// delete removes the audio file and its sidecar. The id is the filename
// stem before the first dot. Deleting a pair that never existed is a no-op
// success.
func (s *sidecarStore) delete(mp3File string) error {
    id := strings.SplitN(mp3File, ".", 2)[0]
    for _, name := range []string{mp3File, id + sidecarSuffix} {
        if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
            return err
        }
    }
    return nil
}

func (s *sidecarStore) audioPath(name string) string {
    return filepath.Join(s.dir, name)
}

// sweepOrphans removes halves of pairs left behind by crashes: sidecars
// whose mp3 is gone and mp3s whose sidecar is gone. Runs once at startup.
func (s *sidecarStore) sweepOrphans() {
    entries, err := os.ReadDir(s.dir)
    if err != nil {
        log.Printf("⚠️  Orphan sweep skipped: %v", err)
        return
    }
    for _, e := range entries {
        if e.IsDir() {
            continue
        }
        name := e.Name()
        var partner string
        switch {
        case strings.HasSuffix(name, sidecarSuffix):
            partner = strings.TrimSuffix(name, sidecarSuffix) + ".mp3"
        case strings.HasSuffix(name, ".mp3"):
            partner = strings.TrimSuffix(name, ".mp3") + sidecarSuffix
        default:
            continue
        }
        if _, err := os.Stat(filepath.Join(s.dir, partner)); os.IsNotExist(err) {
            if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
                log.Printf("⚠️  Failed to remove orphan %s: %v", name, err)
            } else {
                log.Printf("🧹 Removed orphan %s", name)
            }
        }
    }
}

// --- Redis mirror ---
//
// Completed records are mirrored into Redis for anything watching the
// history from outside. The directory on disk stays authoritative; when
// Redis is down the service simply runs filesystem-only.

func initRedis(cfg settings) {
    redisClient = redis.NewClient(&redis.Options{
        Addr:     cfg.RedisAddr,
        Password: cfg.RedisPassword,
        DB:       cfg.RedisDB,
    })
    if _, err := redisClient.Ping(ctx).Result(); err != nil {
        log.Printf("⚠️  Redis not available, download history stays filesystem-only: %v", err)
        redisClient = nil
    } else {
        log.Println("✅ Redis connected successfully")
    }
}

func mirrorRecordToRedis(rec DownloadRecord) {
    if redisClient == nil {
        return
    }
    data, err := json.Marshal(rec)
    if err != nil {
        return
    }
    key := fmt.Sprintf("download:%s", rec.ID)
    if err := redisClient.Set(ctx, key, data, 0).Err(); err != nil {
        log.Printf("⚠️  Redis mirror failed for %s: %v", rec.ID, err)
    }
}

func dropRecordFromRedis(id string) {
    if redisClient == nil || id == "" {
        return
    }
    if err := redisClient.Del(ctx, fmt.Sprintf("download:%s", id)).Err(); err != nil {
        log.Printf("⚠️  Redis drop failed for %s: %v", id, err)
    }
}
