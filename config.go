package main

import (
    "os"
    "path/filepath"
    "strconv"
    "time"
)

// Centralized configuration values
const (
    // Rate Limiting
    RequestsPerSecond = 10
    BurstSize         = 20

    // External tool timeouts
    ProbeTimeout    = 45 * time.Second
    DownloadTimeout = 10 * time.Minute

    // Transcode target
    AudioBitrate = "192K"

    DefaultAttachmentTitle = "audio"
)

type settings struct {
    Port          string
    DownloadDir   string
    WorkRoot      string
    CookieFile    string
    RedisAddr     string
    RedisPassword string
    RedisDB       int
}

// loadSettings reads the environment (after godotenv has had its chance)
// and falls back to defaults suitable for a local run.
func loadSettings() settings {
    s := settings{
        Port:          getenv("PORT", "5000"),
        DownloadDir:   getenv("DOWNLOAD_DIR", "downloads"),
        WorkRoot:      getenv("WORK_DIR", filepath.Join(os.TempDir(), "ytaudio-work")),
        CookieFile:    os.Getenv("COOKIE_FILE"),
        RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
        RedisPassword: os.Getenv("REDIS_PASSWORD"),
    }
    if db, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
        s.RedisDB = db
    }
    return s
}

func getenv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
