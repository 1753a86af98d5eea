package main

import (
    "log"
    "net/http"

    "github.com/joho/godotenv"
    "github.com/lrstanley/go-ytdlp"
)

func main() {
    // load .env if it's available
    godotenv.Load()
    cfg := loadSettings()

    // Make sure the yt-dlp binary is present before accepting requests.
    ytdlp.MustInstall(ctx, nil)

    store, err := newSidecarStore(cfg.DownloadDir)
    if err != nil {
        log.Fatalf("Failed to create download directory: %v", err)
    }
    store.sweepOrphans()

    if err := resetWorkRoot(cfg.WorkRoot); err != nil {
        log.Fatalf("Failed to prepare workspace root: %v", err)
    }

    initRedis(cfg)
    setupGracefulShutdown()

    srv := &server{
        store:    store,
        resolver: &ytdlpResolver{cookieFile: cfg.CookieFile},
        workRoot: cfg.WorkRoot,
    }

    // Setup HTTP routes
    http.HandleFunc("/", handleHome)
    http.HandleFunc("/health", handleHealth)
    http.HandleFunc("/get-info", rateLimitMiddleware(srv.handleGetInfo))
    http.HandleFunc("/download", rateLimitMiddleware(srv.handleDownload))
    http.HandleFunc("/list-downloads", srv.handleListDownloads)
    http.HandleFunc("/play/", srv.handlePlay)
    http.HandleFunc("/delete", rateLimitMiddleware(srv.handleDelete))

    log.Printf("🚀 Server running on http://localhost:%s (downloads in %s)", cfg.Port, cfg.DownloadDir)
    log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
}
