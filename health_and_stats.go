package main

import (
    "net/http"
    "sync/atomic"
    "time"
)

func handleHome(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)
    if r.URL.Path != "/" {
        http.NotFound(w, r)
        return
    }
    writeJSON(w, http.StatusOK, map[string]string{"message": "Backend is running 🚀"})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
    enableCORS(w)
    health := HealthStatus{
        Status:             "healthy",
        ActiveDownloads:    atomic.LoadInt64(&activeDownloads),
        CompletedDownloads: atomic.LoadInt64(&completedDownloads),
        FailedDownloads:    atomic.LoadInt64(&failedDownloads),
        Uptime:             time.Since(serverStartTime).String(),
    }
    writeJSON(w, http.StatusOK, health)
}
