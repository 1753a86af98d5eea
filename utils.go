package main

import (
    "fmt"
    "io"
    "log"
    "math"
    "os"
    "os/signal"
    "strings"
    "syscall"
)

func setupGracefulShutdown() {
    c := make(chan os.Signal, 1)
    signal.Notify(c, os.Interrupt, syscall.SIGTERM)
    go func() {
        <-c
        log.Println("🛑 Graceful shutdown initiated...")
        cancel()
        log.Println("✅ Graceful shutdown completed")
        os.Exit(0)
    }()
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// formatBytes renders a byte count for display next to a format option.
// nil means the extractor reported no size at all.
func formatBytes(n *int64) string {
    if n == nil {
        return "N/A"
    }
    b := *n
    if b == 0 {
        return "0B"
    }
    i := int(math.Floor(math.Log(float64(b)) / math.Log(1024)))
    if i < 0 {
        i = 0
    }
    if i >= len(sizeUnits) {
        i = len(sizeUnits) - 1
    }
    value := float64(b) / math.Pow(1024, float64(i))
    return fmt.Sprintf("%.1f%s", value, sizeUnits[i])
}

// attachmentName builds the Content-Disposition filename from the
// client-supplied title. Characters that would break the header or escape
// the filename are replaced.
func attachmentName(title string) string {
    name := strings.TrimSpace(title)
    if name == "" {
        name = DefaultAttachmentTitle
    }
    name = strings.NewReplacer(
        "/", "_",
        "\\", "_",
        "\"", "'",
        "\n", " ",
        "\r", " ",
    ).Replace(name)
    return name + ".mp3"
}

func copyFile(src, dst string) error {
    in, err := os.Open(src)
    if err != nil {
        return err
    }
    defer in.Close()

    out, err := os.Create(dst)
    if err != nil {
        return err
    }
    if _, err := io.Copy(out, in); err != nil {
        out.Close()
        os.Remove(dst)
        return err
    }
    return out.Close()
}
