package main

import (
    "context"
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    "github.com/lrstanley/go-ytdlp"
)

// resolver is the boundary to the external media tool. Probe runs in
// metadata-only mode; Fetch downloads and transcodes one stream, producing
// dir/<id>.mp3.
type resolver interface {
    Probe(ctx context.Context, url string) (*probeResult, error)
    Fetch(ctx context.Context, url, formatID, dir, id string) (string, error)
}

type probeResult struct {
    Title     string
    Artist    string
    Thumbnail string
    Formats   []FormatOption
}

// ytdlpResolver drives the yt-dlp binary through the go-ytdlp wrapper.
type ytdlpResolver struct {
    // Optional cookies file for authenticated extraction.
    cookieFile string
}

// probeFormat/probeInfo mirror the fields yt-dlp emits with -J.
type probeFormat struct {
    FormatID       string  `json:"format_id"`
    ACodec         string  `json:"acodec"`
    VCodec         string  `json:"vcodec"`
    Ext            string  `json:"ext"`
    ABR            float64 `json:"abr"`
    Filesize       *int64  `json:"filesize"`
    FilesizeApprox *int64  `json:"filesize_approx"`
}

type probeInfo struct {
    Title     string        `json:"title"`
    Uploader  string        `json:"uploader"`
    Artist    string        `json:"artist"`
    Thumbnail string        `json:"thumbnail"`
    Formats   []probeFormat `json:"formats"`
}

func (r *ytdlpResolver) Probe(ctx context.Context, url string) (*probeResult, error) {
    ctxTimeout, cancelProbe := context.WithTimeout(ctx, ProbeTimeout)
    defer cancelProbe()

    cmd := ytdlp.New().
        DumpSingleJSON().
        SkipDownload().
        NoWarnings().
        NoPlaylist()
    if r.cookieFile != "" {
        cmd = cmd.Cookies(r.cookieFile)
    }

    res, err := cmd.Run(ctxTimeout, url)
    if err != nil {
        return nil, fmt.Errorf("yt-dlp metadata error: %w", err)
    }
    return parseProbeOutput([]byte(res.Stdout))
}

func parseProbeOutput(raw []byte) (*probeResult, error) {
    var info probeInfo
    if err := json.Unmarshal(raw, &info); err != nil {
        return nil, fmt.Errorf("yt-dlp metadata parse error: %w", err)
    }

    out := &probeResult{
        Title:     info.Title,
        Artist:    info.Artist,
        Thumbnail: info.Thumbnail,
        Formats:   make([]FormatOption, 0, len(info.Formats)),
    }
    if out.Artist == "" {
        out.Artist = info.Uploader
    }

    for _, f := range info.Formats {
        isAudioOnly := (f.VCodec == "none" || f.VCodec == "") && f.ACodec != "none"
        if !isAudioOnly || f.ABR <= 0 {
            continue
        }
        size := f.Filesize
        if size == nil {
            size = f.FilesizeApprox
        }
        out.Formats = append(out.Formats, FormatOption{
            FormatID: f.FormatID,
            Quality:  fmt.Sprintf("%dkbps", int(f.ABR)),
            Ext:      f.Ext,
            Size:     formatBytes(size),
        })
    }
    return out, nil
}

func (r *ytdlpResolver) Fetch(ctx context.Context, url, formatID, dir, id string) (string, error) {
    ctxTimeout, cancelFetch := context.WithTimeout(ctx, DownloadTimeout)
    defer cancelFetch()

    cmd := ytdlp.New().
        Format(formatID).
        ExtractAudio().
        AudioFormat("mp3").
        AudioQuality(AudioBitrate).
        NoWarnings().
        NoPlaylist().
        Output(filepath.Join(dir, id+".%(ext)s"))
    if r.cookieFile != "" {
        cmd = cmd.Cookies(r.cookieFile)
    }

    if _, err := cmd.Run(ctxTimeout, url); err != nil {
        return "", fmt.Errorf("yt-dlp download error: %w", err)
    }

    path := filepath.Join(dir, id+".mp3")
    if _, err := os.Stat(path); err != nil {
        return "", fmt.Errorf("yt-dlp produced no mp3: %w", err)
    }
    return path, nil
}
