package main

// DownloadRecord is the sidecar document persisted next to each MP3 in the
// download directory. Records are immutable once written; a pair is only
// listable while both the sidecar and the audio file exist.
type DownloadRecord struct {
    ID        string `json:"id"`
    Title     string `json:"title"`
    Artist    string `json:"artist"`
    Thumbnail string `json:"thumbnail"`
    MP3File   string `json:"mp3_file"`
}

// FormatOption is one audio-only stream variant offered by /get-info.
// Never persisted; produced fresh on every probe.
type FormatOption struct {
    FormatID string `json:"format_id"`
    Quality  string `json:"quality"`
    Ext      string `json:"ext"`
    Size     string `json:"size"`
}

// TrackMetadata is supplied by the client on /download and trusted as-is.
type TrackMetadata struct {
    Title     string `json:"title"`
    Artist    string `json:"artist"`
    Thumbnail string `json:"thumbnail"`
}

type infoRequest struct {
    URL string `json:"url"`
}

type infoResponse struct {
    Title        string         `json:"title"`
    Thumbnail    string         `json:"thumbnail"`
    Artist       string         `json:"artist"`
    AudioFormats []FormatOption `json:"audio_formats"`
}

type downloadRequest struct {
    URL      string        `json:"url"`
    FormatID string        `json:"format_id"`
    Metadata TrackMetadata `json:"metadata"`
}

type deleteRequest struct {
    MP3File string `json:"mp3_file"`
}

type HealthStatus struct {
    Status             string `json:"status"`
    ActiveDownloads    int64  `json:"active_downloads"`
    CompletedDownloads int64  `json:"completed_downloads"`
    FailedDownloads    int64  `json:"failed_downloads"`
    Uptime             string `json:"uptime"`
}
