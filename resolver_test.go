package main

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

const sampleProbeJSON = `{
    "title": "Some Track",
    "uploader": "Some Channel",
    "artist": "",
    "thumbnail": "https://example.com/thumb.jpg",
    "formats": [
        {"format_id": "137", "acodec": "none", "vcodec": "avc1", "ext": "mp4", "abr": 0},
        {"format_id": "251", "acodec": "opus", "vcodec": "none", "ext": "webm", "abr": 128, "filesize": 1536},
        {"format_id": "250", "acodec": "opus", "vcodec": "none", "ext": "webm", "abr": 64, "filesize": null, "filesize_approx": null},
        {"format_id": "sb0", "acodec": "none", "vcodec": "none", "ext": "mhtml", "abr": 0},
        {"format_id": "140", "acodec": "mp4a.40.2", "vcodec": "none", "ext": "m4a", "abr": 129.5, "filesize": null, "filesize_approx": 1048576}
    ]
}`

func TestParseProbeOutput(t *testing.T) {
    res, err := parseProbeOutput([]byte(sampleProbeJSON))
    require.NoError(t, err)

    assert.Equal(t, "Some Track", res.Title)
    assert.Equal(t, "https://example.com/thumb.jpg", res.Thumbnail)
    // artist falls back to uploader when the extractor leaves it empty
    assert.Equal(t, "Some Channel", res.Artist)

    require.Len(t, res.Formats, 3)

    assert.Equal(t, "251", res.Formats[0].FormatID)
    assert.Equal(t, "128kbps", res.Formats[0].Quality)
    assert.Equal(t, "webm", res.Formats[0].Ext)
    assert.Equal(t, "1.5KB", res.Formats[0].Size)

    assert.Equal(t, "250", res.Formats[1].FormatID)
    assert.Equal(t, "N/A", res.Formats[1].Size)

    // filesize_approx stands in when filesize is missing
    assert.Equal(t, "140", res.Formats[2].FormatID)
    assert.Equal(t, "129kbps", res.Formats[2].Quality)
    assert.Equal(t, "1.0MB", res.Formats[2].Size)
}

func TestParseProbeOutputQualityAlwaysEndsInKbps(t *testing.T) {
    res, err := parseProbeOutput([]byte(sampleProbeJSON))
    require.NoError(t, err)
    for _, f := range res.Formats {
        assert.NotEmpty(t, f.FormatID)
        assert.Regexp(t, `kbps$`, f.Quality)
    }
}

func TestParseProbeOutputRejectsGarbage(t *testing.T) {
    _, err := parseProbeOutput([]byte("yt-dlp exploded"))
    assert.Error(t, err)
}

func TestParseProbeOutputKeepsArtistWhenPresent(t *testing.T) {
    res, err := parseProbeOutput([]byte(`{"title": "T", "uploader": "Chan", "artist": "Real Artist", "formats": []}`))
    require.NoError(t, err)
    assert.Equal(t, "Real Artist", res.Artist)
    assert.NotNil(t, res.Formats)
    assert.Empty(t, res.Formats)
}
