package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ytdlp "github.com/ytget/ytdlp/v2"

	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/cookies"
	"github.com/ytget/universal-downloader/internal/model"
)

func TestVideoSelector(t *testing.T) {
	tests := []struct {
		quality config.Quality
		want    string
	}{
		{config.Quality480p, "height<=480"},
		{config.Quality720p, "height<=720"},
		{config.Quality1080p, "height<=1080"},
		{config.Quality2160p, "height<=2160"},
		{config.Quality("bogus"), "best"},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			if got := videoSelector(tt.quality); got != tt.want {
				t.Errorf("videoSelector(%s) = %q, expected %q", tt.quality, got, tt.want)
			}
		})
	}
}

func TestOverallPercent(t *testing.T) {
	tests := []struct {
		name        string
		base, span  float64
		itemPercent float64
		want        float64
	}{
		{
			name: "single item covers whole range",
			base: 0, span: 100, itemPercent: 40,
			want: 40,
		},
		{
			name: "second of four items half done",
			base: 25, span: 25, itemPercent: 50,
			want: 37.5,
		},
		{
			name: "last item complete",
			base: 75, span: 25, itemPercent: 100,
			want: 100,
		},
		{
			name: "clamped at 100",
			base: 99, span: 25, itemPercent: 100,
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overallPercent(tt.base, tt.span, tt.itemPercent)
			if got != tt.want {
				t.Errorf("overallPercent(%v, %v, %v) = %v, expected %v",
					tt.base, tt.span, tt.itemPercent, got, tt.want)
			}
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	tests := []struct {
		name           string
		bytesPerSecond float64
		want           string
	}{
		{"one megabyte", 1024 * 1024, "1.0MB/s"},
		{"two and a half", 2.5 * 1024 * 1024, "2.5MB/s"},
		{"slow connection", 100 * 1024, "0.1MB/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSpeed(tt.bytesPerSecond); got != tt.want {
				t.Errorf("formatSpeed(%v) = %q, expected %q", tt.bytesPerSecond, got, tt.want)
			}
		})
	}
}

func TestTrackerUpdate(t *testing.T) {
	var got Progress
	reported := false

	track := newTracker(func(p Progress) {
		got = p
		reported = true
	}, "Track One", 50, 50)
	track.start = time.Now().Add(-2 * time.Second)

	track.update(ytdlp.Progress{
		TotalSize:      4 * 1024 * 1024,
		DownloadedSize: 2 * 1024 * 1024,
		Percent:        50,
	})

	if !reported {
		t.Fatal("Tracker should forward progress to the callback")
	}
	if got.Percent != 75 {
		t.Errorf("Expected overall percent 75, got %v", got.Percent)
	}
	if got.CurrentFile != "Track One" {
		t.Errorf("Expected current file 'Track One', got %q", got.CurrentFile)
	}
	if got.Speed == "" {
		t.Error("Speed should be derived from downloaded bytes")
	}
	if got.ETASec < 0 {
		t.Errorf("ETA should be known when total size is set, got %d", got.ETASec)
	}
}

func TestTrackerNilReport(t *testing.T) {
	track := newTracker(nil, "", 0, 100)
	// Must not panic without a callback
	track.update(ytdlp.Progress{Percent: 10})
}

func TestFetchAudioWithoutPlaylistParam(t *testing.T) {
	cfg := config.Default()
	cfg.DownloadDir = t.TempDir()
	svc := NewService(cfg, cookies.NewProvider("chrome"), nil)

	// The URL has no host, so cookie import fails before any download.
	// Reaching that point means the audio request was routed to the
	// single-track path instead of being rejected for the missing list
	// parameter.
	_, err := svc.Fetch(context.Background(), Request{
		URL:  "https:///watch?v=abc",
		Kind: model.KindAudioPlaylist,
	})
	if err == nil {
		t.Fatal("Expected an error for a URL without a host")
	}
	if strings.Contains(err.Error(), "playlist parameter") {
		t.Errorf("Audio URL without a list parameter should fetch a single track, got %v", err)
	}
	if !strings.Contains(err.Error(), "cookie import failed") {
		t.Errorf("Cookie import failure should surface in the error, got %v", err)
	}

	dir := filepath.Join(cfg.DownloadDir, musicSubdir)
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Errorf("Single tracks should go in the music directory: %v", statErr)
	}
}

func TestFetchVideoWithPlaylistParam(t *testing.T) {
	cfg := config.Default()
	cfg.DownloadDir = t.TempDir()
	svc := NewService(cfg, nil, nil)

	// The empty list ID fails playlist extraction, proving the request
	// was routed to the playlist path rather than a single download.
	_, err := svc.Fetch(context.Background(), Request{
		URL:  "https://www.youtube.com/watch?v=VIDEO&list=",
		Kind: model.KindVideoOrSingle,
	})
	if err == nil {
		t.Fatal("Expected an error for an empty playlist ID")
	}
	if !strings.Contains(err.Error(), "playlist") {
		t.Errorf("Video URL with a list parameter should take the playlist path, got %v", err)
	}
}

func TestFetchCookieFailureFailsJob(t *testing.T) {
	cfg := config.Default()
	cfg.DownloadDir = t.TempDir()
	svc := NewService(cfg, cookies.NewProvider("firefox"), nil)

	_, err := svc.Fetch(context.Background(), Request{
		URL:  "https:///watch?v=abc",
		Kind: model.KindVideoOrSingle,
	})
	if err == nil {
		t.Fatal("Expected cookie import failure to fail the fetch")
	}
	if !strings.Contains(err.Error(), "cookie import failed") {
		t.Errorf("Expected a cookie import error, got %v", err)
	}
}
