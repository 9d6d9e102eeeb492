package config

import (
	"fmt"
	"time"

	"github.com/ytget/universal-downloader/internal/platform"
)

// Quality is the maximum video resolution for a download
type Quality string

const (
	Quality480p  Quality = "480p"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
	Quality1440p Quality = "1440p"
	Quality2160p Quality = "2160p"
)

// Height returns the pixel-height ceiling for the quality, 0 if unknown
func (q Quality) Height() int {
	switch q {
	case Quality480p:
		return 480
	case Quality720p:
		return 720
	case Quality1080p:
		return 1080
	case Quality1440p:
		return 1440
	case Quality2160p:
		return 2160
	}
	return 0
}

// VideoFormat is the container format for video downloads
type VideoFormat string

const (
	VideoFormatMP4  VideoFormat = "mp4"
	VideoFormatMKV  VideoFormat = "mkv"
	VideoFormatWebM VideoFormat = "webm"
)

// AudioFormat is the target format for audio-only downloads
type AudioFormat string

const (
	AudioFormatM4A  AudioFormat = "m4a"
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatFLAC AudioFormat = "flac"
	AudioFormatOpus AudioFormat = "opus"
)

// BrowserNone disables cookie import entirely
const BrowserNone = "none"

// Default values
const (
	DefaultQuality       = Quality1080p
	DefaultVideoFormat   = VideoFormatMP4
	DefaultAudioFormat   = AudioFormatM4A
	DefaultBrowser       = "chrome"
	DefaultInterJobDelay = 10 * time.Minute
)

// Config holds one batch run's options. It is assembled by the interface
// layer (GUI settings or CLI flags), validated once, and treated as
// immutable for the duration of the run.
type Config struct {
	Quality       Quality
	VideoFormat   VideoFormat
	AudioFormat   AudioFormat
	CookieBrowser string // browser to import cookies from, or "none"
	InterJobDelay time.Duration
	DownloadDir   string
}

// Default returns a Config with the application defaults
func Default() Config {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		dir = "downloads"
	}
	return Config{
		Quality:       DefaultQuality,
		VideoFormat:   DefaultVideoFormat,
		AudioFormat:   DefaultAudioFormat,
		CookieBrowser: DefaultBrowser,
		InterJobDelay: DefaultInterJobDelay,
		DownloadDir:   dir,
	}
}

// QualityOptions returns the closed set of selectable qualities
func QualityOptions() []Quality {
	return []Quality{Quality480p, Quality720p, Quality1080p, Quality1440p, Quality2160p}
}

// VideoFormatOptions returns the closed set of video container formats
func VideoFormatOptions() []VideoFormat {
	return []VideoFormat{VideoFormatMP4, VideoFormatMKV, VideoFormatWebM}
}

// AudioFormatOptions returns the closed set of audio formats
func AudioFormatOptions() []AudioFormat {
	return []AudioFormat{AudioFormatM4A, AudioFormatMP3, AudioFormatWAV, AudioFormatFLAC, AudioFormatOpus}
}

// BrowserOptions returns the cookie source browsers the app knows about
func BrowserOptions() []string {
	return []string{BrowserNone, "chrome", "firefox", "brave", "edge", "opera", "safari", "vivaldi", "chromium"}
}

// Validate checks every field against its closed option set
func (c Config) Validate() error {
	if c.Quality.Height() == 0 {
		return fmt.Errorf("invalid quality %q", c.Quality)
	}

	valid := false
	for _, f := range VideoFormatOptions() {
		if c.VideoFormat == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid video format %q", c.VideoFormat)
	}

	valid = false
	for _, f := range AudioFormatOptions() {
		if c.AudioFormat == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid audio format %q", c.AudioFormat)
	}

	valid = false
	for _, b := range BrowserOptions() {
		if c.CookieBrowser == b {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown cookie browser %q", c.CookieBrowser)
	}

	if c.InterJobDelay < 0 {
		return fmt.Errorf("inter-job delay must not be negative, got %s", c.InterJobDelay)
	}

	return nil
}
