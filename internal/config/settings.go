package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/universal-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyQuality            = "max_resolution"
	KeyVideoFormat        = "video_format"
	KeyAudioFormat        = "audio_format"
	KeyCookieBrowser      = "cookie_browser"
	KeyInterJobDelaySec   = "inter_job_delay_seconds"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
)

// Settings manages application configuration persisted through Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQuality returns the configured maximum resolution
func (s *Settings) GetQuality() Quality {
	q := Quality(s.app.Preferences().String(KeyQuality))
	if q.Height() == 0 {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	return q
}

// SetQuality sets the maximum resolution
func (s *Settings) SetQuality(q Quality) {
	s.app.Preferences().SetString(KeyQuality, string(q))
}

// GetVideoFormat returns the configured video container format
func (s *Settings) GetVideoFormat() VideoFormat {
	f := VideoFormat(s.app.Preferences().String(KeyVideoFormat))
	for _, opt := range VideoFormatOptions() {
		if f == opt {
			return f
		}
	}
	s.SetVideoFormat(DefaultVideoFormat)
	return DefaultVideoFormat
}

// SetVideoFormat sets the video container format
func (s *Settings) SetVideoFormat(f VideoFormat) {
	s.app.Preferences().SetString(KeyVideoFormat, string(f))
}

// GetAudioFormat returns the configured audio format
func (s *Settings) GetAudioFormat() AudioFormat {
	f := AudioFormat(s.app.Preferences().String(KeyAudioFormat))
	for _, opt := range AudioFormatOptions() {
		if f == opt {
			return f
		}
	}
	s.SetAudioFormat(DefaultAudioFormat)
	return DefaultAudioFormat
}

// SetAudioFormat sets the audio format
func (s *Settings) SetAudioFormat(f AudioFormat) {
	s.app.Preferences().SetString(KeyAudioFormat, string(f))
}

// GetCookieBrowser returns the browser cookies are imported from
func (s *Settings) GetCookieBrowser() string {
	b := s.app.Preferences().String(KeyCookieBrowser)
	for _, opt := range BrowserOptions() {
		if b == opt {
			return b
		}
	}
	s.SetCookieBrowser(DefaultBrowser)
	return DefaultBrowser
}

// SetCookieBrowser sets the browser cookies are imported from
func (s *Settings) SetCookieBrowser(browser string) {
	s.app.Preferences().SetString(KeyCookieBrowser, browser)
}

// GetInterJobDelay returns the pause inserted between downloads
func (s *Settings) GetInterJobDelay() time.Duration {
	sec := s.app.Preferences().IntWithFallback(KeyInterJobDelaySec, int(DefaultInterJobDelay/time.Second))
	if sec < 0 {
		s.SetInterJobDelay(DefaultInterJobDelay)
		return DefaultInterJobDelay
	}
	return time.Duration(sec) * time.Second
}

// SetInterJobDelay sets the pause inserted between downloads
func (s *Settings) SetInterJobDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.app.Preferences().SetInt(KeyInterJobDelaySec, int(d/time.Second))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to auto-reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
		"ru":     "Русский",
	}
}

// Config assembles a validated run configuration from the stored preferences
func (s *Settings) Config() Config {
	return Config{
		Quality:       s.GetQuality(),
		VideoFormat:   s.GetVideoFormat(),
		AudioFormat:   s.GetAudioFormat(),
		CookieBrowser: s.GetCookieBrowser(),
		InterJobDelay: s.GetInterJobDelay(),
		DownloadDir:   s.GetDownloadDirectory(),
	}
}
