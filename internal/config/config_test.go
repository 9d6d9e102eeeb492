package config

import (
	"testing"
	"time"
)

func TestQualityHeight(t *testing.T) {
	tests := []struct {
		quality Quality
		height  int
	}{
		{Quality480p, 480},
		{Quality720p, 720},
		{Quality1080p, 1080},
		{Quality1440p, 1440},
		{Quality2160p, 2160},
		{Quality("4k"), 0},
		{Quality(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			if got := tt.quality.Height(); got != tt.height {
				t.Errorf("Height() = %d, expected %d", got, tt.height)
			}
		})
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Default()
	valid.DownloadDir = "/tmp/downloads"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "no cookies",
			mutate: func(c *Config) { c.CookieBrowser = BrowserNone },
		},
		{
			name:   "zero delay",
			mutate: func(c *Config) { c.InterJobDelay = 0 },
		},
		{
			name:    "unknown quality",
			mutate:  func(c *Config) { c.Quality = "9000p" },
			wantErr: true,
		},
		{
			name:    "empty quality",
			mutate:  func(c *Config) { c.Quality = "" },
			wantErr: true,
		},
		{
			name:    "unknown video format",
			mutate:  func(c *Config) { c.VideoFormat = "avi" },
			wantErr: true,
		},
		{
			name:    "unknown audio format",
			mutate:  func(c *Config) { c.AudioFormat = "aiff" },
			wantErr: true,
		},
		{
			name:    "unknown browser",
			mutate:  func(c *Config) { c.CookieBrowser = "netscape" },
			wantErr: true,
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.InterJobDelay = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestOptionLists(t *testing.T) {
	if len(QualityOptions()) != 5 {
		t.Errorf("Expected 5 quality options, got %d", len(QualityOptions()))
	}
	if len(VideoFormatOptions()) != 3 {
		t.Errorf("Expected 3 video format options, got %d", len(VideoFormatOptions()))
	}
	if len(AudioFormatOptions()) != 5 {
		t.Errorf("Expected 5 audio format options, got %d", len(AudioFormatOptions()))
	}

	browsers := BrowserOptions()
	if browsers[0] != BrowserNone {
		t.Errorf("First browser option should be %s, got %s", BrowserNone, browsers[0])
	}
	for _, q := range QualityOptions() {
		if q.Height() == 0 {
			t.Errorf("Quality option %s has no height", q)
		}
	}
}
