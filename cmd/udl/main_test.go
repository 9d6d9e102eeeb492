package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/universal-downloader/internal/config"
)

func TestReadURLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://www.youtube.com/watch?v=abc\n\n# comment\n  https://music.youtube.com/playlist?list=PL1  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	urls, err := readURLFile(path)
	if err != nil {
		t.Fatalf("readURLFile() error: %v", err)
	}

	expected := []string{
		"https://www.youtube.com/watch?v=abc",
		"https://music.youtube.com/playlist?list=PL1",
	}
	if len(urls) != len(expected) {
		t.Fatalf("Expected %d URLs, got %d: %v", len(expected), len(urls), urls)
	}
	for i, url := range expected {
		if urls[i] != url {
			t.Errorf("URL %d = %q, expected %q", i, urls[i], url)
		}
	}
}

func TestReadURLFileMissing(t *testing.T) {
	if _, err := readURLFile("/non/existent/urls.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestBuildConfigDefaults(t *testing.T) {
	v := viper.New()
	v.Set("quality", string(config.DefaultQuality))
	v.Set("video-format", string(config.DefaultVideoFormat))
	v.Set("audio-format", string(config.DefaultAudioFormat))
	v.Set("browser", config.BrowserNone)
	v.Set("delay", 30)

	cfg := buildConfig(v)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if cfg.InterJobDelay != 30*time.Second {
		t.Errorf("InterJobDelay = %v, expected 30s", cfg.InterJobDelay)
	}
	if cfg.DownloadDir == "" {
		t.Error("Expected non-empty default download directory")
	}
}
