package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/universal-downloader/internal/config"
)

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		input    string
		format   config.AudioFormat
		expected string
	}{
		{"/path/to/song.m4a", config.AudioFormatMP3, "/path/to/song.mp3"},
		{"/path/to/song.m4a", config.AudioFormatFLAC, "/path/to/song.flac"},
		{"/path/to/song.m4a", config.AudioFormatWAV, "/path/to/song.wav"},
		{"song.m4a", config.AudioFormatOpus, "song.opus"},
		{"/no/ext/file", config.AudioFormatMP3, "/no/ext/file.mp3"},
	}

	for _, test := range tests {
		result := outputPathFor(test.input, test.format)
		if result != test.expected {
			t.Errorf("outputPathFor(%s, %s) = %s, expected %s", test.input, test.format, result, test.expected)
		}
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	args := BuildFFmpegArgs("/input.m4a", "/output.mp3", config.AudioFormatMP3)

	expectedArgs := []string{
		"-y",
		"-i", "/input.m4a",
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", "192k",
		"-progress", "pipe:2",
		"-nostats",
		"/output.mp3",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d", len(expectedArgs), len(args))
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestCodecArgs(t *testing.T) {
	tests := []struct {
		format config.AudioFormat
		codec  string
	}{
		{config.AudioFormatMP3, "libmp3lame"},
		{config.AudioFormatWAV, "pcm_s16le"},
		{config.AudioFormatFLAC, "flac"},
		{config.AudioFormatOpus, "libopus"},
		{config.AudioFormatM4A, "copy"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			args := codecArgs(tt.format)
			if len(args) < 2 || args[0] != "-c:a" || args[1] != tt.codec {
				t.Errorf("codecArgs(%s) = %v, expected codec %s", tt.format, args, tt.codec)
			}
		})
	}
}

func TestConvertFile_NonExistentFile(t *testing.T) {
	service := NewService()

	_, err := service.ConvertFile(context.Background(), "/path/to/nonexistent/file.m4a", config.AudioFormatMP3)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestConvertDir_TargetIsSourceFormat(t *testing.T) {
	service := NewService()

	// No conversion needed when the target format matches the download
	if err := service.ConvertDir(context.Background(), "/does/not/matter", config.AudioFormatM4A); err != nil {
		t.Errorf("Expected no error for m4a target, got %v", err)
	}
}

func TestConvertDir_NoSources(t *testing.T) {
	service := NewService()
	dir := t.TempDir()

	// Unrelated files are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := service.ConvertDir(context.Background(), dir, config.AudioFormatMP3); err != nil {
		t.Errorf("Expected no error for directory without audio files, got %v", err)
	}
}

func TestConvertDir_MissingDirectory(t *testing.T) {
	service := NewService()

	err := service.ConvertDir(context.Background(), "/definitely/not/here", config.AudioFormatMP3)
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}
