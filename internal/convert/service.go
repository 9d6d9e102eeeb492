// Package convert transcodes downloaded audio files with ffmpeg.
package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/universal-downloader/internal/config"
)

// Executable and I/O constants
const (
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	ProgressTimePrefix  = "out_time_us="

	sourceExtension = ".m4a"
)

// Service converts audio files to a target format using ffmpeg
type Service struct {
	onProgress func(file string, percent int)
}

// NewService creates a new conversion service
func NewService() *Service {
	return &Service{}
}

// SetProgressCallback sets the callback for per-file conversion progress
func (s *Service) SetProgressCallback(callback func(file string, percent int)) {
	s.onProgress = callback
}

// ConvertDir converts every downloaded audio file in dir to the target
// format. The source files are removed after successful conversion.
// Individual file failures are logged and skipped.
func (s *Service) ConvertDir(ctx context.Context, dir string, format config.AudioFormat) error {
	if format == config.AudioFormatM4A {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), sourceExtension) {
			sources = append(sources, filepath.Join(dir, entry.Name()))
		}
	}
	if len(sources) == 0 {
		return nil
	}

	failed := 0
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.ConvertFile(ctx, src, format); err != nil {
			failed++
			log.Printf("Conversion failed for %s: %v", src, err)
		}
	}

	if failed == len(sources) {
		return fmt.Errorf("all %d conversions in %s failed", failed, dir)
	}
	return nil
}

// ConvertFile converts one audio file and removes the source on success.
// Returns the path of the converted file.
func (s *Service) ConvertFile(ctx context.Context, inputPath string, format config.AudioFormat) (string, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist: %s", inputPath)
	}

	outputPath := outputPathFor(inputPath, format)

	duration, err := s.getAudioDuration(inputPath)
	if err != nil {
		// Progress reporting degrades gracefully without a duration
		log.Printf("Failed to probe duration for %s: %v", inputPath, err)
		duration = 0
	}

	args := BuildFFmpegArgs(inputPath, outputPath, format)
	cmd := exec.CommandContext(ctx, FFmpegCommand, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.monitorProgress(stderr, filepath.Base(inputPath), duration)
	}()

	err = cmd.Wait()
	<-done

	if err != nil {
		os.Remove(outputPath)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("ffmpeg failed: %w", err)
	}

	if err := os.Remove(inputPath); err != nil {
		log.Printf("Failed to remove source file %s: %v", inputPath, err)
	}

	return outputPath, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments for one conversion
func BuildFFmpegArgs(inputPath, outputPath string, format config.AudioFormat) []string {
	args := []string{
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-vn", // Audio only
	}
	args = append(args, codecArgs(format)...)
	args = append(args,
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		outputPath, // Output file
	)
	return args
}

// codecArgs returns the encoder arguments for a target format
func codecArgs(format config.AudioFormat) []string {
	switch format {
	case config.AudioFormatMP3:
		return []string{"-c:a", "libmp3lame", "-b:a", "192k"}
	case config.AudioFormatWAV:
		return []string{"-c:a", "pcm_s16le"}
	case config.AudioFormatFLAC:
		return []string{"-c:a", "flac"}
	case config.AudioFormatOpus:
		return []string{"-c:a", "libopus", "-b:a", "128k"}
	default:
		return []string{"-c:a", "copy"}
	}
}

// getAudioDuration gets the duration of an audio file using ffprobe
func (s *Service) getAudioDuration(filePath string) (float64, error) {
	cmd := exec.Command(FFprobeCommand, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	durationStr := strings.TrimSpace(string(output))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return duration, nil
}

// monitorProgress parses ffmpeg progress lines from stderr
func (s *Service) monitorProgress(stderr io.ReadCloser, file string, totalDuration float64) {
	defer stderr.Close()
	scanner := bufio.NewScanner(stderr)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Parse progress line: out_time_us=123456
		if !strings.HasPrefix(line, ProgressTimePrefix) {
			continue
		}
		timeStr := strings.TrimPrefix(line, ProgressTimePrefix)
		timeMicroseconds, err := strconv.ParseInt(timeStr, 10, 64)
		if err != nil {
			continue
		}

		if totalDuration <= 0 || s.onProgress == nil {
			continue
		}

		timeSeconds := float64(timeMicroseconds) / 1000000.0
		progress := timeSeconds / totalDuration
		if progress > 1.0 {
			progress = 1.0
		}
		s.onProgress(file, int(progress*100))
	}
}

// outputPathFor swaps the input extension for the target format's
func outputPathFor(inputPath string, format config.AudioFormat) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "." + string(format)
}
