package model

import (
	"fmt"
	"strings"
	"time"
)

// JobKind is the audio-only vs. video decision made from URL shape alone.
// It is assigned once, before any network call, and never changes.
type JobKind string

const (
	// KindAudioPlaylist marks URLs on the music-only platform: the whole
	// playlist is fetched as audio, ignoring any requested video format.
	KindAudioPlaylist JobKind = "AudioPlaylist"

	// KindVideoOrSingle marks every other URL: download as video, honoring
	// the requested container format and quality ceiling.
	KindVideoOrSingle JobKind = "VideoOrSingle"
)

// Job represents one URL's download task within a batch
type Job struct {
	ID         string
	URL        string
	Kind       JobKind
	Status     JobStatus
	LastError  string    // last error message if any
	Title      string    // resolved media or playlist title
	OutputPath string    // path to downloaded file or playlist directory
	Progress   float64   // 0.0 to 1.0
	Percent    int       // 0 to 100
	Speed      string    // human readable speed (e.g., "1.2MB/s")
	ETASec     int       // ETA in seconds, -1 if unknown
	StartedAt  time.Time // when the job started
	FinishedAt time.Time // when the job finished
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (j *Job) GetETAString() string {
	if j.ETASec <= 0 {
		return "—"
	}

	hours := j.ETASec / 3600
	minutes := (j.ETASec % 3600) / 60
	seconds := j.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (j *Job) GetDisplayTitle() string {
	// First priority: resolved title (non-URL)
	if j.Title != "" && !strings.HasPrefix(j.Title, "http") {
		return j.Title
	}

	// Second priority: filename from OutputPath
	if j.OutputPath != "" {
		parts := strings.FieldsFunc(j.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return j.URL
}
