// Package classify decides whether a URL is an audio-only playlist or a
// generic video download. The decision is made from the URL text alone,
// before any network call, and never changes afterwards.
package classify

import (
	"errors"
	"net/url"
	"strings"

	"github.com/ytget/universal-downloader/internal/model"
)

// MusicHost is the music-only platform: anything on it is fetched as audio.
const MusicHost = "music.youtube.com"

// ErrAmbiguousURL reports a URL that could not be parsed into host parts.
// The job still runs as a generic video download; callers should log the
// warning so the user sees why classification fell back.
var ErrAmbiguousURL = errors.New("ambiguous URL, treating as video")

// Classify maps a URL to its job kind. The returned kind is always valid:
// when err is ErrAmbiguousURL the kind falls back to KindVideoOrSingle.
func Classify(raw string) (model.JobKind, error) {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return model.KindVideoOrSingle, ErrAmbiguousURL
	}

	if strings.EqualFold(u.Hostname(), MusicHost) {
		return model.KindAudioPlaylist, nil
	}

	return model.KindVideoOrSingle, nil
}
