package fetch

import (
	"fmt"
	"strings"

	"github.com/ytget/ytdlp/types"
)

// URL parameters
const (
	playlistURLParam       = "list="
	playlistParamSeparator = "&"
)

// Playlist title defaults
const (
	maxTitleLength      = 50
	titleTruncateSuffix = "..."
	playlistTitleSuffix = " - Playlist"
)

// hasPlaylistParam reports whether the URL carries a playlist parameter.
// URLs without one are fetched as a single video or track.
func hasPlaylistParam(url string) bool {
	return strings.Contains(url, playlistURLParam)
}

// extractPlaylistID extracts the playlist ID from a YouTube URL.
// Supported forms:
//   - https://music.youtube.com/playlist?list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID
func extractPlaylistID(url string) (string, error) {
	if !strings.Contains(url, playlistURLParam) {
		return "", fmt.Errorf("URL %q does not contain a playlist parameter", url)
	}

	parts := strings.Split(url, playlistURLParam)
	if len(parts) < 2 {
		return "", fmt.Errorf("could not extract playlist ID from %q", url)
	}

	playlistID := parts[1]
	if strings.Contains(playlistID, playlistParamSeparator) {
		playlistID = strings.Split(playlistID, playlistParamSeparator)[0]
	}

	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID in %q", url)
	}

	return playlistID, nil
}

// playlistTitle derives a directory-friendly title for the playlist
// from its first item, falling back to the playlist ID.
func playlistTitle(items []types.PlaylistItem, playlistID string) string {
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		if len(title) > maxTitleLength {
			title = title[:maxTitleLength] + titleTruncateSuffix
		}
		return title + playlistTitleSuffix
	}
	return fmt.Sprintf("Playlist %s", playlistID)
}

// sanitizeTitle strips the characters YouTube titles carry that are not
// safe in directory names.
func sanitizeTitle(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '?', '%', '*', ':', '|', '"', '<', '>':
			return -1
		}
		return r
	}, title)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "playlist"
	}
	return cleaned
}
