package classify

import (
	"errors"
	"testing"

	"github.com/ytget/universal-downloader/internal/model"
)

func TestClassify_MusicHost(t *testing.T) {
	// Any path or query on the music host must yield an audio playlist.
	urls := []string{
		"https://music.youtube.com/watch?v=abc",
		"https://music.youtube.com/playlist?list=OLAK5uy_kYQ6Lvq",
		"http://music.youtube.com/",
		"https://MUSIC.YOUTUBE.COM/browse/whatever?x=1&y=2",
	}

	for _, u := range urls {
		kind, err := Classify(u)
		if err != nil {
			t.Errorf("Classify(%q) returned error %v, expected nil", u, err)
		}
		if kind != model.KindAudioPlaylist {
			t.Errorf("Classify(%q) = %s, expected KindAudioPlaylist", u, kind)
		}
	}
}

func TestClassify_OtherHosts(t *testing.T) {
	urls := []string{
		"https://youtube.com/watch?v=xyz",
		"https://www.youtube.com/playlist?list=PL-osiE80TeTs",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://vimeo.com/12345",
		"https://open.spotify.com/track/abc",
	}

	for _, u := range urls {
		kind, err := Classify(u)
		if err != nil {
			t.Errorf("Classify(%q) returned error %v, expected nil", u, err)
		}
		if kind != model.KindVideoOrSingle {
			t.Errorf("Classify(%q) = %s, expected KindVideoOrSingle", u, kind)
		}
	}
}

func TestClassify_AmbiguousFallsBackToVideo(t *testing.T) {
	urls := []string{
		"this is not a url",
		"ftp://example.com/file",
		"youtube.com/watch?v=no-scheme",
		"://broken",
	}

	for _, u := range urls {
		kind, err := Classify(u)
		if !errors.Is(err, ErrAmbiguousURL) {
			t.Errorf("Classify(%q) error = %v, expected ErrAmbiguousURL", u, err)
		}
		if kind != model.KindVideoOrSingle {
			t.Errorf("Classify(%q) = %s, expected fallback KindVideoOrSingle", u, kind)
		}
	}
}
