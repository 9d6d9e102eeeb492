package fetch

import (
	"context"

	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/model"
)

// Progress describes the state of an ongoing fetch. For playlists the
// percent covers the whole playlist and CurrentFile names the item
// currently downloading.
type Progress struct {
	Percent     float64
	Speed       string
	ETASec      int
	CurrentFile string
}

// Request describes one media fetch.
type Request struct {
	URL      string
	Kind     model.JobKind
	Progress func(Progress)
}

// Result describes a completed fetch.
type Result struct {
	Title      string
	OutputPath string
}

// Fetcher downloads the media a request describes.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Result, error)
}

// AudioConverter converts downloaded audio files in a directory to the
// target format.
type AudioConverter interface {
	ConvertDir(ctx context.Context, dir string, format config.AudioFormat) error
}
