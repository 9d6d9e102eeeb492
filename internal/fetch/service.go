package fetch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ytget/ytdlp/errs"
	ytdlp "github.com/ytget/ytdlp/v2"

	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/cookies"
	"github.com/ytget/universal-downloader/internal/model"
	"github.com/ytget/universal-downloader/internal/platform"
)

const (
	// itag 140 is the m4a audio stream present on effectively every video
	audioItagSelector = "itag=140"
	audioExt          = "m4a"

	videosSubdir    = "videos"
	musicSubdir     = "music"
	playlistsSubdir = "playlists"

	watchURLPrefix = "https://www.youtube.com/watch?v="
)

// Service downloads media through the ytdlp library
type Service struct {
	cfg       config.Config
	cookies   *cookies.Provider
	converter AudioConverter
}

// NewService creates a new fetch service. The cookie provider and
// converter may be nil.
func NewService(cfg config.Config, cookies *cookies.Provider, converter AudioConverter) *Service {
	return &Service{
		cfg:       cfg,
		cookies:   cookies,
		converter: converter,
	}
}

// Fetch downloads the media the request describes. Audio requests without
// a playlist parameter fetch the single track; video requests with one
// fetch the whole playlist.
func (s *Service) Fetch(ctx context.Context, req Request) (*Result, error) {
	switch req.Kind {
	case model.KindAudioPlaylist:
		if !hasPlaylistParam(req.URL) {
			return s.fetchAudioSingle(ctx, req)
		}
		return s.fetchPlaylist(ctx, req, audioItagSelector, audioExt, true)
	default:
		if hasPlaylistParam(req.URL) {
			return s.fetchPlaylist(ctx, req, videoSelector(s.cfg.Quality), string(s.cfg.VideoFormat), false)
		}
		return s.fetchVideo(ctx, req)
	}
}

// fetchVideo downloads a single video into <downloadDir>/videos/
func (s *Service) fetchVideo(ctx context.Context, req Request) (*Result, error) {
	dir := filepath.Join(s.cfg.DownloadDir, videosSubdir)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	dl, err := s.newDownloader(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	track := newTracker(req.Progress, "", 0, 100)
	info, err := dl.
		WithFormat(videoSelector(s.cfg.Quality), string(s.cfg.VideoFormat)).
		WithOutputPath(dir).
		WithProgress(track.update).
		Download(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("video download failed: %w", err)
	}

	return &Result{Title: info.Title, OutputPath: dir}, nil
}

// fetchAudioSingle downloads one audio track into <downloadDir>/music/
func (s *Service) fetchAudioSingle(ctx context.Context, req Request) (*Result, error) {
	dir := filepath.Join(s.cfg.DownloadDir, musicSubdir)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	dl, err := s.newDownloader(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	track := newTracker(req.Progress, "", 0, 100)
	info, err := dl.
		WithFormat(audioItagSelector, audioExt).
		WithOutputPath(dir).
		WithProgress(track.update).
		Download(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("audio download failed: %w", err)
	}

	if s.converter != nil && s.cfg.AudioFormat != config.AudioFormatM4A {
		if err := s.converter.ConvertDir(ctx, dir, s.cfg.AudioFormat); err != nil {
			return nil, fmt.Errorf("audio conversion failed: %w", err)
		}
	}

	if req.Progress != nil {
		req.Progress(Progress{Percent: 100})
	}

	return &Result{Title: info.Title, OutputPath: dir}, nil
}

// fetchPlaylist downloads every item of a playlist with the given format
// selector into <downloadDir>/playlists/<title>/. Individual unavailable
// items are skipped, rate limiting aborts the whole playlist. Audio
// playlists get converted to the configured format afterwards.
func (s *Service) fetchPlaylist(ctx context.Context, req Request, format, ext string, audio bool) (*Result, error) {
	playlistID, err := extractPlaylistID(req.URL)
	if err != nil {
		return nil, err
	}

	lister, err := s.newDownloader(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	items, err := lister.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist %s: %w", playlistID, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("playlist %s has no items", playlistID)
	}

	title := playlistTitle(items, playlistID)
	dir := filepath.Join(s.cfg.DownloadDir, playlistsSubdir, sanitizeTitle(title))
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	total := len(items)
	failed := 0
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		track := newTracker(req.Progress, item.Title,
			float64(i)/float64(total)*100, 100/float64(total))

		dl, err := s.newDownloader(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		dl = dl.
			WithFormat(format, ext).
			WithOutputPath(dir).
			WithProgress(track.update)

		if _, err := dl.Download(ctx, watchURLPrefix+item.VideoID); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, errs.ErrRateLimited) {
				return nil, fmt.Errorf("rate limited on playlist %s: %w", playlistID, err)
			}
			failed++
			log.Printf("Skipping playlist item %q: %v", item.Title, err)
			continue
		}
	}

	if failed == total {
		return nil, fmt.Errorf("all %d items of playlist %s failed", total, playlistID)
	}
	if failed > 0 {
		log.Printf("Playlist %s finished with %d of %d items skipped", playlistID, failed, total)
	}

	if audio && s.converter != nil && s.cfg.AudioFormat != config.AudioFormatM4A {
		if err := s.converter.ConvertDir(ctx, dir, s.cfg.AudioFormat); err != nil {
			return nil, fmt.Errorf("audio conversion failed: %w", err)
		}
	}

	if req.Progress != nil {
		req.Progress(Progress{Percent: 100})
	}

	return &Result{Title: title, OutputPath: dir}, nil
}

// newDownloader builds a downloader carrying the browser cookies for the
// URL. A cookie import failure fails the job so the user sees it.
func (s *Service) newDownloader(ctx context.Context, rawURL string) (*ytdlp.Downloader, error) {
	dl := ytdlp.New()

	httpClient, err := s.cookies.Client(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("cookie import failed: %w", err)
	}
	if httpClient != nil {
		dl = dl.WithHTTPClient(httpClient)
	}
	return dl, nil
}

// videoSelector builds the format selector for a resolution ceiling
func videoSelector(q config.Quality) string {
	h := q.Height()
	if h == 0 {
		return "best"
	}
	return fmt.Sprintf("height<=%d", h)
}

// tracker maps one download's progress onto a slice of the overall
// percent range and derives speed and ETA from byte counts.
type tracker struct {
	report      func(Progress)
	currentFile string
	start       time.Time
	base        float64
	span        float64
}

func newTracker(report func(Progress), currentFile string, base, span float64) *tracker {
	return &tracker{
		report:      report,
		currentFile: currentFile,
		start:       time.Now(),
		base:        base,
		span:        span,
	}
}

func (t *tracker) update(p ytdlp.Progress) {
	if t.report == nil {
		return
	}

	speed := ""
	etaSec := -1
	elapsed := time.Since(t.start)
	if elapsed > 0 && p.DownloadedSize > 0 {
		bytesPerSecond := float64(p.DownloadedSize) / elapsed.Seconds()
		speed = formatSpeed(bytesPerSecond)
		if p.TotalSize > p.DownloadedSize && bytesPerSecond > 0 {
			etaSec = int(float64(p.TotalSize-p.DownloadedSize) / bytesPerSecond)
		}
	}

	t.report(Progress{
		Percent:     overallPercent(t.base, t.span, p.Percent),
		Speed:       speed,
		ETASec:      etaSec,
		CurrentFile: t.currentFile,
	})
}

// overallPercent maps an item's own percent into the overall range
func overallPercent(base, span, itemPercent float64) float64 {
	overall := base + itemPercent*span/100
	if overall > 100 {
		overall = 100
	}
	return overall
}

func formatSpeed(bytesPerSecond float64) string {
	return fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
}
