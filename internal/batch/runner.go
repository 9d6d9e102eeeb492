package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/universal-downloader/internal/classify"
	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/fetch"
	"github.com/ytget/universal-downloader/internal/model"
)

var (
	// ErrInvalidInput is returned when the URL list is empty after cleanup
	ErrInvalidInput = errors.New("no URLs to download")
	// ErrAlreadyRan is returned on a second Run call, runners are single use
	ErrAlreadyRan = errors.New("batch already started")
)

const eventBufferSize = 128

// Runner executes one batch of downloads sequentially
type Runner struct {
	fetcher fetch.Fetcher
	cfg     config.Config
	sleep   func(ctx context.Context, d time.Duration) error

	mu  sync.Mutex
	ran bool
}

// New creates a runner for one batch
func New(fetcher fetch.Fetcher, cfg config.Config) *Runner {
	return &Runner{
		fetcher: fetcher,
		cfg:     cfg,
		sleep:   sleepContext,
	}
}

// Run starts the batch and returns the event channel. The channel is
// closed after the batch-finished event. A runner can only run once.
func (r *Runner) Run(ctx context.Context, urls []string) (<-chan model.Event, error) {
	cleaned := cleanURLs(urls)
	if len(cleaned) == 0 {
		return nil, ErrInvalidInput
	}

	r.mu.Lock()
	if r.ran {
		r.mu.Unlock()
		return nil, ErrAlreadyRan
	}
	r.ran = true
	r.mu.Unlock()

	jobs := make([]*model.Job, 0, len(cleaned))
	warnings := make(map[string]string)
	for _, u := range cleaned {
		kind, err := classify.Classify(u)
		job := &model.Job{
			ID:     generateJobID(),
			URL:    u,
			Kind:   kind,
			Status: model.JobStatusPending,
			ETASec: -1,
		}
		if errors.Is(err, classify.ErrAmbiguousURL) {
			warnings[job.ID] = fmt.Sprintf("Could not classify %q, downloading as video", u)
		}
		jobs = append(jobs, job)
	}
	batch := model.NewBatch(jobs)

	events := make(chan model.Event, eventBufferSize)
	go r.run(ctx, batch, events, warnings)

	return events, nil
}

// run executes the batch on its own goroutine and closes the channel
func (r *Runner) run(ctx context.Context, batch *model.Batch, events chan<- model.Event, warnings map[string]string) {
	defer close(events)

	total := len(batch.Jobs)
	for i, job := range batch.Jobs {
		if ctx.Err() != nil {
			break
		}

		job.Status = model.JobStatusRunning
		job.StartedAt = time.Now()
		events <- model.Event{Type: model.EventJobStarted, Job: snapshot(job)}

		if msg, ok := warnings[job.ID]; ok {
			events <- model.Event{Type: model.EventJobLog, Job: snapshot(job), Message: msg}
		}

		result, err := r.fetcher.Fetch(ctx, fetch.Request{
			URL:  job.URL,
			Kind: job.Kind,
			Progress: func(p fetch.Progress) {
				job.Progress = p.Percent / 100
				job.Percent = int(p.Percent)
				job.Speed = p.Speed
				job.ETASec = p.ETASec
				events <- model.Event{
					Type:        model.EventJobProgress,
					Job:         snapshot(job),
					Percent:     p.Percent,
					Speed:       p.Speed,
					ETASec:      p.ETASec,
					CurrentFile: p.CurrentFile,
				}
			},
		})

		job.FinishedAt = time.Now()
		if err != nil {
			// One failed download does not stop the batch
			job.Status = model.JobStatusFailed
			job.LastError = err.Error()
		} else {
			job.Status = model.JobStatusSucceeded
			job.Progress = 1.0
			job.Percent = 100
			if result != nil {
				job.Title = result.Title
				job.OutputPath = result.OutputPath
			}
		}
		events <- model.Event{Type: model.EventJobFinished, Job: snapshot(job), Message: job.LastError}

		if ctx.Err() != nil {
			break
		}

		// No pause after the final download
		if i < total-1 && r.cfg.InterJobDelay > 0 {
			events <- model.Event{
				Type:    model.EventJobLog,
				Job:     snapshot(job),
				Message: fmt.Sprintf("Waiting %s before the next download", r.cfg.InterJobDelay),
			}
			if err := r.sleep(ctx, r.cfg.InterJobDelay); err != nil {
				break
			}
		}
	}

	batch.FinishedAt = time.Now()
	events <- model.Event{Type: model.EventBatchFinished, Batch: batch}
}

// SplitURLList splits free-form text into URL candidates
func SplitURLList(text string) []string {
	return strings.Fields(text)
}

// cleanURLs trims entries and drops empty ones
func cleanURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		cleaned = append(cleaned, u)
	}
	return cleaned
}

// snapshot copies a job for event consumers. Events never share the live
// job the runner keeps mutating, so consumers can read them from any
// goroutine.
func snapshot(j *model.Job) *model.Job {
	c := *j
	return &c
}

// sleepContext waits for the duration or the context, whichever ends first
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// generateJobID generates a unique job ID using UUID v7 for time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("job-%d", time.Now().UnixNano())
	}
	return "job-" + id.String()
}
