package model

import (
	"fmt"
	"time"
)

// Batch represents the ordered set of jobs derived from one run invocation
type Batch struct {
	Jobs       []*Job
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewBatch creates a batch over the given jobs
func NewBatch(jobs []*Job) *Batch {
	return &Batch{
		Jobs:      jobs,
		StartedAt: time.Now(),
	}
}

// Succeeded returns the number of jobs that finished successfully
func (b *Batch) Succeeded() int {
	n := 0
	for _, j := range b.Jobs {
		if j.Status == JobStatusSucceeded {
			n++
		}
	}
	return n
}

// Failed returns the number of jobs that finished with an error
func (b *Batch) Failed() int {
	n := 0
	for _, j := range b.Jobs {
		if j.Status == JobStatusFailed {
			n++
		}
	}
	return n
}

// IsFinished returns true when every job reached a terminal state
func (b *Batch) IsFinished() bool {
	for _, j := range b.Jobs {
		if !j.Status.IsFinished() {
			return false
		}
	}
	return true
}

// Summary returns a one-line human readable result for the batch
func (b *Batch) Summary() string {
	return fmt.Sprintf("%d succeeded, %d failed of %d", b.Succeeded(), b.Failed(), len(b.Jobs))
}
