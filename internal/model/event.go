package model

// EventType discriminates the messages the batch runner emits
type EventType string

const (
	// EventJobStarted is emitted once per job, before the service call
	EventJobStarted EventType = "job_started"

	// EventJobProgress relays the download service's progress for a job
	EventJobProgress EventType = "job_progress"

	// EventJobLog carries a human readable log line for a job
	EventJobLog EventType = "job_log"

	// EventJobFinished is emitted once per job with its terminal status
	EventJobFinished EventType = "job_finished"

	// EventBatchFinished is the last event before the channel closes
	EventBatchFinished EventType = "batch_finished"
)

// Event is one message from the batch runner to the interface layer.
// The interface owns all mutable display state; the runner only sends
// these values and never touches widgets. Job is a copy taken when the
// event was emitted, never the runner's live job.
type Event struct {
	Type EventType
	Job  *Job // nil for EventBatchFinished

	// Progress payload (EventJobProgress)
	Percent     float64
	Speed       string
	ETASec      int
	CurrentFile string

	// Log payload (EventJobLog); also the failure reason on EventJobFinished
	Message string

	// Batch payload (EventBatchFinished)
	Batch *Batch
}
