package model

// JobStatus represents the lifecycle state of a download job.
type JobStatus string

const (
	// JobStatusPending means the job is queued but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusRunning means the job's download is in progress
	JobStatusRunning JobStatus = "Running"

	// JobStatusSucceeded means the job finished successfully
	JobStatusSucceeded JobStatus = "Succeeded"

	// JobStatusFailed means the job failed with an error
	JobStatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is currently being worked on
func (js JobStatus) IsActive() bool {
	return js == JobStatusRunning
}

// IsFinished returns true if the job reached a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusSucceeded || js == JobStatusFailed
}
