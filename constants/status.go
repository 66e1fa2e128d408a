package constants

// JobStatus is the canonical status for rows in import_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOK      JobStatus = "OK"      // completed, all items persisted or deduplicated
	JobStatusPartial JobStatus = "PARTIAL" // completed with per-item failures
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure, nothing usable extracted
)

var allStatuses = []JobStatus{JobStatusRunning, JobStatusOK, JobStatusPartial, JobStatusFailed}

func StatusesAsStringSlice() []string {
	result := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		result[i] = string(s)
	}
	return result
}
