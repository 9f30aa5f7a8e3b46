package jobs

import "fmt"

// JobManager coordinates the scheduled background jobs.
type JobManager struct {
	dispatch *DispatchJob
	overdue  *OverdueJob
}

// NewJobManager creates a new JobManager.
func NewJobManager(dispatch *DispatchJob, overdue *OverdueJob) *JobManager {
	return &JobManager{dispatch: dispatch, overdue: overdue}
}

// StartAll starts every job, stopping the already started ones on failure.
func (m *JobManager) StartAll() error {
	if err := m.dispatch.Start(); err != nil {
		return fmt.Errorf("start dispatch job: %w", err)
	}
	if err := m.overdue.Start(); err != nil {
		m.dispatch.Stop()
		return fmt.Errorf("start overdue job: %w", err)
	}
	return nil
}

// StopAll stops every job.
func (m *JobManager) StopAll() {
	m.overdue.Stop()
	m.dispatch.Stop()
}
