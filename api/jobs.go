package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/loiclinais34/aimarkets-sub003/internal/app"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
)

type JobStatus string

const (
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusSucceeded JobStatus = "SUCCEEDED"
	JobStatusFailed    JobStatus = "FAILED"
)

type job struct {
	ID         uuid.UUID
	Kind       string
	Status     JobStatus
	Progress   app.ProgressUpdate
	Report     *app.BatchReport
	ErrMessage *string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// JobService is the pollable handle surface for batch triggers. jobs
// live in memory only - a restart forgets them, which is fine because
// every batch is idempotent and safe to re-trigger
type JobService struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*job
}

func NewJobService() *JobService {
	return &JobService{
		jobs: map[uuid.UUID]*job{},
	}
}

type runFunc func(ctx context.Context, progress chan<- app.ProgressUpdate) (*app.BatchReport, error)

func (s *JobService) Start(kind string, run runFunc) uuid.UUID {
	j := &job{
		ID:        uuid.New(),
		Kind:      kind,
		Status:    JobStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.jobs[j.ID] = j
	s.mu.Unlock()

	progress := make(chan app.ProgressUpdate, 64)
	drained := make(chan struct{})
	go func() {
		for update := range progress {
			s.mu.Lock()
			j.Progress = update
			s.mu.Unlock()
		}
		close(drained)
	}()

	go func() {
		profile, endProfile := domain.NewProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)

		report, err := run(ctx, progress)
		endProfile()
		close(progress)
		<-drained

		s.mu.Lock()
		defer s.mu.Unlock()
		now := time.Now().UTC()
		j.FinishedAt = &now
		j.Report = report
		if err != nil {
			j.Status = JobStatusFailed
			message := err.Error()
			j.ErrMessage = &message
			zap.S().Errorf("%s job %s failed: %s", kind, j.ID, message)
		} else {
			j.Status = JobStatusSucceeded
		}
	}()

	return j.ID
}

type JobView struct {
	ID          uuid.UUID        `json:"id"`
	Kind        string           `json:"kind"`
	Status      JobStatus        `json:"status"`
	ProgressPct float64          `json:"progressPct"`
	CurrentItem string           `json:"currentItem"`
	Succeeded   int              `json:"succeeded"`
	Failed      int              `json:"failed"`
	Result      *app.BatchReport `json:"result,omitempty"`
	Error       *string          `json:"error,omitempty"`
}

func (s *JobService) Get(id uuid.UUID) (*JobView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, false
	}

	view := &JobView{
		ID:          j.ID,
		Kind:        j.Kind,
		Status:      j.Status,
		CurrentItem: j.Progress.CurrentItem,
		Succeeded:   j.Progress.Succeeded,
		Failed:      j.Progress.Failed,
		Error:       j.ErrMessage,
	}
	if j.Progress.Total > 0 {
		view.ProgressPct = 100 * float64(j.Progress.Processed) / float64(j.Progress.Total)
	}
	if j.Status != JobStatusRunning {
		view.Result = j.Report
		if j.Report != nil {
			view.Succeeded = j.Report.Succeeded
			view.Failed = j.Report.Failed
			view.ProgressPct = 100
		}
	}

	return view, true
}
