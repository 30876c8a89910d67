package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
)

type JobFunc func(ctx context.Context) error

type JobConfig struct {
	Name        string
	CronExpr    string
	JobFunc     JobFunc
	Description string
	Enabled     bool
	Timeout     time.Duration
}

type JobStatus struct {
	Name         string        `json:"name"`
	CronExpr     string        `json:"cron_expr"`
	Description  string        `json:"description"`
	Enabled      bool          `json:"enabled"`
	LastRun      *time.Time    `json:"last_run,omitempty"`
	NextRun      *time.Time    `json:"next_run,omitempty"`
	LastDuration time.Duration `json:"last_duration"`
	LastError    string        `json:"last_error,omitempty"`
	RunCount     int64         `json:"run_count"`
	ErrorCount   int64         `json:"error_count"`
}

// CronScheduler runs the registered jobs on their cron expressions with
// per-job timeout and run statistics.
type CronScheduler struct {
	cron        *cron.Cron
	jobs        map[string]*JobConfig
	jobStatuses map[string]*JobStatus
	log         loggerv2.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
}

func NewCronScheduler(log loggerv2.Logger) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	// Second-level precision.
	c := cron.New(cron.WithSeconds())

	return &CronScheduler{
		cron:        c,
		jobs:        make(map[string]*JobConfig),
		jobStatuses: make(map[string]*JobStatus),
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (s *CronScheduler) AddJob(config *JobConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if config.Name == "" {
		return fmt.Errorf("job name cannot be empty")
	}
	if config.CronExpr == "" {
		return fmt.Errorf("cron expression cannot be empty")
	}
	if config.JobFunc == nil {
		return fmt.Errorf("job function cannot be nil")
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Minute
	}

	// Validate the cron expression early.
	_, err := s.cron.AddFunc(config.CronExpr, func() {})
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	s.jobs[config.Name] = config
	s.jobStatuses[config.Name] = &JobStatus{
		Name:        config.Name,
		CronExpr:    config.CronExpr,
		Description: config.Description,
		Enabled:     config.Enabled,
	}

	s.log.InfoContext(s.ctx, "Job added",
		logger.String("name", config.Name),
		logger.String("cronExpr", config.CronExpr),
		logger.Bool("enabled", config.Enabled),
	)

	return nil
}

func (s *CronScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Stop()
	s.cron = cron.New(cron.WithSeconds())

	for name, job := range s.jobs {
		if !job.Enabled {
			continue
		}
		_, err := s.cron.AddFunc(job.CronExpr, s.wrapJobFunc(name, job))
		if err != nil {
			s.log.ErrorContext(s.ctx, "Failed to add job to cron",
				logger.String("name", name),
				logger.Error(err),
			)
			continue
		}

		if status, ok := s.jobStatuses[name]; ok {
			entries := s.cron.Entries()
			for _, entry := range entries {
				nextRun := entry.Next
				status.NextRun = &nextRun
				break
			}
		}
	}

	s.cron.Start()
	s.log.InfoContext(s.ctx, "Cron scheduler started")
	return nil
}

func (s *CronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Stop()
	s.cancel()
	s.log.InfoContext(s.ctx, "Cron scheduler stopped")
}

func (s *CronScheduler) wrapJobFunc(name string, job *JobConfig) func() {
	return func() {
		startTime := time.Now()

		s.mu.Lock()
		status := s.jobStatuses[name]
		status.LastRun = &startTime
		status.RunCount++
		s.mu.Unlock()

		s.log.InfoContext(s.ctx, "Job started", logger.String("name", name))

		ctx, cancel := context.WithTimeout(s.ctx, job.Timeout)
		defer cancel()

		err := job.JobFunc(ctx)

		duration := time.Since(startTime)

		s.mu.Lock()
		status.LastDuration = duration
		if err != nil {
			status.ErrorCount++
			status.LastError = err.Error()
			s.log.ErrorContext(s.ctx, "Job failed",
				logger.String("name", name),
				logger.Int64("duration_ns", duration.Nanoseconds()),
				logger.Error(err),
			)
		} else {
			status.LastError = ""
			s.log.InfoContext(s.ctx, "Job completed",
				logger.String("name", name),
				logger.Int64("duration_ns", duration.Nanoseconds()),
			)
		}
		s.mu.Unlock()
	}
}

func (s *CronScheduler) GetJobStatuses() map[string]*JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*JobStatus)
	for name, status := range s.jobStatuses {
		statusCopy := *status
		result[name] = &statusCopy
	}

	return result
}

func (s *CronScheduler) RunJobOnce(name string) error {
	s.mu.RLock()
	job, exists := s.jobs[name]
	s.mu.RUnlock()

	if !exists {
		return fmt.Errorf("job %s not found", name)
	}

	s.log.InfoContext(s.ctx, "Running job manually", logger.String("name", name))

	ctx, cancel := context.WithTimeout(s.ctx, job.Timeout)
	defer cancel()

	return job.JobFunc(ctx)
}
