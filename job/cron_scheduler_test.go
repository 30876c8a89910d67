package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"go.uber.org/zap"
)

func newTestScheduler() *CronScheduler {
	return NewCronScheduler(loggerv2.NewZapContextLogger(zap.NewNop()))
}

func noopJob(ctx context.Context) error { return nil }

func TestAddJobValidation(t *testing.T) {
	testCases := []struct {
		name    string
		config  *JobConfig
		wantErr string
	}{
		{
			name:    "missing name",
			config:  &JobConfig{CronExpr: "0 * * * * *", JobFunc: noopJob},
			wantErr: "job name cannot be empty",
		},
		{
			name:    "missing cron expression",
			config:  &JobConfig{Name: "refresher", JobFunc: noopJob},
			wantErr: "cron expression cannot be empty",
		},
		{
			name:    "missing job function",
			config:  &JobConfig{Name: "refresher", CronExpr: "0 * * * * *"},
			wantErr: "job function cannot be nil",
		},
		{
			name:    "malformed cron expression",
			config:  &JobConfig{Name: "refresher", CronExpr: "not a cron expr", JobFunc: noopJob},
			wantErr: "invalid cron expression",
		},
		{
			name:   "valid",
			config: &JobConfig{Name: "refresher", CronExpr: "0 */5 * * * *", JobFunc: noopJob},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := newTestScheduler().AddJob(tc.config)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAddJobDefaultTimeout(t *testing.T) {
	s := newTestScheduler()
	cfg := &JobConfig{Name: "refresher", CronExpr: "0 * * * * *", JobFunc: noopJob}
	require.NoError(t, s.AddJob(cfg))
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
}

func TestRunJobOnce(t *testing.T) {
	s := newTestScheduler()

	ran := false
	require.NoError(t, s.AddJob(&JobConfig{
		Name:     "cleaner",
		CronExpr: "0 0 3 * * *",
		JobFunc: func(ctx context.Context) error {
			ran = true
			return nil
		},
	}))

	require.NoError(t, s.RunJobOnce("cleaner"))
	assert.True(t, ran)

	err := s.RunJobOnce("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunJobOncePropagatesError(t *testing.T) {
	s := newTestScheduler()
	wantErr := errors.New("refresh failed")
	require.NoError(t, s.AddJob(&JobConfig{
		Name:     "refresher",
		CronExpr: "0 * * * * *",
		JobFunc:  func(ctx context.Context) error { return wantErr },
	}))
	assert.ErrorIs(t, s.RunJobOnce("refresher"), wantErr)
}

func TestGetJobStatusesReturnsCopies(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.AddJob(&JobConfig{
		Name:     "refresher",
		CronExpr: "0 * * * * *",
		JobFunc:  noopJob,
		Enabled:  true,
	}))

	statuses := s.GetJobStatuses()
	require.Contains(t, statuses, "refresher")
	statuses["refresher"].RunCount = 99

	again := s.GetJobStatuses()
	assert.Equal(t, int64(0), again["refresher"].RunCount)
}
